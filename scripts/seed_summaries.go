package main

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/entities"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/infrastructure/database"
	"github.com/Andre-Diamond/scripts-for-scraps/pkg/config"
)

func main() {
	log.Println("🚀 Starting test summaries creation...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("✅ Database connected successfully")

	// Define test summaries
	testSummaries := []struct {
		Workgroup string
		Date      string
		Present   string
	}{
		{Workgroup: "Gamers Guild", Date: "2024-01-01", Present: "Alice, Bob, Carol"},
		{Workgroup: "Writers Workgroup", Date: "2024-01-01", Present: "Dave, Eve"},
		{Workgroup: "Treasury Guild", Date: "2024-01-08", Present: "Frank, Grace, Heidi"},
	}

	log.Println("🗑️  Cleaning up existing test summaries...")
	for _, ts := range testSummaries {
		db.Where("workgroup_id = ?", testWorkgroupID(ts.Workgroup)).Delete(&entities.CanonicalRecord{})
	}

	log.Println("📝 Creating test summaries...")
	for _, ts := range testSummaries {
		record := entities.NewMeetingRecord(ts.Date)
		record.Workgroup = ts.Workgroup
		record.WorkgroupID = testWorkgroupID(ts.Workgroup)
		record.MeetingInfo.Name = "Weekly"
		record.MeetingInfo.PeoplePresent = ts.Present
		record.Type = entities.MeetingTypeWeekly

		payload, err := json.Marshal(record)
		if err != nil {
			log.Fatalf("Failed to marshal summary for %s: %v", ts.Workgroup, err)
		}

		row := &entities.CanonicalRecord{
			ID:          uuid.New(),
			WorkgroupID: record.WorkgroupID,
			Confirmed:   true,
			RawSummary:  payload,
		}
		if err := db.Create(row).Error; err != nil {
			log.Fatalf("Failed to create summary for %s: %v", ts.Workgroup, err)
		}
		log.Printf("  ✅ %s (%s)", ts.Workgroup, ts.Date)
	}

	log.Println("🎉 Test summaries created!")
}

// testWorkgroupID derives a stable uuid per workgroup so reruns overwrite
// rather than accumulate.
func testWorkgroupID(workgroup string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(workgroup)).String()
}
