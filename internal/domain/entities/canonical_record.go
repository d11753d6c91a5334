package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CanonicalRecord is one row of the meetingsummaries table: the authoritative
// stored record for a workgroup+date, used as the comparison target. The
// structured record itself lives in the summary JSONB column.
type CanonicalRecord struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkgroupID string         `json:"workgroup_id,omitempty" gorm:"column:workgroup_id"`
	Confirmed   bool           `json:"confirmed"`
	RawSummary  datatypes.JSON `json:"-" gorm:"column:summary;type:jsonb"`
	Summary     MeetingRecord  `json:"summary" gorm:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TableName maps the entity to the meetingsummaries table
func (CanonicalRecord) TableName() string {
	return "meetingsummaries"
}

// DecodeSummary unmarshals the JSONB column into the typed Summary field
func (c *CanonicalRecord) DecodeSummary() error {
	if len(c.RawSummary) == 0 {
		return nil
	}
	return json.Unmarshal(c.RawSummary, &c.Summary)
}

// Workgroup returns the workgroup name carried by the stored summary
func (c *CanonicalRecord) Workgroup() string {
	return c.Summary.Workgroup
}

// ResolveWorkgroupID prefers the row-level column, falling back to the id
// embedded in the summary payload.
func (c *CanonicalRecord) ResolveWorkgroupID() string {
	if c.WorkgroupID != "" {
		return c.WorkgroupID
	}
	return c.Summary.WorkgroupID
}

// MeetingDate returns the ISO date of the stored summary
func (c *CanonicalRecord) MeetingDate() string {
	return c.Summary.MeetingInfo.Date
}
