package sync

import (
	"reflect"
	"testing"

	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/entities"
)

func TestAgendaFieldOrder(t *testing.T) {
	got := AgendaFieldOrder("Gamers Guild")
	want := []string{"narrative", "discussionPoints", "decisionItems", "actionItems", "gameRules", "leaderboard"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Gamers Guild order = %v, want %v", got, want)
	}

	fallback := AgendaFieldOrder("Some Unknown Workgroup")
	if !reflect.DeepEqual(fallback, defaultFieldOrder) {
		t.Fatalf("unknown workgroup should use the default order, got %v", fallback)
	}
}

func TestCanonicalizeDropsUnlistedFields(t *testing.T) {
	item := entities.NewAgendaItem("Tournament", entities.AgendaStatusInProgress)
	item.Narrative = "A good session"
	item.DiscussionPoints = []string{"Rules reviewed."}
	item.Leaderboard = []string{"Bob"}
	item.MeetingTopics = []string{"tournaments"}
	item.PeoplePresent = []string{"Alice", "Bob"}
	item.Facilitator = "Alice"
	item.Documenter = "Bob"

	record := entities.NewMeetingRecord("2024-01-01")
	record.Workgroup = "Gamers Guild"
	record.AgendaItems = []entities.AgendaItem{item}

	out := Canonicalize(record)
	if len(out.AgendaItems) != 1 {
		t.Fatalf("expected one item, got %d", len(out.AgendaItems))
	}
	got := out.AgendaItems[0]

	if got.Agenda != "Tournament" || got.Status != entities.AgendaStatusInProgress {
		t.Errorf("agenda/status not preserved: %q %q", got.Agenda, got.Status)
	}
	if got.Narrative != "A good session" {
		t.Errorf("narrative dropped: %q", got.Narrative)
	}
	if !reflect.DeepEqual(got.DiscussionPoints, []string{"Rules reviewed."}) {
		t.Errorf("discussionPoints = %v", got.DiscussionPoints)
	}
	if !reflect.DeepEqual(got.Leaderboard, []string{"Bob"}) {
		t.Errorf("leaderboard = %v", got.Leaderboard)
	}

	// Not in the Gamers Guild field list.
	if len(got.MeetingTopics) != 0 {
		t.Errorf("meetingTopics should be dropped, got %v", got.MeetingTopics)
	}

	// Item attendance always survives reordering.
	if !reflect.DeepEqual(got.PeoplePresent, []string{"Alice", "Bob"}) {
		t.Errorf("peoplePresent = %v", got.PeoplePresent)
	}
	if got.Facilitator != "Alice" || got.Documenter != "Bob" {
		t.Errorf("facilitator/documenter = %q / %q", got.Facilitator, got.Documenter)
	}
}

func TestCanonicalizeLeavesInputUnmodified(t *testing.T) {
	item := entities.NewAgendaItem("", entities.AgendaStatusCarryOver)
	item.PeoplePresent = []string{"Alice"}
	item.MeetingTopics = []string{"roadmap"}

	record := entities.NewMeetingRecord("2024-01-01")
	record.Workgroup = "Gamers Guild"
	record.AgendaItems = []entities.AgendaItem{item}

	Canonicalize(record)

	if len(record.AgendaItems[0].PeoplePresent) != 1 {
		t.Fatalf("input record was modified: %v", record.AgendaItems[0])
	}
	if len(record.AgendaItems[0].MeetingTopics) != 1 {
		t.Fatalf("input record was modified: %v", record.AgendaItems[0])
	}
}

func TestCanonicalizeEmptyItems(t *testing.T) {
	record := entities.NewMeetingRecord("2024-01-01")
	record.Workgroup = "Gamers Guild"
	out := Canonicalize(record)
	if len(out.AgendaItems) != 0 {
		t.Fatalf("expected no items, got %d", len(out.AgendaItems))
	}
}
