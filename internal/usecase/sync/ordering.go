package sync

import (
	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/entities"
)

// workgroupFieldOrder lists, per workgroup, which agenda content fields the
// canonical form keeps and in what display order. Workgroups not listed use
// defaultFieldOrder.
var workgroupFieldOrder = map[string][]string{
	"Gamers Guild":                   {"narrative", "discussionPoints", "decisionItems", "actionItems", "gameRules", "leaderboard"},
	"Writers Workgroup":              {"narrative", "decisionItems", "actionItems", "learningPoints"},
	"Video Workgroup":                {"discussionPoints", "decisionItems", "actionItems"},
	"Archives Workgroup":             {"decisionItems", "actionItems", "learningPoints"},
	"Treasury Guild":                 {"discussionPoints", "decisionItems", "actionItems"},
	"Treasury Policy WG":             {"discussionPoints", "decisionItems", "actionItems"},
	"Treasury Automation WG":         {"discussionPoints", "decisionItems", "actionItems"},
	"Dework PBL":                     {"discussionPoints", "decisionItems", "actionItems"},
	"Knowledge Base Workgroup":       {"discussionPoints", "decisionItems", "actionItems"},
	"Onboarding Workgroup":           {"townHallUpdates", "discussionPoints", "decisionItems", "actionItems", "learningPoints", "issues"},
	"Research and Development Guild": {"meetingTopics", "discussionPoints", "decisionItems", "actionItems"},
	"Governance Workgroup":           {"narrative", "discussionPoints", "decisionItems", "actionItems"},
	"Education Workgroup":            {"meetingTopics", "discussionPoints", "decisionItems", "actionItems"},
	"Marketing Guild":                {"discussionPoints", "decisionItems", "actionItems"},
	"Ambassador Town Hall":           {"townHallSummary"},
	"Deep Funding Town Hall":         {"townHallSummary"},
	"One-off Event":                  {"narrative"},
	"AI Ethics WG":                   {"narrative", "decisionItems", "actionItems"},
	"African Guild":                  {"narrative", "decisionItems", "actionItems"},
	"Strategy Guild":                 {"narrative", "decisionItems", "actionItems"},
	"LatAm Guild":                    {"narrative", "decisionItems", "actionItems"},
	"WG Sync Call":                   {"meetingTopics", "discussion", "decisionItems", "actionItems", "issues"},
	"AI Sandbox/Think-tank":          {"townHallUpdates", "discussionPoints", "decisionItems", "actionItems", "learningPoints", "issues"},
	"GitHub PBL WG":                  {"discussionPoints", "decisionItems", "actionItems"},
}

var defaultFieldOrder = []string{
	"narrative",
	"meetingTopics",
	"discussionPoints",
	"decisionItems",
	"actionItems",
	"learningPoints",
	"issues",
	"townHallUpdates",
	"townHallSummary",
	"gameRules",
	"leaderboard",
	"discussion",
}

// AgendaFieldOrder returns the canonical content-field order for a workgroup.
func AgendaFieldOrder(workgroup string) []string {
	if order, ok := workgroupFieldOrder[workgroup]; ok {
		return order
	}
	return defaultFieldOrder
}

// Canonicalize rebuilds every agenda item keeping agenda, status, the
// item-level attendance fields and the content fields listed for the
// record's workgroup. Content fields outside the list are dropped. The
// input record is not modified.
func Canonicalize(record *entities.MeetingRecord) *entities.MeetingRecord {
	out := *record
	if len(record.AgendaItems) == 0 {
		return &out
	}

	order := AgendaFieldOrder(record.Workgroup)
	items := make([]entities.AgendaItem, 0, len(record.AgendaItems))
	for i := range record.AgendaItems {
		item := &record.AgendaItems[i]
		ordered := entities.NewAgendaItem(item.Agenda, item.Status)
		ordered.PeoplePresent = append(ordered.PeoplePresent, item.PeoplePresent...)
		ordered.Facilitator = item.Facilitator
		ordered.Documenter = item.Documenter
		for _, field := range order {
			copyAgendaField(field, item, &ordered)
		}
		items = append(items, ordered)
	}
	out.AgendaItems = items
	return &out
}

func copyAgendaField(field string, src, dst *entities.AgendaItem) {
	switch field {
	case "narrative":
		dst.Narrative = src.Narrative
	case "meetingTopics":
		dst.MeetingTopics = append(dst.MeetingTopics, src.MeetingTopics...)
	case "discussionPoints":
		dst.DiscussionPoints = append(dst.DiscussionPoints, src.DiscussionPoints...)
	case "decisionItems":
		dst.DecisionItems = append(dst.DecisionItems, src.DecisionItems...)
	case "actionItems":
		dst.ActionItems = append(dst.ActionItems, src.ActionItems...)
	case "learningPoints":
		dst.LearningPoints = append(dst.LearningPoints, src.LearningPoints...)
	case "issues":
		dst.Issues = append(dst.Issues, src.Issues...)
	case "townHallUpdates":
		dst.TownHallUpdates = src.TownHallUpdates
	case "townHallSummary":
		dst.TownHallSummary = src.TownHallSummary
	case "gameRules":
		dst.GameRules = src.GameRules
	case "leaderboard":
		dst.Leaderboard = append(dst.Leaderboard, src.Leaderboard...)
	case "discussion":
		dst.Discussion = src.Discussion
	}
}
