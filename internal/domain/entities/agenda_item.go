package entities

import "strings"

// Agenda item statuses as they appear in the source markup
const (
	AgendaStatusCarryOver  = "carry over"
	AgendaStatusCompleted  = "completed"
	AgendaStatusInProgress = "in-progress"
)

// Action item statuses
const (
	ActionStatusTodo       = "todo"
	ActionStatusInProgress = "in-progress"
	ActionStatusDone       = "done"
)

// Decision effects
const (
	EffectOnlyThisWorkgroup = "affectsOnlyThisWorkgroup"
	EffectOtherWorkgroups   = "affectsOtherWorkgroups"
)

// ActionItem is one actionable bullet with its inline metadata. DueDate is
// omitted from the wire form entirely when the source carried no due tag.
type ActionItem struct {
	Text     string `json:"text"`
	Assignee string `json:"assignee"`
	DueDate  string `json:"dueDate,omitempty"`
	Status   string `json:"status"`
}

// DecisionItem is one decision bullet with its metadata lines
type DecisionItem struct {
	Decision  string `json:"decision"`
	Rationale string `json:"rationale"`
	Opposing  string `json:"opposing"`
	Effect    string `json:"effect"`
}

// AgendaItem is one discrete topic segment within a meeting. Agenda is empty
// for the implicit catch-all item created when the source has no explicit
// agenda markers.
type AgendaItem struct {
	Agenda           string         `json:"agenda,omitempty"`
	Status           string         `json:"status"`
	PeoplePresent    []string       `json:"peoplePresent"`
	Facilitator      string         `json:"facilitator"`
	Documenter       string         `json:"documenter"`
	DiscussionPoints []string       `json:"discussionPoints"`
	LearningPoints   []string       `json:"learningPoints"`
	Issues           []string       `json:"issues"`
	MeetingTopics    []string       `json:"meetingTopics"`
	Leaderboard      []string       `json:"leaderboard"`
	ActionItems      []ActionItem   `json:"actionItems"`
	DecisionItems    []DecisionItem `json:"decisionItems"`
	TownHallUpdates  string         `json:"townHallUpdates"`
	TownHallSummary  string         `json:"townHallSummary"`
	Narrative        string         `json:"narrative"`
	GameRules        string         `json:"gameRules"`
	Discussion       string         `json:"discussion"`
}

// NewAgendaItem returns an item with every list field initialized
func NewAgendaItem(agenda, status string) AgendaItem {
	return AgendaItem{
		Agenda:           agenda,
		Status:           status,
		PeoplePresent:    []string{},
		DiscussionPoints: []string{},
		LearningPoints:   []string{},
		Issues:           []string{},
		MeetingTopics:    []string{},
		Leaderboard:      []string{},
		ActionItems:      []ActionItem{},
		DecisionItems:    []DecisionItem{},
	}
}

// HasContent reports whether any list or narrative field of the item is
// non-empty. Implicit catch-all items failing this predicate are discarded.
func (a AgendaItem) HasContent() bool {
	return len(a.DiscussionPoints) > 0 ||
		len(a.ActionItems) > 0 ||
		len(a.DecisionItems) > 0 ||
		strings.TrimSpace(a.TownHallUpdates) != "" ||
		strings.TrimSpace(a.TownHallSummary) != "" ||
		strings.TrimSpace(a.Narrative) != "" ||
		strings.TrimSpace(a.GameRules) != "" ||
		strings.TrimSpace(a.Discussion) != "" ||
		len(a.LearningPoints) > 0 ||
		len(a.MeetingTopics) > 0 ||
		len(a.Issues) > 0 ||
		len(a.Leaderboard) > 0 ||
		len(a.PeoplePresent) > 0 ||
		strings.TrimSpace(a.Facilitator) != "" ||
		strings.TrimSpace(a.Documenter) != ""
}
