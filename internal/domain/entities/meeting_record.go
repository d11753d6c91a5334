package entities

// MeetingType classifies how a meeting record was produced
type MeetingType string

const (
	MeetingTypeCustom  MeetingType = "Custom"
	MeetingTypeWeekly  MeetingType = "Weekly"
	MeetingTypeMonthly MeetingType = "Monthly"
)

// WorkingDoc is a titled link referenced by a meeting
type WorkingDoc struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// TimestampedVideo holds a video link with its timestamp index
type TimestampedVideo struct {
	URL        string `json:"url"`
	Intro      string `json:"intro"`
	Timestamps string `json:"timestamps"`
}

// MeetingInfo holds the fixed metadata fields extracted from a workgroup block
type MeetingInfo struct {
	Name             string           `json:"name"`
	Date             string           `json:"date"`
	Host             string           `json:"host"`
	Documenter       string           `json:"documenter"`
	Translator       string           `json:"translator"`
	PeoplePresent    string           `json:"peoplePresent"`
	Purpose          string           `json:"purpose"`
	TownHallNumber   string           `json:"townHallNumber"`
	GoogleSlides     string           `json:"googleSlides"`
	MeetingVideoLink string           `json:"meetingVideoLink"`
	MiroBoardLink    string           `json:"miroBoardLink"`
	OtherMediaLink   string           `json:"otherMediaLink"`
	TranscriptLink   string           `json:"transcriptLink"`
	MediaLink        string           `json:"mediaLink"`
	WorkingDocs      []WorkingDoc     `json:"workingDocs"`
	TimestampedVideo TimestampedVideo `json:"timestampedVideo"`
}

// Tags holds free-text classification fields for a meeting
type Tags struct {
	TopicsCovered string `json:"topicsCovered"`
	Emotions      string `json:"emotions"`
	Other         string `json:"other"`
	GamesPlayed   string `json:"gamesPlayed"`
}

// MeetingRecord is the normalized structured form of one workgroup's meeting
// minutes. Every list field is always initialized, never nil, so consumers
// never have to distinguish absent from empty.
type MeetingRecord struct {
	Workgroup          string       `json:"workgroup"`
	WorkgroupID        string       `json:"workgroup_id"`
	MeetingInfo        MeetingInfo  `json:"meetingInfo"`
	AgendaItems        []AgendaItem `json:"agendaItems"`
	Tags               Tags         `json:"tags"`
	Type               MeetingType  `json:"type"`
	NoSummaryGiven     bool         `json:"noSummaryGiven"`
	CanceledSummary    bool         `json:"canceledSummary"`
	NoSummaryGivenText string       `json:"noSummaryGivenText,omitempty"`
	CanceledSummaryText string      `json:"canceledSummaryText,omitempty"`
}

// NewMeetingRecord returns a record with every list field initialized and the
// given date pre-filled from the nearest preceding date heading.
func NewMeetingRecord(date string) *MeetingRecord {
	return &MeetingRecord{
		MeetingInfo: MeetingInfo{
			Date:        date,
			WorkingDocs: []WorkingDoc{},
		},
		AgendaItems: []AgendaItem{},
		Type:        MeetingTypeCustom,
	}
}
