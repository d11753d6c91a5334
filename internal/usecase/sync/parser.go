package sync

import (
	"regexp"
	"strings"

	apperrors "github.com/Andre-Diamond/scripts-for-scraps/errors"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/entities"
)

// Document-level patterns. Workgroup blocks open with an exact "### " line;
// the deeper "#### " headings never match because their fourth character is
// another hash, not a space.
var (
	workgroupHeading = regexp.MustCompile(`(?m)^### (.+)$`)

	meetingNameLine = regexp.MustCompile(`- \*\*Type of meeting:\*\* ([^\n]+)`)
	inlineDateLine  = regexp.MustCompile(`- \*\*Date:\*\* (\d{4}-\d{2}-\d{2})`)
	presentLine     = regexp.MustCompile(`- \*\*Present:\*\* ([^\n]+)`)
	purposeLine     = regexp.MustCompile(`- \*\*Purpose:\*\* ([^\n]+)`)
	townHallLine    = regexp.MustCompile(`- \*\*Town Hall Number:\*\* ([^\n]+)`)

	facilitatorTag = regexp.MustCompile(`([^,\[]+?)\s*\[\*\*facilitator\*\*\]`)
	documenterTag  = regexp.MustCompile(`([^,\[]+?)\s*\[\*\*documenter\*\*\]`)
	translatorTag  = regexp.MustCompile(`([^,\[]+?)\s*\[\*\*translator\*\*\]`)

	meetingVideoLink = regexp.MustCompile(`(?i)- \*\*Meeting video:\*\* \[Link\]\(([^)]+)\)`)
	mediaLinkLine    = regexp.MustCompile(`(?i)- \*\*Media link:\*\* \[Link\]\(([^)]+)\)`)
	miroBoardLink    = regexp.MustCompile(`(?i)- \*\*Miro board:\*\* \[Link\]\(([^)]+)\)`)
	transcriptLink   = regexp.MustCompile(`(?i)- \*\*Transcript:\*\* \[Link\]\(([^)]+)\)`)
	otherMediaLink   = regexp.MustCompile(`(?i)- \*\*Other media:\*\* \[Link\]\(([^)]+)\)`)
	workingDocsLabel = regexp.MustCompile(`(?i)- \*\*Working Docs:\*\*`)
	embedDirective   = regexp.MustCompile(`\{% embed url="([^"]+)" %\}`)

	// Markdown links whose URL may itself contain one level of balanced
	// parentheses, as Google Docs URLs often do.
	markdownLink = regexp.MustCompile(`\[([^\]]+)\]\(([^()]*(?:\([^()]*\)[^()]*)*)\)`)

	explicitAgendaItem = regexp.MustCompile(`#### Agenda item (\d+) - ([^-\n]+) - \[([^\]]+)\]`)
	contentStart       = regexp.MustCompile(`(?i)#### (?:People Present|People|Attendees|Facilitator|Documenter|Note Taker|Agenda Items|Meeting Topics|In this meeting we discussed|Discussion Points|Action Items|Decision Items|Town Hall Updates|Town Hall Summary|Narrative|Game Rules|Discussion|Learning Points|Issues|To carry over for next meeting|Leaderboard):`)

	tagsHeading      = regexp.MustCompile(`(?i)#### Keywords/tags:`)
	topicsCoveredTag = regexp.MustCompile(`(?i)- \*\*topics covered:\*\* ([^\n]+)`)
	emotionsTag      = regexp.MustCompile(`(?i)- \*\*emotions:\*\* ([^\n]+)`)
	otherTag         = regexp.MustCompile(`(?i)- \*\*other:\*\* ([^\n]+)`)
	gamesPlayedTag   = regexp.MustCompile(`(?i)- \*\*games played:\*\* ([^\n]+)`)
)

const (
	noSummaryMarker = "No Summary Given"
	canceledMarker  = "Meeting was cancelled"
)

// ParseResult holds one record per workgroup block found in a document.
type ParseResult struct {
	Records []*entities.MeetingRecord
}

// Multiple reports whether the source document contained more than one
// workgroup section.
func (r *ParseResult) Multiple() bool {
	return len(r.Records) > 1
}

// Parse turns one markdown document into meeting records. The document is
// normalized first, then split into workgroup blocks; each block is dated by
// the closest preceding date heading. A document with no workgroup heading is
// parsed as a single implicit block.
func Parse(markdown string, canonical []*entities.CanonicalRecord) (*ParseResult, error) {
	if strings.TrimSpace(markdown) == "" {
		return nil, apperrors.ErrNoContent("")
	}

	text := NormalizeText(markdown)
	headings := ExtractDateHeadings(text)

	matches := workgroupHeading.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		record := parseSection(text, FindClosestDate(0, headings), canonical)
		return &ParseResult{Records: []*entities.MeetingRecord{record}}, nil
	}

	result := &ParseResult{}
	for i, loc := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		section := text[loc[0]:end]
		record := parseSection(section, FindClosestDate(loc[0], headings), canonical)
		result.Records = append(result.Records, record)
	}
	return result, nil
}

// parseSection extracts one workgroup block into a record. date is the
// fallback from the surrounding date heading; an inline Date field wins.
func parseSection(section, date string, canonical []*entities.CanonicalRecord) *entities.MeetingRecord {
	record := entities.NewMeetingRecord(date)

	if m := workgroupHeading.FindStringSubmatch(section); m != nil {
		record.Workgroup = strings.TrimSpace(m[1])
	}
	if m := meetingNameLine.FindStringSubmatch(section); m != nil {
		record.MeetingInfo.Name = strings.TrimSpace(m[1])
	}
	if m := inlineDateLine.FindStringSubmatch(section); m != nil {
		record.MeetingInfo.Date = m[1]
	}
	record.WorkgroupID = resolveWorkgroupID(record, canonical)

	parseAttendanceLine(section, record)

	if m := purposeLine.FindStringSubmatch(section); m != nil {
		record.MeetingInfo.Purpose = strings.TrimSpace(m[1])
	}
	if m := townHallLine.FindStringSubmatch(section); m != nil {
		record.MeetingInfo.TownHallNumber = strings.TrimSpace(m[1])
	}
	if m := meetingVideoLink.FindStringSubmatch(section); m != nil {
		record.MeetingInfo.MeetingVideoLink = strings.TrimSpace(m[1])
	}
	if m := mediaLinkLine.FindStringSubmatch(section); m != nil {
		record.MeetingInfo.MediaLink = strings.TrimSpace(m[1])
	}
	if m := miroBoardLink.FindStringSubmatch(section); m != nil {
		record.MeetingInfo.MiroBoardLink = strings.TrimSpace(m[1])
	}
	if m := transcriptLink.FindStringSubmatch(section); m != nil {
		record.MeetingInfo.TranscriptLink = strings.TrimSpace(m[1])
	}
	if m := otherMediaLink.FindStringSubmatch(section); m != nil {
		record.MeetingInfo.OtherMediaLink = strings.TrimSpace(m[1])
	}
	if m := embedDirective.FindStringSubmatch(section); m != nil {
		record.MeetingInfo.GoogleSlides = strings.TrimSpace(m[1])
	}
	parseWorkingDocs(section, record)

	parseAgendaItems(section, record)
	parseTags(section, record)

	if strings.Contains(section, noSummaryMarker) {
		record.NoSummaryGiven = true
		record.NoSummaryGivenText = noSummaryMarker
	}
	if strings.Contains(section, canceledMarker) {
		record.CanceledSummary = true
		record.CanceledSummaryText = canceledMarker
	}

	return record
}

// parseAttendanceLine handles the "- **Present:**" field. Role-tagged names
// become facilitator, documenter and translator and are removed from the
// list; the remainder is deduplicated case-insensitively with the first
// casing kept, then sorted case-insensitively and re-joined.
func parseAttendanceLine(section string, record *entities.MeetingRecord) {
	m := presentLine.FindStringSubmatch(section)
	if m == nil {
		return
	}
	line := m[1]

	if f := facilitatorTag.FindStringSubmatch(line); f != nil {
		record.MeetingInfo.Host = strings.TrimSpace(f[1])
		line = strings.Replace(line, f[0], "", 1)
	}
	if d := documenterTag.FindStringSubmatch(line); d != nil {
		record.MeetingInfo.Documenter = strings.TrimSpace(d[1])
		line = strings.Replace(line, d[0], "", 1)
	}
	if t := translatorTag.FindStringSubmatch(line); t != nil {
		record.MeetingInfo.Translator = strings.TrimSpace(t[1])
		line = strings.Replace(line, t[0], "", 1)
	}

	seen := make(map[string]bool)
	var people []string
	for _, part := range strings.Split(line, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		people = append(people, name)
	}
	sortPeople(people)
	record.MeetingInfo.PeoplePresent = strings.Join(people, ", ")
}

// parseWorkingDocs reads markdown links from the region after the Working
// Docs label, up to the first blank line or the next heading.
func parseWorkingDocs(section string, record *entities.MeetingRecord) {
	loc := workingDocsLabel.FindStringIndex(section)
	if loc == nil {
		return
	}
	region := section[loc[1]:]
	if end := regexp.MustCompile(`\n\s*\n|\n####`).FindStringIndex(region); end != nil {
		region = region[:end[0]]
	}
	for _, link := range markdownLink.FindAllStringSubmatch(region, -1) {
		record.MeetingInfo.WorkingDocs = append(record.MeetingInfo.WorkingDocs, entities.WorkingDoc{
			Title: strings.TrimSpace(link[1]),
			Link:  strings.TrimSpace(link[2]),
		})
	}
}

// parseAgendaItems prefers explicit "#### Agenda item N - Title - [status]"
// blocks. When none exist, the content sections are treated as one implicit
// item with the carry-over status; it is kept only if it actually holds
// content.
func parseAgendaItems(section string, record *entities.MeetingRecord) {
	matches := explicitAgendaItem.FindAllStringSubmatchIndex(section, -1)
	if len(matches) > 0 {
		for i, loc := range matches {
			end := len(section)
			if i+1 < len(matches) {
				end = matches[i+1][0]
			}
			title := strings.TrimSpace(section[loc[4]:loc[5]])
			status := strings.TrimSpace(section[loc[6]:loc[7]])
			item := entities.NewAgendaItem(title, status)
			parseAgendaContent(section[loc[1]:end], &item)
			record.AgendaItems = append(record.AgendaItems, item)
		}
		return
	}

	loc := contentStart.FindStringIndex(section)
	if loc == nil {
		return
	}
	item := entities.NewAgendaItem("", entities.AgendaStatusCarryOver)
	parseAgendaContent(section[loc[0]:], &item)
	if item.HasContent() {
		record.AgendaItems = append(record.AgendaItems, item)
	}
}

func parseTags(section string, record *entities.MeetingRecord) {
	loc := tagsHeading.FindStringIndex(section)
	if loc == nil {
		return
	}
	region := section[loc[1]:]
	if next := strings.Index(region, "\n### "); next >= 0 {
		region = region[:next]
	}
	if m := topicsCoveredTag.FindStringSubmatch(region); m != nil {
		record.Tags.TopicsCovered = strings.TrimSpace(m[1])
	}
	if m := emotionsTag.FindStringSubmatch(region); m != nil {
		record.Tags.Emotions = strings.TrimSpace(m[1])
	}
	if m := otherTag.FindStringSubmatch(region); m != nil {
		record.Tags.Other = strings.TrimSpace(m[1])
	}
	if m := gamesPlayedTag.FindStringSubmatch(region); m != nil {
		record.Tags.GamesPlayed = strings.TrimSpace(m[1])
	}
}

// resolveWorkgroupID matches the parsed block against canonical records by
// workgroup name only, exact first then case-insensitive. The canonical date
// is ignored so a workgroup keeps its id across meetings. When several
// records share a lowercase name the first wins.
func resolveWorkgroupID(record *entities.MeetingRecord, canonical []*entities.CanonicalRecord) string {
	if record.Workgroup == "" {
		return ""
	}
	for _, c := range canonical {
		if c.Workgroup() == record.Workgroup {
			return c.ResolveWorkgroupID()
		}
	}
	lower := strings.ToLower(record.Workgroup)
	for _, c := range canonical {
		if strings.ToLower(c.Workgroup()) == lower {
			return c.ResolveWorkgroupID()
		}
	}
	return ""
}
