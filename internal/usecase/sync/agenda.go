package sync

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/entities"
)

// Subsection heading patterns. Each subsection is located independently, so
// their relative order in the source does not matter; bullet order inside a
// subsection is preserved.
var (
	peopleHeading      = regexp.MustCompile(`(?i)#### (?:People Present|People|Attendees):`)
	facilitatorHeading = regexp.MustCompile(`(?i)#### Facilitator:`)
	documenterHeading  = regexp.MustCompile(`(?i)#### (?:Documenter|Note Taker):`)
	discussionPoints   = regexp.MustCompile(`#### (?:Discussion Points|In this meeting we discussed):`)
	actionItemsHeading = regexp.MustCompile(`#### Action Items:`)
	decisionHeading    = regexp.MustCompile(`#### Decision Items:`)
	townHallUpdates    = regexp.MustCompile(`#### Town Hall Updates:`)
	townHallSummary    = regexp.MustCompile(`#### Town Hall Summary:`)
	narrativeHeading   = regexp.MustCompile(`#### Narrative:`)
	gameRulesHeading   = regexp.MustCompile(`#### Game Rules:`)
	discussionHeading  = regexp.MustCompile(`#### Discussion:`)
	learningHeading    = regexp.MustCompile(`#### Learning Points:`)
	issuesHeading      = regexp.MustCompile(`#### (?:Issues|To carry over for next meeting):`)
	leaderboardHeading = regexp.MustCompile(`#### Leaderboard:`)

	bulletLine     = regexp.MustCompile(`(?m)^- (.+)$`)
	ordinalPrefix  = regexp.MustCompile(`^\d+(?:st|nd|rd|th)\s+`)
	actionLine     = regexp.MustCompile(`(?m)^- \[\*\*action\*\*\].*$`)
	actionText     = regexp.MustCompile(`(?m)^- \[\*\*action\*\*\] (.+)$`)
	metadataTag    = regexp.MustCompile(`\[\*\*(action|assignee|due|status)\*\*\]`)
	assigneeValue  = regexp.MustCompile(`\[\*\*assignee\*\*\]\s+([^\[\]\n]+)`)
	statusValue    = regexp.MustCompile(`\[\*\*status\*\*\]\s+([^\[\]\n]+)`)
	dueValue       = regexp.MustCompile(`\[\*\*due\*\*\]\s+([^\[\]\n]+)`)
	effectValue    = regexp.MustCompile(`-\s+\[\*\*effect\*\*\]\s+([^\n]+)`)
	rationaleValue = regexp.MustCompile(`-\s+\[\*\*rationale\*\*\]\s+([^\n]+)`)
	opposingValue  = regexp.MustCompile(`-\s+\[\*\*opposing\*\*\]\s+([^\n]+)`)
	decisionBullet = regexp.MustCompile(`(?m)^\s*-\s+(.+)$`)
)

// sectionBody returns the text between the first match of heading and the
// next "#### " heading line (or end of content).
func sectionBody(content string, heading *regexp.Regexp) (string, bool) {
	loc := heading.FindStringIndex(content)
	if loc == nil {
		return "", false
	}
	body := content[loc[1]:]
	if next := strings.Index(body, "\n#### "); next >= 0 {
		body = body[:next]
	}
	return body, true
}

func bulletItems(text string) []string {
	var items []string
	for _, m := range bulletLine.FindAllStringSubmatch(text, -1) {
		items = append(items, strings.TrimSpace(m[1]))
	}
	return items
}

// parseAgendaContent fills one agenda item from its content region. Every
// extraction is independently optional; missing subsections leave the
// corresponding field at its initialized default.
func parseAgendaContent(content string, item *entities.AgendaItem) {
	parseItemAttendance(content, item)

	for _, strategy := range topicStrategies {
		if topics, ok := strategy.extract(content); ok && len(topics) > 0 {
			item.MeetingTopics = RepairTopics(topics)
			break
		}
	}

	if body, ok := sectionBody(content, discussionPoints); ok {
		for _, point := range bulletItems(body) {
			if !strings.HasSuffix(point, ".") && !strings.HasSuffix(point, "!") && !strings.HasSuffix(point, "?") {
				point += "."
			}
			item.DiscussionPoints = append(item.DiscussionPoints, point)
		}
	}

	if body, ok := sectionBody(content, actionItemsHeading); ok {
		item.ActionItems = append(item.ActionItems, parseActionItems(body)...)
	}

	if body, ok := sectionBody(content, decisionHeading); ok {
		item.DecisionItems = append(item.DecisionItems, parseDecisionItems(body)...)
	}

	if body, ok := sectionBody(content, townHallUpdates); ok {
		item.TownHallUpdates = strings.TrimSpace(body)
	}
	if body, ok := sectionBody(content, townHallSummary); ok {
		item.TownHallSummary = strings.TrimSpace(body)
	}
	if body, ok := sectionBody(content, narrativeHeading); ok {
		item.Narrative = strings.TrimSpace(body)
	}
	if body, ok := sectionBody(content, gameRulesHeading); ok {
		item.GameRules = strings.TrimSpace(body)
	}
	if body, ok := sectionBody(content, discussionHeading); ok {
		item.Discussion = strings.TrimSpace(body)
	}
	if body, ok := sectionBody(content, learningHeading); ok {
		item.LearningPoints = append(item.LearningPoints, bulletItems(body)...)
	}
	if body, ok := sectionBody(content, issuesHeading); ok {
		item.Issues = append(item.Issues, bulletItems(body)...)
	}
	if body, ok := sectionBody(content, leaderboardHeading); ok {
		for _, entry := range bulletItems(body) {
			item.Leaderboard = append(item.Leaderboard, strings.TrimSpace(ordinalPrefix.ReplaceAllString(entry, "")))
		}
	}
}

// parseItemAttendance extracts the item-local attendee breakdown. The
// facilitator and documenter keep their original casing and are removed from
// the present list (case-insensitive comparison), which is then sorted
// case-insensitively.
func parseItemAttendance(content string, item *entities.AgendaItem) {
	if body, ok := sectionBody(content, peopleHeading); ok {
		text := strings.TrimSpace(body)
		if bullets := bulletItems(text); len(bullets) > 0 {
			item.PeoplePresent = bullets
		} else if people := splitAndTrim(text, ","); len(people) > 0 {
			item.PeoplePresent = people
		} else {
			item.PeoplePresent = splitAndTrim(text, "\n")
		}
	}
	if body, ok := sectionBody(content, facilitatorHeading); ok {
		item.Facilitator = strings.TrimSpace(body)
	}
	if body, ok := sectionBody(content, documenterHeading); ok {
		item.Documenter = strings.TrimSpace(body)
	}

	item.PeoplePresent = excludePerson(item.PeoplePresent, item.Facilitator)
	item.PeoplePresent = excludePerson(item.PeoplePresent, item.Documenter)

	sortPeople(item.PeoplePresent)
}

func sortPeople(people []string) {
	sort.SliceStable(people, func(i, j int) bool {
		return strings.ToLower(people[i]) < strings.ToLower(people[j])
	})
}

func splitAndTrim(text, sep string) []string {
	var out []string
	for _, part := range strings.Split(text, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func excludePerson(people []string, name string) []string {
	if name == "" || len(people) == 0 {
		return people
	}
	lower := strings.ToLower(name)
	kept := people[:0]
	for _, p := range people {
		if strings.ToLower(p) != lower {
			kept = append(kept, p)
		}
	}
	return kept
}

// parseActionItems splits the section into blocks starting at action bullets
// and extracts each one. Metadata is tried on the action line itself first,
// then on following metadata lines (dash-prefixed or bare). An item is only
// emitted when its action text is non-empty; dueDate stays unset when the
// source carries no due tag.
func parseActionItems(body string) []entities.ActionItem {
	var items []entities.ActionItem
	for _, block := range splitActionBlocks(body) {
		line := actionLine.FindString(block)
		if line == "" {
			continue
		}

		var text, assignee, status, due string
		if strings.Contains(line, "[**assignee**]") ||
			strings.Contains(line, "[**due**]") ||
			strings.Contains(line, "[**status**]") {
			fields := inlineTagFields(line)
			text = fields["action"]
			assignee = fields["assignee"]
			status = fields["status"]
			due = fields["due"]
		} else {
			if m := actionText.FindStringSubmatch(block); m != nil {
				text = strings.TrimSpace(m[1])
			}
			if m := assigneeValue.FindStringSubmatch(block); m != nil {
				assignee = strings.TrimSpace(m[1])
			}
			if m := statusValue.FindStringSubmatch(block); m != nil {
				status = strings.TrimSpace(m[1])
			}
			if m := dueValue.FindStringSubmatch(block); m != nil {
				due = strings.TrimSpace(m[1])
			}
		}

		if text == "" {
			continue
		}
		items = append(items, entities.ActionItem{
			Text:     text,
			Assignee: assignee,
			Status:   status,
			DueDate:  due,
		})
	}
	return items
}

func splitActionBlocks(body string) []string {
	starts := actionLine.FindAllStringIndex(body, -1)
	var blocks []string
	for i, loc := range starts {
		end := len(body)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		blocks = append(blocks, body[loc[0]:end])
	}
	return blocks
}

// inlineTagFields tokenizes a single action line whose metadata sits inline:
// each tag's value runs from the end of the tag to the start of the next tag
// or end of line.
func inlineTagFields(line string) map[string]string {
	fields := map[string]string{}
	tags := metadataTag.FindAllStringSubmatchIndex(line, -1)
	for i, tag := range tags {
		name := line[tag[2]:tag[3]]
		end := len(line)
		if i+1 < len(tags) {
			end = tags[i+1][0]
		}
		fields[name] = strings.TrimSpace(strings.TrimPrefix(line[tag[1]:end], "-"))
	}
	// The action value still carries the leading bullet when the action tag
	// was not first on the line; it never is in practice, but the text value
	// must not keep a stray "- " prefix either way.
	if v, ok := fields["action"]; ok {
		fields["action"] = strings.TrimSpace(v)
	}
	return fields
}

// parseDecisionItems groups the section into blocks delimited by top-level
// bullets that do not immediately open with a metadata tag, then extracts the
// decision text and its metadata lines from each block.
func parseDecisionItems(body string) []entities.DecisionItem {
	var blocks []string
	var current []string
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		if startsDecision(line) {
			if len(current) > 0 {
				blocks = append(blocks, strings.Join(current, "\n"))
			}
			current = []string{line}
		} else if len(current) > 0 {
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}

	var items []entities.DecisionItem
	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		m := decisionBullet.FindStringSubmatch(block)
		if m == nil {
			continue
		}
		item := entities.DecisionItem{Decision: strings.TrimSpace(m[1])}
		if v := effectValue.FindStringSubmatch(block); v != nil {
			item.Effect = strings.TrimSpace(v[1])
		}
		if v := rationaleValue.FindStringSubmatch(block); v != nil {
			item.Rationale = strings.TrimSpace(v[1])
		}
		if v := opposingValue.FindStringSubmatch(block); v != nil {
			item.Opposing = strings.TrimSpace(v[1])
		}
		items = append(items, item)
	}
	return items
}

// startsDecision reports whether a line opens a new decision block: a bullet
// whose text does not begin with a metadata tag (metadata continuation lines
// are bullets too, so the tag check is what separates the two).
func startsDecision(line string) bool {
	m := decisionBullet.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	return !strings.HasPrefix(strings.TrimSpace(m[1]), "[**")
}
