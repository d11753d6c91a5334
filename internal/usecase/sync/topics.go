package sync

import (
	"regexp"
	"strings"
)

// Topic extraction runs an ordered list of strategies from strictest to most
// permissive and keeps the first non-empty result. GitBook exports vary wildly
// in how the agenda list is formatted, so a single pattern is not enough.
type topicStrategy struct {
	name    string
	extract func(content string) ([]string, bool)
}

var topicStrategies = []topicStrategy{
	{"heading-then-bullets", topicsFromHeadingBullets},
	{"strict-bullet-block", topicsFromStrictBlock},
	{"permissive-section", topicsFromPermissiveSection},
	{"literal-line-scan", topicsFromLiteralLines},
}

var (
	agendaItemsHeading = regexp.MustCompile(`(?i)####\s+Agenda\s+Items\s*:`)
	agendaAliasSection = regexp.MustCompile(`(?i)####\s*(?:Agenda\s+Items|Meeting\s+Topics|In\s+this\s+meeting\s+we\s+discussed)\s*:([^#]*)`)
	strictBulletBlock  = regexp.MustCompile(`####\s+Agenda\s+Items:\s*\n((?:- [^\n]+\n?)+)`)
)

// topicsFromHeadingBullets takes the text between the agenda heading and the
// next heading of any depth and reads its bullets.
func topicsFromHeadingBullets(content string) ([]string, bool) {
	loc := agendaItemsHeading.FindStringIndex(content)
	if loc == nil {
		return nil, false
	}
	body := content[loc[1]:]
	if next := strings.Index(body, "####"); next >= 0 {
		body = body[:next]
	}
	topics := bulletItems(body)
	return topics, len(topics) > 0
}

// topicsFromStrictBlock requires a contiguous bullet block directly under the
// heading with no blank lines.
func topicsFromStrictBlock(content string) ([]string, bool) {
	m := strictBulletBlock.FindStringSubmatch(content)
	if m == nil {
		return nil, false
	}
	topics := bulletItems(m[1])
	return topics, len(topics) > 0
}

// topicsFromPermissiveSection accepts alias headings and loose whitespace,
// reading dashed lines when present and plain non-empty lines otherwise.
func topicsFromPermissiveSection(content string) ([]string, bool) {
	m := agendaAliasSection.FindStringSubmatch(content)
	if m == nil {
		return nil, false
	}
	body := m[1]
	if topics := bulletItems(body); len(topics) > 0 {
		return topics, true
	}

	var dashed, plain []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "-"); ok {
			dashed = append(dashed, strings.TrimSpace(rest))
		} else {
			plain = append(plain, line)
		}
	}
	if len(dashed) > 0 {
		return dashed, true
	}
	return plain, len(plain) > 0
}

// topicsFromLiteralLines is the last resort: find the literal heading line
// and collect the dash lines that follow until the next heading.
func topicsFromLiteralLines(content string) ([]string, bool) {
	lines := strings.Split(content, "\n")
	start := -1
	for i, line := range lines {
		if strings.EqualFold(strings.TrimSpace(line), "#### Agenda Items:") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, false
	}
	var topics []string
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "####") {
			break
		}
		if rest, ok := strings.CutPrefix(trimmed, "-"); ok {
			topics = append(topics, strings.TrimSpace(rest))
		}
	}
	return topics, len(topics) > 0
}
