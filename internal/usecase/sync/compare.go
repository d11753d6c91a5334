package sync

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/entities"
)

var (
	assigneeTagValue = regexp.MustCompile(`\[\*\*assignee\*\*\]\s+[^\[\]]+`)
	statusTagValue   = regexp.MustCompile(`\[\*\*status\*\*\]\s+[^\[\]]+`)
	dueTagValue      = regexp.MustCompile(`\[\*\*due\*\*\]\s+[^\[\]]+`)
	bareTags         = regexp.MustCompile(`\[\*\*(?:action|effect|rationale|opposing)\*\*\]`)

	quarterShort = regexp.MustCompile(`(?i)\b(q[1-4])\s+2025\b`)
	quarterLong  = regexp.MustCompile(`(?i)\b(quarter\s+[1-4])\s+2025\b`)

	assigneeTail = regexp.MustCompile(`\[\*\*assignee\*\*\][^\[]*`)
	statusTail   = regexp.MustCompile(`\[\*\*status\*\*\][^\[]*`)
	dueTail      = regexp.MustCompile(`\[\*\*due\*\*\][^\[]*`)
	actionTag    = regexp.MustCompile(`\[\*\*action\*\*\]`)

	quarterWordYear = regexp.MustCompile(`(?i)Quarter\s+(\d)\s+2025`)
	quarterAbbrYear = regexp.MustCompile(`(?i)Q(\d)\s+2025`)

	// Paths whose arrays are compared element by element as whole strings.
	elementWisePath = regexp.MustCompile(`agendaItems\[\d+\]\.(discussionPoints|meetingTopics)$`)
)

// CompareSummaries diffs a parsed candidate against a stored canonical
// record, both as JSON-shaped maps. When the canonical side nests the record
// under a "summary" key, that inner object is compared. Both sides are
// preprocessed the same way, so comparing a record with itself yields no
// differences.
func CompareSummaries(candidate, canonical map[string]any) []entities.Difference {
	if inner, ok := canonical["summary"].(map[string]any); ok {
		canonical = inner
	}
	left := preprocess(deepCopy(candidate).(map[string]any))
	right := preprocess(deepCopy(canonical).(map[string]any))

	var diffs []entities.Difference
	compareObjects(left, right, "", &diffs)
	return diffs
}

// preprocess applies the cosmetic fixes both sides get before diffing:
// attendance sorting, whitespace cleanup in discussion points, and tag and
// quarter normalization in action and decision texts.
func preprocess(data map[string]any) map[string]any {
	if info, ok := data["meetingInfo"].(map[string]any); ok {
		if s, ok := info["peoplePresent"].(string); ok {
			people := splitAndTrim(s, ",")
			sortPeople(people)
			info["peoplePresent"] = strings.Join(people, ", ")
		}
	}

	items, ok := data["agendaItems"].([]any)
	if !ok {
		return data
	}
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if people, ok := item["peoplePresent"].([]any); ok {
			sort.SliceStable(people, func(i, j int) bool {
				return strings.ToLower(stringify(people[i])) < strings.ToLower(stringify(people[j]))
			})
		}
		if points, ok := item["discussionPoints"].([]any); ok {
			for i, p := range points {
				points[i] = collapseSpaces(stringify(p))
			}
		}
		if actions, ok := item["actionItems"].([]any); ok {
			for _, a := range actions {
				if action, ok := a.(map[string]any); ok {
					if text, ok := action["text"].(string); ok {
						action["text"] = CleanActionText(text)
					}
				}
			}
		}
		if decisions, ok := item["decisionItems"].([]any); ok {
			for _, d := range decisions {
				if decision, ok := d.(map[string]any); ok {
					if text, ok := decision["decision"].(string); ok {
						decision["decision"] = CleanDecisionText(text)
					}
				}
			}
		}
	}
	return data
}

// CleanActionText strips metadata tags and their trailing values from an
// action text and normalizes quarter-year references and whitespace.
func CleanActionText(text string) string {
	if text == "" {
		return text
	}
	text = assigneeTail.ReplaceAllString(text, "")
	text = statusTail.ReplaceAllString(text, "")
	text = dueTail.ReplaceAllString(text, "")
	text = actionTag.ReplaceAllString(text, "")
	text = quarterWordYear.ReplaceAllString(text, "Quarter $1")
	text = quarterAbbrYear.ReplaceAllString(text, "Q$1")
	return collapseSpaces(text)
}

// CleanDecisionText normalizes quarter-year references and whitespace.
func CleanDecisionText(text string) string {
	if text == "" {
		return text
	}
	text = quarterWordYear.ReplaceAllString(text, "Quarter $1")
	text = quarterAbbrYear.ReplaceAllString(text, "Q$1")
	return collapseSpaces(text)
}

func collapseSpaces(text string) string {
	return strings.TrimSpace(spaceRuns.ReplaceAllString(text, " "))
}

// NormalizeString folds a value into its comparison form: lowercased,
// whitespace-collapsed, metadata tags stripped and quarter-year references
// shortened. Normalizing an already normalized string is a no-op.
func NormalizeString(value any) string {
	s, ok := value.(string)
	if !ok {
		return stringify(value)
	}
	s = strings.ToLower(collapseSpaces(s))
	s = assigneeTagValue.ReplaceAllString(s, "")
	s = statusTagValue.ReplaceAllString(s, "")
	s = dueTagValue.ReplaceAllString(s, "")
	s = bareTags.ReplaceAllString(s, "")
	s = quarterShort.ReplaceAllString(s, "$1")
	s = quarterLong.ReplaceAllString(s, "$1")
	return collapseSpaces(s)
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	if f, ok := value.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprint(value)
}

// compareObjects walks both maps over the sorted union of their keys; a key
// missing on one side compares as an absent value. Element-wise paths and
// action/decision texts compare as whole normalized strings.
func compareObjects(candidate, canonical map[string]any, path string, diffs *[]entities.Difference) {
	keys := keyUnion(candidate, canonical)
	for _, key := range keys {
		currentPath := key
		if path != "" {
			currentPath = path + "." + key
		}
		gv, gok := candidate[key]
		sv, sok := canonical[key]
		compareValues(gv, gok, sv, sok, currentPath, diffs)
	}
}

func compareValues(gv any, gok bool, sv any, sok bool, path string, diffs *[]entities.Difference) {
	gType := jsonType(gv, gok)
	sType := jsonType(sv, sok)
	if gType != sType {
		*diffs = append(*diffs, entities.Difference{Field: path, CandidateValue: gv, CanonicalValue: sv})
		return
	}

	switch g := gv.(type) {
	case map[string]any:
		compareObjects(g, sv.(map[string]any), path, diffs)
	case []any:
		compareArrays(g, sv.([]any), path, diffs)
	case string:
		s := sv.(string)
		if NormalizeString(g) != NormalizeString(s) {
			*diffs = append(*diffs, entities.Difference{Field: path, CandidateValue: g, CanonicalValue: s})
		}
	default:
		if gv != sv {
			*diffs = append(*diffs, entities.Difference{Field: path, CandidateValue: gv, CanonicalValue: sv})
		}
	}
}

func compareArrays(candidate, canonical []any, path string, diffs *[]entities.Difference) {
	if len(candidate) != len(canonical) && !strings.Contains(path, "discussionPoints") {
		*diffs = append(*diffs, entities.Difference{
			Field:          path + ".length",
			CandidateValue: len(candidate),
			CanonicalValue: len(canonical),
		})
	}

	if elementWisePath.MatchString(path) || path == "agendaItems.discussionPoints" || path == "agendaItems.meetingTopics" {
		max := len(candidate)
		if len(canonical) > max {
			max = len(canonical)
		}
		for i := 0; i < max; i++ {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			switch {
			case i >= len(candidate):
				*diffs = append(*diffs, entities.Difference{Field: elemPath, CanonicalValue: canonical[i]})
			case i >= len(canonical):
				*diffs = append(*diffs, entities.Difference{Field: elemPath, CandidateValue: candidate[i]})
			case NormalizeString(candidate[i]) != NormalizeString(canonical[i]):
				*diffs = append(*diffs, entities.Difference{Field: elemPath, CandidateValue: candidate[i], CanonicalValue: canonical[i]})
			}
		}
		return
	}

	for i := 0; i < len(candidate) && i < len(canonical); i++ {
		elemPath := fmt.Sprintf("%s[%d]", path, i)
		compareValues(candidate[i], true, canonical[i], true, elemPath, diffs)
	}
}

// jsonType buckets a decoded JSON value for the type-mismatch check. Missing
// keys get their own bucket so a value-versus-absent pair always reports.
func jsonType(value any, present bool) string {
	if !present {
		return "undefined"
	}
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64, int, int64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "other"
	}
}

func keyUnion(a, b map[string]any) []string {
	seen := make(map[string]bool, len(a)+len(b))
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range b {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func deepCopy(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = deepCopy(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = deepCopy(item)
		}
		return out
	default:
		return value
	}
}

// RecordToMap round-trips a typed record through JSON into the map form the
// diff engine works on.
func RecordToMap(record *entities.MeetingRecord) (map[string]any, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
