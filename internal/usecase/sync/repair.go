package sync

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	spaceRuns   = regexp.MustCompile(`\s+`)
	edgeNonWord = regexp.MustCompile(`^\W+|\W+$`)
)

// RepairTopics runs the full cleanup pipeline over an extracted topic list:
// character-by-character corruption repair, merging of leftover single-char
// runs, splitting of entries that hold multiple topics joined by a newline,
// and whitespace sanitisation. Insertion order is preserved throughout.
func RepairTopics(topics []string) []string {
	topics = reassembleFragmented(topics)
	topics = mergeSingleCharRuns(topics)

	expanded := make([]string, 0, len(topics))
	for _, topic := range topics {
		if strings.Contains(topic, "\n") {
			for _, part := range strings.Split(topic, "\n") {
				if part = strings.TrimSpace(part); part != "" {
					expanded = append(expanded, part)
				}
			}
		} else {
			expanded = append(expanded, topic)
		}
	}

	sanitized := make([]string, 0, len(expanded))
	for _, topic := range expanded {
		topic = edgeNonWord.ReplaceAllString(spaceRuns.ReplaceAllString(strings.TrimSpace(topic), " "), "")
		if topic != "" {
			sanitized = append(sanitized, topic)
		}
	}
	return sanitized
}

// reassembleFragmented detects the upstream corruption where a topic list was
// stored character by character: more than 5 entries of which at least 70%
// are single characters. Words are rebuilt by concatenation; an empty or
// space entry followed by a capital letter and then a lowercase letter marks
// a topic boundary, otherwise it is a space inside the same phrase. The
// heuristic is lossy and deliberately left as-is.
func reassembleFragmented(topics []string) []string {
	if len(topics) <= 5 {
		return topics
	}
	single := 0
	for _, t := range topics {
		if len(t) == 1 {
			single++
		}
	}
	if float64(single) <= float64(len(topics))*0.7 {
		return topics
	}

	var reconstructed []string
	var current strings.Builder
	for i := 0; i < len(topics); i++ {
		ch := topics[i]
		if (ch == " " || ch == "") && current.Len() > 0 {
			if i+1 < len(topics) {
				if startsNewWord(topics, i+1) {
					reconstructed = append(reconstructed, current.String())
					current.Reset()
				} else {
					current.WriteString(" ")
				}
			} else {
				reconstructed = append(reconstructed, current.String())
				current.Reset()
			}
		} else {
			current.WriteString(ch)
		}
	}
	if current.Len() > 0 {
		reconstructed = append(reconstructed, current.String())
	}

	if len(reconstructed) == 0 {
		return []string{strings.Join(topics, "")}
	}

	// Entries long enough to plausibly hold several merged topics get split
	// on comma boundaries.
	var result []string
	for _, item := range reconstructed {
		if len(item) > 40 && strings.Contains(item, ",") {
			for _, part := range strings.Split(item, ",") {
				if part = strings.TrimSpace(part); part != "" {
					result = append(result, part)
				}
			}
		} else {
			result = append(result, item)
		}
	}
	return result
}

// startsNewWord reports whether the entry at i is a capital letter followed
// by a lowercase letter entry, the signature of a fresh topic after a
// boundary marker.
func startsNewWord(topics []string, i int) bool {
	if !isSingleRune(topics[i], unicode.IsUpper) {
		return false
	}
	return i+1 < len(topics) && isSingleRune(topics[i+1], unicode.IsLower)
}

func isSingleRune(s string, pred func(rune) bool) bool {
	runes := []rune(s)
	return len(runes) == 1 && pred(runes[0])
}

// mergeSingleCharRuns joins any remaining consecutive single-character
// entries into one word, leaving multi-character entries untouched.
func mergeSingleCharRuns(topics []string) []string {
	fixed := make([]string, 0, len(topics))
	for i := 0; i < len(topics); i++ {
		topic := topics[i]
		if topic == "" {
			continue
		}
		if len(topic) == 1 && i < len(topics)-1 && len(topics[i+1]) == 1 {
			var combined strings.Builder
			combined.WriteString(topic)
			j := i + 1
			for j < len(topics) && len(topics[j]) == 1 {
				combined.WriteString(topics[j])
				j++
			}
			fixed = append(fixed, combined.String())
			i = j - 1
			continue
		}
		fixed = append(fixed, topic)
	}
	return fixed
}
