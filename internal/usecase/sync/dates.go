package sync

import (
	"fmt"
	"regexp"
	"strconv"
)

// DateHeading is a date heading line located at a byte offset in a document
type DateHeading struct {
	Offset int
	Date   string // ISO YYYY-MM-DD
}

// Date headings look like "## January 1st 2024" or "## March 22nd, 2025".
var dateHeadingPattern = regexp.MustCompile(`(?m)^## ([A-Za-z]+) (\d{1,2})(?:st|nd|rd|th),? (\d{4})`)

// Fixed month-name table; no locale support.
var monthNumbers = map[string]int{
	"January": 1, "February": 2, "March": 3, "April": 4,
	"May": 5, "June": 6, "July": 7, "August": 8,
	"September": 9, "October": 10, "November": 11, "December": 12,
}

// ExtractDateHeadings returns every date heading in the document in source
// order, with offsets strictly increasing. Headings with unknown month names
// are ignored.
func ExtractDateHeadings(markdown string) []DateHeading {
	var headings []DateHeading
	for _, m := range dateHeadingPattern.FindAllStringSubmatchIndex(markdown, -1) {
		month, ok := monthNumbers[markdown[m[2]:m[3]]]
		if !ok {
			continue
		}
		day, err := strconv.Atoi(markdown[m[4]:m[5]])
		if err != nil {
			continue
		}
		year := markdown[m[6]:m[7]]
		headings = append(headings, DateHeading{
			Offset: m[0],
			Date:   fmt.Sprintf("%s-%02d-%02d", year, month, day),
		})
	}
	return headings
}

// FindClosestDate returns the date of the nearest heading strictly before the
// given position, or "" when no heading precedes it. A heading after the
// position is never used.
func FindClosestDate(position int, headings []DateHeading) string {
	closest := ""
	closestDistance := -1
	for _, h := range headings {
		if h.Offset >= position {
			continue
		}
		if d := position - h.Offset; closestDistance < 0 || d < closestDistance {
			closestDistance = d
			closest = h.Date
		}
	}
	return closest
}
