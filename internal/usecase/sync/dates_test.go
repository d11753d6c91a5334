package sync

import "testing"

func TestExtractDateHeadings(t *testing.T) {
	doc := "## January 1st 2024\n\nsome text\n\n## March 22nd, 2025\n\nmore text\n"
	headings := ExtractDateHeadings(doc)
	if len(headings) != 2 {
		t.Fatalf("expected 2 headings, got %d", len(headings))
	}
	if headings[0].Date != "2024-01-01" {
		t.Errorf("first heading date = %q, want 2024-01-01", headings[0].Date)
	}
	if headings[1].Date != "2025-03-22" {
		t.Errorf("second heading date = %q, want 2025-03-22", headings[1].Date)
	}
	if headings[0].Offset >= headings[1].Offset {
		t.Errorf("offsets not increasing: %d >= %d", headings[0].Offset, headings[1].Offset)
	}
}

func TestExtractDateHeadingsIgnoresUnknownMonth(t *testing.T) {
	headings := ExtractDateHeadings("## Januember 3rd 2024\n")
	if len(headings) != 0 {
		t.Fatalf("expected no headings, got %d", len(headings))
	}
}

func TestFindClosestDate(t *testing.T) {
	doc := "## January 1st 2024\n\n### First WG\n\n## February 5th 2024\n\n### Second WG\n"
	headings := ExtractDateHeadings(doc)
	if len(headings) != 2 {
		t.Fatalf("expected 2 headings, got %d", len(headings))
	}

	if got := FindClosestDate(0, headings); got != "" {
		t.Errorf("position 0 should have no preceding heading, got %q", got)
	}
	if got := FindClosestDate(headings[1].Offset-1, headings); got != "2024-01-01" {
		t.Errorf("before second heading = %q, want 2024-01-01", got)
	}
	if got := FindClosestDate(len(doc), headings); got != "2024-02-05" {
		t.Errorf("end of document = %q, want 2024-02-05", got)
	}
}
