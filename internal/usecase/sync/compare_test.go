package sync

import (
	"strings"
	"testing"
)

func TestNormalizeString(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
	}{
		{"lowercase and collapse", "  Review   The Budget ", "review the budget"},
		{"assignee tag stripped", "Review the budget [**assignee**] Bob", "review the budget"},
		{"bare tag stripped", "[**action**] Publish notes", "publish notes"},
		{"quarter abbreviation", "Deliver by Q3 2025", "deliver by q3"},
		{"quarter long form", "Plan for Quarter 2 2025", "plan for quarter 2"},
		{"non-string stringified", float64(7), "7"},
		{"nil empty", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeString(tc.input); got != tc.want {
				t.Fatalf("NormalizeString(%v) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeStringIdempotent(t *testing.T) {
	inputs := []string{
		"Review [**assignee**] Bob [**status**] todo",
		"Finish migration by Q1 2025",
		"  plain   text  ",
	}
	for _, input := range inputs {
		once := NormalizeString(input)
		if twice := NormalizeString(once); twice != once {
			t.Errorf("not idempotent for %q: %q vs %q", input, once, twice)
		}
	}
}

func TestCleanActionText(t *testing.T) {
	got := CleanActionText("Update docs [**assignee**] Bob [**due**] 2025-03-01 [**status**] todo")
	if got != "Update docs" {
		t.Fatalf("CleanActionText = %q, want %q", got, "Update docs")
	}
	if got := CleanActionText("Ship the report by Quarter 3 2025"); got != "Ship the report by Quarter 3" {
		t.Fatalf("quarter normalization = %q", got)
	}
	if got := CleanActionText(""); got != "" {
		t.Fatalf("empty passthrough = %q", got)
	}
}

func testSummaryMap() map[string]any {
	return map[string]any{
		"workgroup": "Gamers Guild",
		"meetingInfo": map[string]any{
			"name":          "Weekly",
			"date":          "2024-01-01",
			"peoplePresent": "bob, Alice",
		},
		"agendaItems": []any{
			map[string]any{
				"status":           "carry over",
				"discussionPoints": []any{"Reviewed the rules.", "Scores were updated."},
				"actionItems": []any{
					map[string]any{"text": "Publish results", "assignee": "Bob", "status": "todo"},
				},
			},
		},
	}
}

func TestCompareSummariesIdentical(t *testing.T) {
	diffs := CompareSummaries(testSummaryMap(), testSummaryMap())
	if len(diffs) != 0 {
		t.Fatalf("expected no differences, got %+v", diffs)
	}
}

func TestCompareSummariesUnwrapsSummaryKey(t *testing.T) {
	canonical := map[string]any{"summary": testSummaryMap()}
	diffs := CompareSummaries(testSummaryMap(), canonical)
	if len(diffs) != 0 {
		t.Fatalf("expected no differences, got %+v", diffs)
	}
}

func TestCompareSummariesAttendanceOrderIgnored(t *testing.T) {
	candidate := testSummaryMap()
	canonical := testSummaryMap()
	canonical["meetingInfo"].(map[string]any)["peoplePresent"] = "Alice, bob"
	diffs := CompareSummaries(candidate, canonical)
	if len(diffs) != 0 {
		t.Fatalf("attendance order should not matter, got %+v", diffs)
	}
}

func TestCompareSummariesDiscussionPointDiff(t *testing.T) {
	candidate := testSummaryMap()
	canonical := testSummaryMap()
	item := canonical["agendaItems"].([]any)[0].(map[string]any)
	item["discussionPoints"] = []any{"Reviewed the rules.", "Something else entirely."}

	diffs := CompareSummaries(candidate, canonical)
	if len(diffs) != 1 {
		t.Fatalf("expected exactly one difference, got %+v", diffs)
	}
	if diffs[0].Field != "agendaItems[0].discussionPoints[1]" {
		t.Fatalf("field = %q", diffs[0].Field)
	}
}

func TestCompareSummariesDiscussionPointLengthSuppressed(t *testing.T) {
	candidate := testSummaryMap()
	canonical := testSummaryMap()
	item := canonical["agendaItems"].([]any)[0].(map[string]any)
	item["discussionPoints"] = []any{"Reviewed the rules."}

	diffs := CompareSummaries(candidate, canonical)
	for _, d := range diffs {
		if strings.HasSuffix(d.Field, ".length") {
			t.Fatalf("discussionPoints must not report a length diff: %+v", d)
		}
	}
	if len(diffs) != 1 {
		t.Fatalf("expected one element diff, got %+v", diffs)
	}
	if diffs[0].Field != "agendaItems[0].discussionPoints[1]" {
		t.Fatalf("field = %q", diffs[0].Field)
	}
}

func TestCompareSummariesArrayLengthReported(t *testing.T) {
	candidate := testSummaryMap()
	canonical := testSummaryMap()
	item := canonical["agendaItems"].([]any)[0].(map[string]any)
	item["actionItems"] = []any{}

	diffs := CompareSummaries(candidate, canonical)
	found := false
	for _, d := range diffs {
		if d.Field == "agendaItems[0].actionItems.length" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an actionItems.length diff, got %+v", diffs)
	}
}

func TestCompareSummariesMissingKey(t *testing.T) {
	candidate := testSummaryMap()
	canonical := testSummaryMap()
	delete(canonical, "workgroup")

	diffs := CompareSummaries(candidate, canonical)
	if len(diffs) != 1 {
		t.Fatalf("expected exactly one difference, got %+v", diffs)
	}
	if diffs[0].Field != "workgroup" {
		t.Fatalf("field = %q", diffs[0].Field)
	}
}

func TestCompareSummariesDoesNotMutateInput(t *testing.T) {
	candidate := testSummaryMap()
	canonical := testSummaryMap()
	CompareSummaries(candidate, canonical)
	if candidate["meetingInfo"].(map[string]any)["peoplePresent"] != "bob, Alice" {
		t.Fatalf("candidate was mutated: %v", candidate["meetingInfo"])
	}
}

func TestCompareSummariesTagNoise(t *testing.T) {
	candidate := testSummaryMap()
	canonical := testSummaryMap()
	item := canonical["agendaItems"].([]any)[0].(map[string]any)
	action := item["actionItems"].([]any)[0].(map[string]any)
	action["text"] = "Publish results [**assignee**] Bob [**status**] todo"

	diffs := CompareSummaries(candidate, canonical)
	if len(diffs) != 0 {
		t.Fatalf("tag noise in action text should normalize away, got %+v", diffs)
	}
}
