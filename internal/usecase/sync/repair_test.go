package sync

import (
	"reflect"
	"testing"
)

func TestRepairTopics(t *testing.T) {
	cases := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			"clean list untouched",
			[]string{"Roadmap review", "Budget planning"},
			[]string{"Roadmap review", "Budget planning"},
		},
		{
			"character fragments reassembled",
			[]string{"G", "o", "v", "e", "r", "n", "a", "n", "c", "e", "", "B", "u", "d", "g", "e", "t"},
			[]string{"Governance", "Budget"},
		},
		{
			"single char runs merged",
			[]string{"a", "b", "c"},
			[]string{"abc"},
		},
		{
			"newline joined entries split",
			[]string{"First topic\nSecond topic"},
			[]string{"First topic", "Second topic"},
		},
		{
			"whitespace collapsed and empties dropped",
			[]string{"  Multiple   spaces  ", "", "   "},
			[]string{"Multiple spaces"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RepairTopics(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("RepairTopics(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestRepairTopicsRoundTrip(t *testing.T) {
	// Repairing an already repaired list changes nothing.
	repaired := RepairTopics([]string{"T", "o", "p", "i", "c", "", "O", "n", "e"})
	again := RepairTopics(repaired)
	if !reflect.DeepEqual(repaired, again) {
		t.Fatalf("second repair changed the list: %q vs %q", repaired, again)
	}
}
