package sync

import "testing"

func TestFormatMeetingPath(t *testing.T) {
	cases := []struct {
		name      string
		filePath  string
		workgroup string
		date      string
		want      string
		ok        bool
	}{
		{
			"standard timeline file",
			"timeline/2024/January/week-1.md",
			"Gamers Guild",
			"2024-01-01",
			"timeline/2024/January/week-1/2024-01-01-gamers-guild",
			true,
		},
		{
			"slashed date flattened",
			"timeline/2024/January/week-1.md",
			"Treasury Guild",
			"2024/01/08",
			"timeline/2024/January/week-1/2024-01-08-treasury-guild",
			true,
		},
		{"missing date", "timeline/2024/January/week-1.md", "Gamers Guild", "", "", false},
		{"shallow path", "2024/week-1.md", "Gamers Guild", "2024-01-01", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FormatMeetingPath(tc.filePath, tc.workgroup, tc.date)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("path = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTimelinePath(t *testing.T) {
	if got := TimelinePath(); got != "timeline" {
		t.Errorf("root = %q", got)
	}
	if got := TimelinePath("2024", "January", "week-1.md"); got != "timeline/2024/January/week-1.md" {
		t.Errorf("joined = %q", got)
	}
}
