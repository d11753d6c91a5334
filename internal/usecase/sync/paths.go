package sync

import (
	"fmt"
	"strings"
)

const timelineRoot = "timeline"

// FormatMeetingPath builds the repository folder a reconciled record is
// committed under, derived from the source file path plus the workgroup and
// meeting date: timeline/<year>/<month>/<week>/<date>-<workgroup-slug>.
// Returns false when the date is missing or the source path is too shallow.
func FormatMeetingPath(filePath, workgroup, date string) (string, bool) {
	if date == "" {
		return "", false
	}
	parts := strings.Split(filePath, "/")
	if len(parts) < 4 {
		return "", false
	}
	year := parts[1]
	month := parts[2]
	meetingName := strings.TrimSuffix(parts[3], ".md")

	slug := strings.ToLower(spaceRuns.ReplaceAllString(workgroup, "-"))
	folder := strings.ReplaceAll(date, "/", "-") + "-" + slug

	return fmt.Sprintf("%s/%s/%s/%s/%s", timelineRoot, year, month, meetingName, folder), true
}

// TimelinePath joins path segments under the timeline root.
func TimelinePath(segments ...string) string {
	return strings.Join(append([]string{timelineRoot}, segments...), "/")
}
