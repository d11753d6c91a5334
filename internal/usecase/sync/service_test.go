package sync

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/entities"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/repositories"
)

type fakeSource struct {
	files   map[string]string
	dirs    map[string][]repositories.RemoteEntry
	commits map[string]string
	ensured []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		files:   map[string]string{},
		dirs:    map[string][]repositories.RemoteEntry{},
		commits: map[string]string{},
	}
}

func (f *fakeSource) ListDirectory(_ context.Context, path string) ([]repositories.RemoteEntry, error) {
	return f.dirs[path], nil
}

func (f *fakeSource) FetchFile(_ context.Context, path string) (string, error) {
	return f.files[path], nil
}

func (f *fakeSource) CommitFile(_ context.Context, path, content, _ string) error {
	f.commits[path] = content
	return nil
}

func (f *fakeSource) EnsureDirectory(_ context.Context, path string) error {
	f.ensured = append(f.ensured, path)
	return nil
}

type fakeSummaries struct {
	records []*entities.CanonicalRecord
}

func (f *fakeSummaries) FetchConfirmed(_ context.Context) ([]*entities.CanonicalRecord, error) {
	return f.records, nil
}

type fakeArtifacts struct {
	saved map[string]any
}

func (f *fakeArtifacts) SaveJSON(_ context.Context, name string, payload any) (string, error) {
	if f.saved == nil {
		f.saved = map[string]any{}
	}
	f.saved[name] = payload
	return "store/" + name, nil
}

func (f *fakeArtifacts) ListArtifacts(_ context.Context, prefix string) ([]string, error) {
	var names []string
	for name := range f.saved {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names, nil
}

func TestListFiles(t *testing.T) {
	source := newFakeSource()
	source.dirs["timeline/2024/January"] = []repositories.RemoteEntry{
		{Name: "week-2.md", Type: "file"},
		{Name: "assets", Type: "dir"},
		{Name: "week-1.md", Type: "file"},
		{Name: "notes.txt", Type: "file"},
	}
	svc := NewService(source, &fakeSummaries{}, nil, zap.NewNop())

	files, err := svc.ListFiles(context.Background(), "2024", "January")
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	want := []string{"week-1.md", "week-2.md"}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("files = %v, want %v", files, want)
	}

	if _, err := svc.ListFiles(context.Background(), "", "January"); err == nil {
		t.Fatal("expected an error for a missing year")
	}
}

func TestCompareFileMatched(t *testing.T) {
	source := newFakeSource()
	source.files["timeline/2024/January/week-1.md"] = gamersGuildDoc

	// The canonical record holds exactly what the document parses to, so
	// the comparison reports no differences.
	parsed, err := Parse(gamersGuildDoc, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	stored := *parsed.Records[0]
	stored.WorkgroupID = "wg-1"
	summaries := &fakeSummaries{records: []*entities.CanonicalRecord{
		{WorkgroupID: "wg-1", Confirmed: true, Summary: stored},
	}}

	svc := NewService(source, summaries, nil, zap.NewNop())
	results, err := svc.CompareFile(context.Background(), "2024", "January", "week-1.md")
	if err != nil {
		t.Fatalf("CompareFile failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	result := results[0]
	if result.Workgroup != "Gamers Guild" {
		t.Errorf("workgroup = %q", result.Workgroup)
	}
	if result.CanonicalRecord == nil {
		t.Fatal("expected a canonical match")
	}
	if len(result.Differences) != 0 {
		t.Fatalf("expected no differences, got %+v", result.Differences)
	}
	if result.OrderedCandidate == nil || result.OrderedCanonical == nil {
		t.Error("ordered forms should be populated")
	}
}

func TestCompareFileNoMatch(t *testing.T) {
	source := newFakeSource()
	source.files["timeline/2024/January/week-1.md"] = gamersGuildDoc
	svc := NewService(source, &fakeSummaries{}, nil, zap.NewNop())

	results, err := svc.CompareFile(context.Background(), "2024", "January", "week-1.md")
	if err != nil {
		t.Fatalf("CompareFile failed: %v", err)
	}
	result := results[0]
	if result.CanonicalRecord != nil {
		t.Fatal("expected no canonical match")
	}
	if len(result.Differences) != 1 || result.Differences[0].Field != "entire record" {
		t.Fatalf("expected a single whole-record difference, got %+v", result.Differences)
	}
}

func TestCompareMonthMatchesSingleRuns(t *testing.T) {
	source := newFakeSource()
	source.dirs["timeline/2024/January"] = []repositories.RemoteEntry{
		{Name: "week-1.md", Type: "file"},
		{Name: "week-2.md", Type: "file"},
		{Name: "broken.md", Type: "file"},
	}
	source.files["timeline/2024/January/week-1.md"] = gamersGuildDoc
	source.files["timeline/2024/January/week-2.md"] = "## February 5th 2024\n\n### Writers Workgroup\n\n#### Narrative:\nDrafts reviewed.\n"
	// broken.md has no content, fails to parse and is skipped by the batch.

	svc := NewService(source, &fakeSummaries{}, nil, zap.NewNop())

	batch, err := svc.CompareMonth(context.Background(), "2024", "January")
	if err != nil {
		t.Fatalf("CompareMonth failed: %v", err)
	}
	if len(batch) != 2 {
		t.Fatalf("expected two results, got %d", len(batch))
	}

	var singles []*entities.ComparisonResult
	for _, file := range []string{"week-1.md", "week-2.md"} {
		results, err := svc.CompareFile(context.Background(), "2024", "January", file)
		if err != nil {
			t.Fatalf("CompareFile(%s) failed: %v", file, err)
		}
		singles = append(singles, results...)
	}

	if !reflect.DeepEqual(batch, singles) {
		t.Fatalf("batch results = %+v, want %+v", batch, singles)
	}
}

func TestReconcile(t *testing.T) {
	source := newFakeSource()
	source.files["timeline/2024/January/week-1.md"] = gamersGuildDoc
	svc := NewService(source, &fakeSummaries{}, nil, zap.NewNop())

	committed, err := svc.Reconcile(context.Background(), "2024", "January", "week-1.md")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	wantDir := "timeline/2024/January/week-1/2024-01-01-gamers-guild"
	wantTarget := wantDir + "/meeting-summary.json"
	if len(committed) != 1 || committed[0] != wantTarget {
		t.Fatalf("committed = %v, want [%s]", committed, wantTarget)
	}
	if len(source.ensured) != 1 || source.ensured[0] != wantDir {
		t.Fatalf("ensured = %v, want [%s]", source.ensured, wantDir)
	}
	payload, ok := source.commits[wantTarget]
	if !ok {
		t.Fatal("no commit recorded for the summary file")
	}
	if !strings.Contains(payload, `"workgroup": "Gamers Guild"`) {
		t.Fatalf("payload missing workgroup: %s", payload)
	}
}

func TestExportResults(t *testing.T) {
	artifacts := &fakeArtifacts{}
	svc := NewService(newFakeSource(), &fakeSummaries{}, artifacts, zap.NewNop())

	results := []*entities.ComparisonResult{{Workgroup: "Gamers Guild"}}
	location, err := svc.ExportResults(context.Background(), "january.json", results)
	if err != nil {
		t.Fatalf("ExportResults failed: %v", err)
	}
	if location != "store/january.json" {
		t.Errorf("location = %q", location)
	}

	names, err := svc.ListExports(context.Background(), "january")
	if err != nil {
		t.Fatalf("ListExports failed: %v", err)
	}
	if len(names) != 1 || names[0] != "january.json" {
		t.Errorf("names = %v", names)
	}
}

func TestExportResultsWithoutStore(t *testing.T) {
	svc := NewService(newFakeSource(), &fakeSummaries{}, nil, zap.NewNop())
	if _, err := svc.ExportResults(context.Background(), "x.json", nil); err == nil {
		t.Fatal("expected an error when no artifact store is configured")
	}
}

func TestExtractParticipants(t *testing.T) {
	summaries := &fakeSummaries{records: []*entities.CanonicalRecord{
		{Summary: entities.MeetingRecord{MeetingInfo: entities.MeetingInfo{PeoplePresent: "bob smith, ALICE"}}},
		{Summary: entities.MeetingRecord{MeetingInfo: entities.MeetingInfo{PeoplePresent: "alice, Carol"}}},
	}}
	svc := NewService(newFakeSource(), summaries, nil, zap.NewNop())

	names, err := svc.ExtractParticipants(context.Background())
	if err != nil {
		t.Fatalf("ExtractParticipants failed: %v", err)
	}
	want := []string{"Alice", "Bob Smith", "Carol"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
}
