package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/Andre-Diamond/scripts-for-scraps/errors"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/entities"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/repositories"
)

// syncService orchestrates fetching, parsing and diffing timeline documents
type syncService struct {
	source    repositories.ContentSource
	summaries repositories.SummaryRepository
	artifacts repositories.ArtifactStore
	logger    *zap.Logger
}

// NewService constructs the reconciliation service. artifacts may be nil when
// no object store is configured; ExportResults then fails cleanly.
func NewService(
	source repositories.ContentSource,
	summaries repositories.SummaryRepository,
	artifacts repositories.ArtifactStore,
	logger *zap.Logger,
) Service {
	return &syncService{
		source:    source,
		summaries: summaries,
		artifacts: artifacts,
		logger:    logger,
	}
}

func (s *syncService) ListYears(ctx context.Context) ([]string, error) {
	return s.listDirNames(ctx, TimelinePath(), "dir", "")
}

func (s *syncService) ListMonths(ctx context.Context, year string) ([]string, error) {
	if year == "" {
		return nil, apperrors.ErrInvalidArgument("year is required")
	}
	return s.listDirNames(ctx, TimelinePath(year), "dir", "")
}

func (s *syncService) ListFiles(ctx context.Context, year, month string) ([]string, error) {
	if year == "" || month == "" {
		return nil, apperrors.ErrInvalidArgument("year and month are required")
	}
	return s.listDirNames(ctx, TimelinePath(year, month), "file", ".md")
}

func (s *syncService) listDirNames(ctx context.Context, path, entryType, suffix string) ([]string, error) {
	entries, err := s.source.ListDirectory(ctx, path)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.Type != entryType {
			continue
		}
		if suffix != "" && !strings.HasSuffix(entry.Name, suffix) {
			continue
		}
		names = append(names, entry.Name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *syncService) CompareFile(ctx context.Context, year, month, file string) ([]*entities.ComparisonResult, error) {
	if year == "" || month == "" || file == "" {
		return nil, apperrors.ErrInvalidArgument("year, month and file are required")
	}
	canonical, err := s.summaries.FetchConfirmed(ctx)
	if err != nil {
		return nil, err
	}
	return s.compareOne(ctx, TimelinePath(year, month, file), canonical)
}

func (s *syncService) CompareMonth(ctx context.Context, year, month string) ([]*entities.ComparisonResult, error) {
	files, err := s.ListFiles(ctx, year, month)
	if err != nil {
		return nil, err
	}
	canonical, err := s.summaries.FetchConfirmed(ctx)
	if err != nil {
		return nil, err
	}

	var all []*entities.ComparisonResult
	for _, file := range files {
		path := TimelinePath(year, month, file)
		results, err := s.compareOne(ctx, path, canonical)
		if err != nil {
			s.logger.Warn("skipping file",
				zap.String("path", path),
				zap.Error(err))
			continue
		}
		all = append(all, results...)
	}
	return all, nil
}

// compareOne fetches and parses a single document, then diffs each workgroup
// record against its canonical counterpart.
func (s *syncService) compareOne(ctx context.Context, path string, canonical []*entities.CanonicalRecord) ([]*entities.ComparisonResult, error) {
	content, err := s.source.FetchFile(ctx, path)
	if err != nil {
		return nil, err
	}
	parsed, err := Parse(content, canonical)
	if err != nil {
		return nil, apperrors.ErrParseFailed(path, err)
	}

	results := make([]*entities.ComparisonResult, 0, len(parsed.Records))
	for _, record := range parsed.Records {
		result, err := s.compareRecord(path, record, canonical)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// compareRecord canonicalizes and cleans both sides, then diffs them. A
// record with no canonical match reports a single whole-record difference.
func (s *syncService) compareRecord(path string, record *entities.MeetingRecord, canonical []*entities.CanonicalRecord) (*entities.ComparisonResult, error) {
	candidateMap, err := RecordToMap(Canonicalize(record))
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	cleanedCandidate := RemoveEmptyValues(candidateMap).(map[string]any)

	result := &entities.ComparisonResult{
		Workgroup:        record.Workgroup,
		SourcePath:       path,
		CandidateRecord:  record,
		OrderedCandidate: cleanedCandidate,
	}

	match := findMatch(record, canonical)
	if match == nil {
		result.Differences = []entities.Difference{{
			Field:          "entire record",
			CandidateValue: cleanedCandidate,
		}}
		return result, nil
	}

	canonicalMap, err := RecordToMap(Canonicalize(&match.Summary))
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	cleanedCanonical := RemoveEmptyValues(canonicalMap).(map[string]any)

	result.CanonicalRecord = &match.Summary
	result.OrderedCanonical = cleanedCanonical
	result.Differences = CompareSummaries(cleanedCandidate, cleanedCanonical)
	return result, nil
}

// findMatch pairs a parsed record with a canonical one by workgroup and
// date, exact name first, then case-insensitive. First match wins.
func findMatch(record *entities.MeetingRecord, canonical []*entities.CanonicalRecord) *entities.CanonicalRecord {
	date := record.MeetingInfo.Date
	if date == "" {
		return nil
	}
	for _, c := range canonical {
		if c.Workgroup() == record.Workgroup && c.MeetingDate() == date {
			return c
		}
	}
	lower := strings.ToLower(record.Workgroup)
	for _, c := range canonical {
		if strings.ToLower(c.Workgroup()) == lower && c.MeetingDate() == date {
			return c
		}
	}
	return nil
}

func (s *syncService) Reconcile(ctx context.Context, year, month, file string) ([]string, error) {
	if year == "" || month == "" || file == "" {
		return nil, apperrors.ErrInvalidArgument("year, month and file are required")
	}
	path := TimelinePath(year, month, file)
	content, err := s.source.FetchFile(ctx, path)
	if err != nil {
		return nil, err
	}
	canonical, err := s.summaries.FetchConfirmed(ctx)
	if err != nil {
		return nil, err
	}
	parsed, err := Parse(content, canonical)
	if err != nil {
		return nil, apperrors.ErrParseFailed(path, err)
	}

	var committed []string
	for _, record := range parsed.Records {
		dir, ok := FormatMeetingPath(path, record.Workgroup, record.MeetingInfo.Date)
		if !ok {
			s.logger.Warn("cannot derive meeting path",
				zap.String("workgroup", record.Workgroup),
				zap.String("path", path))
			continue
		}
		payload, err := json.MarshalIndent(Canonicalize(record), "", "  ")
		if err != nil {
			return nil, apperrors.ErrInternal(err)
		}
		if err := s.source.EnsureDirectory(ctx, dir); err != nil {
			return nil, err
		}
		target := dir + "/meeting-summary.json"
		message := fmt.Sprintf("Sync meeting summary for %s on %s", record.Workgroup, record.MeetingInfo.Date)
		if err := s.source.CommitFile(ctx, target, string(payload), message); err != nil {
			return nil, err
		}
		s.logger.Info("committed meeting summary",
			zap.String("target", target),
			zap.String("workgroup", record.Workgroup))
		committed = append(committed, target)
	}
	return committed, nil
}

func (s *syncService) ExportResults(ctx context.Context, name string, results []*entities.ComparisonResult) (string, error) {
	if s.artifacts == nil {
		return "", apperrors.ErrStorageFailed(name, fmt.Errorf("no artifact store configured"))
	}
	if name == "" {
		return "", apperrors.ErrInvalidArgument("artifact name is required")
	}
	location, err := s.artifacts.SaveJSON(ctx, name, results)
	if err != nil {
		return "", err
	}
	s.logger.Info("exported comparison results",
		zap.String("location", location),
		zap.Int("results", len(results)))
	return location, nil
}

func (s *syncService) ListExports(ctx context.Context, prefix string) ([]string, error) {
	if s.artifacts == nil {
		return nil, apperrors.ErrStorageFailed(prefix, fmt.Errorf("no artifact store configured"))
	}
	return s.artifacts.ListArtifacts(ctx, prefix)
}

// ExtractParticipants collects unique attendee names from every confirmed
// canonical record, normalizes their casing and sorts them. Malformed
// records are skipped.
func (s *syncService) ExtractParticipants(ctx context.Context) ([]string, error) {
	canonical, err := s.summaries.FetchConfirmed(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	for _, record := range canonical {
		people := record.Summary.MeetingInfo.PeoplePresent
		if people == "" {
			continue
		}
		for _, name := range splitAndTrim(people, ",") {
			normalized := normalizeName(name)
			if normalized == "" || seen[normalized] {
				continue
			}
			seen[normalized] = true
			names = append(names, normalized)
		}
	}
	sort.Strings(names)
	return names, nil
}

// normalizeName lowercases a name and re-capitalizes each word.
func normalizeName(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
