package sync

import (
	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/entities"
)

// DifferenceResponse is one reported field difference
type DifferenceResponse struct {
	Field     string `json:"field"`
	Candidate any    `json:"candidate,omitempty"`
	Canonical any    `json:"canonical,omitempty"`
}

// ComparisonResultResponse is the API shape of one workgroup comparison
type ComparisonResultResponse struct {
	Workgroup        string               `json:"workgroup"`
	SourcePath       string               `json:"source_path"`
	MatchFound       bool                 `json:"match_found"`
	Differences      []DifferenceResponse `json:"differences"`
	OrderedCandidate map[string]any       `json:"ordered_candidate,omitempty"`
	OrderedCanonical map[string]any       `json:"ordered_canonical,omitempty"`
}

// ReconcileResponse reports the committed paths of a reconcile run
type ReconcileResponse struct {
	Committed []string `json:"committed"`
}

// ExportResponse reports where an exported artifact was stored
type ExportResponse struct {
	Location string `json:"location"`
	Results  int    `json:"results"`
}

// FromComparisonResult converts a domain comparison result to its API shape
func FromComparisonResult(result *entities.ComparisonResult) ComparisonResultResponse {
	diffs := make([]DifferenceResponse, 0, len(result.Differences))
	for _, d := range result.Differences {
		diffs = append(diffs, DifferenceResponse{
			Field:     d.Field,
			Candidate: d.CandidateValue,
			Canonical: d.CanonicalValue,
		})
	}
	return ComparisonResultResponse{
		Workgroup:        result.Workgroup,
		SourcePath:       result.SourcePath,
		MatchFound:       result.CanonicalRecord != nil,
		Differences:      diffs,
		OrderedCandidate: result.OrderedCandidate,
		OrderedCanonical: result.OrderedCanonical,
	}
}

// FromComparisonResults converts a batch of comparison results
func FromComparisonResults(results []*entities.ComparisonResult) []ComparisonResultResponse {
	out := make([]ComparisonResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, FromComparisonResult(r))
	}
	return out
}
