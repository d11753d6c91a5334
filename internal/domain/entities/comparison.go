package entities

// Difference is one field-level divergence between a freshly parsed candidate
// record and its canonical counterpart. Field is a dotted/bracketed path such
// as "agendaItems[0].discussionPoints[1]".
type Difference struct {
	Field          string `json:"field"`
	CandidateValue any    `json:"candidateValue"`
	CanonicalValue any    `json:"canonicalValue"`
}

// ComparisonResult is the outcome of reconciling one candidate record against
// the canonical record set. CanonicalRecord is nil when no counterpart was
// found, in which case Differences holds a single "entire record" entry.
// Results are ephemeral: they live for one reconciliation run only.
type ComparisonResult struct {
	Workgroup        string         `json:"workgroup"`
	SourcePath       string         `json:"sourcePath"`
	CandidateRecord  *MeetingRecord `json:"candidateRecord"`
	CanonicalRecord  *MeetingRecord `json:"canonicalRecord"`
	OrderedCandidate map[string]any `json:"orderedCandidate,omitempty"`
	OrderedCanonical map[string]any `json:"orderedCanonical,omitempty"`
	Differences      []Difference   `json:"differences"`
}
