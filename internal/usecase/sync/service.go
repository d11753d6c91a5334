package sync

import (
	"context"

	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/entities"
)

// Service defines the interface for the GitBook reconciliation use case
type Service interface {
	// ListYears returns the year directories under the timeline root
	ListYears(ctx context.Context) ([]string, error)

	// ListMonths returns the month directories of a year
	ListMonths(ctx context.Context, year string) ([]string, error)

	// ListFiles returns the markdown file names of a month
	ListFiles(ctx context.Context, year, month string) ([]string, error)

	// CompareFile parses one timeline file and diffs every workgroup block
	// against its stored canonical record
	CompareFile(ctx context.Context, year, month, file string) ([]*entities.ComparisonResult, error)

	// CompareMonth runs CompareFile over every file of a month; files that
	// fail to fetch or parse are logged and skipped
	CompareMonth(ctx context.Context, year, month string) ([]*entities.ComparisonResult, error)

	// Reconcile parses one timeline file and commits each workgroup record
	// back to the repository as JSON, returning the committed paths
	Reconcile(ctx context.Context, year, month, file string) ([]string, error)

	// ExportResults stores comparison results as a JSON artifact and returns
	// its location
	ExportResults(ctx context.Context, name string, results []*entities.ComparisonResult) (string, error)

	// ListExports returns stored artifact names under a prefix
	ListExports(ctx context.Context, prefix string) ([]string, error)

	// ExtractParticipants collects the distinct attendee names across all
	// confirmed canonical records
	ExtractParticipants(ctx context.Context) ([]string, error)
}

// Ensure syncService implements Service interface
var _ Service = (*syncService)(nil)
