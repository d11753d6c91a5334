package repositories

import (
	"context"

	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/entities"
)

// SummaryRepository defines the interface for canonical meeting summary access
type SummaryRepository interface {
	// FetchConfirmed retrieves every confirmed canonical record, with the
	// summary payload already decoded
	FetchConfirmed(ctx context.Context) ([]*entities.CanonicalRecord, error)
}
