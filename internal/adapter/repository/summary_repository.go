package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/Andre-Diamond/scripts-for-scraps/errors"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/entities"
)

// SummaryRepository implements canonical summary access using GORM
type SummaryRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(db *gorm.DB, logger *zap.Logger) *SummaryRepository {
	return &SummaryRepository{
		db:     db,
		logger: logger,
	}
}

// FetchConfirmed retrieves all confirmed canonical records and decodes their
// summary payloads. Rows with undecodable payloads are logged and skipped.
func (r *SummaryRepository) FetchConfirmed(ctx context.Context) ([]*entities.CanonicalRecord, error) {
	var rows []*entities.CanonicalRecord
	if err := r.db.WithContext(ctx).
		Where("confirmed = ?", true).
		Find(&rows).Error; err != nil {
		return nil, apperrors.ErrQueryFailed(err)
	}

	records := make([]*entities.CanonicalRecord, 0, len(rows))
	for _, row := range rows {
		if err := row.DecodeSummary(); err != nil {
			r.logger.Warn("skipping malformed summary",
				zap.String("id", row.ID.String()),
				zap.Error(err))
			continue
		}
		records = append(records, row)
	}
	return records, nil
}
