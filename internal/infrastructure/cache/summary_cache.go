package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/entities"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/repositories"
)

const confirmedSummariesKey = "sync:summaries:confirmed"

// CachedSummaryRepository caches the confirmed canonical record set in Redis
// in front of the database repository. Cache failures are logged and fall
// through to the database.
type CachedSummaryRepository struct {
	inner  repositories.SummaryRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedSummaryRepository wraps a summary repository with a Redis cache
func NewCachedSummaryRepository(
	inner repositories.SummaryRepository,
	client *redis.Client,
	ttl time.Duration,
	logger *zap.Logger,
) *CachedSummaryRepository {
	return &CachedSummaryRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

var _ repositories.SummaryRepository = (*CachedSummaryRepository)(nil)

// FetchConfirmed returns the cached record set when present, refreshing the
// cache from the database otherwise.
func (r *CachedSummaryRepository) FetchConfirmed(ctx context.Context) ([]*entities.CanonicalRecord, error) {
	if cached, err := r.client.Get(ctx, confirmedSummariesKey).Bytes(); err == nil {
		var records []*entities.CanonicalRecord
		if err := json.Unmarshal(cached, &records); err == nil {
			return records, nil
		}
		r.logger.Warn("discarding undecodable summary cache entry")
	} else if err != redis.Nil {
		r.logger.Warn("summary cache read failed", zap.Error(err))
	}

	records, err := r.inner.FetchConfirmed(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(records); err == nil {
		if err := r.client.Set(ctx, confirmedSummariesKey, payload, r.ttl).Err(); err != nil {
			r.logger.Warn("summary cache write failed", zap.Error(err))
		}
	}
	return records, nil
}

// Invalidate drops the cached record set
func (r *CachedSummaryRepository) Invalidate(ctx context.Context) error {
	return r.client.Del(ctx, confirmedSummariesKey).Err()
}
