package samplerepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"texstock/internal/domain"
	"texstock/internal/errors"
	"texstock/internal/pkg/logger"
)

// SampleRepository persists sample records. The samples table carries a
// uniqueness constraint on article_id, which is what makes ResolveOrCreate
// safe under concurrent first use.
type SampleRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewSampleRepository creates a sample repository.
func NewSampleRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *SampleRepository {
	return &SampleRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// ResolveOrCreate returns the article's sample, creating it on first use.
// The insert is ON CONFLICT DO NOTHING against the article_id constraint,
// so two concurrent callers both end up reading the same row.
func (r *SampleRepository) ResolveOrCreate(ctx context.Context, articleID, displayName string) (domain.Sample, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const insert = `
        INSERT INTO samples (id, article_id, display_name, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (article_id) DO NOTHING`

	_, err := r.DB.ExecContext(ctxTimeout, insert, uuid.New().String(), articleID, displayName, time.Now())
	if err != nil {
		r.logger.Error("failed to insert sample", err)
		return domain.Sample{}, errors.NewDBError("failed to insert sample", err)
	}

	return r.FindByArticleID(ctx, articleID)
}

// FindByArticleID returns the sample belonging to an article.
func (r *SampleRepository) FindByArticleID(ctx context.Context, articleID string) (domain.Sample, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
        SELECT id, article_id, display_name, created_at
        FROM samples
        WHERE article_id = $1`

	var sample domain.Sample
	err := r.DB.QueryRowContext(ctxTimeout, query, articleID).Scan(
		&sample.ID, &sample.ArticleID, &sample.DisplayName, &sample.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.Sample{}, errors.NewNotFoundError(fmt.Sprintf("no sample for article %s", articleID))
	}
	if err != nil {
		r.logger.Error("failed to fetch sample", err)
		return domain.Sample{}, errors.NewDBError("failed to fetch sample", err)
	}

	return sample, nil
}

// DeleteOrphans removes the listed samples when they are no longer
// referenced by any slot, returning how many were deleted. Used by the
// empty-slot cascade.
func (r *SampleRepository) DeleteOrphans(ctx context.Context, sampleIDs []string) (int, error) {
	if len(sampleIDs) == 0 {
		return 0, nil
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
        DELETE FROM samples
        WHERE id = ANY($1)
          AND NOT EXISTS (
              SELECT 1 FROM slot_contents sc WHERE sc.sample_id = samples.id
          )`

	result, err := r.DB.ExecContext(ctxTimeout, query, pq.Array(sampleIDs))
	if err != nil {
		r.logger.Error("failed to delete orphaned samples", err)
		return 0, errors.NewDBError("failed to delete orphaned samples", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewDBError("failed to check deleted rows", err)
	}

	if affected > 0 {
		r.logger.Info("orphaned samples deleted", map[string]interface{}{"count": affected})
	}
	return int(affected), nil
}
