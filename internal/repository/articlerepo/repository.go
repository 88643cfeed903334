package articlerepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"texstock/internal/domain"
	"texstock/internal/errors"
	"texstock/internal/pkg/cache"
	"texstock/internal/pkg/logger"
)

// pqUniqueViolation is the PostgreSQL error code for a unique constraint hit.
const pqUniqueViolation = "23505"

// ArticleRepository persists catalog articles. Lookups by code go through a
// Redis read-through cache; a cache failure silently falls back to the DB.
type ArticleRepository struct {
	DB           *sql.DB
	Cache        cache.Client
	DBTimeout    time.Duration
	CacheTimeout time.Duration
	logger       logger.Logger
}

// NewArticleRepository creates an article repository.
func NewArticleRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTimeout time.Duration, logger logger.Logger) *ArticleRepository {
	return &ArticleRepository{
		DB:           db,
		Cache:        cacheClient,
		DBTimeout:    dbTimeout,
		CacheTimeout: cacheTimeout,
		logger:       logger,
	}
}

func cacheKey(code string) string {
	return "article:code:" + code
}

// Save inserts a new article. Duplicate codes or QR payloads fail with a
// conflict error.
func (r *ArticleRepository) Save(ctx context.Context, article domain.Article) (domain.Article, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	article.ID = uuid.New().String()
	article.CreatedAt = time.Now()

	const query = `
        INSERT INTO articles (id, code, label, qr_payload, created_at)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := r.DB.ExecContext(ctxTimeout, query,
		article.ID, article.Code, article.Label, article.QRPayload, article.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return domain.Article{}, errors.NewConflictError(fmt.Sprintf("article with code %s already exists", article.Code))
		}
		r.logger.Error("failed to insert article", err)
		return domain.Article{}, errors.NewDBError("failed to insert article", err)
	}

	r.logger.Info("article created", map[string]interface{}{"code": article.Code})
	return article, nil
}

// FindByCode looks an article up by its catalog code, cache first.
func (r *ArticleRepository) FindByCode(ctx context.Context, code string) (domain.Article, error) {
	if cached, err := r.Cache.Get(ctx, cacheKey(code)); err == nil {
		var article domain.Article
		if err := json.Unmarshal([]byte(cached), &article); err == nil {
			return article, nil
		}
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
        SELECT id, code, label, qr_payload, created_at
        FROM articles
        WHERE code = $1`

	var article domain.Article
	err := r.DB.QueryRowContext(ctxTimeout, query, code).Scan(
		&article.ID, &article.Code, &article.Label, &article.QRPayload, &article.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.Article{}, errors.NewNotFoundError(fmt.Sprintf("no article with code %s", code))
	}
	if err != nil {
		r.logger.Error("failed to fetch article by code", err)
		return domain.Article{}, errors.NewDBError("failed to fetch article by code", err)
	}

	if payload, err := json.Marshal(article); err == nil {
		r.Cache.Set(ctx, cacheKey(code), string(payload), r.CacheTimeout)
	}

	return article, nil
}

// FindByQRPayload looks an article up by the text of its scanned QR label.
func (r *ArticleRepository) FindByQRPayload(ctx context.Context, qrPayload string) (domain.Article, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
        SELECT id, code, label, qr_payload, created_at
        FROM articles
        WHERE qr_payload = $1`

	var article domain.Article
	err := r.DB.QueryRowContext(ctxTimeout, query, qrPayload).Scan(
		&article.ID, &article.Code, &article.Label, &article.QRPayload, &article.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.Article{}, errors.NewNotFoundError(fmt.Sprintf("no article for QR payload %q", qrPayload))
	}
	if err != nil {
		r.logger.Error("failed to fetch article by QR payload", err)
		return domain.Article{}, errors.NewDBError("failed to fetch article by QR payload", err)
	}

	return article, nil
}

// FindAll lists the catalog ordered by code.
func (r *ArticleRepository) FindAll(ctx context.Context) ([]domain.Article, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
        SELECT id, code, label, qr_payload, created_at
        FROM articles
        ORDER BY code ASC`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("failed to list articles", err)
		return nil, errors.NewDBError("failed to list articles", err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Code, &a.Label, &a.QRPayload, &a.CreatedAt); err != nil {
			return nil, errors.NewDBError("failed to scan article row", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("failed to iterate articles", err)
	}

	return articles, nil
}

// DeleteByCode removes an article; its sample and content rows cascade at
// the schema level. The cache entry is invalidated.
func (r *ArticleRepository) DeleteByCode(ctx context.Context, code string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM articles WHERE code = $1`, code)
	if err != nil {
		r.logger.Error("failed to delete article", err)
		return errors.NewDBError("failed to delete article", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.NewDBError("failed to check deleted rows", err)
	}
	if affected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("no article with code %s", code))
	}

	r.Cache.Delete(ctx, cacheKey(code))
	r.logger.Info("article deleted", map[string]interface{}{"code": code})
	return nil
}
