package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"offerdirectory/internal/domain"

	"github.com/lib/pq"
)

// undefinedTable is the Postgres error code for a missing relation.
const undefinedTable = "42P01"

type fetchLogRepository struct {
	DB *sql.DB
}

// NewFetchLogRepository returns a domain.FetchLogRepository implemented with Postgres.
func NewFetchLogRepository(db *sql.DB) domain.FetchLogRepository {
	return &fetchLogRepository{
		DB: db,
	}
}

func (r *fetchLogRepository) Record(ctx context.Context, a *domain.FetchAttempt) error {
	query := `
		INSERT INTO fetch_attempts (url, outcome, offer_count, error, duration_ms, started_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		a.URL, string(a.Outcome), a.OfferCount, a.Error, a.DurationMS, a.StartedAt,
	).Scan(&a.ID)
	return wrapMissingTable(err)
}

func (r *fetchLogRepository) ListRecent(ctx context.Context, params domain.PaginationParams) ([]*domain.FetchAttempt, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM fetch_attempts`).Scan(&total); err != nil {
		return nil, 0, wrapMissingTable(err)
	}

	query := `
		SELECT id, url, outcome, offer_count, error, duration_ms, started_at
		FROM fetch_attempts
		ORDER BY started_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var attempts []*domain.FetchAttempt
	for rows.Next() {
		a := &domain.FetchAttempt{}
		var outcome string
		if err := rows.Scan(&a.ID, &a.URL, &outcome, &a.OfferCount, &a.Error, &a.DurationMS, &a.StartedAt); err != nil {
			return nil, 0, err
		}
		a.Outcome = domain.FetchOutcome(outcome)
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if attempts == nil {
		attempts = []*domain.FetchAttempt{}
	}
	return attempts, total, nil
}

func wrapMissingTable(err error) error {
	var perr *pq.Error
	if errors.As(err, &perr) && perr.Code == undefinedTable {
		return fmt.Errorf("fetch_attempts table missing, apply migrations: %w", err)
	}
	return err
}
