package postgres

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"hyperlocal/repository"
)

type SummaryStore struct {
	pool *pgxpool.Pool
}

func NewSummaryStore(ctx context.Context, dbURL string) (*SummaryStore, error) {
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	m, err := migrate.New(
		"file://migrations",
		dbURL,
	)
	if err != nil {
		return nil, err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return nil, err
	}

	return &SummaryStore{pool: pool}, nil
}

func (s *SummaryStore) Close() {
	s.pool.Close()
}

// Save replaces the previous run's rows in one transaction so the dashboard
// never reads a half-written run.
func (s *SummaryStore) Save(ctx context.Context, summaries []repository.Summary) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE locality_summaries`); err != nil {
		return fmt.Errorf("clear previous summaries: %w", err)
	}

	query := `
		INSERT INTO locality_summaries
			(locality, category, headline, short_summary, detailed_content, generated_at, query_used, error)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, sm := range summaries {
		_, err := tx.Exec(ctx, query, sm.Locality, sm.Category, sm.Headline,
			sm.ShortSummary, sm.DetailedContent, sm.GeneratedAt, sm.QueryUsed, sm.Error)
		if err != nil {
			return fmt.Errorf("unable to insert summary %s/%s: %w", sm.Locality, sm.Category, err)
		}
	}

	return tx.Commit(ctx)
}

func (s *SummaryStore) Load(ctx context.Context) ([]repository.Summary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT locality, category, headline, short_summary, detailed_content, generated_at, query_used, error
		FROM locality_summaries
		ORDER BY generated_at, locality, category
	`)
	if err != nil {
		return nil, fmt.Errorf("unable to load summaries: %w", err)
	}
	defer rows.Close()

	var out []repository.Summary
	for rows.Next() {
		var sm repository.Summary
		err := rows.Scan(&sm.Locality, &sm.Category, &sm.Headline, &sm.ShortSummary,
			&sm.DetailedContent, &sm.GeneratedAt, &sm.QueryUsed, &sm.Error)
		if err != nil {
			return nil, fmt.Errorf("unable to scan summary row: %w", err)
		}
		out = append(out, sm)
	}
	return out, rows.Err()
}

var _ repository.SummaryRepo = (*SummaryStore)(nil)
