// Package db implements the optional compliance audit sink: a
// fire-and-forget Postgres log of resolved screening decisions, adapted
// from the teacher's pgx-backed persistence layer. It is a pure
// side-effect behind AuditStore — the Search Engine's correctness and
// response shape never depend on whether this sink is configured.
package db

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditStore records screening decisions for compliance review.
type AuditStore struct {
	pool *pgxpool.Pool
}

// Connect initializes the connection pool to PostgreSQL using pgx.
func Connect(connStr string) (*AuditStore, error) {
	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("ping failed: %v", err)
	}

	log.Println("Successfully connected to PostgreSQL for compliance audit sink")
	return &AuditStore{pool: pool}, nil
}

// Close gracefully closes the connection pool.
func (s *AuditStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitSchema loads and executes the schema.sql file.
func (s *AuditStore) InitSchema() error {
	schemaBytes, err := os.ReadFile("internal/db/schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema file: %v", err)
	}

	_, err = s.pool.Exec(context.Background(), string(schemaBytes))
	if err != nil {
		return fmt.Errorf("failed to execute schema migrations: %v", err)
	}

	log.Println("Compliance audit schema initialized")
	return nil
}

// Decision is a single resolved search outcome to append to the audit
// log: one row per single search, or per batch item.
type Decision struct {
	RequestID      string
	QueryName      string
	TopScore       float64
	MatchedEntity  string
	DecidedAt      time.Time
}

// RecordDecision appends a screening decision. Intended to be called
// fire-and-forget from the HTTP handler — callers should not block the
// response on its result beyond logging a failure.
func (s *AuditStore) RecordDecision(ctx context.Context, d Decision) error {
	const sql = `
		INSERT INTO screening_decisions (request_id, query_name, top_score, matched_entity_id, decided_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (request_id) DO UPDATE
		SET top_score = EXCLUDED.top_score, matched_entity_id = EXCLUDED.matched_entity_id;
	`
	_, err := s.pool.Exec(ctx, sql, d.RequestID, d.QueryName, d.TopScore, d.MatchedEntity, d.DecidedAt)
	return err
}

// ListDecisions returns a page of recorded screening decisions, most
// recent first, for compliance review.
func (s *AuditStore) ListDecisions(ctx context.Context, page, limit int) ([]Decision, int, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM screening_decisions`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT request_id, query_name, top_score, matched_entity_id, decided_at
		FROM screening_decisions
		ORDER BY decided_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var decisions []Decision
	for rows.Next() {
		var d Decision
		if err := rows.Scan(&d.RequestID, &d.QueryName, &d.TopScore, &d.MatchedEntity, &d.DecidedAt); err != nil {
			return nil, 0, err
		}
		decisions = append(decisions, d)
	}
	return decisions, total, nil
}

// GetPool exposes the connection pool for callers that need direct
// access (migrations, health checks).
func (s *AuditStore) GetPool() *pgxpool.Pool {
	return s.pool
}
