package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inframe/campus-portal/internal/models"
)

// PostgresRepository implements Repository using PostgreSQL
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// PostgresConfig holds PostgreSQL connection configuration
type PostgresConfig struct {
	DSN          string
	MaxOpenConns int32
	MaxIdleConns int32
	MaxLifetime  time.Duration
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(ctx context.Context, cfg PostgresConfig) (*PostgresRepository, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		poolConfig.MaxConns = cfg.MaxOpenConns
	} else {
		poolConfig.MaxConns = 10
	}

	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = cfg.MaxIdleConns
	}

	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxLifetime
	} else {
		poolConfig.MaxConnLifetime = 30 * time.Minute
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

// Pool exposes the connection pool for migrations
func (r *PostgresRepository) Pool() *pgxpool.Pool {
	return r.pool
}

// Ping checks database connectivity
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close closes the database connection pool
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// CreateSubmission records a forwarded form submission
func (r *PostgresRepository) CreateSubmission(ctx context.Context, s *models.Submission) error {
	query := `
		INSERT INTO submissions (id, kind, payload, success, status_code, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		s.ID,
		string(s.Kind),
		[]byte(s.Payload),
		s.Success,
		nullInt(s.StatusCode),
		nullString(s.Message),
		s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}

	return nil
}

// GetSubmission retrieves a submission by ID
func (r *PostgresRepository) GetSubmission(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	query := `
		SELECT id, kind, payload, success, status_code, message, created_at
		FROM submissions
		WHERE id = $1
	`

	s, err := scanSubmission(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return s, nil
}

// ListSubmissions returns submissions newest first with an optional kind filter
func (r *PostgresRepository) ListSubmissions(ctx context.Context, kind models.SubmissionKind, limit, offset int) ([]*models.Submission, error) {
	query := `
		SELECT id, kind, payload, success, status_code, message, created_at
		FROM submissions
		WHERE 1=1
	`
	args := make([]any, 0)
	argNum := 1

	if kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", argNum)
		args = append(args, string(kind))
		argNum++
	}

	query += " ORDER BY created_at DESC"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argNum)
		args = append(args, limit)
		argNum++
	}

	if offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argNum)
		args = append(args, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}

	return submissions, rows.Err()
}

// DeleteSubmissionsBefore removes submissions created before cutoff
func (r *PostgresRepository) DeleteSubmissionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM submissions WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete submissions: %w", err)
	}
	return result.RowsAffected(), nil
}

func scanSubmission(row pgx.Row) (*models.Submission, error) {
	var s models.Submission
	var kind string
	var payload []byte
	var statusCode sql.NullInt32
	var message sql.NullString

	if err := row.Scan(&s.ID, &kind, &payload, &s.Success, &statusCode, &message, &s.CreatedAt); err != nil {
		return nil, err
	}

	s.Kind = models.SubmissionKind(kind)
	s.Payload = payload
	s.StatusCode = int(statusCode.Int32)
	s.Message = message.String

	return &s, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt(n int) sql.NullInt32 {
	if n == 0 {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(n), Valid: true}
}
