package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/inframe/campus-portal/internal/models"
)

// Repository defines the interface for the form submission log
type Repository interface {
	CreateSubmission(ctx context.Context, s *models.Submission) error
	GetSubmission(ctx context.Context, id uuid.UUID) (*models.Submission, error)
	ListSubmissions(ctx context.Context, kind models.SubmissionKind, limit, offset int) ([]*models.Submission, error)
	DeleteSubmissionsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// Health
	Ping(ctx context.Context) error
	Close() error
}
