package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/inframe/campus-portal/internal/models"
)

// MemoryRepository keeps submissions in process memory. It is used when no
// database is configured.
type MemoryRepository struct {
	mu          sync.RWMutex
	submissions map[uuid.UUID]*models.Submission
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{submissions: make(map[uuid.UUID]*models.Submission)}
}

func (r *MemoryRepository) CreateSubmission(_ context.Context, s *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *s
	r.submissions[s.ID] = &cp
	return nil
}

func (r *MemoryRepository) GetSubmission(_ context.Context, id uuid.UUID) (*models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.submissions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *MemoryRepository) ListSubmissions(_ context.Context, kind models.SubmissionKind, limit, offset int) ([]*models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.Submission
	for _, s := range r.submissions {
		if kind != "" && s.Kind != kind {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepository) DeleteSubmissionsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, s := range r.submissions {
		if s.CreatedAt.Before(cutoff) {
			delete(r.submissions, id)
			n++
		}
	}
	return n, nil
}

func (r *MemoryRepository) Ping(context.Context) error { return nil }
func (r *MemoryRepository) Close() error               { return nil }
