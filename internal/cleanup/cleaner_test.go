package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/inframe/campus-portal/internal/models"
	"github.com/inframe/campus-portal/internal/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func seed(t *testing.T, repo storage.Repository, age time.Duration, now time.Time) uuid.UUID {
	t.Helper()
	s := &models.Submission{ID: uuid.New(), Kind: models.SubmissionEnquiry, Payload: []byte(`{}`), CreatedAt: now.Add(-age)}
	require.NoError(t, repo.CreateSubmission(context.Background(), s))
	return s.ID
}

func TestPrune_RemovesOnlyExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := storage.NewMemoryRepository()

	expired := seed(t, repo, 31*24*time.Hour, now)
	fresh := seed(t, repo, 29*24*time.Hour, now)

	p := NewPruner(repo, time.Hour, 30*24*time.Hour)
	p.now = func() time.Time { return now }

	assert.Equal(t, int64(1), p.Prune(context.Background()))

	gone, err := repo.GetSubmission(context.Background(), expired)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := repo.GetSubmission(context.Background(), fresh)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestPruner_StartRunsImmediatelyAndStops(t *testing.T) {
	now := time.Now()
	repo := storage.NewMemoryRepository()
	id := seed(t, repo, 2*time.Hour, now)

	p := NewPruner(repo, time.Hour, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	assert.Eventually(t, func() bool {
		s, _ := repo.GetSubmission(context.Background(), id)
		return s == nil
	}, time.Second, 10*time.Millisecond)

	cancel()
	p.Wait()
}

func TestNewPruner_DefaultInterval(t *testing.T) {
	p := NewPruner(storage.NewMemoryRepository(), 0, time.Hour)
	assert.Equal(t, time.Hour, p.interval)
}
