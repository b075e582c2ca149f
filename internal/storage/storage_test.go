package storage

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inframe/campus-portal/internal/models"
)

var (
	_ Repository = (*PostgresRepository)(nil)
	_ Repository = (*MemoryRepository)(nil)
)

func submissionAt(kind models.SubmissionKind, at time.Time) *models.Submission {
	return &models.Submission{ID: uuid.New(), Kind: kind, Payload: []byte(`{}`), CreatedAt: at}
}

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	s, err := models.NewSubmission(models.SubmissionEnquiry, map[string]string{"name": "Riya"})
	require.NoError(t, err)
	s.Success = true
	require.NoError(t, repo.CreateSubmission(ctx, s))

	got, err := repo.GetSubmission(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.SubmissionEnquiry, got.Kind)
	assert.JSONEq(t, `{"name":"Riya"}`, string(got.Payload))

	missing, err := repo.GetSubmission(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	now := time.Now()

	oldest := submissionAt(models.SubmissionEnquiry, now.Add(-3*time.Hour))
	middle := submissionAt(models.SubmissionContact, now.Add(-2*time.Hour))
	newest := submissionAt(models.SubmissionEnquiry, now.Add(-1*time.Hour))
	for _, s := range []*models.Submission{oldest, middle, newest} {
		require.NoError(t, repo.CreateSubmission(ctx, s))
	}

	all, err := repo.ListSubmissions(ctx, "", 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, newest.ID, all[0].ID)
	assert.Equal(t, oldest.ID, all[2].ID)

	enquiries, err := repo.ListSubmissions(ctx, models.SubmissionEnquiry, 0, 0)
	require.NoError(t, err)
	assert.Len(t, enquiries, 2)

	page, err := repo.ListSubmissions(ctx, "", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, middle.ID, page[0].ID)

	beyond, err := repo.ListSubmissions(ctx, "", 10, 5)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestMemoryRepository_DeleteBefore(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	now := time.Now()

	old := submissionAt(models.SubmissionContact, now.Add(-48*time.Hour))
	recent := submissionAt(models.SubmissionContact, now.Add(-time.Hour))
	require.NoError(t, repo.CreateSubmission(ctx, old))
	require.NoError(t, repo.CreateSubmission(ctx, recent))

	n, err := repo.DeleteSubmissionsBefore(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	gone, _ := repo.GetSubmission(ctx, old.ID)
	assert.Nil(t, gone)
	kept, _ := repo.GetSubmission(ctx, recent.ID)
	assert.NotNil(t, kept)
}

func TestPendingMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"002_add_index.sql":    {Data: []byte("CREATE INDEX ...")},
		"001_create_table.sql": {Data: []byte("CREATE TABLE ...")},
		"003_seed.sql":         {Data: []byte("INSERT ...")},
		"README.md":            {Data: []byte("notes")},
		"archive/000_old.sql":  {Data: []byte("old")},
	}

	pending, err := PendingMigrations(fsys, map[string]bool{"001_create_table.sql": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"002_add_index.sql", "003_seed.sql"}, pending)
}

func TestMigrationSource_FallsBackToEmbedded(t *testing.T) {
	pending, err := PendingMigrations(MigrationSource("/does/not/exist"), nil)
	require.NoError(t, err)
	assert.Contains(t, pending, "001_create_submissions.sql")
}
