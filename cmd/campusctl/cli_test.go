package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inframe/campus-portal/internal/models"
	"github.com/inframe/campus-portal/internal/storage"
	"github.com/inframe/campus-portal/pkg/client"
)

func TestRenderCourses(t *testing.T) {
	var buf bytes.Buffer
	renderCourses(&buf, []client.Course{
		{Slug: "design", Title: "Design", Programs: []client.CourseProgram{{Title: "B.Des"}, {Title: "M.Des"}}},
	})

	out := buf.String()
	assert.Contains(t, out, "design")
	assert.Contains(t, out, "Design")
	assert.Contains(t, out, "2")
}

func TestListSubmissions(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()

	s, err := models.NewSubmission(models.SubmissionContact, map[string]string{"name": "Asha"})
	require.NoError(t, err)
	s.Success = true
	s.StatusCode = http.StatusOK
	require.NoError(t, repo.CreateSubmission(ctx, s))

	var buf bytes.Buffer
	require.NoError(t, listSubmissions(ctx, &buf, repo, models.SubmissionContact, 10))
	assert.Contains(t, buf.String(), s.ID.String())
	assert.Contains(t, buf.String(), "contact")

	buf.Reset()
	require.NoError(t, listSubmissions(ctx, &buf, repo, models.SubmissionEnquiry, 10))
	assert.NotContains(t, buf.String(), s.ID.String())
}

func TestCoursesCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/courses", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"data":[{"slug":"fashion","title":"Fashion Design"}]}`)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"courses", "--backend", srv.URL})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "fashion")
	assert.Contains(t, buf.String(), "Fashion Design")
}

func TestSubmissionsCommand_RejectsUnknownKind(t *testing.T) {
	rootCmd.SetArgs([]string{"submissions", "--kind", "bogus", "--dsn", "postgres://localhost/none"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown submission kind")
}
