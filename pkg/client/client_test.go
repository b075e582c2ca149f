package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithLogger(discardLogger())}, opts...)
	return NewClient(srv.URL, srv.URL+"/api/v1", opts...)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestListCourses_PreservesBackendOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/courses", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"data":[
			{"slug":"interior-design","title":"Interior Design"},
			{"slug":"fashion-design","title":"Fashion Design"},
			{"slug":"graphic-design","title":"Graphic Design"},
			{"slug":"animation","title":"Animation"},
			{"slug":"fine-arts","title":"Fine Arts"}
		]}`)
	})

	courses, err := c.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 5)

	slugs := make([]string, 0, len(courses))
	for _, course := range courses {
		slugs = append(slugs, course.Slug)
	}
	assert.Equal(t, []string{"interior-design", "fashion-design", "graphic-design", "animation", "fine-arts"}, slugs)
}

func TestList_MalformedEnvelopeYieldsEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"success false", `{"success":false,"data":[{"_id":"1"}]}`},
		{"missing data", `{"success":true}`},
		{"null data", `{"success":true,"data":null}`},
		{"data object", `{"success":true,"data":{"_id":"1"}}`},
		{"missing success", `{"data":[{"_id":"1"}]}`},
		{"not json", `<html>oops</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var observed []error
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, tt.body)
			}, WithMalformedHandler(func(err error) { observed = append(observed, err) }))

			advisors, err := c.ListAdvisors(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, advisors)
			assert.Empty(t, advisors)

			require.Len(t, observed, 1)
			assert.ErrorIs(t, observed[0], ErrMalformedResponse)
		})
	}
}

func TestList_HTTPErrorIsReturned(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"success":false,"message":"database down"}`)
	})

	_, err := c.ListTestimonials(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, http.MethodGet, apiErr.Method)
	assert.Equal(t, "database down", apiErr.Message)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
}

func TestList_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, "", WithLogger(discardLogger()), WithTimeout(time.Second))
	_, err := c.ListBlogs(context.Background())

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.MethodGet, transportErr.Method)
	assert.Equal(t, url+"/api/v1/blog/getblogs", transportErr.URL)
}

func TestList_SortsByOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":[
			{"_id":"c","order":3},
			{"_id":"a1","order":1},
			{"_id":"b","order":2},
			{"_id":"a2","order":1}
		]}`)
	})

	stats, err := c.ListStatistics(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(stats))
	for _, s := range stats {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"a1", "a2", "b", "c"}, ids)
}

func TestGetCourseByID_SortsNestedSections(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/courses/abc", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"data":{
			"slug":"interior-design",
			"programs":[{"title":"B","order":2},{"title":"A","order":1}],
			"faqs":[{"question":"second","order":5},{"question":"first","order":0}]
		}}`)
	})

	course, err := c.GetCourseByID(context.Background(), "abc")
	require.NoError(t, err)
	require.NotNil(t, course)
	assert.Equal(t, "A", course.Programs[0].Title)
	assert.Equal(t, "first", course.FAQs[0].Question)
}

func TestSingleRead_MalformedYieldsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":[]}`)
	})

	post, err := c.GetBlogBySlug(context.Background(), "anything")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestGetAboutContent_NotFoundIsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"success":false,"message":"Content not found"}`)
	})

	content, err := c.GetAboutContent(context.Background(), SectionVision)
	require.NoError(t, err)
	assert.Nil(t, content)
}

func TestGetAboutContent_OtherErrorsPropagate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, `{}`)
	})

	_, err := c.GetAboutContent(context.Background(), SectionVision)
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, StatusCode(err))
}

func TestGetFreeCourse_NotFoundIsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/free-courses/missing", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	fc, err := c.GetFreeCourse(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, fc)
}

func TestGetAboutUs_FetchesEverySection(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/api/v1/about-us/content/getcontentbytype/vision":
			writeJSON(w, http.StatusOK, `{"success":true,"data":{"sectionType":"vision","title":"Our Vision"}}`)
		case "/api/v1/about-us/content/getcontentbytype/mission",
			"/api/v1/about-us/content/getcontentbytype/who-we-are",
			"/api/v1/about-us/content/getcontentbytype/about-us",
			"/api/v1/about-us/content/getcontentbytype/core-values-text":
			w.WriteHeader(http.StatusNotFound)
		case "/api/v1/about-us/statistics/getstatistics":
			writeJSON(w, http.StatusOK, `{"success":true,"data":[{"title":"b","order":2},{"title":"a","order":1}]}`)
		default:
			writeJSON(w, http.StatusOK, `{"success":true,"data":[]}`)
		}
	})

	about, err := c.GetAboutUs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(9), hits.Load())

	require.NotNil(t, about.Vision)
	assert.Equal(t, "Our Vision", about.Vision.Title)
	assert.Nil(t, about.Mission)
	require.Len(t, about.Statistics, 2)
	assert.Equal(t, "a", about.Statistics[0].Title)
	assert.NotNil(t, about.HeroImages)
}

func TestGetAboutUs_FailsOnListError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/about-us/core-values/getcorevalues" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, `{"success":true,"data":[]}`)
	})

	_, err := c.GetAboutUs(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
}

func TestSession_BearerHeader(t *testing.T) {
	var got []string
	var mu sync.Mutex
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got = append(got, r.Header.Get("Authorization"))
		mu.Unlock()
		writeJSON(w, http.StatusOK, `{"success":true,"data":[]}`)
	}, WithSession(NewMemorySession("")))

	_, err := c.ListMemberships(context.Background())
	require.NoError(t, err)

	c.Session().(*MemorySession).SetToken("secret")
	_, err = c.ListMemberships(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"", "Bearer secret"}, got)
}

func TestSession_ClearedOnUnauthorized(t *testing.T) {
	session := NewMemorySession("expired")
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"success":false,"message":"Token expired"}`)
	}, WithSession(session))

	_, err := c.ListEnquiries(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	token, err := session.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

type failingSession struct{}

func (failingSession) Token(context.Context) (string, error) { return "", errors.New("store offline") }
func (failingSession) Clear(context.Context) error           { return nil }

func TestSession_TokenErrorAbortsRequest(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}, WithSession(failingSession{}))

	_, err := c.ListAdvisors(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store offline")
	assert.Zero(t, hits.Load())
}

func TestGetCourseBySlug_FallbackOnFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	course := c.GetCourseBySlug(context.Background(), "interior-design")
	require.NotNil(t, course)
	assert.True(t, course.Synthesized)
	assert.Equal(t, "Interior Design", course.Title)
	assert.Equal(t, "Explore our Interior Design programs", course.Description)
	assert.Equal(t, "Start Your Journey", course.CTATitle)
	assert.NotNil(t, course.Programs)
}

func TestGetCourseProgram(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/courses/slug/fashion-design", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"data":{
			"slug":"fashion-design",
			"programs":[
				{"title":"Diploma in Styling","duration":"1 Year","order":2},
				{"title":"B.Des Fashion","slug":"bachelor-of-design-in-fashion","duration":"4 Years","order":1}
			]
		}}`)
	})

	t.Run("canonical slug matches", func(t *testing.T) {
		p := c.GetCourseProgram(context.Background(), "fashion-design", "bdes-in-fashion")
		assert.False(t, p.Synthesized)
		assert.Equal(t, "B.Des Fashion", p.Title)
		assert.Equal(t, "4 Years", p.Duration)
	})

	t.Run("title slug matches", func(t *testing.T) {
		p := c.GetCourseProgram(context.Background(), "fashion-design", "diploma-in-styling")
		assert.False(t, p.Synthesized)
		assert.Equal(t, "1 Year", p.Duration)
	})

	t.Run("unknown slug is synthesized", func(t *testing.T) {
		p := c.GetCourseProgram(context.Background(), "fashion-design", "quantum-knitting")
		assert.True(t, p.Synthesized)
		assert.Equal(t, "Quantum Knitting", p.Title)
		assert.Equal(t, "4 Years Full-Time", p.Duration)
		assert.Equal(t, "/fashion-design/quantum-knitting", p.DetailsURL)
		assert.Equal(t, 1, p.Order)
	})
}

func TestGenerateSlug(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/courses/generate-slug/Interior%20Design", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, `{"success":true,"slug":"interior-design"}`)
	})

	slug, err := c.GenerateSlug(context.Background(), "Interior Design")
	require.NoError(t, err)
	assert.Equal(t, "interior-design", slug)
}

func TestCareerPosts_AcceptsEveryShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bare array", `[{"_id":"1","title":"Faculty"}]`},
		{"data only", `{"data":[{"_id":"1","title":"Faculty"}]}`},
		{"envelope", `{"success":true,"data":[{"_id":"1","title":"Faculty"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, tt.body)
			})

			posts, err := c.ListActiveCareerPosts(context.Background())
			require.NoError(t, err)
			require.Len(t, posts, 1)
			assert.Equal(t, "Faculty", posts[0].Title)
		})
	}
}

func TestCareerPostsWithApplicants_FallsBack(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("populate") == "applicants" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, `[{"_id":"1","title":"Counsellor"}]`)
	})

	posts, err := c.ListCareerPostsWithApplicants(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Counsellor", posts[0].Title)
}

func TestListApplicants(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/career-posts/applicants/42", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"applicants":[{"name":"Asha","status":"pending"}]}}`)
	})

	applicants, err := c.ListApplicants(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, "Asha", applicants[0].Name)
}

func TestUpdateApplicantStatus_BareEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/career-posts/applicants/42/7/status", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"message":"updated"}`)
	})

	a, err := c.UpdateApplicantStatus(context.Background(), "42", "7", ApplicantShortlisted)
	require.NoError(t, err)
	assert.Equal(t, "7", a.ID)
	assert.Equal(t, ApplicantShortlisted, a.Status)

	_, err = c.UpdateApplicantStatus(context.Background(), "42", "7", "promoted")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateEnquiryStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/enquiries/e1/status", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "contacted", req["status"])
		assert.Equal(t, "called back", req["notes"])

		writeJSON(w, http.StatusOK, `{"success":true,"data":{"_id":"e1","status":"contacted"}}`)
	})

	enquiry, err := c.UpdateEnquiryStatus(context.Background(), "e1", EnquiryContacted, "called back")
	require.NoError(t, err)
	assert.Equal(t, EnquiryContacted, enquiry.Status)

	_, err = c.UpdateEnquiryStatus(context.Background(), "e1", "lost", "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestMutation_RejectedEnvelopeFailsLoud(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":false,"message":"Name is required"}`)
	})

	_, err := c.CreateAdvisor(context.Background(), Advisor{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "Name is required")
}

func TestMutation_HTTPErrorFailsLoud(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeJSON(w, http.StatusForbidden, `{"error":"admin only"}`)
	})

	err := c.DeleteDownload(context.Background(), "d1")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, StatusCode(err))
	assert.Contains(t, err.Error(), "admin only")
}

func TestSubmitEnquiry(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/enquiries", r.URL.Path)

		var req EnquiryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "9876543210", req.PhoneNumber)

		writeJSON(w, http.StatusCreated, `{"success":true,"message":"Enquiry received"}`)
	})

	ack, err := c.SubmitEnquiry(context.Background(), EnquiryRequest{
		Name: "Riya", PhoneNumber: "9876543210", Email: "riya@example.com", City: "Jodhpur", Course: "Interior Design",
	})
	require.NoError(t, err)
	assert.True(t, ack.Success)
	assert.Equal(t, "Enquiry received", ack.Message)
	assert.Equal(t, http.StatusCreated, ack.StatusCode)
}

func TestSubmitForms_InvalidRequestNeverSent(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusOK, `{"success":true}`)
	})
	ctx := context.Background()

	_, err := c.SubmitEnquiry(ctx, EnquiryRequest{
		Name: "Riya", PhoneNumber: "98765", Email: "riya@example.com", City: "Jodhpur", Course: "Interior Design",
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, err.Error(), "PhoneNumber")

	_, err = c.SubmitContact(ctx, ContactRequest{FirstName: "Asha", Email: "not-an-email", Message: "Hi"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = c.SubmitJobApplication(ctx, "c1", JobApplicationRequest{
		Name: "Dev", Email: "dev@example.com", Phone: "9876543210", ResumeURL: "not a url",
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	assert.Zero(t, hits.Load())

	ack, err := c.SubmitContact(ctx, ContactRequest{FirstName: "Asha", Email: "asha@example.com", Message: "Hi"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, ack.StatusCode)
	assert.EqualValues(t, 1, hits.Load())
}

func TestSubmitJobApplication_RequiresCareerID(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	_, err := c.SubmitJobApplication(context.Background(), "", JobApplicationRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrCareerIDRequired)
	assert.Zero(t, hits.Load())
}

func TestFreeCourseFilters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":[
			{"_id":"1","name":"Sketching Basics","shortDescription":"Pencil work","metaKeywords":"drawing","isActive":true},
			{"_id":"2","name":"Colour Theory","shortDescription":"Palettes","metaKeywords":"DESIGN, colour","isActive":false},
			{"_id":"3","name":"Photo Editing","shortDescription":"Retouch with design tools","metaKeywords":"","isActive":true}
		]}`)
	})

	active, err := c.ListActiveFreeCourses(context.Background())
	require.NoError(t, err)
	assert.Len(t, active, 2)

	found, err := c.SearchFreeCourses(context.Background(), "Design")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "2", found[0].ID)
	assert.Equal(t, "3", found[1].ID)

	none, err := c.SearchFreeCourses(context.Background(), "pottery")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestDeduplication_SharesInflightGet(t *testing.T) {
	var hits atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			close(started)
		}
		<-release
		writeJSON(w, http.StatusOK, `{"success":true,"data":[{"_id":"1","name":"Acme"}]}`)
	}, WithDeduplication())

	var wg sync.WaitGroup
	results := make([][]IndustryPartner, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = c.ListIndustryPartners(context.Background())
	}()
	<-started

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = c.ListIndustryPartners(context.Background())
	}()
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
	assert.Len(t, results[0], 1)
	assert.Len(t, results[1], 1)
}

type visitorKey struct{}

// visitorSession hands out the token stored in the request context, the way
// a per-visitor store does
type visitorSession struct{}

func (visitorSession) Token(ctx context.Context) (string, error) {
	token, _ := ctx.Value(visitorKey{}).(string)
	return token, nil
}
func (visitorSession) Clear(context.Context) error { return nil }

func TestDeduplication_NeverSharesAuthenticatedReads(t *testing.T) {
	var hits atomic.Int32
	bothArrived := make(chan struct{})

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 2 {
			close(bothArrived)
		}
		select {
		case <-bothArrived:
		case <-time.After(2 * time.Second):
		}
		name := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"name":"`+name+`"}}`)
	}, WithDeduplication(), WithSession(visitorSession{}))

	visitors := []string{"alice", "bob"}
	profiles := make([]map[string]any, len(visitors))
	var wg sync.WaitGroup
	for i, token := range visitors {
		i, token := i, token
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := context.WithValue(context.Background(), visitorKey{}, token)
			profile, err := c.Profile(ctx)
			assert.NoError(t, err)
			profiles[i] = profile
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, "alice", profiles[0]["name"])
	assert.Equal(t, "bob", profiles[1]["name"])
}

func TestDeduplication_LeaderCancelDoesNotFailFollowers(t *testing.T) {
	var hits atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			close(started)
		}
		<-release
		writeJSON(w, http.StatusOK, `{"success":true,"data":[{"_id":"1","name":"Acme"}]}`)
	}, WithDeduplication())

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := c.ListIndustryPartners(leaderCtx)
		leaderErr <- err
	}()
	<-started

	followerDone := make(chan []IndustryPartner, 1)
	go func() {
		partners, err := c.ListIndustryPartners(context.Background())
		assert.NoError(t, err)
		followerDone <- partners
	}()
	time.Sleep(100 * time.Millisecond)

	cancelLeader()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	close(release)
	assert.Len(t, <-followerDone, 1)
	assert.Equal(t, int32(1), hits.Load())
}

func TestHealth_UsesBackendRoot(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"status":"ok"}`)
	})

	doc, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", doc["status"])
}

func TestLogin_StoresToken(t *testing.T) {
	session := NewMemorySession("")
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"token":"abc"}}`)
	}, WithSession(session))

	token, err := c.Login(context.Background(), Credentials{Email: "a@b.co", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	stored, _ := session.Token(context.Background())
	assert.Equal(t, "abc", stored)
}
