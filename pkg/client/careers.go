package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// ValidApplicantStatus reports whether s is a status the backend accepts
func ValidApplicantStatus(s string) bool {
	switch s {
	case ApplicantPending, ApplicantReviewed, ApplicantShortlisted, ApplicantRejected, ApplicantHired:
		return true
	}
	return false
}

// ListCareerPosts returns every career post
func (c *Client) ListCareerPosts(ctx context.Context) ([]CareerPost, error) {
	return c.careerPosts(ctx, GetCareerPosts)
}

// ListCareerPostsWithApplicants returns career posts with applicants
// populated, falling back to the plain listing if that fails
func (c *Client) ListCareerPostsWithApplicants(ctx context.Context) ([]CareerPost, error) {
	posts, err := c.careerPosts(ctx, GetCareerPostsWithApplicants)
	if err != nil {
		c.logger.Warn("falling back to career posts without applicants", "error", err)
		return c.ListCareerPosts(ctx)
	}
	return posts, nil
}

// ListActiveCareerPosts returns the openings currently shown on the site
func (c *Client) ListActiveCareerPosts(ctx context.Context) ([]CareerPost, error) {
	return c.careerPosts(ctx, GetActiveCareerPosts)
}

// careerPosts accepts a bare array, {data: [...]} or the full envelope
func (c *Client) careerPosts(ctx context.Context, e Endpoint) ([]CareerPost, error) {
	body, err := c.call(ctx, e, nil)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		posts := []CareerPost{}
		if err := json.Unmarshal(trimmed, &posts); err == nil {
			return posts, nil
		}
	}

	env, err := parseEnvelope(e.Name, body)
	if err == nil && env.dataKind() == '[' && (env.Success == nil || *env.Success) {
		posts := []CareerPost{}
		if err := json.Unmarshal(env.Data, &posts); err == nil {
			return posts, nil
		}
	}

	c.malformed(&MalformedResponseError{Endpoint: e.Name, Reason: "no career post array found"})
	return []CareerPost{}, nil
}

func (c *Client) GetCareerPost(ctx context.Context, id string) (*CareerPost, error) {
	return one[CareerPost](ctx, c, GetCareerPostByID, id)
}

func (c *Client) CreateCareerPost(ctx context.Context, in CareerPostInput) (*CareerPost, error) {
	return mutateOne[CareerPost](ctx, c, CreateCareerPost, in)
}

func (c *Client) UpdateCareerPost(ctx context.Context, id string, in CareerPostInput) (*CareerPost, error) {
	return mutateOne[CareerPost](ctx, c, UpdateCareerPost, in, id)
}

func (c *Client) DeleteCareerPost(ctx context.Context, id string) error {
	_, err := c.call(ctx, DeleteCareerPost, nil, id)
	return err
}

// ToggleCareerPostStatus flips whether the post is active
func (c *Client) ToggleCareerPostStatus(ctx context.Context, id string) (*CareerPost, error) {
	return mutateOne[CareerPost](ctx, c, ToggleCareerPostStatus, nil, id)
}

// ListApplicants returns the applicants of one career post
func (c *Client) ListApplicants(ctx context.Context, careerID string) ([]Applicant, error) {
	type result struct {
		Applicants []Applicant `json:"applicants"`
	}

	r, err := one[result](ctx, c, GetApplicants, careerID)
	if err != nil {
		return nil, err
	}
	if r == nil || r.Applicants == nil {
		return []Applicant{}, nil
	}
	return r.Applicants, nil
}

// UpdateApplicantStatus sets an applicant's review status. The backend
// replies with either the applicant in data or a bare success envelope.
func (c *Client) UpdateApplicantStatus(ctx context.Context, careerID, applicantID, status string) (*Applicant, error) {
	if !ValidApplicantStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	req := struct {
		Status string `json:"status"`
	}{status}

	applicant, err := mutate[Applicant](ctx, c, UpdateApplicantStatus, req, careerID, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		applicant = &Applicant{ID: applicantID, Status: status}
	}
	return applicant, nil
}
