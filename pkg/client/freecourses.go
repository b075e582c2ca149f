package client

import (
	"context"
	"strings"
)

// ListFreeCourses returns every free course
func (c *Client) ListFreeCourses(ctx context.Context) ([]FreeCourse, error) {
	return list[FreeCourse](ctx, c, GetFreeCourses)
}

// ListActiveFreeCourses returns only courses marked active
func (c *Client) ListActiveFreeCourses(ctx context.Context) ([]FreeCourse, error) {
	courses, err := c.ListFreeCourses(ctx)
	if err != nil {
		return nil, err
	}
	return FilterFreeCourses(courses, func(fc FreeCourse) bool { return fc.IsActive }), nil
}

// SearchFreeCourses matches term against name, short description and meta
// keywords, ignoring case
func (c *Client) SearchFreeCourses(ctx context.Context, term string) ([]FreeCourse, error) {
	courses, err := c.ListFreeCourses(ctx)
	if err != nil {
		return nil, err
	}
	return FilterFreeCourses(courses, FreeCourseMatcher(term)), nil
}

// FreeCourseMatcher returns a predicate for the free course search
func FreeCourseMatcher(term string) func(FreeCourse) bool {
	needle := strings.ToLower(term)
	return func(fc FreeCourse) bool {
		return strings.Contains(strings.ToLower(fc.Name), needle) ||
			strings.Contains(strings.ToLower(fc.ShortDescription), needle) ||
			strings.Contains(strings.ToLower(fc.MetaKeywords), needle)
	}
}

// FilterFreeCourses returns the courses keep accepts, never nil
func FilterFreeCourses(courses []FreeCourse, keep func(FreeCourse) bool) []FreeCourse {
	out := make([]FreeCourse, 0, len(courses))
	for _, fc := range courses {
		if keep(fc) {
			out = append(out, fc)
		}
	}
	return out
}

// GetFreeCourse returns the course, or nil when it does not exist
func (c *Client) GetFreeCourse(ctx context.Context, id string) (*FreeCourse, error) {
	return optional[FreeCourse](ctx, c, GetFreeCourseByID, id)
}

func (c *Client) CreateFreeCourse(ctx context.Context, in FreeCourseInput) (*FreeCourse, error) {
	return mutateOne[FreeCourse](ctx, c, CreateFreeCourse, in)
}

func (c *Client) UpdateFreeCourse(ctx context.Context, id string, in FreeCourseInput) (*FreeCourse, error) {
	return mutateOne[FreeCourse](ctx, c, UpdateFreeCourse, in, id)
}

func (c *Client) DeleteFreeCourse(ctx context.Context, id string) error {
	_, err := mutate[struct{}](ctx, c, DeleteFreeCourse, nil, id)
	return err
}

// ToggleFreeCourseStatus flips whether the course is active
func (c *Client) ToggleFreeCourseStatus(ctx context.Context, id string) (*FreeCourse, error) {
	return mutateOne[FreeCourse](ctx, c, ToggleFreeCourseStatus, nil, id)
}
