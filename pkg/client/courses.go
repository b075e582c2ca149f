package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListCourses returns every course in backend order
func (c *Client) ListCourses(ctx context.Context) ([]Course, error) {
	courses, err := list[Course](ctx, c, GetCourses)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		sortCourse(&courses[i])
	}
	return courses, nil
}

// GetCourseByID returns the course with the given id, or nil on an
// unexpected reply
func (c *Client) GetCourseByID(ctx context.Context, id string) (*Course, error) {
	course, err := one[Course](ctx, c, GetCourseByID, id)
	if course != nil {
		sortCourse(course)
	}
	return course, err
}

// FetchCourseBySlug returns the course for slug without any fallback
func (c *Client) FetchCourseBySlug(ctx context.Context, slug string) (*Course, error) {
	body, err := c.call(ctx, GetCourseBySlug, nil, slug)
	if err != nil {
		return nil, err
	}

	course, err := decodeOne[Course](GetCourseBySlug.Name, body)
	if err != nil {
		return nil, err
	}
	sortCourse(course)
	return course, nil
}

// GetCourseBySlug returns the course for slug. Any failure yields a
// synthesized course built from the slug so the page still renders.
func (c *Client) GetCourseBySlug(ctx context.Context, slug string) *Course {
	course, err := c.FetchCourseBySlug(ctx, slug)
	if err != nil {
		c.logger.Error("failed to fetch course by slug", "slug", slug, "error", err)
		fallback := FallbackCourse(slug)
		return &fallback
	}
	return course
}

// GetCourseProgram finds programSlug inside the parent course. Unknown
// programs and fetch failures both yield a synthesized program; check
// CourseProgram.Synthesized to tell them apart from a real match.
func (c *Client) GetCourseProgram(ctx context.Context, parentSlug, programSlug string) CourseProgram {
	course, err := c.FetchCourseBySlug(ctx, parentSlug)
	if err != nil {
		c.logger.Error("failed to fetch course program by slug",
			"course", parentSlug, "program", programSlug, "error", err)
		return FallbackProgram(parentSlug, programSlug)
	}

	if p, ok := MatchProgram(course.Programs, programSlug); ok {
		return p
	}

	c.logger.Warn("program not found in course", "course", parentSlug, "program", programSlug)
	return FallbackProgram(parentSlug, programSlug)
}

// ListCoursePrograms returns every program across courses
func (c *Client) ListCoursePrograms(ctx context.Context) ([]CourseProgram, error) {
	return listOrdered[CourseProgram](ctx, c, GetCoursePrograms)
}

func (c *Client) ListCourseFeatures(ctx context.Context) ([]CourseFeature, error) {
	return listOrdered[CourseFeature](ctx, c, GetCourseFeatures)
}

func (c *Client) ListCourseTestimonials(ctx context.Context) ([]CourseTestimonial, error) {
	return listOrdered[CourseTestimonial](ctx, c, GetCourseTestimonials)
}

func (c *Client) ListCourseFAQs(ctx context.Context) ([]CourseFAQ, error) {
	return listOrdered[CourseFAQ](ctx, c, GetCourseFAQs)
}

func (c *Client) ListCourseCurriculum(ctx context.Context) ([]CourseCurriculum, error) {
	return listOrdered[CourseCurriculum](ctx, c, GetCourseCurriculum)
}

func (c *Client) ListCourseSoftware(ctx context.Context) ([]CourseSoftware, error) {
	return listOrdered[CourseSoftware](ctx, c, GetCourseSoftware)
}

func (c *Client) ListCourseCareerProspects(ctx context.Context) ([]CareerProspect, error) {
	return listOrdered[CareerProspect](ctx, c, GetCourseCareerProspects)
}

// CreateCourse creates a course
func (c *Client) CreateCourse(ctx context.Context, course Course) (*Course, error) {
	return mutate[Course](ctx, c, CreateCourse, course)
}

// UpdateCourse replaces the course with the given id
func (c *Client) UpdateCourse(ctx context.Context, id string, course Course) (*Course, error) {
	return mutate[Course](ctx, c, UpdateCourse, course, id)
}

// DeleteCourse deletes a course
func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	_, err := mutate[struct{}](ctx, c, DeleteCourse, nil, id)
	return err
}

// GenerateSlug asks the backend for the slug it would assign to title
func (c *Client) GenerateSlug(ctx context.Context, title string) (string, error) {
	body, err := c.call(ctx, GenerateCourseSlug, nil, title)
	if err != nil {
		return "", err
	}

	var result struct {
		Success bool   `json:"success"`
		Slug    string `json:"slug"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &MalformedResponseError{Endpoint: GenerateCourseSlug.Name, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if !result.Success || result.Slug == "" {
		return "", &MalformedResponseError{Endpoint: GenerateCourseSlug.Name, Reason: "missing slug"}
	}

	return result.Slug, nil
}
