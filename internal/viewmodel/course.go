// Package viewmodel reshapes backend records into display-ready values.
// Every function here is pure.
package viewmodel

import (
	"fmt"

	"github.com/inframe/campus-portal/pkg/client"
)

// Video is a testimonial video reference
type Video struct {
	URL string `json:"url"`
}

// ProgramView is the flat view model of one program page or listing card
type ProgramView struct {
	RedirectURL      string                     `json:"redirectUrl"`
	MainTitle        string                     `json:"mainTitle"`
	MetaTitle        string                     `json:"metaTitle"`
	MetaDescription  string                     `json:"metaDescription"`
	Value            string                     `json:"value"`
	Label            string                     `json:"label"`
	Title            string                     `json:"title"`
	Duration         string                     `json:"duration"`
	Description      string                     `json:"description"`
	Content          string                     `json:"content"`
	ImageURL         string                     `json:"imageUrl,omitempty"`
	HeroImage        string                     `json:"heroImage,omitempty"`
	CTATitle         string                     `json:"ctaTitle,omitempty"`
	CTADescription   string                     `json:"ctaDescription,omitempty"`
	BrochurePDFURL   string                     `json:"brochurePdfUrl,omitempty"`
	Software         []client.CourseSoftware    `json:"software"`
	WhatYouWillLearn []client.CourseFeature     `json:"whatYouWillLearn"`
	Videos           []Video                    `json:"videos"`
	Curriculum       []client.CourseCurriculum  `json:"curriculum"`
	Testimonials     []client.CourseTestimonial `json:"testimonials"`
	FAQs             []client.CourseFAQ         `json:"faqs"`
	CareerProspects  []client.CareerProspect    `json:"careerProspects"`
	Synthesized      bool                       `json:"synthesized,omitempty"`
}

// ProgramURL returns the page path of a program within a category
func ProgramURL(category, programSlug string) string {
	return fmt.Sprintf("/%s/%s", category, programSlug)
}

// ProgramPage merges a program with its parent course. Program fields give
// the title, duration and description; the course supplies everything else.
func ProgramPage(category, degree string, program client.CourseProgram, course *client.Course) ProgramView {
	if course == nil {
		course = &client.Course{}
	}

	return ProgramView{
		RedirectURL:      ProgramURL(category, degree),
		MainTitle:        category,
		MetaTitle:        program.Title,
		MetaDescription:  program.Description,
		Value:            degree,
		Label:            program.Title,
		Title:            program.Title,
		Duration:         program.Duration,
		Description:      program.Description,
		Content:          program.Description,
		ImageURL:         program.ImageURL,
		HeroImage:        course.HeroImage,
		CTATitle:         course.CTATitle,
		CTADescription:   course.CTADescription,
		BrochurePDFURL:   firstNonEmpty(program.BrochurePDFURL, course.BrochurePDFURL),
		Software:         orEmpty(course.Software),
		WhatYouWillLearn: orEmpty(course.Features),
		Videos:           Videos(course.Testimonials),
		Curriculum:       orEmpty(course.Curriculum),
		Testimonials:     orEmpty(course.Testimonials),
		FAQs:             orEmpty(course.FAQs),
		CareerProspects:  orEmpty(course.CareerProspects),
		Synthesized:      program.Synthesized || course.Synthesized,
	}
}

// ProgramValue is the listing key of a program: its explicit value, else the
// canonical form of its backend slug, else the slug of its title
func ProgramValue(p client.CourseProgram) string {
	if p.Value != "" {
		return p.Value
	}
	if p.Slug != "" {
		if v := client.CanonicalSlug(p.Slug); v != "" {
			return v
		}
	}
	return client.Slugify(p.Title)
}

// CategoryListing builds one card per program of course
func CategoryListing(category string, course *client.Course) []ProgramView {
	if course == nil {
		return []ProgramView{}
	}

	videos := Videos(course.Testimonials)
	cards := make([]ProgramView, 0, len(course.Programs))
	for _, p := range course.Programs {
		value := ProgramValue(p)
		slug := firstNonEmpty(p.Slug, value)

		cards = append(cards, ProgramView{
			RedirectURL:      ProgramURL(category, slug),
			MainTitle:        category,
			MetaTitle:        p.Title,
			MetaDescription:  p.Description,
			Value:            value,
			Label:            p.Title,
			Title:            p.Title,
			Duration:         p.Duration,
			Description:      p.Description,
			Content:          p.Description,
			ImageURL:         p.ImageURL,
			BrochurePDFURL:   firstNonEmpty(p.BrochurePDFURL, course.BrochurePDFURL),
			Software:         orEmpty(course.Software),
			WhatYouWillLearn: []client.CourseFeature{},
			Videos:           videos,
			Curriculum:       orEmpty(course.Curriculum),
			Testimonials:     []client.CourseTestimonial{},
			FAQs:             []client.CourseFAQ{},
			CareerProspects:  []client.CareerProspect{},
			Synthesized:      course.Synthesized,
		})
	}
	return cards
}

// Videos keeps the testimonials that carry a video URL
func Videos(testimonials []client.CourseTestimonial) []Video {
	videos := []Video{}
	for _, t := range testimonials {
		if t.YouTubeURL != "" {
			videos = append(videos, Video{URL: t.YouTubeURL})
		}
	}
	return videos
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
