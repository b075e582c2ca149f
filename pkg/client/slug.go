package client

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PlaceholderImage is used by synthesized courses and programs
const PlaceholderImage = "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?q=80&w=2158&auto=format&fit=crop"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9-]`)

	canonicalPrefixes = strings.NewReplacer(
		"bachelor-of-design-in-", "bdes-in-",
		"bachelor-of-vocation-in-", "bvoc-in-",
		"bachelor-of-science-in-", "bsc-in-",
	)
)

// Slugify turns a human readable title into a slug
func Slugify(title string) string {
	s := whitespaceRun.ReplaceAllString(strings.ToLower(title), "-")
	return nonSlugChars.ReplaceAllString(s, "")
}

// CleanSlug lower-cases s and drops characters outside [a-z0-9-]
func CleanSlug(s string) string {
	return nonSlugChars.ReplaceAllString(strings.ToLower(s), "")
}

// CanonicalSlug maps long degree prefixes to their short forms,
// e.g. bachelor-of-design-in-fashion becomes bdes-in-fashion.
func CanonicalSlug(s string) string {
	return canonicalPrefixes.Replace(CleanSlug(s))
}

// MatchProgram returns the first program whose title slug, backend slug or
// canonical backend slug equals the requested slug.
func MatchProgram(programs []CourseProgram, requested string) (CourseProgram, bool) {
	want := CleanSlug(requested)
	if want == "" {
		return CourseProgram{}, false
	}

	for _, p := range programs {
		if p.Title != "" && Slugify(p.Title) == want {
			return p, true
		}
		if p.Slug == "" {
			continue
		}
		if CleanSlug(p.Slug) == want || CanonicalSlug(p.Slug) == want {
			return p, true
		}
	}
	return CourseProgram{}, false
}

// TitleCase renders a slug as capitalized words
func TitleCase(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// FallbackProgram builds a stand-in program for a slug that matched nothing
func FallbackProgram(parentSlug, programSlug string) CourseProgram {
	title := TitleCase(programSlug)
	return CourseProgram{
		Title:       title,
		Duration:    "4 Years Full-Time",
		Description: "Comprehensive " + title + " program",
		ImageURL:    PlaceholderImage,
		DetailsURL:  "/" + parentSlug + "/" + programSlug,
		Order:       1,
		IsActive:    true,
		Synthesized: true,
	}
}

// FallbackCourse builds a stand-in course for a slug the backend could not serve
func FallbackCourse(slug string) Course {
	title := TitleCase(slug)
	return Course{
		Slug:            slug,
		Title:           title,
		Description:     "Explore our " + title + " programs",
		HeroImage:       PlaceholderImage,
		Programs:        []CourseProgram{},
		Features:        []CourseFeature{},
		Testimonials:    []CourseTestimonial{},
		FAQs:            []CourseFAQ{},
		Curriculum:      []CourseCurriculum{},
		Software:        []CourseSoftware{},
		CareerProspects: []CareerProspect{},
		CTATitle:        "Start Your Journey",
		CTADescription:  "Join our programs today",
		IsActive:        true,
		Synthesized:     true,
	}
}
