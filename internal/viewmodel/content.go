package viewmodel

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/inframe/campus-portal/pkg/client"
)

const defaultBlogHero = "/images/gallery/1721737773149.jpg"

// FreeCourse is the listing card of a free course
type FreeCourse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Intent     string `json:"intent"`
	Duration   string `json:"duration"`
	WhyToLearn string `json:"whyToLearn"`
	Placement  string `json:"placement"`
	Fees       string `json:"fees"`
	Mode       string `json:"mode"`
	Category   string `json:"category"`
	Image      string `json:"image"`
}

// FreeCourseCard converts a backend free course. The first delivery option
// supplies the duration.
func FreeCourseCard(fc client.FreeCourse) FreeCourse {
	weeks := 0
	if len(fc.Details) > 0 {
		weeks = fc.Details[0].Duration
	}

	return FreeCourse{
		ID:         fc.ID,
		Title:      fc.Name,
		Intent:     fc.ShortDescription,
		Duration:   fmt.Sprintf("%d Weeks", weeks),
		WhyToLearn: fc.WhyLearnThisCourse,
		Placement:  fc.CareerOpportunities,
		Fees:       "Free",
		Mode:       "Online",
		Category:   "Design",
		Image:      fc.ImageURL,
	}
}

// FreeCourseCards maps FreeCourseCard over courses
func FreeCourseCards(courses []client.FreeCourse) []FreeCourse {
	cards := make([]FreeCourse, 0, len(courses))
	for _, fc := range courses {
		cards = append(cards, FreeCourseCard(fc))
	}
	return cards
}

// BlogCard is a blog listing entry
type BlogCard struct {
	Slug     string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Date     string `json:"date"`
	ReadTime string `json:"readTime"`
	Keywords string `json:"keywords"`
}

// BlogCards converts posts to listing cards
func BlogCards(posts []client.BlogPost) []BlogCard {
	cards := make([]BlogCard, 0, len(posts))
	for _, p := range posts {
		category := firstNonEmpty(p.Category, "General")
		cards = append(cards, BlogCard{
			Slug:     p.Slug,
			Title:    p.Title,
			Excerpt:  p.Excerpt,
			Image:    p.HeroImage,
			Category: category,
			Date:     p.Date,
			ReadTime: p.ReadTime,
			Keywords: category + ", " + p.Title,
		})
	}
	return cards
}

// FilterBlogCards keeps cards whose title or excerpt contains term
func FilterBlogCards(cards []BlogCard, term string) []BlogCard {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return cards
	}

	out := []BlogCard{}
	for _, c := range cards {
		if strings.Contains(strings.ToLower(c.Title), term) || strings.Contains(strings.ToLower(c.Excerpt), term) {
			out = append(out, c)
		}
	}
	return out
}

// BlogCategories returns "All" followed by the distinct categories of posts
// in first-seen order
func BlogCategories(posts []client.BlogPost) []string {
	categories := []string{"All"}
	seen := map[string]bool{"All": true}
	for _, p := range posts {
		c := firstNonEmpty(p.Category, "General")
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	return categories
}

// Blog is the blog detail view model
type Blog struct {
	Slug         string               `json:"slug"`
	Title        string               `json:"title"`
	Excerpt      string               `json:"excerpt"`
	HeroImage    string               `json:"heroImage"`
	Category     string               `json:"category"`
	Date         string               `json:"date"`
	ReadTime     string               `json:"readTime"`
	Author       client.BlogAuthor    `json:"author"`
	Sections     []client.BlogSection `json:"sections"`
	RelatedPosts []string             `json:"relatedPosts"`
	Views        int                  `json:"views"`
	FromAPI      bool                 `json:"fromApi"`
}

// BlogDetail builds the detail view. Posts that came from the API carry no
// related posts.
func BlogDetail(post client.BlogPost, fromAPI bool) Blog {
	related := orEmpty(post.RelatedPosts)
	if fromAPI {
		related = []string{}
	}

	return Blog{
		Slug:         post.Slug,
		Title:        post.Title,
		Excerpt:      post.Excerpt,
		HeroImage:    firstNonEmpty(post.HeroImage, defaultBlogHero),
		Category:     firstNonEmpty(post.Category, "General"),
		Date:         post.Date,
		ReadTime:     post.ReadTime,
		Author:       post.Author,
		Sections:     orEmpty(post.Sections),
		RelatedPosts: related,
		Views:        post.Views,
		FromAPI:      fromAPI,
	}
}

// Searchable is implemented by news and event items
type Searchable interface {
	SearchText() (title, body string)
}

// FilterNewsEvents keeps the items whose title or body contains term,
// ignoring case. An empty term keeps everything.
func FilterNewsEvents[T Searchable](items []T, term string) []T {
	term = strings.ToLower(term)
	out := make([]T, 0, len(items))
	for _, item := range items {
		title, body := item.SearchText()
		if strings.Contains(strings.ToLower(title), term) || strings.Contains(strings.ToLower(body), term) {
			out = append(out, item)
		}
	}
	return out
}

// EnquiryFailureMessage maps a failed form submission to the message shown
// to the visitor
func EnquiryFailureMessage(err error) string {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return "An error occurred. Please try again later."
	}

	switch {
	case apiErr.StatusCode == http.StatusBadRequest:
		return "Please check your form data and try again."
	case apiErr.StatusCode == http.StatusNotFound:
		return "Service temporarily unavailable. Please try again later."
	case apiErr.StatusCode >= 500:
		return "Server error. Please try again later."
	default:
		return "An error occurred. Please try again later."
	}
}
