package views

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/inframe/campus-portal/internal/catalog"
	"github.com/inframe/campus-portal/internal/viewmodel"
	"github.com/inframe/campus-portal/pkg/client"
)

var (
	// ErrBlogNotFound is returned once every blog source has been tried
	ErrBlogNotFound = errors.New("blog post not found")

	// ErrFreeCourseNotFound is returned for an unknown free course id
	ErrFreeCourseNotFound = errors.New("free course not found")
)

// Blog sources
const (
	SourceAPI    = "api"
	SourceStatic = "static"
)

// Pages assembles the data of every page from the backend and the static
// catalogue
type Pages struct {
	client  *client.Client
	content *catalog.Loader
	logger  *slog.Logger
}

// NewPages creates the page loaders. content may be nil.
func NewPages(c *client.Client, content *catalog.Loader, logger *slog.Logger) *Pages {
	if content == nil {
		content = catalog.NewLoader()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pages{client: c, content: content, logger: logger}
}

func (p *Pages) Courses(ctx context.Context) ([]client.Course, error) {
	courses, err := p.client.ListCourses(ctx)
	if err != nil {
		return nil, fail("Failed to load courses.", err)
	}
	return courses, nil
}

// CategoryPage is a course category with one card per program
type CategoryPage struct {
	Course   *client.Course          `json:"course"`
	Programs []viewmodel.ProgramView `json:"programs"`
	Videos   []viewmodel.Video       `json:"videos"`
}

// Category loads a course category. Unknown categories render a
// synthesized course rather than failing.
func (p *Pages) Category(ctx context.Context, category string) (*CategoryPage, error) {
	course := p.client.GetCourseBySlug(ctx, category)
	return &CategoryPage{
		Course:   course,
		Programs: viewmodel.CategoryListing(category, course),
		Videos:   viewmodel.Videos(course.Testimonials),
	}, nil
}

// Program loads a program page. The program and its parent course are
// fetched concurrently.
func (p *Pages) Program(ctx context.Context, category, degree string) (*viewmodel.ProgramView, error) {
	var (
		program client.CourseProgram
		course  *client.Course
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		program = p.client.GetCourseProgram(gctx, category, degree)
		return nil
	})
	g.Go(func() error {
		course = p.client.GetCourseBySlug(gctx, category)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fail("Failed to load program.", err)
	}

	view := viewmodel.ProgramPage(category, degree, program, course)
	return &view, nil
}

// BlogListing is the blog index
type BlogListing struct {
	Posts      []viewmodel.BlogCard `json:"posts"`
	Categories []string             `json:"categories"`
	Source     string               `json:"source"`
}

// BlogList lists API posts, or the static catalogue when the API has none
// or fails. term filters by title and excerpt.
func (p *Pages) BlogList(ctx context.Context, term string) (*BlogListing, error) {
	source := SourceAPI
	posts, err := p.client.ListBlogs(ctx)
	if err != nil {
		p.logger.Warn("failed to load blogs from backend, using static posts", "error", err)
	}
	if err != nil || len(posts) == 0 {
		posts = p.content.BlogPosts()
		source = SourceStatic
	}

	return &BlogListing{
		Posts:      viewmodel.FilterBlogCards(viewmodel.BlogCards(posts), term),
		Categories: viewmodel.BlogCategories(posts),
		Source:     source,
	}, nil
}

// BlogDetail resolves slug against the static catalogue, then the API by
// slug, then the API by id
func (p *Pages) BlogDetail(ctx context.Context, slug string) (*viewmodel.Blog, error) {
	if post := p.content.BlogPost(slug); post != nil {
		view := viewmodel.BlogDetail(*post, false)
		return &view, nil
	}

	post, err := p.client.GetBlogBySlug(ctx, slug)
	if err == nil && post != nil {
		view := viewmodel.BlogDetail(*post, true)
		return &view, nil
	}
	p.logger.Debug("blog not found by slug, trying id", "slug", slug, "error", err)

	post, err = p.client.GetBlogByID(ctx, slug)
	if err == nil && post != nil {
		view := viewmodel.BlogDetail(*post, true)
		return &view, nil
	}
	p.logger.Debug("blog not found by id", "id", slug, "error", err)

	return nil, ErrBlogNotFound
}

func (p *Pages) About(ctx context.Context) (*client.AboutUs, error) {
	about, err := p.client.GetAboutUs(ctx)
	if err != nil {
		return nil, fail("Failed to load about us data.", err)
	}
	return about, nil
}

// Partners lists industry partners, retrying transient failures
func (p *Pages) Partners(ctx context.Context) ([]client.IndustryPartner, error) {
	partners, err := p.client.ListIndustryPartnersWithRetry(ctx)
	if err != nil {
		return nil, fail("Failed to load industry partners.", err)
	}
	return partners, nil
}

func (p *Pages) Advisors(ctx context.Context) ([]client.Advisor, error) {
	advisors, err := p.client.ListAdvisors(ctx)
	if err != nil {
		return nil, fail("Failed to load advisors.", err)
	}
	return advisors, nil
}

func (p *Pages) Memberships(ctx context.Context) ([]client.Membership, error) {
	memberships, err := p.client.ListMemberships(ctx)
	if err != nil {
		return nil, fail("Failed to load memberships.", err)
	}
	return memberships, nil
}

func (p *Pages) Testimonials(ctx context.Context) ([]client.Testimonial, error) {
	testimonials, err := p.client.ListTestimonials(ctx)
	if err != nil {
		return nil, fail("Failed to load testimonials.", err)
	}
	return testimonials, nil
}

func (p *Pages) Clubs(ctx context.Context) ([]client.StudentClub, error) {
	clubs, err := p.client.ListStudentClubs(ctx)
	if err != nil {
		return nil, fail("Failed to load student clubs.", err)
	}
	return clubs, nil
}

func (p *Pages) Events(ctx context.Context) ([]client.CampusEvent, error) {
	events, err := p.client.ListCampusEvents(ctx)
	if err != nil {
		return nil, fail("Failed to load campus events.", err)
	}
	return events, nil
}

// Careers lists the active job openings
func (p *Pages) Careers(ctx context.Context) ([]client.CareerPost, error) {
	posts, err := p.client.ListActiveCareerPosts(ctx)
	if err != nil {
		return nil, fail("Failed to load job openings.", err)
	}
	return posts, nil
}

// FreeCourses lists active free courses as cards, filtered by term when set
func (p *Pages) FreeCourses(ctx context.Context, term string) ([]viewmodel.FreeCourse, error) {
	courses, err := p.client.ListActiveFreeCourses(ctx)
	if err != nil {
		return nil, fail("Failed to load free courses.", err)
	}
	if term != "" {
		courses = client.FilterFreeCourses(courses, client.FreeCourseMatcher(term))
	}
	return viewmodel.FreeCourseCards(courses), nil
}

func (p *Pages) FreeCourse(ctx context.Context, id string) (*client.FreeCourse, error) {
	course, err := p.client.GetFreeCourse(ctx, id)
	if err != nil {
		return nil, fail("Failed to load course.", err)
	}
	if course == nil {
		return nil, ErrFreeCourseNotFound
	}
	return course, nil
}

// DownloadsPage lists downloadable files with their categories
type DownloadsPage struct {
	Items      []client.Download         `json:"items"`
	Categories []client.DownloadCategory `json:"categories"`
}

func (p *Pages) Downloads(ctx context.Context) (*DownloadsPage, error) {
	var page DownloadsPage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := p.client.ListDownloads(gctx)
		page.Items = items
		return err
	})
	g.Go(func() error {
		categories, err := p.client.ListDownloadCategories(gctx)
		page.Categories = categories
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fail("Failed to load downloads.", err)
	}
	return &page, nil
}

// NewsEvents is the news and events page
type NewsEvents struct {
	News   []catalog.NewsItem `json:"news"`
	Events []catalog.Event    `json:"events"`
}

// NewsEvents returns the static news and events filtered by term
func (p *Pages) NewsEvents(term string) *NewsEvents {
	return &NewsEvents{
		News:   viewmodel.FilterNewsEvents(p.content.News(), term),
		Events: viewmodel.FilterNewsEvents(p.content.Events(), term),
	}
}
