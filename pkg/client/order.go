package client

import (
	"cmp"
	"slices"
)

// Ordered is implemented by records that carry a display order
type Ordered interface {
	OrderKey() int
}

// SortByOrder sorts items ascending by order, keeping the backend order for ties
func SortByOrder[T Ordered](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(a.OrderKey(), b.OrderKey())
	})
}

func (p CourseProgram) OrderKey() int     { return p.Order }
func (f CourseFeature) OrderKey() int     { return f.Order }
func (t CourseTestimonial) OrderKey() int { return t.Order }
func (f CourseFAQ) OrderKey() int         { return f.Order }
func (c CourseCurriculum) OrderKey() int  { return c.Order }
func (s CourseSoftware) OrderKey() int    { return s.Order }
func (p CareerProspect) OrderKey() int    { return p.Order }
func (c StudentClub) OrderKey() int       { return c.Order }
func (e CampusEvent) OrderKey() int       { return e.Order }
func (h HeroImage) OrderKey() int         { return h.Order }
func (s Statistic) OrderKey() int         { return s.Order }
func (v CoreValue) OrderKey() int         { return v.Order }
func (c CampusImage) OrderKey() int       { return c.Order }
func (l LifeSection) OrderKey() int       { return l.Order }
func (s StudentService) OrderKey() int    { return s.Order }
func (g GalleryImage) OrderKey() int      { return g.Order }

// sortCourse orders every nested section of c in place
func sortCourse(c *Course) {
	SortByOrder(c.Programs)
	SortByOrder(c.Features)
	SortByOrder(c.Testimonials)
	SortByOrder(c.FAQs)
	SortByOrder(c.Curriculum)
	SortByOrder(c.Software)
	SortByOrder(c.CareerProspects)
}
