package client

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Interior Design", "interior-design"},
		{"  B.Des   in Fashion ", "-bdes-in-fashion-"},
		{"UI/UX Design", "uiux-design"},
		{"already-a-slug", "already-a-slug"},
		{"Fine Arts & Crafts", "fine-arts--crafts"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestCanonicalSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bachelor-of-design-in-fashion", "bdes-in-fashion"},
		{"Bachelor-Of-Vocation-In-Interior", "bvoc-in-interior"},
		{"bachelor-of-science-in-animation", "bsc-in-animation"},
		{"master-of-design", "master-of-design"},
		{"bachelor_of_design", "bachelorofdesign"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalSlug(tt.in))
		})
	}
}

func TestMatchProgram(t *testing.T) {
	programs := []CourseProgram{
		{Title: "Diploma in Styling"},
		{Title: "B.Des Fashion", Slug: "bachelor-of-design-in-fashion"},
		{Title: "Fashion Communication", Slug: "fashion-comm"},
	}

	tests := []struct {
		name      string
		requested string
		wantTitle string
		wantOK    bool
	}{
		{"title slug", "diploma-in-styling", "Diploma in Styling", true},
		{"backend slug", "bachelor-of-design-in-fashion", "B.Des Fashion", true},
		{"canonical slug", "bdes-in-fashion", "B.Des Fashion", true},
		{"request cleaned", "BDES-IN-FASHION!", "B.Des Fashion", true},
		{"backend slug differs from title", "fashion-comm", "Fashion Communication", true},
		{"unrelated", "quantum-knitting", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := MatchProgram(programs, tt.requested)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTitle, p.Title)
		})
	}
}

func TestMatchProgram_FirstMatchWins(t *testing.T) {
	programs := []CourseProgram{
		{Title: "Animation", Duration: "3 Years"},
		{Title: "Other", Slug: "animation", Duration: "4 Years"},
	}

	p, ok := MatchProgram(programs, "animation")
	assert.True(t, ok)
	assert.Equal(t, "3 Years", p.Duration)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Bdes In Fashion", TitleCase("bdes-in-fashion"))
	assert.Equal(t, "Animation", TitleCase("animation"))
	assert.Equal(t, "", TitleCase(""))
}

func TestTitleCase_MultiByteFirstRune(t *testing.T) {
	got := TitleCase("école-d'art-ñandú")
	assert.Equal(t, "École D'art Ñandú", got)
	assert.True(t, utf8.ValidString(got))
}

func TestFallbacks(t *testing.T) {
	p := FallbackProgram("interior-design", "bvoc-in-interior")
	assert.True(t, p.Synthesized)
	assert.Equal(t, "Bvoc In Interior", p.Title)
	assert.Equal(t, "Comprehensive Bvoc In Interior program", p.Description)
	assert.Equal(t, "/interior-design/bvoc-in-interior", p.DetailsURL)
	assert.Equal(t, PlaceholderImage, p.ImageURL)
	assert.True(t, p.IsActive)

	c := FallbackCourse("graphic-design")
	assert.True(t, c.Synthesized)
	assert.Equal(t, "Graphic Design", c.Title)
	assert.Equal(t, "Join our programs today", c.CTADescription)
	assert.Empty(t, c.Programs)
}
