package client

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// AboutUs aggregates everything the about page shows. Content sections are
// nil when the backend has not configured them.
type AboutUs struct {
	HeroImages     []HeroImage   `json:"heroImages"`
	Statistics     []Statistic   `json:"statistics"`
	CoreValues     []CoreValue   `json:"coreValues"`
	CampusImages   []CampusImage `json:"campusImages"`
	WhoWeAre       *AboutContent `json:"whoWeAreContent"`
	AboutUs        *AboutContent `json:"aboutUsContent"`
	Vision         *AboutContent `json:"visionContent"`
	Mission        *AboutContent `json:"missionContent"`
	CoreValuesText *AboutContent `json:"coreValuesTextContent"`
}

func (c *Client) ListHeroImages(ctx context.Context) ([]HeroImage, error) {
	return listOrdered[HeroImage](ctx, c, GetHeroImages)
}

func (c *Client) ListStatistics(ctx context.Context) ([]Statistic, error) {
	return listOrdered[Statistic](ctx, c, GetStatistics)
}

func (c *Client) ListCoreValues(ctx context.Context) ([]CoreValue, error) {
	return listOrdered[CoreValue](ctx, c, GetCoreValues)
}

func (c *Client) ListCampusImages(ctx context.Context) ([]CampusImage, error) {
	return listOrdered[CampusImage](ctx, c, GetCampusImages)
}

// GetAboutContent returns the content section of the given type, or nil if
// the backend has not configured it
func (c *Client) GetAboutContent(ctx context.Context, sectionType string) (*AboutContent, error) {
	return optional[AboutContent](ctx, c, GetContentByType, sectionType)
}

// GetAboutUs fetches every about-us resource concurrently. The first
// failure cancels the rest.
func (c *Client) GetAboutUs(ctx context.Context) (*AboutUs, error) {
	var about AboutUs
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		about.HeroImages, err = c.ListHeroImages(gctx)
		return err
	})
	g.Go(func() (err error) {
		about.Statistics, err = c.ListStatistics(gctx)
		return err
	})
	g.Go(func() (err error) {
		about.CoreValues, err = c.ListCoreValues(gctx)
		return err
	})
	g.Go(func() (err error) {
		about.CampusImages, err = c.ListCampusImages(gctx)
		return err
	})

	sections := []struct {
		kind string
		dst  **AboutContent
	}{
		{SectionWhoWeAre, &about.WhoWeAre},
		{SectionAboutUs, &about.AboutUs},
		{SectionVision, &about.Vision},
		{SectionMission, &about.Mission},
		{SectionCoreValuesText, &about.CoreValuesText},
	}
	for _, s := range sections {
		s := s
		g.Go(func() (err error) {
			*s.dst, err = c.GetAboutContent(gctx, s.kind)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch about us data: %w", err)
	}
	return &about, nil
}

// Admin operations

func (c *Client) CreateHeroImage(ctx context.Context, img HeroImage) (*HeroImage, error) {
	return mutate[HeroImage](ctx, c, AddHeroImage, img)
}

func (c *Client) UpdateHeroImage(ctx context.Context, id string, img HeroImage) (*HeroImage, error) {
	return mutate[HeroImage](ctx, c, UpdateHeroImage, img, id)
}

func (c *Client) DeleteHeroImage(ctx context.Context, id string) error {
	_, err := mutate[struct{}](ctx, c, DeleteHeroImage, nil, id)
	return err
}

// SaveAboutContent creates or replaces the section named by content.SectionType
func (c *Client) SaveAboutContent(ctx context.Context, content AboutContent) (*AboutContent, error) {
	return mutate[AboutContent](ctx, c, AddOrUpdateContent, content)
}

func (c *Client) CreateStatistic(ctx context.Context, s Statistic) (*Statistic, error) {
	return mutate[Statistic](ctx, c, AddStatistic, s)
}

func (c *Client) UpdateStatistic(ctx context.Context, id string, s Statistic) (*Statistic, error) {
	return mutate[Statistic](ctx, c, UpdateStatistic, s, id)
}

func (c *Client) DeleteStatistic(ctx context.Context, id string) error {
	_, err := mutate[struct{}](ctx, c, DeleteStatistic, nil, id)
	return err
}

func (c *Client) CreateCoreValue(ctx context.Context, v CoreValue) (*CoreValue, error) {
	return mutate[CoreValue](ctx, c, AddCoreValue, v)
}

func (c *Client) UpdateCoreValue(ctx context.Context, id string, v CoreValue) (*CoreValue, error) {
	return mutate[CoreValue](ctx, c, UpdateCoreValue, v, id)
}

func (c *Client) DeleteCoreValue(ctx context.Context, id string) error {
	_, err := mutate[struct{}](ctx, c, DeleteCoreValue, nil, id)
	return err
}

func (c *Client) CreateCampusImage(ctx context.Context, img CampusImage) (*CampusImage, error) {
	return mutate[CampusImage](ctx, c, AddCampusImage, img)
}

func (c *Client) UpdateCampusImage(ctx context.Context, id string, img CampusImage) (*CampusImage, error) {
	return mutate[CampusImage](ctx, c, UpdateCampusImage, img, id)
}

func (c *Client) DeleteCampusImage(ctx context.Context, id string) error {
	_, err := mutate[struct{}](ctx, c, DeleteCampusImage, nil, id)
	return err
}
