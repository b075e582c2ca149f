package client

import "context"

func (c *Client) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	return list[Testimonial](ctx, c, GetTestimonials)
}

func (c *Client) ListStudentClubs(ctx context.Context) ([]StudentClub, error) {
	return listOrdered[StudentClub](ctx, c, GetStudentClubs)
}

func (c *Client) ListCampusEvents(ctx context.Context) ([]CampusEvent, error) {
	return listOrdered[CampusEvent](ctx, c, GetCampusEvents)
}

func (c *Client) ListMemberships(ctx context.Context) ([]Membership, error) {
	return list[Membership](ctx, c, GetMemberships)
}

// Life at campus

func (c *Client) ListLifeSections(ctx context.Context) ([]LifeSection, error) {
	return listOrdered[LifeSection](ctx, c, GetLifeSections)
}

func (c *Client) CreateLifeSection(ctx context.Context, s LifeSection) (*LifeSection, error) {
	return mutate[LifeSection](ctx, c, AddLifeSection, s)
}

func (c *Client) UpdateLifeSection(ctx context.Context, id string, s LifeSection) (*LifeSection, error) {
	return mutate[LifeSection](ctx, c, UpdateLifeSection, s, id)
}

func (c *Client) DeleteLifeSection(ctx context.Context, id string) error {
	_, err := mutate[struct{}](ctx, c, DeleteLifeSection, nil, id)
	return err
}

func (c *Client) ListStudentServices(ctx context.Context) ([]StudentService, error) {
	return listOrdered[StudentService](ctx, c, GetStudentServices)
}

func (c *Client) CreateStudentService(ctx context.Context, s StudentService) (*StudentService, error) {
	return mutate[StudentService](ctx, c, AddStudentService, s)
}

func (c *Client) UpdateStudentService(ctx context.Context, id string, s StudentService) (*StudentService, error) {
	return mutate[StudentService](ctx, c, UpdateStudentService, s, id)
}

func (c *Client) DeleteStudentService(ctx context.Context, id string) error {
	_, err := mutate[struct{}](ctx, c, DeleteStudentService, nil, id)
	return err
}

func (c *Client) ListSportsFacilities(ctx context.Context) ([]SportsFacility, error) {
	return list[SportsFacility](ctx, c, GetSportsFacilities)
}

func (c *Client) CreateSportsFacility(ctx context.Context, f SportsFacility) (*SportsFacility, error) {
	return mutate[SportsFacility](ctx, c, AddSportsFacility, f)
}

func (c *Client) UpdateSportsFacility(ctx context.Context, id string, f SportsFacility) (*SportsFacility, error) {
	return mutate[SportsFacility](ctx, c, UpdateSportsFacility, f, id)
}

func (c *Client) DeleteSportsFacility(ctx context.Context, id string) error {
	_, err := mutate[struct{}](ctx, c, DeleteSportsFacility, nil, id)
	return err
}

func (c *Client) ListGalleryImages(ctx context.Context) ([]GalleryImage, error) {
	return listOrdered[GalleryImage](ctx, c, GetLifeGallery)
}

func (c *Client) CreateGalleryImage(ctx context.Context, img GalleryImage) (*GalleryImage, error) {
	return mutate[GalleryImage](ctx, c, AddLifeGalleryImage, img)
}

func (c *Client) UpdateGalleryImage(ctx context.Context, id string, img GalleryImage) (*GalleryImage, error) {
	return mutate[GalleryImage](ctx, c, UpdateLifeGalleryImage, img, id)
}

func (c *Client) DeleteGalleryImage(ctx context.Context, id string) error {
	_, err := mutate[struct{}](ctx, c, DeleteLifeGalleryImage, nil, id)
	return err
}
