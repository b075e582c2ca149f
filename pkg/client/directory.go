package client

import "context"

// Advisors

func (c *Client) ListAdvisors(ctx context.Context) ([]Advisor, error) {
	return list[Advisor](ctx, c, GetAdvisors)
}

func (c *Client) GetAdvisor(ctx context.Context, id string) (*Advisor, error) {
	return one[Advisor](ctx, c, GetAdvisorByID, id)
}

func (c *Client) CreateAdvisor(ctx context.Context, a Advisor) (*Advisor, error) {
	return mutate[Advisor](ctx, c, CreateAdvisor, a)
}

func (c *Client) UpdateAdvisor(ctx context.Context, id string, a Advisor) (*Advisor, error) {
	return mutate[Advisor](ctx, c, UpdateAdvisor, a, id)
}

func (c *Client) DeleteAdvisor(ctx context.Context, id string) error {
	_, err := mutate[struct{}](ctx, c, DeleteAdvisor, nil, id)
	return err
}

// Industry partners

func (c *Client) ListIndustryPartners(ctx context.Context) ([]IndustryPartner, error) {
	return list[IndustryPartner](ctx, c, GetIndustryPartners)
}

// ListIndustryPartnersWithRetry is ListIndustryPartners under the default
// retry policy
func (c *Client) ListIndustryPartnersWithRetry(ctx context.Context) ([]IndustryPartner, error) {
	return Retry(ctx, DefaultRetryPolicy(), func(ctx context.Context) ([]IndustryPartner, error) {
		return c.ListIndustryPartners(ctx)
	})
}

func (c *Client) GetIndustryPartner(ctx context.Context, id string) (*IndustryPartner, error) {
	return one[IndustryPartner](ctx, c, GetIndustryPartnerByID, id)
}

func (c *Client) CreateIndustryPartner(ctx context.Context, p IndustryPartner) (*IndustryPartner, error) {
	return mutate[IndustryPartner](ctx, c, CreateIndustryPartner, p)
}

func (c *Client) UpdateIndustryPartner(ctx context.Context, id string, p IndustryPartner) (*IndustryPartner, error) {
	return mutate[IndustryPartner](ctx, c, UpdateIndustryPartner, p, id)
}

func (c *Client) DeleteIndustryPartner(ctx context.Context, id string) error {
	_, err := mutate[struct{}](ctx, c, DeleteIndustryPartner, nil, id)
	return err
}

// Downloads

func (c *Client) ListDownloads(ctx context.Context) ([]Download, error) {
	return list[Download](ctx, c, GetDownloads)
}

func (c *Client) GetDownload(ctx context.Context, id string) (*Download, error) {
	return one[Download](ctx, c, GetDownloadByID, id)
}

func (c *Client) CreateDownload(ctx context.Context, d Download) (*Download, error) {
	return mutate[Download](ctx, c, CreateDownload, d)
}

func (c *Client) UpdateDownload(ctx context.Context, id string, d Download) (*Download, error) {
	return mutate[Download](ctx, c, UpdateDownload, d, id)
}

func (c *Client) DeleteDownload(ctx context.Context, id string) error {
	_, err := mutate[struct{}](ctx, c, DeleteDownload, nil, id)
	return err
}

func (c *Client) ListDownloadCategories(ctx context.Context) ([]DownloadCategory, error) {
	return list[DownloadCategory](ctx, c, GetDownloadCategories)
}

func (c *Client) DeleteDownloadCategory(ctx context.Context, id string) error {
	_, err := mutate[struct{}](ctx, c, DeleteDownloadCategory, nil, id)
	return err
}
