package client

import (
	"context"
	"fmt"
)

// ValidEnquiryStatus reports whether s is a status the backend accepts
func ValidEnquiryStatus(s string) bool {
	switch s {
	case EnquiryNew, EnquiryContacted, EnquiryEnrolled, EnquiryNotInterested:
		return true
	}
	return false
}

func (c *Client) ListEnquiries(ctx context.Context) ([]Enquiry, error) {
	return list[Enquiry](ctx, c, GetEnquiries)
}

func (c *Client) GetEnquiry(ctx context.Context, id string) (*Enquiry, error) {
	return one[Enquiry](ctx, c, GetEnquiryByID, id)
}

// UpdateEnquiryStatus moves an enquiry to status; notes are optional
func (c *Client) UpdateEnquiryStatus(ctx context.Context, id, status, notes string) (*Enquiry, error) {
	if !ValidEnquiryStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	req := struct {
		Status string `json:"status"`
		Notes  string `json:"notes,omitempty"`
	}{status, notes}

	return mutateOne[Enquiry](ctx, c, UpdateEnquiryStatus, req, id)
}

func (c *Client) DeleteEnquiry(ctx context.Context, id string) error {
	_, err := mutate[struct{}](ctx, c, DeleteEnquiry, nil, id)
	return err
}

// EnquiryStats returns the per-status counters. Unlike list reads an
// unexpected reply is an error.
func (c *Client) EnquiryStats(ctx context.Context) (*EnquiryStats, error) {
	body, err := c.call(ctx, GetEnquiryStats, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[EnquiryStats](GetEnquiryStats.Name, body)
}
