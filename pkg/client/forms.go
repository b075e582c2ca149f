package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// checkRequest applies the validate tags of a form payload
func checkRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

// EnquiryRequest is the payload of the apply-now and enquiry forms
type EnquiryRequest struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,numeric,len=10"`
	Email       string `json:"email" validate:"required,email"`
	City        string `json:"city" validate:"required"`
	Course      string `json:"course" validate:"required"`
	Source      string `json:"source,omitempty"`
	Message     string `json:"message,omitempty"`
}

// ContactRequest is the payload of the contact form
type ContactRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Name      string `json:"name"`
	Email     string `json:"email" validate:"required,email"`
	Subject   string `json:"subject"`
	Message   string `json:"message" validate:"required"`
}

// JobApplicationRequest is the payload of a job application
type JobApplicationRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	CoverLetter string `json:"coverLetter"`
	ResumeURL   string `json:"resumeUrl" validate:"omitempty,url"`
}

// SubmitEnquiry forwards an enquiry. A reply with success=false is
// returned as an Ack, not an error.
func (c *Client) SubmitEnquiry(ctx context.Context, req EnquiryRequest) (*Ack, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	return submit(ctx, c, SubmitEnquiry, req)
}

func (c *Client) SubmitContact(ctx context.Context, req ContactRequest) (*Ack, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	return submit(ctx, c, AddContact, req)
}

func (c *Client) SubmitCounseling(ctx context.Context, req any) (*Ack, error) {
	return submit(ctx, c, SubmitCounselingRequest, req)
}

func (c *Client) SubmitApplication(ctx context.Context, req any) (*Ack, error) {
	return submit(ctx, c, SubmitApplication, req)
}

// SubmitJobApplication applies to the career post careerID
func (c *Client) SubmitJobApplication(ctx context.Context, careerID string, req JobApplicationRequest) (*Ack, error) {
	if careerID == "" {
		return nil, ErrCareerIDRequired
	}
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	return submit(ctx, c, SubmitJobApplication, req, careerID)
}

func (c *Client) CreatePayment(ctx context.Context, req any) (*Ack, error) {
	return submit(ctx, c, CreatePayment, req)
}

func (c *Client) VerifyPayment(ctx context.Context, req any) (*Ack, error) {
	return submit(ctx, c, VerifyPayment, req)
}

// Health returns the backend health document
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	body, err := c.call(ctx, HealthCheck, nil)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &MalformedResponseError{Endpoint: HealthCheck.Name, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return doc, nil
}
