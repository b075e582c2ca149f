package views

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/inframe/campus-portal/internal/models"
	"github.com/inframe/campus-portal/internal/storage"
	"github.com/inframe/campus-portal/internal/viewmodel"
	"github.com/inframe/campus-portal/pkg/client"
)

const (
	// ThankYouPath is where a successful enquiry redirects
	ThankYouPath = "/thank-you"

	// RedirectDelay is how long the success message shows before redirecting
	RedirectDelay = 2 * time.Second
)

const (
	msgEnquirySuccess  = "Thank you! Your application has been submitted successfully."
	msgEnquiryRejected = "Failed to submit the form. Please try again later."
	msgContactSuccess  = "Message sent successfully! We'll get back to you soon."
	msgContactFailed   = "Failed to submit contact form. Please try again."
	msgJobSuccess      = "Your job application has been submitted successfully! We will review your application and get back to you soon."
	msgJobFailed       = "There was an error submitting your application. Please try again."
	msgJobNoPosition   = "Please select a job to apply for."
	msgInvalidForm     = "Please check your form data and try again."
)

// Outcome is the result of a form submission as shown to the visitor
type Outcome struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	RedirectTo    string            `json:"redirectTo,omitempty"`
	RedirectAfter time.Duration     `json:"-"`
	ClearForm     bool              `json:"clearForm"`
	Errors        map[string]string `json:"errors,omitempty"`
}

// MarshalJSON reports RedirectAfter in milliseconds
func (o Outcome) MarshalJSON() ([]byte, error) {
	type plain Outcome
	return json.Marshal(struct {
		plain
		RedirectAfterMs int64 `json:"redirectAfterMs,omitempty"`
	}{plain(o), o.RedirectAfter.Milliseconds()})
}

// Invalid reports whether the submission was rejected before being sent
func (o Outcome) Invalid() bool {
	return len(o.Errors) > 0
}

// EnquiryForm is the "apply now" form
type EnquiryForm struct {
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,number"`
	State       string `json:"state" validate:"required"`
	City        string `json:"city" validate:"required"`
	Level       string `json:"level" validate:"required"`
	Program     string `json:"program" validate:"required"`
}

func (f EnquiryForm) request() client.EnquiryRequest {
	return client.EnquiryRequest{
		Name:        f.Name,
		PhoneNumber: f.PhoneNumber,
		Email:       f.Email,
		City:        f.City,
		Course:      f.Program,
		Source:      "apply-now-form",
		Message:     fmt.Sprintf("State: %s, Level: %s", f.State, f.Level),
	}
}

// ContactForm is the contact-us form
type ContactForm struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Message   string `json:"message" validate:"required"`
}

func (f ContactForm) request() client.ContactRequest {
	return client.ContactRequest{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Message:   f.Message,
		Name:      f.FirstName + " " + f.LastName,
		Subject:   "Contact Form Submission",
	}
}

// JobApplicationForm is the careers form
type JobApplicationForm struct {
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=10"`
	CoverLetter string `json:"coverLetter"`
	ResumeURL   string `json:"resumeUrl" validate:"omitempty,url"`
}

func (f JobApplicationForm) request() client.JobApplicationRequest {
	return client.JobApplicationRequest{
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		CoverLetter: f.CoverLetter,
		ResumeURL:   f.ResumeURL,
	}
}

var fieldMessages = map[string]string{
	"name":        "Name must be at least 2 characters",
	"email":       "Invalid email address",
	"phoneNumber": "Phone number must be 10 digits",
	"phone":       "Phone number must be at least 10 digits",
	"state":       "Please select a state",
	"city":        "Please select a city",
	"level":       "Please select a level",
	"program":     "Please select a program",
	"firstName":   "First name is required",
	"lastName":    "Last name is required",
	"message":     "Message is required",
	"resumeUrl":   "Resume link must be a valid URL",
}

// Forms validates visitor submissions, forwards them to the backend and
// records each forwarded submission
type Forms struct {
	client   *client.Client
	repo     storage.Repository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewForms creates the form handlers. repo may be nil to skip recording.
func NewForms(c *client.Client, repo storage.Repository, logger *slog.Logger) *Forms {
	if logger == nil {
		logger = slog.Default()
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Forms{client: c, repo: repo, validate: v, logger: logger}
}

// SubmitEnquiry sends the apply-now form. Success redirects to the thank
// you page after RedirectDelay.
func (f *Forms) SubmitEnquiry(ctx context.Context, form EnquiryForm) Outcome {
	if out, ok := f.check(form); !ok {
		return out
	}

	req := form.request()
	ack, err := f.client.SubmitEnquiry(ctx, req)
	f.record(ctx, models.SubmissionEnquiry, req, ack, err)

	switch {
	case err != nil:
		f.logger.Error("failed to submit enquiry", "error", err)
		return Outcome{Message: viewmodel.EnquiryFailureMessage(err)}
	case !ack.Success:
		return Outcome{Message: msgEnquiryRejected}
	}

	return Outcome{
		Success:       true,
		Message:       msgEnquirySuccess,
		RedirectTo:    ThankYouPath,
		RedirectAfter: RedirectDelay,
		ClearForm:     true,
	}
}

// SubmitContact sends the contact form
func (f *Forms) SubmitContact(ctx context.Context, form ContactForm) Outcome {
	if out, ok := f.check(form); !ok {
		return out
	}

	req := form.request()
	ack, err := f.client.SubmitContact(ctx, req)
	f.record(ctx, models.SubmissionContact, req, ack, err)

	if err != nil {
		f.logger.Error("failed to submit contact form", "error", err)
		return Outcome{Message: msgContactFailed}
	}
	if !ack.Success {
		return Outcome{Message: nonEmpty(ack.Message, msgContactFailed)}
	}
	return Outcome{Success: true, Message: msgContactSuccess, ClearForm: true}
}

// SubmitJobApplication applies to the career post careerID
func (f *Forms) SubmitJobApplication(ctx context.Context, careerID string, form JobApplicationForm) Outcome {
	if careerID == "" {
		return Outcome{Message: msgJobNoPosition}
	}
	if out, ok := f.check(form); !ok {
		return out
	}

	req := form.request()
	ack, err := f.client.SubmitJobApplication(ctx, careerID, req)
	f.record(ctx, models.SubmissionJobApplication, struct {
		CareerID string `json:"careerId"`
		client.JobApplicationRequest
	}{careerID, req}, ack, err)

	if err != nil {
		f.logger.Error("failed to submit job application", "career_id", careerID, "error", err)
		return Outcome{Message: msgJobFailed}
	}
	if !ack.Success {
		return Outcome{Message: nonEmpty(ack.Message, msgJobFailed)}
	}
	return Outcome{Success: true, Message: msgJobSuccess, ClearForm: true}
}

func (f *Forms) check(form any) (Outcome, bool) {
	err := f.validate.Struct(form)
	if err == nil {
		return Outcome{}, true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		f.logger.Error("form validation failed", "error", err)
		return Outcome{Message: msgInvalidForm, Errors: map[string]string{"form": err.Error()}}, false
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		fields[fe.Field()] = msg
	}
	f.logger.Warn("validation failed", "fields", len(fields))
	return Outcome{Message: msgInvalidForm, Errors: fields}, false
}

func (f *Forms) record(ctx context.Context, kind models.SubmissionKind, payload any, ack *client.Ack, callErr error) {
	if f.repo == nil {
		return
	}

	s, err := models.NewSubmission(kind, payload)
	if err != nil {
		f.logger.Warn("failed to encode submission", "kind", kind, "error", err)
		return
	}

	switch {
	case callErr != nil:
		s.StatusCode = client.StatusCode(callErr)
		s.Message = callErr.Error()
	case ack != nil:
		s.Success = ack.Success
		s.StatusCode = ack.StatusCode
		s.Message = ack.Message
	}

	// best effort, and it outlives the request
	if err := f.repo.CreateSubmission(context.WithoutCancel(ctx), s); err != nil {
		f.logger.Warn("failed to record submission", "kind", kind, "id", s.ID, "error", err)
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
