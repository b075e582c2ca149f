package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SubmissionKind identifies the form a submission came from
type SubmissionKind string

const (
	SubmissionEnquiry        SubmissionKind = "enquiry"
	SubmissionContact        SubmissionKind = "contact"
	SubmissionJobApplication SubmissionKind = "job-application"
)

// Valid reports whether k is a known kind
func (k SubmissionKind) Valid() bool {
	switch k {
	case SubmissionEnquiry, SubmissionContact, SubmissionJobApplication:
		return true
	}
	return false
}

// Submission is one form post forwarded to the backend together with the
// outcome the visitor saw
type Submission struct {
	ID         uuid.UUID       `json:"id"`
	Kind       SubmissionKind  `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
	Success    bool            `json:"success"`
	StatusCode int             `json:"status_code,omitempty"`
	Message    string          `json:"message,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewSubmission stamps a submission with a fresh id and creation time
func NewSubmission(kind SubmissionKind, payload any) (*Submission, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Submission{
		ID:        uuid.New(),
		Kind:      kind,
		Payload:   raw,
		CreatedAt: time.Now().UTC(),
	}, nil
}
