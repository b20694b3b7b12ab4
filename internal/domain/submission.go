package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Lead lifecycle and defaults applied by the submission pipeline.
const (
	LeadStatusNew          = "new"
	LeadSourceWebsite      = "website"
	DefaultPageSource      = "contact-form"
	DefaultServiceInterest = "general"

	ApplicationStatusSubmitted = "submitted"
)

// Resource categories a visitor can request access to.
const (
	ResourceTypeBusiness      = "business"
	ResourceTypeIndividuals   = "individuals"
	ResourceTypeEntertainment = "entertainment"
)

// Lead is a persisted contact-form submission. The ID is always generated
// server-side; it is never trusted from the caller.
type Lead struct {
	ID              string    `json:"id" db:"id"`
	FullName        string    `json:"full_name" db:"full_name"`
	Email           string    `json:"email" db:"email"`
	PhoneNumber     *string   `json:"phone_number" db:"phone_number"`
	Company         *string   `json:"company" db:"company"`
	Title           *string   `json:"title" db:"title"`
	PageSource      string    `json:"page_source" db:"page_source"`
	ServiceInterest string    `json:"service_interest" db:"service_interest"`
	Message         *string   `json:"message" db:"message"`
	Status          string    `json:"status" db:"status"`
	Source          string    `json:"source" db:"source"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// ResourceAccessRequest records a gated-resource download request.
type ResourceAccessRequest struct {
	ID           string    `json:"id" db:"id"`
	ResourceType string    `json:"resource_type" db:"resource_type"`
	FullName     string    `json:"full_name" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	PhoneNumber  *string   `json:"phone_number" db:"phone_number"`
	Company      *string   `json:"company" db:"company"`
	Title        *string   `json:"title" db:"title"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// JobApplication is a submission against an active job opening. Answers holds
// the applicant's free-form questionnaire responses as an opaque JSON blob,
// nil when none were supplied.
type JobApplication struct {
	ID           string    `json:"id" db:"id"`
	JobOpeningID string    `json:"job_opening_id" db:"job_opening_id"`
	FullName     string    `json:"full_name" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	PhoneNumber  *string   `json:"phone_number" db:"phone_number"`
	CvURL        *string   `json:"cv_url" db:"cv_url"`
	Answers      *string   `json:"answers" db:"answers"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ContactInput is the caller-supplied payload for a contact submission.
type ContactInput struct {
	FullName        string `json:"full_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	PhoneNumber     string `json:"phone_number"`
	Company         string `json:"company"`
	Title           string `json:"title"`
	PageSource      string `json:"page_source"`
	ServiceInterest string `json:"service_interest"`
	Message         string `json:"message"`
}

// ResourceAccessInput is the caller-supplied payload for a resource request.
type ResourceAccessInput struct {
	ResourceType string `json:"resource_type" validate:"required"`
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PhoneNumber  string `json:"phone_number"`
	Company      string `json:"company"`
	Title        string `json:"title"`
}

// JobApplicationInput is the caller-supplied payload for a job application.
type JobApplicationInput struct {
	JobOpeningID string          `json:"job_opening_id" validate:"required"`
	FullName     string          `json:"full_name" validate:"required"`
	Email        string          `json:"email" validate:"required,email"`
	PhoneNumber  string          `json:"phone_number"`
	CvURL        string          `json:"cv_url"`
	Answers      json.RawMessage `json:"answers"`
}

// SubmissionRepository performs the privileged writes of the lead pipeline.
// Implementations must run on the service-role connection: anonymous visitors
// hold no direct insert grant on these tables.
type SubmissionRepository interface {
	CreateLead(ctx context.Context, lead *Lead) (*Lead, error)
	CreateResourceAccess(ctx context.Context, req *ResourceAccessRequest) (*ResourceAccessRequest, error)
	CreateJobApplication(ctx context.Context, app *JobApplication) (*JobApplication, error)
}

// LeadUsecase is the lead submission pipeline plus its read-only career
// listings.
type LeadUsecase interface {
	SubmitContact(ctx context.Context, input *ContactInput) (*Lead, error)
	SubmitResourceAccess(ctx context.Context, input *ResourceAccessInput) (*ResourceAccessRequest, error)
	SubmitJobApplication(ctx context.Context, input *JobApplicationInput) (*JobApplication, error)
	GetJobOpenings(ctx context.Context) ([]JobOpening, error)
	GetInternships(ctx context.Context) ([]Internship, error)
}
