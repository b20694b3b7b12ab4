package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"stravigo-website-backend/internal/domain"
	"stravigo-website-backend/pkg/apperror"
	"stravigo-website-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type leadUsecase struct {
	submissions domain.SubmissionRepository
	careers     domain.CareerRepository
	notifier    domain.Notifier
	validate    *validator.Validate
}

// NewLeadUsecase wires the lead submission pipeline. Submissions write
// through the privileged repository; the job-opening existence check and the
// career listings read through the restricted one.
func NewLeadUsecase(
	submissions domain.SubmissionRepository,
	careers domain.CareerRepository,
	notifier domain.Notifier,
	validate *validator.Validate,
) domain.LeadUsecase {
	return &leadUsecase{
		submissions: submissions,
		careers:     careers,
		notifier:    notifier,
		validate:    validate,
	}
}

// SubmitContact validates and persists a contact-form lead. A duplicate
// submission inside the dedup window is reported as success: the visitor
// already reached us, re-surfacing that as an error would only make them
// retry harder.
func (uc *leadUsecase) SubmitContact(ctx context.Context, input *domain.ContactInput) (*domain.Lead, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest("Full name and email are required")
	}

	lead := &domain.Lead{
		ID:              uuid.NewString(),
		FullName:        input.FullName,
		Email:           input.Email,
		PhoneNumber:     toPtr(input.PhoneNumber),
		Company:         toPtr(input.Company),
		Title:           toPtr(input.Title),
		PageSource:      orDefault(input.PageSource, domain.DefaultPageSource),
		ServiceInterest: orDefault(input.ServiceInterest, domain.DefaultServiceInterest),
		Message:         toPtr(input.Message),
		Status:          domain.LeadStatusNew,
		Source:          domain.LeadSourceWebsite,
		CreatedAt:       time.Now().UTC(),
	}

	stored, err := uc.submissions.CreateLead(ctx, lead)
	if err != nil {
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.New(http.StatusInternalServerError, "Failed to save contact form. Please try again.", err)
		}
		// Tolerated duplicate: the record is already durable, answer as if
		// this insert had succeeded.
		logger.Log.Info("duplicate lead submission tolerated", "email", lead.Email)
		stored = lead
	}

	uc.dispatch(func(ctx context.Context) {
		if err := uc.notifier.SendContactConfirmation(ctx, stored.Email, stored.FullName); err != nil {
			logger.Log.Warn("contact confirmation email failed", "email", stored.Email, "error", err)
		}
		if err := uc.notifier.SendLeadAlert(ctx, stored); err != nil {
			logger.Log.Warn("lead alert email failed", "lead_id", stored.ID, "error", err)
		}
	})

	return stored, nil
}

// SubmitResourceAccess validates and persists a gated-resource request, then
// mails the requested material. Duplicates are tolerated the same way as for
// contact submissions.
func (uc *leadUsecase) SubmitResourceAccess(ctx context.Context, input *domain.ResourceAccessInput) (*domain.ResourceAccessRequest, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest("Full name, email, and resource type are required")
	}

	req := &domain.ResourceAccessRequest{
		ID:           uuid.NewString(),
		ResourceType: input.ResourceType,
		FullName:     input.FullName,
		Email:        input.Email,
		PhoneNumber:  toPtr(input.PhoneNumber),
		Company:      toPtr(input.Company),
		Title:        toPtr(input.Title),
		CreatedAt:    time.Now().UTC(),
	}

	stored, err := uc.submissions.CreateResourceAccess(ctx, req)
	if err != nil {
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.New(http.StatusInternalServerError, "Failed to save resource access. Please try again.", err)
		}
		logger.Log.Info("duplicate resource access tolerated", "email", req.Email)
		stored = req
	}

	uc.dispatch(func(ctx context.Context) {
		if err := uc.notifier.SendResourceAccess(ctx, stored.Email, stored.FullName, stored.ResourceType); err != nil {
			logger.Log.Warn("resource access email failed", "email", stored.Email, "error", err)
		}
	})

	return stored, nil
}

// SubmitJobApplication checks the referenced opening under the restricted
// access mode, so an inactive or policy-hidden opening is indistinguishable
// from a nonexistent one. Unlike the other submission paths, a duplicate
// write here is a real failure: a second application for the same opening is
// something the applicant should learn about.
func (uc *leadUsecase) SubmitJobApplication(ctx context.Context, input *domain.JobApplicationInput) (*domain.JobApplication, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest("Job opening ID, full name, and email are required")
	}

	opening, err := uc.careers.GetActiveOpening(ctx, input.JobOpeningID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job opening not found or closed")
		}
		return nil, apperror.New(http.StatusInternalServerError, "Failed to submit application. Please try again.", err)
	}

	app := &domain.JobApplication{
		ID:           uuid.NewString(),
		JobOpeningID: opening.ID,
		FullName:     input.FullName,
		Email:        input.Email,
		PhoneNumber:  toPtr(input.PhoneNumber),
		CvURL:        toPtr(input.CvURL),
		Answers:      serializeAnswers(input.Answers),
		Status:       domain.ApplicationStatusSubmitted,
		CreatedAt:    time.Now().UTC(),
	}

	stored, err := uc.submissions.CreateJobApplication(ctx, app)
	if err != nil {
		// Duplicate or not, the write failed and the caller sees it.
		return nil, apperror.New(http.StatusInternalServerError, "Failed to submit application. Please try again.", err)
	}

	uc.dispatch(func(ctx context.Context) {
		if err := uc.notifier.SendApplicationConfirmation(ctx, stored.Email, stored.FullName, opening.RoleTitle); err != nil {
			logger.Log.Warn("application confirmation email failed", "email", stored.Email, "error", err)
		}
	})

	return stored, nil
}

// GetJobOpenings lists active openings, newest first.
func (uc *leadUsecase) GetJobOpenings(ctx context.Context) ([]domain.JobOpening, error) {
	openings, err := uc.careers.FetchActiveOpenings(ctx)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch job openings", err)
	}
	return openings, nil
}

// GetInternships lists active internships, newest first.
func (uc *leadUsecase) GetInternships(ctx context.Context) ([]domain.Internship, error) {
	internships, err := uc.careers.FetchActiveInternships(ctx)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch internships", err)
	}
	return internships, nil
}

// dispatch hands a notification attempt to a background task. The response
// to the visitor is already decided once the write settled; a slow or broken
// mail transport must not hold the request open or flip its outcome.
func (uc *leadUsecase) dispatch(fn func(ctx context.Context)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		fn(ctx)
	}()
}

func serializeAnswers(raw []byte) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	s := string(raw)
	return &s
}

func toPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
