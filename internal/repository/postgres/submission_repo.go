package postgres

import (
	"context"

	"stravigo-website-backend/internal/domain"
)

type submissionRepo struct {
	db Querier
}

// NewSubmissionRepository creates the write side of the lead pipeline. The
// Querier passed in must be the service-role pool: these tables carry no
// insert grant for the anon role, the server writes on the visitor's behalf.
func NewSubmissionRepository(db Querier) domain.SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) CreateLead(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	query := `INSERT INTO leads (id, full_name, email, phone_number, company, title, page_source, service_interest, message, status, source, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
              RETURNING id, full_name, email, phone_number, company, title, page_source, service_interest, message, status, source, created_at`

	var stored domain.Lead
	err := r.db.QueryRow(ctx, query,
		lead.ID, lead.FullName, lead.Email, lead.PhoneNumber, lead.Company, lead.Title,
		lead.PageSource, lead.ServiceInterest, lead.Message, lead.Status, lead.Source, lead.CreatedAt,
	).Scan(
		&stored.ID, &stored.FullName, &stored.Email, &stored.PhoneNumber, &stored.Company, &stored.Title,
		&stored.PageSource, &stored.ServiceInterest, &stored.Message, &stored.Status, &stored.Source, &stored.CreatedAt,
	)
	if err != nil {
		return nil, mapWriteError("insert lead", err)
	}
	return &stored, nil
}

func (r *submissionRepo) CreateResourceAccess(ctx context.Context, req *domain.ResourceAccessRequest) (*domain.ResourceAccessRequest, error) {
	query := `INSERT INTO resource_access (id, resource_type, full_name, email, phone_number, company, title, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
              RETURNING id, resource_type, full_name, email, phone_number, company, title, created_at`

	var stored domain.ResourceAccessRequest
	err := r.db.QueryRow(ctx, query,
		req.ID, req.ResourceType, req.FullName, req.Email, req.PhoneNumber, req.Company, req.Title, req.CreatedAt,
	).Scan(
		&stored.ID, &stored.ResourceType, &stored.FullName, &stored.Email, &stored.PhoneNumber, &stored.Company, &stored.Title, &stored.CreatedAt,
	)
	if err != nil {
		return nil, mapWriteError("insert resource access", err)
	}
	return &stored, nil
}

func (r *submissionRepo) CreateJobApplication(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	query := `INSERT INTO job_applications (id, job_opening_id, full_name, email, phone_number, cv_url, answers, status, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
              RETURNING id, job_opening_id, full_name, email, phone_number, cv_url, answers, status, created_at`

	var stored domain.JobApplication
	err := r.db.QueryRow(ctx, query,
		app.ID, app.JobOpeningID, app.FullName, app.Email, app.PhoneNumber, app.CvURL, app.Answers, app.Status, app.CreatedAt,
	).Scan(
		&stored.ID, &stored.JobOpeningID, &stored.FullName, &stored.Email, &stored.PhoneNumber, &stored.CvURL, &stored.Answers, &stored.Status, &stored.CreatedAt,
	)
	if err != nil {
		return nil, mapWriteError("insert job application", err)
	}
	return &stored, nil
}
