package postgres

import (
	"context"
	"fmt"

	"stravigo-website-backend/internal/domain"

	"github.com/georgysavva/scany/v2/pgxscan"
)

type careerRepo struct {
	db Querier
}

// NewCareerRepository reads openings and internships. It must be handed the
// restricted-role pool so the public visibility rules apply to the existence
// check exactly as they do to the listings.
func NewCareerRepository(db Querier) domain.CareerRepository {
	return &careerRepo{db: db}
}

func (r *careerRepo) GetActiveOpening(ctx context.Context, id string) (*domain.JobOpening, error) {
	query := `SELECT id, role_title, business_division, team, work_type, location, description, is_active, created_at
              FROM job_openings WHERE id = $1 AND is_active = true`

	var opening domain.JobOpening
	err := r.db.QueryRow(ctx, query, id).Scan(
		&opening.ID, &opening.RoleTitle, &opening.BusinessDivision, &opening.Team,
		&opening.WorkType, &opening.Location, &opening.Description, &opening.IsActive, &opening.CreatedAt,
	)
	if err != nil {
		return nil, mapReadError("get job opening", err)
	}
	return &opening, nil
}

func (r *careerRepo) FetchActiveOpenings(ctx context.Context) ([]domain.JobOpening, error) {
	query := `SELECT id, role_title, business_division, team, work_type, location, description, is_active, created_at
              FROM job_openings WHERE is_active = true ORDER BY created_at DESC`

	var openings []domain.JobOpening
	if err := pgxscan.Select(ctx, r.db, &openings, query); err != nil {
		return nil, fmt.Errorf("fetch job openings: %w", err)
	}
	return openings, nil
}

func (r *careerRepo) FetchActiveInternships(ctx context.Context) ([]domain.Internship, error) {
	query := `SELECT id, role_title, team, location, duration, description, is_active, created_at
              FROM internships WHERE is_active = true ORDER BY created_at DESC`

	var internships []domain.Internship
	if err := pgxscan.Select(ctx, r.db, &internships, query); err != nil {
		return nil, fmt.Errorf("fetch internships: %w", err)
	}
	return internships, nil
}
