package postgres

import (
	"context"
	"testing"
	"time"

	"stravigo-website-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func sampleLead() *domain.Lead {
	return &domain.Lead{
		ID:              "6f1b2a3c-0000-0000-0000-000000000001",
		FullName:        "Jane Doe",
		Email:           "jane@acme.com",
		PageSource:      domain.DefaultPageSource,
		ServiceInterest: domain.DefaultServiceInterest,
		Status:          domain.LeadStatusNew,
		Source:          domain.LeadSourceWebsite,
		CreatedAt:       time.Now().UTC(),
	}
}

func TestSubmissionRepo_CreateLead(t *testing.T) {
	t.Run("returns the stored row", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewSubmissionRepository(mock)
		lead := sampleLead()

		rows := pgxmock.NewRows([]string{
			"id", "full_name", "email", "phone_number", "company", "title",
			"page_source", "service_interest", "message", "status", "source", "created_at",
		}).AddRow(
			lead.ID, lead.FullName, lead.Email, nil, nil, nil,
			lead.PageSource, lead.ServiceInterest, nil, lead.Status, lead.Source, lead.CreatedAt,
		)
		mock.ExpectQuery(`INSERT INTO leads`).
			WithArgs(lead.ID, lead.FullName, lead.Email, lead.PhoneNumber, lead.Company, lead.Title,
				lead.PageSource, lead.ServiceInterest, lead.Message, lead.Status, lead.Source, lead.CreatedAt).
			WillReturnRows(rows)

		stored, err := repo.CreateLead(context.Background(), lead)
		require.NoError(t, err)
		assert.Equal(t, lead.ID, stored.ID)
		assert.Equal(t, domain.LeadStatusNew, stored.Status)
		assert.Nil(t, stored.PhoneNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps a unique violation to ErrDuplicate", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewSubmissionRepository(mock)

		mock.ExpectQuery(`INSERT INTO leads`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "leads_email_created_key"})

		_, err := repo.CreateLead(context.Background(), sampleLead())
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("keeps other failures as plain errors", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewSubmissionRepository(mock)

		mock.ExpectQuery(`INSERT INTO leads`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "42P01", Message: "relation does not exist"})

		_, err := repo.CreateLead(context.Background(), sampleLead())
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrDuplicate)
	})
}

func TestSubmissionRepo_CreateJobApplication(t *testing.T) {
	t.Run("maps a unique violation to ErrDuplicate", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewSubmissionRepository(mock)

		mock.ExpectQuery(`INSERT INTO job_applications`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "job_applications_opening_email_key"})

		app := &domain.JobApplication{
			ID:           "6f1b2a3c-0000-0000-0000-000000000002",
			JobOpeningID: "job-1",
			FullName:     "Jane Doe",
			Email:        "jane@acme.com",
			Status:       domain.ApplicationStatusSubmitted,
			CreatedAt:    time.Now().UTC(),
		}
		_, err := repo.CreateJobApplication(context.Background(), app)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("round-trips the answers blob", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewSubmissionRepository(mock)

		answers := `{"start_date":"2026-09-01"}`
		now := time.Now().UTC()
		app := &domain.JobApplication{
			ID:           "6f1b2a3c-0000-0000-0000-000000000003",
			JobOpeningID: "job-1",
			FullName:     "Jane Doe",
			Email:        "jane@acme.com",
			Answers:      &answers,
			Status:       domain.ApplicationStatusSubmitted,
			CreatedAt:    now,
		}

		rows := pgxmock.NewRows([]string{
			"id", "job_opening_id", "full_name", "email", "phone_number", "cv_url", "answers", "status", "created_at",
		}).AddRow(app.ID, app.JobOpeningID, app.FullName, app.Email, nil, nil, &answers, app.Status, now)
		mock.ExpectQuery(`INSERT INTO job_applications`).
			WithArgs(app.ID, app.JobOpeningID, app.FullName, app.Email, app.PhoneNumber,
				app.CvURL, app.Answers, app.Status, app.CreatedAt).
			WillReturnRows(rows)

		stored, err := repo.CreateJobApplication(context.Background(), app)
		require.NoError(t, err)
		require.NotNil(t, stored.Answers)
		assert.Equal(t, answers, *stored.Answers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
