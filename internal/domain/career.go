package domain

import (
	"context"
	"time"
)

// JobOpening is a public vacancy. Only active openings are ever listed or
// referenceable from an application.
type JobOpening struct {
	ID               string    `json:"id" db:"id"`
	RoleTitle        string    `json:"role_title" db:"role_title"`
	BusinessDivision string    `json:"business_division" db:"business_division"`
	Team             string    `json:"team" db:"team"`
	WorkType         string    `json:"work_type" db:"work_type"`
	Location         string    `json:"location" db:"location"`
	Description      string    `json:"description" db:"description"`
	IsActive         bool      `json:"is_active" db:"is_active"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// Internship is a public internship listing.
type Internship struct {
	ID          string    `json:"id" db:"id"`
	RoleTitle   string    `json:"role_title" db:"role_title"`
	Team        string    `json:"team" db:"team"`
	Location    string    `json:"location" db:"location"`
	Duration    *string   `json:"duration" db:"duration"`
	Description string    `json:"description" db:"description"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CareerRepository reads openings and internships under the restricted
// access mode, so the same row-level visibility applies as for the public
// listings. GetActiveOpening returns ErrNotFound for an inactive opening just
// as for a nonexistent one.
type CareerRepository interface {
	GetActiveOpening(ctx context.Context, id string) (*JobOpening, error)
	FetchActiveOpenings(ctx context.Context) ([]JobOpening, error)
	FetchActiveInternships(ctx context.Context) ([]Internship, error)
}
