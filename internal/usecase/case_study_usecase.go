package usecase

import (
	"context"
	"errors"
	"net/http"

	"stravigo-website-backend/internal/domain"
	"stravigo-website-backend/pkg/apperror"
)

const (
	defaultListLimit = 12
	maxListLimit     = 100
)

type caseStudyUsecase struct {
	repo domain.CaseStudyRepository
}

// NewCaseStudyUsecase serves the public case-study listings.
func NewCaseStudyUsecase(repo domain.CaseStudyRepository) domain.CaseStudyUsecase {
	return &caseStudyUsecase{repo: repo}
}

func (uc *caseStudyUsecase) List(ctx context.Context, filter domain.CaseStudyFilter) ([]domain.CaseStudy, int64, error) {
	filter.Page, filter.Limit = normalizePagination(filter.Page, filter.Limit)

	studies, total, err := uc.repo.Fetch(ctx, filter)
	if err != nil {
		return nil, 0, apperror.New(http.StatusInternalServerError, "Failed to fetch case studies", err)
	}
	return studies, total, nil
}

func (uc *caseStudyUsecase) Featured(ctx context.Context, limit int) ([]domain.CaseStudy, error) {
	if limit < 1 {
		limit = 3
	}
	studies, err := uc.repo.FetchFeatured(ctx, limit)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch featured case studies", err)
	}
	return studies, nil
}

func (uc *caseStudyUsecase) Sectors(ctx context.Context) ([]string, error) {
	sectors, err := uc.repo.FetchSectors(ctx)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch sectors", err)
	}
	return sectors, nil
}

func (uc *caseStudyUsecase) Get(ctx context.Context, slug string) (*domain.CaseStudyDetail, error) {
	study, err := uc.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Case study not found")
		}
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch case study", err)
	}
	return study, nil
}

// normalizePagination clamps caller-supplied paging to sane bounds.
func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return page, limit
}
