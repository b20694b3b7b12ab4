package usecase

import (
	"context"
	"errors"
	"net/http"

	"stravigo-website-backend/internal/domain"
	"stravigo-website-backend/pkg/apperror"
)

const relatedInsightLimit = 3

type insightUsecase struct {
	repo domain.InsightRepository
}

// NewInsightUsecase serves the public insights listings.
func NewInsightUsecase(repo domain.InsightRepository) domain.InsightUsecase {
	return &insightUsecase{repo: repo}
}

func (uc *insightUsecase) List(ctx context.Context, filter domain.InsightFilter) ([]domain.Insight, int64, error) {
	filter.Page, filter.Limit = normalizePagination(filter.Page, filter.Limit)

	insights, total, err := uc.repo.Fetch(ctx, filter)
	if err != nil {
		return nil, 0, apperror.New(http.StatusInternalServerError, "Failed to fetch insights", err)
	}
	return insights, total, nil
}

func (uc *insightUsecase) Latest(ctx context.Context, limit int) ([]domain.Insight, error) {
	if limit < 1 {
		limit = 3
	}
	insights, err := uc.repo.FetchLatest(ctx, limit)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch latest insights", err)
	}
	return insights, nil
}

func (uc *insightUsecase) Featured(ctx context.Context, limit int) ([]domain.Insight, error) {
	if limit < 1 {
		limit = 6
	}
	insights, err := uc.repo.FetchFeatured(ctx, limit)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch featured insights", err)
	}
	return insights, nil
}

func (uc *insightUsecase) Categories(ctx context.Context) ([]string, error) {
	categories, err := uc.repo.FetchCategories(ctx)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch categories", err)
	}
	return categories, nil
}

// Get returns an insight with up to three related articles from the same
// category. A failure loading related articles does not sink the detail
// view.
func (uc *insightUsecase) Get(ctx context.Context, slug string) (*domain.InsightDetail, error) {
	insight, err := uc.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Insight not found")
		}
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch insight", err)
	}

	var related []domain.Insight
	if insight.Category != nil {
		related, err = uc.repo.FetchRelated(ctx, *insight.Category, insight.ID, relatedInsightLimit)
		if err != nil {
			return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch insight", err)
		}
	}

	return &domain.InsightDetail{Insight: *insight, Related: related}, nil
}
