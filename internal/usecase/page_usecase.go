package usecase

import (
	"context"
	"errors"
	"net/http"

	"stravigo-website-backend/internal/domain"
	"stravigo-website-backend/pkg/apperror"
)

const (
	homepageCaseStudyLimit   = 3
	homepageTestimonialLimit = 9
	servicePageWorkLimit     = 3
)

type pageUsecase struct {
	pages       domain.PageRepository
	caseStudies domain.CaseStudyRepository
}

// NewPageUsecase serves CMS pages and the aggregated homepage / service
// pages from the restricted read path.
func NewPageUsecase(pages domain.PageRepository, caseStudies domain.CaseStudyRepository) domain.PageUsecase {
	return &pageUsecase{pages: pages, caseStudies: caseStudies}
}

func (uc *pageUsecase) GetPage(ctx context.Context, slug string) (*domain.Page, error) {
	page, err := uc.pages.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Page not found")
		}
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch page", err)
	}
	return page, nil
}

// GetHomepage assembles the landing page. A missing "home" page record is
// not an error: the frontend renders the rest of the blocks without it.
func (uc *pageUsecase) GetHomepage(ctx context.Context) (*domain.Homepage, error) {
	page, err := uc.pages.GetBySlug(ctx, "home")
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch homepage", err)
	}

	featured, err := uc.caseStudies.FetchFeatured(ctx, homepageCaseStudyLimit)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch homepage", err)
	}

	testimonials, err := uc.pages.FetchFeaturedTestimonials(ctx, homepageTestimonialLimit)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch homepage", err)
	}

	services, err := uc.pages.FetchActiveServices(ctx)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch homepage", err)
	}

	return &domain.Homepage{
		Page:                page,
		FeaturedCaseStudies: featured,
		Testimonials:        testimonials,
		Services:            services,
	}, nil
}

func (uc *pageUsecase) GetServicePage(ctx context.Context, serviceType string) (*domain.ServicePage, error) {
	service, err := uc.pages.GetServiceByType(ctx, serviceType)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Service not found")
		}
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch service page", err)
	}

	offerings, err := uc.pages.FetchOfferings(ctx, service.ID)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch service page", err)
	}

	work, err := uc.caseStudies.FetchByServiceType(ctx, serviceType, servicePageWorkLimit)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch service page", err)
	}

	return &domain.ServicePage{
		Service:     *service,
		Offerings:   offerings,
		CaseStudies: work,
	}, nil
}
