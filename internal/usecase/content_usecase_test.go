package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"stravigo-website-backend/internal/domain"
	"stravigo-website-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPageRepo struct {
	mock.Mock
}

func (m *MockPageRepo) GetBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page), args.Error(1)
}

func (m *MockPageRepo) GetServiceByType(ctx context.Context, serviceType string) (*domain.Service, error) {
	args := m.Called(ctx, serviceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockPageRepo) FetchOfferings(ctx context.Context, serviceID string) ([]domain.ServiceOffering, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceOffering), args.Error(1)
}

func (m *MockPageRepo) FetchActiveServices(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockPageRepo) FetchFeaturedTestimonials(ctx context.Context, limit int) ([]domain.Testimonial, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}

type MockCaseStudyRepo struct {
	mock.Mock
}

func (m *MockCaseStudyRepo) Fetch(ctx context.Context, filter domain.CaseStudyFilter) ([]domain.CaseStudy, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.CaseStudy), args.Get(1).(int64), args.Error(2)
}

func (m *MockCaseStudyRepo) FetchFeatured(ctx context.Context, limit int) ([]domain.CaseStudy, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CaseStudy), args.Error(1)
}

func (m *MockCaseStudyRepo) FetchByServiceType(ctx context.Context, serviceType string, limit int) ([]domain.CaseStudy, error) {
	args := m.Called(ctx, serviceType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CaseStudy), args.Error(1)
}

func (m *MockCaseStudyRepo) FetchSectors(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCaseStudyRepo) GetBySlug(ctx context.Context, slug string) (*domain.CaseStudyDetail, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseStudyDetail), args.Error(1)
}

type MockInsightRepo struct {
	mock.Mock
}

func (m *MockInsightRepo) Fetch(ctx context.Context, filter domain.InsightFilter) ([]domain.Insight, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Insight), args.Get(1).(int64), args.Error(2)
}

func (m *MockInsightRepo) FetchLatest(ctx context.Context, limit int) ([]domain.Insight, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Insight), args.Error(1)
}

func (m *MockInsightRepo) FetchFeatured(ctx context.Context, limit int) ([]domain.Insight, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Insight), args.Error(1)
}

func (m *MockInsightRepo) FetchCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockInsightRepo) GetBySlug(ctx context.Context, slug string) (*domain.Insight, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Insight), args.Error(1)
}

func (m *MockInsightRepo) FetchRelated(ctx context.Context, category, excludeID string, limit int) ([]domain.Insight, error) {
	args := m.Called(ctx, category, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Insight), args.Error(1)
}

func TestGetHomepage(t *testing.T) {
	t.Run("assembles all homepage blocks", func(t *testing.T) {
		pages := new(MockPageRepo)
		caseStudies := new(MockCaseStudyRepo)
		uc := usecase.NewPageUsecase(pages, caseStudies)

		pages.On("GetBySlug", mock.Anything, "home").Return(&domain.Page{Slug: "home"}, nil)
		caseStudies.On("FetchFeatured", mock.Anything, 3).Return([]domain.CaseStudy{{ID: "cs-1"}}, nil)
		pages.On("FetchFeaturedTestimonials", mock.Anything, 9).Return([]domain.Testimonial{{ID: "t-1"}}, nil)
		pages.On("FetchActiveServices", mock.Anything).Return([]domain.Service{{ID: "s-1"}}, nil)

		home, err := uc.GetHomepage(context.Background())
		require.NoError(t, err)
		require.NotNil(t, home.Page)
		assert.Len(t, home.FeaturedCaseStudies, 1)
		assert.Len(t, home.Testimonials, 1)
		assert.Len(t, home.Services, 1)
	})

	t.Run("tolerates a missing home page record", func(t *testing.T) {
		pages := new(MockPageRepo)
		caseStudies := new(MockCaseStudyRepo)
		uc := usecase.NewPageUsecase(pages, caseStudies)

		pages.On("GetBySlug", mock.Anything, "home").Return(nil, domain.ErrNotFound)
		caseStudies.On("FetchFeatured", mock.Anything, 3).Return([]domain.CaseStudy{}, nil)
		pages.On("FetchFeaturedTestimonials", mock.Anything, 9).Return([]domain.Testimonial{}, nil)
		pages.On("FetchActiveServices", mock.Anything).Return([]domain.Service{}, nil)

		home, err := uc.GetHomepage(context.Background())
		require.NoError(t, err)
		assert.Nil(t, home.Page)
	})

	t.Run("fails when a block read fails", func(t *testing.T) {
		pages := new(MockPageRepo)
		caseStudies := new(MockCaseStudyRepo)
		uc := usecase.NewPageUsecase(pages, caseStudies)

		pages.On("GetBySlug", mock.Anything, "home").Return(nil, domain.ErrNotFound)
		caseStudies.On("FetchFeatured", mock.Anything, 3).Return(nil, errors.New("connection refused"))

		_, err := uc.GetHomepage(context.Background())
		assert.Equal(t, http.StatusInternalServerError, appErrCode(t, err))
	})
}

func TestGetServicePage(t *testing.T) {
	t.Run("maps an unknown service to 404", func(t *testing.T) {
		pages := new(MockPageRepo)
		uc := usecase.NewPageUsecase(pages, new(MockCaseStudyRepo))

		pages.On("GetServiceByType", mock.Anything, "unknown").Return(nil, domain.ErrNotFound)

		_, err := uc.GetServicePage(context.Background(), "unknown")
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Service not found")
	})

	t.Run("attaches offerings and related work", func(t *testing.T) {
		pages := new(MockPageRepo)
		caseStudies := new(MockCaseStudyRepo)
		uc := usecase.NewPageUsecase(pages, caseStudies)

		pages.On("GetServiceByType", mock.Anything, "advisory").Return(&domain.Service{ID: "s-1", ServiceType: "advisory"}, nil)
		pages.On("FetchOfferings", mock.Anything, "s-1").Return([]domain.ServiceOffering{{ID: "o-1"}}, nil)
		caseStudies.On("FetchByServiceType", mock.Anything, "advisory", 3).Return([]domain.CaseStudy{{ID: "cs-1"}}, nil)

		page, err := uc.GetServicePage(context.Background(), "advisory")
		require.NoError(t, err)
		assert.Len(t, page.Offerings, 1)
		assert.Len(t, page.CaseStudies, 1)
	})
}

func TestCaseStudyList(t *testing.T) {
	t.Run("clamps pagination", func(t *testing.T) {
		repo := new(MockCaseStudyRepo)
		uc := usecase.NewCaseStudyUsecase(repo)

		repo.On("Fetch", mock.Anything, domain.CaseStudyFilter{Page: 1, Limit: 12}).
			Return([]domain.CaseStudy{}, int64(0), nil).Once()
		_, _, err := uc.List(context.Background(), domain.CaseStudyFilter{Page: -3, Limit: 0})
		require.NoError(t, err)

		repo.On("Fetch", mock.Anything, domain.CaseStudyFilter{Page: 2, Limit: 100}).
			Return([]domain.CaseStudy{}, int64(0), nil).Once()
		_, _, err = uc.List(context.Background(), domain.CaseStudyFilter{Page: 2, Limit: 5000})
		require.NoError(t, err)

		repo.AssertExpectations(t)
	})

	t.Run("maps a missing slug to 404", func(t *testing.T) {
		repo := new(MockCaseStudyRepo)
		uc := usecase.NewCaseStudyUsecase(repo)

		repo.On("GetBySlug", mock.Anything, "nope").Return(nil, domain.ErrNotFound)

		_, err := uc.Get(context.Background(), "nope")
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}

func TestInsightGet(t *testing.T) {
	t.Run("bundles related articles from the same category", func(t *testing.T) {
		repo := new(MockInsightRepo)
		uc := usecase.NewInsightUsecase(repo)

		category := "strategy"
		repo.On("GetBySlug", mock.Anything, "pricing-power").
			Return(&domain.Insight{ID: "in-1", Slug: "pricing-power", Category: &category}, nil)
		repo.On("FetchRelated", mock.Anything, "strategy", "in-1", 3).
			Return([]domain.Insight{{ID: "in-2"}}, nil)

		detail, err := uc.Get(context.Background(), "pricing-power")
		require.NoError(t, err)
		assert.Equal(t, "in-1", detail.ID)
		assert.Len(t, detail.Related, 1)
	})

	t.Run("skips related lookup when the insight has no category", func(t *testing.T) {
		repo := new(MockInsightRepo)
		uc := usecase.NewInsightUsecase(repo)

		repo.On("GetBySlug", mock.Anything, "uncategorised").
			Return(&domain.Insight{ID: "in-1", Slug: "uncategorised"}, nil)

		detail, err := uc.Get(context.Background(), "uncategorised")
		require.NoError(t, err)
		assert.Empty(t, detail.Related)
		repo.AssertNotCalled(t, "FetchRelated")
	})

	t.Run("maps a missing slug to 404", func(t *testing.T) {
		repo := new(MockInsightRepo)
		uc := usecase.NewInsightUsecase(repo)

		repo.On("GetBySlug", mock.Anything, "nope").Return(nil, domain.ErrNotFound)

		_, err := uc.Get(context.Background(), "nope")
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Insight not found")
	})
}
