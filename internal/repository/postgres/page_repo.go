package postgres

import (
	"context"
	"fmt"

	"stravigo-website-backend/internal/domain"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

type pageRepo struct {
	db Querier
}

// NewPageRepository reads published pages and the homepage building blocks
// through the restricted pool.
func NewPageRepository(db Querier) domain.PageRepository {
	return &pageRepo{db: db}
}

func (r *pageRepo) GetBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	sql, args, err := psql.
		Select("id", "slug", "title", "content", "meta_description", "is_published", "created_at", "updated_at").
		From("pages").
		Where(squirrel.Eq{"slug": slug, "is_published": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build page query: %w", err)
	}

	var page domain.Page
	if err := pgxscan.Get(ctx, r.db, &page, sql, args...); err != nil {
		return nil, mapReadError("get page", err)
	}
	return &page, nil
}

func (r *pageRepo) GetServiceByType(ctx context.Context, serviceType string) (*domain.Service, error) {
	sql, args, err := psql.
		Select("id", "service_type", "title", "description", "order_index", "is_active").
		From("services").
		Where(squirrel.Eq{"service_type": serviceType, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build service query: %w", err)
	}

	var service domain.Service
	if err := pgxscan.Get(ctx, r.db, &service, sql, args...); err != nil {
		return nil, mapReadError("get service", err)
	}
	return &service, nil
}

func (r *pageRepo) FetchOfferings(ctx context.Context, serviceID string) ([]domain.ServiceOffering, error) {
	sql, args, err := psql.
		Select("id", "service_id", "title", "description", "order_index", "is_active").
		From("service_offerings").
		Where(squirrel.Eq{"service_id": serviceID, "is_active": true}).
		OrderBy("order_index ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build offerings query: %w", err)
	}

	var offerings []domain.ServiceOffering
	if err := pgxscan.Select(ctx, r.db, &offerings, sql, args...); err != nil {
		return nil, fmt.Errorf("fetch offerings: %w", err)
	}
	return offerings, nil
}

func (r *pageRepo) FetchActiveServices(ctx context.Context) ([]domain.Service, error) {
	sql, args, err := psql.
		Select("id", "service_type", "title", "description", "order_index", "is_active").
		From("services").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("order_index ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build services query: %w", err)
	}

	var services []domain.Service
	if err := pgxscan.Select(ctx, r.db, &services, sql, args...); err != nil {
		return nil, fmt.Errorf("fetch services: %w", err)
	}
	return services, nil
}

func (r *pageRepo) FetchFeaturedTestimonials(ctx context.Context, limit int) ([]domain.Testimonial, error) {
	sql, args, err := psql.
		Select("id", "author_name", "author_title", "company", "quote", "is_featured", "is_approved", "featured_order").
		From("testimonials").
		Where(squirrel.Eq{"is_featured": true, "is_approved": true}).
		OrderBy("featured_order ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build testimonials query: %w", err)
	}

	var testimonials []domain.Testimonial
	if err := pgxscan.Select(ctx, r.db, &testimonials, sql, args...); err != nil {
		return nil, fmt.Errorf("fetch testimonials: %w", err)
	}
	return testimonials, nil
}
