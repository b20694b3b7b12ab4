package postgres

import (
	"context"
	"fmt"

	"stravigo-website-backend/internal/domain"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var insightListColumns = []string{
	"id", "title", "slug", "category", "content_format", "featured_image_url",
	"author_name", "excerpt", "is_published", "is_featured", "published_at",
}

type insightRepo struct {
	db Querier
}

// NewInsightRepository reads published insights through the restricted pool.
func NewInsightRepository(db Querier) domain.InsightRepository {
	return &insightRepo{db: db}
}

func (r *insightRepo) Fetch(ctx context.Context, filter domain.InsightFilter) ([]domain.Insight, int64, error) {
	base := psql.
		Select(insightListColumns...).
		From("insights").
		Where(squirrel.Eq{"is_published": true})
	count := psql.
		Select("COUNT(*)").
		From("insights").
		Where(squirrel.Eq{"is_published": true})

	if filter.Category != "" {
		base = base.Where(squirrel.Eq{"category": filter.Category})
		count = count.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Format != "" {
		base = base.Where(squirrel.Eq{"content_format": filter.Format})
		count = count.Where(squirrel.Eq{"content_format": filter.Format})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		search := squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"category": pattern},
			squirrel.ILike{"excerpt": pattern},
		}
		base = base.Where(search)
		count = count.Where(search)
	}

	offset := (filter.Page - 1) * filter.Limit
	sql, args, err := base.
		OrderBy("published_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build insights query: %w", err)
	}

	var insights []domain.Insight
	if err := pgxscan.Select(ctx, r.db, &insights, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("fetch insights: %w", err)
	}

	countSQL, countArgs, err := count.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build insights count: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count insights: %w", err)
	}

	return insights, total, nil
}

func (r *insightRepo) FetchLatest(ctx context.Context, limit int) ([]domain.Insight, error) {
	return r.fetchList(ctx, psql.
		Select(insightListColumns...).
		From("insights").
		Where(squirrel.Eq{"is_published": true}).
		OrderBy("published_at DESC").
		Limit(uint64(limit)))
}

func (r *insightRepo) FetchFeatured(ctx context.Context, limit int) ([]domain.Insight, error) {
	return r.fetchList(ctx, psql.
		Select(insightListColumns...).
		From("insights").
		Where(squirrel.Eq{"is_published": true, "is_featured": true}).
		OrderBy("published_at DESC").
		Limit(uint64(limit)))
}

func (r *insightRepo) FetchCategories(ctx context.Context) ([]string, error) {
	sql, args, err := psql.
		Select("DISTINCT category").
		From("insights").
		Where(squirrel.Eq{"is_published": true}).
		Where("category IS NOT NULL").
		OrderBy("category ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build categories query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *insightRepo) GetBySlug(ctx context.Context, slug string) (*domain.Insight, error) {
	sql, args, err := psql.
		Select(append(insightListColumns, "content")...).
		From("insights").
		Where(squirrel.Eq{"slug": slug, "is_published": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insight query: %w", err)
	}

	var insight domain.Insight
	if err := pgxscan.Get(ctx, r.db, &insight, sql, args...); err != nil {
		return nil, mapReadError("get insight", err)
	}
	return &insight, nil
}

func (r *insightRepo) FetchRelated(ctx context.Context, category string, excludeID string, limit int) ([]domain.Insight, error) {
	return r.fetchList(ctx, psql.
		Select(insightListColumns...).
		From("insights").
		Where(squirrel.Eq{"is_published": true, "category": category}).
		Where(squirrel.NotEq{"id": excludeID}).
		OrderBy("published_at DESC").
		Limit(uint64(limit)))
}

func (r *insightRepo) fetchList(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.Insight, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insights query: %w", err)
	}

	var insights []domain.Insight
	if err := pgxscan.Select(ctx, r.db, &insights, sql, args...); err != nil {
		return nil, fmt.Errorf("fetch insights: %w", err)
	}
	return insights, nil
}
