package postgres

import (
	"context"
	"fmt"

	"stravigo-website-backend/internal/domain"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// listColumns excludes the heavy content blob; it is only loaded on the
// detail lookup.
var caseStudyListColumns = []string{
	"id", "title", "slug", "sector", "service_type", "status", "headline_summary",
	"featured_image_url", "is_published", "is_featured", "featured_order", "published_at",
}

type caseStudyRepo struct {
	db Querier
}

// NewCaseStudyRepository reads published case studies through the restricted
// pool.
func NewCaseStudyRepository(db Querier) domain.CaseStudyRepository {
	return &caseStudyRepo{db: db}
}

func (r *caseStudyRepo) Fetch(ctx context.Context, filter domain.CaseStudyFilter) ([]domain.CaseStudy, int64, error) {
	base := psql.
		Select(caseStudyListColumns...).
		From("case_studies").
		Where(squirrel.Eq{"is_published": true})
	count := psql.
		Select("COUNT(*)").
		From("case_studies").
		Where(squirrel.Eq{"is_published": true})

	if filter.Sector != "" {
		base = base.Where(squirrel.Eq{"sector": filter.Sector})
		count = count.Where(squirrel.Eq{"sector": filter.Sector})
	}
	if filter.ServiceType != "" {
		base = base.Where(squirrel.Eq{"service_type": filter.ServiceType})
		count = count.Where(squirrel.Eq{"service_type": filter.ServiceType})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		search := squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"sector": pattern},
			squirrel.ILike{"headline_summary": pattern},
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
		return nil, 0, fmt.Errorf("build case studies query: %w", err)
	}

	var studies []domain.CaseStudy
	if err := pgxscan.Select(ctx, r.db, &studies, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("fetch case studies: %w", err)
	}

	countSQL, countArgs, err := count.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build case studies count: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count case studies: %w", err)
	}

	return studies, total, nil
}

func (r *caseStudyRepo) FetchFeatured(ctx context.Context, limit int) ([]domain.CaseStudy, error) {
	sql, args, err := psql.
		Select(caseStudyListColumns...).
		From("case_studies").
		Where(squirrel.Eq{"is_featured": true, "is_published": true}).
		OrderBy("featured_order ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build featured case studies query: %w", err)
	}

	var studies []domain.CaseStudy
	if err := pgxscan.Select(ctx, r.db, &studies, sql, args...); err != nil {
		return nil, fmt.Errorf("fetch featured case studies: %w", err)
	}
	return studies, nil
}

func (r *caseStudyRepo) FetchByServiceType(ctx context.Context, serviceType string, limit int) ([]domain.CaseStudy, error) {
	sql, args, err := psql.
		Select(caseStudyListColumns...).
		From("case_studies").
		Where(squirrel.Eq{"service_type": serviceType, "is_published": true}).
		OrderBy("published_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build case studies by service query: %w", err)
	}

	var studies []domain.CaseStudy
	if err := pgxscan.Select(ctx, r.db, &studies, sql, args...); err != nil {
		return nil, fmt.Errorf("fetch case studies by service: %w", err)
	}
	return studies, nil
}

func (r *caseStudyRepo) FetchSectors(ctx context.Context) ([]string, error) {
	sql, args, err := psql.
		Select("DISTINCT sector").
		From("case_studies").
		Where(squirrel.Eq{"is_published": true}).
		Where("sector IS NOT NULL").
		OrderBy("sector ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sectors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch sectors: %w", err)
	}
	defer rows.Close()

	var sectors []string
	for rows.Next() {
		var sector string
		if err := rows.Scan(&sector); err != nil {
			return nil, fmt.Errorf("scan sector: %w", err)
		}
		sectors = append(sectors, sector)
	}
	return sectors, rows.Err()
}

func (r *caseStudyRepo) GetBySlug(ctx context.Context, slug string) (*domain.CaseStudyDetail, error) {
	sql, args, err := psql.
		Select(append(caseStudyListColumns, "content")...).
		From("case_studies").
		Where(squirrel.Eq{"slug": slug, "is_published": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build case study query: %w", err)
	}

	var study domain.CaseStudy
	if err := pgxscan.Get(ctx, r.db, &study, sql, args...); err != nil {
		return nil, mapReadError("get case study", err)
	}

	mediaSQL, mediaArgs, err := psql.
		Select("id", "case_study_id", "media_type", "url", "caption", "order_index").
		From("case_study_media").
		Where(squirrel.Eq{"case_study_id": study.ID}).
		OrderBy("order_index ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build case study media query: %w", err)
	}

	var media []domain.CaseStudyMedia
	if err := pgxscan.Select(ctx, r.db, &media, mediaSQL, mediaArgs...); err != nil {
		return nil, fmt.Errorf("fetch case study media: %w", err)
	}

	return &domain.CaseStudyDetail{CaseStudy: study, Media: media}, nil
}
