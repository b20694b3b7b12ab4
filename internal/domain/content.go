package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Page is a published CMS page.
type Page struct {
	ID              string          `json:"id" db:"id"`
	Slug            string          `json:"slug" db:"slug"`
	Title           string          `json:"title" db:"title"`
	Content         json.RawMessage `json:"content" db:"content"`
	MetaDescription *string         `json:"meta_description" db:"meta_description"`
	IsPublished     bool            `json:"is_published" db:"is_published"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// CaseStudy is a published piece of client work.
type CaseStudy struct {
	ID               string          `json:"id" db:"id"`
	Title            string          `json:"title" db:"title"`
	Slug             string          `json:"slug" db:"slug"`
	Sector           *string         `json:"sector" db:"sector"`
	ServiceType      *string         `json:"service_type" db:"service_type"`
	Status           *string         `json:"status" db:"status"`
	HeadlineSummary  *string         `json:"headline_summary" db:"headline_summary"`
	FeaturedImageURL *string         `json:"featured_image_url" db:"featured_image_url"`
	Content          json.RawMessage `json:"content,omitempty" db:"content"`
	IsPublished      bool            `json:"is_published" db:"is_published"`
	IsFeatured       bool            `json:"is_featured" db:"is_featured"`
	FeaturedOrder    *int            `json:"featured_order" db:"featured_order"`
	PublishedAt      *time.Time      `json:"published_at" db:"published_at"`
}

// CaseStudyMedia is an image or video attached to a case study.
type CaseStudyMedia struct {
	ID          string  `json:"id" db:"id"`
	CaseStudyID string  `json:"case_study_id" db:"case_study_id"`
	MediaType   string  `json:"media_type" db:"media_type"`
	URL         string  `json:"url" db:"url"`
	Caption     *string `json:"caption" db:"caption"`
	OrderIndex  int     `json:"order_index" db:"order_index"`
}

// CaseStudyDetail is a case study with its attached media.
type CaseStudyDetail struct {
	CaseStudy
	Media []CaseStudyMedia `json:"case_study_media"`
}

// Insight is a published article.
type Insight struct {
	ID               string          `json:"id" db:"id"`
	Title            string          `json:"title" db:"title"`
	Slug             string          `json:"slug" db:"slug"`
	Category         *string         `json:"category" db:"category"`
	ContentFormat    *string         `json:"content_format" db:"content_format"`
	FeaturedImageURL *string         `json:"featured_image_url" db:"featured_image_url"`
	AuthorName       *string         `json:"author_name" db:"author_name"`
	Excerpt          *string         `json:"excerpt" db:"excerpt"`
	Content          json.RawMessage `json:"content,omitempty" db:"content"`
	IsPublished      bool            `json:"is_published" db:"is_published"`
	IsFeatured       bool            `json:"is_featured" db:"is_featured"`
	PublishedAt      *time.Time      `json:"published_at" db:"published_at"`
}

// InsightDetail is an insight with related articles from the same category.
type InsightDetail struct {
	Insight
	Related []Insight `json:"related"`
}

// Testimonial is an approved client quote shown on the homepage.
type Testimonial struct {
	ID            string  `json:"id" db:"id"`
	AuthorName    string  `json:"author_name" db:"author_name"`
	AuthorTitle   *string `json:"author_title" db:"author_title"`
	Company       *string `json:"company" db:"company"`
	Quote         string  `json:"quote" db:"quote"`
	IsFeatured    bool    `json:"is_featured" db:"is_featured"`
	IsApproved    bool    `json:"is_approved" db:"is_approved"`
	FeaturedOrder *int    `json:"featured_order" db:"featured_order"`
}

// Service is a service line offered on the site.
type Service struct {
	ID          string  `json:"id" db:"id"`
	ServiceType string  `json:"service_type" db:"service_type"`
	Title       string  `json:"title" db:"title"`
	Description *string `json:"description" db:"description"`
	OrderIndex  int     `json:"order_index" db:"order_index"`
	IsActive    bool    `json:"is_active" db:"is_active"`
}

// ServiceOffering is a line item under a service.
type ServiceOffering struct {
	ID          string  `json:"id" db:"id"`
	ServiceID   string  `json:"service_id" db:"service_id"`
	Title       string  `json:"title" db:"title"`
	Description *string `json:"description" db:"description"`
	OrderIndex  int     `json:"order_index" db:"order_index"`
	IsActive    bool    `json:"is_active" db:"is_active"`
}

// Homepage aggregates everything the landing page needs in one response.
type Homepage struct {
	Page                *Page       `json:"page"`
	FeaturedCaseStudies []CaseStudy `json:"featured_case_studies"`
	Testimonials        []Testimonial `json:"testimonials"`
	Services            []Service   `json:"services"`
}

// ServicePage aggregates a service with its offerings and related work.
type ServicePage struct {
	Service
	Offerings   []ServiceOffering `json:"offerings"`
	CaseStudies []CaseStudy       `json:"case_studies"`
}

// CaseStudyFilter narrows the public case-study listing.
type CaseStudyFilter struct {
	Sector      string
	ServiceType string
	Search      string
	Page        int
	Limit       int
}

// InsightFilter narrows the public insights listing.
type InsightFilter struct {
	Category string
	Format   string
	Search   string
	Page     int
	Limit    int
}

// PageRepository reads published pages and homepage building blocks under the
// restricted access mode.
type PageRepository interface {
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	GetServiceByType(ctx context.Context, serviceType string) (*Service, error)
	FetchOfferings(ctx context.Context, serviceID string) ([]ServiceOffering, error)
	FetchActiveServices(ctx context.Context) ([]Service, error)
	FetchFeaturedTestimonials(ctx context.Context, limit int) ([]Testimonial, error)
}

// CaseStudyRepository reads published case studies under the restricted
// access mode.
type CaseStudyRepository interface {
	Fetch(ctx context.Context, filter CaseStudyFilter) ([]CaseStudy, int64, error)
	FetchFeatured(ctx context.Context, limit int) ([]CaseStudy, error)
	FetchByServiceType(ctx context.Context, serviceType string, limit int) ([]CaseStudy, error)
	FetchSectors(ctx context.Context) ([]string, error)
	GetBySlug(ctx context.Context, slug string) (*CaseStudyDetail, error)
}

// InsightRepository reads published insights under the restricted access
// mode.
type InsightRepository interface {
	Fetch(ctx context.Context, filter InsightFilter) ([]Insight, int64, error)
	FetchLatest(ctx context.Context, limit int) ([]Insight, error)
	FetchFeatured(ctx context.Context, limit int) ([]Insight, error)
	FetchCategories(ctx context.Context) ([]string, error)
	GetBySlug(ctx context.Context, slug string) (*Insight, error)
	FetchRelated(ctx context.Context, category string, excludeID string, limit int) ([]Insight, error)
}

// PageUsecase serves CMS pages and the aggregated homepage / service pages.
type PageUsecase interface {
	GetPage(ctx context.Context, slug string) (*Page, error)
	GetHomepage(ctx context.Context) (*Homepage, error)
	GetServicePage(ctx context.Context, serviceType string) (*ServicePage, error)
}

// CaseStudyUsecase serves the public case-study listings.
type CaseStudyUsecase interface {
	List(ctx context.Context, filter CaseStudyFilter) ([]CaseStudy, int64, error)
	Featured(ctx context.Context, limit int) ([]CaseStudy, error)
	Sectors(ctx context.Context) ([]string, error)
	Get(ctx context.Context, slug string) (*CaseStudyDetail, error)
}

// InsightUsecase serves the public insights listings.
type InsightUsecase interface {
	List(ctx context.Context, filter InsightFilter) ([]Insight, int64, error)
	Latest(ctx context.Context, limit int) ([]Insight, error)
	Featured(ctx context.Context, limit int) ([]Insight, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, slug string) (*InsightDetail, error)
}
