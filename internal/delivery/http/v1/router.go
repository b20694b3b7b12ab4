package v1

import (
	"net/http"
	"time"

	"stravigo-website-backend/config"
	"stravigo-website-backend/internal/delivery/http/middleware"
	"stravigo-website-backend/internal/delivery/http/response"
	"stravigo-website-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	LeadUC      domain.LeadUsecase
	PageUC      domain.PageUsecase
	CaseStudyUC domain.CaseStudyUsecase
	InsightUC   domain.InsightUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(!deps.Config.IsProduction()))
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(
		deps.Config.RateLimitGlobalRequests,
		time.Duration(deps.Config.RateLimitWindowMinutes)*time.Minute,
	)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes - the whole API is unauthenticated
	contactLimiter := middleware.RateLimitMiddleware(
		middleware.ContactRateLimitConfig(deps.Config.RateLimitContactPerHour),
	)
	NewLeadsHandler(v1.Group("/leads"), deps.LeadUC, contactLimiter)
	NewPagesHandler(v1.Group("/pages"), deps.PageUC)
	NewCaseStudiesHandler(v1.Group("/case-studies"), deps.CaseStudyUC)
	NewInsightsHandler(v1.Group("/insights"), deps.InsightUC)

	return r
}
