package v1

import (
	"net/http"

	"stravigo-website-backend/internal/delivery/http/response"
	"stravigo-website-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type InsightsHandler struct {
	insightUC domain.InsightUsecase
}

// NewInsightsHandler registers the public insight routes. Fixed routes go
// before the slug route so gin does not shadow them.
func NewInsightsHandler(insights *gin.RouterGroup, insightUC domain.InsightUsecase) {
	handler := &InsightsHandler{insightUC: insightUC}

	insights.GET("", handler.List)
	insights.GET("/latest", handler.Latest)
	insights.GET("/featured", handler.Featured)
	insights.GET("/categories", handler.Categories)
	insights.GET("/:slug", handler.Get)
}

// List godoc
// @Summary      List Insights
// @Description  Paginated published insights, filterable by category, format, and search term.
// @Tags         insights
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Param        format    query     string  false  "Content format filter"
// @Param        search    query     string  false  "Search in title and excerpt"
// @Param        page      query     int     false  "Page number"  default(1)
// @Param        limit     query     int     false  "Page size"    default(12)
// @Success      200       {object}  response.Response{data=[]domain.Insight}
// @Failure      500       {object}  response.Response
// @Router       /insights [get]
func (h *InsightsHandler) List(c *gin.Context) {
	filter := domain.InsightFilter{
		Category: c.Query("category"),
		Format:   c.Query("format"),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 0),
	}

	insights, total, err := h.insightUC.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Paginated(c, http.StatusOK, insights, response.NewPagination(filter.Page, filter.Limit, total))
}

// Latest godoc
// @Summary      Latest Insights
// @Description  Most recently published insights.
// @Tags         insights
// @Produce      json
// @Param        limit  query     int  false  "Max results"  default(3)
// @Success      200    {object}  response.Response{data=[]domain.Insight}
// @Failure      500    {object}  response.Response
// @Router       /insights/latest [get]
func (h *InsightsHandler) Latest(c *gin.Context) {
	insights, err := h.insightUC.Latest(c.Request.Context(), queryInt(c, "limit", 0))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Latest insights fetched successfully", insights)
}

// Featured godoc
// @Summary      Featured Insights
// @Description  Insights flagged as featured, newest first.
// @Tags         insights
// @Produce      json
// @Param        limit  query     int  false  "Max results"  default(6)
// @Success      200    {object}  response.Response{data=[]domain.Insight}
// @Failure      500    {object}  response.Response
// @Router       /insights/featured [get]
func (h *InsightsHandler) Featured(c *gin.Context) {
	insights, err := h.insightUC.Featured(c.Request.Context(), queryInt(c, "limit", 0))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Featured insights fetched successfully", insights)
}

// Categories godoc
// @Summary      List Categories
// @Description  Distinct categories across published insights, for filter dropdowns.
// @Tags         insights
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Failure      500  {object}  response.Response
// @Router       /insights/categories [get]
func (h *InsightsHandler) Categories(c *gin.Context) {
	categories, err := h.insightUC.Categories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Categories fetched successfully", categories)
}

// Get godoc
// @Summary      Get Insight
// @Description  A single published insight with related articles from the same category.
// @Tags         insights
// @Produce      json
// @Param        slug  path      string  true  "Insight slug"
// @Success      200   {object}  response.Response{data=domain.InsightDetail}
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /insights/{slug} [get]
func (h *InsightsHandler) Get(c *gin.Context) {
	insight, err := h.insightUC.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Insight fetched successfully", insight)
}
