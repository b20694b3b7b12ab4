package v1

import (
	"net/http"
	"strconv"

	"stravigo-website-backend/internal/delivery/http/response"
	"stravigo-website-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CaseStudiesHandler struct {
	caseStudyUC domain.CaseStudyUsecase
}

// NewCaseStudiesHandler registers the public case-study routes. Fixed routes
// go before the slug route so gin does not shadow them.
func NewCaseStudiesHandler(caseStudies *gin.RouterGroup, caseStudyUC domain.CaseStudyUsecase) {
	handler := &CaseStudiesHandler{caseStudyUC: caseStudyUC}

	caseStudies.GET("", handler.List)
	caseStudies.GET("/featured", handler.Featured)
	caseStudies.GET("/sectors", handler.Sectors)
	caseStudies.GET("/:slug", handler.Get)
}

// List godoc
// @Summary      List Case Studies
// @Description  Paginated published case studies, filterable by sector, service type, and search term.
// @Tags         case-studies
// @Produce      json
// @Param        sector        query     string  false  "Sector filter"
// @Param        service_type  query     string  false  "Service type filter"
// @Param        search        query     string  false  "Search in title, sector, and summary"
// @Param        page          query     int     false  "Page number"  default(1)
// @Param        limit         query     int     false  "Page size"    default(12)
// @Success      200           {object}  response.Response{data=[]domain.CaseStudy}
// @Failure      500           {object}  response.Response
// @Router       /case-studies [get]
func (h *CaseStudiesHandler) List(c *gin.Context) {
	filter := domain.CaseStudyFilter{
		Sector:      c.Query("sector"),
		ServiceType: c.Query("service_type"),
		Search:      c.Query("search"),
		Page:        queryInt(c, "page", 1),
		Limit:       queryInt(c, "limit", 0),
	}

	studies, total, err := h.caseStudyUC.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Paginated(c, http.StatusOK, studies, response.NewPagination(filter.Page, filter.Limit, total))
}

// Featured godoc
// @Summary      Featured Case Studies
// @Description  Case studies flagged for the homepage, in display order.
// @Tags         case-studies
// @Produce      json
// @Param        limit  query     int  false  "Max results"  default(3)
// @Success      200    {object}  response.Response{data=[]domain.CaseStudy}
// @Failure      500    {object}  response.Response
// @Router       /case-studies/featured [get]
func (h *CaseStudiesHandler) Featured(c *gin.Context) {
	studies, err := h.caseStudyUC.Featured(c.Request.Context(), queryInt(c, "limit", 0))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Featured case studies fetched successfully", studies)
}

// Sectors godoc
// @Summary      List Sectors
// @Description  Distinct sectors across published case studies, for filter dropdowns.
// @Tags         case-studies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Failure      500  {object}  response.Response
// @Router       /case-studies/sectors [get]
func (h *CaseStudiesHandler) Sectors(c *gin.Context) {
	sectors, err := h.caseStudyUC.Sectors(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Sectors fetched successfully", sectors)
}

// Get godoc
// @Summary      Get Case Study
// @Description  A single published case study with its media gallery.
// @Tags         case-studies
// @Produce      json
// @Param        slug  path      string  true  "Case study slug"
// @Success      200   {object}  response.Response{data=domain.CaseStudyDetail}
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /case-studies/{slug} [get]
func (h *CaseStudiesHandler) Get(c *gin.Context) {
	study, err := h.caseStudyUC.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Case study fetched successfully", study)
}

// queryInt reads a positive integer query parameter, falling back when the
// value is absent or malformed.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
