package v1

import (
	"net/http"

	"stravigo-website-backend/internal/delivery/http/response"
	"stravigo-website-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type PagesHandler struct {
	pageUC domain.PageUsecase
}

// NewPagesHandler registers the CMS page routes. The aggregated routes
// (/home, /service/:type) go before the catch-all slug route.
func NewPagesHandler(pages *gin.RouterGroup, pageUC domain.PageUsecase) {
	handler := &PagesHandler{pageUC: pageUC}

	pages.GET("/home", handler.GetHomepage)
	pages.GET("/service/:type", handler.GetServicePage)
	pages.GET("/:slug", handler.GetPage)
}

// GetHomepage godoc
// @Summary      Get Homepage
// @Description  Aggregated homepage content: page body, featured case studies, testimonials, services.
// @Tags         pages
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Homepage}
// @Failure      500  {object}  response.Response
// @Router       /pages/home [get]
func (h *PagesHandler) GetHomepage(c *gin.Context) {
	home, err := h.pageUC.GetHomepage(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Homepage fetched successfully", home)
}

// GetServicePage godoc
// @Summary      Get Service Page
// @Description  A service line with its offerings and recent related case studies.
// @Tags         pages
// @Produce      json
// @Param        type  path      string  true  "Service type"
// @Success      200   {object}  response.Response{data=domain.ServicePage}
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /pages/service/{type} [get]
func (h *PagesHandler) GetServicePage(c *gin.Context) {
	page, err := h.pageUC.GetServicePage(c.Request.Context(), c.Param("type"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Service page fetched successfully", page)
}

// GetPage godoc
// @Summary      Get Page by Slug
// @Description  A single published CMS page.
// @Tags         pages
// @Produce      json
// @Param        slug  path      string  true  "Page slug"
// @Success      200   {object}  response.Response{data=domain.Page}
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /pages/{slug} [get]
func (h *PagesHandler) GetPage(c *gin.Context) {
	page, err := h.pageUC.GetPage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Page fetched successfully", page)
}
