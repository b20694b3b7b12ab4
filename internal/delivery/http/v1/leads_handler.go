package v1

import (
	"net/http"

	"stravigo-website-backend/internal/delivery/http/response"
	"stravigo-website-backend/internal/domain"
	"stravigo-website-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type LeadsHandler struct {
	leadUC domain.LeadUsecase
}

// NewLeadsHandler registers the lead submission routes and the public career
// listings. All routes are public; contactLimiter throttles the contact form
// more tightly than the global limit.
func NewLeadsHandler(leads *gin.RouterGroup, leadUC domain.LeadUsecase, contactLimiter gin.HandlerFunc) {
	handler := &LeadsHandler{leadUC: leadUC}

	leads.POST("/contact", contactLimiter, handler.SubmitContact)
	leads.POST("/resource-access", handler.SubmitResourceAccess)
	leads.POST("/job-application", handler.SubmitJobApplication)
	leads.GET("/jobs", handler.GetJobOpenings)
	leads.GET("/internships", handler.GetInternships)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Record a contact-form lead and send confirmation emails. Public endpoint.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactInput  true  "Contact Form Data"
// @Success      201      {object}  response.Response{data=domain.Lead}
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /leads/contact [post]
func (h *LeadsHandler) SubmitContact(c *gin.Context) {
	var input domain.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Full name and email are required"))
		return
	}

	lead, err := h.leadUC.SubmitContact(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Thank you for contacting us! We'll get back to you soon.", lead)
}

// SubmitResourceAccess godoc
// @Summary      Request Resource Access
// @Description  Record a gated-resource request and email the download link. Public endpoint.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ResourceAccessInput  true  "Resource Access Data"
// @Success      201      {object}  response.Response{data=domain.ResourceAccessRequest}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /leads/resource-access [post]
func (h *LeadsHandler) SubmitResourceAccess(c *gin.Context) {
	var input domain.ResourceAccessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Full name, email, and resource type are required"))
		return
	}

	req, err := h.leadUC.SubmitResourceAccess(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resource access granted. Check your email!", req)
}

// SubmitJobApplication godoc
// @Summary      Submit Job Application
// @Description  Apply to an active job opening. Returns 404 when the opening is missing or closed.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        application  body      domain.JobApplicationInput  true  "Application Data"
// @Success      201          {object}  response.Response{data=domain.JobApplication}
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /leads/job-application [post]
func (h *LeadsHandler) SubmitJobApplication(c *gin.Context) {
	var input domain.JobApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Job opening ID, full name, and email are required"))
		return
	}

	app, err := h.leadUC.SubmitJobApplication(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully!", app)
}

// GetJobOpenings godoc
// @Summary      List Job Openings
// @Description  List active job openings, newest first.
// @Tags         leads
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.JobOpening}
// @Failure      500  {object}  response.Response
// @Router       /leads/jobs [get]
func (h *LeadsHandler) GetJobOpenings(c *gin.Context) {
	openings, err := h.leadUC.GetJobOpenings(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job openings fetched successfully", openings)
}

// GetInternships godoc
// @Summary      List Internships
// @Description  List active internship programs, newest first.
// @Tags         leads
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Internship}
// @Failure      500  {object}  response.Response
// @Router       /leads/internships [get]
func (h *LeadsHandler) GetInternships(c *gin.Context) {
	internships, err := h.leadUC.GetInternships(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Internships fetched successfully", internships)
}
