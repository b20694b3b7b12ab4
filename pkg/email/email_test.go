package email

import (
	"context"
	"testing"

	"stravigo-website-backend/config"
	"stravigo-website-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *Service {
	return NewService(&config.Config{
		FrontendURL:   "https://stravigo.com",
		SMTPFromEmail: "hello@stravigo.com",
		LeadsEmailTo:  "leads@stravigo.com",
	})
}

func TestIsConfigured(t *testing.T) {
	s := testService()
	assert.False(t, s.IsConfigured())

	s.host = "smtp.example.com"
	s.username = "user"
	s.password = "pass"
	assert.True(t, s.IsConfigured())
}

func TestSendWithoutConfiguration(t *testing.T) {
	s := testService()
	err := s.SendContactConfirmation(context.Background(), "jane@acme.com", "Jane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestRenderContactConfirmation(t *testing.T) {
	s := testService()
	body, err := s.render("contact_confirmation", map[string]any{
		"Name":        "Jane",
		"FrontendURL": s.frontendURL,
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Hi Jane,")
	assert.Contains(t, body, "https://stravigo.com/insights")
}

func TestRenderLeadAlertFallbacks(t *testing.T) {
	s := testService()
	lead := &domain.Lead{
		FullName:        "Jane Doe",
		Email:           "jane@acme.com",
		ServiceInterest: domain.DefaultServiceInterest,
		PageSource:      domain.DefaultPageSource,
	}
	body, err := s.render("lead_alert", map[string]any{
		"FullName":        lead.FullName,
		"Email":           lead.Email,
		"PhoneNumber":     orDefault(lead.PhoneNumber, "Not provided"),
		"Company":         orDefault(lead.Company, "Not provided"),
		"ServiceInterest": lead.ServiceInterest,
		"PageSource":      lead.PageSource,
		"Message":         orDefault(lead.Message, "No message"),
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Not provided")
	assert.Contains(t, body, "No message")
	assert.Contains(t, body, "mailto:jane@acme.com")
}

func TestRenderResourceAccess(t *testing.T) {
	s := testService()

	t.Run("known category links the download", func(t *testing.T) {
		link := s.frontendURL + resourceLinks[domain.ResourceTypeBusiness]
		body, err := s.render("resource_access", map[string]any{
			"Name":         "Jane",
			"ResourceType": domain.ResourceTypeBusiness,
			"Link":         link,
			"FrontendURL":  s.frontendURL,
		})
		require.NoError(t, err)
		assert.Contains(t, body, "Download Link:")
		assert.Contains(t, body, "https://stravigo.com/resources/business-strategy-guide.pdf")
	})

	t.Run("unknown category omits the download section", func(t *testing.T) {
		body, err := s.render("resource_access", map[string]any{
			"Name":         "Jane",
			"ResourceType": "mystery",
			"Link":         resourceLinks["mystery"],
			"FrontendURL":  s.frontendURL,
		})
		require.NoError(t, err)
		assert.NotContains(t, body, "Download Link:")
		assert.Contains(t, body, "Our team will follow up")
	})
}

func TestRenderApplicationConfirmation(t *testing.T) {
	s := testService()
	body, err := s.render("application_confirmation", map[string]any{
		"Name":        "Jane",
		"RoleTitle":   "Strategy Analyst",
		"FrontendURL": s.frontendURL,
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Strategy Analyst")
	assert.Contains(t, body, "https://stravigo.com/culture")
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Business", titleCase("business"))
	assert.Equal(t, "", titleCase(""))
}
