package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"stravigo-website-backend/config"
	"stravigo-website-backend/internal/domain"
)

// Service sends the pipeline's transactional email over SMTP. Every send is
// best-effort from the caller's point of view: the submission pipeline logs
// and drops whatever error comes back.
type Service struct {
	host        string
	port        string
	username    string
	password    string
	fromEmail   string
	leadsTo     string
	frontendURL string
	templates   *template.Template
}

// resourceLinks maps a requested resource category to its download. An
// unrecognized category maps to nothing; the template then omits the link
// section instead of failing.
var resourceLinks = map[string]string{
	domain.ResourceTypeBusiness:      "/resources/business-strategy-guide.pdf",
	domain.ResourceTypeIndividuals:   "/resources/personal-branding-framework.pdf",
	domain.ResourceTypeEntertainment: "/resources/entertainment-industry-report.pdf",
}

// NewService creates the notification gateway from SMTP configuration.
func NewService(cfg *config.Config) *Service {
	return &Service{
		host:        cfg.SMTPHost,
		port:        cfg.SMTPPort,
		username:    cfg.SMTPUsername,
		password:    cfg.SMTPPassword,
		fromEmail:   cfg.SMTPFromEmail,
		leadsTo:     cfg.LeadsEmailTo,
		frontendURL: cfg.FrontendURL,
		templates:   template.Must(template.New("email").Parse(emailTemplates)),
	}
}

// IsConfigured checks whether the SMTP transport has enough configuration to
// attempt delivery at all.
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// SendContactConfirmation thanks the submitter for reaching out.
func (s *Service) SendContactConfirmation(ctx context.Context, to, name string) error {
	body, err := s.render("contact_confirmation", map[string]any{
		"Name":        name,
		"FrontendURL": s.frontendURL,
	})
	if err != nil {
		return err
	}
	return s.send(to, "Thank You for Contacting Stravigo", "", body)
}

// SendLeadAlert notifies the operator inbox about a new lead.
func (s *Service) SendLeadAlert(ctx context.Context, lead *domain.Lead) error {
	body, err := s.render("lead_alert", map[string]any{
		"FullName":        lead.FullName,
		"Email":           lead.Email,
		"PhoneNumber":     orDefault(lead.PhoneNumber, "Not provided"),
		"Company":         orDefault(lead.Company, "Not provided"),
		"ServiceInterest": lead.ServiceInterest,
		"PageSource":      lead.PageSource,
		"Message":         orDefault(lead.Message, "No message"),
	})
	if err != nil {
		return err
	}
	return s.send(s.leadsTo, fmt.Sprintf("New Lead: %s", lead.FullName), lead.Email, body)
}

// SendResourceAccess delivers the requested resource link. For a category
// outside the known set the mail is still sent, just without a download
// section.
func (s *Service) SendResourceAccess(ctx context.Context, to, name, resourceType string) error {
	link := resourceLinks[resourceType]
	if link != "" {
		link = s.frontendURL + link
	}
	body, err := s.render("resource_access", map[string]any{
		"Name":         name,
		"ResourceType": resourceType,
		"Link":         link,
		"FrontendURL":  s.frontendURL,
	})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Your %s Resource from Stravigo", titleCase(resourceType))
	return s.send(to, subject, "", body)
}

// SendApplicationConfirmation acknowledges a job application, naming the
// opening applied to.
func (s *Service) SendApplicationConfirmation(ctx context.Context, to, name, roleTitle string) error {
	body, err := s.render("application_confirmation", map[string]any{
		"Name":        name,
		"RoleTitle":   roleTitle,
		"FrontendURL": s.frontendURL,
	})
	if err != nil {
		return err
	}
	return s.send(to, fmt.Sprintf("Application Received: %s", roleTitle), "", body)
}

func (s *Service) render(name string, data map[string]any) (string, error) {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("failed to render email template %s: %w", name, err)
	}
	return body.String(), nil
}

func (s *Service) send(to, subject, replyTo, body string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service is not configured")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: Stravigo <%s>\r\n", s.fromEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	if replyTo != "" {
		fmt.Fprintf(&msg, "Reply-To: %s\r\n", replyTo)
	}
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func orDefault(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

const emailTemplates = `
{{define "contact_confirmation"}}<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #333;">Hi {{.Name}},</h2>
    <p>Thank you for reaching out to Stravigo! We've received your message and our team will get back to you within 24 hours.</p>
    <p>In the meantime, you might want to check out:</p>
    <ul>
        <li><a href="{{.FrontendURL}}/insights">Our Latest Insights</a></li>
        <li><a href="{{.FrontendURL}}/work">Our Featured Case Studies</a></li>
    </ul>
    <p>Best regards,<br>The Stravigo Team</p>
    <hr style="border: none; border-top: 1px solid #eee;">
    <p style="color: #666; font-size: 12px;">Stravigo - Building Brands Everyone Talks About</p>
</body>
</html>{{end}}

{{define "lead_alert"}}<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #333;">New Website Lead</h2>
    <table style="width: 100%; border-collapse: collapse;">
        <tr><td style="padding: 8px; border: 1px solid #ddd; font-weight: bold;">Name:</td><td style="padding: 8px; border: 1px solid #ddd;">{{.FullName}}</td></tr>
        <tr><td style="padding: 8px; border: 1px solid #ddd; font-weight: bold;">Email:</td><td style="padding: 8px; border: 1px solid #ddd;">{{.Email}}</td></tr>
        <tr><td style="padding: 8px; border: 1px solid #ddd; font-weight: bold;">Phone:</td><td style="padding: 8px; border: 1px solid #ddd;">{{.PhoneNumber}}</td></tr>
        <tr><td style="padding: 8px; border: 1px solid #ddd; font-weight: bold;">Company:</td><td style="padding: 8px; border: 1px solid #ddd;">{{.Company}}</td></tr>
        <tr><td style="padding: 8px; border: 1px solid #ddd; font-weight: bold;">Service Interest:</td><td style="padding: 8px; border: 1px solid #ddd;">{{.ServiceInterest}}</td></tr>
        <tr><td style="padding: 8px; border: 1px solid #ddd; font-weight: bold;">Source:</td><td style="padding: 8px; border: 1px solid #ddd;">{{.PageSource}}</td></tr>
        <tr><td style="padding: 8px; border: 1px solid #ddd; font-weight: bold;">Message:</td><td style="padding: 8px; border: 1px solid #ddd;">{{.Message}}</td></tr>
    </table>
    <p style="margin-top: 20px;"><a href="mailto:{{.Email}}" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 4px;">Reply to {{.FullName}}</a></p>
</body>
</html>{{end}}

{{define "resource_access"}}<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #333;">Here's Your Resource, {{.Name}}!</h2>
    <p>Thank you for your interest in Stravigo. Here's the {{.ResourceType}} resource you requested:</p>
    {{if .Link}}
    <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h3 style="margin-top: 0;">Download Link:</h3>
        <p><a href="{{.Link}}" style="background-color: #007bff; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; display: inline-block;">Download Resource</a></p>
        <p style="color: #666; font-size: 14px;"><em>Note: This link will expire in 7 days</em></p>
    </div>
    {{else}}
    <p>Our team will follow up with the right material for your request shortly.</p>
    {{end}}
    <p>Want to learn more about how Stravigo can help you?</p>
    <ul>
        <li><a href="{{.FrontendURL}}/work">View Case Studies</a></li>
        <li><a href="{{.FrontendURL}}/contact">Schedule a Consultation</a></li>
    </ul>
    <p>Best regards,<br>The Stravigo Team</p>
</body>
</html>{{end}}

{{define "application_confirmation"}}<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #333;">Application Received, {{.Name}}!</h2>
    <p>Thank you for applying for the <strong>{{.RoleTitle}}</strong> position at Stravigo.</p>
    <p>We've received your application and our team will review it carefully. We aim to get back to all applicants within 7-10 business days.</p>
    <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h3 style="margin-top: 0;">What's Next?</h3>
        <ul>
            <li>Our team will review your application</li>
            <li>If shortlisted, we'll contact you for an initial screening</li>
            <li>The interview process typically takes 2-3 weeks</li>
        </ul>
    </div>
    <p>In the meantime, learn more about working at Stravigo:</p>
    <ul>
        <li><a href="{{.FrontendURL}}/culture">Our Culture &amp; Values</a></li>
        <li><a href="{{.FrontendURL}}/work">Our Recent Work</a></li>
    </ul>
    <p>Best regards,<br>Stravigo Talent Team</p>
</body>
</html>{{end}}
`
