package email

import (
	"bytes"
	"context"
	"html/template"

	"github.com/Nazarious-ucu/newsletter-manager/internal/templates"
	"github.com/Nazarious-ucu/newsletter-manager/pkg/messaging"
)

const (
	newLeadTemplate = "new_lead.html"
	newLeadSubject  = "Welcome to the newsletter"
	htmlHeaders     = "MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\""
)

type Emailer interface {
	Send(ctx context.Context, to, subject, additionalHeaders, body string) error
}

type Service struct {
	emailer Emailer
	newLead *template.Template
}

func NewService(emailer Emailer) (*Service, error) {
	tmpl, err := templates.Email(newLeadTemplate)
	if err != nil {
		return nil, err
	}
	return &Service{emailer: emailer, newLead: tmpl}, nil
}

// SendNewLead greets the captured address.
func (e *Service) SendNewLead(ctx context.Context, event messaging.NewLeadEvent) error {
	var body bytes.Buffer
	if err := e.newLead.Execute(&body, event); err != nil {
		return err
	}

	return e.emailer.Send(ctx, event.Email, newLeadSubject, htmlHeaders, body.String())
}
