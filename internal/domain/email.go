package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RSVPEmailData holds data for the RSVP confirmation and cancellation emails.
type RSVPEmailData struct {
	Email         string
	Fullname      string
	EventTitle    string
	EventLocation string
	EventStart    time.Time
}

// ContactEmailData holds a contact form submission relayed to the festival inbox.
type ContactEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRSVPConfirmation(ctx context.Context, data *RSVPEmailData) error
	SendRSVPCancellation(ctx context.Context, data *RSVPEmailData) error
	SendContactMessage(ctx context.Context, data *ContactEmailData) error
}
