package services

import (
	"context"
	"fmt"

	"festivalhub/internal/domain"
)

type emailService struct {
	mailer         domain.Mailer
	renderer       domain.EmailTemplateRenderer
	contactAddress string
}

// NewEmailService returns an EmailService that renders the named templates and
// sends them through the given Mailer. contactAddress is the festival inbox
// that receives contact form submissions.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, contactAddress string) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, contactAddress: contactAddress}
}

func (s *emailService) SendRSVPConfirmation(ctx context.Context, data *domain.RSVPEmailData) error {
	if data == nil {
		return fmt.Errorf("rsvp confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("rsvp_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render rsvp_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send RSVP confirmation email: %w", err)
	}
	return nil
}

func (s *emailService) SendRSVPCancellation(ctx context.Context, data *domain.RSVPEmailData) error {
	if data == nil {
		return fmt.Errorf("rsvp cancellation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("rsvp_cancellation", data)
	if err != nil {
		return fmt.Errorf("failed to render rsvp_cancellation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send RSVP cancellation email: %w", err)
	}
	return nil
}

func (s *emailService) SendContactMessage(ctx context.Context, data *domain.ContactEmailData) error {
	if data == nil {
		return fmt.Errorf("contact message data is nil")
	}
	if s.contactAddress == "" {
		return fmt.Errorf("contact address is not configured")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("contact", data)
	if err != nil {
		return fmt.Errorf("failed to render contact template: %w", err)
	}
	if err := s.mailer.Send(s.contactAddress, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}
