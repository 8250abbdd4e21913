package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"festivalhub/internal/delivery/http/helpers"
	"festivalhub/internal/domain"
)

type ContactController struct {
	Logger *slog.Logger
	Events domain.EventService
	Users  domain.UserService
	Emails domain.EmailService
}

func NewContactController(logger *slog.Logger, events domain.EventService, users domain.UserService, emails domain.EmailService) *ContactController {
	return &ContactController{
		Logger: logger,
		Events: events,
		Users:  users,
		Emails: emails,
	}
}

// ContactRequest is the request body for POST /contact/send-email.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate implements helpers.Validator.
func (r ContactRequest) Validate() []string {
	if strings.TrimSpace(r.Name) == "" ||
		strings.TrimSpace(r.Email) == "" ||
		strings.TrimSpace(r.Subject) == "" ||
		strings.TrimSpace(r.Message) == "" {
		return []string{"All fields are required"}
	}
	return nil
}

// SendContactEmail godoc
// @Summary Relay a contact form submission
// @Tags contact
// @Accept json
// @Produce json
// @Param body body controllers.ContactRequest true "Contact form fields"
// @Success 200 {object} map[string]string
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /contact/send-email [post]
func (c *ContactController) SendContactEmail(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	err := c.Emails.SendContactMessage(r.Context(), &domain.ContactEmailData{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "Email sent successfully!"})
}

// RSVPEmailRequest is the request body for the RSVP email endpoints.
type RSVPEmailRequest struct {
	EventID string `json:"eventId"`
	UserID  string `json:"userId"`
}

// Validate implements helpers.Validator.
func (r RSVPEmailRequest) Validate() []string {
	var errs []string
	if r.EventID == "" {
		errs = append(errs, "eventId is required")
	}
	if r.UserID == "" {
		errs = append(errs, "userId is required")
	}
	return errs
}

// SendRSVPConfirmationEmail godoc
// @Summary Send an RSVP confirmation email
// @Tags contact
// @Accept json
// @Produce json
// @Param body body controllers.RSVPEmailRequest true "Event and user IDs"
// @Success 200 {object} map[string]string
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /contact/send-rsvp-email [post]
func (c *ContactController) SendRSVPConfirmationEmail(w http.ResponseWriter, r *http.Request) {
	c.sendRSVPEmail(w, r, c.Emails.SendRSVPConfirmation, "RSVP confirmation email sent successfully!")
}

// SendRSVPCancellationEmail godoc
// @Summary Send an RSVP cancellation email
// @Tags contact
// @Accept json
// @Produce json
// @Param body body controllers.RSVPEmailRequest true "Event and user IDs"
// @Success 200 {object} map[string]string
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /contact/send-rsvp-cancel-email [post]
func (c *ContactController) SendRSVPCancellationEmail(w http.ResponseWriter, r *http.Request) {
	c.sendRSVPEmail(w, r, c.Emails.SendRSVPCancellation, "RSVP cancellation email sent successfully!")
}

func (c *ContactController) sendRSVPEmail(
	w http.ResponseWriter,
	r *http.Request,
	send func(ctx context.Context, data *domain.RSVPEmailData) error,
	successMessage string,
) {
	var req RSVPEmailRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	event, _, err := c.Events.GetByID(r.Context(), req.EventID, "")
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	user, err := c.Users.GetProfile(r.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	err = send(r.Context(), &domain.RSVPEmailData{
		Email:         user.Email,
		Fullname:      user.Fullname,
		EventTitle:    event.Title,
		EventLocation: event.Location,
		EventStart:    event.StartTime,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": successMessage})
}
