package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"festivalhub/internal/delivery/http/helpers"
	"festivalhub/internal/domain"
)

type EventController struct {
	Logger *slog.Logger
	Events domain.EventService
	RSVPs  domain.RSVPService
}

func NewEventController(logger *slog.Logger, events domain.EventService, rsvps domain.RSVPService) *EventController {
	return &EventController{
		Logger: logger,
		Events: events,
		RSVPs:  rsvps,
	}
}

// ListEvents godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// eventWithRSVPStatus is an event projection extended with the caller's RSVP flag.
type eventWithRSVPStatus struct {
	*domain.Event
	UserHasRSVPed bool `json:"userHasRSVPed"`
}

// GetEvent godoc
// @Summary Get a single event
// @Description Returns the event projection. When userId is supplied, the response includes whether that user currently holds an active RSVP.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Param userId query string false "User ID"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	userID := r.URL.Query().Get("userId")

	event, userHasRSVPed, err := c.Events.GetByID(r.Context(), eventID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, eventWithRSVPStatus{Event: event, UserHasRSVPed: userHasRSVPed})
}

// CreateEventRequest is the request body for POST /events/create.
// Category and Location keep their capitalized wire names for frontend compatibility.
type CreateEventRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"Category"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"Location"`
	MaxAttendees int    `json:"maxAttendees"`
}

// Validate implements helpers.Validator.
func (c CreateEventRequest) Validate() []string {
	if strings.TrimSpace(c.Title) == "" ||
		strings.TrimSpace(c.Description) == "" ||
		strings.TrimSpace(c.Category) == "" ||
		strings.TrimSpace(c.Date) == "" ||
		strings.TrimSpace(c.Time) == "" ||
		strings.TrimSpace(c.Location) == "" ||
		c.MaxAttendees <= 0 {
		return []string{"All fields are required"}
	}
	return nil
}

// CreateEvent godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param body body controllers.CreateEventRequest true "Event fields"
// @Success 201 {object} map[string]string
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/create [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	event, err := c.Events.Create(r.Context(), domain.CreateEventParams{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Date:         req.Date,
		Time:         req.Time,
		Location:     req.Location,
		MaxAttendees: req.MaxAttendees,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, "All fields are required")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Event created successfully",
		"eventId": event.ID,
	})
}

// RSVPRequest is the request body for POST /events/rsvp and /events/cancel-rsvp.
type RSVPRequest struct {
	EventID string `json:"eventId"`
	UserID  string `json:"userId"`
}

// Validate implements helpers.Validator.
func (r RSVPRequest) Validate() []string {
	var errs []string
	if r.EventID == "" {
		errs = append(errs, "eventId is required")
	}
	if r.UserID == "" {
		errs = append(errs, "userId is required")
	}
	return errs
}

// RSVP godoc
// @Summary RSVP for an event
// @Description Joins the user to the event. Rejected when the event has already occurred or the user already holds an active RSVP.
// @Tags events
// @Accept json
// @Produce json
// @Param body body controllers.RSVPRequest true "Event and user IDs"
// @Success 200 {object} map[string]string
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/rsvp [post]
func (c *EventController) RSVP(w http.ResponseWriter, r *http.Request) {
	var req RSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	if _, err := c.RSVPs.Join(r.Context(), req.EventID, req.UserID); err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, domain.ErrUserNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrEventAlreadyOccurred):
			helpers.WriteJSONError(w, http.StatusBadRequest, "Event has already occurred. RSVP not allowed.")
		case errors.Is(err, domain.ErrDuplicateRSVP):
			helpers.WriteJSONError(w, http.StatusBadRequest, "You have already RSVP'd for this event!")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to process RSVP")
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "RSVP successful",
		"eventId": req.EventID,
	})
}

// CancelRSVP godoc
// @Summary Cancel an RSVP
// @Description Removes the user's active RSVP. Rejected once the event has started.
// @Tags events
// @Accept json
// @Produce json
// @Param body body controllers.RSVPRequest true "Event and user IDs"
// @Success 200 {object} map[string]string
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/cancel-rsvp [post]
func (c *EventController) CancelRSVP(w http.ResponseWriter, r *http.Request) {
	var req RSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	if _, err := c.RSVPs.Cancel(r.Context(), req.EventID, req.UserID); err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, domain.ErrUserNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrEventAlreadyStarted):
			helpers.WriteJSONError(w, http.StatusBadRequest, "Event has already started. Cancellation not allowed.")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to cancel RSVP")
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "RSVP cancelled successfully",
		"eventId": req.EventID,
	})
}

// RateEventRequest is the request body for POST /events/rate.
type RateEventRequest struct {
	EventID string `json:"eventId"`
	UserID  string `json:"userId"`
	Rating  int64  `json:"rating"`
	Comment string `json:"comment"`
}

// Validate implements helpers.Validator.
func (r RateEventRequest) Validate() []string {
	var errs []string
	if r.EventID == "" {
		errs = append(errs, "eventId is required")
	}
	if r.UserID == "" {
		errs = append(errs, "userId is required")
	}
	return errs
}

// RateEventResponse is the success body for POST /events/rate.
type RateEventResponse struct {
	Message         string   `json:"message"`
	UpdatedRatings  []int64  `json:"updatedRatings"`
	UpdatedComments []string `json:"updatedComments"`
}

// Rate godoc
// @Summary Rate and comment on an event
// @Description Appends a rating (and optional comment). The user must hold an active RSVP for the event.
// @Tags events
// @Accept json
// @Produce json
// @Param body body controllers.RateEventRequest true "Rating fields"
// @Success 200 {object} controllers.RateEventResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/rate [post]
func (c *EventController) Rate(w http.ResponseWriter, r *http.Request) {
	var req RateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	ratings, comments, err := c.Events.Rate(r.Context(), req.EventID, req.UserID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, domain.ErrUserNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrNotAttending):
			helpers.WriteJSONError(w, http.StatusForbidden, "You must RSVP to rate and comment on this event.")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to submit rating and comment")
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, RateEventResponse{
		Message:         "Rating and comment submitted successfully",
		UpdatedRatings:  ratings,
		UpdatedComments: comments,
	})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")

	if err := c.Events.Delete(r.Context(), eventID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}
