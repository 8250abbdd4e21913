package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"festivalhub/internal/delivery/http/helpers"
	"festivalhub/internal/domain"
)

type AdminController struct {
	Logger *slog.Logger
	Stats  domain.StatsService
}

func NewAdminController(logger *slog.Logger, stats domain.StatsService) *AdminController {
	return &AdminController{Logger: logger, Stats: stats}
}

// DashboardStats godoc
// @Summary Dashboard summary statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.DashboardStats
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/statistics [get]
func (c *AdminController) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Stats.DashboardStats(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, stats)
}

// EventCharts godoc
// @Summary Site-wide chart distributions
// @Description Age, gender, and per-session attendance distributions across all registered users and events.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.ChartData
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/charts [get]
func (c *AdminController) EventCharts(w http.ResponseWriter, r *http.Request) {
	charts, err := c.Stats.EventCharts(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch chart data")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, charts)
}

// EventStats godoc
// @Summary Per-event summary statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} domain.EventStats
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/statistics/{eventID} [get]
func (c *AdminController) EventStats(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")

	stats, err := c.Stats.EventStats(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch event statistics")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, stats)
}

// EventChartsByID godoc
// @Summary Per-event chart distributions
// @Description Age and gender distributions restricted to users with an active RSVP for the event.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} domain.EventChartData
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/charts/{eventID} [get]
func (c *AdminController) EventChartsByID(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")

	charts, err := c.Stats.EventChartsByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch event chart data")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, charts)
}
