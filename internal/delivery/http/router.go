package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"festivalhub/internal/delivery/http/controllers"
	"festivalhub/internal/delivery/http/middleware"
	"festivalhub/internal/domain"
)

// NewRouter builds the HTTP mux with all routes registered. Admin routes are
// wrapped with bearer token auth; everything else is public.
func NewRouter(
	eventController *controllers.EventController,
	userController *controllers.UserController,
	adminController *controllers.AdminController,
	contactController *controllers.ContactController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("POST /events/create", eventController.CreateEvent)
	mux.HandleFunc("POST /events/rsvp", eventController.RSVP)
	mux.HandleFunc("POST /events/cancel-rsvp", eventController.CancelRSVP)
	mux.HandleFunc("POST /events/rate", eventController.Rate)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("DELETE /events/{eventID}", eventController.DeleteEvent)

	mux.HandleFunc("POST /users/register", userController.Register)
	mux.HandleFunc("GET /users/profile/{uid}", userController.GetProfile)

	mux.HandleFunc("GET /admin/stats", auth(adminController.DashboardStats))
	mux.HandleFunc("GET /admin/statistics", auth(adminController.DashboardStats))
	mux.HandleFunc("GET /admin/statistics/{eventID}", auth(adminController.EventStats))
	mux.HandleFunc("GET /admin/charts", auth(adminController.EventCharts))
	mux.HandleFunc("GET /admin/charts/{eventID}", auth(adminController.EventChartsByID))

	mux.HandleFunc("POST /contact/send-email", contactController.SendContactEmail)
	mux.HandleFunc("POST /contact/send-rsvp-email", contactController.SendRSVPConfirmationEmail)
	mux.HandleFunc("POST /contact/send-rsvp-cancel-email", contactController.SendRSVPCancellationEmail)

	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
