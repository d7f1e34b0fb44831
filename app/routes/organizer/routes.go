package organizer

import (
	"campus-events/app/models"
	"campus-events/app/routes/auth"
	"campus-events/app/services"

	"github.com/gofiber/fiber/v2"
)

// Handler carries the services the organizer endpoints need.
type Handler struct {
	Events        *services.EventService
	Registrations *services.RegistrationService
	Teams         *services.TeamService
	Reports       *services.ReportService
	UploadDir     string
}

func SetupOrganizerRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api/organizer")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleOrganizer))

	api.Get("/dashboard", h.DashboardAPI)
	api.Get("/events", h.ManageEventsAPI)
	api.Post("/events", h.CreateEventAPI)
	api.Get("/events/:id/analytics", h.EventAnalyticsAPI)
	api.Post("/events/:id/attendance/:regId", h.MarkAttendanceAPI)
	api.Post("/events/:id/cancel", h.CancelEventAPI)
	api.Delete("/events/:id", h.DeleteEventAPI)
	api.Delete("/events/:id/force", h.ForceDeleteEventAPI)

	api.Get("/events/:id/submissions", h.TeamSubmissionsAPI)
	api.Post("/submissions/:id/evaluate", h.EvaluateSubmissionAPI)
	api.Post("/events/:id/announce-results", h.AnnounceResultsAPI)
}
