package admin

import (
	"campus-events/app/models"
	"campus-events/app/routes/auth"
	"campus-events/app/services"

	"github.com/gofiber/fiber/v2"
)

// Handler carries the services the admin endpoints need.
type Handler struct {
	Events  *services.EventService
	Users   *services.UserService
	Reports *services.ReportService
}

func SetupAdminRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api/admin")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin))

	api.Get("/dashboard", h.DashboardAPI)
	api.Get("/events", h.EventsForApprovalAPI)
	api.Post("/events/:id/approve", h.ApproveEventAPI)
	api.Post("/events/:id/reject", h.RejectEventAPI)
	api.Get("/users", h.UsersAPI)
	api.Post("/users", h.CreateOrganizerAPI)
	api.Post("/users/:id/toggle-status", h.ToggleUserStatusAPI)
	api.Get("/reports", h.ReportsAPI)
}
