package student

import (
	"campus-events/app/models"
	"campus-events/app/routes/auth"
	"campus-events/app/services"

	"github.com/gofiber/fiber/v2"
)

// Handler carries the services the student endpoints need.
type Handler struct {
	Events        *services.EventService
	Registrations *services.RegistrationService
	Teams         *services.TeamService
	Feedback      *services.FeedbackService
	Users         *services.UserService
}

func SetupStudentRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api/student")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleStudent))

	api.Get("/dashboard", h.DashboardAPI)
	api.Get("/events", h.EventsAPI)
	api.Get("/events/:id", h.EventDetailAPI)
	api.Post("/events/:id/register", h.RegisterAPI)
	api.Post("/events/:id/unregister", h.UnregisterAPI)
	api.Get("/my-events", h.MyEventsAPI)
	api.Get("/calendar", h.CalendarAPI)
	api.Post("/events/:id/feedback", h.FeedbackAPI)

	team := api.Group("/team")
	team.Post("/create/:eventId", h.CreateTeamAPI)
	team.Post("/join", h.JoinTeamAPI)
	team.Get("/my-teams", h.MyTeamsAPI)
	team.Post("/submit/:eventId", h.SubmitProjectAPI)
	team.Get("/leaderboard/:eventId", h.LeaderboardAPI)
}
