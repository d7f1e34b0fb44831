package student

import (
	"campus-events/app/helpers"
	"campus-events/app/models"
	"campus-events/app/routes/auth"
	"campus-events/app/services"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) DashboardAPI(c *fiber.Ctx) error {
	upcoming, err := h.Events.Upcoming(6)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	registered, err := h.Registrations.ForUser(auth.UserID(c))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Dashboard", fiber.Map{
		"upcoming_events": upcoming,
		"registrations":   registered,
	})
}

func (h *Handler) EventsAPI(c *fiber.Ctx) error {
	filter := services.EventFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Date:     c.Query("date"),
	}
	events, err := h.Events.Approved(filter)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	categories, err := h.Events.Categories()
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Events", fiber.Map{
		"events":     events,
		"categories": categories,
	})
}

func (h *Handler) EventDetailAPI(c *fiber.Ctx) error {
	eventID := c.Params("id")
	event, err := h.Events.Get(eventID)
	if err != nil || event.Status != models.EventApproved {
		return helpers.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	userID := auth.UserID(c)
	registration, isRegistered := h.Registrations.IsRegistered(userID, eventID)

	organizer, err := h.Users.ByID(event.OrganizerID)
	if err != nil {
		organizer = nil
	}

	feedback, err := h.Feedback.ForEvent(eventID)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	teams, err := h.Teams.ForUser(userID)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JsonOK(c, "Event", fiber.Map{
		"event":         event,
		"organizer":     organizer,
		"is_registered": isRegistered,
		"registration":  registration,
		"feedback":      feedback,
		"user_teams":    teams,
	})
}

func (h *Handler) RegisterAPI(c *fiber.Ctx) error {
	if err := h.Registrations.Register(auth.UserID(c), c.Params("id")); err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Successfully registered for the event", nil)
}

func (h *Handler) UnregisterAPI(c *fiber.Ctx) error {
	if err := h.Registrations.Unregister(auth.UserID(c), c.Params("id")); err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Successfully unregistered from the event", nil)
}

func (h *Handler) MyEventsAPI(c *fiber.Ctx) error {
	registered, err := h.Registrations.ForUser(auth.UserID(c))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "My events", registered)
}

func (h *Handler) CalendarAPI(c *fiber.Ctx) error {
	events, err := h.Events.Approved(services.EventFilter{})
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Calendar", events)
}

func (h *Handler) FeedbackAPI(c *fiber.Ctx) error {
	type FeedbackRequest struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	var req FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}

	fb, err := h.Feedback.Submit(auth.UserID(c), c.Params("id"), req.Rating, req.Comment)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonCreated(c, "Thank you for your feedback", fb)
}
