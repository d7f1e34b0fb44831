package organizer

import (
	"strconv"
	"time"

	"campus-events/app/helpers"
	"campus-events/app/routes/auth"
	"campus-events/app/services"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) DashboardAPI(c *fiber.Ctx) error {
	stats, err := h.Reports.OrganizerDashboard(auth.UserID(c))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Dashboard", stats)
}

func (h *Handler) ManageEventsAPI(c *fiber.Ctx) error {
	events, err := h.Events.ByOrganizer(auth.UserID(c))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Events", events)
}

// CreateEventAPI accepts a multipart form so the event image can be uploaded
// together with the fields. Dates use the HTML datetime-local format.
func (h *Handler) CreateEventAPI(c *fiber.Ctx) error {
	in := services.CreateEventInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Venue:       c.FormValue("venue"),
		Category:    c.FormValue("category"),
		IsPaid:      c.FormValue("is_paid") == "true",
	}

	var err error
	if in.StartDate, err = parseFormTime(c.FormValue("start_date")); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid start date")
	}
	if in.EndDate, err = parseFormTime(c.FormValue("end_date")); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid end date")
	}
	if v := c.FormValue("max_attendees"); v != "" {
		if in.MaxAttendees, err = strconv.Atoi(v); err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid max attendees")
		}
	}
	if v := c.FormValue("price"); v != "" {
		if in.Price, err = strconv.ParseFloat(v, 64); err != nil {
			in.Price = 0
		}
	}
	if c.FormValue("participation_type") == "team" {
		in.IsCompetition = true
		if v := c.FormValue("team_size_min"); v != "" {
			in.TeamSizeMin, _ = strconv.Atoi(v)
		}
		if v := c.FormValue("team_size_max"); v != "" {
			in.TeamSizeMax, _ = strconv.Atoi(v)
		}
	}

	if path, err := h.saveEventImage(c); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Failed to store event image")
	} else if path != "" {
		in.ImagePath = path
	}

	event, err := h.Events.Create(auth.UserID(c), in)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonCreated(c, "Event created successfully and submitted for approval", event)
}

// parseFormTime accepts datetime-local form values and RFC 3339 timestamps.
func parseFormTime(v string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02T15:04", v, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

func (h *Handler) EventAnalyticsAPI(c *fiber.Ctx) error {
	analytics, err := h.Reports.EventAnalytics(auth.UserID(c), c.Params("id"))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Analytics", analytics)
}

func (h *Handler) MarkAttendanceAPI(c *fiber.Ctx) error {
	attended, err := h.Registrations.MarkAttendance(auth.UserID(c), c.Params("id"), c.Params("regId"))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	msg := "Participant marked as not attended"
	if attended {
		msg = "Participant marked as attended"
	}
	return helpers.JsonOK(c, msg, fiber.Map{"attended": attended})
}

func (h *Handler) CancelEventAPI(c *fiber.Ctx) error {
	notified, err := h.Events.Cancel(auth.UserID(c), c.Params("id"))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Event cancelled successfully", fiber.Map{"participants_notified": notified})
}

func (h *Handler) DeleteEventAPI(c *fiber.Ctx) error {
	if err := h.Events.Delete(auth.UserID(c), c.Params("id")); err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Event deleted successfully", nil)
}

func (h *Handler) ForceDeleteEventAPI(c *fiber.Ctx) error {
	notified, err := h.Events.ForceDelete(auth.UserID(c), c.Params("id"))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Event permanently deleted", fiber.Map{"participants_notified": notified})
}
