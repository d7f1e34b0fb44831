package admin

import (
	"campus-events/app/helpers"
	"campus-events/app/models"
	"campus-events/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) DashboardAPI(c *fiber.Ctx) error {
	stats, err := h.Reports.Dashboard()
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Dashboard", stats)
}

func (h *Handler) EventsForApprovalAPI(c *fiber.Ctx) error {
	events, err := h.Events.AllForReview()
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Events", events)
}

func (h *Handler) ApproveEventAPI(c *fiber.Ctx) error {
	if err := h.Events.Approve(c.Params("id")); err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Event approved successfully", nil)
}

func (h *Handler) RejectEventAPI(c *fiber.Ctx) error {
	type RejectRequest struct {
		Reason string `json:"reason"`
	}
	var req RejectRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := h.Events.Reject(c.Params("id"), req.Reason); err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Event rejected successfully", nil)
}

func (h *Handler) UsersAPI(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Users", users)
}

func (h *Handler) CreateOrganizerAPI(c *fiber.Ctx) error {
	type CreateOrganizerRequest struct {
		Username   string `json:"username"`
		Email      string `json:"email"`
		Password   string `json:"password"`
		Department string `json:"department"`
	}
	var req CreateOrganizerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if len(req.Password) < 8 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user, err := h.Users.Create(req.Username, req.Email, hash, models.RoleOrganizer, req.Department)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonCreated(c, "Organizer created successfully", user)
}

func (h *Handler) ToggleUserStatusAPI(c *fiber.Ctx) error {
	active, err := h.Users.ToggleActive(c.Params("id"))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	msg := "User deactivated successfully"
	if active {
		msg = "User activated successfully"
	}
	return helpers.JsonOK(c, msg, fiber.Map{"is_active": active})
}

func (h *Handler) ReportsAPI(c *fiber.Ctx) error {
	reports, err := h.Reports.Reports()
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Reports", reports)
}
