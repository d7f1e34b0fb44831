package auth

import (
	"errors"
	"time"

	"campus-events/app/helpers"
	"campus-events/app/models"
	"campus-events/app/services"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}

	user, err := h.Users.ByEmail(req.Email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helpers.ServiceError(c, err)
	}

	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Account is deactivated")
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := GenerateJWT(user)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helpers.JsonOK(c, "Login successful", fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (h *Handler) LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return helpers.JsonOK(c, "Logged out", nil)
}

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Department      string `json:"department"`
}

func (h *Handler) RegisterStudentAPI(c *fiber.Ctx) error {
	return h.register(c, models.RoleStudent)
}

func (h *Handler) RegisterOrganizerAPI(c *fiber.Ctx) error {
	return h.register(c, models.RoleOrganizer)
}

func (h *Handler) register(c *fiber.Ctx, role models.Role) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}

	if req.ConfirmPassword != "" && req.Password != req.ConfirmPassword {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Passwords do not match")
	}

	if len(req.Password) < 8 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Password must be at least 8 characters")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user, err := h.Users.Create(req.Username, req.Email, hash, role, req.Department)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JsonCreated(c, "Registration successful, please login", user)
}

func (h *Handler) MeAPI(c *fiber.Ctx) error {
	user, err := h.Users.ByID(UserID(c))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Profile", user)
}

func (h *Handler) ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}

	user, err := h.Users.ByID(UserID(c))
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Current password is incorrect")
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := h.Users.UpdatePassword(user.ID, hash); err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JsonOK(c, "Password changed successfully", nil)
}
