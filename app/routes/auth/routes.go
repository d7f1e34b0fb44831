package auth

import (
	"strings"

	"campus-events/app/models"
	"campus-events/app/services"

	"github.com/gofiber/fiber/v2"
)

// Handler carries the services the auth endpoints need.
type Handler struct {
	Users *services.UserService
}

func SetupAuthRoutes(app *fiber.App, h *Handler) {
	group := app.Group("/auth")

	// Public routes
	group.Post("/login", h.LoginAPI)
	group.Post("/logout", h.LogoutAPI)
	group.Post("/register", h.RegisterStudentAPI)
	group.Post("/register-organizer", h.RegisterOrganizerAPI)

	// Protected routes
	group.Use(AuthMiddleware)
	group.Get("/me", h.MeAPI)
	group.Post("/change-password", h.ChangePasswordAPI)
}

// AuthMiddleware validates the JWT (cookie or bearer header) and sets the
// authenticated user's id, username and role on the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("username", claims.Username)
	c.Locals("user_email", claims.Email)
	c.Locals("user_role", claims.Role)

	return c.Next()
}

// RoleMiddleware lets the request through only when the authenticated user
// holds one of the allowed roles.
func RoleMiddleware(allowedRoles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(models.Role)
		if ok {
			for _, allowed := range allowedRoles {
				if role == allowed {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
}

// UserID returns the authenticated user's id from the request context.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}
