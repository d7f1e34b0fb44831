package student

import (
	"fmt"

	"campus-events/app/helpers"
	"campus-events/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateTeamAPI(c *fiber.Ctx) error {
	type CreateTeamRequest struct {
		Name string `json:"team_name"`
	}
	var req CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}

	team, err := h.Teams.CreateTeam(auth.UserID(c), c.Params("eventId"), req.Name)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonCreated(c,
		fmt.Sprintf("Team %q created successfully! Team code: %s", team.Name, team.TeamCode), team)
}

func (h *Handler) JoinTeamAPI(c *fiber.Ctx) error {
	type JoinTeamRequest struct {
		TeamCode string `json:"team_code"`
	}
	var req JoinTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}

	team, err := h.Teams.JoinTeam(auth.UserID(c), req.TeamCode)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, fmt.Sprintf("Successfully joined team %q", team.Name), team)
}

func (h *Handler) MyTeamsAPI(c *fiber.Ctx) error {
	teams, err := h.Teams.ForUser(auth.UserID(c))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "My teams", teams)
}

func (h *Handler) SubmitProjectAPI(c *fiber.Ctx) error {
	type SubmitRequest struct {
		SubmissionType string `json:"submission_type"`
		Content        string `json:"content"`
		Description    string `json:"description"`
	}
	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}

	sub, err := h.Teams.Submit(auth.UserID(c), c.Params("eventId"),
		req.SubmissionType, req.Content, req.Description)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Submission saved successfully", sub)
}

func (h *Handler) LeaderboardAPI(c *fiber.Ctx) error {
	entries, err := h.Teams.Leaderboard(c.Params("eventId"))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Leaderboard", entries)
}
