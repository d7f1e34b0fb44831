package organizer

import (
	"campus-events/app/helpers"
	"campus-events/app/routes/auth"
	"campus-events/app/services"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) TeamSubmissionsAPI(c *fiber.Ctx) error {
	subs, err := h.Teams.SubmissionsForEvent(auth.UserID(c), c.Params("id"))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Submissions", subs)
}

func (h *Handler) EvaluateSubmissionAPI(c *fiber.Ctx) error {
	var in services.EvaluateInput
	if err := c.BodyParser(&in); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := h.Teams.Evaluate(auth.UserID(c), c.Params("id"), in); err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Submission evaluated successfully", nil)
}

func (h *Handler) AnnounceResultsAPI(c *fiber.Ctx) error {
	if err := h.Events.AnnounceResults(auth.UserID(c), c.Params("id")); err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JsonOK(c, "Results announced successfully", nil)
}
