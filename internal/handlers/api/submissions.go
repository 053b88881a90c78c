package api

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"giftrequests/internal/models"
	"giftrequests/internal/workflow"
)

// SubmissionsHandler creates and lists gift requests via JSON API.
type SubmissionsHandler struct {
	intake  *workflow.Intake
	listing *workflow.Listing
}

// NewSubmissionsHandler creates a new API submissions handler.
func NewSubmissionsHandler(intake *workflow.Intake, listing *workflow.Listing) *SubmissionsHandler {
	return &SubmissionsHandler{intake: intake, listing: listing}
}

// List returns the submissions of the user named by the userId query
// parameter, newest first. No submissions is an empty array.
func (h *SubmissionsHandler) List(c fiber.Ctx) error {
	userID := c.Query(models.ParamUserID)
	if userID == "" {
		return jsonError(c, fiber.StatusBadRequest, "userId is required")
	}

	subs, err := h.listing.Submissions(c.Context(), userID)
	if err != nil {
		slog.Error("failed to list submissions", "user_id", userID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch submissions")
	}

	return jsonSuccess(c, subs)
}

// Create stores a complete gift request in one step.
func (h *SubmissionsHandler) Create(c fiber.Ctx) error {
	var body models.Draft
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	sub, err := h.intake.Create(c.Context(), body)
	if err != nil {
		var verr *workflow.ValidationError
		if errors.As(err, &verr) {
			return jsonValidationError(c, verr.Fields)
		}
		slog.Error("failed to create submission", "user_id", body.UserID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to create submission")
	}

	return jsonSuccess(c, sub)
}
