package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"

	"giftrequests/internal/db"
	"giftrequests/internal/metrics"
	"giftrequests/internal/middleware"
	"giftrequests/internal/models"
	"giftrequests/internal/workflow"
)

// AdminHandler authenticates admins and moderates submissions via JSON API.
type AdminHandler struct {
	gate       *workflow.AdminGate
	moderation *workflow.Moderation
}

// NewAdminHandler creates a new API admin handler.
func NewAdminHandler(gate *workflow.AdminGate, moderation *workflow.Moderation) *AdminHandler {
	return &AdminHandler{gate: gate, moderation: moderation}
}

// Authenticate checks the posted admin token and marks the session as admin.
func (h *AdminHandler) Authenticate(c fiber.Ctx) error {
	var body struct {
		AdminToken string `json:"adminToken"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.gate.Verify(body.AdminToken); err != nil {
		if errors.Is(err, workflow.ErrTokenRequired) {
			metrics.RecordAdminAuth(metrics.OutcomeMissing)
			return jsonError(c, fiber.StatusBadRequest, "Admin token is required")
		}
		metrics.RecordAdminAuth(metrics.OutcomeMismatch)
		slog.Warn("admin authentication failed", "ip", c.IP())
		return jsonError(c, fiber.StatusUnauthorized, "Invalid admin token")
	}

	sess := session.FromContext(c)
	if sess == nil {
		return jsonError(c, fiber.StatusInternalServerError, "Authentication failed")
	}
	if err := sess.Regenerate(); err != nil {
		slog.Error("failed to regenerate admin session", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Authentication failed")
	}
	sess.Set(middleware.SessionKeyIsAdmin, true)

	metrics.RecordAdminAuth(metrics.OutcomeSuccess)
	slog.Info("admin authenticated", "ip", c.IP())
	return jsonSuccess(c, fiber.Map{"authenticated": true})
}

// Logout drops admin rights and rotates the session id. Other session data,
// including the draft key, is kept.
func (h *AdminHandler) Logout(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess != nil {
		sess.Delete(middleware.SessionKeyIsAdmin)
		if err := sess.Regenerate(); err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "failed to end session")
		}
	}
	return jsonSuccess(c, fiber.Map{"authenticated": false})
}

// List returns all submissions, optionally filtered by ?status=.
func (h *AdminHandler) List(c fiber.Ctx) error {
	subs, err := h.moderation.List(c.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, workflow.ErrInvalidStatus) {
			return jsonError(c, fiber.StatusBadRequest, "invalid status")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch submissions")
	}
	return jsonSuccess(c, subs)
}

// Approve approves a pending submission.
func (h *AdminHandler) Approve(c fiber.Ctx) error {
	return h.decide(c, h.moderation.Approve)
}

// Reject rejects a pending submission.
func (h *AdminHandler) Reject(c fiber.Ctx) error {
	return h.decide(c, h.moderation.Reject)
}

func (h *AdminHandler) decide(c fiber.Ctx, fn func(ctx context.Context, id uuid.UUID) (*models.Submission, error)) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}

	sub, err := fn(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrSubmissionNotFound) {
			return jsonError(c, fiber.StatusNotFound, "submission not found or already processed")
		}
		slog.Error("failed to update submission status", "submission_id", id, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to update submission")
	}
	return jsonSuccess(c, sub)
}
