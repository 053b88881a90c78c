package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"giftrequests/internal/config"
	"giftrequests/internal/metrics"
	"giftrequests/internal/middleware"
	"giftrequests/internal/models"
	"giftrequests/internal/workflow"
)

// ReviewHandler serves the read-only review step and the final submit.
type ReviewHandler struct {
	review *workflow.Review
	cfg    *config.Config
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(review *workflow.Review, cfg *config.Config) *ReviewHandler {
	return &ReviewHandler{review: review, cfg: cfg}
}

// Show renders the stored draft read-only. A missing draft renders empty.
func (h *ReviewHandler) Show(c fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}

	draftKey := middleware.DraftKey(c)
	draft, found, err := h.review.Load(draftKey)
	if err != nil {
		return err
	}

	return h.render(c, r, draft, found, h.review.Busy(draftKey), "")
}

// Submit creates the submission from the stored draft and redirects to the
// listing. Failures re-render the review page and keep the draft.
func (h *ReviewHandler) Submit(c fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}

	draftKey := middleware.DraftKey(c)
	sub, shared, err := h.review.Submit(c.Context(), draftKey)
	if err == nil {
		if shared {
			metrics.RecordSubmit(metrics.OutcomeShared)
		} else {
			metrics.RecordSubmit(metrics.OutcomeCreated)
		}
		slog.Debug("review submitted", "submission_id", sub.ID, "shared", shared)
		return c.Redirect().Status(fiber.StatusSeeOther).To(withQuery("/my-submissions", r) + submittedFlag(r))
	}

	var (
		status  int
		message string
		verr    *workflow.ValidationError
	)
	switch {
	case errors.Is(err, workflow.ErrNoDraft):
		metrics.RecordSubmit(metrics.OutcomeNoDraft)
		status, message = fiber.StatusBadRequest, "There is no gift request to submit. Please fill in the form first."
	case errors.As(err, &verr):
		metrics.RecordSubmit(metrics.OutcomeInvalid)
		status, message = fiber.StatusBadRequest, "Your gift request is incomplete. Please edit it and try again."
	default:
		metrics.RecordSubmit(metrics.OutcomeFailed)
		slog.Error("failed to submit gift request", "user_id", r.UserID, "error", err)
		status, message = fiber.StatusInternalServerError, "We could not submit your gift request. Please try again."
	}

	draft, found, loadErr := h.review.Load(draftKey)
	if loadErr != nil {
		return loadErr
	}
	c.Status(status)
	return h.render(c, r, draft, found, false, message)
}

// Edit returns to the form without touching the draft.
func (h *ReviewHandler) Edit(c fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	return c.Redirect().Status(fiber.StatusSeeOther).To(withQuery("/", r))
}

func (h *ReviewHandler) render(c fiber.Ctx, r models.Requester, draft models.Draft, found, busy bool, flash string) error {
	return c.Render("review", MergeBranding(merge(fiber.Map{
		"Title":       "Review Gift Request",
		"Draft":       draft,
		"Found":       found,
		"Busy":        busy,
		"Error":       flash,
		"Duration":    draft.GiftDuration.Label(),
		"Message":     draft.MessageOrDash(),
		"Requester":   r,
		"DisplayName": r.DisplayName(),
		"Company":     models.OrNA(r.CompanyName),
		"Department":  models.OrNA(r.Department),
	}, pageURLs(r)), h.cfg))
}

func submittedFlag(r models.Requester) string {
	if r.Query() == "" {
		return "?submitted=1"
	}
	return "&submitted=1"
}
