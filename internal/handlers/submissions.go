package handlers

import (
	"github.com/gofiber/fiber/v3"

	"giftrequests/internal/config"
	"giftrequests/internal/workflow"
)

// SubmissionsHandler lists the requester's gift requests.
type SubmissionsHandler struct {
	listing *workflow.Listing
	cfg     *config.Config
}

// NewSubmissionsHandler creates a new submissions handler.
func NewSubmissionsHandler(listing *workflow.Listing, cfg *config.Config) *SubmissionsHandler {
	return &SubmissionsHandler{listing: listing, cfg: cfg}
}

// List renders the requester's submissions, newest first.
func (h *SubmissionsHandler) List(c fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}

	rows, err := h.listing.Rows(c.Context(), r.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load your gift requests")
	}

	return c.Render("my_submissions", MergeBranding(merge(fiber.Map{
		"Title":       "My Gift Requests",
		"Rows":        rows,
		"Empty":       len(rows) == 0,
		"Submitted":   c.Query("submitted") == "1",
		"DisplayName": r.DisplayName(),
	}, pageURLs(r)), h.cfg))
}
