package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"giftrequests/internal/config"
	"giftrequests/internal/middleware"
	"giftrequests/internal/models"
	"giftrequests/internal/workflow"
)

// FormHandler serves the gift request form.
type FormHandler struct {
	holder workflow.DraftHolder
	cfg    *config.Config
}

// NewFormHandler creates a new form handler.
func NewFormHandler(holder workflow.DraftHolder, cfg *config.Config) *FormHandler {
	return &FormHandler{holder: holder, cfg: cfg}
}

// Show renders the form, pre-filled from the session's draft when there is one.
func (h *FormHandler) Show(c fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}

	form := workflow.NewForm(h.holder, r)
	if _, err := form.Resume(middleware.DraftKey(c)); err != nil {
		return err
	}

	return h.render(c, form, nil)
}

// Proceed validates the posted form, stores it as the session's draft and
// moves on to the review page. Validation errors re-render the form.
func (h *FormHandler) Proceed(c fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}

	form := workflow.NewForm(h.holder, r)
	for _, name := range models.DraftFields {
		if err := form.SetField(name, c.FormValue(name)); err != nil {
			return err
		}
	}

	draftKey, err := middleware.KeepDraftKey(c)
	if err != nil {
		return err
	}

	if err := form.Proceed(draftKey); err != nil {
		var verr *workflow.ValidationError
		if errors.As(err, &verr) {
			c.Status(fiber.StatusBadRequest)
			return h.render(c, form, verr.Fields)
		}
		return err
	}

	return c.Redirect().Status(fiber.StatusSeeOther).To(withQuery("/review", r))
}

// UpdateField saves a single form field to the session's draft.
func (h *FormHandler) UpdateField(c fiber.Ctx) error {
	r, err := requester(c)
	if err != nil {
		return err
	}

	draftKey, err := middleware.KeepDraftKey(c)
	if err != nil {
		return err
	}

	form := workflow.NewForm(h.holder, r)
	if _, err := form.Resume(draftKey); err != nil {
		return htmxError(c, "Failed to load your draft")
	}

	// HTMX posts the changed input under its own name next to "field".
	name := c.FormValue("field")
	if err := form.SetField(name, c.FormValue(name)); err != nil {
		if errors.Is(err, models.ErrUnknownField) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	if err := form.Save(draftKey); err != nil {
		return htmxError(c, "Failed to save your draft")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FormHandler) render(c fiber.Ctx, form *workflow.Form, fieldErrors map[string]string) error {
	r := form.Requester()
	return c.Render("form", MergeBranding(merge(fiber.Map{
		"Title":            "New Gift Request",
		"Draft":            form.Draft(),
		"Requester":        r,
		"DisplayName":      r.DisplayName(),
		"Durations":        durationOptions(),
		"SelectedDuration": string(form.Draft().GiftDuration),
		"Errors":           fieldErrors,
	}, pageURLs(r)), h.cfg))
}

type durationOption struct {
	Value string
	Label string
}

func durationOptions() []durationOption {
	opts := make([]durationOption, 0, len(models.Durations))
	for _, d := range models.Durations {
		opts = append(opts, durationOption{Value: string(d), Label: d.Label()})
	}
	return opts
}
