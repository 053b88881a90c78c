package handlers

import (
	"html"
	"html/template"

	"github.com/gofiber/fiber/v3"

	"giftrequests/internal/middleware"
	"giftrequests/internal/models"
)

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div class="flash flash-error">` + html.EscapeString(message) + `</div>`,
	)
}

// requester returns the identity validated by middleware.RequireRequester.
func requester(c fiber.Ctx) (models.Requester, error) {
	r, ok := middleware.GetRequester(c)
	if !ok {
		return models.Requester{}, fiber.NewError(fiber.StatusBadRequest, "userId is required")
	}
	return r, nil
}

// withQuery appends the requester identity to path so it survives navigation.
func withQuery(path string, r models.Requester) string {
	q := r.Query()
	if q == "" {
		return path
	}
	return path + "?" + q
}

// pageURLs are the navigation links every page needs, already carrying the
// requester identity.
func pageURLs(r models.Requester) fiber.Map {
	return fiber.Map{
		"FormURL":        template.URL(withQuery("/", r)),
		"ReviewURL":      template.URL(withQuery("/review", r)),
		"SubmitURL":      template.URL(withQuery("/review/submit", r)),
		"EditURL":        template.URL(withQuery("/review/edit", r)),
		"FieldURL":       template.URL(withQuery("/draft/field", r)),
		"SubmissionsURL": template.URL(withQuery("/my-submissions", r)),
	}
}

func merge(dst, src fiber.Map) fiber.Map {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
