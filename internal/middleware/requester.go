package middleware

import (
	"github.com/gofiber/fiber/v3"

	"giftrequests/internal/models"
	"giftrequests/internal/validation"
)

const requesterKey = "requester"

// RequireRequester reads the requester identity from the query string,
// validates it once, and stores it in c.Locals for the handlers.
func RequireRequester(c fiber.Ctx) error {
	r := models.Requester{
		UserID:      c.Query(models.ParamUserID),
		UserName:    c.Query(models.ParamUserName),
		UserEmail:   c.Query(models.ParamUserEmail),
		CompanyName: c.Query(models.ParamCompanyName),
		Department:  c.Query(models.ParamDepartment),
	}
	validation.NormalizeRequester(&r)

	if ok, msg := validation.ValidateRequester(r); !ok {
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	c.Locals(requesterKey, r)
	return c.Next()
}

// GetRequester returns the identity stored by RequireRequester.
func GetRequester(c fiber.Ctx) (models.Requester, bool) {
	r, ok := c.Locals(requesterKey).(models.Requester)
	return r, ok
}
