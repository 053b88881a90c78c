package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"
)

// Session keys
const (
	SessionKeyIsAdmin  = "is_admin"
	SessionKeyDraftKey = "draft_key"
)

// ErrNoSession is returned when the session middleware did not run.
var ErrNoSession = errors.New("session not available")

// DraftKey returns the key the session's draft is stored under, or "" when
// the session has no draft yet. The key lives in the session data, so it
// survives session id rotation.
func DraftKey(c fiber.Ctx) string {
	sess := session.FromContext(c)
	if sess == nil {
		return ""
	}
	key, _ := sess.Get(SessionKeyDraftKey).(string)
	return key
}

// KeepDraftKey returns the session's draft key, assigning one on first use.
// Setting it also makes the session issue its cookie.
func KeepDraftKey(c fiber.Ctx) (string, error) {
	sess := session.FromContext(c)
	if sess == nil {
		return "", ErrNoSession
	}
	if key, ok := sess.Get(SessionKeyDraftKey).(string); ok && key != "" {
		return key, nil
	}
	key := uuid.NewString()
	sess.Set(SessionKeyDraftKey, key)
	return key, nil
}
