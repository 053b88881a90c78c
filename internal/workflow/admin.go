package workflow

import "crypto/subtle"

// AdminGate checks a shared admin token against the configured secret.
type AdminGate struct {
	secret []byte
}

// NewAdminGate creates a gate for secret. An empty secret disables the gate:
// no token will ever match.
func NewAdminGate(secret string) *AdminGate {
	return &AdminGate{secret: []byte(secret)}
}

// Enabled reports whether a secret is configured.
func (g *AdminGate) Enabled() bool {
	return len(g.secret) > 0
}

// Verify returns ErrTokenRequired for an empty token, ErrInvalidToken for a
// mismatch, and nil when token equals the secret exactly.
func (g *AdminGate) Verify(token string) error {
	if token == "" {
		return ErrTokenRequired
	}
	if !g.Enabled() || subtle.ConstantTimeCompare([]byte(token), g.secret) != 1 {
		return ErrInvalidToken
	}
	return nil
}
