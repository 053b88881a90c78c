// Package drafts holds in-progress gift requests, one per browser session,
// until they are submitted.
package drafts

import (
	"encoding/json"
	"fmt"
	"time"

	"giftrequests/internal/models"
)

// Storage is the key-value capability the holder needs. Every fiber.Storage
// implementation (Redis included) satisfies it, as does MemoryStore.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
}

const keyPrefix = "draft:"

// Holder reads and writes the single current draft for a session.
type Holder struct {
	storage Storage
	ttl     time.Duration
}

// NewHolder creates a holder. A zero ttl keeps drafts until cleared.
func NewHolder(storage Storage, ttl time.Duration) *Holder {
	return &Holder{storage: storage, ttl: ttl}
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}

// Get returns the stored draft and whether one exists.
func (h *Holder) Get(sessionID string) (models.Draft, bool, error) {
	var d models.Draft
	if sessionID == "" {
		return d, false, nil
	}

	data, err := h.storage.Get(key(sessionID))
	if err != nil {
		return d, false, fmt.Errorf("failed to read draft: %w", err)
	}
	if len(data) == 0 {
		return d, false, nil
	}

	if err := json.Unmarshal(data, &d); err != nil {
		return models.Draft{}, false, fmt.Errorf("failed to decode draft: %w", err)
	}
	return d, true, nil
}

// Save overwrites any existing draft for the session.
func (h *Holder) Save(sessionID string, d models.Draft) error {
	if sessionID == "" {
		return fmt.Errorf("failed to save draft: empty session id")
	}

	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := h.storage.Set(key(sessionID), data, h.ttl); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Clear removes the session's draft. Clearing a missing draft is not an error.
func (h *Holder) Clear(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := h.storage.Delete(key(sessionID)); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}
