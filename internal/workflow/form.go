package workflow

import (
	"fmt"

	"giftrequests/internal/models"
	"giftrequests/internal/validation"
)

// Form is the editable state of one gift request form. The requester is
// fixed when the form is created.
type Form struct {
	holder    DraftHolder
	requester models.Requester
	draft     models.Draft
}

// NewForm creates an empty form for the requester.
func NewForm(holder DraftHolder, requester models.Requester) *Form {
	return &Form{
		holder:    holder,
		requester: requester,
		draft:     models.Draft{Requester: requester},
	}
}

// Resume loads the recipient fields of an existing draft for the session so
// the user can continue editing. The requester stays the one the form was
// created with.
func (f *Form) Resume(sessionID string) (bool, error) {
	d, ok, err := f.holder.Get(sessionID)
	if err != nil || !ok {
		return false, err
	}
	d.Requester = f.requester
	f.draft = d
	return true, nil
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() models.Draft {
	return f.draft
}

// Requester returns the identity the form was created with.
func (f *Form) Requester() models.Requester {
	return f.requester
}

// SetField replaces one field and leaves the others untouched.
func (f *Form) SetField(name, value string) error {
	if err := f.draft.SetField(name, value); err != nil {
		return fmt.Errorf("%w: %q", err, name)
	}
	return nil
}

// Save writes the draft as is, without validation.
func (f *Form) Save(sessionID string) error {
	f.draft.Requester = f.requester
	return f.holder.Save(sessionID, f.draft)
}

// Proceed validates the required fields and, when they pass, writes the
// draft merged with the requester to the holder, replacing any earlier
// draft for the session.
func (f *Form) Proceed(sessionID string) error {
	validation.Normalize(&f.draft)
	if errs := validation.ValidateDraft(f.draft); errs != nil {
		return &ValidationError{Fields: errs}
	}
	return f.Save(sessionID)
}
