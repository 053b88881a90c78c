package models

import "errors"

// ErrUnknownField is returned by Draft.SetField for a field name the form
// does not have.
var ErrUnknownField = errors.New("unknown draft field")

// Draft field names, matching the form input names.
const (
	FieldRecipientUsername = "recipientUsername"
	FieldRecipientName     = "recipientName"
	FieldGiftDuration      = "giftDuration"
	FieldMessage           = "message"
)

// DraftFields lists the editable fields in form order.
var DraftFields = []string{FieldRecipientUsername, FieldRecipientName, FieldGiftDuration, FieldMessage}

// Draft is an in-progress gift request. The embedded Requester is flattened
// into the same JSON object when the draft is stored.
type Draft struct {
	RecipientUsername string       `json:"recipientUsername"`
	RecipientName     string       `json:"recipientName"`
	GiftDuration      GiftDuration `json:"giftDuration"`
	Message           string       `json:"message"`
	Requester
}

// SetField replaces exactly one editable field.
func (d *Draft) SetField(name, value string) error {
	switch name {
	case FieldRecipientUsername:
		d.RecipientUsername = value
	case FieldRecipientName:
		d.RecipientName = value
	case FieldGiftDuration:
		d.GiftDuration = GiftDuration(value)
	case FieldMessage:
		d.Message = value
	default:
		return ErrUnknownField
	}
	return nil
}

// MessageOrDash renders an empty message as "-".
func (d Draft) MessageOrDash() string {
	if d.Message == "" {
		return "-"
	}
	return d.Message
}

// ToSubmission builds the record to persist. An empty message becomes NULL.
func (d Draft) ToSubmission() *Submission {
	sub := &Submission{
		UserID:            d.UserID,
		UserName:          d.UserName,
		UserEmail:         d.UserEmail,
		CompanyName:       d.CompanyName,
		Department:        d.Department,
		RecipientUsername: d.RecipientUsername,
		RecipientName:     d.RecipientName,
		GiftDuration:      d.GiftDuration,
	}
	if d.Message != "" {
		msg := d.Message
		sub.Message = &msg
	}
	return sub
}
