package validation

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"giftrequests/internal/models"
)

// Field length limits.
const (
	MaxUsernameLength = 100
	MaxNameLength     = 200
	MaxMessageLength  = 1000
	MaxIdentityLength = 200
)

// UserIDPattern defines the accepted requester id format.
var UserIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._@:-]+$`)

// Normalize trims surrounding whitespace from the identifier fields. The
// message is kept as typed.
func Normalize(d *models.Draft) {
	d.RecipientUsername = strings.TrimSpace(d.RecipientUsername)
	d.RecipientName = strings.TrimSpace(d.RecipientName)
	d.GiftDuration = models.GiftDuration(strings.TrimSpace(string(d.GiftDuration)))
	NormalizeRequester(&d.Requester)
}

// NormalizeRequester trims surrounding whitespace from the identity fields.
func NormalizeRequester(r *models.Requester) {
	r.UserID = strings.TrimSpace(r.UserID)
	r.UserName = strings.TrimSpace(r.UserName)
	r.UserEmail = strings.TrimSpace(r.UserEmail)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.Department = strings.TrimSpace(r.Department)
}

// ValidateDraft checks the recipient fields of a draft. It returns a map of
// field name to message, or nil when the draft is complete.
func ValidateDraft(d models.Draft) map[string]string {
	errs := make(map[string]string)

	switch {
	case d.RecipientUsername == "":
		errs[models.FieldRecipientUsername] = "Recipient username is required"
	case utf8.RuneCountInString(d.RecipientUsername) > MaxUsernameLength:
		errs[models.FieldRecipientUsername] = "Recipient username is too long"
	}

	switch {
	case d.RecipientName == "":
		errs[models.FieldRecipientName] = "Recipient full name is required"
	case utf8.RuneCountInString(d.RecipientName) > MaxNameLength:
		errs[models.FieldRecipientName] = "Recipient full name is too long"
	}

	switch {
	case d.GiftDuration == "":
		errs[models.FieldGiftDuration] = "Gift duration is required"
	case !d.GiftDuration.Valid():
		errs[models.FieldGiftDuration] = "Gift duration must be one, two, or three months"
	}

	if utf8.RuneCountInString(d.Message) > MaxMessageLength {
		errs[models.FieldMessage] = "Message is too long"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateRequester checks the identity carried in from the calling portal.
// Only the user id is required; the display fields are passed through.
func ValidateRequester(r models.Requester) (bool, string) {
	if r.UserID == "" {
		return false, "userId is required"
	}
	if len(r.UserID) > MaxIdentityLength || !UserIDPattern.MatchString(r.UserID) {
		return false, "userId is invalid"
	}

	for _, v := range []string{r.UserName, r.UserEmail, r.CompanyName, r.Department} {
		if utf8.RuneCountInString(v) > MaxIdentityLength {
			return false, "requester details are too long"
		}
	}

	if r.UserEmail != "" {
		if _, err := mail.ParseAddress(r.UserEmail); err != nil {
			return false, "userEmail is not a valid email address"
		}
	}

	return true, ""
}
