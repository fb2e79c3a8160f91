package validators

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/sharemycard/cardsync/models"
)

// Field name constants used to specify which fields should be validated.
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldTimestamp = "timestamp"
	FieldCardID    = "card_id"
	FieldSource    = "source"
	FieldStatus    = "status"
)

// CardValidator checks business card submissions.
type CardValidator struct{}

func NewCardValidator() *CardValidator {
	return &CardValidator{}
}

// Validate implements [Validator] for *models.BusinessCard. With no
// field scoping all rules apply.
func (v *CardValidator) Validate(_ context.Context, value any, fields ...string) error {
	card, ok := value.(*models.BusinessCard)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	for _, field := range scope(fields, FieldID, FieldName, FieldEmail, FieldTimestamp) {
		var err error
		switch field {
		case FieldID:
			err = validateID(card.ID)
		case FieldName:
			if card.FirstName == "" && card.LastName == "" && card.CompanyName == "" {
				err = ErrEmptyName
			}
		case FieldEmail:
			err = validateOptionalEmail(card.Email)
		case FieldTimestamp:
			err = validateTimestamps(card.CreatedAt, card.UpdatedAt)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// scope returns the requested fields, or defaults when none were named.
func scope(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func validateID(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return nil
}

func validateOptionalEmail(email string) error {
	if email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, email)
	}
	return nil
}

func validateTimestamps(createdAt, updatedAt models.Timestamp) error {
	if createdAt < 0 || updatedAt < 0 {
		return ErrInvalidTimestamp
	}
	return nil
}
