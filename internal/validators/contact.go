package validators

import (
	"context"
	"fmt"

	"github.com/sharemycard/cardsync/models"
)

// allowedContactSources is the exhaustive set of ContactSource values
// accepted by the validator.
var allowedContactSources = []models.ContactSource{
	models.SourceManual,
	models.SourceQRScan,
	models.SourceConverted,
}

// ContactValidator checks contact submissions.
type ContactValidator struct{}

func NewContactValidator() *ContactValidator {
	return &ContactValidator{}
}

// Validate implements [Validator] for *models.Contact.
func (v *ContactValidator) Validate(_ context.Context, value any, fields ...string) error {
	contact, ok := value.(*models.Contact)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	for _, field := range scope(fields, FieldID, FieldName, FieldEmail, FieldSource, FieldTimestamp) {
		var err error
		switch field {
		case FieldID:
			err = validateID(contact.ID)
		case FieldName:
			if contact.FirstName == "" && contact.LastName == "" && contact.CompanyName == "" {
				err = ErrEmptyName
			}
		case FieldEmail:
			err = validateOptionalEmail(contact.Email)
		case FieldSource:
			err = validateContactSource(contact.Source)
		case FieldTimestamp:
			err = validateTimestamps(contact.CreatedAt, contact.UpdatedAt)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateContactSource(source models.ContactSource) error {
	for _, allowed := range allowedContactSources {
		if source == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidSource, source)
}
