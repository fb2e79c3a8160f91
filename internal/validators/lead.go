package validators

import (
	"context"
	"fmt"

	"github.com/sharemycard/cardsync/models"
)

// ScanSubmissionValidator checks the public lead-capture form. The form
// is the only unauthenticated write surface, so it gets the strictest
// rules: a name, and at least one way to reach the person back.
type ScanSubmissionValidator struct{}

func NewScanSubmissionValidator() *ScanSubmissionValidator {
	return &ScanSubmissionValidator{}
}

// Validate implements [Validator] for *models.ScanSubmission.
func (v *ScanSubmissionValidator) Validate(_ context.Context, value any, fields ...string) error {
	submission, ok := value.(*models.ScanSubmission)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	for _, field := range scope(fields, FieldName, FieldEmail) {
		var err error
		switch field {
		case FieldName:
			if submission.FirstName == "" && submission.LastName == "" {
				err = ErrEmptyName
			}
		case FieldEmail:
			if submission.Email == "" && submission.WorkPhone == "" && submission.MobilePhone == "" {
				err = ErrNoContactPoint
			} else {
				err = validateOptionalEmail(submission.Email)
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
