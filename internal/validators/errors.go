package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID          = errors.New("record id is required")
	ErrEmptyName        = errors.New("at least one name field is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrEmptyCardID      = errors.New("card id is required")
	ErrNoContactPoint   = errors.New("an email or phone number is required")
	ErrInvalidSource    = errors.New("invalid contact source")
	ErrInvalidStatus    = errors.New("invalid lead status")
)
