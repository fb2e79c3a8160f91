package service

import "errors"

var (
	// ErrInvalidCredentials — login with an unknown user or a wrong
	// password. Deliberately indistinguishable on the wire.
	ErrInvalidCredentials = errors.New("invalid login or password")

	// ErrValidation wraps a field-level rejection of an inbound record.
	ErrValidation = errors.New("validation failed")

	// ErrSyncInFlight — a sync was requested while another one is
	// already running; the request is dropped, not queued.
	ErrSyncInFlight = errors.New("sync already in progress")
)
