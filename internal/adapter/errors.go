package adapter

import "errors"

var (
	// ErrNetwork — the request never produced an HTTP response
	// (transport unreachable or timed out). The sync coordinator treats
	// this as fatal for the whole attempt.
	ErrNetwork = errors.New("server unreachable")

	// ErrValidation — the server rejected the record's fields (400/422).
	// Affects only the offending record.
	ErrValidation = errors.New("record validation rejected")

	// ErrConflict — conversion of an already-converted lead or a
	// duplicate create (409). Safe to retry; retrying re-surfaces the
	// same conflict without duplicate side effects.
	ErrConflict = errors.New("conflict")

	// ErrNotFound — the addressed record does not exist (404).
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized — missing or rejected bearer token (401).
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrServer — a 5xx storage or processing failure on the server.
	// Per-record; the local record stays pending and is retried on the
	// next cycle.
	ErrServer = errors.New("server error")
)
