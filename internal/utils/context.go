// Package utils provides general-purpose helpers shared across the
// application: context keys, JWT handling, HMAC hashing, HTTP response
// writing, the outbound HTTP client, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. A dedicated type
// prevents collisions with other packages using string keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authenticated user's
// identifier is stored in the request context.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the user identifier from ctx.
// ok is false when the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
