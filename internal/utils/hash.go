package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword computes the keyed HMAC-SHA256 digest of password,
// hex-encoded. Used by the thin login flow; key distribution is a
// deployment concern.
func HashPassword(password, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}
