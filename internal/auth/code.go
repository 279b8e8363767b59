package auth

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// NewVerificationCode returns an 8-character uppercase hex code from a
// cryptographically strong source, e.g. "3FA9C02B".
func NewVerificationCode() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// rand.Read only fails when the OS entropy source is broken.
		panic("verification code: " + err.Error())
	}
	return strings.ToUpper(hex.EncodeToString(b[:]))
}
