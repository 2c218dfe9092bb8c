package id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewRef returns a human-readable reference like "ZC-4F2A9C1B3D0E":
// an uppercase prefix, a dash, then 12 uppercase hex characters.
// Used for application numbers shown to citizens.
func NewRef(prefix string) string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return strings.ToUpper(prefix) + "-" + strings.ToUpper(hex.EncodeToString(b))
}
