// Package otp generates and checks one-time verification codes.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

const (
	codeMin  = 100000
	codeSpan = 900000
	hashCost = 10
)

// Generate returns a uniformly random six-digit code in [100000, 999999].
// The lower bound keeps codes free of a leading zero.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}

// Hash returns the bcrypt hash of a code. Only the hash is ever persisted.
func Hash(code string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(code), hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash code: %w", err)
	}
	return string(h), nil
}

// Verify reports whether code matches the stored hash.
func Verify(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
