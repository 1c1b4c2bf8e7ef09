// Package secret derives the per-user secret components that are combined
// with the process-wide purpose keys to form token signing secrets.
package secret

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dayboard/dayboard-server/internal/otp"
)

// componentCut is where the component starts inside the bcrypt string. A
// bcrypt hash is "$2a$10$" followed by 22 salt characters and 31 hash
// characters; cutting at 29 drops the fixed-format prefix and keeps the
// high-entropy tail while the component stays short.
const componentCut = 29

// NewComponent derives a fresh secret component by bcrypt-hashing a random
// value and keeping the tail of the hash string.
func NewComponent() (string, error) {
	seed, err := otp.Generate()
	if err != nil {
		return "", fmt.Errorf("failed to generate component seed: %w", err)
	}

	h, err := bcrypt.GenerateFromPassword([]byte(seed), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash component seed: %w", err)
	}

	return string(h)[componentCut:], nil
}
