package model

import (
	"context"
	"regexp"
	"time"
)

// VerificationWindow is how long a verification code stays usable.
const VerificationWindow = 5 * time.Minute

// VerificationKind binds a verification request to the flow that created it.
type VerificationKind string

const (
	KindSignup        VerificationKind = "signup"
	KindLogin         VerificationKind = "login"
	KindDeleteAccount VerificationKind = "delete_account"
)

// VerificationStore persists pending email verification requests.
// At most one request per email may be active; Create reports ErrConflict
// otherwise. GetByEmail never returns an expired request and Delete is
// idempotent.
type VerificationStore interface {
	Create(ctx context.Context, req VerificationRequest) error
	GetByEmail(ctx context.Context, email string) (VerificationRequest, error)
	Delete(ctx context.Context, email string) error
}

// VerificationRequest describes a pending email verification. Only the
// bcrypt hash of the code is stored, never the code itself.
type VerificationRequest struct {
	Email     string
	Kind      VerificationKind
	CodeHash  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the request is past its window at the given time.
func (r VerificationRequest) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

// emailPattern is the address grammar from http://emailregex.com/.
var emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

// ValidEmail reports whether email is a well-formed address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
