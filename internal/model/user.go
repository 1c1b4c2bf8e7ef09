package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateName(ctx context.Context, email string, name string) (User, error)
	UpdateSecrets(ctx context.Context, email string, authSecret, refreshSecret string) error
	UpdateLastLogin(ctx context.Context, email string, at time.Time) error
	Delete(ctx context.Context, email string) error
}

// User represents a verified account. AuthSecret and RefreshSecret are the
// per-user components of the token signing keys; replacing them invalidates
// every outstanding token of the matching purpose at once.
type User struct {
	ID            uuid.UUID
	Email         string
	Name          string
	AuthSecret    string
	RefreshSecret string
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
