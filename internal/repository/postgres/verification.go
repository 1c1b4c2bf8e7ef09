package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dayboard/dayboard-server/internal/model"
)

var _ model.VerificationStore = (*VerificationRepository)(nil)

// VerificationRepository stores pending verification requests. Expiry is
// enforced here: an expired row is never returned and is removed lazily on
// read, which stands in for the TTL index of a document store.
type VerificationRepository struct {
	db *Connection
}

func NewVerificationRepository(db *Connection) *VerificationRepository {
	return &VerificationRepository{
		db: db,
	}
}

// Create inserts a pending request. An expired leftover for the same email
// is cleared first; an unexpired one makes the unique index on email reject
// the insert, which surfaces as model.ErrConflict.
func (r *VerificationRepository) Create(ctx context.Context, req model.VerificationRequest) error {
	cleanup := `DELETE FROM verification_requests WHERE email = $1 AND expires_at <= NOW()`
	if _, err := r.db.Exec(ctx, cleanup, req.Email); err != nil {
		return fmt.Errorf("failed to clear expired verification request: %w", err)
	}

	query := `INSERT INTO verification_requests (email, kind, code_hash, created_at, expires_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		req.Email, req.Kind, req.CodeHash, req.CreatedAt, req.ExpiresAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrConflict
		}
		return fmt.Errorf("failed to create verification request: %w", err)
	}

	return nil
}

// GetByEmail returns the active request for email. An expired row is
// deleted and reported as model.ErrNotFound.
func (r *VerificationRepository) GetByEmail(ctx context.Context, email string) (model.VerificationRequest, error) {
	var req model.VerificationRequest
	query := `SELECT email, kind, code_hash, created_at, expires_at
			  FROM verification_requests WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&req.Email, &req.Kind, &req.CodeHash, &req.CreatedAt, &req.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.VerificationRequest{}, model.ErrNotFound
		}
		return model.VerificationRequest{}, fmt.Errorf("failed to get verification request: %w", err)
	}

	if req.Expired(time.Now()) {
		if err := r.Delete(ctx, email); err != nil {
			return model.VerificationRequest{}, err
		}
		return model.VerificationRequest{}, model.ErrNotFound
	}

	return req, nil
}

// Delete removes the request for email. Deleting an absent row is not an
// error; it may have expired between validation and deletion.
func (r *VerificationRepository) Delete(ctx context.Context, email string) error {
	query := `DELETE FROM verification_requests WHERE email = $1`

	if _, err := r.db.Exec(ctx, query, email); err != nil {
		return fmt.Errorf("failed to delete verification request: %w", err)
	}

	return nil
}
