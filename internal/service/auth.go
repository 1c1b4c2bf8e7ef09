package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dayboard/dayboard-server/internal/apierrors"
	"github.com/dayboard/dayboard-server/internal/logger"
	"github.com/dayboard/dayboard-server/internal/model"
	"github.com/dayboard/dayboard-server/internal/otp"
	"github.com/dayboard/dayboard-server/internal/secret"
)

// Auth sequences the verification and session flows: signup, login, token
// refresh, logout-everywhere and account deletion. The record store is the
// only arbitration point; every precondition is re-checked against it.
type Auth struct {
	users         model.UserStore
	verifications model.VerificationStore
	tokens        model.TokenManager
	sender        model.CodeSender
	logger        *logger.Logger
}

// NewAuth creates the auth service.
func NewAuth(
	users model.UserStore,
	verifications model.VerificationStore,
	tokens model.TokenManager,
	sender model.CodeSender,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:         users,
		verifications: verifications,
		tokens:        tokens,
		sender:        sender,
		logger:        logger,
	}
}

// SignupStart begins registration for a new email: it persists a pending
// verification request and emails the code. The request is persisted before
// the email goes out; if delivery fails the pending request stays and the
// failure is reported to the caller.
func (a *Auth) SignupStart(ctx context.Context, email string) error {
	a.logger.Debug("Auth service: starting signup", "email", email)

	if !model.ValidEmail(email) {
		return apierrors.NewErrInvalidEmail(email)
	}

	_, err := a.users.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: signup for taken email", "email", email)
		return apierrors.NewErrEmailTaken(email)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	return a.startVerification(ctx, email, model.KindSignup)
}

// SignupVerify completes registration: it checks the code, creates the user
// with freshly rotated secret components and mints the first token pair.
func (a *Auth) SignupVerify(ctx context.Context, email, code, name string) (model.TokenPair, model.User, error) {
	a.logger.Debug("Auth service: verifying signup", "email", email)

	if err := a.consumeCheck(ctx, email, code, model.KindSignup); err != nil {
		return model.TokenPair{}, model.User{}, err
	}

	authComponent, refreshComponent, err := newComponents()
	if err != nil {
		return model.TokenPair{}, model.User{}, err
	}

	now := time.Now()
	user, err := a.users.Create(ctx, model.User{
		ID:            uuid.New(),
		Email:         email,
		Name:          name,
		AuthSecret:    authComponent,
		RefreshSecret: refreshComponent,
		LastLoginAt:   &now,
	})
	if errors.Is(err, model.ErrConflict) {
		return model.TokenPair{}, model.User{}, apierrors.NewErrEmailTaken(email)
	}
	if err != nil {
		return model.TokenPair{}, model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	pair, err := a.mintPair(user)
	if err != nil {
		return model.TokenPair{}, model.User{}, err
	}

	if err := a.verifications.Delete(ctx, email); err != nil {
		return model.TokenPair{}, model.User{}, fmt.Errorf("failed to delete verification request: %w", err)
	}

	a.logger.Info("Auth service: signup completed", "email", email)

	return pair, user, nil
}

// LoginStart begins a login for an existing user by sending a code.
func (a *Auth) LoginStart(ctx context.Context, email string) error {
	a.logger.Debug("Auth service: starting login", "email", email)

	if !model.ValidEmail(email) {
		return apierrors.NewErrInvalidEmail(email)
	}

	_, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrUserNotFound(email)
	}
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	return a.startVerification(ctx, email, model.KindLogin)
}

// LoginVerify completes a login. Tokens are minted from the user's existing
// secret components, so sessions on other devices stay valid.
func (a *Auth) LoginVerify(ctx context.Context, email, code string) (model.TokenPair, model.User, error) {
	a.logger.Debug("Auth service: verifying login", "email", email)

	if err := a.consumeCheck(ctx, email, code, model.KindLogin); err != nil {
		return model.TokenPair{}, model.User{}, err
	}

	user, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, model.User{}, apierrors.NewErrUserNotFound(email)
	}
	if err != nil {
		return model.TokenPair{}, model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	pair, err := a.mintPair(user)
	if err != nil {
		return model.TokenPair{}, model.User{}, err
	}

	if err := a.users.UpdateLastLogin(ctx, email, time.Now()); err != nil {
		return model.TokenPair{}, model.User{}, fmt.Errorf("failed to update last login: %w", err)
	}

	if err := a.verifications.Delete(ctx, email); err != nil {
		return model.TokenPair{}, model.User{}, fmt.Errorf("failed to delete verification request: %w", err)
	}

	a.logger.Info("Auth service: login completed", "email", email)

	return pair, user, nil
}

// Refresh mints a new auth token for an identity whose refresh token has
// already been verified by the middleware.
func (a *Auth) Refresh(ctx context.Context, identity model.Identity) (string, error) {
	a.logger.Debug("Auth service: refreshing auth token", "email", identity.Email)

	user, err := a.users.GetByEmail(ctx, identity.Email)
	if errors.Is(err, model.ErrNotFound) {
		return "", apierrors.NewErrUserNotFound(identity.Email)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	authToken, err := a.tokens.Mint(user.Email, model.PurposeAuth, user.AuthSecret)
	if err != nil {
		return "", fmt.Errorf("failed to mint auth token: %w", err)
	}

	return authToken, nil
}

// LogoutEverywhere rotates both of the user's secret components, which
// instantly invalidates every previously issued token of both purposes.
func (a *Auth) LogoutEverywhere(ctx context.Context, identity model.Identity) error {
	a.logger.Debug("Auth service: logging out everywhere", "email", identity.Email)

	authComponent, refreshComponent, err := newComponents()
	if err != nil {
		return err
	}

	err = a.users.UpdateSecrets(ctx, identity.Email, authComponent, refreshComponent)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrUserNotFound(identity.Email)
	}
	if err != nil {
		return fmt.Errorf("failed to rotate secret components: %w", err)
	}

	a.logger.Info("Auth service: secret components rotated", "email", identity.Email)

	return nil
}

// DeleteStart begins account deletion for an authenticated user by sending
// a confirmation code.
func (a *Auth) DeleteStart(ctx context.Context, identity model.Identity) error {
	a.logger.Debug("Auth service: starting account deletion", "email", identity.Email)

	return a.startVerification(ctx, identity.Email, model.KindDeleteAccount)
}

// DeleteVerify completes account deletion. On a wrong code the user and the
// pending request are both left untouched.
func (a *Auth) DeleteVerify(ctx context.Context, email, code string) error {
	a.logger.Debug("Auth service: verifying account deletion", "email", email)

	if err := a.consumeCheck(ctx, email, code, model.KindDeleteAccount); err != nil {
		return err
	}

	err := a.users.Delete(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrUserNotFound(email)
	}
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if err := a.verifications.Delete(ctx, email); err != nil {
		return fmt.Errorf("failed to delete verification request: %w", err)
	}

	a.logger.Info("Auth service: account deleted", "email", email)

	return nil
}

// GetUser returns the profile of the authenticated identity.
func (a *Auth) GetUser(ctx context.Context, identity model.Identity) (model.User, error) {
	user, err := a.users.GetByEmail(ctx, identity.Email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNotFound(identity.Email)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// UpdateName changes the display name of the authenticated identity.
func (a *Auth) UpdateName(ctx context.Context, identity model.Identity, name string) (model.User, error) {
	user, err := a.users.UpdateName(ctx, identity.Email, name)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNotFound(identity.Email)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update name: %w", err)
	}
	return user, nil
}

// Authenticate resolves a bearer token of the given purpose to a typed
// identity. The token is decoded unverified only to find the user whose
// stored secret component the signature must be checked against.
func (a *Auth) Authenticate(ctx context.Context, tokenString string, purpose model.TokenPurpose) (model.Identity, error) {
	if tokenString == "" {
		return model.Identity{}, apierrors.NewErrMissingToken()
	}

	email, err := a.tokens.DecodeUnverified(tokenString)
	if err != nil {
		return model.Identity{}, apierrors.NewErrInvalidToken()
	}

	user, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Identity{}, apierrors.NewErrUserNotFound(email)
	}
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	component := user.AuthSecret
	if purpose == model.PurposeRefresh {
		component = user.RefreshSecret
	}

	verifiedEmail, err := a.tokens.Verify(tokenString, purpose, component)
	if err != nil {
		return model.Identity{}, apierrors.NewErrInvalidToken()
	}

	return model.Identity{Email: verifiedEmail}, nil
}

// startVerification persists a pending request for the flow and emails the
// code. The unique index on email arbitrates concurrent starts: the loser
// sees Conflict rather than overwriting the winner's in-flight code.
func (a *Auth) startVerification(ctx context.Context, email string, kind model.VerificationKind) error {
	_, err := a.verifications.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: verification already pending", "email", email, "flow", kind)
		return apierrors.NewErrCodeAlreadySent(email)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get verification request: %w", err)
	}

	code, err := otp.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}
	codeHash, err := otp.Hash(code)
	if err != nil {
		return fmt.Errorf("failed to hash verification code: %w", err)
	}

	now := time.Now()
	err = a.verifications.Create(ctx, model.VerificationRequest{
		Email:     email,
		Kind:      kind,
		CodeHash:  codeHash,
		CreatedAt: now,
		ExpiresAt: now.Add(model.VerificationWindow),
	})
	if errors.Is(err, model.ErrConflict) {
		return apierrors.NewErrCodeAlreadySent(email)
	}
	if err != nil {
		return fmt.Errorf("failed to create verification request: %w", err)
	}

	if err := a.sender.SendCode(ctx, email, kind, code); err != nil {
		a.logger.Error("Auth service: code delivery failed",
			"email", email,
			"flow", kind,
			"error", err.Error())
		return apierrors.NewErrDeliveryFailed(email)
	}

	a.logger.Info("Auth service: verification code sent", "email", email, "flow", kind)

	return nil
}

// consumeCheck validates a submitted code against the pending request for
// the expected flow. The request is not consumed here; callers delete it
// only after their own effects succeed, so a failed attempt leaves the
// request in place.
func (a *Auth) consumeCheck(ctx context.Context, email, code string, kind model.VerificationKind) error {
	req, err := a.verifications.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrVerificationNotFound(email)
	}
	if err != nil {
		return fmt.Errorf("failed to get verification request: %w", err)
	}

	if req.Kind != kind {
		return apierrors.NewErrKindMismatch(req.Kind, kind)
	}

	if !otp.Verify(code, req.CodeHash) {
		return apierrors.NewErrInvalidCode()
	}

	return nil
}

func (a *Auth) mintPair(user model.User) (model.TokenPair, error) {
	authToken, err := a.tokens.Mint(user.Email, model.PurposeAuth, user.AuthSecret)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to mint auth token: %w", err)
	}
	refreshToken, err := a.tokens.Mint(user.Email, model.PurposeRefresh, user.RefreshSecret)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to mint refresh token: %w", err)
	}
	return model.TokenPair{AuthToken: authToken, RefreshToken: refreshToken}, nil
}

func newComponents() (authComponent, refreshComponent string, err error) {
	authComponent, err = secret.NewComponent()
	if err != nil {
		return "", "", fmt.Errorf("failed to derive auth secret component: %w", err)
	}
	refreshComponent, err = secret.NewComponent()
	if err != nil {
		return "", "", fmt.Errorf("failed to derive refresh secret component: %w", err)
	}
	return authComponent, refreshComponent, nil
}
