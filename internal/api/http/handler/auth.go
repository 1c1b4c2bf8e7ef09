package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dayboard/dayboard-server/internal/apierrors"
	"github.com/dayboard/dayboard-server/internal/logger"
	"github.com/dayboard/dayboard-server/internal/model"
)

// AuthService defines the verification and session operations.
type AuthService interface {
	SignupStart(ctx context.Context, email string) error
	SignupVerify(ctx context.Context, email, code, name string) (model.TokenPair, model.User, error)
	LoginStart(ctx context.Context, email string) error
	LoginVerify(ctx context.Context, email, code string) (model.TokenPair, model.User, error)
	Refresh(ctx context.Context, identity model.Identity) (string, error)
	LogoutEverywhere(ctx context.Context, identity model.Identity) error
	DeleteStart(ctx context.Context, identity model.Identity) error
	DeleteVerify(ctx context.Context, email, code string) error
	GetUser(ctx context.Context, identity model.Identity) (model.User, error)
	UpdateName(ctx context.Context, identity model.Identity, name string) (model.User, error)
}

// Auth handles the HTTP endpoints for authentication and the user profile.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type startRequest struct {
	Email string `json:"email"`
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
	Name  string `json:"name,omitempty"`
}

type updateNameRequest struct {
	Name string `json:"name"`
}

type userResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type sessionResponse struct {
	AuthToken    string       `json:"auth_token"`
	RefreshToken string       `json:"refresh_token"`
	User         userResponse `json:"user"`
}

type refreshResponse struct {
	AuthToken string `json:"auth_token"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		Name:        user.Name,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

// SignupStart handles POST /signup.
func (h *Auth) SignupStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, apierrors.NewErrInvalidBody())
		return
	}

	h.logger.Debug("Auth handler: processing signup start request", "email", req.Email)

	if err := h.authService.SignupStart(r.Context(), req.Email); err != nil {
		h.logger.Error("Auth handler: signup start failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: signup start completed", "email", req.Email)

	w.WriteHeader(http.StatusNoContent)
}

// SignupVerify handles POST /signup/verify.
func (h *Auth) SignupVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, apierrors.NewErrInvalidBody())
		return
	}

	h.logger.Debug("Auth handler: processing signup verify request", "email", req.Email)

	pair, user, err := h.authService.SignupVerify(r.Context(), req.Email, req.Code, req.Name)
	if err != nil {
		h.logger.Error("Auth handler: signup verify failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: signup verify completed", "email", req.Email)

	writeJSON(w, http.StatusCreated, sessionResponse{
		AuthToken:    pair.AuthToken,
		RefreshToken: pair.RefreshToken,
		User:         toUserResponse(user),
	})
}

// LoginStart handles POST /login.
func (h *Auth) LoginStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, apierrors.NewErrInvalidBody())
		return
	}

	h.logger.Debug("Auth handler: processing login start request", "email", req.Email)

	if err := h.authService.LoginStart(r.Context(), req.Email); err != nil {
		h.logger.Error("Auth handler: login start failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: login start completed", "email", req.Email)

	w.WriteHeader(http.StatusNoContent)
}

// LoginVerify handles POST /login/verify.
func (h *Auth) LoginVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, apierrors.NewErrInvalidBody())
		return
	}

	h.logger.Debug("Auth handler: processing login verify request", "email", req.Email)

	pair, user, err := h.authService.LoginVerify(r.Context(), req.Email, req.Code)
	if err != nil {
		h.logger.Error("Auth handler: login verify failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: login verify completed", "email", req.Email)

	writeJSON(w, http.StatusOK, sessionResponse{
		AuthToken:    pair.AuthToken,
		RefreshToken: pair.RefreshToken,
		User:         toUserResponse(user),
	})
}

// Refresh handles POST /token/refresh. The refresh token has already been
// verified by the middleware.
func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentity(r.Context())
	if !ok {
		handleError(w, apierrors.NewErrMissingToken())
		return
	}

	authToken, err := h.authService.Refresh(r.Context(), identity)
	if err != nil {
		h.logger.Error("Auth handler: token refresh failed",
			"email", identity.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, refreshResponse{AuthToken: authToken})
}

// Logout handles POST /logout. It signs the user out of every device by
// rotating both secret components.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentity(r.Context())
	if !ok {
		handleError(w, apierrors.NewErrMissingToken())
		return
	}

	h.logger.Debug("Auth handler: processing logout request", "email", identity.Email)

	if err := h.authService.LogoutEverywhere(r.Context(), identity); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"email", identity.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: logout completed", "email", identity.Email)

	w.WriteHeader(http.StatusNoContent)
}

// DeleteStart handles POST /account/delete.
func (h *Auth) DeleteStart(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentity(r.Context())
	if !ok {
		handleError(w, apierrors.NewErrMissingToken())
		return
	}

	h.logger.Debug("Auth handler: processing delete start request", "email", identity.Email)

	if err := h.authService.DeleteStart(r.Context(), identity); err != nil {
		h.logger.Error("Auth handler: delete start failed",
			"email", identity.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: delete start completed", "email", identity.Email)

	w.WriteHeader(http.StatusNoContent)
}

// DeleteVerify handles POST /account/delete/verify.
func (h *Auth) DeleteVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, apierrors.NewErrInvalidBody())
		return
	}

	h.logger.Debug("Auth handler: processing delete verify request", "email", req.Email)

	if err := h.authService.DeleteVerify(r.Context(), req.Email, req.Code); err != nil {
		h.logger.Error("Auth handler: delete verify failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: account deleted", "email", req.Email)

	w.WriteHeader(http.StatusNoContent)
}

// GetUser handles GET /user.
func (h *Auth) GetUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentity(r.Context())
	if !ok {
		handleError(w, apierrors.NewErrMissingToken())
		return
	}

	user, err := h.authService.GetUser(r.Context(), identity)
	if err != nil {
		h.logger.Error("Auth handler: get user failed",
			"email", identity.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// UpdateName handles PATCH /user.
func (h *Auth) UpdateName(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentity(r.Context())
	if !ok {
		handleError(w, apierrors.NewErrMissingToken())
		return
	}

	var req updateNameRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, apierrors.NewErrInvalidBody())
		return
	}

	user, err := h.authService.UpdateName(r.Context(), identity, req.Name)
	if err != nil {
		h.logger.Error("Auth handler: update name failed",
			"email", identity.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: name updated", "email", identity.Email)

	writeJSON(w, http.StatusOK, toUserResponse(user))
}
