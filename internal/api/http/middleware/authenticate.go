package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dayboard/dayboard-server/internal/apierrors"
	"github.com/dayboard/dayboard-server/internal/logger"
	"github.com/dayboard/dayboard-server/internal/model"
)

// Authenticator resolves a bearer token of a purpose to an identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string, purpose model.TokenPurpose) (model.Identity, error)
}

// Authenticate validates bearer tokens and injects the identity into the
// request context. The purpose decides which composite secret the token is
// checked against, so a refresh token never passes an auth-protected route.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		authenticator:  authenticator,
		contextManager: contextManager,
		logger:         logger,
	}
}

// RequireAuth guards routes that need a valid auth token.
func (m *Authenticate) RequireAuth(next http.Handler) http.Handler {
	return m.require(next, model.PurposeAuth)
}

// RequireRefresh guards the token refresh route.
func (m *Authenticate) RequireRefresh(next http.Handler) http.Handler {
	return m.require(next, model.PurposeRefresh)
}

func (m *Authenticate) require(next http.Handler, purpose model.TokenPurpose) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)

		identity, err := m.authenticator.Authenticate(r.Context(), tokenString, purpose)
		if err != nil {
			m.logger.Info("Authenticate middleware: request rejected",
				"path", r.URL.Path,
				"error", err.Error())
			m.writeError(w, err)
			return
		}

		ctx := m.contextManager.SetIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func (m *Authenticate) writeError(w http.ResponseWriter, err error) {
	status := http.StatusUnauthorized
	message := "invalid or expired token"

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.Status
		message = apiErr.Message
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
