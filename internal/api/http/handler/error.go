package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dayboard/dayboard-server/internal/apierrors"
	"github.com/dayboard/dayboard-server/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// handleError writes the HTTP response for a service error. APIErrors carry
// their own status and message; anything else is reported as a generic
// internal error so no raw detail reaches the caller.
func handleError(w http.ResponseWriter, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusUnauthorized {
			w.Header().Set("WWW-Authenticate", "Bearer")
		}
		writeJSON(w, apiErr.Status, errorResponse{Error: apiErr.Message})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}
