package http

import (
	"encoding/json"
	"net/http"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy to HTTP status codes. Anything
// outside the taxonomy is an infrastructure failure: logged server-side and
// surfaced as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	message := err.Error()

	switch domain.KindOf(err) {
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict, domain.KindInvalid:
		status = http.StatusBadRequest
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindUnauthenticated:
		status = http.StatusUnauthorized
	default:
		status = http.StatusInternalServerError
		message = "internal server error"
		logger.ErrorContext(r.Context(), "Request failed", "request_id", RequestIDFromContext(r.Context()),
			"method", r.Method, "path", r.URL.Path, "error", err)
	}

	writeJSON(w, status, errorResponse{Error: message})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.InvalidError("invalid request body")
	}
	return nil
}
