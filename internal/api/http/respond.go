package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/logger"
	"roomrent-backend/internal/utils"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors to a status. Missing records and bad input
// are the caller's fault and get 400 with the message; store failures get a
// generic 500 and the detail stays in the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrMalformedInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		logger.ErrorContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", domain.ErrMalformedInput, err)
	}
	return nil
}

// queryID parses the required ?id= parameter.
func queryID(r *http.Request) (int32, error) {
	return utils.ParseID(r.URL.Query().Get("id"))
}

// optionalQueryID parses a filter parameter; an absent one means no filter.
func optionalQueryID(r *http.Request, name string) (int32, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return utils.ParseID(raw)
}

// optionalID parses an optional identifier from a request body.
func optionalID(raw *string) (*int32, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := utils.ParseID(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
