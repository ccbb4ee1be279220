package handler

// RESPONSE HELPERS:
// These functions standardise how we send JSON responses and errors.
//
// CONSISTENT ERROR FORMAT:
// Every error response from the API has the same one-field shape:
//
//	{"error": "Recipe not found"}
//
// The frontend always knows what to parse, regardless of whether it's a
// 400, 401, 404, or 500.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Shubhangisharma21/CookerHelper/internal/apperror"
)

// ErrorResponse is the standard error format returned by all API endpoints.
type ErrorResponse struct {
	Error string `json:"error"` // Human-readable description
}

// writeJSON sends a JSON response with the given status code.
//
// HEADER ORDER MATTERS:
// Headers and status code must be set BEFORE writing the body. Once Encode
// calls w.Write() internally, the headers are sent and any later header
// changes are silently ignored.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent — all we can do is log it.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to the appropriate HTTP status code and sends it.
//
// ERROR MAPPING:
// The service layer returns apperror sentinels; this is the single place
// they become HTTP status codes:
//
//	ErrValidation   → 400
//	ErrDuplicate    → 400  (duplicate email registers as a plain bad request)
//	ErrUnauthorized → 401
//	ErrNotFound     → 404  (covers "not yours" too — the two are unified)
//	anything else   → 500 with a generic message
//
// errors.Is() walks the whole error chain (via Unwrap), so a service error
// like fmt.Errorf("creating recipe: %w", apperror.ValidationFailed(...))
// still matches.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrDuplicate):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusUnauthorized
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		}

		writeJSON(w, status, ErrorResponse{Error: appErr.Message})
		return
	}

	// Unknown error — return a generic 500.
	// NEVER expose internal error details to the client: the raw message
	// might contain SQL fragments, file paths, or other sensitive info.
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: "An internal error occurred",
	})
}

// decodeJSON decodes a request body into dst, rejecting unknown fields.
//
// DisallowUnknownFields is the "explicit schema" stance: a body that carries
// fields the struct doesn't declare (a misspelt key, or an attempt to smuggle
// an owner id) is a 400, not silently dropped data.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperror.ValidationFailed("", "invalid JSON body: "+err.Error())
	}
	return nil
}
