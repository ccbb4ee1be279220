package handler

import (
	"log/slog"
	"net/http"

	"github.com/Shubhangisharma21/CookerHelper/internal/auth"
	"github.com/Shubhangisharma21/CookerHelper/internal/service"
)

// UserHandler manages registration, login, and profile fetch.
//
// HANDLER RESPONSIBILITIES:
//   - HandleRegister → POST /users/register (public)
//   - HandleLogin    → POST /users/login    (public)
//   - HandleProfile  → GET  /users/profile  (bearer token required)
//
// The handler only knows HTTP: it decodes a typed body, calls the service,
// and translates the result (or the domain error) into a JSON response.
type UserHandler struct {
	users  *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// HandleRegister creates a new account.
//
// HTTP: POST /users/register
// REQUEST BODY: {"name": "Ada", "email": "ada@example.com", "password": "hunter2"}
//
// On success responds 201 with a confirmation message — deliberately NOT a
// token. The client follows up with a login call.
// A duplicate email is a 400 with "Email already in use".
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.users.Register(r.Context(), in); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered!",
	})
}

// loginRequest is the typed login body.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and returns a bearer token.
//
// HTTP: POST /users/login
// RESPONSE: {"token": "<jwt>", "user": {"name": ..., "email": ..., "id": ...}}
//
// Any failed login — wrong password OR unknown email — is a 400 with the
// identical "Invalid credentials" body. The service enforces that; the
// handler just passes it through.
func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.users.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleProfile returns the authenticated caller's user record.
//
// HTTP: GET /users/profile  (behind auth.RequireAuth)
//
// The password hash is excluded from the response via the model's json:"-"
// tag — the record goes over the wire minus the secret.
func (h *UserHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		// Unreachable when routed behind RequireAuth.
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "valid authentication required"})
		return
	}

	user, err := h.users.Profile(r.Context(), id.UserID)
	if err != nil {
		h.logger.Error("profile fetch failed",
			slog.String("userID", id.UserID),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
