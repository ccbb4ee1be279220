// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (Business layer) → validates, enforces rules, orchestrates
//	Repository (Data layer)  → reads/writes to the database
//
// The service accepts plain values and typed input structs, never
// *http.Request, and returns domain errors (apperror), never HTTP status
// codes. The handler translates in both directions. Services depend on the
// repository INTERFACES, so tests swap in in-memory mocks with no database.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/Shubhangisharma21/CookerHelper/internal/apperror"
	"github.com/Shubhangisharma21/CookerHelper/internal/auth"
	"github.com/Shubhangisharma21/CookerHelper/internal/model"
	"github.com/Shubhangisharma21/CookerHelper/internal/repository"
)

// invalidCredentials is the single message returned for ANY failed login.
// Unknown email and wrong password MUST be indistinguishable — a different
// message (or a measurably different path) would let an attacker enumerate
// which emails have accounts.
const invalidCredentials = "Invalid credentials"

// UserService handles registration, login, and profile lookup.
type UserService struct {
	users     repository.UserRepository
	passwords *auth.PasswordService
	tokens    *auth.TokenService
	logger    *slog.Logger
}

// NewUserService creates a UserService. All dependencies are injected —
// the caller decides which repository implementation to use.
func NewUserService(
	users repository.UserRepository,
	passwords *auth.PasswordService,
	tokens *auth.TokenService,
	logger *slog.Logger,
) *UserService {
	return &UserService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		logger:    logger,
	}
}

// RegisterInput is the typed registration request body.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account.
//
// FLOW:
//  1. Validate name/email/password
//  2. Check the email isn't already registered (existence check before insert;
//     the UNIQUE column catches the race)
//  3. bcrypt-hash the password
//  4. Persist
//
// A duplicate email returns apperror.ErrDuplicate ("Email already in use").
// No token is issued here — the client logs in separately.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" {
		return nil, apperror.ValidationFailed("name", "name is required")
	}
	if email == "" {
		return nil, apperror.ValidationFailed("email", "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperror.ValidationFailed("email", "email is not a valid address")
	}
	if in.Password == "" {
		return nil, apperror.ValidationFailed("password", "password is required")
	}

	// Existence check before insert. Only a real lookup failure is an error;
	// NotFound is exactly what we want here.
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, apperror.Duplicate("Email already in use")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("checking existing email: %w", err)
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, apperror.ValidationFailed("password", "password is too long")
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrDuplicate) {
			return nil, err
		}
		s.logger.Error("failed to create user",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID),
		slog.String("email", user.Email),
	)

	return user, nil
}

// LoginResult is what a successful login returns: the signed token plus the
// subset of the user record the client shows in its header.
type LoginResult struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// LoginUser is the trimmed user payload embedded in a login response.
type LoginUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	ID    string `json:"id"`
}

// Login verifies credentials and issues a 7-day bearer token.
//
// Both failure modes (unknown email, wrong password) return the identical
// "Invalid credentials" message mapped to 400. Note it's NOT a 401: 401 is
// for missing/bad tokens on protected routes, a failed login is a 400 per
// the API contract.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			// Same message as a wrong password — no user enumeration.
			return nil, apperror.ValidationFailed("", invalidCredentials)
		}
		s.logger.Error("login lookup failed",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		return nil, apperror.ValidationFailed("", invalidCredentials)
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		s.logger.Error("token generation failed",
			slog.String("userID", user.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("user logged in", slog.String("userID", user.ID))

	return &LoginResult{
		Token: token,
		User: LoginUser{
			Name:  user.Name,
			Email: user.Email,
			ID:    user.ID,
		},
	}, nil
}

// Profile returns the caller's stored user record. The password hash never
// leaves this layer — model.User tags it json:"-" as a second line of defence.
func (s *UserService) Profile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
