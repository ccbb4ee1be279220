package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/Shubhangisharma21/CookerHelper/internal/apperror"
	"github.com/Shubhangisharma21/CookerHelper/internal/model"
	"github.com/Shubhangisharma21/CookerHelper/internal/repository"
)

// UserStore provides the user-table methods. It is a view over the same
// connection as DB; a separate receiver type is needed because Go does not
// allow two Create methods with different signatures on one type, and *DB
// already has Create for recipes.
type UserStore struct {
	db *DB
}

// Users returns the user repository view of the connection.
func (db *DB) Users() *UserStore {
	return &UserStore{db: db}
}

// compile-time check that *UserStore implements repository.UserRepository
var _ repository.UserRepository = (*UserStore)(nil)

// Create inserts a new user.
//
// The ID is generated here with xid — 20 URL-safe chars, sortable by
// creation time. The caller's struct is modified in place (pointer
// receiver) so it carries the generated ID and timestamp afterwards.
//
// The UNIQUE constraint on email is the backstop behind the service
// layer's existence check; a violation is translated to the duplicate
// error so concurrent double-registrations still get a clean 400.
func (s *UserStore) Create(ctx context.Context, user *model.User) error {
	user.ID = xid.New().String()
	user.CreatedAt = time.Now()

	_, err := s.db.conn.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Duplicate("Email already in use")
		}
		return fmt.Errorf("sqlite: creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by their internal ID.
// Returns apperror.ErrNotFound if no user exists with that ID.
func (s *UserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.getUser(ctx, `WHERE id = ?`, id)
}

// GetByEmail retrieves a user by email (the login lookup).
// Returns apperror.ErrNotFound if no user is registered with that email.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.getUser(ctx, `WHERE email = ?`, email)
}

func (s *UserStore) getUser(ctx context.Context, where string, arg any) (*model.User, error) {
	var u model.User

	err := s.db.conn.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users `+where,
		arg,
	).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		// sql.ErrNoRows is a sentinel error — we check with ==
		// (not errors.Is, because database/sql doesn't wrap it)
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user")
		}
		return nil, fmt.Errorf("sqlite: getting user: %w", err)
	}

	return &u, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint error.
// modernc.org/sqlite doesn't export a typed error for this, so we match on
// the message it produces ("UNIQUE constraint failed: users.email").
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
