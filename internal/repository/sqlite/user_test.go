package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/Shubhangisharma21/CookerHelper/internal/apperror"
	"github.com/Shubhangisharma21/CookerHelper/internal/model"
)

// TESTING WITH IN-MEMORY SQLITE:
// Using ":memory:" creates a fresh database that exists only during the test.
// Fast (no disk I/O), isolated (each test gets its own database), and clean
// (destroyed when the connection closes).
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// createTestUser inserts a user and fails the test if it errors.
func createTestUser(t *testing.T, db *DB, name, email string) *model.User {
	t.Helper()
	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefake",
	}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// =========================================================================
// CREATE TESTS
// =========================================================================

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)

	user := createTestUser(t, db, "Ada", "ada@example.com")

	if user.ID == "" {
		t.Error("Create() did not set user.ID")
	}
	if user.CreatedAt.IsZero() {
		t.Error("Create() did not set user.CreatedAt")
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	createTestUser(t, db, "Ada", "ada@example.com")

	dup := &model.User{
		Name:         "Imposter",
		Email:        "ada@example.com",
		PasswordHash: "hash",
	}
	err := db.Users().Create(context.Background(), dup)
	if err == nil {
		t.Fatal("Create() accepted a duplicate email")
	}
	if !errors.Is(err, apperror.ErrDuplicate) {
		t.Errorf("Create() error = %v, want ErrDuplicate", err)
	}
}

// =========================================================================
// LOOKUP TESTS
// =========================================================================

func TestGetUserByEmail(t *testing.T) {
	db := newTestDB(t)
	created := createTestUser(t, db, "Ada", "ada@example.com")

	found, err := db.Users().GetByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}

	if found.ID != created.ID {
		t.Errorf("ID = %q, want %q", found.ID, created.ID)
	}
	if found.Name != "Ada" {
		t.Errorf("Name = %q, want %q", found.Name, "Ada")
	}
	if found.PasswordHash != created.PasswordHash {
		t.Error("GetByEmail() did not round-trip the password hash")
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Users().GetByEmail(context.Background(), "nobody@example.com")
	if err == nil {
		t.Fatal("GetByEmail() found a user that doesn't exist")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByEmail() error = %v, want ErrNotFound", err)
	}
}

func TestGetUserByID(t *testing.T) {
	db := newTestDB(t)
	created := createTestUser(t, db, "Ada", "ada@example.com")

	found, err := db.Users().GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if found.Email != "ada@example.com" {
		t.Errorf("Email = %q, want %q", found.Email, "ada@example.com")
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Users().GetByID(context.Background(), "no-such-id")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}
