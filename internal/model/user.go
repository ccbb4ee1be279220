// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// User represents a registered account.
//
// Identity is email + password: the user registers with a name, a unique
// email address, and a password that is bcrypt-hashed before it ever
// touches the database.
//
// WHY PasswordHash AND NOT Password?
// The plaintext password exists only for the lifetime of the register/login
// request. What we store (and what this struct carries) is the bcrypt hash.
// The `json:"-"` tag makes encoding/json skip the field entirely, so a User
// serialized in an API response can never leak the hash.
type User struct {
	ID           string    `json:"id"        db:"id"`
	Name         string    `json:"name"      db:"name"`
	Email        string    `json:"email"     db:"email"` // unique across all users
	PasswordHash string    `json:"-"         db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
