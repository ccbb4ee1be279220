package repository

import (
	"context"

	"github.com/Shubhangisharma21/CookerHelper/internal/model"
)

// UserRepository persists user accounts. Users are write-once: created at
// registration, read at login and profile fetch, never updated or deleted.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// RecipeRepository persists recipes.
//
// The *Owned methods take both the recipe id and the caller's user id and
// combine them into a single lookup predicate. A recipe that exists but
// belongs to someone else is indistinguishable from one that doesn't exist —
// both come back as not-found. Any reimplementation must keep that property.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	ListAll(ctx context.Context) ([]model.Recipe, error)
	ListByOwner(ctx context.Context, userID string) ([]model.Recipe, error)
	GetOwned(ctx context.Context, id, userID string) (*model.Recipe, error)
	UpdateOwned(ctx context.Context, recipe *model.Recipe) error
	DeleteOwned(ctx context.Context, id, userID string) error
}
