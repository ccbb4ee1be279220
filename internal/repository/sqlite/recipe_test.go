package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/Shubhangisharma21/CookerHelper/internal/apperror"
	"github.com/Shubhangisharma21/CookerHelper/internal/model"
)

// createTestRecipe inserts a recipe owned by userID and fails the test on error.
func createTestRecipe(t *testing.T, db *DB, title, userID string) *model.Recipe {
	t.Helper()
	recipe := &model.Recipe{
		Title:        title,
		Description:  "a test recipe",
		Ingredients:  []string{"salt", "water"},
		Instructions: []string{"combine", "boil"},
		PrepTime:     5,
		CookTime:     10,
		Servings:     2,
		Tags:         []string{"test"},
		UserID:       userID,
	}
	if err := db.Create(context.Background(), recipe); err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return recipe
}

// =========================================================================
// CREATE TESTS
// =========================================================================

func TestCreateRecipe(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Ada", "ada@example.com")

	recipe := createTestRecipe(t, db, "Boiled Water", owner.ID)

	if recipe.ID == "" {
		t.Error("Create() did not set recipe.ID")
	}
	if recipe.CreatedAt.IsZero() {
		t.Error("Create() did not set recipe.CreatedAt")
	}
	if recipe.Difficulty != model.DifficultyEasy {
		t.Errorf("Difficulty = %q, want default %q", recipe.Difficulty, model.DifficultyEasy)
	}
}

func TestCreateRecipe_RoundTripsListFields(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Ada", "ada@example.com")
	created := createTestRecipe(t, db, "Boiled Water", owner.ID)

	found, err := db.GetOwned(context.Background(), created.ID, owner.ID)
	if err != nil {
		t.Fatalf("GetOwned() error = %v", err)
	}

	if len(found.Ingredients) != 2 || found.Ingredients[0] != "salt" {
		t.Errorf("Ingredients = %v, want [salt water]", found.Ingredients)
	}
	if len(found.Instructions) != 2 || found.Instructions[1] != "boil" {
		t.Errorf("Instructions = %v, want [combine boil]", found.Instructions)
	}
	if len(found.Tags) != 1 || found.Tags[0] != "test" {
		t.Errorf("Tags = %v, want [test]", found.Tags)
	}
}

func TestCreateRecipe_NilSlicesBecomeEmpty(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Ada", "ada@example.com")

	recipe := &model.Recipe{Title: "Minimal", UserID: owner.ID}
	if err := db.Create(context.Background(), recipe); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := db.GetOwned(context.Background(), recipe.ID, owner.ID)
	if err != nil {
		t.Fatalf("GetOwned() error = %v", err)
	}

	// Stored as JSON [] — must come back as empty slices so the API
	// serializes them as [] and never null.
	if found.Ingredients == nil || len(found.Ingredients) != 0 {
		t.Errorf("Ingredients = %#v, want empty non-nil slice", found.Ingredients)
	}
	if found.Tags == nil || len(found.Tags) != 0 {
		t.Errorf("Tags = %#v, want empty non-nil slice", found.Tags)
	}
}

// =========================================================================
// LIST TESTS
// =========================================================================

func TestListAll_ReturnsEveryOwner(t *testing.T) {
	db := newTestDB(t)
	ada := createTestUser(t, db, "Ada", "ada@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")

	createTestRecipe(t, db, "Ada's Soup", ada.ID)
	createTestRecipe(t, db, "Bob's Stew", bob.ID)

	all, err := db.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("ListAll() returned %d recipes, want 2", len(all))
	}
	// Insertion order as stored
	if all[0].Title != "Ada's Soup" || all[1].Title != "Bob's Stew" {
		t.Errorf("ListAll() order = [%s, %s], want insertion order", all[0].Title, all[1].Title)
	}
}

func TestListByOwner(t *testing.T) {
	db := newTestDB(t)
	ada := createTestUser(t, db, "Ada", "ada@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")

	createTestRecipe(t, db, "Ada's Soup", ada.ID)
	createTestRecipe(t, db, "Bob's Stew", bob.ID)

	mine, err := db.ListByOwner(context.Background(), ada.ID)
	if err != nil {
		t.Fatalf("ListByOwner() error = %v", err)
	}

	if len(mine) != 1 {
		t.Fatalf("ListByOwner() returned %d recipes, want 1", len(mine))
	}
	if mine[0].Title != "Ada's Soup" {
		t.Errorf("Title = %q, want %q", mine[0].Title, "Ada's Soup")
	}
}

func TestListAll_EmptyIsNotNil(t *testing.T) {
	db := newTestDB(t)

	all, err := db.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if all == nil {
		t.Error("ListAll() returned nil, want empty slice (serializes as [])")
	}
}

// =========================================================================
// OWNER-SCOPED MUTATION TESTS
// =========================================================================
//
// The owner-compound predicate is the load-bearing invariant here: a recipe
// that exists but belongs to another user must be indistinguishable from a
// nonexistent id.

func TestGetOwned_WrongOwnerIsNotFound(t *testing.T) {
	db := newTestDB(t)
	ada := createTestUser(t, db, "Ada", "ada@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")
	recipe := createTestRecipe(t, db, "Ada's Soup", ada.ID)

	_, errWrongOwner := db.GetOwned(context.Background(), recipe.ID, bob.ID)
	_, errNoSuchID := db.GetOwned(context.Background(), "no-such-id", bob.ID)

	if !errors.Is(errWrongOwner, apperror.ErrNotFound) {
		t.Errorf("GetOwned(other owner) error = %v, want ErrNotFound", errWrongOwner)
	}
	if !errors.Is(errNoSuchID, apperror.ErrNotFound) {
		t.Errorf("GetOwned(bogus id) error = %v, want ErrNotFound", errNoSuchID)
	}
	// Same error either way — no existence leakage
	if errWrongOwner.Error() != errNoSuchID.Error() {
		t.Errorf("wrong-owner (%q) and bogus-id (%q) errors differ", errWrongOwner, errNoSuchID)
	}
}

func TestUpdateOwned(t *testing.T) {
	db := newTestDB(t)
	ada := createTestUser(t, db, "Ada", "ada@example.com")
	recipe := createTestRecipe(t, db, "Ada's Soup", ada.ID)

	recipe.Title = "Ada's Better Soup"
	recipe.Servings = 6
	if err := db.UpdateOwned(context.Background(), recipe); err != nil {
		t.Fatalf("UpdateOwned() error = %v", err)
	}

	found, err := db.GetOwned(context.Background(), recipe.ID, ada.ID)
	if err != nil {
		t.Fatalf("GetOwned() error = %v", err)
	}
	if found.Title != "Ada's Better Soup" {
		t.Errorf("Title = %q, want %q", found.Title, "Ada's Better Soup")
	}
	if found.Servings != 6 {
		t.Errorf("Servings = %d, want 6", found.Servings)
	}
}

func TestUpdateOwned_WrongOwnerIsNotFound(t *testing.T) {
	db := newTestDB(t)
	ada := createTestUser(t, db, "Ada", "ada@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")
	recipe := createTestRecipe(t, db, "Ada's Soup", ada.ID)

	hijacked := *recipe
	hijacked.UserID = bob.ID
	hijacked.Title = "Bob's Now"

	err := db.UpdateOwned(context.Background(), &hijacked)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("UpdateOwned() error = %v, want ErrNotFound", err)
	}

	// The original is untouched
	found, _ := db.GetOwned(context.Background(), recipe.ID, ada.ID)
	if found.Title != "Ada's Soup" {
		t.Errorf("cross-owner update modified the recipe: Title = %q", found.Title)
	}
}

func TestDeleteOwned(t *testing.T) {
	db := newTestDB(t)
	ada := createTestUser(t, db, "Ada", "ada@example.com")
	recipe := createTestRecipe(t, db, "Ada's Soup", ada.ID)

	if err := db.DeleteOwned(context.Background(), recipe.ID, ada.ID); err != nil {
		t.Fatalf("DeleteOwned() error = %v", err)
	}

	_, err := db.GetOwned(context.Background(), recipe.ID, ada.ID)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("recipe still present after delete: err = %v", err)
	}
}

func TestDeleteOwned_WrongOwnerIsNotFound(t *testing.T) {
	db := newTestDB(t)
	ada := createTestUser(t, db, "Ada", "ada@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")
	recipe := createTestRecipe(t, db, "Ada's Soup", ada.ID)

	err := db.DeleteOwned(context.Background(), recipe.ID, bob.ID)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("DeleteOwned() error = %v, want ErrNotFound", err)
	}

	// Still there for the real owner
	if _, err := db.GetOwned(context.Background(), recipe.ID, ada.ID); err != nil {
		t.Errorf("cross-owner delete removed the recipe: %v", err)
	}
}

func TestDeleteOwned_NonexistentID(t *testing.T) {
	db := newTestDB(t)
	ada := createTestUser(t, db, "Ada", "ada@example.com")

	err := db.DeleteOwned(context.Background(), "no-such-id", ada.ID)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("DeleteOwned() error = %v, want ErrNotFound", err)
	}
}
