package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/Shubhangisharma21/CookerHelper/internal/apperror"
	"github.com/Shubhangisharma21/CookerHelper/internal/model"
	"github.com/Shubhangisharma21/CookerHelper/internal/repository"
)

// COMPILE-TIME INTERFACE CHECK:
// `var _ X = (*Y)(nil)` verifies at compile time that *DB implements
// repository.RecipeRepository. Without this, a missing method would only
// surface where *DB is passed as the interface — which could be much later.
var _ repository.RecipeRepository = (*DB)(nil)

const recipeColumns = `id, title, description, ingredients, instructions,
	prep_time, cook_time, servings, calories, image, tags, difficulty,
	user_id, created_at`

// Create inserts a new recipe.
//
// The repository owns ID generation (xid) and the creation timestamp; the
// owner (UserID) must already be stamped by the service layer from the
// authenticated caller. The caller's struct is modified in place so it
// carries the generated ID afterwards — that's what the 201 response returns.
func (db *DB) Create(ctx context.Context, recipe *model.Recipe) error {
	recipe.ID = xid.New().String()
	recipe.CreatedAt = time.Now()
	if recipe.Difficulty == "" {
		recipe.Difficulty = model.DifficultyEasy
	}

	ingredients, instructions, tags, err := marshalLists(recipe)
	if err != nil {
		return err
	}

	// PARAMETERIZED QUERIES (the ? placeholders):
	// Never build SQL with string concatenation — the driver escapes the
	// values, which is what prevents SQL injection.
	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO recipes (`+recipeColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recipe.ID,
		recipe.Title,
		recipe.Description,
		ingredients,
		instructions,
		recipe.PrepTime,
		recipe.CookTime,
		recipe.Servings,
		recipe.Calories,
		recipe.Image,
		tags,
		string(recipe.Difficulty),
		recipe.UserID,
		recipe.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating recipe: %w", err)
	}

	return nil
}

// ListAll returns every recipe regardless of owner, in insertion order.
// This is the public listing — the read side is deliberately unscoped even
// though the write side is owner-only.
func (db *DB) ListAll(ctx context.Context) ([]model.Recipe, error) {
	return db.listRecipes(ctx,
		`SELECT `+recipeColumns+` FROM recipes ORDER BY rowid`)
}

// ListByOwner returns all recipes owned by userID, in insertion order.
func (db *DB) ListByOwner(ctx context.Context, userID string) ([]model.Recipe, error) {
	return db.listRecipes(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE user_id = ? ORDER BY rowid`,
		userID)
}

func (db *DB) listRecipes(ctx context.Context, query string, args ...any) ([]model.Recipe, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing recipes: %w", err)
	}
	// CRITICAL: always close rows — they hold a pool connection.
	defer rows.Close()

	recipes := []model.Recipe{}
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *r)
	}

	// rows.Err() catches errors that happened DURING iteration
	// (e.g. the connection dropping mid-scan).
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating recipes: %w", err)
	}

	return recipes, nil
}

// GetOwned retrieves a recipe matching BOTH id and owner.
//
// OWNER-SCOPED QUERY:
// The WHERE clause requires id AND user_id to match in one predicate.
// A recipe owned by another user produces the same NotFound as a
// nonexistent id — the caller cannot probe for existence of other
// people's recipes.
func (db *DB) GetOwned(ctx context.Context, id, userID string) (*model.Recipe, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = ? AND user_id = ?`,
		id, userID)

	r, err := scanRecipe(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("Recipe")
		}
		return nil, err
	}
	return r, nil
}

// UpdateOwned writes back a recipe's mutable fields, keyed on id AND owner.
// RowsAffected()==0 means the compound predicate matched nothing — either
// the id doesn't exist or it belongs to someone else; both are NotFound.
func (db *DB) UpdateOwned(ctx context.Context, recipe *model.Recipe) error {
	ingredients, instructions, tags, err := marshalLists(recipe)
	if err != nil {
		return err
	}

	result, err := db.conn.ExecContext(ctx,
		`UPDATE recipes
		 SET title = ?, description = ?, ingredients = ?, instructions = ?,
		     prep_time = ?, cook_time = ?, servings = ?, calories = ?,
		     image = ?, tags = ?, difficulty = ?
		 WHERE id = ? AND user_id = ?`,
		recipe.Title,
		recipe.Description,
		ingredients,
		instructions,
		recipe.PrepTime,
		recipe.CookTime,
		recipe.Servings,
		recipe.Calories,
		recipe.Image,
		tags,
		string(recipe.Difficulty),
		recipe.ID,
		recipe.UserID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating recipe %s: %w", recipe.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("Recipe")
	}

	return nil
}

// DeleteOwned removes a recipe matching id AND owner.
// Same pattern as UpdateOwned — zero rows affected is NotFound.
func (db *DB) DeleteOwned(ctx context.Context, id, userID string) error {
	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM recipes WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting recipe %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("Recipe")
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows so one scan helper serves
// single-row and multi-row queries.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecipe(s scanner) (*model.Recipe, error) {
	var (
		r            model.Recipe
		ingredients  string
		instructions string
		tags         string
		difficulty   string
	)

	err := s.Scan(
		&r.ID,
		&r.Title,
		&r.Description,
		&ingredients,
		&instructions,
		&r.PrepTime,
		&r.CookTime,
		&r.Servings,
		&r.Calories,
		&r.Image,
		&tags,
		&difficulty,
		&r.UserID,
		&r.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("sqlite: scanning recipe row: %w", err)
	}

	r.Difficulty = model.Difficulty(difficulty)

	if err := json.Unmarshal([]byte(ingredients), &r.Ingredients); err != nil {
		return nil, fmt.Errorf("sqlite: decoding ingredients for %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(instructions), &r.Instructions); err != nil {
		return nil, fmt.Errorf("sqlite: decoding instructions for %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(tags), &r.Tags); err != nil {
		return nil, fmt.Errorf("sqlite: decoding tags for %s: %w", r.ID, err)
	}

	return &r, nil
}

// marshalLists encodes the three slice-valued fields as JSON array text.
// nil slices are stored as [] so they come back as empty arrays, not null.
func marshalLists(r *model.Recipe) (ingredients, instructions, tags string, err error) {
	enc := func(list []string) (string, error) {
		if list == nil {
			list = []string{}
		}
		b, err := json.Marshal(list)
		if err != nil {
			return "", fmt.Errorf("sqlite: encoding recipe list field: %w", err)
		}
		return string(b), nil
	}

	if ingredients, err = enc(r.Ingredients); err != nil {
		return "", "", "", err
	}
	if instructions, err = enc(r.Instructions); err != nil {
		return "", "", "", err
	}
	if tags, err = enc(r.Tags); err != nil {
		return "", "", "", err
	}
	return ingredients, instructions, tags, nil
}
