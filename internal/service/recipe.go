package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Shubhangisharma21/CookerHelper/internal/apperror"
	"github.com/Shubhangisharma21/CookerHelper/internal/model"
	"github.com/Shubhangisharma21/CookerHelper/internal/repository"
)

// MaxTitleLength caps recipe titles. There's no product requirement for the
// exact number — it just keeps a single field from storing a novel.
const MaxTitleLength = 200

// RecipeService handles business logic for recipes.
//
// Every mutation is scoped to the calling user: Create stamps the owner,
// Update and Delete go through the repository's owner-compound predicate.
// The service never trusts an owner id arriving in a request body.
type RecipeService struct {
	repo   repository.RecipeRepository
	logger *slog.Logger
}

// NewRecipeService creates a RecipeService.
func NewRecipeService(repo repository.RecipeRepository, logger *slog.Logger) *RecipeService {
	return &RecipeService{
		repo:   repo,
		logger: logger,
	}
}

// RecipeInput is the typed create-request body. Unknown fields are rejected
// at decode time by the handler; anything resembling an owner id simply has
// no field to land in.
type RecipeInput struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Ingredients  []string         `json:"ingredients"`
	Instructions []string         `json:"instructions"`
	PrepTime     int              `json:"prepTime"`
	CookTime     int              `json:"cookTime"`
	Servings     int              `json:"servings"`
	Calories     int              `json:"calories"`
	Image        string           `json:"image"`
	Tags         []string         `json:"tags"`
	Difficulty   model.Difficulty `json:"difficulty"`
}

// RecipeUpdate is the typed partial-update body. Every field is a pointer:
// nil means "the client didn't send this field, keep the stored value",
// non-nil means "replace with this value" (including zero values — sending
// "servings": 0 really sets servings to 0).
type RecipeUpdate struct {
	Title        *string           `json:"title"`
	Description  *string           `json:"description"`
	Ingredients  *[]string         `json:"ingredients"`
	Instructions *[]string         `json:"instructions"`
	PrepTime     *int              `json:"prepTime"`
	CookTime     *int              `json:"cookTime"`
	Servings     *int              `json:"servings"`
	Calories     *int              `json:"calories"`
	Image        *string           `json:"image"`
	Tags         *[]string         `json:"tags"`
	Difficulty   *model.Difficulty `json:"difficulty"`
}

// Create validates and persists a new recipe owned by userID.
//
// The owner comes from the authenticated caller's token identity — the
// request body has no say in it. The returned recipe carries the
// server-generated id and creation timestamp.
func (s *RecipeService) Create(ctx context.Context, userID string, in RecipeInput) (*model.Recipe, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, apperror.ValidationFailed("title",
			fmt.Sprintf("title must be %d characters or less", MaxTitleLength))
	}
	if err := validateNumbers(in.PrepTime, in.CookTime, in.Servings, in.Calories); err != nil {
		return nil, err
	}

	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyEasy
	}
	if !difficulty.Valid() {
		return nil, apperror.ValidationFailed("difficulty",
			"difficulty must be one of Easy, Medium, Hard")
	}

	recipe := &model.Recipe{
		Title:        title,
		Description:  in.Description,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		PrepTime:     in.PrepTime,
		CookTime:     in.CookTime,
		Servings:     in.Servings,
		Calories:     in.Calories,
		Image:        in.Image,
		Tags:         in.Tags,
		Difficulty:   difficulty,
		UserID:       userID,
	}

	if err := s.repo.Create(ctx, recipe); err != nil {
		s.logger.Error("failed to create recipe",
			slog.String("title", title),
			slog.String("userID", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating recipe: %w", err)
	}

	s.logger.Info("recipe created",
		slog.String("id", recipe.ID),
		slog.String("userID", userID),
	)

	return recipe, nil
}

// ListAll returns every recipe in the system, any owner. This is the public
// catalog; the owner-filtered read is ListMine. Writes stay owner-scoped —
// don't narrow this read to match them.
func (s *RecipeService) ListAll(ctx context.Context) ([]model.Recipe, error) {
	recipes, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list recipes", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	return recipes, nil
}

// ListMine returns the caller's own recipes.
func (s *RecipeService) ListMine(ctx context.Context, userID string) ([]model.Recipe, error) {
	recipes, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list user recipes",
			slog.String("userID", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing recipes for user: %w", err)
	}
	return recipes, nil
}

// Update applies a partial update to a recipe the caller owns.
//
// STRATEGY: "Fetch then update"
//  1. Fetch the existing recipe through the owner-compound predicate
//     (wrong owner == nonexistent id == NotFound)
//  2. Overlay the non-nil fields from the update body
//  3. Validate the merged result and write it back
//
// The write-back also goes through the compound predicate, so a recipe
// deleted between steps 1 and 3 still comes back NotFound, never a
// silent no-op.
func (s *RecipeService) Update(ctx context.Context, userID, id string, in RecipeUpdate) (*model.Recipe, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "recipe ID is required")
	}

	recipe, err := s.repo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperror.ValidationFailed("title", "title is required")
		}
		if len(title) > MaxTitleLength {
			return nil, apperror.ValidationFailed("title",
				fmt.Sprintf("title must be %d characters or less", MaxTitleLength))
		}
		recipe.Title = title
	}
	if in.Description != nil {
		recipe.Description = *in.Description
	}
	if in.Ingredients != nil {
		recipe.Ingredients = *in.Ingredients
	}
	if in.Instructions != nil {
		recipe.Instructions = *in.Instructions
	}
	if in.PrepTime != nil {
		recipe.PrepTime = *in.PrepTime
	}
	if in.CookTime != nil {
		recipe.CookTime = *in.CookTime
	}
	if in.Servings != nil {
		recipe.Servings = *in.Servings
	}
	if in.Calories != nil {
		recipe.Calories = *in.Calories
	}
	if in.Image != nil {
		recipe.Image = *in.Image
	}
	if in.Tags != nil {
		recipe.Tags = *in.Tags
	}
	if in.Difficulty != nil {
		if !in.Difficulty.Valid() {
			return nil, apperror.ValidationFailed("difficulty",
				"difficulty must be one of Easy, Medium, Hard")
		}
		recipe.Difficulty = *in.Difficulty
	}

	if err := validateNumbers(recipe.PrepTime, recipe.CookTime, recipe.Servings, recipe.Calories); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateOwned(ctx, recipe); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update recipe",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating recipe: %w", err)
	}

	s.logger.Info("recipe updated",
		slog.String("id", recipe.ID),
		slog.String("userID", userID),
	)

	return recipe, nil
}

// Delete removes a recipe the caller owns. A recipe owned by someone else
// (or a bogus id) returns NotFound.
func (s *RecipeService) Delete(ctx context.Context, userID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperror.ValidationFailed("id", "recipe ID is required")
	}

	if err := s.repo.DeleteOwned(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("recipe deleted",
		slog.String("id", id),
		slog.String("userID", userID),
	)
	return nil
}

// validateNumbers rejects negative values for the minute/count fields.
func validateNumbers(prepTime, cookTime, servings, calories int) error {
	switch {
	case prepTime < 0:
		return apperror.ValidationFailed("prepTime", "prepTime must not be negative")
	case cookTime < 0:
		return apperror.ValidationFailed("cookTime", "cookTime must not be negative")
	case servings < 0:
		return apperror.ValidationFailed("servings", "servings must not be negative")
	case calories < 0:
		return apperror.ValidationFailed("calories", "calories must not be negative")
	}
	return nil
}
