// Package model defines the data structures used throughout the application.
package model

import "time"

// Difficulty is the cooking difficulty of a recipe.
// It's a closed enumeration — only the three values below are valid.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is one of the three known difficulty values.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Recipe is a cooking recipe owned by exactly one user.
//
// The `json:"..."` tags tell Go's encoding/json package how to serialize/deserialize
// this struct to/from JSON. Field names match the API wire format
// (camelCase, e.g. prepTime).
//
// OWNERSHIP:
// UserID is the owning user. It is always stamped server-side from the
// authenticated caller's identity — never taken from a request body.
// Mutation and deletion require the caller to be the owner; reads of the
// full collection are public.
//
// The slice-valued fields (Ingredients, Instructions, Tags) are ordered
// sequences of free text. The storage layer decides how to persist them;
// an empty slice and nil both serialize as JSON [] via the repository's
// normalisation.
type Recipe struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"` // required
	Description  string     `json:"description"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	PrepTime     int        `json:"prepTime"` // minutes, non-negative
	CookTime     int        `json:"cookTime"` // minutes, non-negative
	Servings     int        `json:"servings"`
	Calories     int        `json:"calories"`
	Image        string     `json:"image"` // URL
	Tags         []string   `json:"tags"`
	Difficulty   Difficulty `json:"difficulty"` // defaults to Easy
	UserID       string     `json:"userId"`     // owning user, required
	CreatedAt    time.Time  `json:"createdAt"`
}
