package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shubhangisharma21/CookerHelper/internal/auth"
	"github.com/Shubhangisharma21/CookerHelper/internal/service"
)

// RecipeHandler manages CRUD operations for recipes.
//
// ROUTES:
//   - POST   /recipes       (bearer) create, owner stamped from token
//   - GET    /recipes/my    (bearer) caller's own recipes
//   - GET    /recipes       (public) every recipe, any owner
//   - PUT    /recipes/{id}  (bearer) partial update, owner-scoped
//   - DELETE /recipes/{id}  (bearer) delete, owner-scoped
//
// The read/write asymmetry is intentional: anyone can browse the full
// collection, but only the owner can change a recipe.
type RecipeHandler struct {
	recipes *service.RecipeService
	logger  *slog.Logger
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(recipes *service.RecipeService, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, logger: logger}
}

// HandleCreate saves a new recipe owned by the caller.
//
// HTTP: POST /recipes  (behind auth.RequireAuth)
// REQUEST BODY: partial Recipe, e.g. {"title": "Shakshuka", "ingredients": [...]}
//
// The body decodes into service.RecipeInput, which has no owner field —
// whatever identity the client claims, the stored owner is the token's.
// Responds 201 with the created recipe including its server-generated id.
func (h *RecipeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "valid authentication required"})
		return
	}

	var in service.RecipeInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	recipe, err := h.recipes.Create(r.Context(), id.UserID, in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, recipe)
}

// HandleListMine returns the caller's own recipes.
//
// HTTP: GET /recipes/my  (behind auth.RequireAuth)
func (h *RecipeHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "valid authentication required"})
		return
	}

	recipes, err := h.recipes.ListMine(r.Context(), id.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

// HandleListAll returns every recipe regardless of owner.
//
// HTTP: GET /recipes  (public, no auth)
func (h *RecipeHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.recipes.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

// HandleUpdate applies a partial update to one of the caller's recipes.
//
// HTTP: PUT /recipes/{id}  (behind auth.RequireAuth)
//
// Fields absent from the body keep their stored values. A recipe that
// doesn't exist — or exists but belongs to someone else — is a 404 either
// way; the response never reveals which.
func (h *RecipeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "valid authentication required"})
		return
	}

	recipeID := chi.URLParam(r, "id")

	var in service.RecipeUpdate
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	recipe, err := h.recipes.Update(r.Context(), id.UserID, recipeID, in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

// HandleDelete removes one of the caller's recipes.
//
// HTTP: DELETE /recipes/{id}  (behind auth.RequireAuth)
//
// Responds 200 with a confirmation message. Same 404 unification as update.
func (h *RecipeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "valid authentication required"})
		return
	}

	recipeID := chi.URLParam(r, "id")

	if err := h.recipes.Delete(r.Context(), id.UserID, recipeID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Recipe deleted successfully",
	})
}
