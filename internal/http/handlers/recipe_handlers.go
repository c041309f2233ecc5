package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/coffee-maker/internal/coffeemaker"

	"go.uber.org/zap"
)

// GetRecipesHandler godoc
// @Summary List the recipe slots
// @Description Returns one entry per slot; empty slots are null
// @Tags recipes
// @Produce json
// @Success 200 {array} RecipeResponse
// @Router /recipes [get]
func GetRecipesHandler(w http.ResponseWriter, r *http.Request) {
	recipes := machine.Recipes()
	response := make([]*RecipeResponse, len(recipes))
	for slot, rec := range recipes {
		if rec == nil {
			continue
		}
		resp := toRecipeResponse(slot, rec)
		response[slot] = &resp
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// CreateRecipeHandler godoc
// @Summary Add a recipe
// @Description Stores the recipe in the first empty slot
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipe body RecipeRequest true "Recipe to add"
// @Success 201 {object} RecipeResponse
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "Duplicate name or book full"
// @Router /recipes [post]
func CreateRecipeHandler(w http.ResponseWriter, r *http.Request) {
	var req RecipeRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	recipe, validationErrors := buildRecipe(req)
	if len(validationErrors) > 0 {
		_ = writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	slot, err := machine.AddRecipeAt(recipe)
	if err != nil {
		http.Error(w, "could not add recipe: "+err.Error(), http.StatusConflict)
		return
	}

	if err := writeJSON(w, http.StatusCreated, toRecipeResponse(slot, &recipe)); err != nil {
		logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// UpdateRecipeHandler godoc
// @Summary Replace the recipe in a slot
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slot path int true "Recipe slot (0-based)"
// @Param recipe body RecipeRequest true "Replacement recipe"
// @Success 200 {object} EditRecipeResult
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Empty slot"
// @Failure 409 {string} string "Name used by another slot"
// @Router /recipes/{slot} [put]
func UpdateRecipeHandler(w http.ResponseWriter, r *http.Request) {
	slot, err := slotParam(r)
	if err != nil {
		http.Error(w, "invalid recipe slot", http.StatusBadRequest)
		return
	}

	var req RecipeRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	recipe, validationErrors := buildRecipe(req)
	if len(validationErrors) > 0 {
		_ = writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	previous, err := machine.ReplaceRecipe(slot, recipe)
	switch {
	case errors.Is(err, coffeemaker.ErrRecipeNotFound):
		http.Error(w, "recipe not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, "could not edit recipe: "+err.Error(), http.StatusConflict)
		return
	}

	err = writeJSON(w, http.StatusOK, EditRecipeResult{
		Replaced: previous,
		Recipe:   toRecipeResponse(slot, &recipe),
	})
	if err != nil {
		logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// DeleteRecipeHandler godoc
// @Summary Delete the recipe in a slot
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param slot path int true "Recipe slot (0-based)"
// @Success 200 {object} DeleteRecipeResult
// @Failure 400 {string} string "Invalid slot"
// @Failure 404 {string} string "Empty slot"
// @Router /recipes/{slot} [delete]
func DeleteRecipeHandler(w http.ResponseWriter, r *http.Request) {
	slot, err := slotParam(r)
	if err != nil {
		http.Error(w, "invalid recipe slot", http.StatusBadRequest)
		return
	}

	name, ok := machine.DeleteRecipe(slot)
	if !ok {
		http.Error(w, "recipe not found", http.StatusNotFound)
		return
	}

	if err := writeJSON(w, http.StatusOK, DeleteRecipeResult{Deleted: name}); err != nil {
		logger.Error("failed to write JSON response", zap.Error(err))
	}
}
