package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/rogerio-castellano/coffee-maker/internal/models"
	"go.uber.org/zap"
)

// CheckInventoryHandler godoc
// @Summary Inventory report
// @Tags inventory
// @Produce plain
// @Success 200 {string} string "Coffee: 15\nMilk: 15\nSugar: 15\nChocolate: 15\n"
// @Router /inventory [get]
func CheckInventoryHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, machine.CheckInventory()); err != nil {
		logger.Error("failed to write inventory report", zap.Error(err))
	}
}

// GetInventoryLevelsHandler godoc
// @Summary Inventory levels
// @Tags inventory
// @Produce json
// @Success 200 {object} repo.Levels
// @Router /inventory/levels [get]
func GetInventoryLevelsHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, machine.InventoryLevels()); err != nil {
		logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// AddInventoryHandler godoc
// @Summary Restock ingredients
// @Description All four quantities must be non-negative integers or nothing is added
// @Tags inventory
// @Accept json
// @Security BearerAuth
// @Param inventory body InventoryRequest true "Units to add"
// @Success 204
// @Failure 400 {string} string "Invalid quantity"
// @Router /inventory [post]
func AddInventoryHandler(w http.ResponseWriter, r *http.Request) {
	var req InventoryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := machine.AddInventory(string(req.Coffee), string(req.Milk), string(req.Sugar), string(req.Chocolate))
	if err != nil {
		if errors.Is(err, models.ErrInvalidQuantity) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "could not add inventory", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
