package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// PurchaseHandler godoc
// @Summary Buy a drink
// @Description Always answers 200; a rejected purchase returns the whole payment as change
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body PurchaseRequest true "Slot (0-based) and payment"
// @Success 200 {object} PurchaseResult
// @Failure 400 {string} string "Invalid input"
// @Failure 429 {string} string "Too many requests"
// @Router /purchases [post]
func PurchaseHandler(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	receipt := machine.PurchaseWithReceipt(req.Slot, req.Payment)
	resp := PurchaseResult{
		Change:    receipt.Change,
		Dispensed: receipt.Dispensed(),
	}
	if receipt.Dispensed() {
		resp.Recipe = receipt.Recipe
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("failed to write JSON response", zap.Error(err))
	}
}
