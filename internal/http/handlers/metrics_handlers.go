package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics for admin view
// @Description Sales totals plus current inventory levels and the ingredients running low
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metricsRepo.GetDashboardMetrics()
	if err != nil {
		logger.Error("failed to fetch metrics", zap.Error(err))
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}

	levels := machine.InventoryLevels()
	lowStock := []string{}
	for _, ing := range levels.Below(lowStockThreshold) {
		lowStock = append(lowStock, ing.Label())
	}

	err = writeJSON(w, http.StatusOK, DashboardResponse{
		Metrics:   m,
		Inventory: levels,
		LowStock:  lowStock,
	})
	if err != nil {
		logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// HealthHandler reports liveness.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
