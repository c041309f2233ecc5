package handlers

import (
	"github.com/rogerio-castellano/coffee-maker/internal/coffeemaker"
	repo "github.com/rogerio-castellano/coffee-maker/internal/repo"
	"go.uber.org/zap"
)

var (
	machine     *coffeemaker.CoffeeMaker
	saleRepo    repo.SaleRepository
	metricsRepo repo.MetricsRepository
	userRepo    repo.UserRepository

	logger            = zap.NewNop()
	lowStockThreshold = 3
)

func SetCoffeeMaker(cm *coffeemaker.CoffeeMaker) {
	machine = cm
}

func SetSaleRepo(r repo.SaleRepository) {
	saleRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

func SetLowStockThreshold(threshold int) {
	lowStockThreshold = threshold
}
