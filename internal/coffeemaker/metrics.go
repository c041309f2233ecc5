package coffeemaker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rogerio-castellano/coffee-maker/internal/models"
	"github.com/rogerio-castellano/coffee-maker/internal/repo"
)

var (
	purchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coffeemaker_purchases_total",
			Help: "Total number of purchase attempts by outcome",
		},
		[]string{"outcome"},
	)

	revenueTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coffeemaker_revenue_total",
			Help: "Sum of the prices of dispensed drinks",
		},
	)

	ingredientUnits = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "coffeemaker_ingredient_units",
			Help: "Units of each ingredient currently stocked",
		},
		[]string{"ingredient"},
	)
)

func init() {
	for _, o := range models.Outcomes {
		purchasesTotal.WithLabelValues(string(o))
	}
}

func observeLevels(l repo.Levels) {
	for _, ing := range models.Ingredients {
		ingredientUnits.WithLabelValues(ing.Label()).Set(float64(l.Of(ing)))
	}
}
