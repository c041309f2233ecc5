package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/coffee-maker/internal/models"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m Metrics
	dispensed := string(models.OutcomeDispensed)

	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE outcome = $1),
			COALESCE(SUM(price) FILTER (WHERE outcome = $1), 0),
			COUNT(*) FILTER (WHERE outcome <> $1)
		FROM sales
	`, dispensed).Scan(&m.TotalSales, &m.Revenue, &m.RejectedPurchases)
	if err != nil {
		return m, fmt.Errorf("failed to aggregate sales: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT recipe_name, COUNT(*) AS cnt
		FROM sales
		WHERE outcome = $1
		GROUP BY recipe_name
		ORDER BY cnt DESC, MIN(created_at)
		LIMIT 1
	`, dispensed).Scan(&m.TopRecipe.Name, &m.TopRecipe.SaleCount)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return m, fmt.Errorf("failed to find top recipe: %w", err)
	}

	return m, nil
}
