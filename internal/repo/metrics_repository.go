package repo

type TopRecipe struct {
	Name      string `json:"name"`
	SaleCount int    `json:"sale_count"`
}

type Metrics struct {
	TotalSales        int       `json:"total_sales"`
	Revenue           int       `json:"revenue"`
	RejectedPurchases int       `json:"rejected_purchases"`
	TopRecipe         TopRecipe `json:"top_recipe"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
