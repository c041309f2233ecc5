package repo

// InMemoryMetricsRepository aggregates the dashboard from an in-memory journal.
type InMemoryMetricsRepository struct {
	saleRepo *InMemorySaleRepository
}

func NewInMemoryMetricsRepository(saleRepo *InMemorySaleRepository) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{saleRepo: saleRepo}
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	m := Metrics{}
	if i.saleRepo == nil {
		return m, nil
	}

	perRecipe := map[string]int{}
	var order []string
	for _, s := range i.saleRepo.All() {
		if !s.Dispensed() {
			m.RejectedPurchases++
			continue
		}
		m.TotalSales++
		m.Revenue += s.Price
		if _, seen := perRecipe[s.RecipeName]; !seen {
			order = append(order, s.RecipeName)
		}
		perRecipe[s.RecipeName]++
	}

	// first recipe to reach the highest count wins ties
	for _, name := range order {
		if perRecipe[name] > m.TopRecipe.SaleCount {
			m.TopRecipe = TopRecipe{Name: name, SaleCount: perRecipe[name]}
		}
	}

	return m, nil
}
