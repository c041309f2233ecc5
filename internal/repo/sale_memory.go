package repo

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/coffee-maker/internal/models"
)

type InMemorySaleRepository struct {
	mu    sync.RWMutex
	sales []models.Sale
}

func NewInMemorySaleRepository() *InMemorySaleRepository {
	return &InMemorySaleRepository{
		sales: []models.Sale{},
	}
}

// Log appends a sale, assigning an ID and timestamp when missing.
func (r *InMemorySaleRepository) Log(sale models.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	r.sales = append(r.sales, sale)
	r.mu.Unlock()
	return nil
}

func matchesSaleFilter(s models.Sale, sf SaleFilter) bool {
	if sf.Recipe != "" && s.RecipeName != sf.Recipe {
		return false
	}
	if sf.Outcome != "" && s.Outcome != sf.Outcome {
		return false
	}
	if sf.Since != nil && s.CreatedAt.Before(*sf.Since) {
		return false
	}
	if sf.Until != nil && s.CreatedAt.After(*sf.Until) {
		return false
	}
	return true
}

// List returns matching sales newest first, paginated, plus the total match count.
func (r *InMemorySaleRepository) List(sf SaleFilter) ([]models.Sale, int, error) {
	if sf.Offset != nil && *sf.Offset < 0 {
		return nil, 0, errors.New("offset must be non-negative")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Sale{}
	for i := len(r.sales) - 1; i >= 0; i-- {
		if matchesSaleFilter(r.sales[i], sf) {
			filtered = append(filtered, r.sales[i])
		}
	}

	if sf.Offset != nil && *sf.Offset >= len(filtered) {
		return []models.Sale{}, len(filtered), nil
	}

	start, end := page(len(filtered), sf.Offset, sf.Limit)
	return filtered[start:end], len(filtered), nil
}

// All returns every sale in insertion order.
func (r *InMemorySaleRepository) All() []models.Sale {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Sale, len(r.sales))
	copy(out, r.sales)
	return out
}

func (r *InMemorySaleRepository) Clear() {
	r.mu.Lock()
	r.sales = []models.Sale{}
	r.mu.Unlock()
}
