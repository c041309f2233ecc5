package repo

import (
	"testing"
	"time"

	"github.com/rogerio-castellano/coffee-maker/internal/models"
)

func intPtr(v int) *int { return &v }

func seedSales(r *InMemorySaleRepository, base time.Time) {
	sales := []models.Sale{
		{RecipeName: "Coffee", Price: 50, Payment: 75, Change: 25, Outcome: models.OutcomeDispensed},
		{RecipeName: "Coffee", Price: 50, Payment: 30, Change: 30, Outcome: models.OutcomeInsufficientFunds},
		{RecipeName: "Mocha", Price: 75, Payment: 75, Change: 0, Outcome: models.OutcomeDispensed},
		{Slot: 3, Payment: 10, Change: 10, Outcome: models.OutcomeNoSuchRecipe},
		{RecipeName: "Coffee", Price: 50, Payment: 50, Change: 0, Outcome: models.OutcomeDispensed},
	}
	for i, s := range sales {
		s.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		_ = r.Log(s)
	}
}

func TestInMemorySaleRepository_LogAssignsID(t *testing.T) {
	r := NewInMemorySaleRepository()
	_ = r.Log(models.Sale{RecipeName: "Coffee", Outcome: models.OutcomeDispensed})

	all := r.All()
	if len(all) != 1 {
		t.Fatalf("expected 1 sale, got %d", len(all))
	}
	if all[0].ID == "" {
		t.Error("expected an ID to be assigned")
	}
	if all[0].CreatedAt.IsZero() {
		t.Error("expected a timestamp to be assigned")
	}
}

func TestInMemorySaleRepository_List(t *testing.T) {
	r := NewInMemorySaleRepository()
	base := time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC)
	seedSales(r, base)

	since := base.Add(2 * time.Minute)

	tests := []struct {
		name      string
		filter    SaleFilter
		wantLen   int
		wantTotal int
		firstName string
	}{
		{"all newest first", SaleFilter{}, 5, 5, "Coffee"},
		{"by recipe", SaleFilter{Recipe: "Mocha"}, 1, 1, "Mocha"},
		{"by outcome", SaleFilter{Outcome: models.OutcomeDispensed}, 3, 3, "Coffee"},
		{"since", SaleFilter{Since: &since}, 3, 3, "Coffee"},
		{"paged", SaleFilter{Offset: intPtr(1), Limit: intPtr(2)}, 2, 5, ""},
		{"offset beyond", SaleFilter{Offset: intPtr(10)}, 0, 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := r.List(tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("expected %d sales, got %d", tt.wantLen, len(got))
			}
			if total != tt.wantTotal {
				t.Errorf("expected total %d, got %d", tt.wantTotal, total)
			}
			if tt.firstName != "" && len(got) > 0 && got[0].RecipeName != tt.firstName {
				t.Errorf("expected first sale %q, got %q", tt.firstName, got[0].RecipeName)
			}
		})
	}
}

func TestInMemorySaleRepository_ListPagingOrder(t *testing.T) {
	r := NewInMemorySaleRepository()
	seedSales(r, time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC))

	got, _, _ := r.List(SaleFilter{Offset: intPtr(1), Limit: intPtr(2)})
	if got[0].Outcome != models.OutcomeNoSuchRecipe || got[1].RecipeName != "Mocha" {
		t.Errorf("unexpected page: %+v", got)
	}
}

func TestInMemorySaleRepository_NegativeOffset(t *testing.T) {
	r := NewInMemorySaleRepository()
	seedSales(r, time.Now())

	if _, _, err := r.List(SaleFilter{Offset: intPtr(-1)}); err == nil {
		t.Error("expected an error for a negative offset")
	}
}

func TestInMemoryMetricsRepository(t *testing.T) {
	sales := NewInMemorySaleRepository()
	seedSales(sales, time.Now())

	m, err := NewInMemoryMetricsRepository(sales).GetDashboardMetrics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TotalSales != 3 {
		t.Errorf("expected 3 sales, got %d", m.TotalSales)
	}
	if m.Revenue != 175 {
		t.Errorf("expected revenue 175, got %d", m.Revenue)
	}
	if m.RejectedPurchases != 2 {
		t.Errorf("expected 2 rejected, got %d", m.RejectedPurchases)
	}
	if m.TopRecipe.Name != "Coffee" || m.TopRecipe.SaleCount != 2 {
		t.Errorf("expected top recipe Coffee x2, got %+v", m.TopRecipe)
	}
}

func TestInMemoryMetricsRepository_Empty(t *testing.T) {
	m, err := NewInMemoryMetricsRepository(NewInMemorySaleRepository()).GetDashboardMetrics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != (Metrics{}) {
		t.Errorf("expected zero metrics, got %+v", m)
	}
}

func TestInMemoryUserRepository(t *testing.T) {
	r := NewInMemoryUserRepository()

	created, err := r.CreateUser(models.User{Username: "admin", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID 1, got %d", created.ID)
	}

	if _, err := r.CreateUser(models.User{Username: "admin"}); err != ErrDuplicatedValueUnique {
		t.Errorf("expected ErrDuplicatedValueUnique, got %v", err)
	}

	got, err := r.GetByUsername("admin")
	if err != nil || got.Role != models.RoleAdmin {
		t.Errorf("expected admin user, got %+v (%v)", got, err)
	}

	if _, err := r.GetByUsername("nobody"); err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
