package repo

import (
	"errors"
	"testing"

	"github.com/rogerio-castellano/coffee-maker/internal/models"
)

func TestInventory_DefaultReport(t *testing.T) {
	inv := NewInventory()

	expected := "Coffee: 15\nMilk: 15\nSugar: 15\nChocolate: 15\n"
	if got := inv.Report(); got != expected {
		t.Errorf("expected report %q, got %q", expected, got)
	}
}

func TestInventory_Restock(t *testing.T) {
	inv := NewInventory()
	if err := inv.Restock("4", "7", "0", "9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Levels{Coffee: 19, Milk: 22, Sugar: 15, Chocolate: 24}
	if got := inv.Levels(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestInventory_RestockIsAllOrNothing(t *testing.T) {
	tests := []struct {
		name       string
		args       [4]string
		ingredient models.Ingredient
	}{
		{"negative milk", [4]string{"4", "-1", "asdf", "3"}, models.Milk},
		{"text sugar", [4]string{"4", "1", "asdf", "3"}, models.Sugar},
		{"negative coffee", [4]string{"-4", "1", "1", "3"}, models.Coffee},
		{"empty chocolate", [4]string{"4", "1", "1", ""}, models.Chocolate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInventory()
			before := inv.Levels()

			err := inv.Restock(tt.args[0], tt.args[1], tt.args[2], tt.args[3])
			if !errors.Is(err, models.ErrInvalidQuantity) {
				t.Fatalf("expected ErrInvalidQuantity, got %v", err)
			}
			var ie *models.InventoryError
			if !errors.As(err, &ie) || ie.Ingredient != tt.ingredient {
				t.Errorf("expected error about %s, got %v", tt.ingredient, err)
			}
			if after := inv.Levels(); after != before {
				t.Errorf("inventory changed on failed restock: %+v -> %+v", before, after)
			}
		})
	}
}

func TestInventory_ZeroRestockIsNoop(t *testing.T) {
	inv := NewInventory()
	before := inv.Levels()
	if err := inv.Restock("0", "0", "0", "0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Levels() != before {
		t.Error("zero restock should not change counts")
	}
}

func TestInventory_Consume(t *testing.T) {
	inv := NewInventory()
	coffee := mustRecipe(t, "Coffee", "50", "3", "1", "1", "0")

	if !inv.HasEnough(coffee) {
		t.Fatal("fresh inventory should cover Coffee")
	}
	if err := inv.Consume(coffee); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Levels{Coffee: 12, Milk: 14, Sugar: 14, Chocolate: 15}
	if got := inv.Levels(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestInventory_ConsumeInsufficient(t *testing.T) {
	inv := NewInventory()
	mocha := mustRecipe(t, "Mocha", "75", "3", "1", "1", "20")

	if inv.HasEnough(mocha) {
		t.Fatal("15 chocolate should not cover 20")
	}
	before := inv.Levels()
	if err := inv.Consume(mocha); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if inv.Levels() != before {
		t.Error("failed consume must not change counts")
	}
}

func TestInventory_ExactStockIsEnough(t *testing.T) {
	inv := NewInventory()
	all := mustRecipe(t, "All", "1", "15", "15", "15", "15")

	if err := inv.Consume(all); err != nil {
		t.Fatalf("exact stock should be enough: %v", err)
	}
	if got := inv.Levels(); got != (Levels{}) {
		t.Errorf("expected empty inventory, got %+v", got)
	}
}

func TestLevels_Below(t *testing.T) {
	l := Levels{Coffee: 2, Milk: 5, Sugar: 3, Chocolate: 0}

	got := l.Below(3)
	want := []models.Ingredient{models.Coffee, models.Chocolate}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
	if len(l.Below(0)) != 0 {
		t.Error("nothing is below zero")
	}
}

func TestInventory_RestockOverflowRejected(t *testing.T) {
	inv := NewInventory()
	before := inv.Levels()

	err := inv.Restock("9223372036854775807", "0", "0", "0")
	if !errors.Is(err, models.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	var ie *models.InventoryError
	if !errors.As(err, &ie) || ie.Ingredient != models.Coffee {
		t.Errorf("expected error about Coffee, got %v", err)
	}
	if after := inv.Levels(); after != before {
		t.Errorf("inventory changed on overflowing restock: %+v -> %+v", before, after)
	}

	// the largest amount that still fits is accepted
	if err := inv.Restock("0", "9223372036854775792", "0", "0"); err != nil {
		t.Fatalf("restock up to the int limit should succeed: %v", err)
	}
	if got := inv.Levels().Milk; got != 9223372036854775807 {
		t.Errorf("expected milk at the int limit, got %d", got)
	}
	if err := inv.Restock("0", "1", "0", "0"); !errors.Is(err, models.ErrInvalidQuantity) {
		t.Errorf("one more unit should overflow, got %v", err)
	}
}
