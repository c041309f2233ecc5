package repo

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rogerio-castellano/coffee-maker/internal/models"
)

// DefaultStock is the number of units of every ingredient a new machine holds.
const DefaultStock = 15

// ErrInsufficientStock is returned by Consume when a recipe needs more than is stocked.
var ErrInsufficientStock = errors.New("insufficient stock")

// Levels is a snapshot of the four ingredient counts.
type Levels struct {
	Coffee    int `json:"coffee"`
	Milk      int `json:"milk"`
	Sugar     int `json:"sugar"`
	Chocolate int `json:"chocolate"`
}

// Of returns the count for one ingredient.
func (l Levels) Of(ingredient models.Ingredient) int {
	switch ingredient {
	case models.Coffee:
		return l.Coffee
	case models.Milk:
		return l.Milk
	case models.Sugar:
		return l.Sugar
	case models.Chocolate:
		return l.Chocolate
	}
	return 0
}

// Below returns the ingredients whose count is strictly below threshold,
// in report order.
func (l Levels) Below(threshold int) []models.Ingredient {
	var low []models.Ingredient
	for _, ing := range models.Ingredients {
		if l.Of(ing) < threshold {
			low = append(low, ing)
		}
	}
	return low
}

// Inventory holds the ingredient stock of one machine. Counts never go
// negative and every mutation applies to all four ingredients or none.
// Inventory is not safe for concurrent use; the owner serialises access.
type Inventory struct {
	units [4]int
}

func NewInventory() *Inventory {
	inv := &Inventory{}
	for i := range inv.units {
		inv.units[i] = DefaultStock
	}
	return inv
}

// Restock adds the given textual quantities. Every argument is validated
// before any count changes, including that the sum still fits in an int.
func (inv *Inventory) Restock(coffee, milk, sugar, chocolate string) error {
	var deltas [4]int
	for i, text := range [...]string{coffee, milk, sugar, chocolate} {
		v, err := models.ParseAmount(text)
		if err != nil || inv.units[i] > math.MaxInt-v {
			return &models.InventoryError{Ingredient: models.Ingredients[i], Value: text}
		}
		deltas[i] = v
	}

	for i, d := range deltas {
		inv.units[i] += d
	}
	return nil
}

// HasEnough reports whether every ingredient covers the recipe's requirement.
func (inv *Inventory) HasEnough(r models.Recipe) bool {
	for _, ing := range models.Ingredients {
		if inv.units[ing] < r.Amount(ing) {
			return false
		}
	}
	return true
}

// Consume deducts the recipe's requirements. It changes nothing when
// HasEnough would report false.
func (inv *Inventory) Consume(r models.Recipe) error {
	if !inv.HasEnough(r) {
		return ErrInsufficientStock
	}
	for _, ing := range models.Ingredients {
		inv.units[ing] -= r.Amount(ing)
	}
	return nil
}

// Levels returns the current counts.
func (inv *Inventory) Levels() Levels {
	return Levels{
		Coffee:    inv.units[models.Coffee],
		Milk:      inv.units[models.Milk],
		Sugar:     inv.units[models.Sugar],
		Chocolate: inv.units[models.Chocolate],
	}
}

// Report renders one "Label: count" line per ingredient in fixed order.
func (inv *Inventory) Report() string {
	var sb strings.Builder
	for _, ing := range models.Ingredients {
		fmt.Fprintf(&sb, "%s: %d\n", ing.Label(), inv.units[ing])
	}
	return sb.String()
}
