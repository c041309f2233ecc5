package models

// Ingredient identifies one of the four stocked ingredients.
type Ingredient int

const (
	Coffee Ingredient = iota
	Milk
	Sugar
	Chocolate
)

// Ingredients lists every ingredient in report order.
var Ingredients = []Ingredient{Coffee, Milk, Sugar, Chocolate}

var ingredientLabels = [...]string{"Coffee", "Milk", "Sugar", "Chocolate"}

// Label returns the display name used by the inventory report.
func (i Ingredient) Label() string {
	if i < Coffee || i > Chocolate {
		return "Unknown"
	}
	return ingredientLabels[i]
}

func (i Ingredient) String() string {
	return i.Label()
}
