package models

import "time"

// Outcome is the decision a purchase attempt ended with.
type Outcome string

const (
	OutcomeDispensed         Outcome = "dispensed"
	OutcomeNoSuchRecipe      Outcome = "no_such_recipe"
	OutcomeInsufficientFunds Outcome = "insufficient_funds"
	OutcomeInsufficientStock Outcome = "insufficient_stock"
)

// Outcomes lists every outcome; used to pre-register metric labels.
var Outcomes = []Outcome{
	OutcomeDispensed,
	OutcomeNoSuchRecipe,
	OutcomeInsufficientFunds,
	OutcomeInsufficientStock,
}

// Valid reports whether o is one of the known outcomes.
func (o Outcome) Valid() bool {
	for _, known := range Outcomes {
		if o == known {
			return true
		}
	}
	return false
}

// Sale is one journalled purchase attempt, dispensed or rejected.
type Sale struct {
	ID         string    `json:"id"`
	Slot       int       `json:"slot"`
	RecipeName string    `json:"recipe_name,omitempty"`
	Payment    int       `json:"payment"`
	Price      int       `json:"price"`
	Change     int       `json:"change"`
	Outcome    Outcome   `json:"outcome"`
	CreatedAt  time.Time `json:"created_at"`
}

// Dispensed reports whether the attempt produced a drink.
func (s Sale) Dispensed() bool {
	return s.Outcome == OutcomeDispensed
}
