package handlers

import (
	"strings"

	"github.com/rogerio-castellano/coffee-maker/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// buildRecipe runs every field through the recipe setters and collects
// one error per invalid field.
func buildRecipe(req RecipeRequest) (models.Recipe, []ValidationError) {
	errs := []ValidationError{}
	var r models.Recipe

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	r.SetName(req.Name)

	fields := []struct {
		field string
		value Amount
		set   func(string) error
	}{
		{"Price", req.Price, r.SetPrice},
		{"Coffee", req.Coffee, r.SetAmtCoffee},
		{"Milk", req.Milk, r.SetAmtMilk},
		{"Sugar", req.Sugar, r.SetAmtSugar},
		{"Chocolate", req.Chocolate, r.SetAmtChocolate},
	}
	for _, f := range fields {
		if err := f.set(string(f.value)); err != nil {
			errs = append(errs, ValidationError{Field: f.field, Description: f.field + " must be a non-negative integer"})
		}
	}

	return r, errs
}
