package models

import (
	"errors"
	"fmt"
)

// ErrInvalidAmount is returned when a recipe field is not a non-negative integer.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidQuantity is returned when an inventory quantity is not a non-negative integer.
var ErrInvalidQuantity = errors.New("invalid quantity")

// RecipeError reports which recipe field rejected which text.
type RecipeError struct {
	Field string
	Value string
}

func (e *RecipeError) Error() string {
	return fmt.Sprintf("%s: %s must be a non-negative integer, got %q", ErrInvalidAmount, e.Field, e.Value)
}

func (e *RecipeError) Unwrap() error {
	return ErrInvalidAmount
}

// InventoryError reports which ingredient quantity was rejected by a restock.
type InventoryError struct {
	Ingredient Ingredient
	Value      string
}

func (e *InventoryError) Error() string {
	return fmt.Sprintf("%s: units of %s must be a non-negative integer, got %q",
		ErrInvalidQuantity, e.Ingredient.Label(), e.Value)
}

func (e *InventoryError) Unwrap() error {
	return ErrInvalidQuantity
}
