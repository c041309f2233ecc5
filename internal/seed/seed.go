// Package seed preloads recipes from a YAML file such as
//
//	recipes:
//	  - name: Coffee
//	    price: 50
//	    coffee: 3
//	    milk: 1
//	    sugar: 1
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rogerio-castellano/coffee-maker/internal/models"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Amount keeps the scalar text as written so validation happens in
// models.ParseAmount, exactly as for user input. Omitted amounts are 0.
type Amount string

func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a scalar", node.Line)
	}
	*a = Amount(node.Value)
	return nil
}

func (a Amount) text() string {
	if a == "" {
		return "0"
	}
	return string(a)
}

type Entry struct {
	Name      string `yaml:"name"`
	Price     Amount `yaml:"price"`
	Coffee    Amount `yaml:"coffee"`
	Milk      Amount `yaml:"milk"`
	Sugar     Amount `yaml:"sugar"`
	Chocolate Amount `yaml:"chocolate"`
}

type file struct {
	Recipes []Entry `yaml:"recipes"`
}

// Recipe validates the entry and builds the recipe.
func (e Entry) Recipe() (models.Recipe, error) {
	if e.Name == "" {
		return models.Recipe{}, errors.New("recipe name is required")
	}
	return models.NewRecipe(e.Name, e.Price.text(), e.Coffee.text(), e.Milk.text(), e.Sugar.text(), e.Chocolate.text())
}

func Parse(r io.Reader) ([]Entry, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}
	return f.Recipes, nil
}

func LoadFile(path string) ([]Entry, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipes file: %w", err)
	}
	defer fh.Close()
	return Parse(fh)
}

type RecipeAdder interface {
	AddRecipe(r models.Recipe) bool
}

// Apply adds every valid entry and returns how many were accepted. Invalid
// entries and entries the book rejects are logged and skipped.
func Apply(adder RecipeAdder, entries []Entry, logger *zap.Logger) int {
	if logger == nil {
		logger = zap.NewNop()
	}

	added := 0
	for i, e := range entries {
		r, err := e.Recipe()
		if err != nil {
			logger.Warn("skipping invalid seed recipe", zap.Int("index", i), zap.String("recipe", e.Name), zap.Error(err))
			continue
		}
		if !adder.AddRecipe(r) {
			logger.Warn("seed recipe rejected: duplicate name or recipe book full", zap.String("recipe", e.Name))
			continue
		}
		added++
	}
	logger.Info("seeded recipes", zap.Int("added", added), zap.Int("entries", len(entries)))
	return added
}
