package models

// Recipe is a named drink formula. Numeric fields can only be set through
// the text setters, so they are never negative.
type Recipe struct {
	name      string
	price     int
	coffee    int
	milk      int
	sugar     int
	chocolate int
}

// NewRecipe builds a recipe from textual amounts, failing on the first
// field that is not a non-negative integer.
func NewRecipe(name, price, coffee, milk, sugar, chocolate string) (Recipe, error) {
	var r Recipe
	r.SetName(name)

	setters := []struct {
		set   func(string) error
		value string
	}{
		{r.SetPrice, price},
		{r.SetAmtCoffee, coffee},
		{r.SetAmtMilk, milk},
		{r.SetAmtSugar, sugar},
		{r.SetAmtChocolate, chocolate},
	}
	for _, s := range setters {
		if err := s.set(s.value); err != nil {
			return Recipe{}, err
		}
	}
	return r, nil
}

func (r *Recipe) Name() string   { return r.name }
func (r *Recipe) Price() int     { return r.price }
func (r *Recipe) Coffee() int    { return r.coffee }
func (r *Recipe) Milk() int      { return r.milk }
func (r *Recipe) Sugar() int     { return r.sugar }
func (r *Recipe) Chocolate() int { return r.chocolate }

// Amount returns the units of ingredient the recipe requires.
func (r *Recipe) Amount(ingredient Ingredient) int {
	switch ingredient {
	case Coffee:
		return r.coffee
	case Milk:
		return r.milk
	case Sugar:
		return r.sugar
	case Chocolate:
		return r.chocolate
	}
	return 0
}

// SetName sets the recipe name. An empty name is accepted here; callers
// that take user input validate it.
func (r *Recipe) SetName(name string) {
	r.name = name
}

func (r *Recipe) SetPrice(text string) error {
	return setAmount(&r.price, "price", text)
}

func (r *Recipe) SetAmtCoffee(text string) error {
	return setAmount(&r.coffee, "coffee", text)
}

func (r *Recipe) SetAmtMilk(text string) error {
	return setAmount(&r.milk, "milk", text)
}

func (r *Recipe) SetAmtSugar(text string) error {
	return setAmount(&r.sugar, "sugar", text)
}

func (r *Recipe) SetAmtChocolate(text string) error {
	return setAmount(&r.chocolate, "chocolate", text)
}

// SameAs reports whether both recipes carry the same name. Names are the
// identity used for duplicate detection and are compared exactly.
func (r *Recipe) SameAs(other *Recipe) bool {
	if other == nil {
		return false
	}
	return r.name == other.name
}

func setAmount(dst *int, field, text string) error {
	v, err := ParseAmount(text)
	if err != nil {
		return &RecipeError{Field: field, Value: text}
	}
	*dst = v
	return nil
}
