package repo

import "github.com/rogerio-castellano/coffee-maker/internal/models"

// RecipeBookCapacity is the fixed number of recipe slots in a machine.
const RecipeBookCapacity = 4

// RecipeBook holds up to RecipeBookCapacity recipes in stable slots.
// Deleting a recipe clears its slot; other recipes keep their index.
type RecipeBook struct {
	slots [RecipeBookCapacity]*models.Recipe
}

func NewRecipeBook() *RecipeBook {
	return &RecipeBook{}
}

// Add stores a copy of r in the first empty slot. It returns false when the
// book is full or a recipe with the same name is already present.
func (b *RecipeBook) Add(r models.Recipe) bool {
	_, ok := b.Insert(r)
	return ok
}

// Insert is Add that also reports the slot the recipe went into.
func (b *RecipeBook) Insert(r models.Recipe) (int, bool) {
	empty := -1
	for i, existing := range b.slots {
		if existing == nil {
			if empty < 0 {
				empty = i
			}
			continue
		}
		if existing.SameAs(&r) {
			return -1, false
		}
	}
	if empty < 0 {
		return -1, false
	}

	b.slots[empty] = &r
	return empty, true
}

// Delete clears the slot and returns the name of the removed recipe.
func (b *RecipeBook) Delete(slot int) (string, bool) {
	existing, ok := b.occupied(slot)
	if !ok {
		return "", false
	}
	b.slots[slot] = nil
	return existing.Name(), true
}

// Edit replaces the recipe in an occupied slot and returns the name of the
// recipe it replaced. It returns false when r has the name of a recipe in
// another slot; keeping the slot's own name is allowed.
func (b *RecipeBook) Edit(slot int, r models.Recipe) (string, bool) {
	existing, ok := b.occupied(slot)
	if !ok {
		return "", false
	}
	if other, found := b.FindByName(r.Name()); found && other != slot {
		return "", false
	}
	b.slots[slot] = &r
	return existing.Name(), true
}

// Get returns a copy of the recipe in slot.
func (b *RecipeBook) Get(slot int) (models.Recipe, bool) {
	existing, ok := b.occupied(slot)
	if !ok {
		return models.Recipe{}, false
	}
	return *existing, true
}

// FindByName returns the slot holding the recipe called name.
func (b *RecipeBook) FindByName(name string) (int, bool) {
	for i, existing := range b.slots {
		if existing != nil && existing.Name() == name {
			return i, true
		}
	}
	return -1, false
}

// List returns every slot in order. Empty slots are nil; the recipes are
// copies, so callers cannot mutate the book through them.
func (b *RecipeBook) List() []*models.Recipe {
	out := make([]*models.Recipe, RecipeBookCapacity)
	for i, existing := range b.slots {
		if existing != nil {
			r := *existing
			out[i] = &r
		}
	}
	return out
}

func (b *RecipeBook) occupied(slot int) (*models.Recipe, bool) {
	if slot < 0 || slot >= RecipeBookCapacity || b.slots[slot] == nil {
		return nil, false
	}
	return b.slots[slot], true
}
