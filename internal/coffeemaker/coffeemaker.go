// Package coffeemaker is the vending-machine controller. It owns one recipe
// book and one inventory and runs the purchase transaction over them.
package coffeemaker

import (
	"errors"
	"sync"
	"time"

	"github.com/rogerio-castellano/coffee-maker/internal/models"
	"github.com/rogerio-castellano/coffee-maker/internal/repo"
	"go.uber.org/zap"
)

// LowStockNotifier is told when a purchase takes an ingredient below the
// configured threshold.
type LowStockNotifier interface {
	LowStock(ingredient models.Ingredient, level, threshold int)
}

var (
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrDuplicateRecipe = errors.New("a recipe with that name already exists")
	ErrRecipeBookFull  = errors.New("recipe book is full")
)

type Option func(*CoffeeMaker)

// WithLogger sets the logger; the default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cm *CoffeeMaker) {
		if logger != nil {
			cm.logger = logger
		}
	}
}

// WithSaleRepository journals every purchase attempt to r.
func WithSaleRepository(r repo.SaleRepository) Option {
	return func(cm *CoffeeMaker) {
		cm.sales = r
	}
}

// WithLowStockNotifier reports ingredients that drop below threshold.
func WithLowStockNotifier(n LowStockNotifier, threshold int) Option {
	return func(cm *CoffeeMaker) {
		cm.notifier = n
		cm.lowStock = threshold
	}
}

type CoffeeMaker struct {
	mu        sync.Mutex
	book      *repo.RecipeBook
	inventory *repo.Inventory

	sales    repo.SaleRepository
	notifier LowStockNotifier
	lowStock int
	logger   *zap.Logger
	now      func() time.Time
}

// New returns a machine with an empty recipe book and default stock.
func New(opts ...Option) *CoffeeMaker {
	cm := &CoffeeMaker{
		book:      repo.NewRecipeBook(),
		inventory: repo.NewInventory(),
		logger:    zap.NewNop(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(cm)
	}
	observeLevels(cm.inventory.Levels())
	return cm
}

// AddRecipe returns false when the book is full or holds a recipe with the same name.
func (cm *CoffeeMaker) AddRecipe(r models.Recipe) bool {
	cm.mu.Lock()
	added := cm.book.Add(r)
	cm.mu.Unlock()

	cm.logger.Debug("add recipe", zap.String("recipe", r.Name()), zap.Bool("added", added))
	return added
}

// AddRecipeAt is AddRecipe that also returns the slot the recipe was stored in.
func (cm *CoffeeMaker) AddRecipeAt(r models.Recipe) (int, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.insert(r)
}

// insert holds cm.mu.
func (cm *CoffeeMaker) insert(r models.Recipe) (int, error) {
	if _, exists := cm.book.FindByName(r.Name()); exists {
		return -1, ErrDuplicateRecipe
	}
	slot, ok := cm.book.Insert(r)
	if !ok {
		return -1, ErrRecipeBookFull
	}
	return slot, nil
}

// DeleteRecipe clears slot and returns the removed recipe's name.
func (cm *CoffeeMaker) DeleteRecipe(slot int) (string, bool) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.book.Delete(slot)
}

// EditRecipe replaces the recipe in slot and returns the previous name.
func (cm *CoffeeMaker) EditRecipe(slot int, r models.Recipe) (string, bool) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.book.Edit(slot, r)
}

// ReplaceRecipe is EditRecipe with the reason for a refusal:
// ErrRecipeNotFound for an empty slot, ErrDuplicateRecipe when another slot
// already holds r's name.
func (cm *CoffeeMaker) ReplaceRecipe(slot int, r models.Recipe) (string, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if _, ok := cm.book.Get(slot); !ok {
		return "", ErrRecipeNotFound
	}
	previous, ok := cm.book.Edit(slot, r)
	if !ok {
		return "", ErrDuplicateRecipe
	}
	return previous, nil
}

// UpsertRecipe adds r, or with replace set overwrites the recipe of the same
// name in its slot. It returns the slot and whether an existing recipe was
// replaced.
func (cm *CoffeeMaker) UpsertRecipe(r models.Recipe, replace bool) (int, bool, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	slot, exists := cm.book.FindByName(r.Name())
	if !exists {
		added, err := cm.insert(r)
		return added, false, err
	}
	if !replace {
		return slot, false, ErrDuplicateRecipe
	}
	if _, ok := cm.book.Edit(slot, r); !ok {
		return slot, false, ErrRecipeNotFound
	}
	return slot, true, nil
}

// Recipes lists every slot; nil marks an empty one.
func (cm *CoffeeMaker) Recipes() []*models.Recipe {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.book.List()
}

// Recipe returns the recipe in slot.
func (cm *CoffeeMaker) Recipe(slot int) (models.Recipe, bool) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.book.Get(slot)
}

// FindRecipe returns the slot of the recipe called name.
func (cm *CoffeeMaker) FindRecipe(name string) (int, bool) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.book.FindByName(name)
}

// AddInventory restocks the machine. On an *models.InventoryError nothing changes.
func (cm *CoffeeMaker) AddInventory(coffee, milk, sugar, chocolate string) error {
	cm.mu.Lock()
	err := cm.inventory.Restock(coffee, milk, sugar, chocolate)
	levels := cm.inventory.Levels()
	cm.mu.Unlock()

	if err != nil {
		cm.logger.Info("restock rejected", zap.Error(err))
		return err
	}
	observeLevels(levels)
	cm.logger.Info("restocked",
		zap.Int("coffee", levels.Coffee),
		zap.Int("milk", levels.Milk),
		zap.Int("sugar", levels.Sugar),
		zap.Int("chocolate", levels.Chocolate))
	return nil
}

// CheckInventory returns the inventory report.
func (cm *CoffeeMaker) CheckInventory() string {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.inventory.Report()
}

func (cm *CoffeeMaker) InventoryLevels() repo.Levels {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.inventory.Levels()
}
