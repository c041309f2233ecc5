package coffeemaker

import (
	"github.com/rogerio-castellano/coffee-maker/internal/models"
	"github.com/rogerio-castellano/coffee-maker/internal/repo"
	"go.uber.org/zap"
)

// Receipt describes how a purchase attempt ended. Change is always the
// value Purchase returns: the full payment unless a drink was dispensed.
type Receipt struct {
	Slot    int
	Recipe  string
	Payment int
	Price   int
	Change  int
	Outcome models.Outcome
}

func (r Receipt) Dispensed() bool {
	return r.Outcome == models.OutcomeDispensed
}

// Purchase sells the recipe in slot for payment and returns the change.
// Any rejection returns payment unchanged and leaves the machine untouched.
func (cm *CoffeeMaker) Purchase(slot, payment int) int {
	return cm.PurchaseWithReceipt(slot, payment).Change
}

// PurchaseWithReceipt runs the same transaction as Purchase and also
// reports why it was accepted or rejected.
func (cm *CoffeeMaker) PurchaseWithReceipt(slot, payment int) Receipt {
	cm.mu.Lock()
	before := cm.inventory.Levels()
	receipt := cm.purchase(slot, payment)
	after := cm.inventory.Levels()
	cm.mu.Unlock()

	cm.record(receipt, before, after)
	return receipt
}

// purchase holds cm.mu.
func (cm *CoffeeMaker) purchase(slot, payment int) Receipt {
	receipt := Receipt{Slot: slot, Payment: payment, Change: payment}

	r, ok := cm.book.Get(slot)
	if !ok {
		receipt.Outcome = models.OutcomeNoSuchRecipe
		return receipt
	}
	receipt.Recipe = r.Name()
	receipt.Price = r.Price()

	if payment < r.Price() {
		receipt.Outcome = models.OutcomeInsufficientFunds
		return receipt
	}
	if err := cm.inventory.Consume(r); err != nil {
		receipt.Outcome = models.OutcomeInsufficientStock
		return receipt
	}

	receipt.Outcome = models.OutcomeDispensed
	receipt.Change = payment - r.Price()
	return receipt
}

// record runs after the lock is released; nothing here can alter the receipt.
func (cm *CoffeeMaker) record(receipt Receipt, before, after repo.Levels) {
	purchasesTotal.WithLabelValues(string(receipt.Outcome)).Inc()

	fields := []zap.Field{
		zap.Int("slot", receipt.Slot),
		zap.String("recipe", receipt.Recipe),
		zap.Int("payment", receipt.Payment),
		zap.Int("change", receipt.Change),
		zap.String("outcome", string(receipt.Outcome)),
	}

	if receipt.Dispensed() {
		revenueTotal.Add(float64(receipt.Price))
		observeLevels(after)
		cm.logger.Info("dispensed", fields...)
		cm.notifyLowStock(before, after)
	} else {
		cm.logger.Info("purchase rejected", fields...)
	}

	if cm.sales == nil {
		return
	}
	sale := models.Sale{
		Slot:       receipt.Slot,
		RecipeName: receipt.Recipe,
		Payment:    receipt.Payment,
		Price:      receipt.Price,
		Change:     receipt.Change,
		Outcome:    receipt.Outcome,
		CreatedAt:  cm.now(),
	}
	if err := cm.sales.Log(sale); err != nil {
		cm.logger.Warn("could not journal sale", append(fields, zap.Error(err))...)
	}
}

// notifyLowStock reports ingredients that crossed the threshold on this purchase.
func (cm *CoffeeMaker) notifyLowStock(before, after repo.Levels) {
	if cm.notifier == nil {
		return
	}
	for _, ing := range models.Ingredients {
		if before.Of(ing) >= cm.lowStock && after.Of(ing) < cm.lowStock {
			cm.logger.Warn("ingredient below threshold",
				zap.String("ingredient", ing.Label()),
				zap.Int("level", after.Of(ing)),
				zap.Int("threshold", cm.lowStock))
			cm.notifier.LowStock(ing, after.Of(ing), cm.lowStock)
		}
	}
}
