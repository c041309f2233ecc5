// Package console drives a CoffeeMaker from a line-oriented text menu.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/coffee-maker/internal/coffeemaker"
	"github.com/rogerio-castellano/coffee-maker/internal/models"
	"go.uber.org/zap"
)

const menuText = `Please press the number that corresponds to what you would like the coffee maker to do.
1. Add a recipe
2. Delete a recipe
3. Edit a recipe
4. Add inventory
5. Check inventory
6. Make coffee
0. Exit
`

const selectRecipe = "Please select the number of the recipe."

// Menu reads commands from in and writes prompts and results to out.
type Menu struct {
	cm     *coffeemaker.CoffeeMaker
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
}

func New(cm *coffeemaker.CoffeeMaker, in io.Reader, out io.Writer, logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{cm: cm, in: bufio.NewScanner(in), out: out, logger: logger}
}

// Run loops until the user picks 0, input ends, or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		m.print(menuText)
		choice, err := m.readLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		m.logger.Debug("menu choice", zap.String("choice", choice))

		var actionErr error
		switch strings.TrimSpace(choice) {
		case "0":
			return nil
		case "1":
			actionErr = m.addRecipe()
		case "2":
			actionErr = m.deleteRecipe()
		case "3":
			actionErr = m.editRecipe()
		case "4":
			actionErr = m.addInventory()
		case "5":
			m.print(m.cm.CheckInventory())
		case "6":
			actionErr = m.makeCoffee()
		default:
			m.println("Please enter a number from 0 - 6")
		}

		if actionErr == io.EOF {
			return nil
		}
		if actionErr != nil {
			return actionErr
		}
	}
}

func (m *Menu) print(s string) {
	fmt.Fprint(m.out, s)
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) readLine() (string, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return m.in.Text(), nil
}

func (m *Menu) prompt(text string) (string, error) {
	m.print(text)
	return m.readLine()
}

// readRecipe prompts for every field; an invalid amount prints the error
// and returns ok=false.
func (m *Menu) readRecipe() (models.Recipe, bool, error) {
	var r models.Recipe

	name, err := m.prompt("\nPlease enter the recipe name: ")
	if err != nil {
		return r, false, err
	}
	r.SetName(name)

	fields := []struct {
		prompt string
		set    func(string) error
	}{
		{"\nPlease enter the recipe price: $", r.SetPrice},
		{"\nPlease enter the units of coffee in the recipe: ", r.SetAmtCoffee},
		{"\nPlease enter the units of milk in the recipe: ", r.SetAmtMilk},
		{"\nPlease enter the units of sugar in the recipe: ", r.SetAmtSugar},
		{"\nPlease enter the units of chocolate in the recipe: ", r.SetAmtChocolate},
	}
	for _, f := range fields {
		text, err := m.prompt(f.prompt)
		if err != nil {
			return r, false, err
		}
		if err := f.set(text); err != nil {
			m.println(err.Error())
			return r, false, nil
		}
	}
	return r, true, nil
}

func (m *Menu) addRecipe() error {
	r, ok, err := m.readRecipe()
	if err != nil || !ok {
		return err
	}

	if m.cm.AddRecipe(r) {
		m.println(r.Name() + " successfully added.")
	} else {
		m.println(r.Name() + " could not be added.")
	}
	return nil
}

func (m *Menu) listRecipes() {
	for i, r := range m.cm.Recipes() {
		if r != nil {
			m.println(fmt.Sprintf("%d. %s", i+1, r.Name()))
		}
	}
}

// chooseRecipe lists the book and reads a 1-based selection.
func (m *Menu) chooseRecipe(question string) (int, bool, error) {
	m.listRecipes()
	text, err := m.prompt(question)
	if err != nil {
		return 0, false, err
	}

	n, convErr := strconv.Atoi(strings.TrimSpace(text))
	if convErr != nil {
		m.println(selectRecipe)
		return 0, false, nil
	}
	slot := n - 1
	if _, ok := m.cm.Recipe(slot); !ok {
		m.println(selectRecipe)
		return 0, false, nil
	}
	return slot, true, nil
}

func (m *Menu) deleteRecipe() error {
	slot, ok, err := m.chooseRecipe("Please select the number of the recipe to delete.\n")
	if err != nil || !ok {
		return err
	}

	if name, deleted := m.cm.DeleteRecipe(slot); deleted {
		m.println(name + " successfully deleted.")
	} else {
		m.println("Selected recipe doesn't exist and could not be deleted.")
	}
	return nil
}

func (m *Menu) editRecipe() error {
	slot, ok, err := m.chooseRecipe("Please select the number of the recipe to edit.\n")
	if err != nil || !ok {
		return err
	}

	r, ok, err := m.readRecipe()
	if err != nil || !ok {
		return err
	}

	if previous, edited := m.cm.EditRecipe(slot, r); edited {
		m.println(previous + " successfully edited.")
	} else {
		m.println(r.Name() + " could not be edited.")
	}
	return nil
}

func (m *Menu) addInventory() error {
	units := make([]string, 0, len(models.Ingredients))
	for _, ing := range models.Ingredients {
		text, err := m.prompt(fmt.Sprintf("\nPlease enter the units of %s to add: ", strings.ToLower(ing.Label())))
		if err != nil {
			return err
		}
		units = append(units, text)
	}

	if err := m.cm.AddInventory(units[0], units[1], units[2], units[3]); err != nil {
		m.println("Inventory was not added: " + err.Error())
		return nil
	}
	m.println("Inventory successfully added")
	return nil
}

func (m *Menu) makeCoffee() error {
	slot, ok, err := m.chooseRecipe("Please select the number of the recipe to purchase.\n")
	if err != nil || !ok {
		return err
	}

	text, err := m.prompt("Please enter the amount you wish to pay: ")
	if err != nil {
		return err
	}
	payment, convErr := strconv.Atoi(strings.TrimSpace(text))
	if convErr != nil || payment < 0 {
		m.println("Please enter a positive integer")
		return nil
	}

	receipt := m.cm.PurchaseWithReceipt(slot, payment)
	switch receipt.Outcome {
	case models.OutcomeDispensed:
		m.println(fmt.Sprintf("Your change is: %d", receipt.Change))
	case models.OutcomeInsufficientFunds:
		m.println("Insufficient funds to purchase.")
	case models.OutcomeInsufficientStock:
		m.println(fmt.Sprintf("Not enough inventory to make %s. Your change is: %d", receipt.Recipe, receipt.Change))
	default:
		m.println(selectRecipe)
	}
	return nil
}
