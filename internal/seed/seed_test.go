package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogerio-castellano/coffee-maker/internal/coffeemaker"
)

const recipesYAML = `
recipes:
  - name: Coffee
    price: 50
    coffee: 3
    milk: 1
    sugar: 1
  - name: Mocha
    price: "75"
    coffee: 3
    milk: 1
    sugar: 1
    chocolate: 20
  - name: Broken
    price: -10
  - name: Coffee
    price: 10
  - price: 10
  - name: Latte
    price: 100
    coffee: 3
    milk: 3
    sugar: 1
`

func TestParseAndApply(t *testing.T) {
	entries, err := Parse(strings.NewReader(recipesYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(entries))
	}

	cm := coffeemaker.New()
	added := Apply(cm, entries, nil)
	if added != 3 {
		t.Fatalf("expected 3 recipes added, got %d", added)
	}

	list := cm.Recipes()
	want := []string{"Coffee", "Mocha", "Latte"}
	for i, name := range want {
		if list[i] == nil || list[i].Name() != name {
			t.Errorf("slot %d: expected %s, got %v", i, name, list[i])
		}
	}
	if list[0].Chocolate() != 0 {
		t.Error("omitted amount should be zero")
	}
	if list[1].Chocolate() != 20 || list[1].Price() != 75 {
		t.Errorf("unexpected Mocha %+v", list[1])
	}
}

func TestParse_Empty(t *testing.T) {
	entries, err := Parse(strings.NewReader(""))
	if err != nil || len(entries) != 0 {
		t.Errorf("expected no entries, got %v (%v)", entries, err)
	}
}

func TestParse_RejectsNonScalarAmount(t *testing.T) {
	_, err := Parse(strings.NewReader("recipes:\n  - name: Odd\n    price: [1, 2]\n"))
	if err == nil {
		t.Fatal("expected an error for a list amount")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	if err := os.WriteFile(path, []byte(recipesYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	entries, err := LoadFile(path)
	if err != nil || len(entries) != 6 {
		t.Fatalf("expected 6 entries, got %d (%v)", len(entries), err)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
