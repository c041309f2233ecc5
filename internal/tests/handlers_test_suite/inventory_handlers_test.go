package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/rogerio-castellano/coffee-maker/internal/http/handlers"
	"github.com/rogerio-castellano/coffee-maker/internal/http/router"
	"github.com/rogerio-castellano/coffee-maker/internal/repo"
)

const freshReport = "Coffee: 15\nMilk: 15\nSugar: 15\nChocolate: 15\n"

func checkInventory(t *testing.T, r http.Handler) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("expected text/plain content type, got %s", ct)
	}
	return w.Body.String()
}

func TestCheckInventoryHandler(t *testing.T) {
	r := router.NewRouter(nil)
	resetMachine()

	if got := checkInventory(t, r); got != freshReport {
		t.Errorf("expected %q, got %q", freshReport, got)
	}
}

func TestAddInventoryHandler(t *testing.T) {
	r := router.NewRouter(nil)

	runWithFreshMachine(t, "Valid quantities", func(t *testing.T) {
		body := handler.InventoryRequest{Coffee: "5", Milk: "0", Sugar: "2", Chocolate: "10"}
		w := doJSON(r, http.MethodPost, "/inventory", body, token)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204 No Content, got %d", w.Code)
		}

		want := "Coffee: 20\nMilk: 15\nSugar: 17\nChocolate: 25\n"
		if got := checkInventory(t, r); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	tests := []struct {
		name string
		body handler.InventoryRequest
	}{
		{"Negative coffee", handler.InventoryRequest{Coffee: "-1", Milk: "0", Sugar: "0", Chocolate: "0"}},
		{"Non-numeric chocolate", handler.InventoryRequest{Coffee: "0", Milk: "0", Sugar: "0", Chocolate: "asdf"}},
		{"Valid fields before an invalid one", handler.InventoryRequest{Coffee: "5", Milk: "5", Sugar: "-1", Chocolate: "5"}},
		{"Quantity that would overflow the count", handler.InventoryRequest{Coffee: "9223372036854775807", Milk: "0", Sugar: "0", Chocolate: "0"}},
	}

	for _, tt := range tests {
		runWithFreshMachine(t, tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/inventory", tt.body, token)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", w.Code)
			}
			if got := checkInventory(t, r); got != freshReport {
				t.Errorf("expected inventory unchanged, got %q", got)
			}
		})
	}

	runWithFreshMachine(t, "Missing token", func(t *testing.T) {
		body := handler.InventoryRequest{Coffee: "5", Milk: "5", Sugar: "5", Chocolate: "5"}
		w := doJSON(r, http.MethodPost, "/inventory", body, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 Unauthorized, got %d", w.Code)
		}
	})

	runWithFreshMachine(t, "Malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/inventory", bytes.NewBufferString(`{"coffee":`))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func TestGetInventoryLevelsHandler(t *testing.T) {
	r := router.NewRouter(nil)
	resetMachine()
	createRecipe(r, coffee)
	purchase(r, 0, 50)

	req := httptest.NewRequest(http.MethodGet, "/inventory/levels", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var levels repo.Levels
	if err := json.NewDecoder(w.Body).Decode(&levels); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	want := repo.Levels{Coffee: 12, Milk: 14, Sugar: 14, Chocolate: 15}
	if levels != want {
		t.Errorf("expected %+v, got %+v", want, levels)
	}
}
