package handlers_integrated_test_suite

import (
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/coffee-maker/internal/http/handlers"
	"github.com/rogerio-castellano/coffee-maker/internal/http/router"
)

func TestAuthFlow(t *testing.T) {
	r := router.NewRouter(nil)
	t.Cleanup(clearAllUsersExceptAdmin)

	t.Run("Login with valid credentials", func(t *testing.T) {
		tok, err := generateToken(r, "admin", "secret")
		if err != nil || tok == "" {
			t.Fatalf("expected token, got %q (%v)", tok, err)
		}
	})

	t.Run("Admin creates a user", func(t *testing.T) {
		req := handler.RegisterAsAdminRequest{Username: "barista", Password: "latte123", Role: "operator"}
		w := doJSON(r, http.MethodPost, "/admin/users", req, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 Created, got %d", w.Code)
		}

		exists, err := userExists("barista")
		if err != nil || !exists {
			t.Errorf("expected barista to be stored, got %v (%v)", exists, err)
		}

		w = doJSON(r, http.MethodPost, "/admin/users", req, token)
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409 Conflict, got %d", w.Code)
		}
	})

	t.Run("Operator cannot restock", func(t *testing.T) {
		opToken, err := generateToken(r, "barista", "latte123")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		body := handler.InventoryRequest{Coffee: "1", Milk: "1", Sugar: "1", Chocolate: "1"}
		w := doJSON(r, http.MethodPost, "/inventory", body, opToken)
		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403 Forbidden, got %d", w.Code)
		}
	})
}
