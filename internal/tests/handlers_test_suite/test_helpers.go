package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rogerio-castellano/coffee-maker/internal/auth"
	"github.com/rogerio-castellano/coffee-maker/internal/coffeemaker"
	handler "github.com/rogerio-castellano/coffee-maker/internal/http/handlers"
	rl "github.com/rogerio-castellano/coffee-maker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/coffee-maker/internal/http/router"
	"github.com/rogerio-castellano/coffee-maker/internal/models"
	"github.com/rogerio-castellano/coffee-maker/internal/repo"
)

var (
	token    string
	saleRepo *repo.InMemorySaleRepository
	machine  *coffeemaker.CoffeeMaker
)

var (
	coffee       = handler.RecipeRequest{Name: "Coffee", Price: "50", Coffee: "3", Milk: "1", Sugar: "1", Chocolate: "0"}
	mocha        = handler.RecipeRequest{Name: "Mocha", Price: "75", Coffee: "3", Milk: "1", Sugar: "1", Chocolate: "20"}
	latte        = handler.RecipeRequest{Name: "Latte", Price: "100", Coffee: "3", Milk: "3", Sugar: "1", Chocolate: "0"}
	hotChocolate = handler.RecipeRequest{Name: "Hot Chocolate", Price: "65", Coffee: "0", Milk: "1", Sugar: "1", Chocolate: "4"}
)

func init() {
	setupTestRepos("secret")
	rl.SetLimits(1000, 1000)
	r := router.NewRouter(nil)

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	saleRepo = repo.NewInMemorySaleRepository()
	handler.SetSaleRepo(saleRepo)
	handler.SetMetricsRepo(repo.NewInMemoryMetricsRepository(saleRepo))
	resetMachine()

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := auth.HashPassword(password)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
}

// resetMachine installs a fresh machine and empties the journal.
func resetMachine() {
	machine = coffeemaker.New(coffeemaker.WithSaleRepository(saleRepo))
	handler.SetCoffeeMaker(machine)
	saleRepo.Clear()
	rl.CleanupAllVisitors()
}

func runWithFreshMachine(t *testing.T, name string, testFunc func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		resetMachine()
		testFunc(t)
	})
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", w.Code)
	}

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, path string, payload any, authToken string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createRecipe(r http.Handler, rec handler.RecipeRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/recipes", rec, token)
}

func purchase(r http.Handler, slot, payment int) handler.PurchaseResult {
	w := doJSON(r, http.MethodPost, "/purchases", handler.PurchaseRequest{Slot: slot, Payment: payment}, "")
	var resp handler.PurchaseResult
	_ = json.NewDecoder(w.Body).Decode(&resp)
	return resp
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
