package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rogerio-castellano/coffee-maker/internal/auth"
	"github.com/rogerio-castellano/coffee-maker/internal/coffeemaker"
	"github.com/rogerio-castellano/coffee-maker/internal/db"
	handler "github.com/rogerio-castellano/coffee-maker/internal/http/handlers"
	rl "github.com/rogerio-castellano/coffee-maker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/coffee-maker/internal/http/router"
	"github.com/rogerio-castellano/coffee-maker/internal/repo"
)

var (
	token    string
	userRepo *repo.PostgresUserRepository
	database *sql.DB
)

// TestMain runs the suite against COFFEE_DATABASE_URL and skips it when unset.
func TestMain(m *testing.M) {
	dbURL := os.Getenv("COFFEE_DATABASE_URL")
	if dbURL == "" {
		fmt.Println("COFFEE_DATABASE_URL not set, skipping postgres integration tests")
		os.Exit(0)
	}

	var err error
	database, err = db.Connect(dbURL)
	if err != nil {
		fmt.Println("could not connect to database:", err)
		os.Exit(1)
	}
	if err := db.Migrate(database); err != nil {
		fmt.Println("could not migrate database:", err)
		os.Exit(1)
	}

	setupTestRepos("secret")
	token, err = generateToken(router.NewRouter(nil), "admin", "secret")
	if err != nil {
		fmt.Println("error generating token:", err)
		os.Exit(1)
	}

	code := m.Run()
	database.Close()
	os.Exit(code)
}

func setupTestRepos(password string) {
	saleRepo := repo.NewPostgresSaleRepository(database)
	handler.SetSaleRepo(saleRepo)
	handler.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))
	handler.SetCoffeeMaker(coffeemaker.New(coffeemaker.WithSaleRepository(saleRepo)))

	userRepo = repo.NewPostgresUserRepository(database)
	handler.SetUserRepo(userRepo)

	if _, err := auth.EnsureAdmin(userRepo, "admin", password); err != nil {
		fmt.Println("error creating admin", err)
	}
	rl.SetLimits(1000, 1000)
}

// resetMachine installs a fresh machine and truncates the journal.
func resetMachine(t *testing.T) {
	t.Helper()
	clearAllSales()
	saleRepo := repo.NewPostgresSaleRepository(database)
	handler.SetCoffeeMaker(coffeemaker.New(coffeemaker.WithSaleRepository(saleRepo)))
	rl.CleanupAllVisitors()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func userExists(username string) (bool, error) {
	const query = `SELECT COUNT(*) FROM users WHERE username = $1`

	var count int
	err := database.QueryRow(query, username).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query failed: %w", err)
	}
	return count > 0, nil
}

func clearAllSales() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := database.ExecContext(ctx, "TRUNCATE TABLE sales")
	if err != nil {
		fmt.Println(fmt.Errorf("failed to truncate sales table: %w", err))
	}
}

func clearAllUsersExceptAdmin() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := database.ExecContext(ctx, "DELETE FROM users WHERE username <> 'admin'")
	if err != nil {
		fmt.Println(fmt.Errorf("failed to delete users: %w", err))
	}
}

func doJSON(r http.Handler, method, path string, payload any, authToken string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
