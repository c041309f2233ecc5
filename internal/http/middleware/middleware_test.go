package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/coffee-maker/internal/auth"
	"github.com/rogerio-castellano/coffee-maker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/coffee-maker/internal/models"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-User", GetUsername(r))
	w.Header().Set("X-Role", GetRole(r))
	w.WriteHeader(http.StatusOK)
}

func TestRequireRole(t *testing.T) {
	adminToken, err := auth.GenerateToken(models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	userToken, err := auth.GenerateToken(models.User{ID: 2, Username: "bob", Role: "user"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"wrong role", "Bearer " + userToken, http.StatusForbidden},
		{"admin", "Bearer " + adminToken, http.StatusOK},
	}

	h := RequireRole(models.RoleAdmin)(http.HandlerFunc(okHandler))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}
			if tt.wantStatus == http.StatusOK {
				if got := rr.Header().Get("X-User"); got != "admin" {
					t.Errorf("expected username admin in context, got %q", got)
				}
				if got := rr.Header().Get("X-Role"); got != models.RoleAdmin {
					t.Errorf("expected role admin in context, got %q", got)
				}
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	rate_limiter.SetLimits(0.001, 2)
	t.Cleanup(func() {
		rate_limiter.SetLimits(1, 3)
		rate_limiter.CleanupAllVisitors()
	})

	h := RateLimit(http.HandlerFunc(okHandler))
	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/purchases", nil)
		req.RemoteAddr = "192.0.2.7:5555"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("request %d: expected %d, got %d", i+1, want[i], codes[i])
		}
	}

	// A different client has its own bucket.
	req := httptest.NewRequest(http.MethodPost, "/purchases", nil)
	req.RemoteAddr = "192.0.2.8:5555"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("expected other client to pass, got %d", rr.Code)
	}
}

func TestMetricsKeepsStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/teapot/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/teapot/7", nil))

	if rr.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
}

func TestResponseWriterIgnoresSecondHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := newResponseWriter(rr)
	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.Status() != http.StatusCreated || rr.Code != http.StatusCreated {
		t.Errorf("expected first status to stick, got %d/%d", rw.Status(), rr.Code)
	}
}
