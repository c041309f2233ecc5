package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/rogerio-castellano/coffee-maker/internal/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	Configure("test-secret", time.Minute)

	token, err := GenerateToken(models.User{ID: 7, Username: "barista", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, claims, err := TokenClaims("Bearer " + token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims["username"] != "barista" {
		t.Errorf("expected username barista, got %v", claims["username"])
	}
	if claims["role"] != models.RoleAdmin {
		t.Errorf("expected admin role, got %v", claims["role"])
	}
	if sub, _ := claims["sub"].(float64); int(sub) != 7 {
		t.Errorf("expected sub 7, got %v", claims["sub"])
	}
}

func TestTokenClaims_Invalid(t *testing.T) {
	Configure("test-secret", time.Minute)
	token, _ := GenerateToken(models.User{ID: 1, Username: "a"})

	tests := map[string]string{
		"missing prefix": token,
		"garbage":        "Bearer not-a-token",
		"empty":          "",
	}
	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			if _, _, err := TokenClaims(header); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}

	Configure("other-secret", time.Minute)
	if _, _, err := TokenClaims("Bearer " + token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("token signed with another secret should be rejected, got %v", err)
	}
}
