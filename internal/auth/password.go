package auth

import (
	"errors"
	"fmt"

	"github.com/rogerio-castellano/coffee-maker/internal/models"
	"github.com/rogerio-castellano/coffee-maker/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// EnsureAdmin creates the admin account unless it already exists. It
// reports whether a user was created.
func EnsureAdmin(users repo.UserRepository, username, password string) (bool, error) {
	if _, err := users.GetByUsername(username); err == nil {
		return false, nil
	} else if !errors.Is(err, repo.ErrUserNotFound) {
		return false, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}
	_, err = users.CreateUser(models.User{Username: username, PasswordHash: hash, Role: models.RoleAdmin})
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
