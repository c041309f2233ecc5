package db

import (
	"errors"
	"testing"
)

func TestConnect_MissingURL(t *testing.T) {
	if _, err := Connect(""); !errors.Is(err, ErrMissingURL) {
		t.Errorf("expected ErrMissingURL, got %v", err)
	}
}
