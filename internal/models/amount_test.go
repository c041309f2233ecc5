package models

import (
	"errors"
	"strconv"
	"testing"
)

func TestParseAmount_Valid(t *testing.T) {
	for _, v := range []int{0, 1, 15, 42, 1000000} {
		got, err := ParseAmount(strconv.Itoa(v))
		if err != nil {
			t.Fatalf("ParseAmount(%d): unexpected error %v", v, err)
		}
		if got != v {
			t.Errorf("ParseAmount(%d) = %d", v, got)
		}
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	tests := []string{"-1", "asdf", "", " 5", "5 ", "1.5", "0x10", "--3"}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := ParseAmount(text)
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("expected ErrInvalidAmount for %q, got %v", text, err)
			}
		})
	}
}

func TestParseAmount_PlusSign(t *testing.T) {
	got, err := ParseAmount("+5")
	if err != nil || got != 5 {
		t.Errorf("expected 5, got %d (%v)", got, err)
	}
}
