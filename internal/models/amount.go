package models

import "strconv"

// ParseAmount converts text into a non-negative integer. It is the single
// validation rule shared by recipe fields and inventory restocks.
func ParseAmount(text string) (int, error) {
	v, err := strconv.Atoi(text)
	if err != nil || v < 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
