package repo

import (
	"time"

	"github.com/rogerio-castellano/coffee-maker/internal/models"
)

type SaleFilter struct {
	Recipe  string
	Outcome models.Outcome
	Since   *time.Time
	Until   *time.Time
	Offset  *int
	Limit   *int
}
