package repo

import (
	"github.com/rogerio-castellano/coffee-maker/internal/models"
)

// maxLimit caps a single page of journal entries.
const maxLimit = 100

type SaleRepository interface {
	Log(sale models.Sale) error
	List(sf SaleFilter) ([]models.Sale, int, error)
}
