package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/rogerio-castellano/coffee-maker/internal/models"
	"github.com/rogerio-castellano/coffee-maker/internal/repo"
)

// Amount accepts a JSON number or string and keeps its text, so that
// validation is done by models.ParseAmount like every other input path.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	*a = Amount(data)
	return nil
}

type RecipeRequest struct {
	Name      string `json:"name"`
	Price     Amount `json:"price" swaggertype:"string"`
	Coffee    Amount `json:"coffee" swaggertype:"string"`
	Milk      Amount `json:"milk" swaggertype:"string"`
	Sugar     Amount `json:"sugar" swaggertype:"string"`
	Chocolate Amount `json:"chocolate" swaggertype:"string"`
}

type RecipeResponse struct {
	Slot      int    `json:"slot"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Coffee    int    `json:"coffee"`
	Milk      int    `json:"milk"`
	Sugar     int    `json:"sugar"`
	Chocolate int    `json:"chocolate"`
}

func toRecipeResponse(slot int, r *models.Recipe) RecipeResponse {
	return RecipeResponse{
		Slot:      slot,
		Name:      r.Name(),
		Price:     r.Price(),
		Coffee:    r.Coffee(),
		Milk:      r.Milk(),
		Sugar:     r.Sugar(),
		Chocolate: r.Chocolate(),
	}
}

type DeleteRecipeResult struct {
	Deleted string `json:"deleted"`
}

type EditRecipeResult struct {
	Replaced string         `json:"replaced"`
	Recipe   RecipeResponse `json:"recipe"`
}

type InventoryRequest struct {
	Coffee    Amount `json:"coffee" swaggertype:"string"`
	Milk      Amount `json:"milk" swaggertype:"string"`
	Sugar     Amount `json:"sugar" swaggertype:"string"`
	Chocolate Amount `json:"chocolate" swaggertype:"string"`
}

type PurchaseRequest struct {
	Slot    int `json:"slot"`
	Payment int `json:"payment"`
}

type PurchaseResult struct {
	Change    int    `json:"change"`
	Dispensed bool   `json:"dispensed"`
	Recipe    string `json:"recipe,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type SalesSearchResult struct {
	Data []models.Sale `json:"data"`
	Meta Meta          `json:"meta,omitempty"`
}

type DashboardResponse struct {
	repo.Metrics
	Inventory repo.Levels `json:"inventory"`
	LowStock  []string    `json:"low_stock"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterAsAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type ImportRecipesResult struct {
	ImportedRecipesCount int               `json:"imported"`
	Errors               []ValidationError `json:"errors"`
}
