package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/coffee-maker/internal/coffeemaker"
	"go.uber.org/zap"
)

var recipeColumns = []string{"name", "price", "coffee", "milk", "sugar", "chocolate"}

// parseCSV reads recipe rows keyed by a header line. Column order is free;
// a missing amount column reads as "0".
func parseCSV(file io.Reader) ([]RecipeRequest, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	headers, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index["name"]; !ok {
		return nil, errors.New("invalid CSV header: missing name column")
	}

	var rows []RecipeRequest
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		field := func(col string) string {
			i, ok := index[col]
			if !ok {
				return "0"
			}
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		row := RecipeRequest{
			Name:      field(recipeColumns[0]),
			Price:     Amount(field(recipeColumns[1])),
			Coffee:    Amount(field(recipeColumns[2])),
			Milk:      Amount(field(recipeColumns[3])),
			Sugar:     Amount(field(recipeColumns[4])),
			Chocolate: Amount(field(recipeColumns[5])),
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ImportRecipesHandler godoc
// @Summary Import recipes via CSV
// @Description Header: name,price,coffee,milk,sugar,chocolate. In update mode an existing recipe with the same name is replaced in place.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportRecipesResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /recipes/import [post]
// @Security BearerAuth
func ImportRecipesHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported := 0
	errorsList := []ValidationError{}

	for i, rec := range records {
		rowNum := i + 2 // header is row 1

		recipe, validationErrors := buildRecipe(rec)
		if len(validationErrors) > 0 {
			for _, ve := range validationErrors {
				errorsList = append(errorsList, ValidationError{
					Field:       ve.Field,
					Description: fmt.Sprintf("row %d: %s", rowNum, ve.Description),
				})
			}
			continue
		}

		_, _, err := machine.UpsertRecipe(recipe, mode == "update")
		switch {
		case errors.Is(err, coffeemaker.ErrDuplicateRecipe):
			errorsList = append(errorsList, ValidationError{Description: fmt.Sprintf("row %d: recipe '%s' already exists", rowNum, recipe.Name())})
			continue
		case errors.Is(err, coffeemaker.ErrRecipeBookFull):
			errorsList = append(errorsList, ValidationError{Description: fmt.Sprintf("row %d: recipe book is full", rowNum)})
			continue
		case err != nil:
			errorsList = append(errorsList, ValidationError{Description: fmt.Sprintf("row %d: failed to import '%s'", rowNum, recipe.Name())})
			continue
		}
		imported++
	}

	logger.Info("recipes imported", zap.String("mode", mode), zap.Int("imported", imported), zap.Int("errors", len(errorsList)))

	err = writeJSON(w, http.StatusOK, ImportRecipesResult{
		ImportedRecipesCount: imported,
		Errors:               errorsList,
	})
	if err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}
