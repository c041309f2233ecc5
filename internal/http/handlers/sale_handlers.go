package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rogerio-castellano/coffee-maker/internal/models"
	"github.com/rogerio-castellano/coffee-maker/internal/repo"
	"go.uber.org/zap"
)

// parseTime reads an RFC3339 query parameter. URL query decoding turns the
// "+" of a timezone offset into a space, so that is reversed first.
// Example: 2025-07-03T17:44:03+02:00 arrives as 2025-07-03T17:44:03 02:00
func parseTime(q url.Values, key string) (*time.Time, error) {
	s := q.Get(key)
	if s == "" {
		return nil, nil
	}
	if len(s) == len(time.RFC3339) && s[len(s)-6] == ' ' {
		s = s[:len(s)-6] + "+" + s[len(s)-5:]
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date format", key)
	}
	return &ts, nil
}

func saleFilterFromQuery(q url.Values) (repo.SaleFilter, error) {
	sf := repo.SaleFilter{Recipe: q.Get("recipe")}

	if o := q.Get("outcome"); o != "" {
		sf.Outcome = models.Outcome(o)
		if !sf.Outcome.Valid() {
			return sf, errors.New("invalid outcome")
		}
	}

	var err error
	if sf.Since, err = parseTime(q, "since"); err != nil {
		return sf, err
	}
	if sf.Until, err = parseTime(q, "until"); err != nil {
		return sf, err
	}

	if sf.Limit, err = parseIntPtr(q.Get("limit")); err != nil {
		return sf, errors.New("invalid limit format")
	}
	if sf.Limit != nil && *sf.Limit <= 0 {
		return sf, errors.New("limit must be greater than zero")
	}

	if sf.Offset, err = parseIntPtr(q.Get("offset")); err != nil {
		return sf, errors.New("invalid offset format")
	}
	if sf.Offset != nil && *sf.Offset < 0 {
		return sf, errors.New("offset must be zero or positive")
	}

	return sf, nil
}

// GetSalesHandler godoc
// @Summary Sales journal
// @Description Every purchase attempt, newest first
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param recipe query string false "Filter by recipe name"
// @Param outcome query string false "Filter by outcome (dispensed|no_such_recipe|insufficient_funds|insufficient_stock)"
// @Param since query string false "Filter sales since this timestamp (RFC3339)"
// @Param until query string false "Filter sales until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} SalesSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	sf, err := saleFilterFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sales, total, err := saleRepo.List(sf)
	if err != nil {
		logger.Error("could not retrieve sales", zap.Error(err))
		http.Error(w, "could not retrieve sales", http.StatusInternalServerError)
		return
	}

	err = writeJSON(w, http.StatusOK, SalesSearchResult{
		Data: sales,
		Meta: Meta{TotalCount: total},
	})
	if err != nil {
		logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// ExportSalesHandler godoc
// @Summary Export the sales journal
// @Tags sales
// @Produce text/csv, application/json
// @Security BearerAuth
// @Param format query string true "Export format (csv or json)"
// @Param recipe query string false "Filter by recipe name"
// @Param since query string false "Filter from timestamp (RFC3339)"
// @Param until query string false "Filter until timestamp (RFC3339)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /sales/export [get]
func ExportSalesHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	sf, err := saleFilterFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Export walks every page; List caps each call at its maximum limit.
	var sales []models.Sale
	offset := 0
	for {
		sf.Offset = &offset
		page, total, err := saleRepo.List(sf)
		if err != nil {
			logger.Error("could not retrieve sales", zap.Error(err))
			http.Error(w, "could not retrieve sales", http.StatusInternalServerError)
			return
		}
		sales = append(sales, page...)
		offset += len(page)
		if len(page) == 0 || offset >= total || sf.Limit != nil {
			break
		}
	}

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="sales.json"`)
		if sales == nil {
			sales = []models.Sale{}
		}
		if err := json.NewEncoder(w).Encode(sales); err != nil {
			logger.Error("failed to write JSON export", zap.Error(err))
		}

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="sales.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "slot", "recipe", "payment", "price", "change", "outcome", "created_at"})
		for _, s := range sales {
			_ = csvWriter.Write([]string{
				s.ID,
				strconv.Itoa(s.Slot),
				s.RecipeName,
				strconv.Itoa(s.Payment),
				strconv.Itoa(s.Price),
				strconv.Itoa(s.Change),
				string(s.Outcome),
				s.CreatedAt.Format(time.RFC3339),
			})
		}
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			logger.Error("failed to write CSV export", zap.Error(err))
		}
	}
}
