package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/coffee-maker/internal/models"
)

type PostgresSaleRepository struct {
	db *sql.DB
}

func NewPostgresSaleRepository(db *sql.DB) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db}
}

// Log inserts a journal entry
func (r *PostgresSaleRepository) Log(s models.Sale) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO sales (id, slot, recipe_name, payment, price, change, outcome, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, s.ID, s.Slot, s.RecipeName, s.Payment, s.Price, s.Change, string(s.Outcome), s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}
	return nil
}

// List returns journal entries matching the filter, newest first
func (r *PostgresSaleRepository) List(sf SaleFilter) ([]models.Sale, int, error) {
	if sf.Offset != nil && *sf.Offset < 0 {
		return nil, 0, fmt.Errorf("offset must be non-negative")
	}

	whereClause, args := r.buildWhereClause(sf)

	total, err := r.getTotal(whereClause, args)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}

	if sf.Offset != nil && *sf.Offset >= total {
		return []models.Sale{}, total, nil
	}

	query, queryArgs := r.buildMainQuery(whereClause, args, sf)
	sales, err := r.executeQuery(query, queryArgs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute query: %w", err)
	}

	return sales, total, nil
}

// buildWhereClause constructs the WHERE clause and returns arguments
func (r *PostgresSaleRepository) buildWhereClause(sf SaleFilter) (string, []any) {
	args := []any{}
	whereClause := "WHERE 1=1"
	argIndex := 1

	if sf.Recipe != "" {
		whereClause += fmt.Sprintf(" AND recipe_name = $%d", argIndex)
		args = append(args, sf.Recipe)
		argIndex++
	}

	if sf.Outcome != "" {
		whereClause += fmt.Sprintf(" AND outcome = $%d", argIndex)
		args = append(args, string(sf.Outcome))
		argIndex++
	}

	if sf.Since != nil {
		whereClause += fmt.Sprintf(" AND created_at >= $%d", argIndex)
		args = append(args, *sf.Since)
		argIndex++
	}

	if sf.Until != nil {
		whereClause += fmt.Sprintf(" AND created_at <= $%d", argIndex)
		args = append(args, *sf.Until)
	}

	return whereClause, args
}

// buildMainQuery constructs the main SELECT query with pagination
func (r *PostgresSaleRepository) buildMainQuery(whereClause string, baseArgs []any, sf SaleFilter) (string, []any) {
	query := fmt.Sprintf(`SELECT id, slot, recipe_name, payment, price, change, outcome, created_at
		FROM sales %s ORDER BY created_at DESC`, whereClause)
	args := make([]any, len(baseArgs))
	copy(args, baseArgs)
	argIndex := len(baseArgs) + 1

	limit := maxLimit
	if sf.Limit != nil && *sf.Limit > 0 {
		limit = min(*sf.Limit, maxLimit)
	}
	query += fmt.Sprintf(" LIMIT $%d", argIndex)
	args = append(args, limit)
	argIndex++

	if sf.Offset != nil && *sf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, *sf.Offset)
	}

	return query, args
}

func (r *PostgresSaleRepository) getTotal(whereClause string, args []any) (int, error) {
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM sales %s", whereClause)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresSaleRepository) executeQuery(query string, args []any) ([]models.Sale, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var s models.Sale
		var outcome string
		if err := rows.Scan(&s.ID, &s.Slot, &s.RecipeName, &s.Payment, &s.Price, &s.Change, &outcome, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.Outcome = models.Outcome(outcome)
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}
