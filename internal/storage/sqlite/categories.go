package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/jobledger/internal/models"
)

// SaveCategory inserts or updates a category row. Only the budget columns of
// the category's mode are written; the others are set to NULL.
func (s *SQLiteStore) SaveCategory(ctx context.Context, projectID string, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if category.CreatedAt == 0 {
		category.CreatedAt = time.Now().Unix()
	}
	category.ProjectID = projectID

	var total, cost, labor, laborCost, materials decimal.NullDecimal
	switch b := category.Budget.(type) {
	case models.Separate:
		labor = nullDecimal(b.LaborBudget, true)
		laborCost = nullDecimal(b.LaborCost, true)
		materials = nullDecimal(b.MaterialsBudget, true)
	case models.AllInclusive:
		total = nullDecimal(b.TotalBudget, true)
		cost = nullDecimal(b.TotalCost, true)
	default:
		total = nullDecimal(decimal.Zero, true)
		cost = nullDecimal(decimal.Zero, true)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, project_id, name, mode, total_budget, total_cost,
			labor_budget, labor_cost, materials_budget, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			mode = excluded.mode,
			total_budget = excluded.total_budget,
			total_cost = excluded.total_cost,
			labor_budget = excluded.labor_budget,
			labor_cost = excluded.labor_cost,
			materials_budget = excluded.materials_budget`,
		category.ID, projectID, category.Name, string(category.Mode()),
		total, cost, labor, laborCost, materials, category.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", unavailable(err))
	}
	return nil
}

// DeleteCategory deletes a category and, by cascade, its expenses. Allocation
// rows keep their category_id.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, categoryID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", unavailable(err))
	}
	return checkAffected(res, "category", categoryID)
}

func (s *SQLiteStore) listCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, name, mode, total_budget, total_cost,
			labor_budget, labor_cost, materials_budget, created_at
		FROM categories ORDER BY created_at, rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", unavailable(err))
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var (
			c                                        models.Category
			mode                                     string
			total, cost, labor, laborCost, materials decimal.NullDecimal
		)
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Name, &mode,
			&total, &cost, &labor, &laborCost, &materials, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		if models.Mode(mode) == models.ModeSeparate {
			c.Budget = models.Separate{
				LaborBudget:     labor.Decimal,
				LaborCost:       laborCost.Decimal,
				MaterialsBudget: materials.Decimal,
			}
		} else {
			c.Budget = models.AllInclusive{
				TotalBudget: total.Decimal,
				TotalCost:   cost.Decimal,
			}
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", unavailable(err))
	}
	return categories, nil
}
