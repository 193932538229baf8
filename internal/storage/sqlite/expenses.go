package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/jobledger/internal/models"
)

// SaveExpense inserts or updates an expense row.
func (s *SQLiteStore) SaveExpense(ctx context.Context, categoryID string, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}
	expense.CategoryID = categoryID

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, category_id, amount, date, description, type, payment_method, reference, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			amount = excluded.amount,
			date = excluded.date,
			description = excluded.description,
			type = excluded.type,
			payment_method = excluded.payment_method,
			reference = excluded.reference`,
		expense.ID, categoryID, expense.Amount, expense.Date.String(), expense.Description,
		nullString(string(expense.Type)), nullString(string(expense.Method)), nullString(expense.Reference),
		expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", unavailable(err))
	}
	return nil
}

// DeleteExpense deletes one expense.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", unavailable(err))
	}
	return checkAffected(res, "expense", expenseID)
}

// listExpenses returns every expense grouped by category ID.
func (s *SQLiteStore) listExpenses(ctx context.Context) (map[string][]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category_id, amount, date, description, type, payment_method, reference, created_at
		FROM expenses ORDER BY created_at, rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", unavailable(err))
	}
	defer rows.Close()

	expenses := make(map[string][]models.Expense)
	for rows.Next() {
		var (
			e                      models.Expense
			date                   string
			typ, method, reference sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.CategoryID, &e.Amount, &date, &e.Description,
			&typ, &method, &reference, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Date = parseDate(date)
		e.Type = models.ExpenseType(typ.String)
		e.Method = models.PaymentMethod(method.String)
		e.Reference = reference.String
		expenses[e.CategoryID] = append(expenses[e.CategoryID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", unavailable(err))
	}
	return expenses, nil
}
