package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/jobledger/internal/models"
)

// SavePayment upserts a payment and rewrites its allocation rows. Allocations
// without a positive amount are not stored.
func (s *SQLiteStore) SavePayment(ctx context.Context, projectID string, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt == 0 {
		payment.CreatedAt = time.Now().Unix()
	}
	payment.ProjectID = projectID

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", unavailable(err))
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO payments (id, project_id, method, reference, amount, date, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			method = excluded.method,
			reference = excluded.reference,
			amount = excluded.amount,
			date = excluded.date,
			notes = excluded.notes`,
		payment.ID, projectID, string(payment.Method), payment.Reference,
		payment.Amount, payment.Date.String(), payment.Notes, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", unavailable(err))
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM allocations WHERE payment_id = ?", payment.ID); err != nil {
		return fmt.Errorf("failed to clear allocations: %w", unavailable(err))
	}

	for i := range payment.Allocations {
		a := &payment.Allocations[i]
		if a.Share == nil || !a.Share.Positive() {
			continue
		}
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		a.PaymentID = payment.ID
		if a.Date.IsZero() {
			a.Date = payment.Date
		}

		var amount, labor, materials decimal.NullDecimal
		switch sh := a.Share.(type) {
		case models.LaborMaterials:
			labor = nullDecimal(sh.Labor, true)
			materials = nullDecimal(sh.Materials, true)
		case models.LumpSum:
			amount = nullDecimal(sh.Amount, true)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO allocations (id, payment_id, category_id, amount, labor_amount, materials_amount, date)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, payment.ID, a.CategoryID, amount, labor, materials, a.Date.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert allocation: %w", unavailable(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", unavailable(err))
	}
	return nil
}

// DeletePayment deletes a payment; its allocation rows go with it.
func (s *SQLiteStore) DeletePayment(ctx context.Context, paymentID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM payments WHERE id = ?", paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", unavailable(err))
	}
	return checkAffected(res, "payment", paymentID)
}

func (s *SQLiteStore) listPayments(ctx context.Context) ([]models.Payment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, method, reference, amount, date, notes, created_at
		FROM payments ORDER BY created_at, rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", unavailable(err))
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var (
			p      models.Payment
			method string
			date   string
		)
		if err := rows.Scan(&p.ID, &p.ProjectID, &method, &p.Reference,
			&p.Amount, &date, &p.Notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.Method = models.PaymentMethod(method)
		p.Date = parseDate(date)
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", unavailable(err))
	}
	return payments, nil
}

func (s *SQLiteStore) listAllocations(ctx context.Context) ([]models.Allocation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, payment_id, category_id, amount, labor_amount, materials_amount, date
		FROM allocations ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", unavailable(err))
	}
	defer rows.Close()

	var allocations []models.Allocation
	for rows.Next() {
		var (
			a                        models.Allocation
			amount, labor, materials decimal.NullDecimal
			date                     string
		)
		if err := rows.Scan(&a.ID, &a.PaymentID, &a.CategoryID,
			&amount, &labor, &materials, &date); err != nil {
			return nil, fmt.Errorf("failed to scan allocation: %w", err)
		}
		if labor.Valid || materials.Valid {
			a.Share = models.LaborMaterials{Labor: labor.Decimal, Materials: materials.Decimal}
		} else {
			a.Share = models.LumpSum{Amount: amount.Decimal}
		}
		a.Date = parseDate(date)
		allocations = append(allocations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate allocations: %w", unavailable(err))
	}
	return allocations, nil
}
