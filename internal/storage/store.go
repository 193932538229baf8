// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/jobledger/internal/models"
)

var (
	// ErrNotFound is returned when the entity to update or delete does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable is returned when the backend cannot be reached or rejects
	// the write.
	ErrUnavailable = errors.New("storage unavailable")
)

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, a JSON document
// file) without changing the service layer.
//
// Save methods upsert by ID. An empty ID means insert; the store then assigns
// one and writes it back into the argument.
type Store interface {
	// ListProjects returns every project with its categories, payments,
	// allocations and expenses attached.
	ListProjects(ctx context.Context) ([]models.Project, error)

	SaveProject(ctx context.Context, project *models.Project) error

	// DeleteProject removes a project with everything it owns.
	DeleteProject(ctx context.Context, projectID string) error

	SaveCategory(ctx context.Context, projectID string, category *models.Category) error

	// DeleteCategory removes a category and its expenses. Allocations made to
	// it stay with their payments.
	DeleteCategory(ctx context.Context, categoryID string) error

	// SavePayment upserts a payment and replaces its allocations with those
	// of payment.Allocations that have a positive amount.
	SavePayment(ctx context.Context, projectID string, payment *models.Payment) error

	// DeletePayment removes a payment and its allocations.
	DeletePayment(ctx context.Context, paymentID string) error

	SaveExpense(ctx context.Context, categoryID string, expense *models.Expense) error

	DeleteExpense(ctx context.Context, expenseID string) error

	// Close releases any resources held by the store.
	Close() error
}
