// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/jobledger/internal/models"
	"github.com/mmynk/jobledger/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer; also keeps the foreign_keys pragma on the only connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", unavailable(err))
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ListProjects loads every project with its full graph in five queries.
//
// Allocations are attached to their payment and, when the category still
// exists, to the category as well.
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.listProjects(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Project, len(projects))
	for i := range projects {
		byID[projects[i].ID] = &projects[i]
	}

	categories, err := s.listCategories(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.listExpenses(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.listPayments(ctx)
	if err != nil {
		return nil, err
	}
	allocations, err := s.listAllocations(ctx)
	if err != nil {
		return nil, err
	}

	catIndex := make(map[string]*models.Category, len(categories))
	for i := range categories {
		c := &categories[i]
		c.Allocations = []models.Allocation{}
		c.Expenses = expenses[c.ID]
		if c.Expenses == nil {
			c.Expenses = []models.Expense{}
		}
		catIndex[c.ID] = c
	}
	for _, a := range allocations {
		if c, ok := catIndex[a.CategoryID]; ok {
			c.Allocations = append(c.Allocations, a)
		}
	}
	for _, c := range categories {
		if p, ok := byID[c.ProjectID]; ok {
			p.Categories = append(p.Categories, c)
		}
	}

	payAllocs := make(map[string][]models.Allocation)
	for _, a := range allocations {
		payAllocs[a.PaymentID] = append(payAllocs[a.PaymentID], a)
	}
	for _, pay := range payments {
		pay.Allocations = payAllocs[pay.ID]
		if pay.Allocations == nil {
			pay.Allocations = []models.Allocation{}
		}
		if p, ok := byID[pay.ProjectID]; ok {
			p.Payments = append(p.Payments, pay)
		}
	}

	for i := range projects {
		if projects[i].Categories == nil {
			projects[i].Categories = []models.Category{}
		}
		if projects[i].Payments == nil {
			projects[i].Payments = []models.Payment{}
		}
	}
	return projects, nil
}

// unavailable marks a database error as storage.ErrUnavailable while keeping
// the driver error in the chain.
func unavailable(err error) error {
	return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
}

// checkAffected turns a delete or update that touched no row into
// storage.ErrNotFound.
func checkAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return unavailable(err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}

// nullDecimal writes a decimal, or NULL when the field group is unused.
func nullDecimal(d decimal.Decimal, valid bool) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: valid}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func parseDate(s string) models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}
	}
	return d
}
