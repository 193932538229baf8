// Package jsonfile implements storage.Store on a single JSON document file.
//
// The whole document is held in memory and rewritten on every change. The
// file is migrated to the current schema version when opened; the migrated
// form is written back on the first change.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/jobledger/internal/document"
	"github.com/mmynk/jobledger/internal/models"
	"github.com/mmynk/jobledger/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store is a document-file backed storage.Store.
type Store struct {
	path string

	mu       sync.Mutex
	projects []models.Project
}

// Open loads the document at path. A missing file is an empty ledger.
func Open(path string) (*Store, error) {
	s := &Store{path: path, projects: []models.Project{}}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	doc, err := document.Decode(f)
	if err != nil {
		return nil, err
	}
	s.projects = document.ToModels(doc)
	return s, nil
}

// Path returns the document file location.
func (s *Store) Path() string { return s.path }

// Close is a no-op; every change is already on disk.
func (s *Store) Close() error { return nil }

// ListProjects returns a copy of every project.
func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProjects(s.projects), nil
}

func (s *Store) SaveProject(ctx context.Context, project *models.Project) error {
	return s.update(func() error {
		if project.ID == "" {
			project.ID = uuid.New().String()
		}
		if project.CreatedAt == 0 {
			project.CreatedAt = time.Now().Unix()
		}
		if p := s.project(project.ID); p != nil {
			p.Name = project.Name
			p.ClientName = project.ClientName
			return nil
		}
		s.projects = append(s.projects, models.Project{
			ID:         project.ID,
			Name:       project.Name,
			ClientName: project.ClientName,
			CreatedAt:  project.CreatedAt,
			Categories: []models.Category{},
			Payments:   []models.Payment{},
		})
		return nil
	})
}

func (s *Store) DeleteProject(ctx context.Context, projectID string) error {
	return s.update(func() error {
		i := slices.IndexFunc(s.projects, func(p models.Project) bool { return p.ID == projectID })
		if i < 0 {
			return fmt.Errorf("project %s: %w", projectID, storage.ErrNotFound)
		}
		s.projects = slices.Delete(s.projects, i, i+1)
		return nil
	})
}

// SaveCategory upserts the category's own fields. Its allocations and
// expenses are managed through SavePayment and SaveExpense.
func (s *Store) SaveCategory(ctx context.Context, projectID string, category *models.Category) error {
	return s.update(func() error {
		p := s.project(projectID)
		if p == nil {
			return fmt.Errorf("project %s: %w", projectID, storage.ErrNotFound)
		}
		if category.ID == "" {
			category.ID = uuid.New().String()
		}
		if category.CreatedAt == 0 {
			category.CreatedAt = time.Now().Unix()
		}
		category.ProjectID = projectID

		for i := range p.Categories {
			if c := &p.Categories[i]; c.ID == category.ID {
				c.Name = category.Name
				c.Budget = category.Budget
				return nil
			}
		}
		p.Categories = append(p.Categories, models.Category{
			ID:          category.ID,
			ProjectID:   projectID,
			Name:        category.Name,
			Budget:      category.Budget,
			CreatedAt:   category.CreatedAt,
			Allocations: []models.Allocation{},
			Expenses:    []models.Expense{},
		})
		return nil
	})
}

// DeleteCategory removes the category with its expenses; payments keep
// their allocation records.
func (s *Store) DeleteCategory(ctx context.Context, categoryID string) error {
	return s.update(func() error {
		for pi := range s.projects {
			p := &s.projects[pi]
			i := slices.IndexFunc(p.Categories, func(c models.Category) bool { return c.ID == categoryID })
			if i >= 0 {
				p.Categories = slices.Delete(p.Categories, i, i+1)
				return nil
			}
		}
		return fmt.Errorf("category %s: %w", categoryID, storage.ErrNotFound)
	})
}

// SavePayment upserts a payment and replaces the allocations it produced,
// in the payment and in each category, with the positive ones given.
func (s *Store) SavePayment(ctx context.Context, projectID string, payment *models.Payment) error {
	return s.update(func() error {
		p := s.project(projectID)
		if p == nil {
			return fmt.Errorf("project %s: %w", projectID, storage.ErrNotFound)
		}
		if payment.ID == "" {
			payment.ID = uuid.New().String()
		}
		if payment.CreatedAt == 0 {
			payment.CreatedAt = time.Now().Unix()
		}
		payment.ProjectID = projectID

		allocs := make([]models.Allocation, 0, len(payment.Allocations))
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
			allocs = append(allocs, *a)
		}

		stored := *payment
		stored.Allocations = allocs
		if i := slices.IndexFunc(p.Payments, func(x models.Payment) bool { return x.ID == payment.ID }); i >= 0 {
			p.Payments[i] = stored
		} else {
			p.Payments = append(p.Payments, stored)
		}

		for ci := range p.Categories {
			c := &p.Categories[ci]
			c.Allocations = slices.DeleteFunc(c.Allocations, func(a models.Allocation) bool {
				return a.PaymentID == payment.ID
			})
			for _, a := range allocs {
				if a.CategoryID == c.ID {
					c.Allocations = append(c.Allocations, a)
				}
			}
		}
		return nil
	})
}

// DeletePayment removes a payment and every allocation that references it.
func (s *Store) DeletePayment(ctx context.Context, paymentID string) error {
	return s.update(func() error {
		for pi := range s.projects {
			p := &s.projects[pi]
			i := slices.IndexFunc(p.Payments, func(x models.Payment) bool { return x.ID == paymentID })
			if i < 0 {
				continue
			}
			p.Payments = slices.Delete(p.Payments, i, i+1)
			for ci := range p.Categories {
				c := &p.Categories[ci]
				c.Allocations = slices.DeleteFunc(c.Allocations, func(a models.Allocation) bool {
					return a.PaymentID == paymentID
				})
			}
			return nil
		}
		return fmt.Errorf("payment %s: %w", paymentID, storage.ErrNotFound)
	})
}

func (s *Store) SaveExpense(ctx context.Context, categoryID string, expense *models.Expense) error {
	return s.update(func() error {
		c := s.category(categoryID)
		if c == nil {
			return fmt.Errorf("category %s: %w", categoryID, storage.ErrNotFound)
		}
		if expense.ID == "" {
			expense.ID = uuid.New().String()
		}
		if expense.CreatedAt == 0 {
			expense.CreatedAt = time.Now().Unix()
		}
		expense.CategoryID = categoryID

		if i := slices.IndexFunc(c.Expenses, func(e models.Expense) bool { return e.ID == expense.ID }); i >= 0 {
			c.Expenses[i] = *expense
		} else {
			c.Expenses = append(c.Expenses, *expense)
		}
		return nil
	})
}

func (s *Store) DeleteExpense(ctx context.Context, expenseID string) error {
	return s.update(func() error {
		for pi := range s.projects {
			p := &s.projects[pi]
			for ci := range p.Categories {
				c := &p.Categories[ci]
				i := slices.IndexFunc(c.Expenses, func(e models.Expense) bool { return e.ID == expenseID })
				if i >= 0 {
					c.Expenses = slices.Delete(c.Expenses, i, i+1)
					return nil
				}
			}
		}
		return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	})
}

// update applies fn to a copy of the projects and writes the result. Memory
// only changes when the write succeeds.
func (s *Store) update(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.projects
	s.projects = cloneProjects(saved)
	if err := fn(); err != nil {
		s.projects = saved
		return err
	}
	if err := s.write(); err != nil {
		s.projects = saved
		return err
	}
	return nil
}

// write replaces the document file atomically: temp file, fsync, rename.
func (s *Store) write() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create document directory: %w: %w", storage.ErrUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp document: %w: %w", storage.ErrUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if err := document.Encode(tmp, document.FromModels(s.projects)); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync document: %w: %w", storage.ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close document: %w: %w", storage.ErrUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace document: %w: %w", storage.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) project(id string) *models.Project {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return &s.projects[i]
		}
	}
	return nil
}

func (s *Store) category(id string) *models.Category {
	for pi := range s.projects {
		p := &s.projects[pi]
		for ci := range p.Categories {
			if p.Categories[ci].ID == id {
				return &p.Categories[ci]
			}
		}
	}
	return nil
}

// cloneProjects copies every slice of the graph so callers and pending
// updates never share backing arrays with the stored state.
func cloneProjects(in []models.Project) []models.Project {
	out := make([]models.Project, len(in))
	for i, p := range in {
		p.Categories = slices.Clone(p.Categories)
		for ci := range p.Categories {
			c := &p.Categories[ci]
			c.Allocations = slices.Clone(c.Allocations)
			c.Expenses = slices.Clone(c.Expenses)
		}
		p.Payments = slices.Clone(p.Payments)
		for pi := range p.Payments {
			p.Payments[pi].Allocations = slices.Clone(p.Payments[pi].Allocations)
		}
		out[i] = p
	}
	return out
}
