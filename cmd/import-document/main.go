// Command import-document copies a JSON ledger document into a SQLite
// database.
//
// The document may be in any schema version; it is migrated on read. Rows
// are upserted by ID, so importing the same document twice is harmless.
//
//	import-document -in ./data/ledger.json -db ./data/ledger.db
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mmynk/jobledger/internal/ledger"
	"github.com/mmynk/jobledger/internal/models"
	"github.com/mmynk/jobledger/internal/storage"
	"github.com/mmynk/jobledger/internal/storage/jsonfile"
	"github.com/mmynk/jobledger/internal/storage/sqlite"
	"github.com/mmynk/jobledger/pkg/logging"
)

func main() {
	in := flag.String("in", "./data/ledger.json", "path of the JSON document to import")
	dbPath := flag.String("db", "./data/ledger.db", "path of the SQLite database to write")
	flag.Parse()

	logging.Setup()

	src, err := jsonfile.Open(*in)
	if err != nil {
		slog.Error("Failed to read document", "path", *in, "error", err)
		os.Exit(1)
	}
	defer src.Close()

	dst, err := sqlite.New(*dbPath)
	if err != nil {
		slog.Error("Failed to open database", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer dst.Close()

	ctx := context.Background()
	projects, err := loadProjects(ctx, src)
	if err != nil {
		slog.Error("Failed to list projects", "error", err)
		os.Exit(1)
	}

	var total counts
	for i := range projects {
		c, err := importProject(ctx, dst, &projects[i])
		if err != nil {
			slog.Error("Import failed", "project_id", projects[i].ID, "error", err)
			os.Exit(1)
		}
		total.add(c)
	}
	slog.Info("Import complete",
		"projects", total.projects,
		"categories", total.categories,
		"payments", total.payments,
		"expenses", total.expenses,
	)
}

// loadProjects reads every project from src and runs it through the ledger,
// which pairs the category and payment copies of each allocation.
func loadProjects(ctx context.Context, src storage.Store) ([]models.Project, error) {
	projects, err := src.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	l := ledger.New()
	l.Load(projects)
	return l.Projects(), nil
}

type counts struct {
	projects, categories, payments, expenses int
}

func (c *counts) add(o counts) {
	c.projects += o.projects
	c.categories += o.categories
	c.payments += o.payments
	c.expenses += o.expenses
}

// importProject writes a project and everything it owns. Categories go
// first so their expenses have a parent; allocations travel with their
// payments.
func importProject(ctx context.Context, dst storage.Store, p *models.Project) (counts, error) {
	c := counts{projects: 1}
	if err := dst.SaveProject(ctx, p); err != nil {
		return c, fmt.Errorf("save project: %w", err)
	}
	for i := range p.Categories {
		cat := &p.Categories[i]
		if err := dst.SaveCategory(ctx, p.ID, cat); err != nil {
			return c, fmt.Errorf("save category %s: %w", cat.ID, err)
		}
		c.categories++
		for j := range cat.Expenses {
			if err := dst.SaveExpense(ctx, cat.ID, &cat.Expenses[j]); err != nil {
				return c, fmt.Errorf("save expense %s: %w", cat.Expenses[j].ID, err)
			}
			c.expenses++
		}
	}
	for i := range p.Payments {
		if err := dst.SavePayment(ctx, p.ID, &p.Payments[i]); err != nil {
			return c, fmt.Errorf("save payment %s: %w", p.Payments[i].ID, err)
		}
		c.payments++
	}
	return c, nil
}
