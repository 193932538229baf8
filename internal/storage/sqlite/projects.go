package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/jobledger/internal/models"
)

// SaveProject inserts or updates a project row. Categories and payments are
// saved separately.
func (s *SQLiteStore) SaveProject(ctx context.Context, project *models.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if project.CreatedAt == 0 {
		project.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, client_name, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, client_name = excluded.client_name`,
		project.ID, project.Name, project.ClientName, project.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save project: %w", unavailable(err))
	}
	return nil
}

// DeleteProject deletes a project; foreign keys cascade to its categories,
// payments, allocations and expenses.
func (s *SQLiteStore) DeleteProject(ctx context.Context, projectID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", unavailable(err))
	}
	return checkAffected(res, "project", projectID)
}

func (s *SQLiteStore) listProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, client_name, created_at FROM projects ORDER BY created_at, rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", unavailable(err))
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.ClientName, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", unavailable(err))
	}
	return projects, nil
}
