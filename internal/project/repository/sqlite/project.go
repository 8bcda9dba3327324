package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"taskflow/internal/project"
	repo "taskflow/internal/project/repository"
)

// CreateProject inserts a new Project row and returns the created entity.
func (r *implRepository) CreateProject(ctx context.Context, opt repo.CreateProjectOptions) (project.Project, error) {
	const query = `
		INSERT INTO projects (id, name, color, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id, name, color, created_at`

	var p project.Project
	err := r.db.QueryRowContext(ctx, query, opt.ID, opt.Name, opt.Color, time.Now()).Scan(
		&p.ID, &p.Name, &p.Color, &p.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProject"), err)
		return project.Project{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetOneProject retrieves a single Project by the provided filters.
// Returns zero-value Project (ID == "") when not found, without error.
func (r *implRepository) GetOneProject(ctx context.Context, opt repo.GetOneProjectOptions) (project.Project, error) {
	var conditions []string
	var args []any
	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Name != "" {
		conditions = append(conditions, "name = ?")
		args = append(args, opt.Name)
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "1=1")
	}

	query := fmt.Sprintf(
		"SELECT id, name, color, created_at FROM projects WHERE %s LIMIT 1",
		strings.Join(conditions, " AND "),
	)

	var p project.Project
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Name, &p.Color, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return project.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProject"), err)
		return project.Project{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListProjects returns all projects ordered by name.
func (r *implRepository) ListProjects(ctx context.Context) ([]project.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, color, created_at FROM projects ORDER BY name")
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProjects"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Color, &p.CreatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// DeleteProject removes a Project by ID. Tasks cascade via the schema.
func (r *implRepository) DeleteProject(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteProject"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
