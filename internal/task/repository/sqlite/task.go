package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"taskflow/internal/task"
	repo "taskflow/internal/task/repository"
)

// CreateTask inserts a new Task row and returns the created entity.
// Tags are stored as a JSON array column.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	tags := opt.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal tags: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}

	var dueDate sql.NullTime
	if opt.DueDate != nil {
		dueDate = sql.NullTime{Time: *opt.DueDate, Valid: true}
	}

	const query = `
		INSERT INTO tasks (id, title, project_id, priority, status, due_date, due_time, is_important, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	createdAt := time.Now()
	_, err = r.db.ExecContext(ctx, query,
		opt.ID, opt.Title, opt.ProjectID, opt.Priority, opt.Status,
		dueDate, opt.DueTime, boolToInt(opt.IsImportant), string(tagsJSON), createdAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}

	return task.Task{
		ID:          opt.ID,
		Title:       opt.Title,
		ProjectID:   opt.ProjectID,
		Priority:    opt.Priority,
		Status:      opt.Status,
		DueDate:     opt.DueDate,
		DueTime:     opt.DueTime,
		IsImportant: opt.IsImportant,
		Tags:        tags,
		CreatedAt:   createdAt,
	}, nil
}

// ListTasks returns a paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, int, error) {
	where, args := buildListWhere(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(`
		SELECT id, title, project_id, priority, status, due_date, due_time, is_important, tags, created_at
		FROM tasks WHERE %s ORDER BY created_at DESC LIMIT ? OFFSET ?`, where)
	rows, err := r.db.QueryContext(ctx, query, append(args, opt.Limit, opt.Offset)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	return tasks, total, nil
}

func scanTask(rows *sql.Rows) (task.Task, error) {
	var t task.Task
	var dueDate sql.NullTime
	var important int
	var tagsJSON string

	if err := rows.Scan(
		&t.ID, &t.Title, &t.ProjectID, &t.Priority, &t.Status,
		&dueDate, &t.DueTime, &important, &tagsJSON, &t.CreatedAt,
	); err != nil {
		return task.Task{}, err
	}

	if dueDate.Valid {
		d := dueDate.Time
		t.DueDate = &d
	}
	t.IsImportant = important != 0
	if err := json.Unmarshal([]byte(tagsJSON), &t.Tags); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
