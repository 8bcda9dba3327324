package repository

import "time"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	ID          string
	Title       string
	ProjectID   string
	Priority    string
	Status      string
	DueDate     *time.Time
	DueTime     string
	IsImportant bool
	Tags        []string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	ProjectID string
	Status    string
	Limit     int
	Offset    int
}
