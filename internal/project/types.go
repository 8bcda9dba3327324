package project

import "time"

// Project is a container tasks are filed under. Its name doubles as the
// resolution target for @references in quick-entry text.
type Project struct {
	ID        string
	Name      string
	Color     string
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type CreateProjectInput struct {
	Name  string
	Color string
}

// --- UseCase Outputs ---

type CreateProjectOutput struct {
	Project Project
}

type ListProjectsOutput struct {
	Projects []Project
}

type DetailProjectOutput struct {
	Project Project
}
