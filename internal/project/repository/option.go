package repository

// CreateProjectOptions holds parameters for inserting a new Project.
type CreateProjectOptions struct {
	ID    string
	Name  string
	Color string
}

// GetOneProjectOptions holds filter parameters for fetching a single
// Project. All non-empty fields are applied as AND conditions.
type GetOneProjectOptions struct {
	ID   string
	Name string
}
