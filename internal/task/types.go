package task

import "time"

// Task is the core entity created from quick-entry drafts and the
// regular create endpoint alike.
type Task struct {
	ID          string
	Title       string
	ProjectID   string
	Priority    string // low, medium, high, urgent
	Status      string // todo, done
	DueDate     *time.Time
	DueTime     string // "HH:MM" 24-hour, empty when absent
	IsImportant bool
	Tags        []string
	CreatedAt   time.Time
}

// Task statuses.
const (
	StatusTodo = "todo"
	StatusDone = "done"
)

// ValidPriorities is the closed set of accepted priority values.
var ValidPriorities = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
	"urgent": true,
}

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title       string
	ProjectID   string
	Priority    string
	DueDate     *time.Time
	DueTime     string
	IsImportant bool
	Tags        []string
}

// BulkItem is one entry of a bulk create request. Ref is an opaque
// caller-side identifier (draft id, line number) echoed back on failure.
type BulkItem struct {
	Ref string
	CreateTaskInput
}

type CreateBulkInput struct {
	Items []BulkItem
}

type ListTasksInput struct {
	ProjectID string
	Status    string
	Limit     int
	Offset    int
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task Task
}

// BulkCreated pairs a created task with its caller-side ref.
type BulkCreated struct {
	Ref  string
	Task Task
}

// BulkFailure reports one item of a bulk request that was not created.
type BulkFailure struct {
	Ref    string
	Reason string
}

type CreateBulkOutput struct {
	Created []BulkCreated
	Failed  []BulkFailure
}

type ListTasksOutput struct {
	Tasks  []Task
	Total  int
	Limit  int
	Offset int
}
