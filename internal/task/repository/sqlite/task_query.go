package sqlite

import (
	"strings"

	repo "taskflow/internal/task/repository"
)

// buildListWhere builds the WHERE clause + args for ListTasks.
// All non-empty fields are applied as AND conditions.
func buildListWhere(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ProjectID != "" {
		conditions = append(conditions, "project_id = ?")
		args = append(args, opt.ProjectID)
	}
	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, opt.Status)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
