package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"taskflow/internal/db"
	projectRepo "taskflow/internal/project/repository/sqlite"
	"taskflow/pkg/datemath"
	"taskflow/pkg/log"
	"taskflow/pkg/quickparse"
)

var (
	dbPath   string
	timezone string
	batch    bool
)

var rootCmd = &cobra.Command{
	Use:   "quickctl",
	Short: "Offline quick-entry parser",
	Long: `quickctl parses quick-entry lines the same way the API does, without
creating anything. Projects for @reference resolution come from the
local database.

Usage:
  quickctl parse "Finish report by friday !urgent @work #deadline"
  cat lines.txt | quickctl parse --batch`,
}

// parseCmd parses lines from arguments or stdin and prints draft JSON.
var parseCmd = &cobra.Command{
	Use:   "parse [line]",
	Short: "Parse quick-entry lines into draft JSON",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "taskflow.db", "path to the task database")
	rootCmd.PersistentFlags().StringVar(&timezone, "tz", "Local", "IANA timezone for relative dates")
	parseCmd.Flags().BoolVar(&batch, "batch", false, "use batch-mode marker rules (no !!/!!! shortcuts)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(args []string) error {
	ctx := context.Background()
	logger := log.Init(log.ZapConfig{Level: "warn", Mode: "production", Encoding: "console"})

	dm, err := datemath.NewParser(timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	cfg := quickparse.SingleAdd()
	if batch {
		cfg = quickparse.Batch()
	}
	parser := quickparse.New(cfg, dm)

	projects, err := loadProjects(ctx, logger)
	if err != nil {
		return err
	}

	lines := args
	if len(lines) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	now := time.Now()

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		draft := parser.Parse(line, now, projects)
		if err := enc.Encode(draftJSON(line, draft)); err != nil {
			return err
		}
	}
	return nil
}

// loadProjects reads the resolution list from the local database. A
// missing database is not an error; @references just stay unresolved.
func loadProjects(ctx context.Context, logger log.Logger) ([]quickparse.Project, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, nil
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	list, err := projectRepo.New(database, logger).ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	out := make([]quickparse.Project, len(list))
	for i, p := range list {
		out[i] = quickparse.Project{ID: p.ID, Name: p.Name}
	}
	return out, nil
}

type draftOut struct {
	Line        string     `json:"line"`
	Title       string     `json:"title"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	DueTime     string     `json:"due_time,omitempty"`
	Priority    string     `json:"priority"`
	Tags        []string   `json:"tags,omitempty"`
	ProjectName string     `json:"project_name,omitempty"`
	ProjectID   string     `json:"project_id,omitempty"`
	IsImportant bool       `json:"is_important,omitempty"`
	Warning     string     `json:"warning,omitempty"`
	Submittable bool       `json:"submittable"`
}

func draftJSON(line string, d quickparse.Draft) draftOut {
	return draftOut{
		Line:        line,
		Title:       d.Title,
		DueDate:     d.DueDate,
		DueTime:     d.DueTime,
		Priority:    string(d.Priority),
		Tags:        d.Tags,
		ProjectName: d.ProjectName,
		ProjectID:   d.ProjectID,
		IsImportant: d.IsImportant,
		Warning:     d.Warning,
		Submittable: d.Submittable(),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
