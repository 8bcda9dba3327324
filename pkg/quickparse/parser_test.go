package quickparse_test

import (
	"testing"
	"time"

	"taskflow/pkg/datemath"
	"taskflow/pkg/quickparse"
)

func newParsers(t *testing.T) (*quickparse.Parser, *quickparse.Parser) {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error creating date parser: %v", err)
	}
	return quickparse.New(quickparse.SingleAdd(), dm), quickparse.New(quickparse.Batch(), dm)
}

// Monday, January 1, 2024.
var baseMonday = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

var knownProjects = []quickparse.Project{
	{ID: "p-work", Name: "Work"},
	{ID: "p-home", Name: "Home"},
}

func TestParseNoMarkers(t *testing.T) {
	single, _ := newParsers(t)

	d := single.Parse("  Buy   groceries  ", baseMonday, knownProjects)

	if d.Title != "Buy groceries" {
		t.Errorf("title = %q, want %q", d.Title, "Buy groceries")
	}
	if d.DueDate != nil || d.DueTime != "" {
		t.Errorf("expected no date/time, got %v %q", d.DueDate, d.DueTime)
	}
	if d.Priority != quickparse.PriorityMedium {
		t.Errorf("priority = %q, want medium", d.Priority)
	}
	if len(d.Tags) != 0 || d.ProjectName != "" || d.ProjectID != "" || d.IsImportant {
		t.Errorf("expected all optional fields empty, got %+v", d)
	}
}

func TestParseEndToEnd(t *testing.T) {
	single, _ := newParsers(t)

	d := single.Parse("Finish report by Friday !urgent @work #deadline", baseMonday, knownProjects)

	if d.Title != "Finish report" {
		t.Errorf("title = %q, want %q", d.Title, "Finish report")
	}
	wantDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC) // upcoming Friday
	if d.DueDate == nil || !d.DueDate.Equal(wantDate) {
		t.Errorf("dueDate = %v, want %v", d.DueDate, wantDate)
	}
	if d.Priority != quickparse.PriorityUrgent {
		t.Errorf("priority = %q, want urgent", d.Priority)
	}
	if len(d.Tags) != 1 || d.Tags[0] != "deadline" {
		t.Errorf("tags = %v, want [deadline]", d.Tags)
	}
	if d.ProjectName != "Work" || d.ProjectID != "p-work" {
		t.Errorf("project = %q/%q, want Work/p-work", d.ProjectName, d.ProjectID)
	}
	if d.Warning != "" {
		t.Errorf("unexpected warning: %q", d.Warning)
	}
	if !d.Submittable() {
		t.Error("expected draft to be submittable")
	}
}

func TestParseDates(t *testing.T) {
	single, _ := newParsers(t)

	tests := []struct {
		name  string
		text  string
		want  time.Time
		title string
	}{
		{
			name:  "Today",
			text:  "pay rent today",
			want:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			title: "pay rent",
		},
		{
			name:  "Tomorrow",
			text:  "standup notes tomorrow",
			want:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			title: "standup notes",
		},
		{
			name:  "Next week",
			text:  "plan sprint next week",
			want:  time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			title: "plan sprint",
		},
		{
			// "next monday" from a Monday rolls a full week; the bare
			// weekday rule must not shadow it.
			name:  "Next monday",
			text:  "review next monday",
			want:  time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			title: "review",
		},
		{
			name:  "Bare weekday",
			text:  "dentist wednesday",
			want:  time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			title: "dentist",
		},
		{
			name:  "In N days",
			text:  "follow up in 3 days",
			want:  time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			title: "follow up",
		},
		{
			name:  "In N weeks",
			text:  "renewal in 2 weeks",
			want:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			title: "renewal",
		},
		{
			name:  "Literal date",
			text:  "taxes due 4/15",
			want:  time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
			title: "taxes",
		},
		{
			name:  "Literal date with 2-digit year",
			text:  "launch on 3/1/26",
			want:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			title: "launch",
		},
		{
			name:  "Literal date with 4-digit year",
			text:  "conference 12/25/2026",
			want:  time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC),
			title: "conference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := single.Parse(tt.text, baseMonday, nil)
			if d.DueDate == nil || !d.DueDate.Equal(tt.want) {
				t.Errorf("dueDate = %v, want %v", d.DueDate, tt.want)
			}
			if d.Title != tt.title {
				t.Errorf("title = %q, want %q", d.Title, tt.title)
			}
		})
	}
}

func TestParseLiteralDatePrecedence(t *testing.T) {
	single, _ := newParsers(t)

	// Both a literal date and a keyword phrase present: the literal wins
	// and the keyword phrase stays in the title.
	d := single.Parse("ship 2/14 tomorrow", baseMonday, nil)
	want := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)
	if d.DueDate == nil || !d.DueDate.Equal(want) {
		t.Fatalf("dueDate = %v, want %v", d.DueDate, want)
	}
	if d.Title != "ship tomorrow" {
		t.Errorf("title = %q, want %q", d.Title, "ship tomorrow")
	}
}

func TestParseInvalidLiteralDateFallsThrough(t *testing.T) {
	single, _ := newParsers(t)

	// 2/31 is not a real date: discarded silently, keyword matching runs
	// on the untouched text.
	d := single.Parse("report 2/31 tomorrow", baseMonday, nil)
	want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	if d.DueDate == nil || !d.DueDate.Equal(want) {
		t.Fatalf("dueDate = %v, want %v", d.DueDate, want)
	}
	if d.Title != "report 2/31" {
		t.Errorf("title = %q, want %q", d.Title, "report 2/31")
	}
}

func TestParseTimes(t *testing.T) {
	single, _ := newParsers(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"Afternoon 12-hour", "call mom at 3pm", "15:00"},
		{"With minutes", "call mom at 3:45pm", "15:45"},
		{"Morning", "gym at 7am", "07:00"},
		{"Noon", "lunch at 12pm", "12:00"},
		{"Midnight", "batch job at 12am", "00:00"},
		{"24-hour", "standup at 14:30", "14:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := single.Parse(tt.text, baseMonday, nil)
			if d.DueTime != tt.want {
				t.Errorf("dueTime = %q, want %q", d.DueTime, tt.want)
			}
		})
	}
}

func TestParsePriorities(t *testing.T) {
	single, batch := newParsers(t)

	tests := []struct {
		name string
		text string
		want quickparse.Priority
	}{
		{"Named urgent", "fix prod !urgent", quickparse.PriorityUrgent},
		{"Named high", "fix prod !high", quickparse.PriorityHigh},
		{"Named medium", "fix prod !medium", quickparse.PriorityMedium},
		{"Named low", "fix prod !low", quickparse.PriorityLow},
		{"P1", "fix prod p1", quickparse.PriorityUrgent},
		{"P2", "fix prod p2", quickparse.PriorityHigh},
		{"P3", "fix prod p3", quickparse.PriorityMedium},
		{"P4", "fix prod p4", quickparse.PriorityLow},
		{"Triple bang", "fix prod !!!", quickparse.PriorityUrgent},
		{"Double bang", "fix prod !!", quickparse.PriorityHigh},
		{"Single bang", "fix prod !", quickparse.PriorityHigh},
		{"Default", "fix prod", quickparse.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := single.Parse(tt.text, baseMonday, nil)
			if d.Priority != tt.want {
				t.Errorf("priority = %q, want %q", d.Priority, tt.want)
			}
			if d.Title != "fix prod" {
				t.Errorf("title = %q, want %q", d.Title, "fix prod")
			}
		})
	}

	// Batch mode has no bang shorthands; a bare "!" stays in the title.
	d := batch.Parse("fix prod !!", baseMonday, nil)
	if d.Priority != quickparse.PriorityMedium {
		t.Errorf("batch priority = %q, want medium", d.Priority)
	}
	if d.Title != "fix prod !!" {
		t.Errorf("batch title = %q, want %q", d.Title, "fix prod !!")
	}

	// Named markers still work in batch mode.
	d = batch.Parse("fix prod !urgent", baseMonday, nil)
	if d.Priority != quickparse.PriorityUrgent {
		t.Errorf("batch named priority = %q, want urgent", d.Priority)
	}
}

func TestParseTags(t *testing.T) {
	single, _ := newParsers(t)

	d := single.Parse("clean garage #home stuff #home #chores", baseMonday, nil)

	want := []string{"home", "home", "chores"}
	if len(d.Tags) != len(want) {
		t.Fatalf("tags = %v, want %v", d.Tags, want)
	}
	for i := range want {
		if d.Tags[i] != want[i] {
			t.Fatalf("tags = %v, want %v", d.Tags, want)
		}
	}
	if d.Title != "clean garage stuff" {
		t.Errorf("title = %q, want %q", d.Title, "clean garage stuff")
	}
}

func TestParseProjects(t *testing.T) {
	single, _ := newParsers(t)

	t.Run("Case-insensitive substring match", func(t *testing.T) {
		d := single.Parse("send invoice @work", baseMonday, knownProjects)
		if d.ProjectName != "Work" || d.ProjectID != "p-work" {
			t.Errorf("project = %q/%q, want Work/p-work", d.ProjectName, d.ProjectID)
		}
	})

	t.Run("Token containing project name", func(t *testing.T) {
		d := single.Parse("fold laundry @homestead", baseMonday, knownProjects)
		if d.ProjectName != "Home" || d.ProjectID != "p-home" {
			t.Errorf("project = %q/%q, want Home/p-home", d.ProjectName, d.ProjectID)
		}
	})

	t.Run("First list match wins", func(t *testing.T) {
		projects := []quickparse.Project{
			{ID: "p-work", Name: "Work"},
			{ID: "p-homework", Name: "Homework"},
		}
		d := single.Parse("essay @work", baseMonday, projects)
		if d.ProjectID != "p-work" {
			t.Errorf("projectID = %q, want p-work", d.ProjectID)
		}
	})

	t.Run("Unresolved token kept as name with warning", func(t *testing.T) {
		d := single.Parse("send invoice @xyz", baseMonday, knownProjects)
		if d.ProjectName != "xyz" || d.ProjectID != "" {
			t.Errorf("project = %q/%q, want xyz/<empty>", d.ProjectName, d.ProjectID)
		}
		if d.Warning != `No project matching "xyz"` {
			t.Errorf("warning = %q", d.Warning)
		}
	})

	t.Run("Only first reference matched, all stripped", func(t *testing.T) {
		d := single.Parse("sync notes @work @home", baseMonday, knownProjects)
		if d.ProjectID != "p-work" {
			t.Errorf("projectID = %q, want p-work", d.ProjectID)
		}
		if d.Title != "sync notes" {
			t.Errorf("title = %q, want %q", d.Title, "sync notes")
		}
	})
}

func TestParseImportantMarker(t *testing.T) {
	single, batch := newParsers(t)

	d := single.Parse("water plants *", baseMonday, nil)
	if !d.IsImportant {
		t.Error("expected important flag set")
	}
	if d.Title != "water plants" {
		t.Errorf("title = %q, want %q", d.Title, "water plants")
	}

	// Batch mode ignores the marker entirely.
	d = batch.Parse("water plants *", baseMonday, nil)
	if d.IsImportant {
		t.Error("batch mode must not set important flag")
	}
	if d.Title != "water plants *" {
		t.Errorf("batch title = %q, want %q", d.Title, "water plants *")
	}
}

func TestParseWarnings(t *testing.T) {
	single, _ := newParsers(t)

	t.Run("Empty line", func(t *testing.T) {
		d := single.Parse("   ", baseMonday, nil)
		if d.Warning != quickparse.WarningEmptyLine {
			t.Errorf("warning = %q, want %q", d.Warning, quickparse.WarningEmptyLine)
		}
	})

	t.Run("Markers only", func(t *testing.T) {
		d := single.Parse("!urgent #misc tomorrow", baseMonday, nil)
		if d.Warning != quickparse.WarningNoTitle {
			t.Errorf("warning = %q, want %q", d.Warning, quickparse.WarningNoTitle)
		}
	})
}

func TestDraftSubmittable(t *testing.T) {
	tests := []struct {
		name  string
		draft quickparse.Draft
		want  bool
	}{
		{"Both present", quickparse.Draft{Title: "x", ProjectID: "p"}, true},
		{"Missing title", quickparse.Draft{ProjectID: "p"}, false},
		{"Missing project", quickparse.Draft{Title: "x"}, false},
		{"Unresolved project name only", quickparse.Draft{Title: "x", ProjectName: "y"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.draft.Submittable(); got != tt.want {
				t.Errorf("Submittable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseIsPure(t *testing.T) {
	single, _ := newParsers(t)

	line := "Finish report by Friday !urgent @work #deadline"
	a := single.Parse(line, baseMonday, knownProjects)
	b := single.Parse(line, baseMonday, knownProjects)

	if a.Title != b.Title || a.Priority != b.Priority || a.DueTime != b.DueTime ||
		a.ProjectID != b.ProjectID || len(a.Tags) != len(b.Tags) {
		t.Errorf("same input produced different drafts: %+v vs %+v", a, b)
	}
	if (a.DueDate == nil) != (b.DueDate == nil) || (a.DueDate != nil && !a.DueDate.Equal(*b.DueDate)) {
		t.Errorf("same input produced different due dates: %v vs %v", a.DueDate, b.DueDate)
	}
}
