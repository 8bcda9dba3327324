package datemath_test

import (
	"testing"
	"time"

	"taskflow/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Berlin")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "Next week",
			relative: "next week",
			want:     startOfBase.AddDate(0, 0, 7),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "Next friday",
			relative: "next friday",
			want:     startOfBase.AddDate(0, 0, 2), // Wed → Fri
		},
		{
			name:     "Bare weekday",
			relative: "monday",
			want:     startOfBase.AddDate(0, 0, 5),
		},
		{
			name:     "Same weekday rolls a full week",
			relative: "wednesday",
			want:     startOfBase.AddDate(0, 0, 7),
		},
		{
			name:     "Unknown phrase",
			relative: "whenever",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.relative)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.relative, got, tt.want)
			}
		})
	}
}

func TestLiteral(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name             string
		month, day, year int
		want             time.Time
		wantOK           bool
	}{
		{
			name: "Year defaults to base year",
			month: 12, day: 25,
			want:   time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name: "Two-digit year windows to 2000s",
			month: 3, day: 1, year: 26,
			want:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name: "Four-digit year kept",
			month: 7, day: 4, year: 2027,
			want:   time.Date(2027, 7, 4, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name: "Invalid day for month",
			month: 2, day: 31,
			wantOK: false,
		},
		{
			name: "Month out of range",
			month: 13, day: 1,
			wantOK: false,
		},
		{
			name: "Day out of range",
			month: 1, day: 32,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Literal(baseTime, tt.month, tt.day, tt.year)
			if ok != tt.wantOK {
				t.Fatalf("Literal ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Literal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartAndEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	at := time.Date(2024, 5, 1, 15, 30, 45, 0, time.UTC)

	start := parser.StartOfDay(at)
	if want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", start, want)
	}

	end := parser.EndOfDay(start)
	if want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC); !end.Equal(want) {
		t.Errorf("EndOfDay = %v, want %v", end, want)
	}
}
