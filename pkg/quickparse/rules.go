package quickparse

import (
	"regexp"
	"strconv"
	"time"

	"taskflow/pkg/datemath"
)

// Config parameterizes the parser for its two call sites. The single-add
// and batch entry points share the pipeline and differ only here.
type Config struct {
	// ImportantMarker enables the single-add-only "*" marker.
	ImportantMarker bool
	// Priorities is an ordered rule list; the first matching pattern wins.
	Priorities []PriorityRule
}

// PriorityRule pairs a marker pattern with the priority it assigns.
type PriorityRule struct {
	Pattern *regexp.Regexp
	Value   Priority
}

var namedPriorityRules = []PriorityRule{
	{regexp.MustCompile(`(?i)!urgent\b`), PriorityUrgent},
	{regexp.MustCompile(`(?i)!high\b`), PriorityHigh},
	{regexp.MustCompile(`(?i)!medium\b`), PriorityMedium},
	{regexp.MustCompile(`(?i)!low\b`), PriorityLow},
	{regexp.MustCompile(`(?i)\bp1\b`), PriorityUrgent},
	{regexp.MustCompile(`(?i)\bp2\b`), PriorityHigh},
	{regexp.MustCompile(`(?i)\bp3\b`), PriorityMedium},
	{regexp.MustCompile(`(?i)\bp4\b`), PriorityLow},
}

// bangPriorityRules are the single-add bang shorthands. They must come
// after the named rules: a leading bare-"!" rule would swallow the first
// character of "!urgent" and leave "urgent" in the title.
var bangPriorityRules = []PriorityRule{
	{regexp.MustCompile(`!!!`), PriorityUrgent},
	{regexp.MustCompile(`!!`), PriorityHigh},
	{regexp.MustCompile(`!`), PriorityHigh},
}

// SingleAdd is the parser configuration for the quick-add box.
func SingleAdd() Config {
	return Config{
		ImportantMarker: true,
		Priorities:      append(append([]PriorityRule{}, namedPriorityRules...), bangPriorityRules...),
	}
}

// Batch is the parser configuration for multi-line batch entry.
func Batch() Config {
	return Config{
		ImportantMarker: false,
		Priorities:      namedPriorityRules,
	}
}

// literalDateRe matches numeric dates like "12/25", "3-1-26", "by 12/25/2026".
var literalDateRe = regexp.MustCompile(`(?i)\b(?:(?:by|on|due)\s+)?(\d{1,2})[/-](\d{1,2})(?:[/-](\d{2,4}))?\b`)

var (
	time12Re = regexp.MustCompile(`(?i)\bat (\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	time24Re = regexp.MustCompile(`(?i)\bat (\d{1,2}):(\d{2})\b`)

	tagRe       = regexp.MustCompile(`#(\w+)`)
	projectRe   = regexp.MustCompile(`@(\w+)`)
	importantRe = regexp.MustCompile(`\*`)
)

// dateRule maps one keyword pattern to its date computation.
type dateRule struct {
	re    *regexp.Regexp
	apply func(dm *datemath.Parser, match []string, now time.Time) time.Time
}

// weekdayNames fixes rule order; iterating the weekday map would not.
var weekdayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// datePhrase wraps a keyword phrase with the optional by/on/due lead-in
// so connective words are consumed along with the phrase.
func datePhrase(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:(?:by|on|due)\s+)?` + phrase + `\b`)
}

// dateRules is evaluated in order with first-match-wins semantics.
// Order is load-bearing: "next week" precedes the weekday rules so it is
// not shadowed by a bare-"week" fragment, and every "next <weekday>"
// precedes its bare "<weekday>" counterpart.
var dateRules = buildDateRules()

func buildDateRules() []dateRule {
	rules := []dateRule{
		{
			re: datePhrase(`next week`),
			apply: func(dm *datemath.Parser, _ []string, now time.Time) time.Time {
				return dm.InDays(now, 7)
			},
		},
	}

	for _, name := range weekdayNames {
		wd, _ := datemath.Weekday(name)
		rules = append(rules, dateRule{
			re: datePhrase(`next ` + name),
			apply: func(dm *datemath.Parser, _ []string, now time.Time) time.Time {
				return dm.NextWeekday(now, wd)
			},
		})
	}

	rules = append(rules,
		dateRule{
			re: datePhrase(`today`),
			apply: func(dm *datemath.Parser, _ []string, now time.Time) time.Time {
				return dm.StartOfDay(now)
			},
		},
		dateRule{
			re: datePhrase(`tomorrow`),
			apply: func(dm *datemath.Parser, _ []string, now time.Time) time.Time {
				return dm.InDays(now, 1)
			},
		},
	)

	// Bare weekday means the next occurrence.
	for _, name := range weekdayNames {
		wd, _ := datemath.Weekday(name)
		rules = append(rules, dateRule{
			re: datePhrase(name),
			apply: func(dm *datemath.Parser, _ []string, now time.Time) time.Time {
				return dm.NextWeekday(now, wd)
			},
		})
	}

	rules = append(rules,
		dateRule{
			re: datePhrase(`in (\d+) days?`),
			apply: func(dm *datemath.Parser, match []string, now time.Time) time.Time {
				n, _ := strconv.Atoi(match[1])
				return dm.InDays(now, n)
			},
		},
		dateRule{
			re: datePhrase(`in (\d+) weeks?`),
			apply: func(dm *datemath.Parser, match []string, now time.Time) time.Time {
				n, _ := strconv.Atoi(match[1])
				return dm.InDays(now, n*7)
			},
		},
	)

	return rules
}
