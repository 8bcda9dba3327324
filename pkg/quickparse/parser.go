package quickparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"taskflow/pkg/datemath"
)

// Parser turns a free-text quick-entry line into a structured Draft.
// It is pure: the same text, reference time and project list always
// produce the same draft.
type Parser struct {
	cfg Config
	dm  *datemath.Parser
}

// New creates a parser with the given marker configuration.
func New(cfg Config, dm *datemath.Parser) *Parser {
	return &Parser{cfg: cfg, dm: dm}
}

// Parse runs the marker pipeline over text. Matched spans are removed
// from the working text in pipeline order (date, time, priority, tags,
// project, important) and whatever remains becomes the title.
func (p *Parser) Parse(text string, now time.Time, projects []Project) Draft {
	draft := Draft{Priority: PriorityMedium, Tags: []string{}}

	working := strings.TrimSpace(text)
	if working == "" {
		draft.Warning = WarningEmptyLine
		return draft
	}

	working = p.matchDate(working, now, &draft)
	working = p.matchTime(working, &draft)
	working = p.matchPriority(working, &draft)
	working = p.extractTags(working, &draft)
	working = p.extractProject(working, projects, &draft)

	if p.cfg.ImportantMarker && importantRe.MatchString(working) {
		draft.IsImportant = true
		working = importantRe.ReplaceAllString(working, " ")
	}

	draft.Title = normalizeTitle(working)

	switch {
	case draft.Title == "":
		draft.Warning = WarningNoTitle
	case draft.ProjectName != "" && draft.ProjectID == "":
		draft.Warning = fmt.Sprintf("No project matching %q", draft.ProjectName)
	}

	return draft
}

// matchDate tries the literal numeric pattern first; literal dates take
// precedence over keyword phrases. An invalid calendar date is treated
// as no match and the keyword rules scan the untouched text.
func (p *Parser) matchDate(text string, now time.Time, d *Draft) string {
	if loc := literalDateRe.FindStringSubmatchIndex(text); loc != nil {
		m := submatches(text, loc)
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := 0
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		if t, ok := p.dm.Literal(now, month, day, year); ok {
			d.DueDate = &t
			return cut(text, loc[0], loc[1])
		}
	}

	// First match in rule-list order wins, not the leftmost in the string.
	for _, r := range dateRules {
		if loc := r.re.FindStringSubmatchIndex(text); loc != nil {
			t := r.apply(p.dm, submatches(text, loc), now)
			d.DueDate = &t
			return cut(text, loc[0], loc[1])
		}
	}
	return text
}

// matchTime tries the 12-hour pattern first, then 24-hour.
func (p *Parser) matchTime(text string, d *Draft) string {
	if loc := time12Re.FindStringSubmatchIndex(text); loc != nil {
		m := submatches(text, loc)
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour >= 1 && hour <= 12 && minute <= 59 {
			meridiem := strings.ToLower(m[3])
			if meridiem == "am" && hour == 12 {
				hour = 0
			} else if meridiem == "pm" && hour != 12 {
				hour += 12
			}
			d.DueTime = fmt.Sprintf("%02d:%02d", hour, minute)
			return cut(text, loc[0], loc[1])
		}
	}

	if loc := time24Re.FindStringSubmatchIndex(text); loc != nil {
		m := submatches(text, loc)
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour <= 23 && minute <= 59 {
			d.DueTime = fmt.Sprintf("%02d:%02d", hour, minute)
			return cut(text, loc[0], loc[1])
		}
	}
	return text
}

// matchPriority scans the config's ordered rule list; the first pattern
// that tests true wins and the scan stops.
func (p *Parser) matchPriority(text string, d *Draft) string {
	for _, r := range p.cfg.Priorities {
		if loc := r.Pattern.FindStringIndex(text); loc != nil {
			d.Priority = r.Value
			return cut(text, loc[0], loc[1])
		}
	}
	return text
}

// extractTags collects every #word occurrence in order, duplicates kept.
func (p *Parser) extractTags(text string, d *Draft) string {
	for _, m := range tagRe.FindAllStringSubmatch(text, -1) {
		d.Tags = append(d.Tags, m[1])
	}
	return tagRe.ReplaceAllString(text, " ")
}

// extractProject resolves the first @word reference; any further @words
// are stripped from the text but ignored for matching.
func (p *Parser) extractProject(text string, projects []Project, d *Draft) string {
	m := projectRe.FindStringSubmatch(text)
	if m == nil {
		return text
	}

	token := m[1]
	if proj, ok := ResolveProject(token, projects); ok {
		d.ProjectName = proj.Name
		d.ProjectID = proj.ID
	} else {
		d.ProjectName = token
	}
	return projectRe.ReplaceAllString(text, " ")
}

// ResolveProject matches a typed token against known projects with a
// case-insensitive substring check in both directions. The first match
// in list order wins; overlapping names ("Work" vs "Homework") are
// deliberately not ranked by specificity.
func ResolveProject(token string, projects []Project) (Project, bool) {
	t := strings.ToLower(token)
	for _, proj := range projects {
		n := strings.ToLower(proj.Name)
		if strings.Contains(n, t) || strings.Contains(t, n) {
			return proj, true
		}
	}
	return Project{}, false
}

// normalizeTitle collapses runs of whitespace and trims the result.
func normalizeTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cut removes text[start:end], leaving a space so neighbors stay separated.
func cut(text string, start, end int) string {
	return text[:start] + " " + text[end:]
}

// submatches expands a FindStringSubmatchIndex result into group strings.
func submatches(text string, loc []int) []string {
	out := make([]string, len(loc)/2)
	for i := range out {
		if loc[2*i] >= 0 {
			out[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return out
}
