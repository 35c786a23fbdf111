package program

import (
	"regexp"
	"strings"
)

var reTrailingID = regexp.MustCompile(`\(([A-Za-z0-9_\-]+)\)\s*$`)

// ExtractID returns the technique id in the trailing "(id)" token of a line.
func ExtractID(line string) (string, bool) {
	m := reTrailingID.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

type WeekBlock struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

func isHeader(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "---")
}

// SplitWeeks groups a listing into blocks separated by "---" header lines.
// Untitled blocks are named "Semaine"; an untitled block without lines is dropped.
func SplitWeeks(lines []string) []WeekBlock {
	var (
		blocks  []WeekBlock
		current = WeekBlock{Lines: []string{}}
	)
	flush := func() {
		if current.Title == "" && len(current.Lines) == 0 {
			return
		}
		if current.Title == "" {
			current.Title = "Semaine"
		}
		blocks = append(blocks, current)
	}

	for _, line := range lines {
		if isHeader(line) {
			flush()
			current = WeekBlock{
				Title: strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "- ")),
				Lines: []string{},
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	flush()
	return blocks
}

// ScheduleLines keeps the lines a saved program writes to the planner:
// week headers, standard series markers and session titles are dropped.
func ScheduleLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "---"):
		case strings.HasPrefix(strings.ToLower(trimmed), "standard -"):
		case strings.HasPrefix(trimmed, "Séance"):
		default:
			out = append(out, trimmed)
		}
	}
	return out
}
