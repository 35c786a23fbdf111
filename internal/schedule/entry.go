package schedule

import (
	"strings"
)

const (
	colDate = iota
	colGroups
	colProgram
	colType
	colNote
	colLine
	colID
	columns
)

var header = []string{"Date", "Groupes", "Programme", "Types", "Note", "Line", "ID"}

// Entry is one planner line. An empty Date means the entry is not scheduled yet.
type Entry struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	MuscleGroups []string `json:"muscleGroups"`
	Program      string   `json:"program"`
	Type         string   `json:"type"`
	Note         string   `json:"note"`
	Line         string   `json:"line"`
}

func (e Entry) Dated() bool {
	return e.Date != ""
}

func splitGroups(s string) []string {
	groups := []string{}
	for _, g := range strings.Split(s, ",") {
		if g = strings.TrimSpace(g); g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}

func joinGroups(groups []string) string {
	var kept []string
	for _, g := range groups {
		if g = strings.TrimSpace(g); g != "" {
			kept = append(kept, g)
		}
	}
	return strings.Join(kept, ", ")
}

// padRow extends short rows (older files have no ID column) to the full width.
func padRow(row []string) []string {
	for len(row) < columns {
		row = append(row, "")
	}
	return row
}

func (e Entry) record() []string {
	return []string{e.Date, joinGroups(e.MuscleGroups), e.Program, e.Type, e.Note, e.Line, e.ID}
}
