package techniques

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var exportHeader = []string{
	"id", "nom", "categorie", "reps", "charge", "repos", "objectif",
	"difficulte", "difficulty_level", "programme_recommande", "notes",
}

func optionalInt(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

// ExportCSV writes the catalog, in All order, with the legacy french column names.
func (c *Catalog) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, t := range c.techniques {
		row := []string{
			t.ID,
			t.Name,
			string(t.Category),
			t.Repetitions,
			t.Load,
			t.Rest,
			t.Goal,
			optionalInt(t.LegacyDifficulty),
			optionalInt(t.DifficultyLevel),
			t.RecommendedProgram,
			t.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write technique %s: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
