package program

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/2beens/eragrok/internal/techniques"
	"github.com/2beens/eragrok/internal/telemetry/tracing"

	"github.com/xuri/excelize/v2"
)

const (
	LegendSheet       = "Légende"
	maxNotesRunes     = 300
	maxSheetNameRunes = 31
)

var (
	weekHeader  = []any{"Séance", "Catégorie", "Reps", "Charge", "Repos", "Objectif", "Notes"}
	legendLabel = map[int]string{
		1: "1 - Très facile",
		2: "2 - Facile",
		3: "3 - Modérée",
		4: "4 - Difficile",
		5: "5 - Très difficile",
	}
)

type XLSXExporter struct {
	catalog *techniques.Catalog
}

func NewXLSXExporter(catalog *techniques.Catalog) *XLSXExporter {
	return &XLSXExporter{catalog: catalog}
}

// Export writes the listing as a workbook: a legend sheet, then one sheet per
// week block. Day lines are filled with the colour of their technique difficulty.
// Notes are cut to 300 runes unless fullNotes is set.
func (e *XLSXExporter) Export(ctx context.Context, lines []string, fullNotes bool, w io.Writer) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "program.exportXLSX")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	f := excelize.NewFile()
	defer f.Close()

	if err = f.SetSheetName("Sheet1", LegendSheet); err != nil {
		return fmt.Errorf("rename default sheet: %w", err)
	}
	styles, err := newFillStyles(f)
	if err != nil {
		return err
	}
	if err = writeLegend(f, styles); err != nil {
		return err
	}

	used := map[string]bool{LegendSheet: true}
	for _, block := range SplitWeeks(lines) {
		sheet := uniqueSheetName(block.Title, used)
		if _, err = f.NewSheet(sheet); err != nil {
			return fmt.Errorf("new sheet %s: %w", sheet, err)
		}
		if err = e.writeWeek(f, sheet, block, styles, fullNotes); err != nil {
			return err
		}
	}

	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func (e *XLSXExporter) writeWeek(f *excelize.File, sheet string, block WeekBlock, styles map[int]int, fullNotes bool) error {
	if err := f.SetSheetRow(sheet, "A1", &weekHeader); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "A", "A", 70); err != nil {
		return fmt.Errorf("set %s column width: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "B", "F", 18); err != nil {
		return fmt.Errorf("set %s column width: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "G", "G", 60); err != nil {
		return fmt.Errorf("set %s column width: %w", sheet, err)
	}

	for i, line := range block.Lines {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}

		values := []any{strings.TrimRight(line, " ")}
		var technique techniques.Technique
		found := false
		if id, ok := ExtractID(line); ok {
			technique, found = e.catalog.FindByID(id)
		}
		if found {
			notes := technique.Notes
			if !fullNotes {
				notes = truncateNotes(notes)
			}
			values = append(values,
				string(technique.Category),
				technique.Repetitions,
				technique.Load,
				technique.Rest,
				technique.Goal,
				notes,
			)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, row, err)
		}

		if !found {
			continue
		}
		level, ok := techniques.InferDifficulty(technique)
		if !ok {
			continue
		}
		last, err := excelize.CoordinatesToCellName(len(weekHeader), row)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, last, styles[level]); err != nil {
			return fmt.Errorf("style %s row %d: %w", sheet, row, err)
		}
	}
	return nil
}

func newFillStyles(f *excelize.File) (map[int]int, error) {
	styles := make(map[int]int, len(techniques.DifficultyColors))
	for level, color := range techniques.DifficultyColors {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return nil, fmt.Errorf("new fill style for level %d: %w", level, err)
		}
		styles[level] = style
	}
	return styles, nil
}

func writeLegend(f *excelize.File, styles map[int]int) error {
	if err := f.SetCellValue(LegendSheet, "A1", "Difficulté"); err != nil {
		return fmt.Errorf("write legend title: %w", err)
	}
	if err := f.SetColWidth(LegendSheet, "A", "A", 30); err != nil {
		return fmt.Errorf("set legend column width: %w", err)
	}
	for level := 1; level <= 5; level++ {
		cell, err := excelize.CoordinatesToCellName(1, level+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(LegendSheet, cell, legendLabel[level]); err != nil {
			return fmt.Errorf("write legend level %d: %w", level, err)
		}
		if err := f.SetCellStyle(LegendSheet, cell, cell, styles[level]); err != nil {
			return fmt.Errorf("style legend level %d: %w", level, err)
		}
	}
	return nil
}

func truncateNotes(notes string) string {
	notes = strings.TrimSpace(notes)
	if utf8.RuneCountInString(notes) <= maxNotesRunes {
		return notes
	}
	runes := []rune(notes)
	return strings.TrimRight(string(runes[:maxNotesRunes-3]), " ") + "..."
}

// uniqueSheetName strips the characters excel refuses in sheet names and
// keeps names unique within the workbook.
func uniqueSheetName(title string, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, title)
	name = strings.Trim(name, "' ")
	if name == "" {
		name = "Semaine"
	}
	name = clipRunes(name, maxSheetNameRunes)

	candidate := name
	for i := 2; used[candidate]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		candidate = clipRunes(name, maxSheetNameRunes-len(suffix)) + suffix
	}
	used[candidate] = true
	return candidate
}

func clipRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
