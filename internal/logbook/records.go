package logbook

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	NutritionFileName = "nutrition.csv"
	CycleFileName     = "cycle.csv"
)

var ErrInvalidPhase = errors.New("phase must be blast or cruise")

var (
	nutritionHeader = []string{"Date", "Poids (kg)", "Age", "Calories", "Protéines (g)", "Glucides (g)", "Lipides (g)", "Note"}
	cycleHeader     = []string{"Date", "Dose testo (mg/sem)", "hCG (UI/sem)", "Phase (blast/cruise)", "Note"}
)

type Phase string

const (
	PhaseBlast  Phase = "blast"
	PhaseCruise Phase = "cruise"
)

func ParsePhase(s string) (Phase, error) {
	switch p := Phase(strings.ToLower(strings.TrimSpace(s))); p {
	case PhaseBlast, PhaseCruise:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPhase, s)
	}
}

type NutritionRecord struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weightKg"`
	Age      int     `json:"age"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"proteinG"`
	CarbsG   float64 `json:"carbsG"`
	FatG     float64 `json:"fatG"`
	Note     string  `json:"note"`
}

type CycleRecord struct {
	Date         string  `json:"date"`
	TestoMgPerWk float64 `json:"testoMgPerWeek"`
	HCGUIPerWk   float64 `json:"hcgUiPerWeek"`
	Phase        Phase   `json:"phase"`
	Note         string  `json:"note"`
}

// format is a csv row codec for one log file.
type format[T any] struct {
	fileName string
	header   []string
	toRow    func(T) []string
	fromRow  func([]string) T
	date     func(T) string
	setDate  func(*T, string)
}

var nutritionFormat = format[NutritionRecord]{
	fileName: NutritionFileName,
	header:   nutritionHeader,
	toRow: func(r NutritionRecord) []string {
		return []string{
			r.Date,
			formatNumber(r.WeightKg),
			formatNumber(float64(r.Age)),
			formatNumber(r.Calories),
			formatNumber(r.ProteinG),
			formatNumber(r.CarbsG),
			formatNumber(r.FatG),
			r.Note,
		}
	},
	fromRow: func(row []string) NutritionRecord {
		row = pad(row, len(nutritionHeader))
		return NutritionRecord{
			Date:     row[0],
			WeightKg: parseNumber(row[1]),
			Age:      int(parseNumber(row[2])),
			Calories: parseNumber(row[3]),
			ProteinG: parseNumber(row[4]),
			CarbsG:   parseNumber(row[5]),
			FatG:     parseNumber(row[6]),
			Note:     row[7],
		}
	},
	date:    func(r NutritionRecord) string { return r.Date },
	setDate: func(r *NutritionRecord, d string) { r.Date = d },
}

var cycleFormat = format[CycleRecord]{
	fileName: CycleFileName,
	header:   cycleHeader,
	toRow: func(r CycleRecord) []string {
		return []string{r.Date, formatNumber(r.TestoMgPerWk), formatNumber(r.HCGUIPerWk), string(r.Phase), r.Note}
	},
	fromRow: func(row []string) CycleRecord {
		row = pad(row, len(cycleHeader))
		return CycleRecord{
			Date:         row[0],
			TestoMgPerWk: parseNumber(row[1]),
			HCGUIPerWk:   parseNumber(row[2]),
			Phase:        Phase(strings.ToLower(strings.TrimSpace(row[3]))),
			Note:         row[4],
		}
	},
	date:    func(r CycleRecord) string { return r.Date },
	setDate: func(r *CycleRecord, d string) { r.Date = d },
}

func pad(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}

func formatNumber(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parseNumber accepts a decimal comma; blanks and garbage read as 0.
func parseNumber(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
