// Package program turns the technique catalog into dated training listings:
// one technique per week drawn from a non-repeating rotation, spread over the
// weekday muscle groups.
package program

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/2beens/eragrok/internal/dates"
	"github.com/2beens/eragrok/internal/rotation"
	"github.com/2beens/eragrok/internal/techniques"
	"github.com/2beens/eragrok/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrNoCategories = errors.New("no technique category selected")
	ErrEmptyPool    = errors.New("no technique found for the selected categories")
)

type Mode string

const (
	ModeMonth    Mode = "month"
	ModeRotation Mode = "rotation"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeMonth, "":
		return ModeMonth, nil
	case ModeRotation:
		return ModeRotation, nil
	}
	return "", fmt.Errorf("unknown program mode: %s", s)
}

type WeekendMode string

const (
	WeekendOff   WeekendMode = "Off"
	WeekendTrain WeekendMode = "Train"
)

func ParseWeekendMode(s string) (WeekendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off":
		return WeekendOff, nil
	case "train":
		return WeekendTrain, nil
	}
	return "", fmt.Errorf("unknown weekend mode: %s", s)
}

const (
	weekendLabel     = "Week-end"
	missingTechnique = "(technique manquante)"
)

var weekdayGroups = map[time.Weekday]string{
	time.Monday:    "Pectoraux",
	time.Tuesday:   "Cuisses",
	time.Wednesday: "Épaules",
	time.Thursday:  "Dos",
	time.Friday:    "Bras",
}

type Generator struct {
	catalog *techniques.Catalog
	newRand func() *rand.Rand
}

func NewGenerator(catalog *techniques.Catalog) *Generator {
	return &Generator{
		catalog: catalog,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// NewSeededGenerator gives reproducible listings: every generation restarts from seed.
func NewSeededGenerator(catalog *techniques.Catalog, seed int64) *Generator {
	return &Generator{
		catalog: catalog,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(seed))
		},
	}
}

func (g *Generator) Generate(ctx context.Context, mode Mode, anchor time.Time, categories []techniques.Category, weekendMode WeekendMode) ([]string, error) {
	switch mode {
	case ModeRotation:
		return g.GenerateFullRotation(ctx, anchor, categories, weekendMode)
	default:
		return g.GenerateMonth(ctx, anchor, categories, weekendMode)
	}
}

func (g *Generator) pool(categories []techniques.Category) ([]string, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	var ids []string
	for _, t := range g.catalog.FilterByCategories(categories...) {
		ids = append(ids, t.ID)
	}
	if len(ids) == 0 {
		return nil, ErrEmptyPool
	}
	return ids, nil
}

// GenerateMonth emits one block per Monday-first week of the anchor's month.
// Each week gets one technique; days of the neighbouring months are skipped.
func (g *Generator) GenerateMonth(ctx context.Context, anchor time.Time, categories []techniques.Category, weekendMode WeekendMode) (lines []string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "program.generateMonth")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ids, err := g.pool(categories)
	if err != nil {
		return nil, err
	}

	rot := rotation.New(ids, g.newRand())
	for weekIdx, week := range dates.MonthWeeks(anchor) {
		id, _ := rot.Next()
		technique, found := g.catalog.FindByID(id)

		lines = append(lines, fmt.Sprintf("--- Semaine %d ---", weekIdx+1))
		for _, day := range week {
			if day.Month() != anchor.Month() {
				continue
			}
			lines = append(lines, dayLine(day, technique, found, weekendMode))
		}
	}

	span.SetAttributes(attribute.Int("lines", len(lines)))
	return lines, nil
}

// GenerateFullRotation emits one week per technique in the pool, starting on
// the Monday of the anchor's week.
func (g *Generator) GenerateFullRotation(ctx context.Context, anchor time.Time, categories []techniques.Category, weekendMode WeekendMode) (lines []string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "program.generateFullRotation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ids, err := g.pool(categories)
	if err != nil {
		return nil, err
	}

	monday := dates.MondayOf(anchor)
	for offset, id := range rotation.BuildRotation(ids, g.newRand()) {
		weekStart := monday.AddDate(0, 0, 7*offset)
		_, isoWeek := weekStart.ISOWeek()
		technique, found := g.catalog.FindByID(id)

		lines = append(lines, fmt.Sprintf("--- Semaine %d (+%d) ---", isoWeek, offset))
		for i := 0; i < 7; i++ {
			lines = append(lines, dayLine(weekStart.AddDate(0, 0, i), technique, found, weekendMode))
		}
	}

	span.SetAttributes(attribute.Int("lines", len(lines)))
	return lines, nil
}

func dayLine(day time.Time, technique techniques.Technique, found bool, weekendMode WeekendMode) string {
	group, weekday := weekdayGroups[day.Weekday()]
	if !weekday {
		if weekendMode != WeekendTrain {
			return fmt.Sprintf("%s - %s : Off", dates.Format(day), weekendLabel)
		}
		group = weekendLabel
	}
	if !found {
		return fmt.Sprintf("%s - %s : %s", dates.Format(day), group, missingTechnique)
	}
	return fmt.Sprintf("%s - %s : %s", dates.Format(day), group, technique.Summary())
}
