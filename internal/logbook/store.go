// Package logbook stores the per-user nutrition and hormonal cycle logs as
// append-only csv files.
package logbook

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/eragrok/internal/dates"
	"github.com/2beens/eragrok/internal/telemetry/tracing"
	"github.com/2beens/eragrok/internal/userdir"
	"github.com/2beens/eragrok/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Store struct {
	resolver *userdir.Resolver
	now      func() time.Time
}

func NewStore(resolver *userdir.Resolver) *Store {
	return &Store{
		resolver: resolver,
		now:      time.Now,
	}
}

func (s *Store) AddNutrition(ctx context.Context, user string, record NutritionRecord) (NutritionRecord, error) {
	return addRecord(ctx, s, user, nutritionFormat, record)
}

func (s *Store) ListNutrition(ctx context.Context, user string, from, to time.Time) ([]NutritionRecord, error) {
	return listRecords(ctx, s, user, nutritionFormat, from, to)
}

func (s *Store) DeleteNutritionAt(ctx context.Context, user string, index int) (bool, error) {
	return deleteRecordAt(ctx, s, user, nutritionFormat, index)
}

// LastWeight returns the most recent non zero weight of the nutrition log.
func (s *Store) LastWeight(ctx context.Context, user string) (float64, bool, error) {
	records, err := s.ListNutrition(ctx, user, time.Time{}, time.Time{})
	if err != nil {
		return 0, false, err
	}
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].WeightKg > 0 {
			return records[i].WeightKg, true, nil
		}
	}
	return 0, false, nil
}

func (s *Store) AddCycle(ctx context.Context, user string, record CycleRecord) (CycleRecord, error) {
	phase, err := ParsePhase(string(record.Phase))
	if err != nil {
		return CycleRecord{}, err
	}
	record.Phase = phase
	return addRecord(ctx, s, user, cycleFormat, record)
}

func (s *Store) ListCycle(ctx context.Context, user string, from, to time.Time) ([]CycleRecord, error) {
	return listRecords(ctx, s, user, cycleFormat, from, to)
}

func (s *Store) DeleteCycleAt(ctx context.Context, user string, index int) (bool, error) {
	return deleteRecordAt(ctx, s, user, cycleFormat, index)
}

// addRecord dates the record (today when empty) and appends it, writing the
// header when the file is new.
func addRecord[T any](ctx context.Context, s *Store, user string, f format[T], record T) (_ T, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "logbookStore.add")
	span.SetAttributes(attribute.String("file", f.fileName))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	raw := f.date(record)
	date := dates.Normalize(raw)
	switch {
	case strings.TrimSpace(raw) == "":
		date = dates.Format(s.now())
	case date == "":
		var zero T
		return zero, fmt.Errorf("%w: %q", dates.ErrInvalidDate, raw)
	}
	f.setDate(&record, date)

	path, err := s.resolver.EnsureFile(user, f.fileName)
	if err != nil {
		var zero T
		return zero, err
	}
	unlock := s.resolver.Lock(path)
	defer unlock()

	if err = pkg.AppendCSVRow(path, f.header, f.toRow(record)); err != nil {
		var zero T
		return zero, fmt.Errorf("append %s: %w", f.fileName, err)
	}
	return record, nil
}

// listRecords returns the records dated within [from, to] in file order.
// Undated or unparseable rows only show up when both bounds are open.
func listRecords[T any](ctx context.Context, s *Store, user string, f format[T], from, to time.Time) (_ []T, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "logbookStore.list")
	span.SetAttributes(attribute.String("file", f.fileName))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	path, err := s.resolver.File(user, f.fileName)
	if err != nil {
		return nil, err
	}
	unlock := s.resolver.Lock(path)
	rows, readErr := pkg.ReadCSVRows(path)
	unlock()
	if readErr != nil {
		log.Warnf("logbook: read %s: %s", path, readErr)
	}

	bounded := !from.IsZero() || !to.IsZero()
	records := make([]T, 0, len(rows))
	for _, row := range rows {
		record := f.fromRow(row)
		day, ok := dates.Parse(f.date(record))
		if ok {
			f.setDate(&record, dates.Format(day))
		}
		if bounded && (!ok || !dates.InRange(day, from, to)) {
			continue
		}
		records = append(records, record)
	}
	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}

func deleteRecordAt[T any](ctx context.Context, s *Store, user string, f format[T], index int) (_ bool, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "logbookStore.deleteAt")
	span.SetAttributes(attribute.String("file", f.fileName))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	path, err := s.resolver.File(user, f.fileName)
	if err != nil {
		return false, err
	}
	unlock := s.resolver.Lock(path)
	defer unlock()

	rows, err := pkg.ReadCSVRows(path)
	if err != nil {
		return false, err
	}
	if index < 0 || index >= len(rows) {
		return false, nil
	}
	rows = append(rows[:index], rows[index+1:]...)

	if err = pkg.WriteCSVFileAtomic(path, f.header, rows); err != nil {
		return false, fmt.Errorf("rewrite %s: %w", f.fileName, err)
	}
	return true, nil
}
