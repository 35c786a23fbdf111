// Package schedule keeps the per-user planner file entrainement.csv and mirrors
// every planned line into the training history.
package schedule

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/eragrok/internal/dates"
	"github.com/2beens/eragrok/internal/history"
	"github.com/2beens/eragrok/internal/program"
	"github.com/2beens/eragrok/internal/telemetry/metrics"
	"github.com/2beens/eragrok/internal/telemetry/tracing"
	"github.com/2beens/eragrok/internal/userdir"
	"github.com/2beens/eragrok/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const FileName = "entrainement.csv"

const defaultSessionType = "séance"

// historyLinker receives the mirrored history entries and the cascades.
type historyLinker interface {
	InsertFront(ctx context.Context, user string, entry history.Entry) error
	DeleteLinked(ctx context.Context, user string, scheduleIDs []string, plannedFor, lineText string) (int, error)
	UpdateLinkedPlannedFor(ctx context.Context, user, scheduleID, oldLineText, newPlannedFor string) (int, error)
}

type Store struct {
	resolver       *userdir.Resolver
	history        historyLinker
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewStore(resolver *userdir.Resolver, historyLinker historyLinker, metricsManager *metrics.Manager) *Store {
	return &Store{
		resolver:       resolver,
		history:        historyLinker,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// readRows returns the data rows of path padded to the full width. On a
// partial read the rows before the failure come with the error.
func readRows(path string) ([][]string, error) {
	rows, err := pkg.ReadCSVRows(path)
	for i := range rows {
		rows[i] = padRow(rows[i])
	}
	return rows, err
}

func entryFromRow(row []string) Entry {
	return Entry{
		ID:           row[colID],
		Date:         dates.Normalize(row[colDate]),
		MuscleGroups: splitGroups(row[colGroups]),
		Program:      row[colProgram],
		Type:         row[colType],
		Note:         row[colNote],
		Line:         row[colLine],
	}
}

func (s *Store) ReadAll(ctx context.Context, user string) (_ []Entry, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "scheduleStore.readAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	path, err := s.resolver.File(user, FileName)
	if err != nil {
		return nil, err
	}
	unlock := s.resolver.Lock(path)
	defer unlock()

	rows, readErr := readRows(path)
	if readErr != nil {
		log.Warnf("schedule: read %s: %s", path, readErr)
	}
	entries := []Entry{}
	for _, row := range rows {
		entries = append(entries, entryFromRow(row))
	}
	span.SetAttributes(attribute.Int("entries", len(entries)))
	return entries, nil
}

// Append normalizes the date (an unparseable date leaves the entry undated),
// assigns an id and appends one row. The history mirror is best effort.
func (s *Store) Append(ctx context.Context, user string, entry Entry) (_ Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "scheduleStore.append")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entry.Date = dates.Normalize(entry.Date)
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.MuscleGroups == nil {
		entry.MuscleGroups = []string{}
	}

	if err = s.appendRow(user, entry.record()); err != nil {
		return Entry{}, fmt.Errorf("append schedule entry: %w", err)
	}
	s.metricsManager.CounterScheduleEntriesAdded.Inc()
	span.SetAttributes(attribute.String("id", entry.ID))

	if mirrorErr := s.history.InsertFront(ctx, user, s.mirror(entry)); mirrorErr != nil {
		s.cascadeFailed("mirror", user, mirrorErr)
	}
	return entry, nil
}

func (s *Store) appendRow(user string, row []string) error {
	path, err := s.resolver.EnsureFile(user, FileName)
	if err != nil {
		return err
	}
	unlock := s.resolver.Lock(path)
	defer unlock()

	return pkg.AppendCSVRow(path, header, row)
}

func (s *Store) mirror(entry Entry) history.Entry {
	mirrored := history.Entry{
		Date:       entry.Date,
		Type:       entry.Program,
		Notes:      entry.Note,
		Exercises:  []history.Exercise{history.TextExercise(entry.Line)},
		PlannedFor: entry.Date,
		ScheduleID: entry.ID,
	}
	if mirrored.Date == "" {
		mirrored.Date = dates.FormatTimestamp(s.now())
	}
	if mirrored.Type == "" {
		mirrored.Type = defaultSessionType
	}
	if mirrored.Notes == "" {
		if entry.Date != "" {
			mirrored.Notes = "Ajoutée depuis le planning pour le " + entry.Date
		} else {
			mirrored.Notes = "Ajoutée depuis le planning"
		}
	}
	return mirrored
}

func (s *Store) cascadeFailed(operation, user string, err error) {
	log.WithError(err).
		WithField("user", user).
		WithField("operation", operation).
		Error("schedule: history cascade failed")
	s.metricsManager.CounterCascadeFailures.WithLabelValues(operation).Inc()
}

// rewrite runs fn over the rows under the file lock and replaces the file when fn reports a change.
// A file that cannot be read completely is left alone.
func (s *Store) rewrite(user string, fn func([][]string) ([][]string, bool)) error {
	path, err := s.resolver.File(user, FileName)
	if err != nil {
		return err
	}
	unlock := s.resolver.Lock(path)
	defer unlock()

	rows, err := readRows(path)
	if err != nil {
		return err
	}
	rows, changed := fn(rows)
	if !changed {
		return nil
	}
	return pkg.WriteCSVFileAtomic(path, header, rows)
}

// DeleteMatching removes every row planned on date (undated rows when date is
// empty) whose line is exactly lineText, and returns how many went away.
// Linked history entries follow, best effort.
func (s *Store) DeleteMatching(ctx context.Context, user, date, lineText string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "scheduleStore.deleteMatching")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	normalized := dates.Normalize(date)
	if strings.TrimSpace(date) != "" && normalized == "" {
		return 0, fmt.Errorf("%w: %s", dates.ErrInvalidDate, date)
	}

	var removedIDs []string
	removed := 0
	err = s.rewrite(user, func(rows [][]string) ([][]string, bool) {
		kept := make([][]string, 0, len(rows))
		for _, row := range rows {
			if dates.Normalize(row[colDate]) == normalized && row[colLine] == lineText {
				removed++
				if row[colID] != "" {
					removedIDs = append(removedIDs, row[colID])
				}
				continue
			}
			kept = append(kept, row)
		}
		return kept, removed > 0
	})
	if err != nil {
		return 0, fmt.Errorf("delete schedule entries: %w", err)
	}
	s.metricsManager.CounterScheduleEntriesRemoved.Add(float64(removed))
	span.SetAttributes(attribute.Int("removed", removed))

	if _, cascadeErr := s.history.DeleteLinked(ctx, user, removedIDs, normalized, lineText); cascadeErr != nil {
		s.cascadeFailed("delete", user, cascadeErr)
	}
	return removed, nil
}

// ReassignDate dates the first undated row whose line is lineText.
// It reports false when there is no such row.
func (s *Store) ReassignDate(ctx context.Context, user, lineText, newDate string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "scheduleStore.reassignDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	normalized := dates.Normalize(newDate)
	if normalized == "" {
		return false, fmt.Errorf("%w: %q", dates.ErrInvalidDate, newDate)
	}
	var (
		updated bool
		id      string
	)
	err = s.rewrite(user, func(rows [][]string) ([][]string, bool) {
		for _, row := range rows {
			if dates.Normalize(row[colDate]) != "" || row[colLine] != lineText {
				continue
			}
			row[colDate] = normalized
			id = row[colID]
			updated = true
			break
		}
		return rows, updated
	})
	if err != nil {
		return false, fmt.Errorf("reassign schedule date: %w", err)
	}
	if !updated {
		return false, nil
	}

	if _, cascadeErr := s.history.UpdateLinkedPlannedFor(ctx, user, id, lineText, normalized); cascadeErr != nil {
		s.cascadeFailed("reassign", user, cascadeErr)
	}
	return true, nil
}

// Range returns the entries dated within [from, to], oldest first, followed by
// the undated ones when includeUndated is set. Zero bounds are open.
func (s *Store) Range(ctx context.Context, user string, from, to time.Time, includeUndated bool) ([]Entry, error) {
	entries, err := s.ReadAll(ctx, user)
	if err != nil {
		return nil, err
	}

	type datedEntry struct {
		day   time.Time
		entry Entry
	}
	var (
		dated   []datedEntry
		undated []Entry
	)
	for _, e := range entries {
		if !e.Dated() {
			if includeUndated {
				undated = append(undated, e)
			}
			continue
		}
		day, ok := dates.Parse(e.Date)
		if !ok || !dates.InRange(day, from, to) {
			continue
		}
		dated = append(dated, datedEntry{day: day, entry: e})
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].day.Before(dated[j].day)
	})

	result := make([]Entry, 0, len(dated)+len(undated))
	for _, d := range dated {
		result = append(result, d.entry)
	}
	return append(result, undated...), nil
}

// AppendProgram saves the planner lines of a generated listing on date and
// returns how many entries were written.
func (s *Store) AppendProgram(ctx context.Context, user, date string, lines, groups []string, programName, note string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "scheduleStore.appendProgram")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	normalized := dates.Normalize(date)
	if normalized == "" {
		return 0, fmt.Errorf("%w: %q", dates.ErrInvalidDate, date)
	}

	written := 0
	for _, line := range program.ScheduleLines(lines) {
		if _, err = s.Append(ctx, user, Entry{
			Date:         normalized,
			MuscleGroups: groups,
			Program:      programName,
			Note:         note,
			Line:         line,
		}); err != nil {
			return written, err
		}
		written++
	}
	span.SetAttributes(attribute.Int("written", written))
	return written, nil
}
