// Package history keeps the per-user training_history.json file: a JSON array
// of logged sessions, newest first, always rewritten as a whole.
package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/eragrok/internal/dates"
	"github.com/2beens/eragrok/internal/telemetry/metrics"
	"github.com/2beens/eragrok/internal/telemetry/tracing"
	"github.com/2beens/eragrok/internal/userdir"
	"github.com/2beens/eragrok/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const FileName = "training_history.json"

var (
	ErrUnrecognizedFormat = errors.New("unrecognized history format")
	ErrCorruptHistory     = errors.New("history file is not a JSON array")
)

type Store struct {
	resolver       *userdir.Resolver
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewStore(resolver *userdir.Resolver, metricsManager *metrics.Manager) *Store {
	return &Store{
		resolver:       resolver,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// load reads the history array. A missing or blank file is an empty history;
// anything else that is not a JSON array is ErrCorruptHistory.
func load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []Entry{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptHistory, err)
	}
	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		var entry Entry
		if err := entry.UnmarshalJSON(item); err != nil {
			return nil, fmt.Errorf("%w: item %d: %s", ErrCorruptHistory, i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// loadOrEmpty is load for readers: a broken file shows up as an empty history.
func loadOrEmpty(path string) []Entry {
	entries, err := load(path)
	if err != nil {
		log.Warnf("history: %s: %s", path, err)
		return []Entry{}
	}
	return entries
}

func encode(entries []Entry, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

func save(path string, entries []Entry) error {
	var buf bytes.Buffer
	if err := encode(entries, &buf); err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	return pkg.WriteFileAtomic(path, buf.Bytes(), 0o644)
}

// update runs fn on the loaded history under the file lock and saves the result when fn reports changes.
// A history file that cannot be parsed is never rewritten.
func (s *Store) update(user string, fn func([]Entry) ([]Entry, int)) (int, error) {
	path, err := s.resolver.EnsureFile(user, FileName)
	if err != nil {
		return 0, err
	}
	unlock := s.resolver.Lock(path)
	defer unlock()

	entries, err := load(path)
	if err != nil {
		return 0, err
	}
	entries, changed := fn(entries)
	if changed == 0 {
		return 0, nil
	}
	if err := save(path, entries); err != nil {
		return 0, err
	}
	return changed, nil
}

func (s *Store) LoadAll(ctx context.Context, user string) (_ []Entry, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "historyStore.loadAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	path, err := s.resolver.File(user, FileName)
	if err != nil {
		return nil, err
	}
	unlock := s.resolver.Lock(path)
	defer unlock()

	entries := loadOrEmpty(path)
	span.SetAttributes(attribute.Int("entries", len(entries)))
	return entries, nil
}

// InsertFront normalizes plannedFor and prepends the entry.
func (s *Store) InsertFront(ctx context.Context, user string, entry Entry) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "historyStore.insertFront")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entry.PlannedFor = dates.Normalize(entry.PlannedFor)
	if _, err = s.update(user, func(entries []Entry) ([]Entry, int) {
		return append([]Entry{entry}, entries...), 1
	}); err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}

	s.metricsManager.CounterHistoryEntriesWritten.Inc()
	return nil
}

// DeleteAt removes the entry at index; false when the index is out of range.
func (s *Store) DeleteAt(ctx context.Context, user string, index int) (_ bool, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "historyStore.deleteAt")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	removed, err := s.update(user, func(entries []Entry) ([]Entry, int) {
		if index < 0 || index >= len(entries) {
			return entries, 0
		}
		return append(entries[:index], entries[index+1:]...), 1
	})
	if err != nil {
		return false, fmt.Errorf("delete history entry %d: %w", index, err)
	}
	return removed == 1, nil
}

// DeleteMatching removes the entries planned for plannedFor that contain lineText
// (any text when lineText is empty), or every entry containing lineText when
// plannedFor is empty. Returns how many were removed.
func (s *Store) DeleteMatching(ctx context.Context, user, plannedFor, lineText string) (_ int, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "historyStore.deleteMatching")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	plannedFor = dates.Normalize(plannedFor)
	lineText = strings.TrimSpace(lineText)
	if plannedFor == "" && lineText == "" {
		return 0, nil
	}

	removed, err := s.update(user, func(entries []Entry) ([]Entry, int) {
		return removeWhere(entries, func(e Entry) bool {
			return e.matches(plannedFor, lineText)
		})
	})
	if err != nil {
		return 0, fmt.Errorf("delete matching history entries: %w", err)
	}
	span.SetAttributes(attribute.Int("removed", removed))
	return removed, nil
}

// DeleteLinked is DeleteMatching for entries mirrored from the planner: an
// entry carrying a schedule id goes only if that id is in scheduleIDs.
func (s *Store) DeleteLinked(ctx context.Context, user string, scheduleIDs []string, plannedFor, lineText string) (_ int, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "historyStore.deleteLinked")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ids := make(map[string]bool, len(scheduleIDs))
	for _, id := range scheduleIDs {
		if id != "" {
			ids[id] = true
		}
	}
	plannedFor = dates.Normalize(plannedFor)
	lineText = strings.TrimSpace(lineText)
	if len(ids) == 0 && plannedFor == "" && lineText == "" {
		return 0, nil
	}

	removed, err := s.update(user, func(entries []Entry) ([]Entry, int) {
		return removeWhere(entries, func(e Entry) bool {
			if e.ScheduleID != "" {
				return ids[e.ScheduleID]
			}
			if plannedFor == "" && lineText == "" {
				return false
			}
			return e.matches(plannedFor, lineText)
		})
	})
	if err != nil {
		return 0, fmt.Errorf("delete linked history entries: %w", err)
	}
	span.SetAttributes(attribute.Int("removed", removed))
	return removed, nil
}

func removeWhere(entries []Entry, match func(Entry) bool) ([]Entry, int) {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !match(e) {
			kept = append(kept, e)
		}
	}
	return kept, len(entries) - len(kept)
}

// UpdatePlannedFor dates the still unplanned entries containing oldLineText.
func (s *Store) UpdatePlannedFor(ctx context.Context, user, oldLineText, newPlannedFor string) (_ int, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "historyStore.updatePlannedFor")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	oldLineText = strings.TrimSpace(oldLineText)
	if oldLineText == "" {
		return 0, nil
	}
	changed, err := s.setPlannedFor(user, newPlannedFor, func(e Entry) bool {
		return e.PlannedFor == "" && e.Contains(oldLineText)
	})
	span.SetAttributes(attribute.Int("updated", changed))
	return changed, err
}

// UpdateLinkedPlannedFor moves the entry mirrored from scheduleID to newPlannedFor.
// Entries without a schedule id follow the UpdatePlannedFor rules.
func (s *Store) UpdateLinkedPlannedFor(ctx context.Context, user, scheduleID, oldLineText, newPlannedFor string) (_ int, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "historyStore.updateLinkedPlannedFor")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	oldLineText = strings.TrimSpace(oldLineText)
	if scheduleID == "" && oldLineText == "" {
		return 0, nil
	}
	changed, err := s.setPlannedFor(user, newPlannedFor, func(e Entry) bool {
		if e.ScheduleID != "" {
			return scheduleID != "" && e.ScheduleID == scheduleID
		}
		return e.PlannedFor == "" && e.Contains(oldLineText)
	})
	span.SetAttributes(attribute.Int("updated", changed))
	return changed, err
}

func (s *Store) setPlannedFor(user, newPlannedFor string, match func(Entry) bool) (int, error) {
	newPlannedFor = dates.Normalize(newPlannedFor)
	if newPlannedFor == "" {
		return 0, nil
	}

	changed, err := s.update(user, func(entries []Entry) ([]Entry, int) {
		changed := 0
		for i := range entries {
			if match(entries[i]) {
				entries[i].PlannedFor = newPlannedFor
				changed++
			}
		}
		return entries, changed
	})
	if err != nil {
		return 0, fmt.Errorf("update history planned dates: %w", err)
	}
	return changed, nil
}

// Import accepts a single JSON object or an array of objects; non-object array
// items are skipped. Each record is inserted at the front in input order, so the
// last one ends up first.
func (s *Store) Import(ctx context.Context, user string, data []byte) (_ int, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "historyStore.import")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var raw []json.RawMessage
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) > 0 && trimmed[0] == '{':
		raw = []json.RawMessage{trimmed}
	case len(trimmed) > 0 && trimmed[0] == '[':
		if err = json.Unmarshal(trimmed, &raw); err != nil {
			return 0, fmt.Errorf("%w: %s", ErrUnrecognizedFormat, err)
		}
	default:
		return 0, ErrUnrecognizedFormat
	}

	timestamp := dates.FormatTimestamp(s.now())
	var imported []Entry
	for _, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			continue
		}
		var entry Entry
		if err = json.Unmarshal(item, &entry); err != nil {
			return 0, fmt.Errorf("%w: %s", ErrUnrecognizedFormat, err)
		}
		if entry.Date == "" {
			entry.Date = timestamp
		}
		entry.PlannedFor = dates.Normalize(entry.PlannedFor)
		imported = append(imported, entry)
	}
	if len(imported) == 0 {
		return 0, nil
	}

	count, err := s.update(user, func(entries []Entry) ([]Entry, int) {
		for _, entry := range imported {
			entries = append([]Entry{entry}, entries...)
		}
		return entries, len(imported)
	})
	if err != nil {
		return 0, fmt.Errorf("import history: %w", err)
	}

	s.metricsManager.CounterHistoryEntriesWritten.Add(float64(count))
	log.Debugf("history: imported %d entries for %s", count, user)
	return count, nil
}

// Export writes the whole history as an indented JSON array.
func (s *Store) Export(ctx context.Context, user string, w io.Writer) (err error) {
	entries, err := s.LoadAll(ctx, user)
	if err != nil {
		return err
	}
	return encode(entries, w)
}
