package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Exercise is either a plain line of text or a structured {name, sets, reps} record.
type Exercise struct {
	Text string
	Name string
	Sets any
	Reps any
}

func TextExercise(text string) Exercise {
	return Exercise{Text: text}
}

func (e Exercise) Structured() bool {
	return e.Name != "" || e.Sets != nil || e.Reps != nil
}

type structuredExercise struct {
	Name string `json:"name"`
	Sets any    `json:"sets,omitempty"`
	Reps any    `json:"reps,omitempty"`
}

func (e Exercise) MarshalJSON() ([]byte, error) {
	if e.Structured() {
		return marshalValue(structuredExercise{Name: e.Name, Sets: e.Sets, Reps: e.Reps})
	}
	return marshalValue(e.Text)
}

func (e *Exercise) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*e = Exercise{}
	case data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*e = Exercise{Text: text}
	case data[0] == '{':
		var s structuredExercise
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = Exercise{Name: s.Name, Sets: s.Sets, Reps: s.Reps}
	default:
		// numbers and booleans are kept as their literal text
		*e = Exercise{Text: string(data)}
	}
	return nil
}

// FlexText accepts any JSON value and always writes a string.
type FlexText string

func (t *FlexText) UnmarshalJSON(data []byte) error {
	*t = FlexText(lenientText(data))
	return nil
}

// lenientText reads a string as is, null as empty and any other value as its compact JSON text.
func lenientText(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return ""
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			return s
		}
	}
	var compacted bytes.Buffer
	if err := json.Compact(&compacted, data); err != nil {
		return string(data)
	}
	return compacted.String()
}

// lenientExercises reads an array of exercises, a single string as one exercise
// and any other value as one exercise holding its JSON text.
func lenientExercises(data []byte) []Exercise {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] != '[' {
		return []Exercise{TextExercise(lenientText(data))}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return []Exercise{TextExercise(lenientText(data))}
	}
	exercises := make([]Exercise, 0, len(items))
	for _, item := range items {
		var ex Exercise
		if err := ex.UnmarshalJSON(item); err != nil {
			ex = TextExercise(lenientText(item))
		}
		exercises = append(exercises, ex)
	}
	return exercises
}

// marshalValue encodes v without escaping HTML characters.
func marshalValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

const (
	keyDate       = "date"
	keyType       = "type"
	keyDuration   = "duration"
	keyNotes      = "notes"
	keyExercises  = "exercises"
	keyPlannedFor = "planned_for"
	keyScheduleID = "schedule_id"
)

var entryKeys = []string{keyDate, keyType, keyDuration, keyNotes, keyExercises, keyPlannedFor, keyScheduleID}

// Entry is one logged session. Field names follow the training_history.json file.
// Keys the app does not know about and values of unexpected JSON types are kept
// as read and written back unchanged, unless the matching field was modified.
type Entry struct {
	Date       string
	Type       string
	Duration   FlexText
	Notes      string
	Exercises  []Exercise
	PlannedFor string
	ScheduleID string

	// keys in file order with their raw values
	keys []string
	raw  map[string]json.RawMessage
	// set when the persisted item was not a JSON object
	opaque json.RawMessage
}

// Opaque reports whether the entry was read from a JSON value that is not an object.
func (e Entry) Opaque() bool {
	return e.opaque != nil
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*e = Entry{}
	if len(data) == 0 || data[0] != '{' {
		if !json.Valid(data) {
			return fmt.Errorf("invalid history entry: %s", data)
		}
		e.opaque = append(json.RawMessage{}, data...)
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	if _, err := decoder.Token(); err != nil {
		return err
	}
	e.raw = make(map[string]json.RawMessage)
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		key, ok := token.(string)
		if !ok {
			return fmt.Errorf("unexpected history entry key %v", token)
		}
		var value json.RawMessage
		if err := decoder.Decode(&value); err != nil {
			return err
		}
		if _, seen := e.raw[key]; !seen {
			e.keys = append(e.keys, key)
		}
		e.raw[key] = value
	}

	for key, value := range e.raw {
		switch key {
		case keyDate:
			e.Date = lenientText(value)
		case keyType:
			e.Type = lenientText(value)
		case keyDuration:
			e.Duration = FlexText(lenientText(value))
		case keyNotes:
			e.Notes = lenientText(value)
		case keyExercises:
			e.Exercises = lenientExercises(value)
		case keyPlannedFor:
			e.PlannedFor = lenientText(value)
		case keyScheduleID:
			e.ScheduleID = lenientText(value)
		}
	}
	return nil
}

func (e Entry) text(key string) string {
	switch key {
	case keyDate:
		return e.Date
	case keyType:
		return e.Type
	case keyDuration:
		return string(e.Duration)
	case keyNotes:
		return e.Notes
	case keyPlannedFor:
		return e.PlannedFor
	case keyScheduleID:
		return e.ScheduleID
	}
	return ""
}

func sameExercises(a, b []Exercise) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// fieldJSON returns the encoded value of a known key and whether it is worth
// writing when the key was not in the file. An unmodified field gives back its raw value.
func (e Entry) fieldJSON(key string) ([]byte, bool, error) {
	raw, hadKey := e.raw[key]
	if key == keyExercises {
		if hadKey && sameExercises(lenientExercises(raw), e.Exercises) {
			return raw, true, nil
		}
		exercises := e.Exercises
		if exercises == nil {
			exercises = []Exercise{}
		}
		value, err := marshalValue(exercises)
		return value, true, err
	}

	text := e.text(key)
	if hadKey && lenientText(raw) == text {
		return raw, true, nil
	}
	value, err := marshalValue(text)
	return value, text != "" || key == keyDate || key == keyDuration, err
}

func isEntryKey(key string) bool {
	for _, k := range entryKeys {
		if k == key {
			return true
		}
	}
	return false
}

func (e Entry) MarshalJSON() ([]byte, error) {
	if e.opaque != nil {
		return e.opaque, nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	written := make(map[string]bool, len(e.keys)+len(entryKeys))
	write := func(key string, value []byte) error {
		encodedKey, err := marshalValue(key)
		if err != nil {
			return err
		}
		if len(written) > 0 {
			buf.WriteByte(',')
		}
		written[key] = true
		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(value)
		return nil
	}

	for _, key := range e.keys {
		value := []byte(e.raw[key])
		if isEntryKey(key) {
			var err error
			if value, _, err = e.fieldJSON(key); err != nil {
				return nil, err
			}
		}
		if err := write(key, value); err != nil {
			return nil, err
		}
	}
	for _, key := range entryKeys {
		if written[key] {
			continue
		}
		value, set, err := e.fieldJSON(key)
		if err != nil {
			return nil, err
		}
		if !set {
			continue
		}
		if err := write(key, value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Contains reports whether text occurs in a plain exercise, in the name of a
// structured one, or in the notes.
func (e Entry) Contains(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	for _, ex := range e.Exercises {
		if ex.Structured() {
			if strings.Contains(ex.Name, text) {
				return true
			}
			continue
		}
		if strings.Contains(ex.Text, text) {
			return true
		}
	}
	return strings.Contains(e.Notes, text)
}

// matches applies the cascade rules: with plannedFor set, the entry must be
// planned for that day and contain lineText when one is given; without
// plannedFor, containing lineText is enough. Both arguments come normalized.
func (e Entry) matches(plannedFor, lineText string) bool {
	if plannedFor != "" {
		if e.PlannedFor != plannedFor {
			return false
		}
		return lineText == "" || e.Contains(lineText)
	}
	return e.Contains(lineText)
}
