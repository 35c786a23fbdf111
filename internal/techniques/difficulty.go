package techniques

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	textLight    = "legere"
	textModerate = "moderee"
	textHeavy    = "lourde"
)

var textToLevel = map[string]int{
	textLight:    2,
	textModerate: 3,
	textHeavy:    5,
}

var (
	reLight    = regexp.MustCompile(`tres[-\s]?legere|legere\b`)
	reModerate = regexp.MustCompile(`modere`)
	reHeavy    = regexp.MustCompile(`lourde\b`)
	reNumber   = regexp.MustCompile(`\d{1,3}`)
)

// DifficultyColors maps a difficulty level to the background fill used by exports.
var DifficultyColors = map[int]string{
	1: "#e6fff2",
	2: "#d1fae5",
	3: "#fef3c7",
	4: "#fcd5c5",
	5: "#fee2e2",
}

const NoDifficultyColor = "#ffffff"

func DifficultyColor(level int) string {
	if c, ok := DifficultyColors[level]; ok {
		return c
	}
	return NoDifficultyColor
}

func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// normalizeDifficultyText maps free text to one of the keyword classes, or "".
func normalizeDifficultyText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	t := stripAccents(strings.ToLower(s))
	switch {
	case reLight.MatchString(t):
		return textLight
	case reModerate.MatchString(t):
		return textModerate
	case reHeavy.MatchString(t):
		return textHeavy
	default:
		return ""
	}
}

func validLevel(l int) bool {
	return l >= 1 && l <= 5
}

// InferDifficulty resolves a 1..5 level for t. Explicit levels win, then the
// free-text ratings, then the average percentage in the load, then keywords in the notes.
func InferDifficulty(t Technique) (int, bool) {
	if validLevel(t.DifficultyLevel) {
		return t.DifficultyLevel, true
	}
	if validLevel(t.LegacyDifficulty) {
		return t.LegacyDifficulty, true
	}

	for _, text := range []string{t.Difficulty, t.Level, t.Intensity} {
		if class := normalizeDifficultyText(text); class != "" {
			return textToLevel[class], true
		}
	}

	if strings.Contains(t.Load, "%") {
		if level, ok := levelFromPercentages(t.Load); ok {
			return level, true
		}
	}

	if class := normalizeDifficultyText(t.Notes); class != "" {
		return textToLevel[class], true
	}
	return 0, false
}

func levelFromPercentages(load string) (int, bool) {
	matches := reNumber.FindAllString(load, -1)
	if len(matches) == 0 {
		return 0, false
	}
	sum := 0
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			return 0, false
		}
		sum += n
	}

	avg := float64(sum) / float64(len(matches))
	switch {
	case avg < 55:
		return 2, true
	case avg <= 75:
		return 3, true
	case avg <= 85:
		return 4, true
	default:
		return 5, true
	}
}
