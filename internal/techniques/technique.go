package techniques

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategorySarcoplasmic Category = "SARCOPLASMIQUE"
	CategoryMixed        Category = "MIXTE"
	CategoryMyofibrillar Category = "MYOFIBRILLAIRE"
)

// Categories in catalog order.
var Categories = []Category{
	CategorySarcoplasmic,
	CategoryMixed,
	CategoryMyofibrillar,
}

func (c Category) IsValid() bool {
	switch c {
	case CategorySarcoplasmic, CategoryMixed, CategoryMyofibrillar:
		return true
	default:
		return false
	}
}

func (c Category) order() int {
	switch c {
	case CategorySarcoplasmic:
		return 0
	case CategoryMixed:
		return 1
	case CategoryMyofibrillar:
		return 2
	default:
		return 9
	}
}

// ParseCategory accepts the stored labels as well as their english and short names.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sarcoplasmique", "sarcoplasmic", "sarco":
		return CategorySarcoplasmic, nil
	case "mixte", "mixed":
		return CategoryMixed, nil
	case "myofibrillaire", "myofibrillar", "myofi":
		return CategoryMyofibrillar, nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// Technique is a catalogued exercise variant. Zero LegacyDifficulty and
// DifficultyLevel mean the value is absent.
type Technique struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Category           Category `json:"category"`
	Repetitions        string   `json:"repetitions"`
	Load               string   `json:"load"`
	Rest               string   `json:"rest"`
	Goal               string   `json:"goal"`
	LegacyDifficulty   int      `json:"legacyDifficulty,omitempty"`
	DifficultyLevel    int      `json:"difficultyLevel,omitempty"`
	RecommendedProgram string   `json:"recommendedProgram"`
	Notes              string   `json:"notes,omitempty"`
	// optional free-text ratings, used only for difficulty inference
	Difficulty string `json:"difficulty,omitempty"`
	Level      string `json:"level,omitempty"`
	Intensity  string `json:"intensity,omitempty"`
}

const missingValue = "—"

func orMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return missingValue
	}
	return s
}

// Summary renders "<name> [<reps>] | <load> (<id>)", the text stored as a schedule line.
// The trailing id token is what ExtractID reads back.
func (t Technique) Summary() string {
	return fmt.Sprintf("%s [%s] | %s (%s)", t.Name, orMissing(t.Repetitions), orMissing(t.Load), t.ID)
}
