package techniques

import (
	"fmt"
	"slices"
	"strings"
)

type Catalog struct {
	// sorted by category order, then legacy difficulty
	techniques []Technique
	byID       map[string]int
}

var defaultCatalog = MustNewCatalog(builtin)

// Default returns the catalog built from the fixed technique table.
func Default() *Catalog {
	return defaultCatalog
}

func NewCatalog(techniques []Technique) (*Catalog, error) {
	sorted := slices.Clone(techniques)
	slices.SortStableFunc(sorted, func(a, b Technique) int {
		if c := a.Category.order() - b.Category.order(); c != 0 {
			return c
		}
		return legacyDifficultyOrDefault(a) - legacyDifficultyOrDefault(b)
	})

	byID := make(map[string]int, len(sorted))
	for i, t := range sorted {
		if t.ID == "" {
			return nil, fmt.Errorf("technique %q has no id", t.Name)
		}
		if _, exists := byID[t.ID]; exists {
			return nil, fmt.Errorf("duplicate technique id: %s", t.ID)
		}
		byID[t.ID] = i
	}

	return &Catalog{
		techniques: sorted,
		byID:       byID,
	}, nil
}

func MustNewCatalog(techniques []Technique) *Catalog {
	c, err := NewCatalog(techniques)
	if err != nil {
		panic(err)
	}
	return c
}

func legacyDifficultyOrDefault(t Technique) int {
	if t.LegacyDifficulty == 0 {
		return 5
	}
	return t.LegacyDifficulty
}

// All returns every technique, sorted by category then legacy difficulty.
func (c *Catalog) All() []Technique {
	return slices.Clone(c.techniques)
}

func (c *Catalog) Len() int {
	return len(c.techniques)
}

// FindByID reports not-found with ok=false; there is no default technique.
func (c *Catalog) FindByID(id string) (Technique, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Technique{}, false
	}
	return c.techniques[i], true
}

// FilterByCategories returns the techniques of the given categories, unique by id, in catalog order.
func (c *Catalog) FilterByCategories(categories ...Category) []Technique {
	wanted := make(map[Category]bool, len(categories))
	for _, cat := range categories {
		wanted[cat] = true
	}

	var filtered []Technique
	seen := make(map[string]bool)
	for _, t := range c.techniques {
		if !wanted[t.Category] || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		filtered = append(filtered, t)
	}
	return filtered
}

// FilterByProgram selects the techniques recommended for "sarco" or "myofi".
// Any other program name yields the whole catalog.
func (c *Catalog) FilterByProgram(program string) []Technique {
	p := strings.ToLower(strings.TrimSpace(program))
	if p != "sarco" && p != "myofi" {
		return c.All()
	}

	var filtered []Technique
	for _, t := range c.techniques {
		if strings.ToLower(t.RecommendedProgram) == p {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
