package rotation

import (
	"math/rand"
	"slices"
	"time"
)

// Rotation hands out technique ids in a random order without repeating any id
// until the whole pool has been used; then it reshuffles and starts over.
type Rotation struct {
	pool   []string
	order  []string
	cursor int
	rng    *rand.Rand
}

// New builds a rotation over ids. A nil rng gets a time seeded source.
func New(ids []string, rng *rand.Rand) *Rotation {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r := &Rotation{
		pool: dedupe(ids),
		rng:  rng,
	}
	r.order = shuffle(r.pool, r.rng)
	return r
}

// BuildRotation returns one permutation of the deduplicated ids.
func BuildRotation(ids []string, rng *rand.Rand) []string {
	return New(ids, rng).AllIDs()
}

// Next returns the next id; ok is false only for an empty pool.
func (r *Rotation) Next() (string, bool) {
	if len(r.pool) == 0 {
		return "", false
	}
	if r.cursor >= len(r.order) {
		r.order = shuffle(r.pool, r.rng)
		r.cursor = 0
	}
	id := r.order[r.cursor]
	r.cursor++
	return id, true
}

// AllIDs returns a copy of the current permutation.
func (r *Rotation) AllIDs() []string {
	return slices.Clone(r.order)
}

// Len returns the number of distinct ids in the pool.
func (r *Rotation) Len() int {
	return len(r.pool)
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	return unique
}

// Fisher-Yates
func shuffle(pool []string, rng *rand.Rand) []string {
	order := slices.Clone(pool)
	for i := len(order) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}
