package rng

import (
	"fmt"
	"math"
	"math/rand"
)

// Engine is the single seeded random source shared by every generator.
// Stages consume draws in a fixed order, so one seed reproduces a full run.
// It is not safe for concurrent use; the pipeline is strictly sequential.
type Engine struct {
	r *rand.Rand
}

func New(seed int64) *Engine {
	return &Engine{r: rand.New(rand.NewSource(seed))}
}

// IntBetween returns a uniform integer in [min, max] inclusive.
func (e *Engine) IntBetween(min, max int) int {
	if max < min {
		panic(fmt.Sprintf("rng: invalid range [%d, %d]", min, max))
	}
	return min + e.r.Intn(max-min+1)
}

// FloatBetween returns a uniform float in [min, max).
func (e *Engine) FloatBetween(min, max float64) float64 {
	return min + e.r.Float64()*(max-min)
}

func (e *Engine) Float64() float64 {
	return e.r.Float64()
}

// Chance returns true with probability p.
func (e *Engine) Chance(p float64) bool {
	return e.r.Float64() < p
}

// Pick returns a uniformly chosen element.
func Pick[T any](e *Engine, items []T) T {
	return items[e.r.Intn(len(items))]
}

// PickN draws n distinct elements without replacement. When n exceeds the
// slice length the whole slice is returned in shuffled order.
func PickN[T any](e *Engine, items []T, n int) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	e.r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Weighted is a reusable weighted-choice table: a cumulative distribution
// plus a uniform draw. Every generator that needs weighted categorical
// sampling goes through this one implementation so boundary and
// normalization semantics stay uniform.
type Weighted[T any] struct {
	items []T
	cum   []float64
	total float64
}

func NewWeighted[T any](items []T, weights []float64) (*Weighted[T], error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("rng: weighted table needs at least one item")
	}
	if len(items) != len(weights) {
		return nil, fmt.Errorf("rng: %d items but %d weights", len(items), len(weights))
	}

	w := &Weighted[T]{
		items: items,
		cum:   make([]float64, len(weights)),
	}
	for i, weight := range weights {
		if weight < 0 || math.IsNaN(weight) {
			return nil, fmt.Errorf("rng: invalid weight %v at index %d", weight, i)
		}
		w.total += weight
		w.cum[i] = w.total
	}
	if w.total <= 0 {
		return nil, fmt.Errorf("rng: weights sum to zero")
	}

	return w, nil
}

// MustWeighted is for static tables whose weights are compile-time constants.
func MustWeighted[T any](items []T, weights []float64) *Weighted[T] {
	w, err := NewWeighted(items, weights)
	if err != nil {
		panic(err)
	}
	return w
}

// Pick draws one item. A draw landing exactly on a boundary resolves to the
// later bucket, matching the half-open intervals of the cumulative table.
func (w *Weighted[T]) Pick(e *Engine) T {
	target := e.r.Float64() * w.total
	for i, bound := range w.cum {
		if target < bound {
			return w.items[i]
		}
	}
	return w.items[len(w.items)-1]
}
