// Package generator fills flat matrices from a pluggable value source.
//
// A ValueFn draws one element from an optional *rand.Rand; a Generator owns the
// RNG and applies its ValueFn element by element. The default source is uniform
// on [-50, 49] with a fixed seed, so fixtures are reproducible unless a seed is
// supplied.
//
// A Generator is not safe for concurrent use (it owns a *rand.Rand).
package generator

import (
	"fmt"
	"math/rand"

	"github.com/samber/lo"
)

// Defaults.
const (
	DefaultMin  int32 = -50
	DefaultMax  int32 = 49
	DefaultSeed int64 = 1
)

// ValueFn produces one matrix element given an optional *rand.Rand.
// It must be deterministic for a given RNG seed.
type ValueFn func(rng *rand.Rand) int32

// ConstantValueFn returns a ValueFn that always yields v.
// Complexity: O(1).
func ConstantValueFn(v int32) ValueFn {
	return func(_ *rand.Rand) int32 { return v }
}

// UniformValueFn returns a ValueFn sampling uniformly in [min, max] inclusive.
// Panics if max < min. If rng is nil, yields min.
// Complexity: O(1).
func UniformValueFn(min, max int32) ValueFn {
	if max < min {
		panic(fmt.Sprintf("UniformValueFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	span := int64(max) - int64(min) + 1

	return func(rng *rand.Rand) int32 {
		if rng == nil {
			return min
		}

		return int32(int64(min) + rng.Int63n(span))
	}
}

// DefaultValueFn samples uniformly in [DefaultMin, DefaultMax].
var DefaultValueFn = UniformValueFn(DefaultMin, DefaultMax)

// Option configures a Generator.
type Option func(*Generator)

// WithSeed seeds the Generator's RNG.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand makes the Generator draw from rng. A nil rng is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithValueFn sets the element source. A nil fn is ignored.
func WithValueFn(fn ValueFn) Option {
	return func(g *Generator) {
		if fn != nil {
			g.fn = fn
		}
	}
}

// WithUniform sets the element source to UniformValueFn(min, max).
func WithUniform(min, max int32) Option {
	return WithValueFn(UniformValueFn(min, max))
}

// Generator produces flat matrices.
type Generator struct {
	rng *rand.Rand
	fn  ValueFn
}

// New creates a Generator with DefaultValueFn seeded with DefaultSeed, then
// applies opts in order.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(DefaultSeed)),
		fn:  DefaultValueFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Generate returns a flat row-major m×n matrix. Non-positive m or n yield an
// empty slice.
// Complexity: O(m*n).
func (g *Generator) Generate(m, n int) []int32 {
	if m <= 0 || n <= 0 {
		return []int32{}
	}

	return lo.Times(m*n, func(int) int32 { return g.fn(g.rng) })
}

// Square returns a flat n×n matrix.
func (g *Generator) Square(n int) []int32 {
	return g.Generate(n, n)
}
