// Package random is the only source of nondeterminism used by the generators.
// A Source is not safe for concurrent use; give each goroutine its own.
package random

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

const (
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
)

type Source struct {
	rng *rand.Rand
}

func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Read fills p with pseudo-random bytes so a Source can seed UUIDs.
func (s *Source) Read(p []byte) (int, error) {
	return s.rng.Read(p)
}

// Int returns an integer in [min, max].
func (s *Source) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Int64 returns an integer in [min, max].
func (s *Source) Int64(min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + s.rng.Int63n(max-min+1)
}

// Float returns a value in [min, max) rounded to the given decimal places.
func (s *Source) Float(min, max float64, places int32) decimal.Decimal {
	value := s.rng.Float64()*(max-min) + min
	return decimal.NewFromFloat(value).Round(places)
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

func (s *Source) Digits(n int) string {
	return s.fromAlphabet(digits, n)
}

func (s *Source) Letters(n int) string {
	return s.fromAlphabet(upperLetters, n)
}

func (s *Source) fromAlphabet(alphabet string, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[s.rng.Intn(len(alphabet))]
	}
	return string(out)
}

func Pick[T any](s *Source, items []T) T {
	return items[s.rng.Intn(len(items))]
}

// PickWeighted returns items[i] with probability weights[i]/sum(weights).
// Weights need not sum to one. The last item absorbs floating point drift.
func PickWeighted[T any](s *Source, items []T, weights []float64) T {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	remaining := s.rng.Float64() * total
	for i, item := range items {
		remaining -= weights[i]
		if remaining <= 0 {
			return item
		}
	}
	return items[len(items)-1]
}

// Seeder hands out independent sources. A zero base seed draws from the clock.
type Seeder struct {
	base    int64
	counter atomic.Int64
}

func NewSeeder(base int64) *Seeder {
	return &Seeder{base: base}
}

func (s *Seeder) Next() *Source {
	n := s.counter.Add(1)
	if s.base == 0 {
		return New(time.Now().UnixNano() + n)
	}
	return New(s.base + n*7919)
}
