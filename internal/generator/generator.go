// Package generator fabricates users and their financial footprint.
// A Generator is a pure function of its random source, clock and pattern table;
// it never touches storage and is not safe for concurrent use.
package generator

import (
	"errors"
	"time"

	"aggregator/internal/catalog"
	"aggregator/internal/random"

	"github.com/google/uuid"
)

var (
	ErrNegativeMonths = errors.New("months of history must not be negative")
	ErrNegativeCount  = errors.New("count must not be negative")
)

type Generator struct {
	src      *random.Source
	now      func() time.Time
	patterns catalog.PatternTable
}

type Option func(*Generator)

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func WithPatterns(table catalog.PatternTable) Option {
	return func(g *Generator) {
		g.patterns = table
	}
}

func New(src *random.Source, opts ...Option) *Generator {
	g := &Generator{
		src: src,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if len(g.patterns.Patterns) == 0 {
		g.patterns = catalog.DefaultPatterns()
	}
	return g
}

func (g *Generator) newID() string {
	return uuid.Must(uuid.NewRandomFromReader(g.src)).String()
}

func monthsBefore(t time.Time, months int) time.Time {
	return t.AddDate(0, -months, 0)
}
