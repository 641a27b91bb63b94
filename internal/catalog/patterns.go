package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"aggregator/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed patterns.yaml
var defaultPatternsYAML []byte

var (
	ErrNoPatterns       = errors.New("pattern table is empty")
	ErrInvalidWeight    = errors.New("pattern weight must be positive")
	ErrInvalidRange     = errors.New("pattern amount range is invalid")
	ErrUnknownMode      = errors.New("unknown transaction mode")
	ErrUnknownDirection = errors.New("unknown transaction direction")
	ErrUnknownMerchant  = errors.New("unknown merchant category")
)

// Pattern describes one kind of synthetic transaction.
type Pattern struct {
	Direction        models.TxnType `yaml:"direction"`
	Mode             models.TxnMode `yaml:"mode"`
	Category         string         `yaml:"category"`
	Min              float64        `yaml:"min"`
	Max              float64        `yaml:"max"`
	MerchantCategory string         `yaml:"merchant_category,omitempty"`
	Weight           float64        `yaml:"weight,omitempty"`
}

type PatternTable struct {
	Salary   Pattern   `yaml:"salary"`
	Rent     Pattern   `yaml:"rent"`
	Patterns []Pattern `yaml:"patterns"`
}

func (t PatternTable) Weights() []float64 {
	weights := make([]float64, len(t.Patterns))
	for i, p := range t.Patterns {
		weights[i] = p.Weight
	}
	return weights
}

func (t PatternTable) Validate() error {
	if len(t.Patterns) == 0 {
		return ErrNoPatterns
	}
	if err := t.Salary.validate(false); err != nil {
		return fmt.Errorf("salary: %w", err)
	}
	if err := t.Rent.validate(false); err != nil {
		return fmt.Errorf("rent: %w", err)
	}
	for i, p := range t.Patterns {
		if err := p.validate(true); err != nil {
			return fmt.Errorf("pattern %d (%s): %w", i, p.Category, err)
		}
	}
	return nil
}

func (p Pattern) validate(weighted bool) error {
	if weighted && p.Weight <= 0 {
		return ErrInvalidWeight
	}
	if p.Min < 0 || p.Min > p.Max {
		return ErrInvalidRange
	}
	switch p.Direction {
	case models.TxnCredit, models.TxnDebit:
	default:
		return ErrUnknownDirection
	}
	switch p.Mode {
	case models.ModeCash, models.ModeATM, models.ModeCard, models.ModeUPI, models.ModeFT, models.ModeOthers:
	default:
		return ErrUnknownMode
	}
	if p.MerchantCategory != "" {
		if _, ok := Merchants[p.MerchantCategory]; !ok {
			return ErrUnknownMerchant
		}
	}
	return nil
}

func ParsePatterns(data []byte) (PatternTable, error) {
	var table PatternTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return PatternTable{}, err
	}
	if err := table.Validate(); err != nil {
		return PatternTable{}, err
	}
	return table, nil
}

// LoadPatterns reads a pattern table from path, or the built-in table when path is empty.
func LoadPatterns(path string) (PatternTable, error) {
	if path == "" {
		return ParsePatterns(defaultPatternsYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return PatternTable{}, err
	}
	return ParsePatterns(data)
}

var parsedDefaults = sync.OnceValue(func() PatternTable {
	table, err := ParsePatterns(defaultPatternsYAML)
	if err != nil {
		panic(err)
	}
	return table
})

// DefaultPatterns panics if the embedded table is broken; tests cover it.
// The embedded YAML is parsed once and each caller gets its own pattern slice.
func DefaultPatterns() PatternTable {
	table := parsedDefaults()
	table.Patterns = slices.Clone(table.Patterns)
	return table
}
