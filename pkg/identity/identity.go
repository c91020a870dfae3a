// Package identity provides the unique-value sources used by Context.GenerateID.
package identity

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// DefaultPrefix is prepended to every value of the default counter.
const DefaultPrefix = "uniq"

// Generator returns a value unique for the lifetime of the process.
// Implementations must be safe for concurrent use.
type Generator interface {
	Generate() string
}

// Func adapts a plain function to the Generator interface.
type Func func() string

// Generate implements Generator.
func (f Func) Generate() string { return f() }

// Counter is a monotonic generator producing prefix1, prefix2, ...
type Counter struct {
	prefix string
	n      atomic.Uint64
}

// NewCounter creates a counter starting at 1.
func NewCounter(prefix string) *Counter {
	return &Counter{prefix: prefix}
}

// Generate implements Generator.
func (c *Counter) Generate() string {
	return c.prefix + strconv.FormatUint(c.n.Add(1), 10)
}

// UUID generates random RFC 4122 identifiers, optionally prefixed.
type UUID struct {
	Prefix string
}

// Generate implements Generator.
func (u UUID) Generate() string {
	return u.Prefix + uuid.NewString()
}

var defaultCounter = NewCounter(DefaultPrefix)

// Default returns the process-wide counter shared by every engine that was not
// given its own generator.
func Default() Generator {
	return defaultCounter
}

// Strategy names accepted by FromStrategy.
const (
	StrategyCounter = "counter"
	StrategyUUID    = "uuid"
)

// FromStrategy builds a generator by name. An empty name selects the process-wide default.
func FromStrategy(name, prefix string) (Generator, error) {
	switch name {
	case "":
		return Default(), nil
	case StrategyCounter:
		if prefix == "" {
			prefix = DefaultPrefix
		}
		return NewCounter(prefix), nil
	case StrategyUUID:
		return UUID{Prefix: prefix}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", name)
	}
}
