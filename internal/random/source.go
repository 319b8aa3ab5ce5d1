package random

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalidRange indicates a draw was requested with lower > upper.
var ErrInvalidRange = errors.New("lower bound must not exceed upper bound")

// Source draws integers uniformly from an inclusive range.
type Source interface {
	UniformInt(lower, upper int) (int, error)
}

// RandSource is a Source backed by a seeded math/rand generator.
type RandSource struct {
	rng *rand.Rand
}

// New returns a RandSource seeded with seed. The same seed yields the same
// sequence of draws.
func New(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// UniformInt returns an integer in [lower, upper].
func (s *RandSource) UniformInt(lower, upper int) (int, error) {
	if err := checkRange(lower, upper); err != nil {
		return 0, err
	}
	// Width is computed in uint64 so ranges spanning most of the int domain
	// do not overflow.
	n := uint64(upper) - uint64(lower) + 1
	switch {
	case n == 0:
		// [math.MinInt, math.MaxInt]: every value is in range.
		return int(s.rng.Uint64()), nil
	case n <= math.MaxInt64:
		return lower + int(s.rng.Int63n(int64(n))), nil
	}
	for {
		if v := s.rng.Uint64(); v < n {
			return int(uint64(lower) + v), nil
		}
	}
}

// Fixed is a Source that always draws the same value. Draws outside the
// requested range fail so tests cannot silently inject an impossible secret.
type Fixed int

// UniformInt returns the fixed value when it lies in [lower, upper].
func (f Fixed) UniformInt(lower, upper int) (int, error) {
	if err := checkRange(lower, upper); err != nil {
		return 0, err
	}
	if int(f) < lower || int(f) > upper {
		return 0, fmt.Errorf("fixed value %d outside [%d, %d]", int(f), lower, upper)
	}
	return int(f), nil
}

func checkRange(lower, upper int) error {
	if lower > upper {
		return fmt.Errorf("draw [%d, %d]: %w", lower, upper, ErrInvalidRange)
	}
	return nil
}
