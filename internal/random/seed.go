// Package random provides the secret-number draw and its seed helpers.
//
// Production sources are math/rand generators seeded from crypto/rand so a
// fixed seed can replay a game exactly.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed returns configured when it is non-zero, otherwise a fresh
// seed from generate.
func ResolveSeed(configured int64, generate func() (int64, error)) (int64, error) {
	if configured != 0 {
		return configured, nil
	}
	if generate == nil {
		generate = NewSeed
	}
	return generate()
}
