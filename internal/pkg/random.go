package pkg

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// NewSeed - generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewDrawRandom - returns a random source for one server-assigned draw id.
// The same seed and draw id always yield the same sequence, so logged games can be replayed.
func NewDrawRandom(seed uint64, drawID string) func() uint32 {
	rng := rand.New(rand.NewPCG(seed, xxhash.Sum64String(drawID))) //nolint: gosec // moves don't need crypto randomness

	return rng.Uint32
}
