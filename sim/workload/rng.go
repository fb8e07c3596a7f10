package workload

import (
	"hash/fnv"
	"math/rand"
)

// Stream names for PartitionedRNG. Each generated job property draws from its
// own stream so that changing one range leaves the others untouched.
const (
	// StreamArrival uses the seed directly.
	StreamArrival  = "arrival"
	StreamRunTime  = "run_time"
	StreamPriority = "priority"
)

// PartitionedRNG provides deterministic, isolated RNG instances per stream.
//
// Derivation formula:
//   - For StreamArrival: uses seed directly
//   - For all other streams: seed XOR fnv1a64(streamName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	seed    int64
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:    seed,
		streams: make(map[string]*rand.Rand),
	}
}

// ForStream returns a deterministically-seeded RNG for the named stream.
// The same name always returns the same *rand.Rand instance (cached).
func (p *PartitionedRNG) ForStream(name string) *rand.Rand {
	if rng, ok := p.streams[name]; ok {
		return rng
	}
	derived := p.seed
	if name != StreamArrival {
		derived ^= fnv1a64(name)
	}
	rng := rand.New(rand.NewSource(derived))
	p.streams[name] = rng
	return rng
}

// Seed returns the seed used to create this PartitionedRNG.
func (p *PartitionedRNG) Seed() int64 {
	return p.seed
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
