package bwm

import (
	"fmt"
	"math/rand/v2"
)

// Strategy maps block indices to watermark bit positions and back.
// wmLen must be positive: BitPosition panics otherwise and BlockIndices
// returns nil.
type Strategy interface {
	BitPosition(block, wmLen int) int
	BlockIndices(bit, wmLen, nblocks int) []int
}

// Normal assigns block i to bit i mod wmLen.
type Normal struct{}

func (Normal) BitPosition(block, wmLen int) int {
	return block % wmLen
}

func (Normal) BlockIndices(bit, wmLen, nblocks int) []int {
	if wmLen < 1 {
		return nil
	}
	indices := make([]int, 0, nblocks/wmLen+1)
	for i := bit; i < nblocks; i += wmLen {
		indices = append(indices, i)
	}
	return indices
}

// Seeded assigns block i to bit f[i] mod wmLen, where f is a permutation
// of the block indices derived from the seed.
type Seeded struct {
	seed uint64
	f    []int
}

func NewSeeded(n int, seed uint64) *Seeded {
	return &Seeded{
		seed: seed,
		f:    permutation(n, seed),
	}
}

func (s *Seeded) Seed() uint64 {
	return s.seed
}

func (s *Seeded) Permutation() []int {
	f := make([]int, len(s.f))
	copy(f, s.f)
	return f
}

func (s *Seeded) BitPosition(block, wmLen int) int {
	return s.f[block] % wmLen
}

func (s *Seeded) BlockIndices(bit, wmLen, nblocks int) []int {
	if wmLen < 1 {
		return nil
	}
	n := min(nblocks, len(s.f))
	indices := make([]int, 0, n/wmLen+1)
	for i := 0; i < n; i += 1 {
		if s.f[i]%wmLen == bit {
			indices = append(indices, i)
		}
	}
	return indices
}

const pcgStream uint64 = 0x9e3779b97f4a7c15

// permutation shuffles [0, n) with Fisher-Yates driven by PCG-DXSM.
// The bounded draw is implemented here so the result does not depend on
// the shuffle implementation of math/rand.
func permutation(n int, seed uint64) []int {
	f := make([]int, n)
	for i := range f {
		f[i] = i
	}
	src := rand.NewPCG(seed, seed^pcgStream)
	for i := n - 1; 0 < i; i -= 1 {
		j := int(bounded(src, uint64(i+1)))
		f[i], f[j] = f[j], f[i]
	}
	return f
}

// bounded returns a uniform value in [0, n) by rejecting the biased low range.
func bounded(src rand.Source, n uint64) uint64 {
	threshold := -n % n
	for {
		v := src.Uint64()
		if threshold <= v {
			return v % n
		}
	}
}

// Mode selects the strategy used for a given block count.
type Mode struct {
	seeded bool
	seed   uint64
}

func NormalMode() Mode {
	return Mode{}
}

func SeededMode(seed uint64) Mode {
	return Mode{seeded: true, seed: seed}
}

func (m Mode) Seed() (uint64, bool) {
	return m.seed, m.seeded
}

func (m Mode) Strategy(nblocks int) Strategy {
	if m.seeded {
		return NewSeeded(nblocks, m.seed)
	}
	return Normal{}
}

func (m Mode) String() string {
	if m.seeded {
		return fmt.Sprintf("seeded(%d)", m.seed)
	}
	return "normal"
}
