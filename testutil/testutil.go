package testutil

import (
	"math/rand"
	"sync"
	"unsafe"

	"github.com/hupe1980/bitvec/store"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bits returns n fair random bits.
func (r *RNG) Bits(n int) []bool {
	return r.SparseBits(n, 0.5)
}

// SparseBits returns n random bits, each set with probability density.
func (r *RNG) SparseBits(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Float64() < density
	}
	return out
}

// FillElements overwrites dst with random element values.
func FillElements[T store.Element](r *RNG, dst []T) {
	for i := range dst {
		dst[i] = T(r.Uint64())
	}
}

// Elements returns n zeroed elements backed by uint64 words, so sub-word
// elements can be accessed through store.Atomic.
func Elements[T store.Element](n int) []T {
	if n == 0 {
		return nil
	}
	words := make([]uint64, (n*int(store.Size[T]())+7)/8)
	return unsafe.Slice((*T)(unsafe.Pointer(&words[0])), n)
}

// BitsOf reads the first n bits of src through get.
func BitsOf(n int, get func(i int) bool) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = get(i)
	}
	return out
}
