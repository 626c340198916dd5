// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic random bit patterns and word-aligned element
// storage.
//
// # Random Bits
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Bits(100)         // []bool, fair coin
//	bits := rng.SparseBits(100, 0.1)
//
// # Element Storage
//
//	elems := testutil.Elements[uint8](16) // backed by uint64 words
package testutil
