// Package bitrange normalizes and validates bit-index ranges.
//
// Every slicing and resizing operation in bitvec accepts a Bounds value
// (any combination of absent, inclusive or exclusive endpoints) and turns it
// into a concrete half-open Range with Normalize. Validation is a separate
// step so each caller picks its own limit (live length, capacity, or the
// length of a sub-region):
//
//	r := bitrange.Normalize(bitrange.ToInclusive(4), 10) // [0, 5)
//	if err := bitrange.Validate(r, 10); err != nil { ... }
//
// Normalize never clamps. A Range whose End exceeds the default end is
// returned as-is and rejected later by Validate.
package bitrange
