// Package order maps semantic bit indices onto physical bit positions inside
// a storage element.
//
// Only the narrow mapping needed by regions and buffers lives here. Richer
// ordering behavior belongs to the view layer built on top of bitvec.
package order

// Order converts the semantic index of a bit inside an element into the
// shift of that bit in the element's value.
type Order interface {
	// Position returns the shift for bit, where 0 <= bit < width.
	Position(bit, width uint) uint
}

// Lsb0 numbers bits from the least significant end.
type Lsb0 struct{}

// Position implements Order.
func (Lsb0) Position(bit, _ uint) uint { return bit }

// Msb0 numbers bits from the most significant end.
type Msb0 struct{}

// Position implements Order.
func (Msb0) Position(bit, width uint) uint { return width - 1 - bit }

// Default is the order used when none is configured.
var Default Order = Lsb0{}
