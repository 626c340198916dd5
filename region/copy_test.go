package region

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/bitvec/bitrange"
	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/store"
	"github.com/hupe1980/bitvec/testutil"
)

func read[T store.Element, M store.Mode](h Handle[T, M], o order.Order, start, n int) []bool {
	return testutil.BitsOf(n, func(i int) bool { return h.Get(o, start+i) })
}

func testCopyWithinDown[T store.Element](t *testing.T) {
	rng := testutil.NewRNG(4711)
	w := int(store.Width[T]())

	for _, o := range []order.Order{order.Lsb0{}, order.Msb0{}} {
		for shift := 1; shift < 3*w; shift += 3 {
			elems := testutil.Elements[T](6)
			testutil.FillElements(rng, elems)
			h := FromSlice(elems)
			n := h.Len() - shift - rng.Intn(w)

			want := read(h, o, shift, n)
			h.CopyWithin(o, bitrange.Range{Start: shift, End: shift + n}, 0)
			assert.Equal(t, want, read(h, o, 0, n), "order %T shift %d", o, shift)
		}
	}
}

func TestCopyWithin_Down(t *testing.T) {
	t.Run("uint8", testCopyWithinDown[uint8])
	t.Run("uint16", testCopyWithinDown[uint16])
	t.Run("uint32", testCopyWithinDown[uint32])
	t.Run("uint64", testCopyWithinDown[uint64])
}

func TestCopyWithin_PreservesTail(t *testing.T) {
	elems := testutil.Elements[uint8](2)
	elems[0], elems[1] = 0xF0, 0xAA
	h := FromSlice(elems)

	// Move bits 4..8 down to 0..4; bits 4.. of the first element stay.
	h.CopyWithin(order.Lsb0{}, bitrange.Range{Start: 4, End: 8}, 0)
	assert.Equal(t, uint8(0xFF), elems[0])
	assert.Equal(t, uint8(0xAA), elems[1])
}

func TestCopyWithin_Up(t *testing.T) {
	elems := testutil.Elements[uint8](2)
	h := FromSlice(elems)
	o := order.Lsb0{}
	for _, i := range []int{0, 2, 3} {
		h.Set(o, i, true)
	}

	h.CopyWithin(o, bitrange.Range{Start: 0, End: 4}, 2)
	assert.Equal(t, []bool{true, false, true, false, true, true}, read(h, o, 0, 6))

	assert.Panics(t, func() { h.CopyWithin(o, bitrange.Range{Start: 0, End: 4}, 13) })
}

func TestCopyWithin_Aliased(t *testing.T) {
	elems := testutil.Elements[uint8](2)
	elems[0] = 0xF0
	h := MarkAliased(FromSlice(elems))

	h.CopyWithin(order.Lsb0{}, bitrange.Range{Start: 4, End: 8}, 0)
	assert.Equal(t, uint8(0xFF), elems[0])
}

func TestCopyFrom(t *testing.T) {
	src := testutil.Elements[uint8](1)
	src[0] = 0b101
	dst := testutil.Elements[uint8](2)

	s, err := FromSlice(src).Sub(bitrange.To(3))
	assert.NoError(t, err)

	h := FromSlice(dst)
	h.CopyFrom(order.Lsb0{}, 6, s)
	assert.Equal(t, uint8(0b0100_0000), dst[0])
	assert.Equal(t, uint8(0b1), dst[1])
}
