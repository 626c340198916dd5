package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/bitrange"
	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/store"
	"github.com/hupe1980/bitvec/testutil"
)

func TestSub(t *testing.T) {
	elems := testutil.Elements[uint8](4)
	h := FromRaw[uint8, store.Exclusive](&elems[0], 3, 20)

	sub, err := h.Sub(bitrange.Span(6, 15))
	require.NoError(t, err)
	assert.Equal(t, 9, sub.Len())
	assert.Equal(t, uint(1), sub.Head())
	assert.Same(t, &elems[1], sub.Base())

	_, err = h.Sub(bitrange.Span(0, 21))
	assert.ErrorIs(t, err, bitrange.ErrOutOfBounds)

	_, err = h.Sub(bitrange.Span(5, 4))
	assert.ErrorIs(t, err, bitrange.ErrMalformed)

	tail, err := h.Sub(bitrange.From(20))
	require.NoError(t, err)
	assert.True(t, tail.IsEmpty())

	sub.Set(order.Lsb0{}, 0, true)
	assert.True(t, h.Get(order.Lsb0{}, 6))
}

func TestSplitAt_InsideElement(t *testing.T) {
	elems := testutil.Elements[uint8](3)
	h := FromSlice(elems)

	left, right := h.SplitAt(12)
	assert.Equal(t, 12, left.Len())
	assert.Equal(t, 12, right.Len())
	assert.Equal(t, 2, left.Elements())
	assert.Equal(t, 2, right.Elements())
	assert.Same(t, &elems[1], right.Base())
	assert.Equal(t, 1, SharedElements(left, right))

	_, _, ok := h.SplitAligned(12)
	assert.False(t, ok)
}

func TestSplitAt_OnBoundary(t *testing.T) {
	elems := testutil.Elements[uint8](3)
	h := FromSlice(elems)

	left, right := h.SplitAt(8)
	assert.Equal(t, 0, SharedElements(left, right))

	l, r, ok := h.SplitAligned(8)
	require.True(t, ok)
	assert.Equal(t, 8, l.Len())
	assert.Equal(t, 16, r.Len())
	assert.Equal(t, 0, SharedElements(l, r))

	l, r, ok = h.SplitAligned(0)
	require.True(t, ok)
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 24, r.Len())

	_, r, ok = h.SplitAligned(24)
	require.True(t, ok)
	assert.True(t, r.IsEmpty())

	assert.Panics(t, func() { h.SplitAt(25) })
}

func TestSplitAt_Concurrent(t *testing.T) {
	elems := testutil.Elements[uint8](2)
	left, right := FromSlice(elems).SplitAt(5)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < left.Len(); i++ {
			left.Set(order.Lsb0{}, i, true)
		}
	}()
	for i := 0; i < right.Len(); i++ {
		right.Set(order.Lsb0{}, i, true)
	}
	<-done

	assert.Equal(t, []uint8{0xFF, 0xFF}, elems)
}

func TestAliasRetag(t *testing.T) {
	elems := testutil.Elements[uint16](2)
	h := FromRaw[uint16, store.Exclusive](&elems[0], 4, 20)

	al := MarkAliased(h)
	assert.Equal(t, h.Wide(), al.Wide())
	assert.Contains(t, al.String(), "aliased")

	ex := RemoveAlias(al)
	assert.Equal(t, h, ex)
}

func TestSharedElements_Disjoint(t *testing.T) {
	a := testutil.Elements[uint32](2)
	b := testutil.Elements[uint32](2)
	assert.Equal(t, 0, SharedElements(FromSlice(a), FromSlice(b)))
	assert.Equal(t, 2, SharedElements(FromSlice(a), FromSlice(a)))
}
