package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/bitrange"
	"github.com/hupe1980/bitvec/internal/alloc"
	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/region"
	"github.com/hupe1980/bitvec/store"
	"github.com/hupe1980/bitvec/testutil"
)

func bitsOf[T store.Element](b *Buffer[T]) []bool {
	return testutil.BitsOf(b.Len(), b.Get)
}

func pushAll[T store.Element](b *Buffer[T], bits []bool) *Buffer[T] {
	for _, v := range bits {
		b.Push(v)
	}
	return b
}

func TestRepeat(t *testing.T) {
	t.Run("TrueUint8", func(t *testing.T) {
		b := Repeat[uint8](true, 20)
		assert.Equal(t, 20, b.Len())
		assert.Equal(t, 3, b.Elements())

		b.ForceAlign()
		for i := range 20 {
			assert.True(t, b.Get(i), "bit %d", i)
		}
		assert.Equal(t, uint8(0xFF), b.AsElements()[0])
		assert.Equal(t, uint8(0xFF), b.AsElements()[1])
	})

	t.Run("False", func(t *testing.T) {
		b := Repeat[uint32](false, 100)
		assert.Equal(t, 100, b.Len())
		assert.Equal(t, 4, b.Elements())
		for i := range 100 {
			assert.False(t, b.Get(i))
		}
	})

	t.Run("Empty", func(t *testing.T) {
		b := Repeat[uint64](true, 0)
		assert.True(t, b.IsEmpty())
		assert.Zero(t, b.Elements())
		assert.Nil(t, b.AsElements())
	})
}

func TestFillElements(t *testing.T) {
	b := WithCapacity[uint16](40)
	b.SetLen(20)

	b.FillElements(0xA5A5)
	for i, v := range b.AsElements() {
		assert.Equal(t, uint16(0xA5A5), v, "element %d", i)
	}
	assert.True(t, b.Get(0))
	assert.False(t, b.Get(1))

	b.FillElements(0)
	assert.Equal(t, 20, b.Len())
	for i := range 20 {
		assert.False(t, b.Get(i))
	}

	b.SetLen(b.Capacity())
	for i := range b.Len() {
		assert.False(t, b.Get(i), "allocated bit %d", i)
	}
}

func TestWithCapacity(t *testing.T) {
	b := WithCapacity[uint8](20)
	assert.Zero(t, b.Len())
	assert.GreaterOrEqual(t, b.Capacity(), 24)

	b64 := WithCapacity[uint64](1)
	assert.Equal(t, 64, b64.Capacity())

	assert.Zero(t, New[uint16]().Capacity())
	assert.Panics(t, func() { WithCapacity[uint8](-1) })
}

func TestPushPop(t *testing.T) {
	rng := testutil.NewRNG(42)
	bits := rng.Bits(300)

	for _, o := range []order.Order{order.Lsb0{}, order.Msb0{}} {
		b := pushAll(New[uint16](WithOrder(o)), bits)
		require.Equal(t, 300, b.Len())
		assert.Equal(t, bits, bitsOf(b))

		for i := len(bits) - 1; i >= 0; i-- {
			v, ok := b.Pop()
			require.True(t, ok)
			assert.Equal(t, bits[i], v)
		}
		_, ok := b.Pop()
		assert.False(t, ok)
	}
}

func TestGetSet_Bounds(t *testing.T) {
	b := Repeat[uint8](false, 10)
	b.Set(9, true)
	assert.True(t, b.Get(9))

	assert.PanicsWithError(t, "range out of bounds: `10 .. 11` must not exceed `10`", func() { b.Get(10) })
	assert.Panics(t, func() { b.Set(-1, true) })
}

func TestSetLen(t *testing.T) {
	b := WithCapacity[uint8](16)
	capBits := b.Capacity()

	b.SetLen(capBits)
	assert.Equal(t, capBits, b.Len())

	assert.Panics(t, func() { b.SetLen(capBits + 1) })
	assert.Panics(t, func() { b.SetLen(-1) })
}

func TestTruncateClear(t *testing.T) {
	b := pushAll(New[uint32](), []bool{true, false, true, true})
	b.Truncate(2)
	assert.Equal(t, []bool{true, false}, bitsOf(b))

	assert.Panics(t, func() { b.Truncate(3) })

	c := b.Capacity()
	b.Clear()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, c, b.Capacity())
}

func TestReserve(t *testing.T) {
	rng := testutil.NewRNG(99)
	bits := rng.Bits(37)

	t.Run("RebasesAndPreserves", func(t *testing.T) {
		b := pushAll(New[uint8](), bits)
		before := b.Region()
		capBefore := b.Capacity()

		b.Reserve(10_000)
		after := b.Region()

		assert.GreaterOrEqual(t, b.Capacity(), 37+10_000)
		assert.Greater(t, b.Capacity(), capBefore)
		assert.NotSame(t, before.Base(), after.Base())
		assert.Equal(t, before.Head(), after.Head())
		assert.Equal(t, before.Len(), after.Len())
		assert.Equal(t, bits, bitsOf(b))
	})

	t.Run("NeverShrinks", func(t *testing.T) {
		b := WithCapacity[uint16](1000)
		c := b.Capacity()
		base := b.Region().Base()

		b.Reserve(1)
		b.Reserve(0)
		assert.Equal(t, c, b.Capacity())
		assert.Same(t, base, b.Region().Base())
	})

	t.Run("KeepsHead", func(t *testing.T) {
		src := pushAll(New[uint8](), bits)
		sub, err := src.Slice(bitrange.From(5))
		require.NoError(t, err)

		b := FromRegion[uint8](sub)
		require.Equal(t, uint(5), b.Region().Head())

		b.Reserve(500)
		assert.Equal(t, uint(5), b.Region().Head())
		assert.Equal(t, bits[5:], bitsOf(b))
	})

	t.Run("Amortized", func(t *testing.T) {
		mc := &BasicMetricsCollector{}
		b := New[uint64](WithMetricsCollector(mc))
		for range 64 * 1024 {
			b.Push(true)
		}
		// Doubling reaches 1024 words in about log2(1024) steps.
		assert.LessOrEqual(t, mc.GetStats().GrowCount, int64(12))
	})

	t.Run("Overflow", func(t *testing.T) {
		b := Repeat[uint8](true, 3)
		err := b.TryReserve(region.MaxBits)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCapacityOverflow)
		assert.Equal(t, 3, b.Len())
	})
}

func TestTryReserve_MemoryLimit(t *testing.T) {
	b := New[uint8](WithMemoryLimit(16))
	require.NoError(t, b.TryReserve(100))

	err := b.TryReserve(200)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)

	var ae *AllocError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 32, ae.Requested)

	assert.Panics(t, func() { b.Reserve(200) })
	assert.GreaterOrEqual(t, b.Capacity(), 100)
}

func TestSharedResourceController(t *testing.T) {
	rc := NewResourceController(64, 2)

	a := WithCapacity[uint64](256, WithResourceController(rc))
	assert.Equal(t, int64(32), rc.MemoryUsage())

	b := New[uint64](WithResourceController(rc))
	require.NoError(t, b.TryReserve(256))
	assert.Error(t, b.TryReserve(1024))

	a.Release()
	b.Release()
	assert.Zero(t, rc.MemoryUsage())
	assert.Equal(t, int64(64), rc.PeakMemory())
}

func TestExtendFromRegion(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		b := pushAll(New[uint8](), []bool{true, false, true})
		r := pushAll(New[uint8](), []bool{true, true})

		b.ExtendFromRegion(r.Region())
		assert.Equal(t, 5, b.Len())
		assert.Equal(t, []bool{true, false, true, true, true}, bitsOf(b))
	})

	t.Run("AliasedSource", func(t *testing.T) {
		rng := testutil.NewRNG(5)
		bits := rng.Bits(50)
		src := pushAll(New[uint32](), bits)
		left, right := src.Region().SplitAt(21)

		b := New[uint32]()
		b.ExtendFromRegion(right)
		b.ExtendFromRegion(left)
		assert.Equal(t, append(append([]bool{}, bits[21:]...), bits[:21]...), bitsOf(b))
	})

	t.Run("Empty", func(t *testing.T) {
		b := pushAll(New[uint8](), []bool{true})
		b.ExtendFromRegion(New[uint8]().Region())
		assert.Equal(t, []bool{true}, bitsOf(b))
	})
}

func TestFromRegion(t *testing.T) {
	rng := testutil.NewRNG(21)
	bits := rng.Bits(77)
	src := pushAll(New[uint16](), bits)

	sub, err := src.Slice(bitrange.Span(19, 70))
	require.NoError(t, err)

	b := FromRegion[uint16](sub)
	assert.Equal(t, sub.Head(), b.Region().Head())
	assert.Equal(t, bits[19:70], bitsOf(b))
	assert.NotSame(t, sub.Base(), b.Region().Base())

	_, right := src.Region().SplitAt(3)
	c := FromRegion[uint16](right)
	assert.Equal(t, bits[3:], bitsOf(c))
}

func TestForceAlign(t *testing.T) {
	rng := testutil.NewRNG(8)

	testAlign := func(t *testing.T, o order.Order, start int) {
		bits := rng.Bits(90)
		src := pushAll(New[uint8](WithOrder(o)), bits)
		sub, err := src.Slice(bitrange.From(start))
		require.NoError(t, err)

		mc := &BasicMetricsCollector{}
		b := FromRegion[uint8](sub, WithOrder(o), WithMetricsCollector(mc))
		b.ForceAlign()
		assert.Zero(t, b.Region().Head())
		assert.Equal(t, bits[start:], bitsOf(b))

		once := append([]uint8(nil), b.AsElements()...)
		b.ForceAlign()
		assert.Equal(t, once, b.AsElements())
		assert.Equal(t, bits[start:], bitsOf(b))

		if start%8 != 0 {
			assert.Equal(t, int64(1), mc.GetStats().AlignCount)
		}
	}

	for _, o := range []order.Order{order.Lsb0{}, order.Msb0{}} {
		for _, start := range []int{0, 1, 3, 7, 8, 13, 31} {
			testAlign(t, o, start)
		}
	}
}

func TestIntoRawParts(t *testing.T) {
	rng := testutil.NewRNG(3)
	bits := rng.Bits(45)
	heap := alloc.NewHeap()

	src := pushAll(New[uint8](WithAllocator(heap)), bits)
	sub, err := src.Slice(bitrange.From(6))
	require.NoError(t, err)
	b := FromRegion[uint8](sub, WithAllocator(heap))
	c := b.Capacity()

	parts := b.IntoRawParts()
	assert.True(t, b.IsEmpty())
	assert.Zero(t, b.Capacity())
	assert.Equal(t, uint(6), parts.Head)
	assert.Equal(t, 39, parts.Len)
	assert.Equal(t, 6, parts.Elements)

	back := FromRawParts(parts, WithAllocator(heap))
	assert.Equal(t, bits[6:], bitsOf(back))
	assert.Equal(t, c, back.Capacity())
	assert.Equal(t, uint(6), back.Region().Head())
	assert.Same(t, parts.Base, back.Region().Base())

	empty := New[uint32]().IntoRawParts()
	assert.Nil(t, empty.Base)
	assert.True(t, FromRawParts(empty).IsEmpty())

	assert.Panics(t, func() {
		FromRawParts(RawParts[uint8]{Base: parts.Base, Len: 1 << 20, Capacity: parts.Capacity})
	})
	assert.Panics(t, func() { FromRawParts(RawParts[uint8]{Head: 8}) })
}

func TestWithRawElements(t *testing.T) {
	t.Run("Grow", func(t *testing.T) {
		b := pushAll(New[uint8](), []bool{true, true, false})
		b.WithRawElements(func(v *RawVec[uint8]) {
			assert.Equal(t, 1, v.Len())
			v.Extend(0xAA, 0x55)
			assert.Equal(t, []uint8{0x03, 0xAA, 0x55}, v.Slice())
		})
		assert.Equal(t, []bool{true, true, false}, bitsOf(b))

		b.SetLen(24)
		assert.Equal(t, []uint8{0x03, 0xAA, 0x55}, b.AsElements())
	})

	t.Run("TruncateClipsLength", func(t *testing.T) {
		b := Repeat[uint16](true, 40)
		b.WithRawElements(func(v *RawVec[uint16]) {
			v.Truncate(1)
		})
		assert.Equal(t, 16, b.Len())
	})

	t.Run("ReleasesOnPanic", func(t *testing.T) {
		b := Repeat[uint8](true, 12)
		assert.Panics(t, func() {
			b.WithRawElements(func(*RawVec[uint8]) { panic("boom") })
		})
		assert.Equal(t, 12, b.Len())
		assert.True(t, b.Get(11))
	})
}

func TestClone(t *testing.T) {
	b := pushAll(New[uint64](), []bool{false, true, true})
	c := b.Clone()
	c.Set(0, true)

	assert.Equal(t, []bool{false, true, true}, bitsOf(b))
	assert.Equal(t, []bool{true, true, true}, bitsOf(c))
	assert.True(t, New[uint8]().Clone().IsEmpty())
}

func TestRelease(t *testing.T) {
	mc := &BasicMetricsCollector{}
	b := Repeat[uint32](true, 100, WithMetricsCollector(mc))
	b.Release()

	assert.True(t, b.IsEmpty())
	assert.Zero(t, b.Capacity())
	assert.Nil(t, b.AsElements())

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.FreeCount)
	assert.Equal(t, stats.AllocBytes, stats.FreeBytes)

	b.Release()
	b.Push(true)
	assert.Equal(t, []bool{true}, bitsOf(b))
}

func TestOffHeap(t *testing.T) {
	rng := testutil.NewRNG(17)
	bits := rng.Bits(5000)

	b := pushAll(New[uint16](WithOffHeap()), bits)
	defer b.Release()
	assert.Equal(t, bits, bitsOf(b))

	c := b.Clone()
	defer c.Release()
	assert.Equal(t, bits, bitsOf(c))
}

func TestString(t *testing.T) {
	b := Repeat[uint8](true, 5)
	assert.Equal(t, "bitvec.Buffer[8-bit](len=5 cap=64 head=0)", b.String())
}
