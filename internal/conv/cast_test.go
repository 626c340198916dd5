//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.Error(t, err)
	})

	t.Run("valid max uint32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := IntToUint32(math.MaxUint32 + 1)
		assert.Error(t, err)
	})
}

func TestUint64ToInt(t *testing.T) {
	t.Run("valid max int", func(t *testing.T) {
		got, err := Uint64ToInt(uint64(math.MaxInt))
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToInt(uint64(math.MaxInt) + 1)
		assert.Error(t, err)
	})
}

func TestAddInt(t *testing.T) {
	got, ok := AddInt(3, 4)
	assert.True(t, ok)
	assert.Equal(t, 7, got)

	_, ok = AddInt(math.MaxInt, 1)
	assert.False(t, ok)

	_, ok = AddInt(math.MinInt, -1)
	assert.False(t, ok)
}

func TestMulInt(t *testing.T) {
	got, ok := MulInt(6, 7)
	assert.True(t, ok)
	assert.Equal(t, 42, got)

	got, ok = MulInt(0, math.MaxInt)
	assert.True(t, ok)
	assert.Zero(t, got)

	_, ok = MulInt(math.MaxInt/2+1, 2)
	assert.False(t, ok)

	_, ok = MulInt(-1, 2)
	assert.False(t, ok)
}

func TestElementsFor(t *testing.T) {
	assert.Equal(t, 0, ElementsFor(0, 8))
	assert.Equal(t, 1, ElementsFor(1, 8))
	assert.Equal(t, 1, ElementsFor(8, 8))
	assert.Equal(t, 3, ElementsFor(20, 8))
	assert.Equal(t, 2, ElementsFor(65, 64))
	assert.Equal(t, 0, ElementsFor(-3, 8))
}

func TestByteSize(t *testing.T) {
	n, err := ByteSize(3, 8)
	assert.NoError(t, err)
	assert.Equal(t, 24, n)

	_, err = ByteSize(math.MaxInt, 2)
	assert.Error(t, err)
}
