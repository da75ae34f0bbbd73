package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt64ToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Int64ToInt(0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid max int32", func(t *testing.T) {
		got, err := Int64ToInt(math.MaxInt32)
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt32, got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := Int64ToInt(-1)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("platform limit", func(t *testing.T) {
		_, err := Int64ToInt(math.MaxInt64)
		if math.MaxInt == math.MaxInt64 {
			assert.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, ErrOverflow)
		}
	})
}

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid max int32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxInt32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxInt32), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestUint32ToInt(t *testing.T) {
	got, err := Uint32ToInt(4096)
	assert.NoError(t, err)
	assert.Equal(t, 4096, got)
}
