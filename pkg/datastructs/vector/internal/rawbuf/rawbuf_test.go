package rawbuf

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Function: New()
// =============================================================================

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantCap int
		wantErr error
	}{
		{"zero_is_empty", 0, 0, nil},
		{"one_slot", 1, 1, nil},
		{"exact_capacity", 17, 17, nil},
		{"negative", -1, 0, ErrNegativeCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New[int64](nil, tt.n)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCap, b.Cap())
			assert.Equal(t, tt.wantCap*8, b.Size())
		})
	}
}

func TestNew_ZeroDoesNotCharge(t *testing.T) {
	a := NewAllocator(16)
	b, err := New[int64](a, 0)
	require.NoError(t, err)
	assert.Nil(t, b.slots)
	assert.Equal(t, 0, a.InUse())
	assert.Same(t, a, b.Allocator())
}

func TestNew_SlotsAreZeroed(t *testing.T) {
	b, err := New[string](nil, 4)
	require.NoError(t, err)
	for i := 0; i < b.Cap(); i++ {
		assert.Equal(t, "", *b.At(i))
	}
}

func TestNew_OutOfMemory(t *testing.T) {
	t.Run("budget_exceeded", func(t *testing.T) {
		a := NewAllocator(64)
		_, err := New[int64](a, 9)
		require.ErrorIs(t, err, ErrOutOfMemory)
		assert.Equal(t, 0, a.InUse(), "failed request must not stay charged")
	})

	t.Run("budget_exact", func(t *testing.T) {
		a := NewAllocator(64)
		b, err := New[int64](a, 8)
		require.NoError(t, err)
		assert.Equal(t, 8, b.Cap())
		assert.Equal(t, 64, a.InUse())
	})

	t.Run("size_overflow", func(t *testing.T) {
		_, err := New[int64](nil, math.MaxInt)
		require.ErrorIs(t, err, ErrOutOfMemory)
	})

	t.Run("runtime_refusal", func(t *testing.T) {
		a := NewAllocator(0)
		_, err := New[byte](a, math.MaxInt)
		require.ErrorIs(t, err, ErrOutOfMemory)
		assert.Equal(t, 0, a.InUse())
	})
}

// =============================================================================
// Method: Release()
// =============================================================================

func TestRelease(t *testing.T) {
	a := NewAllocator(0)
	b, err := New[int32](a, 10)
	require.NoError(t, err)
	assert.Equal(t, 40, a.InUse())

	b.Release()
	assert.Equal(t, 0, b.Cap())
	assert.Equal(t, 0, a.InUse())
	assert.Equal(t, 40, a.Peak())

	// Second release is a no-op.
	b.Release()
	assert.Equal(t, 0, a.InUse())
}

func TestRelease_DoesNotTouchValues(t *testing.T) {
	b, err := New[*int](nil, 1)
	require.NoError(t, err)
	v := 7
	*b.At(0) = &v
	slots := b.slots

	b.Release()
	assert.Equal(t, &v, slots[0], "release must not clear element values")
}

// =============================================================================
// Method: At() and Slice()
// =============================================================================

func TestAt(t *testing.T) {
	b, err := New[int](nil, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		*b.At(i) = i * 10
	}
	assert.Equal(t, []int{0, 10, 20}, b.Slice(0, 3))
	assert.Equal(t, []int{10}, b.Slice(1, 2))
	assert.Equal(t, 1, cap(b.Slice(1, 2)), "slice must be capped")
}

func TestAt_OutOfRangePanics(t *testing.T) {
	b, err := New[int](nil, 2)
	require.NoError(t, err)
	assert.Panics(t, func() { b.At(2) })
	assert.Panics(t, func() { b.At(-1) })
}

// =============================================================================
// Method: Swap(), Take(), MoveFrom()
// =============================================================================

func TestSwap(t *testing.T) {
	small, _ := New[int](nil, 1)
	big, _ := New[int](nil, 5)
	*small.At(0) = 1
	*big.At(4) = 5

	small.Swap(big)
	assert.Equal(t, 5, small.Cap())
	assert.Equal(t, 1, big.Cap())
	assert.Equal(t, 5, *small.At(4))
	assert.Equal(t, 1, *big.At(0))
}

func TestSwap_CarriesAllocator(t *testing.T) {
	a1, a2 := NewAllocator(0), NewAllocator(0)
	b1, _ := New[int64](a1, 2)
	b2, _ := New[int64](a2, 4)

	b1.Swap(b2)
	b1.Release()
	assert.Equal(t, 16, a1.InUse())
	assert.Equal(t, 0, a2.InUse(), "released block must credit the allocator it was charged to")
}

func TestTake(t *testing.T) {
	b, _ := New[int](nil, 3)
	*b.At(2) = 9

	moved := b.Take()
	assert.Equal(t, 0, b.Cap())
	assert.Equal(t, 3, moved.Cap())
	assert.Equal(t, 9, *moved.At(2))
}

func TestMoveFrom(t *testing.T) {
	a := NewAllocator(0)
	dst, _ := New[int64](a, 2)
	src, _ := New[int64](a, 4)
	*src.At(3) = 42
	assert.Equal(t, 48, a.InUse())

	dst.MoveFrom(src)
	assert.Equal(t, 4, dst.Cap())
	assert.Equal(t, 0, src.Cap())
	assert.Equal(t, int64(42), *dst.At(3))
	assert.Equal(t, 32, a.InUse(), "destination block must be released first")
}

func TestMoveFrom_Self(t *testing.T) {
	b, _ := New[int](nil, 2)
	b.MoveFrom(b)
	assert.Equal(t, 2, b.Cap())
}

// =============================================================================
// Allocator
// =============================================================================

func TestAllocator_Nil(t *testing.T) {
	var a *Allocator
	assert.Equal(t, 0, a.Limit())
	assert.Equal(t, 0, a.InUse())
	assert.Equal(t, 0, a.Peak())
	assert.NoError(t, a.charge(1<<20))
	assert.NotPanics(t, func() { a.credit(1 << 20) })
}

func TestAllocator_NegativeLimit(t *testing.T) {
	a := NewAllocator(-5)
	assert.Equal(t, 0, a.Limit())
	assert.NoError(t, a.charge(1<<20))
}

func TestAllocator_OverCreditPanics(t *testing.T) {
	a := NewAllocator(0)
	assert.Panics(t, func() { a.credit(1) })
}

func TestAllocator_ErrorMessage(t *testing.T) {
	a := NewAllocator(8)
	err := a.charge(16)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfMemory))
	assert.Contains(t, err.Error(), "limit 8")
}
