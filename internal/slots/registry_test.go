package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry(5)

	require.Equal(t, 5, r.Total())
	for n := 1; n <= 5; n++ {
		s := r.ByNumber(n)
		require.NotNil(t, s)
		assert.Equal(t, n, s.Number)
		assert.False(t, s.Occupied)
	}
	assert.Equal(t, 0, r.CountOccupied())
	assert.Equal(t, 5, r.CountAvailable())
}

func TestNewRegistryDefaultsOnNonPositiveTotal(t *testing.T) {
	assert.Equal(t, domain.DefaultTotalSlots, NewRegistry(0).Total())
	assert.Equal(t, domain.DefaultTotalSlots, NewRegistry(-3).Total())
}

func TestByNumberOutOfRange(t *testing.T) {
	r := NewRegistry(3)

	assert.Nil(t, r.ByNumber(0))
	assert.Nil(t, r.ByNumber(4))
	assert.Nil(t, r.ByNumber(-1))
}

func TestSetOccupied(t *testing.T) {
	r := NewRegistry(3)

	require.True(t, r.SetOccupied(2, true))
	assert.True(t, r.IsOccupied(2))
	assert.Equal(t, 1, r.CountOccupied())
	assert.Equal(t, 2, r.CountAvailable())
	assert.Equal(t, []int{1, 3}, r.AvailableNumbers())

	require.True(t, r.SetOccupied(2, false))
	assert.False(t, r.IsOccupied(2))
	assert.Equal(t, []int{1, 2, 3}, r.AvailableNumbers())

	// Unknown slot numbers are a no-op.
	assert.False(t, r.SetOccupied(7, true))
	assert.Equal(t, 0, r.CountOccupied())
}

func TestReset(t *testing.T) {
	r := NewRegistry(4)
	r.SetOccupied(1, true)
	r.SetOccupied(3, true)

	r.Reset()

	assert.Equal(t, 0, r.CountOccupied())
	assert.Equal(t, []int{1, 2, 3, 4}, r.AvailableNumbers())
}

func TestSnapshotIsACopy(t *testing.T) {
	r := NewRegistry(2)
	snap := r.Snapshot()
	snap[0].Occupied = true

	assert.False(t, r.IsOccupied(1))
}
