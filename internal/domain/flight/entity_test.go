//go:build unit

package flight_test

import (
	"testing"
	"time"

	"tripstack/internal/domain/flight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeg(t *testing.T) {
	dep := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	arr := dep.Add(2 * time.Hour)

	t.Run("valid leg", func(t *testing.T) {
		l, err := flight.NewLeg("NYC", "LAX", dep, arr, 30000, 180, 0)
		require.NoError(t, err)
		assert.Equal(t, 180, l.AvailableSeats())
		assert.Equal(t, 2*time.Hour, l.Duration())
	})

	t.Run("arrival not after departure", func(t *testing.T) {
		_, err := flight.NewLeg("NYC", "LAX", dep, dep, 30000, 180, 0)
		assert.ErrorIs(t, err, flight.ErrInvalidSchedule)
	})

	t.Run("booked seats exceed total", func(t *testing.T) {
		_, err := flight.NewLeg("NYC", "LAX", dep, arr, 30000, 180, 181)
		assert.ErrorIs(t, err, flight.ErrInvalidSeats)
	})

	t.Run("booked seats reduce availability", func(t *testing.T) {
		l, err := flight.NewLeg("NYC", "LAX", dep, arr, 30000, 180, 175)
		require.NoError(t, err)
		assert.Equal(t, 5, l.AvailableSeats())
	})
}
