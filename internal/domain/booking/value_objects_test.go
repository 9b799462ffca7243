//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tripstack/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC)
}

func stay(t *testing.T, checkIn, checkOut int) booking.StayInterval {
	t.Helper()
	s, err := booking.NewStayInterval(day(checkIn), day(checkOut))
	require.NoError(t, err)
	return s
}

func TestNewStayInterval(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		s := stay(t, 10, 13)
		assert.Equal(t, 3, s.Nights())
	})

	t.Run("check-out equal to check-in rejected", func(t *testing.T) {
		_, err := booking.NewStayInterval(day(10), day(10))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("check-out before check-in rejected", func(t *testing.T) {
		_, err := booking.NewStayInterval(day(10), day(8))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("time-of-day is truncated", func(t *testing.T) {
		s, err := booking.NewStayInterval(
			day(10).Add(15*time.Hour+30*time.Minute),
			day(12).Add(9*time.Hour),
		)
		require.NoError(t, err)
		assert.Equal(t, day(10), s.CheckIn())
		assert.Equal(t, day(12), s.CheckOut())
		assert.Equal(t, 2, s.Nights())
	})

	t.Run("same day after truncation rejected", func(t *testing.T) {
		_, err := booking.NewStayInterval(day(10).Add(8*time.Hour), day(10).Add(20*time.Hour))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})
}

func TestStayIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a    [2]int
		b    [2]int
		want bool
	}{
		{"identical intervals", [2]int{10, 12}, [2]int{10, 12}, true},
		{"partial overlap", [2]int{10, 14}, [2]int{12, 16}, true},
		{"containment", [2]int{10, 20}, [2]int{12, 14}, true},
		{"one shared night", [2]int{10, 12}, [2]int{11, 13}, true},
		{"back to back stays do not overlap", [2]int{10, 12}, [2]int{12, 14}, false},
		{"back to back reversed", [2]int{12, 14}, [2]int{10, 12}, false},
		{"disjoint", [2]int{10, 12}, [2]int{20, 22}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := stay(t, tc.a[0], tc.a[1])
			b := stay(t, tc.b[0], tc.b[1])

			assert.Equal(t, tc.want, a.Overlaps(b))
			assert.Equal(t, tc.want, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}
