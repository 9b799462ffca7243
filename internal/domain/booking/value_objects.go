package booking

import (
	"errors"
	"time"
)

var ErrInvalidStayRange = errors.New("check-out must be after check-in")

const nightsPerDay = 24 * time.Hour

// StayInterval is a half-open date range [check-in, check-out): the guest
// holds the room on the check-in night and is gone by check-out, so
// back-to-back stays sharing a boundary date do not collide.
type StayInterval struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayInterval(checkIn, checkOut time.Time) (StayInterval, error) {
	checkIn = truncateToDay(checkIn)
	checkOut = truncateToDay(checkOut)
	if !checkOut.After(checkIn) {
		return StayInterval{}, ErrInvalidStayRange
	}
	return StayInterval{checkIn: checkIn, checkOut: checkOut}, nil
}

// ReconstructStayInterval rebuilds an interval from storage without
// re-validating; persisted rows already satisfy the invariant.
func ReconstructStayInterval(checkIn, checkOut time.Time) StayInterval {
	return StayInterval{checkIn: checkIn, checkOut: checkOut}
}

func (s StayInterval) CheckIn() time.Time  { return s.checkIn }
func (s StayInterval) CheckOut() time.Time { return s.checkOut }

func (s StayInterval) Nights() int {
	return int(s.checkOut.Sub(s.checkIn) / nightsPerDay)
}

// Overlaps reports whether two half-open intervals intersect:
// a.in < b.out AND a.out > b.in.
func (s StayInterval) Overlaps(other StayInterval) bool {
	return s.checkIn.Before(other.checkOut) && s.checkOut.After(other.checkIn)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
