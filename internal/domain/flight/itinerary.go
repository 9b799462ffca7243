package flight

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Layover admission band and path cap. Legs closer than MinLayover are not
// humanly connectable; legs further apart than MaxLayover are not a
// connection anymore.
const (
	MinLayover  = 30 * time.Minute
	MaxLayover  = 24 * time.Hour
	MaxSegments = 3
)

// Candidate retrieval window relative to the start of the search day. The
// asymmetry is deliberate: the back edge tolerates overnight departures, the
// wide front edge supplies legs usable as second and third segments. Tests
// pin these values; narrowing them silently drops valid itineraries.
const (
	CandidateWindowBefore = 24 * time.Hour
	CandidateWindowAfter  = 48 * time.Hour
)

const (
	CategoryCheapest = "cheapest"
	CategoryFastest  = "fastest"
)

// CandidateWindow returns the half-open departure interval legs must fall in
// to be considered for a search on searchDate.
func CandidateWindow(searchDate time.Time) (from, to time.Time) {
	day := time.Date(searchDate.Year(), searchDate.Month(), searchDate.Day(), 0, 0, 0, 0, searchDate.Location())
	return day.Add(-CandidateWindowBefore), day.Add(CandidateWindowAfter)
}

// Segment is a leg placed within an itinerary. Layover is the gap preceding
// the leg; it is meaningless for the first segment (HasLayover false).
type Segment struct {
	Leg        Leg
	Layover    time.Duration
	HasLayover bool
}

// Itinerary is an ordered origin-to-destination chain of segments. It is
// transient: built per search request, never persisted.
type Itinerary struct {
	ID         uuid.UUID
	Segments   []Segment
	CostCents  int64
	Duration   time.Duration
	Categories []string
}

func (it Itinerary) TotalDuration() time.Duration {
	if len(it.Segments) == 0 {
		return 0
	}
	first := it.Segments[0].Leg
	last := it.Segments[len(it.Segments)-1].Leg
	return last.Arrival.Sub(first.Departure)
}

func (it Itinerary) legPriceSum() int64 {
	var sum int64
	for _, seg := range it.Segments {
		sum += seg.Leg.PriceCents
	}
	return sum
}

func (it Itinerary) IsCheapest() bool { return it.hasCategory(CategoryCheapest) }
func (it Itinerary) IsFastest() bool  { return it.hasCategory(CategoryFastest) }

func (it Itinerary) hasCategory(c string) bool {
	for _, have := range it.Categories {
		if have == c {
			return true
		}
	}
	return false
}

type pathState struct {
	location   string
	arrival    time.Time
	hasArrival bool
	segments   []Segment
}

// BuildItineraries enumerates every viable itinerary from origin to
// destination over the candidate legs: breadth-first, level-by-level, so
// direct flights surface before one-stop and one-stop before two-stop.
// A path stops expanding once it reaches the destination or the segment cap.
func BuildItineraries(legs []Leg, origin, destination string) []Itinerary {
	byOrigin := make(map[string][]Leg, len(legs))
	for _, l := range legs {
		byOrigin[l.Origin] = append(byOrigin[l.Origin], l)
	}

	var itineraries []Itinerary
	queue := []pathState{{location: origin}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, leg := range byOrigin[cur.location] {
			var seg Segment
			if cur.hasArrival {
				layover := leg.Departure.Sub(cur.arrival)
				if layover < MinLayover || layover > MaxLayover {
					continue
				}
				seg = Segment{Leg: leg, Layover: layover, HasLayover: true}
			} else {
				seg = Segment{Leg: leg}
			}

			segments := make([]Segment, len(cur.segments), len(cur.segments)+1)
			copy(segments, cur.segments)
			segments = append(segments, seg)

			if leg.Destination == destination {
				itineraries = append(itineraries, Itinerary{
					ID:       uuid.New(),
					Segments: segments,
				})
				continue
			}

			if len(segments) >= MaxSegments {
				continue
			}
			queue = append(queue, pathState{
				location:   leg.Destination,
				arrival:    leg.Arrival,
				hasArrival: true,
				segments:   segments,
			})
		}
	}

	return itineraries
}

// RankItineraries attaches cost and duration metrics, tags every itinerary
// matching the global minimum cost as cheapest and the global minimum
// duration as fastest (ties are not broken), and orders the result:
// tagged itineraries first, then ascending by cost, stable within groups.
func RankItineraries(itineraries []Itinerary, passengers int) []Itinerary {
	if len(itineraries) == 0 {
		return itineraries
	}

	for i := range itineraries {
		itineraries[i].CostCents = itineraries[i].legPriceSum() * int64(passengers)
		itineraries[i].Duration = itineraries[i].TotalDuration()
	}

	minCost := itineraries[0].CostCents
	minDuration := itineraries[0].Duration
	for _, it := range itineraries[1:] {
		if it.CostCents < minCost {
			minCost = it.CostCents
		}
		if it.Duration < minDuration {
			minDuration = it.Duration
		}
	}

	for i := range itineraries {
		itineraries[i].Categories = nil
		if itineraries[i].CostCents == minCost {
			itineraries[i].Categories = append(itineraries[i].Categories, CategoryCheapest)
		}
		if itineraries[i].Duration == minDuration {
			itineraries[i].Categories = append(itineraries[i].Categories, CategoryFastest)
		}
	}

	sort.SliceStable(itineraries, func(i, j int) bool {
		ti, tj := len(itineraries[i].Categories) > 0, len(itineraries[j].Categories) > 0
		if ti != tj {
			return ti
		}
		return itineraries[i].CostCents < itineraries[j].CostCents
	})

	return itineraries
}
