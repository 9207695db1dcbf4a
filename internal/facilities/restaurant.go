package facilities

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/internal/queue"
)

// RestaurantKind names the three dining options.
type RestaurantKind int

const (
	Burger RestaurantKind = iota
	Pizza
	Salad
)

func (k RestaurantKind) String() string {
	switch k {
	case Burger:
		return "Burger"
	case Pizza:
		return "Pizza"
	case Salad:
		return "Salad"
	default:
		return "unknown"
	}
}

// Restaurant is a single-line, multi-station dining facility.
type Restaurant struct {
	Kind        RestaurantKind
	NumStations int
	StationBusy []bool
	Queue       *queue.Queue
}

// NewRestaurant builds a restaurant of the given kind with numStations
// independent service counters.
func NewRestaurant(kind RestaurantKind, numStations int, activeHours float64) *Restaurant {
	return &Restaurant{
		Kind:        kind,
		NumStations: numStations,
		StationBusy: make([]bool, numStations),
		Queue:       queue.New(kind.String(), activeHours),
	}
}

func (r *Restaurant) freeStation() (int, bool) {
	for i, busy := range r.StationBusy {
		if !busy {
			return i, true
		}
	}
	return 0, false
}

// Arrive seats the entity immediately if the line is empty and a station
// is free; otherwise it joins the line.
func (r *Restaurant) Arrive(entityID string, now time.Time) (station int, started bool) {
	if r.Queue.Len() == 0 {
		if idx, ok := r.freeStation(); ok {
			r.StationBusy[idx] = true
			return idx, true
		}
	}
	r.Queue.Enqueue(entityID, now)
	return -1, false
}

// EndService frees the given station and, if anyone is waiting, pulls the
// head of the line onto that same station.
func (r *Restaurant) EndService(station int, now time.Time) (nextEntityID string, started bool) {
	r.StationBusy[station] = false
	if r.Queue.Len() == 0 {
		return "", false
	}
	id, _, _ := r.Queue.Pop(now)
	r.StationBusy[station] = true
	return id, true
}

// CloseDay closes out this restaurant's daily statistics.
func (r *Restaurant) CloseDay(now time.Time) {
	r.Queue.CloseDay(now)
}

// Price is the meal cost for a party of groupSize, per spec's flat
// per-restaurant tariffs.
func Price(kind RestaurantKind, groupSize int) int {
	switch kind {
	case Burger:
		return 100 * groupSize
	case Pizza:
		if groupSize == 1 {
			return 40
		}
		return 100
	case Salad:
		return 65 * groupSize
	default:
		return 0
	}
}
