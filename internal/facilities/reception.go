package facilities

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/internal/queue"
)

// Reception is the single line every arriving entity passes through
// before being routed to its first facility. It has a fixed number of
// clerks and one undifferentiated queue (no express priority here —
// express status only matters once an entity reaches a ride).
type Reception struct {
	NumClerks int
	ClerkBusy []bool
	Queue     *queue.Queue
}

// NewReception builds Reception with numClerks independent service
// counters.
func NewReception(numClerks int, activeHours float64) *Reception {
	return &Reception{
		NumClerks: numClerks,
		ClerkBusy: make([]bool, numClerks),
		Queue:     queue.New("reception", activeHours),
	}
}

func (r *Reception) freeClerk() (int, bool) {
	for i, busy := range r.ClerkBusy {
		if !busy {
			return i, true
		}
	}
	return 0, false
}

// Arrive admits the entity straight to a clerk if the line is empty and a
// clerk is idle; otherwise it joins the line.
func (r *Reception) Arrive(entityID string, now time.Time) (clerk int, started bool) {
	if r.Queue.Len() == 0 {
		if idx, ok := r.freeClerk(); ok {
			r.ClerkBusy[idx] = true
			return idx, true
		}
	}
	r.Queue.Enqueue(entityID, now)
	return -1, false
}

// EndService frees the given clerk and, if anyone is waiting, pulls the
// head of the line onto that same clerk.
func (r *Reception) EndService(clerk int, now time.Time) (nextEntityID string, started bool) {
	r.ClerkBusy[clerk] = false
	if r.Queue.Len() == 0 {
		return "", false
	}
	id, _, _ := r.Queue.Pop(now)
	r.ClerkBusy[clerk] = true
	return id, true
}

// CloseDay closes out the reception line's daily statistics.
func (r *Reception) CloseDay(now time.Time) {
	r.Queue.CloseDay(now)
}
