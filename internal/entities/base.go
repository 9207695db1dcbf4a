package entities

import "time"

// base holds the fields and behavior common to every entity variant. It is
// embedded, never used standalone.
type base struct {
	id            string
	arrivalTime   time.Time
	departureHour float64
	rating        float64
	expressPass   bool

	hasQueueEntry  bool
	queueEntryTime time.Time

	visited map[string]bool
}

func newBase(id string, arrivalTime time.Time, departureHour float64) base {
	return base{
		id:            id,
		arrivalTime:   arrivalTime,
		departureHour: departureHour,
		rating:        10.0,
		visited:       make(map[string]bool),
	}
}

func (b *base) ID() string               { return b.id }
func (b *base) DepartureHour() float64   { return b.departureHour }
func (b *base) Rating() float64          { return b.rating }
func (b *base) ExpressPass() bool        { return b.expressPass }
func (b *base) SetExpressPass(v bool)    { b.expressPass = v }
func (b *base) ArrivalTime() time.Time   { return b.arrivalTime }

func (b *base) IncreaseRating(amount float64) {
	b.rating += amount
}

// DecreaseRating lowers the rating by amount, floored at zero.
func (b *base) DecreaseRating(amount float64) {
	b.rating -= amount
	if b.rating < 0 {
		b.rating = 0
	}
}

func (b *base) HasVisited(facility string) bool { return b.visited[facility] }
func (b *base) MarkVisited(facility string)     { b.visited[facility] = true }

func (b *base) QueueEntryTime() (time.Time, bool) { return b.queueEntryTime, b.hasQueueEntry }

func (b *base) SetQueueEntryTime(t time.Time) {
	b.queueEntryTime = t
	b.hasQueueEntry = true
}

func (b *base) ClearQueueEntryTime() {
	b.hasQueueEntry = false
}
