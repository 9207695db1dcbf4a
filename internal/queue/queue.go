// Package queue implements the FIFO entity queue shared by Reception,
// every ride, and the restaurants. Each queue tracks a time-weighted
// length integral and per-entry wait durations so that per-day averages
// can be closed out at park close.
package queue

import "time"

// entry pairs a queued entity with the time it joined the queue.
type entry struct {
	entityID  string
	arrivedAt time.Time
}

// Queue is a FIFO of entities awaiting service, carrying the statistics
// needed to report daily average length and average wait time.
type Queue struct {
	Name string

	entries []entry

	activeHours float64 // length of the operating day, for length averaging
	lengthArea  float64 // area under the queue-length curve since last close
	lastSample  time.Time
	hasSample   bool
	waits       []float64

	DailyAvgLengths []float64
	DailyAvgWaits   []float64
}

// New creates an empty queue. activeHours is the duration of the
// operating day (10 for the 09:00-19:00 baseline), used to normalize the
// length integral into an average.
func New(name string, activeHours float64) *Queue {
	return &Queue{Name: name, activeHours: activeHours}
}

// Len returns the number of entities currently queued.
func (q *Queue) Len() int { return len(q.entries) }

// recordLength folds the interval since the last sample into the
// time-weighted area, then stamps the new sample time. Call this
// immediately before every length-changing operation.
func (q *Queue) recordLength(now time.Time) {
	if q.hasSample {
		hours := now.Sub(q.lastSample).Hours()
		q.lengthArea += float64(len(q.entries)) * hours
	}
	q.lastSample = now
	q.hasSample = true
}

// Enqueue appends an entity to the back of the queue.
func (q *Queue) Enqueue(entityID string, now time.Time) {
	q.recordLength(now)
	q.entries = append(q.entries, entry{entityID: entityID, arrivedAt: now})
}

// EnqueueFront inserts an entity at the front of the queue, preserving the
// order of everything already queued. No facility calls it: Big/Small
// Pipes Slide pick an exact batch before removing anyone.
func (q *Queue) EnqueueFront(entityID string, arrivedAt, now time.Time) {
	q.recordLength(now)
	q.entries = append([]entry{{entityID: entityID, arrivedAt: arrivedAt}}, q.entries...)
}

// Peek returns the ID of the entity at the front of the queue and whether
// one exists, without removing it.
func (q *Queue) Peek() (string, bool) {
	if len(q.entries) == 0 {
		return "", false
	}
	return q.entries[0].entityID, true
}

// Pop removes and returns the entity at the front of the queue along with
// its original arrival time, recording its wait duration.
func (q *Queue) Pop(now time.Time) (entityID string, arrivedAt time.Time, ok bool) {
	if len(q.entries) == 0 {
		return "", time.Time{}, false
	}
	q.recordLength(now)
	head := q.entries[0]
	q.entries = q.entries[1:]
	q.waits = append(q.waits, now.Sub(head.arrivedAt).Minutes())
	return head.entityID, head.arrivedAt, true
}

// Remove deletes a specific entity from the queue (used for abandonment),
// preserving the order of the remainder. It reports whether the entity
// was found.
func (q *Queue) Remove(entityID string, now time.Time) bool {
	q.recordLength(now)
	for i, e := range q.entries {
		if e.entityID == entityID {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the given entity is currently queued.
func (q *Queue) Contains(entityID string) bool {
	for _, e := range q.entries {
		if e.entityID == entityID {
			return true
		}
	}
	return false
}

// FindIndex returns the position of the first entity satisfying pred,
// scanning from the front, skipping the first `from` entries.
func (q *Queue) FindIndex(from int, pred func(entityID string) bool) (int, bool) {
	for i := from; i < len(q.entries); i++ {
		if pred(q.entries[i].entityID) {
			return i, true
		}
	}
	return 0, false
}

// At returns the entity ID at position i without removing it.
func (q *Queue) At(i int) string { return q.entries[i].entityID }

// PopAt removes the entry at position i and records its wait duration,
// the same as Pop does for the head. Used where a facility admits an
// entity out of strict queue order (e.g. a headcount pool skipping a
// too-large head to admit a smaller group behind it).
func (q *Queue) PopAt(i int, now time.Time) (entityID string, ok bool) {
	if i < 0 || i >= len(q.entries) {
		return "", false
	}
	q.recordLength(now)
	e := q.entries[i]
	q.entries = append(q.entries[:i], q.entries[i+1:]...)
	q.waits = append(q.waits, now.Sub(e.arrivedAt).Minutes())
	return e.entityID, true
}

// RemoveAt deletes the entry at position i, recording the removal against
// the length integral but not against wait-time statistics. Pipes River
// uses it to take a tube partner out of line; that partner's wait is not
// recorded.
func (q *Queue) RemoveAt(i int, now time.Time) (entityID string, arrivedAt time.Time) {
	q.recordLength(now)
	e := q.entries[i]
	q.entries = append(q.entries[:i], q.entries[i+1:]...)
	return e.entityID, e.arrivedAt
}

// CloseDay finalizes this queue's statistics for the current day and
// resets the running counters for the next one.
func (q *Queue) CloseDay(now time.Time) {
	q.recordLength(now)

	var avgLength float64
	if q.activeHours > 0 {
		avgLength = q.lengthArea / q.activeHours
	}
	q.DailyAvgLengths = append(q.DailyAvgLengths, avgLength)

	var avgWait float64
	if len(q.waits) > 0 {
		sum := 0.0
		for _, w := range q.waits {
			sum += w
		}
		avgWait = sum / float64(len(q.waits))
	}
	q.DailyAvgWaits = append(q.DailyAvgWaits, avgWait)

	q.lengthArea = 0
	q.hasSample = false
	q.waits = nil
}
