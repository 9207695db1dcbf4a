package facilities

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/internal/queue"
)

// BatchSlide models Big Pipes Slide and Small Pipes Slide: a single batch
// rides at a time, and a batch may only start once its headcount sums to
// exactly BatchSize.
type BatchSlide struct {
	Facility

	BatchSize int
	// ServiceSample draws one rider's service duration; Big Pipes draws
	// from Normal(4.8, 1.8322), Small Pipes from Exponential(2.10706).
	ServiceSample func() float64
}

// NewBatchSlide builds a Big or Small Pipes Slide.
func NewBatchSlide(name string, batchSize int, ageLimit float64, adrenaline int, activeHours float64, serviceSample func() float64) *BatchSlide {
	return &BatchSlide{
		Facility:      NewFacility(name, batchSize, ageLimit, adrenaline, activeHours),
		BatchSize:     batchSize,
		ServiceSample: serviceSample,
	}
}

// batchCandidate is one queued group considered for admission, tagged with
// the queue it currently sits in so a chosen candidate can be popped from
// the right place.
type batchCandidate struct {
	queue *queue.Queue
	id    string
	size  int
}

// TryStart assembles the next batch only when the slide sits empty. It
// searches express, then regular, in queue order for a subset of groups
// whose sizes sum to exactly BatchSize — not merely a contiguous prefix,
// since an overshooting group partway down the line must be skippable in
// favor of a smaller one further back. Nothing is popped from either
// queue unless an exact-sum subset is found, so there is nothing to roll
// back on failure.
func (b *BatchSlide) TryStart(now time.Time, sizeOf SizeOf) []Admission {
	if len(b.InService) > 0 {
		return nil
	}

	var pool []batchCandidate
	for i := 0; i < b.Express.Len(); i++ {
		id := b.Express.At(i)
		pool = append(pool, batchCandidate{b.Express, id, sizeOf(id)})
	}
	for i := 0; i < b.Regular.Len(); i++ {
		id := b.Regular.At(i)
		pool = append(pool, batchCandidate{b.Regular, id, sizeOf(id)})
	}

	chosen := exactSubsetSum(pool, b.BatchSize)
	if chosen == nil {
		return nil
	}

	var admissions []Admission
	for _, c := range chosen {
		idx, _ := c.queue.FindIndex(0, func(id string) bool { return id == c.id })
		poppedID, _ := c.queue.PopAt(idx, now)
		b.admitToService(poppedID)
		admissions = append(admissions, Admission{EntityID: poppedID, ServiceMinutes: b.ServiceSample()})
	}
	return admissions
}

// exactSubsetSum finds the first subset of items (scanned in order, trying
// to include each item before skipping it) whose sizes sum to exactly
// target, or nil if no such subset exists. Preferring inclusion keeps
// earlier-queued groups in the result whenever they fit, matching the
// batch assembly's queue-order priority.
func exactSubsetSum(items []batchCandidate, target int) []batchCandidate {
	chosen := make([]batchCandidate, 0, len(items))

	var search func(i, remaining int) bool
	search = func(i, remaining int) bool {
		if remaining == 0 {
			return true
		}
		if i >= len(items) {
			return false
		}
		item := items[i]
		if item.size <= remaining {
			chosen = append(chosen, item)
			if search(i+1, remaining-item.size) {
				return true
			}
			chosen = chosen[:len(chosen)-1]
		}
		return search(i+1, remaining)
	}

	if search(0, target) {
		return chosen
	}
	return nil
}

// Release removes an entity from service when its ride ends.
func (b *BatchSlide) Release(entityID string) {
	b.releaseFromService(entityID)
}
