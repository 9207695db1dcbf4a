// Package stats collects the run-level outputs the external driver
// reads once a simulation ends: arrival/entry/completion counters,
// revenue, per-entity final ratings, and per-queue daily averages.
package stats

// RunResult is the sole result contract between the simulation core and
// an external driver: no error is ever surfaced, only these aggregated
// counters (spec.md §6, §7).
type RunResult struct {
	TotalPeopleArrived    int
	TotalEntitiesArrived  int
	TotalPeopleEntered    int
	TotalEntitiesEntered  int
	TotalPeopleCompleted  int
	TotalEntitiesCompleted int

	TotalRevenue int

	// Ratings holds one final rating per completed entity, in
	// completion order.
	Ratings []float64

	// Queues holds, per tracked queue name, its daily average length
	// and waiting-time series (one value per closed day).
	Queues map[string]QueueStats
}

// QueueStats is one queue's per-day rollup, mirroring
// internal/queue.Queue's DailyAvgLengths/DailyAvgWaits.
type QueueStats struct {
	DailyAvgLengths []float64
	DailyAvgWaits   []float64
}

// NewRunResult returns a zero-valued RunResult ready to accumulate.
func NewRunResult() *RunResult {
	return &RunResult{Queues: make(map[string]QueueStats)}
}

// RecordArrival counts one newly created entity and its member count.
func (r *RunResult) RecordArrival(groupSize int) {
	r.TotalEntitiesArrived++
	r.TotalPeopleArrived += groupSize
}

// RecordEntry counts one entity admitted past Reception.
func (r *RunResult) RecordEntry(groupSize int) {
	r.TotalEntitiesEntered++
	r.TotalPeopleEntered += groupSize
}

// RecordCompletion counts one entity leaving the park for good and
// appends its final rating.
func (r *RunResult) RecordCompletion(groupSize int, finalRating float64) {
	r.TotalEntitiesCompleted++
	r.TotalPeopleCompleted += groupSize
	r.Ratings = append(r.Ratings, finalRating)
}

// RecordRevenue books a charge (entry fee, express upsell, or meal
// price) against the run total.
func (r *RunResult) RecordRevenue(amount int) {
	r.TotalRevenue += amount
}

// RecordQueueClose copies a queue's freshly closed day into the run's
// per-queue series, keyed by the queue's name.
func (r *RunResult) RecordQueueClose(name string, avgLength, avgWait float64) {
	q := r.Queues[name]
	q.DailyAvgLengths = append(q.DailyAvgLengths, avgLength)
	q.DailyAvgWaits = append(q.DailyAvgWaits, avgWait)
	r.Queues[name] = q
}
