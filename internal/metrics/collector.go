// Package metrics exposes the park's live counters and gauges through
// Prometheus client_golang, registered once and safe to scrape from an
// embedding process. The event-handling core uses only the narrow
// Reporter interface declared here, never Collector or Prometheus types,
// so the simulation stays a pure library.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Reporter is the subset of Collector the simulation core depends on.
// Keeping it narrow means handler code never needs to know it's talking
// to Prometheus specifically.
type Reporter interface {
	IncArrivals(kind string, count int)
	IncEntries(kind string, count int)
	IncCompletions(kind string, count int)
	AddRevenue(amount float64)
	SetQueueLength(facility, queueKind string, length int)
	SetOccupancy(facility string, occupied int)
}

// Collector is the Prometheus-backed Reporter implementation. Register
// it with a prometheus.Registerer once at startup (NewCollector does
// this via MustRegister against the supplied registerer).
type Collector struct {
	arrivals    *prometheus.CounterVec
	entries     *prometheus.CounterVec
	completions *prometheus.CounterVec
	revenue     prometheus.Counter
	queueLength *prometheus.GaugeVec
	occupancy   *prometheus.GaugeVec
}

// NewCollector builds and registers the park's metric families against
// reg. Pass prometheus.NewRegistry() for an isolated registry (tests,
// multiple runs in one process) or prometheus.DefaultRegisterer for a
// process-wide scrape endpoint.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		arrivals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "waterpark",
			Name:      "arrivals_total",
			Help:      "Total visitors (people) arrived, by entity kind.",
		}, []string{"kind"}),
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "waterpark",
			Name:      "entries_total",
			Help:      "Total visitors (people) admitted past reception, by entity kind.",
		}, []string{"kind"}),
		completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "waterpark",
			Name:      "completions_total",
			Help:      "Total visitors (people) that left the park, by entity kind.",
		}, []string{"kind"}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "waterpark",
			Name:      "revenue_total",
			Help:      "Total revenue booked across the run, in currency units.",
		}),
		queueLength: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "waterpark",
			Name:      "queue_length",
			Help:      "Current queue length, by facility and queue kind (regular/express).",
		}, []string{"facility", "queue"}),
		occupancy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "waterpark",
			Name:      "facility_occupancy",
			Help:      "Current in-service headcount or slot count, by facility.",
		}, []string{"facility"}),
	}

	reg.MustRegister(c.arrivals, c.entries, c.completions, c.revenue, c.queueLength, c.occupancy)
	return c
}

func (c *Collector) IncArrivals(kind string, count int) {
	c.arrivals.WithLabelValues(kind).Add(float64(count))
}

func (c *Collector) IncEntries(kind string, count int) {
	c.entries.WithLabelValues(kind).Add(float64(count))
}

func (c *Collector) IncCompletions(kind string, count int) {
	c.completions.WithLabelValues(kind).Add(float64(count))
}

func (c *Collector) AddRevenue(amount float64) {
	c.revenue.Add(amount)
}

func (c *Collector) SetQueueLength(facility, queueKind string, length int) {
	c.queueLength.WithLabelValues(facility, queueKind).Set(float64(length))
}

func (c *Collector) SetOccupancy(facility string, occupied int) {
	c.occupancy.WithLabelValues(facility).Set(float64(occupied))
}

// NoopReporter discards every call; used where a caller doesn't want
// metrics wired up (most tests).
type NoopReporter struct{}

func (NoopReporter) IncArrivals(string, int)            {}
func (NoopReporter) IncEntries(string, int)             {}
func (NoopReporter) IncCompletions(string, int)         {}
func (NoopReporter) AddRevenue(float64)                 {}
func (NoopReporter) SetQueueLength(string, string, int) {}
func (NoopReporter) SetOccupancy(string, int)           {}
