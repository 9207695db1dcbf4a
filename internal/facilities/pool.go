package facilities

import "time"

// HeadcountPool models Wave Pool and Kids Pool: capacity is a headcount
// rather than a slot count, and any number of independent groups share
// the water at once until capacity runs out.
type HeadcountPool struct {
	Facility

	occupancy int
	sizes     map[string]int
	// ServiceSample draws one admitted group's time in the pool.
	ServiceSample func() float64
}

// NewHeadcountPool builds a Wave Pool or Kids Pool with the given
// headcount capacity.
func NewHeadcountPool(name string, capacity int, ageLimit float64, adrenaline int, isKidsOnly bool, activeHours float64, serviceSample func() float64) *HeadcountPool {
	f := NewFacility(name, capacity, ageLimit, adrenaline, activeHours)
	f.IsKidsOnly = isKidsOnly
	return &HeadcountPool{
		Facility:      f,
		sizes:         make(map[string]int),
		ServiceSample: serviceSample,
	}
}

// TryStart runs a fixed-point admission loop: each pass scans express from
// the head for the first group that fits the remaining capacity and
// admits it, restarting the scan; once a pass over express admits
// nothing, the same scan runs over regular. The loop stops once neither
// queue can admit anyone.
func (p *HeadcountPool) TryStart(now time.Time, sizeOf SizeOf) []Admission {
	var admissions []Admission

	for {
		admitted := p.admitFirstFit(p.Express, now, sizeOf)
		if admitted == "" {
			admitted = p.admitFirstFit(p.Regular, now, sizeOf)
		}
		if admitted == "" {
			break
		}
		admissions = append(admissions, Admission{EntityID: admitted, ServiceMinutes: p.ServiceSample()})
	}

	return admissions
}

func (p *HeadcountPool) admitFirstFit(q queuePeeker, now time.Time, sizeOf SizeOf) string {
	remaining := p.Capacity - p.occupancy
	fits := func(id string) bool { return sizeOf(id) <= remaining }

	idx, ok := q.FindIndex(0, fits)
	if !ok {
		return ""
	}
	id, _ := q.PopAt(idx, now)
	size := sizeOf(id)
	p.occupancy += size
	p.sizes[id] = size
	p.admitToService(id)
	return id
}

// queuePeeker is the subset of queue.Queue's API HeadcountPool needs; it
// exists only so admitFirstFit can be called with either Express or
// Regular.
type queuePeeker interface {
	FindIndex(from int, pred func(string) bool) (int, bool)
	PopAt(i int, now time.Time) (string, bool)
}

// Release frees an entity's occupied headcount when it leaves the pool.
func (p *HeadcountPool) Release(entityID string) {
	p.releaseFromService(entityID)
	p.occupancy -= p.sizes[entityID]
	delete(p.sizes, entityID)
}
