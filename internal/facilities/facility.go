// Package facilities implements the admission state machine for every
// ride, Reception, and the restaurants: each encapsulates its own queues,
// any private resources (tubes, slide lanes, instructors), and the rule
// deciding when to promote a queued entity into service.
package facilities

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/internal/queue"
)

// SizeOf looks up an entity's group size by ID. Facilities stay decoupled
// from the entities package by taking this as a callback rather than an
// import.
type SizeOf func(entityID string) int

// Admission is one entity (or, for Pipes River, a tube-sharing pair)
// promoted from a queue into service.
type Admission struct {
	EntityID       string
	ServiceMinutes float64
	// PartnerID is set for Pipes River tube-sharing admissions.
	PartnerID string
	// Instructor identifies the Snorkel Tour instructor running this
	// admission; -1 when not applicable.
	Instructor int
}

// Facility is the state shared by every ride: its two queues, age/
// adrenaline metadata, and the set of entities currently in service.
type Facility struct {
	Name            string
	Capacity        int
	AgeLimit        float64 // minimum age required; 0 = no restriction
	AdrenalineLevel int
	// IsKidsOnly flags the one facility ("Kids Pool") that SingleVisitor
	// routing excludes on repeat visits — a capability flag rather than
	// a name comparison.
	IsKidsOnly bool

	Regular *queue.Queue
	Express *queue.Queue

	InService map[string]bool
	// inServiceOrder records admission order so force-close can drain a
	// facility deterministically instead of in map-iteration order.
	inServiceOrder []string
}

// NewFacility builds the shared facility state. activeHours feeds the
// queues' daily length-average normalization.
func NewFacility(name string, capacity int, ageLimit float64, adrenaline int, activeHours float64) Facility {
	return Facility{
		Name:            name,
		Capacity:        capacity,
		AgeLimit:        ageLimit,
		AdrenalineLevel: adrenaline,
		Regular:         queue.New(name+"_regular", activeHours),
		Express:         queue.New(name+"_express", activeHours),
		InService:       make(map[string]bool),
	}
}

// TotalWaiting is the combined length of both queues, used by the router
// to pick the least-loaded eligible facility.
func (f *Facility) TotalWaiting() int {
	return f.Regular.Len() + f.Express.Len()
}

// Enqueue places an entity in the express queue if it holds a pass,
// otherwise the regular queue.
func (f *Facility) Enqueue(entityID string, express bool, now time.Time) {
	if express {
		f.Express.Enqueue(entityID, now)
	} else {
		f.Regular.Enqueue(entityID, now)
	}
}

// CloseDay closes out both queues' daily statistics.
func (f *Facility) CloseDay(now time.Time) {
	f.Regular.CloseDay(now)
	f.Express.CloseDay(now)
}

// admitToService marks an entity in service and appends it to the
// admission order every concrete facility's TryStart uses instead of
// writing InService directly.
func (f *Facility) admitToService(entityID string) {
	f.InService[entityID] = true
	f.inServiceOrder = append(f.inServiceOrder, entityID)
}

// releaseFromService clears an entity from service and from the
// admission order. A no-op if the entity isn't currently in service.
func (f *Facility) releaseFromService(entityID string) {
	if !f.InService[entityID] {
		return
	}
	delete(f.InService, entityID)
	for i, id := range f.inServiceOrder {
		if id == entityID {
			f.inServiceOrder = append(f.inServiceOrder[:i], f.inServiceOrder[i+1:]...)
			break
		}
	}
}

// InServiceIDs returns the entities currently in service in the order
// they were admitted — a deterministic alternative to ranging over
// InService directly, used when draining a facility at force-close.
func (f *Facility) InServiceIDs() []string {
	ids := make([]string, len(f.inServiceOrder))
	copy(ids, f.inServiceOrder)
	return ids
}
