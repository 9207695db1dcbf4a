package park

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/internal/engine"
	"github.com/dror777-a11y/waterpark-sim/internal/entities"
	"github.com/dror777-a11y/waterpark-sim/internal/router"
)

// admitToReception sends a freshly arrived entity to Reception,
// scheduling EventReceptionDone if a clerk picked it up immediately.
func (p *Park) admitToReception(s *engine.Scheduler, entityID string, now time.Time) {
	clerk, started := p.reception.Arrive(entityID, now)
	p.reportReceptionGauge()
	if started {
		p.scheduleReceptionDone(s, entityID, clerk, now)
	}
}

func (p *Park) scheduleReceptionDone(s *engine.Scheduler, entityID string, clerk int, now time.Time) {
	dur := p.sam.TicketTime() + p.sam.WristbandTime()
	s.Schedule(&engine.Event{
		Type:       engine.EventReceptionDone,
		Time:       now.Add(minutesToDuration(dur)),
		EntityID:   entityID,
		Instructor: -1,
		Slot:       clerk,
	})
}

func (p *Park) reportReceptionGauge() {
	p.rep.SetQueueLength("Reception", "regular", p.reception.Queue.Len())
}

// handleReceptionDone frees the clerk, books the entry fee, routes the
// entity to its first facility (or exits it with a rating penalty if
// none qualifies), then promotes the next entity waiting in line onto
// the same clerk.
func (p *Park) handleReceptionDone(s *engine.Scheduler, ev *engine.Event) error {
	now := s.Now()
	entity := p.mustEntity(ev.EntityID)

	nextID, started := p.reception.EndService(ev.Slot, now)
	p.reportReceptionGauge()

	p.result.RecordEntry(entity.GroupSize())
	p.rep.IncEntries(string(entity.Kind()), entity.GroupSize())

	revenue := entryRevenue(entity)
	p.result.RecordRevenue(revenue)
	p.rep.AddRevenue(float64(revenue))

	next := router.Select(entity, true, p.roster)
	if next == nil {
		entity.DecreaseRating(0.5)
		p.completeEntity(s, entity, now)
	} else {
		p.arriveAtFacility(s, entity, next.Name, now)
	}

	if started {
		p.scheduleReceptionDone(s, nextID, ev.Slot, now)
	}
	return nil
}

// arriveAtFacility schedules an ArriveAtFacility event for now rather
// than handling the queue join inline, keeping every state change
// routed through the event log.
func (p *Park) arriveAtFacility(s *engine.Scheduler, e entities.Entity, facilityName string, now time.Time) {
	s.Schedule(&engine.Event{
		Type:       engine.EventArriveAtFacility,
		Time:       now,
		EntityID:   e.ID(),
		FacilityID: facilityName,
		Instructor: -1,
		Slot:       -1,
	})
}

// entryRevenue is the one-time admission fee booked at EventReceptionDone:
// 150/adult + 75/kid for a Family, 150/head for everyone else, plus a
// flat 50/head express upsell.
func entryRevenue(e entities.Entity) int {
	var base int
	if f, ok := e.(*entities.Family); ok {
		base = 2*150 + len(f.KidsAges)*75
	} else {
		base = e.GroupSize() * 150
	}
	if e.ExpressPass() {
		base += 50 * e.GroupSize()
	}
	return base
}
