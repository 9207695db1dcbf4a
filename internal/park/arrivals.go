package park

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/internal/engine"
	"github.com/dror777-a11y/waterpark-sim/internal/entities"
)

// scheduleInitialArrivals seeds the very first arrival of each variant:
// Family and SingleVisitor streams open at park-open, TeenGroup an hour
// later, mirroring the original implementation's one-shot seed rather
// than delaying the first arrival by a sampled inter-arrival gap. It
// also arms the first EndOfDay event.
func (p *Park) scheduleInitialArrivals(start time.Time) {
	p.sched.Schedule(&engine.Event{Type: engine.EventFamilyArrival, Time: start, Instructor: -1, Slot: -1})
	p.sched.Schedule(&engine.Event{Type: engine.EventSingleArrival, Time: start, Instructor: -1, Slot: -1})
	p.sched.Schedule(&engine.Event{Type: engine.EventTeenGroupArrival, Time: start.Add(time.Hour), Instructor: -1, Slot: -1})

	dayEnd := time.Date(start.Year(), start.Month(), start.Day(), 19, 0, 0, 0, start.Location())
	if !dayEnd.After(start) {
		dayEnd = dayEnd.Add(24 * time.Hour)
	}
	p.sched.Schedule(&engine.Event{Type: engine.EventEndOfDay, Time: dayEnd, Instructor: -1, Slot: -1})
}

func (p *Park) registerArrival(e entities.Entity) {
	p.entities[e.ID()] = e
	p.result.RecordArrival(e.GroupSize())
	p.rep.IncArrivals(string(e.Kind()), e.GroupSize())
}

func (p *Park) handleFamilyArrival(s *engine.Scheduler, ev *engine.Event) error {
	now := s.Now()
	f := entities.NewFamily(p.sam, now)
	p.registerArrival(f)
	p.admitToReception(s, f.ID(), now)

	next := now.Add(minutesToDuration(p.sam.FamilyInterArrival()))
	if hourFraction(next) < 12.0 {
		s.Schedule(&engine.Event{Type: engine.EventFamilyArrival, Time: next, Instructor: -1, Slot: -1})
	}
	return nil
}

func (p *Park) handleTeenGroupArrival(s *engine.Scheduler, ev *engine.Event) error {
	now := s.Now()
	t := entities.NewTeenGroup(p.sam, now)
	p.registerArrival(t)
	p.admitToReception(s, t.ID(), now)

	next := now.Add(minutesToDuration(p.sam.TeenInterArrival()))
	if hourFraction(next) >= 10.0 && hourFraction(next) < 16.0 {
		s.Schedule(&engine.Event{Type: engine.EventTeenGroupArrival, Time: next, Instructor: -1, Slot: -1})
	}
	return nil
}

func (p *Park) handleSingleArrival(s *engine.Scheduler, ev *engine.Event) error {
	now := s.Now()
	v := entities.NewSingleVisitor(p.sam, now)
	p.registerArrival(v)
	p.admitToReception(s, v.ID(), now)

	next := now.Add(minutesToDuration(p.sam.SingleInterArrival()))
	if hourFraction(next) <= 18.5 {
		s.Schedule(&engine.Event{Type: engine.EventSingleArrival, Time: next, Instructor: -1, Slot: -1})
	}
	return nil
}
