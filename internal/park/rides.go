package park

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/internal/engine"
	"github.com/dror777-a11y/waterpark-sim/internal/entities"
	"github.com/dror777-a11y/waterpark-sim/internal/facilities"
	"github.com/dror777-a11y/waterpark-sim/internal/invariant"
)

// buildFacilities constructs Reception, every ride, and the three
// restaurants, in the fixed insertion order that also breaks router
// ties between equally-loaded candidates.
func (p *Park) buildFacilities() {
	p.reception = facilities.NewReception(p.cfg.ReceptionClerks(), activeHours)

	pipesRiver := facilities.NewPipesRiver(60, 0, 3, activeHours)
	p.addRide(pipesRiver.Name, &pipesRiver.Facility,
		func(now time.Time) []facilities.Admission {
			ads := pipesRiver.TryStart(now, p.sizeOf)
			for i := range ads {
				ads[i].ServiceMinutes = p.sam.PipesRiverService()
			}
			return ads
		},
		pipesRiver.Release)

	singleSlide := facilities.NewSingleSlide(2, 0, 3, activeHours)
	p.addRide(singleSlide.Name, &singleSlide.Facility,
		func(now time.Time) []facilities.Admission { return singleSlide.TryStart(now) },
		singleSlide.Release)

	bigPipes := facilities.NewBatchSlide("Big Pipes Slide", 8, 0, 4, activeHours, p.sam.BigPipesService)
	p.addRide(bigPipes.Name, &bigPipes.Facility,
		func(now time.Time) []facilities.Admission { return bigPipes.TryStart(now, p.sizeOf) },
		bigPipes.Release)

	smallPipes := facilities.NewBatchSlide("Small Pipes Slide", 3, 0, 2, activeHours, p.sam.SmallPipesService)
	p.addRide(smallPipes.Name, &smallPipes.Facility,
		func(now time.Time) []facilities.Admission { return smallPipes.TryStart(now, p.sizeOf) },
		smallPipes.Release)

	wavePool := facilities.NewHeadcountPool("Wave Pool", p.cfg.WavePoolCapacity(), 0, 4, false, activeHours, p.sam.WavePoolService)
	p.addRide(wavePool.Name, &wavePool.Facility,
		func(now time.Time) []facilities.Admission { return wavePool.TryStart(now, p.sizeOf) },
		wavePool.Release)

	kidsPool := facilities.NewHeadcountPool("Kids Pool", 30, 4, 1, true, activeHours, p.sam.KidsPoolService)
	p.addRide(kidsPool.Name, &kidsPool.Facility,
		func(now time.Time) []facilities.Admission { return kidsPool.TryStart(now, p.sizeOf) },
		kidsPool.Release)

	p.snorkelTour = facilities.NewSnorkelTour(p.cfg.SnorkelInstructors(), 30, 12, 3, activeHours, p.sam.SnorkelTourService)
	p.addRide(p.snorkelTour.Name, &p.snorkelTour.Facility,
		func(now time.Time) []facilities.Admission {
			ads, _, _ := p.snorkelTour.TryStart(now, p.sizeOf)
			return ads
		},
		func(string) {}) // Snorkel Tour release runs through FinishMember instead.

	p.restaurants[facilities.Burger] = facilities.NewRestaurant(facilities.Burger, 1, activeHours)
	p.restaurants[facilities.Pizza] = facilities.NewRestaurant(facilities.Pizza, 1, activeHours)
	p.restaurants[facilities.Salad] = facilities.NewRestaurant(facilities.Salad, 1, activeHours)
}

func (p *Park) addRide(name string, f *facilities.Facility, tryStart func(time.Time) []facilities.Admission, release func(string)) {
	p.rides[name] = &rideEntry{facility: f, tryStart: tryStart, release: release}
	p.rideOrder = append(p.rideOrder, name)
	p.roster = append(p.roster, f)
}

// tryStart runs one admission pass at the named ride, scheduling
// EventEndFacility for each newly admitted entity and marking the ride
// visited so the router won't route anyone back to it.
func (p *Park) tryStart(s *engine.Scheduler, name string, now time.Time) {
	re := p.rides[name]
	admissions := re.tryStart(now)
	for _, a := range admissions {
		entity := p.mustEntity(a.EntityID)
		entity.ClearQueueEntryTime()
		entity.MarkVisited(name)

		ev := &engine.Event{
			Type:       engine.EventEndFacility,
			Time:       now.Add(minutesToDuration(a.ServiceMinutes)),
			EntityID:   a.EntityID,
			FacilityID: name,
			Instructor: -1,
			Slot:       -1,
		}
		if name == snorkelTourName {
			ev.Instructor = a.Instructor
		}
		s.Schedule(ev)
	}
	if len(admissions) > 0 {
		p.logger.Debug("try_start", "facility", name, "admitted", len(admissions))
	}
	p.reportRideGauges(re)
}

func (p *Park) reportRideGauges(re *rideEntry) {
	p.rep.SetQueueLength(re.facility.Name, "regular", re.facility.Regular.Len())
	p.rep.SetQueueLength(re.facility.Name, "express", re.facility.Express.Len())

	occupied := 0
	for id := range re.facility.InService {
		occupied += p.sizeOf(id)
	}
	p.rep.SetOccupancy(re.facility.Name, occupied)
}

// handleArriveAtFacility enqueues an entity at the facility it was
// routed to, arms its abandonment timer unless it holds an express
// pass, and immediately attempts admission.
func (p *Park) handleArriveAtFacility(s *engine.Scheduler, ev *engine.Event) error {
	now := s.Now()
	entity := p.mustEntity(ev.EntityID)
	re := p.rides[ev.FacilityID]
	invariant.Assertf(re != nil, "arrive_at_facility for unknown facility %q", ev.FacilityID)

	re.facility.Enqueue(ev.EntityID, entity.ExpressPass(), now)
	entity.SetQueueEntryTime(now)

	if !entity.ExpressPass() {
		s.Schedule(&engine.Event{
			Type:       engine.EventAbandonment,
			Time:       now.Add(entity.AbandonmentThreshold()),
			EntityID:   ev.EntityID,
			FacilityID: ev.FacilityID,
			Instructor: -1,
			Slot:       -1,
		})
	}

	p.reportRideGauges(re)
	p.tryStart(s, ev.FacilityID, now)
	return nil
}

// handleEndFacility releases an entity's hold on a ride, runs any
// Snorkel Tour instructor break bookkeeping, lets a freed slot admit
// the next eligible party, then applies the ride's rating effect and
// routes the entity onward.
func (p *Park) handleEndFacility(s *engine.Scheduler, ev *engine.Event) error {
	now := s.Now()
	entity := p.mustEntity(ev.EntityID)
	re := p.rides[ev.FacilityID]
	invariant.Assertf(re != nil, "end_facility for unknown facility %q", ev.FacilityID)

	if ev.FacilityID == snorkelTourName {
		last := p.snorkelTour.FinishMember(ev.EntityID, ev.Instructor)
		if last {
			p.snorkelTour.StartBreak(ev.Instructor)
			s.Schedule(&engine.Event{
				Type:       engine.EventInstructorBreakEnd,
				Time:       now.Add(30 * time.Minute),
				Instructor: ev.Instructor,
				Slot:       -1,
			})
		}
	} else {
		re.release(ev.EntityID)
	}

	p.reportRideGauges(re)
	p.tryStart(s, ev.FacilityID, now)
	p.afterRideExperience(s, entity, re.facility.AdrenalineLevel, now)
	return nil
}

// handleAbandonment removes an entity still waiting past its patience
// threshold, dropping its rating and, for a TeenGroup, possibly buying
// an express pass and rejoining the same line instead of moving on.
func (p *Park) handleAbandonment(s *engine.Scheduler, ev *engine.Event) error {
	now := s.Now()
	re := p.rides[ev.FacilityID]
	invariant.Assertf(re != nil, "abandonment for unknown facility %q", ev.FacilityID)

	if !re.facility.Regular.Contains(ev.EntityID) {
		return nil // already admitted or departed; abandonment is a no-op
	}
	re.facility.Regular.Remove(ev.EntityID, now)

	entity := p.mustEntity(ev.EntityID)
	entity.ClearQueueEntryTime()
	entity.DecreaseRating(0.8)
	p.reportRideGauges(re)

	if teen, ok := entity.(*entities.TeenGroup); ok {
		outcome := teen.HandleAbandonment(p.sam, ev.FacilityID)
		if outcome == entities.OutcomeBuyExpressAndReturn {
			revenue := 50 * teen.GroupSize()
			p.result.RecordRevenue(revenue)
			p.rep.AddRevenue(float64(revenue))
			s.Schedule(&engine.Event{
				Type:       engine.EventArriveAtFacility,
				Time:       now,
				EntityID:   teen.ID(),
				FacilityID: ev.FacilityID,
				Instructor: -1,
				Slot:       -1,
			})
			return nil
		}
	}

	p.routeOrExit(s, entity, now)
	return nil
}
