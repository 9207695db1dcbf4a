package park

import "github.com/dror777-a11y/waterpark-sim/internal/engine"

// registerHandlers wires every event type named in spec.md 4.2-4.9 to
// its Park method.
func (p *Park) registerHandlers() {
	p.sched.RegisterHandler(engine.EventFamilyArrival, p.handleFamilyArrival)
	p.sched.RegisterHandler(engine.EventTeenGroupArrival, p.handleTeenGroupArrival)
	p.sched.RegisterHandler(engine.EventSingleArrival, p.handleSingleArrival)
	p.sched.RegisterHandler(engine.EventReceptionDone, p.handleReceptionDone)
	p.sched.RegisterHandler(engine.EventArriveAtFacility, p.handleArriveAtFacility)
	p.sched.RegisterHandler(engine.EventAbandonment, p.handleAbandonment)
	p.sched.RegisterHandler(engine.EventEndFacility, p.handleEndFacility)
	p.sched.RegisterHandler(engine.EventArriveAtRestaurant, p.handleArriveAtRestaurant)
	p.sched.RegisterHandler(engine.EventEndRestaurantService, p.handleEndRestaurantService)
	p.sched.RegisterHandler(engine.EventEndMeal, p.handleEndMeal)
	p.sched.RegisterHandler(engine.EventInstructorBreakEnd, p.handleInstructorBreakEnd)
	p.sched.RegisterHandler(engine.EventInstructorLunchEnd, p.handleInstructorLunchEnd)
	p.sched.RegisterHandler(engine.EventEndOfDay, p.handleEndOfDay)
}
