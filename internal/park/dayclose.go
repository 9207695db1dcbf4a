package park

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/internal/engine"
	"github.com/dror777-a11y/waterpark-sim/internal/facilities"
	"github.com/dror777-a11y/waterpark-sim/internal/queue"
)

// handleEndOfDay closes out every queue's daily statistics, re-seeds
// the next day's arrival streams, and reschedules itself 24 hours out.
func (p *Park) handleEndOfDay(s *engine.Scheduler, ev *engine.Event) error {
	now := s.Now()
	p.closeAllQueues(now)

	nextDay := now.Add(24 * time.Hour)
	familyStart := time.Date(nextDay.Year(), nextDay.Month(), nextDay.Day(), 9, 0, 0, 0, nextDay.Location())
	teenStart := familyStart.Add(time.Hour)
	dayEnd := familyStart.Add(10 * time.Hour)

	s.Schedule(&engine.Event{Type: engine.EventFamilyArrival, Time: familyStart, Instructor: -1, Slot: -1})
	s.Schedule(&engine.Event{Type: engine.EventSingleArrival, Time: familyStart, Instructor: -1, Slot: -1})
	s.Schedule(&engine.Event{Type: engine.EventTeenGroupArrival, Time: teenStart, Instructor: -1, Slot: -1})
	s.Schedule(&engine.Event{Type: engine.EventEndOfDay, Time: dayEnd, Instructor: -1, Slot: -1})
	return nil
}

func (p *Park) closeAllQueues(now time.Time) {
	p.reception.CloseDay(now)
	recordQueue(p, p.reception.Queue)

	for _, name := range p.rideOrder {
		re := p.rides[name]
		re.facility.CloseDay(now)
		recordQueue(p, re.facility.Regular)
		recordQueue(p, re.facility.Express)
	}

	for _, kind := range []facilities.RestaurantKind{facilities.Burger, facilities.Pizza, facilities.Salad} {
		r := p.restaurants[kind]
		r.CloseDay(now)
		recordQueue(p, r.Queue)
	}
}

func recordQueue(p *Park, q *queue.Queue) {
	n := len(q.DailyAvgLengths)
	if n == 0 {
		return
	}
	p.result.RecordQueueClose(q.Name, q.DailyAvgLengths[n-1], q.DailyAvgWaits[n-1])
}
