package park

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/internal/engine"
	"github.com/dror777-a11y/waterpark-sim/internal/facilities"
)

// handleInstructorBreakEnd ends a Snorkel Tour instructor's mandatory
// post-tour break. If the break spans into the 13:00-14:00 lunch hour
// the instructor goes to lunch instead of back on duty; otherwise a
// freshly available instructor may immediately pick up a waiting tour.
func (p *Park) handleInstructorBreakEnd(s *engine.Scheduler, ev *engine.Event) error {
	now := s.Now()
	status := p.snorkelTour.EndBreak(ev.Instructor, now)

	if status == facilities.InstructorOnLunch {
		lunchEnd := time.Date(now.Year(), now.Month(), now.Day(), 14, 0, 0, 0, now.Location())
		s.Schedule(&engine.Event{Type: engine.EventInstructorLunchEnd, Time: lunchEnd, Instructor: ev.Instructor, Slot: -1})
		return nil
	}

	p.tryStart(s, snorkelTourName, now)
	return nil
}

// handleInstructorLunchEnd returns an instructor to available duty at
// 14:00 and lets them immediately pick up a waiting tour.
func (p *Park) handleInstructorLunchEnd(s *engine.Scheduler, ev *engine.Event) error {
	now := s.Now()
	p.snorkelTour.EndLunch(ev.Instructor)
	p.tryStart(s, snorkelTourName, now)
	return nil
}
