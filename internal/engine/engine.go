package engine

import (
	"log/slog"
	"time"

	"github.com/dror777-a11y/waterpark-sim/pkg/logger"
	"github.com/dror777-a11y/waterpark-sim/pkg/utils"
)

// Handler processes one event. Handlers run to completion; they may
// schedule further events on the Scheduler but never block.
type Handler func(*Scheduler, *Event) error

// Scheduler is the single-threaded discrete-event core of the park
// simulation: a min-heap of events and a wall-clock cursor that only moves
// forward as events are dispatched.
type Scheduler struct {
	queue      *EventQueue
	simTime    *utils.SimTime
	handlers   map[EventType]Handler
	logger     *slog.Logger
	eventCount int64

	// ForceClose, when set, is invoked once after the run loop exits,
	// with the horizon's end time, so that every facility and queue can
	// be drained via the same completion path used during normal runs.
	ForceClose func(*Scheduler, time.Time)
}

// NewScheduler creates a scheduler with an empty event queue.
func NewScheduler() *Scheduler {
	return &Scheduler{
		queue:    NewEventQueue(),
		simTime:  utils.NewSimTime(time.Time{}),
		handlers: make(map[EventType]Handler),
		logger:   logger.Default,
	}
}

// SetLogger overrides the scheduler's logger.
func (s *Scheduler) SetLogger(l *slog.Logger) { s.logger = l }

// RegisterHandler installs the handler invoked for the given event type.
func (s *Scheduler) RegisterHandler(t EventType, h Handler) {
	s.handlers[t] = h
}

// Schedule enqueues an event. Its Seq field is overwritten with the next
// insertion sequence number.
func (s *Scheduler) Schedule(event *Event) {
	s.queue.Schedule(event)
}

// ScheduleAt is a convenience constructor-and-schedule for the common case.
func (s *Scheduler) ScheduleAt(t EventType, at time.Time, entityID, facilityID string) {
	s.Schedule(&Event{Type: t, Time: at, EntityID: entityID, FacilityID: facilityID, Instructor: -1, Slot: -1})
}

// ScheduleAfter schedules an event `delay` after the current simulation
// time.
func (s *Scheduler) ScheduleAfter(t EventType, delay time.Duration, entityID, facilityID string) {
	s.ScheduleAt(t, s.Now().Add(delay), entityID, facilityID)
}

// Now returns the scheduler's current simulation time.
func (s *Scheduler) Now() time.Time { return s.simTime.Now() }

// QueueSize returns the number of events currently pending.
func (s *Scheduler) QueueSize() int { return s.queue.Size() }

// EventsProcessed returns the count of events dispatched so far.
func (s *Scheduler) EventsProcessed() int64 { return s.eventCount }

// Run drives the event loop forward from start until either the heap
// empties or the next event's timestamp exceeds start+horizon. It
// terminates by advancing the cursor to the horizon and invoking
// ForceClose, if set, so in-park entities can be drained.
func (s *Scheduler) Run(start time.Time, horizon time.Duration) {
	s.simTime.Set(start)
	end := start.Add(horizon)

	s.logger.Info("simulation starting", "start", start, "horizon", horizon)

	for {
		next := s.queue.Peek()
		if next == nil || next.Time.After(end) {
			break
		}
		event := s.queue.Next()
		s.simTime.Set(event.Time)
		s.eventCount++

		handler, ok := s.handlers[event.Type]
		if !ok {
			s.logger.Warn("no handler registered", "type", event.Type)
			continue
		}
		if err := handler(s, event); err != nil {
			s.logger.Error("event handler failed", "type", event.Type, "entity_id", event.EntityID, "error", err)
		}
	}

	s.simTime.Set(end)
	if s.ForceClose != nil {
		s.ForceClose(s, end)
	}

	s.logger.Info("simulation finished",
		"end", end,
		"events_processed", s.eventCount,
		"events_remaining", s.queue.Size())
}
