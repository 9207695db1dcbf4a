package engine

import (
	"container/heap"
	"time"
)

// EventType identifies the kind of discrete event being scheduled.
type EventType string

const (
	// EventFamilyArrival is a new Family arriving at the park gate.
	EventFamilyArrival EventType = "family_arrival"

	// EventTeenGroupArrival is a new TeenGroup arriving at the park gate.
	EventTeenGroupArrival EventType = "teen_group_arrival"

	// EventSingleArrival is a new SingleVisitor arriving at the park gate.
	EventSingleArrival EventType = "single_arrival"

	// EventReceptionDone fires when an entity finishes being processed at
	// Reception (ticket purchase, wristband, optional express upsell).
	EventReceptionDone EventType = "reception_done"

	// EventArriveAtFacility fires when an entity, having been routed,
	// reaches a facility queue.
	EventArriveAtFacility EventType = "arrive_at_facility"

	// EventAbandonment fires when a non-express entity's patience
	// threshold elapses; it is a no-op unless the entity is still queued.
	EventAbandonment EventType = "abandonment"

	// EventEndFacility fires when an entity's ride or tour service ends.
	EventEndFacility EventType = "end_facility"

	// EventArriveAtRestaurant fires when a routed entity reaches a
	// restaurant's line.
	EventArriveAtRestaurant EventType = "arrive_at_restaurant"

	// EventEndRestaurantService fires when a seated party finishes being
	// served (before they finish eating).
	EventEndRestaurantService EventType = "end_restaurant_service"

	// EventEndMeal fires when a served party finishes eating and is
	// ready to route onward.
	EventEndMeal EventType = "end_meal"

	// EventInstructorBreakEnd fires 30 minutes after a Snorkel Tour
	// instructor's mandatory post-tour break begins.
	EventInstructorBreakEnd EventType = "instructor_break_end"

	// EventInstructorLunchEnd fires at 14:00 for any instructor sent to
	// lunch by InstructorBreakEnd.
	EventInstructorLunchEnd EventType = "instructor_lunch_end"

	// EventEndOfDay fires at park close (19:00) each simulated day.
	EventEndOfDay EventType = "end_of_day"
)

// Event is a single timestamped occurrence in the park simulation. Entity
// and facility references are carried by ID so that payloads stay
// comparable and so the event itself never owns simulation state.
type Event struct {
	Type       EventType
	Time       time.Time
	Seq        uint64
	EntityID   string
	FacilityID string
	// Instructor identifies which Snorkel Tour instructor this event
	// concerns; -1 when not applicable.
	Instructor int
	// Slot identifies which reception clerk or restaurant station this
	// event concerns; -1 when not applicable.
	Slot int
}

// EventQueue is a min-heap of events ordered first by Time, then by Seq —
// a monotonically increasing insertion counter that breaks ties
// deterministically without ever comparing object identity.
type EventQueue struct {
	events []*Event
	nextSeq uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	eq := &EventQueue{events: make([]*Event, 0)}
	heap.Init(eq)
	return eq
}

func (eq *EventQueue) Len() int { return len(eq.events) }

func (eq *EventQueue) Less(i, j int) bool {
	if eq.events[i].Time.Equal(eq.events[j].Time) {
		return eq.events[i].Seq < eq.events[j].Seq
	}
	return eq.events[i].Time.Before(eq.events[j].Time)
}

func (eq *EventQueue) Swap(i, j int) {
	eq.events[i], eq.events[j] = eq.events[j], eq.events[i]
}

func (eq *EventQueue) Push(x interface{}) {
	eq.events = append(eq.events, x.(*Event))
}

func (eq *EventQueue) Pop() interface{} {
	old := eq.events
	n := len(old)
	event := old[n-1]
	old[n-1] = nil
	eq.events = old[:n-1]
	return event
}

// Schedule assigns the next insertion sequence number and pushes the event.
func (eq *EventQueue) Schedule(event *Event) {
	event.Seq = eq.nextSeq
	eq.nextSeq++
	heap.Push(eq, event)
}

// Next pops and returns the earliest event, or nil if the queue is empty.
func (eq *EventQueue) Next() *Event {
	if eq.Len() == 0 {
		return nil
	}
	return heap.Pop(eq).(*Event)
}

// Peek returns the earliest event without removing it, or nil if empty.
func (eq *EventQueue) Peek() *Event {
	if eq.Len() == 0 {
		return nil
	}
	return eq.events[0]
}

// IsEmpty reports whether the queue holds no events.
func (eq *EventQueue) IsEmpty() bool { return eq.Len() == 0 }

// Size returns the number of events currently queued.
func (eq *EventQueue) Size() int { return eq.Len() }
