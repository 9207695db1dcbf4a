package facilities

import "time"

// InstructorStatus tracks one Snorkel Tour instructor's lifecycle across
// a tour, the mandatory post-tour break, and the midday lunch window.
type InstructorStatus string

const (
	InstructorAvailable InstructorStatus = "available"
	InstructorOnTour    InstructorStatus = "on_tour"
	InstructorOnBreak   InstructorStatus = "on_break"
	InstructorOnLunch   InstructorStatus = "on_lunch"
)

// SnorkelTour admits a headcount-bounded group per tour, gated by
// instructor availability and a restricted window (12:20-14:00) during
// which no new tour may start.
type SnorkelTour struct {
	Facility

	GroupCapacity int
	Instructors   []InstructorStatus
	remaining     []int // members still in service, per instructor index

	// ServiceSample draws one tour member's duration, Normal(30, 10).
	ServiceSample func() float64
}

// NewSnorkelTour builds a Snorkel Tour with the given instructor count
// and per-tour headcount capacity.
func NewSnorkelTour(numInstructors, groupCapacity int, ageLimit float64, adrenaline int, activeHours float64, serviceSample func() float64) *SnorkelTour {
	instructors := make([]InstructorStatus, numInstructors)
	for i := range instructors {
		instructors[i] = InstructorAvailable
	}
	return &SnorkelTour{
		Facility:      NewFacility("Snorkel Tour", groupCapacity, ageLimit, adrenaline, activeHours),
		GroupCapacity: groupCapacity,
		Instructors:   instructors,
		remaining:     make([]int, numInstructors),
		ServiceSample: serviceSample,
	}
}

// InRestrictedWindow reports whether t falls in the 12:20-14:00 window
// during which no tour may depart, win regardless of instructor status.
func InRestrictedWindow(t time.Time) bool {
	h, m, _ := t.Clock()
	mins := h*60 + m
	return mins >= 12*60+20 && mins < 14*60
}

func (s *SnorkelTour) availableInstructor() (int, bool) {
	for i, status := range s.Instructors {
		if status == InstructorAvailable {
			return i, true
		}
	}
	return 0, false
}

// TryStart admits a tour when an instructor is free and the current time
// isn't in the restricted window, greedily filling express then regular
// up to GroupCapacity without overflowing.
func (s *SnorkelTour) TryStart(now time.Time, sizeOf SizeOf) ([]Admission, int, bool) {
	if InRestrictedWindow(now) {
		return nil, -1, false
	}
	idx, ok := s.availableInstructor()
	if !ok {
		return nil, -1, false
	}

	var members []string
	total := 0
	for s.Express.Len() > 0 {
		id, _ := s.Express.Peek()
		size := sizeOf(id)
		if total+size > s.GroupCapacity {
			break
		}
		poppedID, _, _ := s.Express.Pop(now)
		members = append(members, poppedID)
		total += size
	}
	for s.Regular.Len() > 0 {
		id, _ := s.Regular.Peek()
		size := sizeOf(id)
		if total+size > s.GroupCapacity {
			break
		}
		poppedID, _, _ := s.Regular.Pop(now)
		members = append(members, poppedID)
		total += size
	}

	if len(members) == 0 {
		return nil, -1, false
	}

	s.Instructors[idx] = InstructorOnTour
	s.remaining[idx] = len(members)

	admissions := make([]Admission, len(members))
	for i, id := range members {
		s.admitToService(id)
		admissions[i] = Admission{EntityID: id, ServiceMinutes: s.ServiceSample(), Instructor: idx}
	}
	return admissions, idx, true
}

// FinishMember removes a tour member from service and reports whether
// that was the last member of their instructor's current tour, meaning
// the instructor should now go on break.
func (s *SnorkelTour) FinishMember(entityID string, instructor int) bool {
	s.releaseFromService(entityID)
	s.remaining[instructor]--
	return s.remaining[instructor] <= 0
}

// StartBreak marks an instructor on_break after their tour completes.
func (s *SnorkelTour) StartBreak(instructor int) {
	s.Instructors[instructor] = InstructorOnBreak
}

// EndBreak transitions an instructor out of their post-tour break: into
// lunch if the break ends inside the 13:00-14:00 hour, otherwise back to
// available.
func (s *SnorkelTour) EndBreak(instructor int, now time.Time) InstructorStatus {
	h, _, _ := now.Clock()
	if h >= 13 && h < 14 {
		s.Instructors[instructor] = InstructorOnLunch
	} else {
		s.Instructors[instructor] = InstructorAvailable
	}
	return s.Instructors[instructor]
}

// EndLunch returns an instructor to available at 14:00.
func (s *SnorkelTour) EndLunch(instructor int) {
	s.Instructors[instructor] = InstructorAvailable
}
