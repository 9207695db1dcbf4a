package entities

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/pkg/sampler"
	"github.com/dror777-a11y/waterpark-sim/pkg/utils"
)

// TeenGroup is 2-6 teenagers, minimum age 14, who chase high-adrenaline
// rides and may buy an express pass after their first abandonment.
type TeenGroup struct {
	base

	groupSize int

	AbandonCount        int
	AbandonedFacilities []string
}

// NewTeenGroup draws a teen group's size and express-pass decision from s.
func NewTeenGroup(s *sampler.Sampler, arrivalTime time.Time) *TeenGroup {
	t := &TeenGroup{
		base:      newBase(utils.GenerateID(), arrivalTime, 19.0),
		groupSize: s.TeenGroupSize(),
	}
	if s.BuysExpressOnEntry() {
		t.SetExpressPass(true)
	}
	return t
}

func (t *TeenGroup) Kind() Kind                  { return KindTeen }
func (t *TeenGroup) GroupSize() int              { return t.groupSize }
func (t *TeenGroup) MinAge() float64             { return 14 }
func (t *TeenGroup) AbandonmentThreshold() time.Duration { return 20 * time.Minute }

// HandleAbandonment records the abandoned facility and, for a group
// without an express pass yet, rolls a 60% chance of buying one and
// returning to the same facility. It reports which of the two outcomes
// occurred.
type AbandonmentOutcome string

const (
	OutcomeBuyExpressAndReturn AbandonmentOutcome = "buy_express_and_return"
	OutcomeMoveToNext          AbandonmentOutcome = "move_to_next"
)

func (t *TeenGroup) HandleAbandonment(s *sampler.Sampler, facility string) AbandonmentOutcome {
	t.AbandonedFacilities = append(t.AbandonedFacilities, facility)
	t.AbandonCount++

	if !t.ExpressPass() && s.TeenBuysExpressAfterAbandon() {
		t.SetExpressPass(true)
		return OutcomeBuyExpressAndReturn
	}
	return OutcomeMoveToNext
}
