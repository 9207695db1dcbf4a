package entities

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/pkg/sampler"
	"github.com/dror777-a11y/waterpark-sim/pkg/utils"
)

// SingleVisitor is a lone adult, age 18-70, whose first ride is chosen
// among facilities with a 12+ age floor and who afterwards skips only the
// Kids Pool.
type SingleVisitor struct {
	base

	age float64
}

// NewSingleVisitor draws an adult age and express-pass decision from s.
func NewSingleVisitor(s *sampler.Sampler, arrivalTime time.Time) *SingleVisitor {
	v := &SingleVisitor{
		base: newBase(utils.GenerateID(), arrivalTime, 19.0),
		age:  s.Uniform(18, 70),
	}
	if s.BuysExpressOnEntry() {
		v.SetExpressPass(true)
	}
	return v
}

func (v *SingleVisitor) Kind() Kind                  { return KindSingle }
func (v *SingleVisitor) GroupSize() int              { return 1 }
func (v *SingleVisitor) MinAge() float64             { return v.age }
func (v *SingleVisitor) AbandonmentThreshold() time.Duration { return 30 * time.Minute }
