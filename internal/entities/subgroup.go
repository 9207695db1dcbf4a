package entities

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/pkg/utils"
)

// SubGroup is a portion of a Family that has split off after a ride. It
// holds a non-owning back-reference to the parent Family for completion
// bookkeeping (ActiveSubgroupsCount) but inherits its rating, express
// pass, and departure hour at the moment of the split.
type SubGroup struct {
	base

	Parent    *Family
	groupSize int
	minAge    float64
}

func newSubGroup(parent *Family, size int, minAge float64) *SubGroup {
	sg := &SubGroup{
		base:      newBase(utils.GenerateID(), parent.arrivalTime, parent.DepartureHour()),
		Parent:    parent,
		groupSize: size,
		minAge:    minAge,
	}
	sg.rating = parent.Rating()
	sg.expressPass = parent.ExpressPass()
	return sg
}

func (sg *SubGroup) Kind() Kind                  { return KindSubGroup }
func (sg *SubGroup) GroupSize() int              { return sg.groupSize }
func (sg *SubGroup) MinAge() float64             { return sg.minAge }
func (sg *SubGroup) AbandonmentThreshold() time.Duration { return 15 * time.Minute }
