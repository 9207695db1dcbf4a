package facilities

import (
	"math"
	"time"

	"github.com/dror777-a11y/waterpark-sim/internal/invariant"
	"github.com/dror777-a11y/waterpark-sim/internal/queue"
	"github.com/dror777-a11y/waterpark-sim/pkg/sampler"
)

// PipesRiver seats parties in tubes that hold two people each. An
// odd-sized party shares a tube with another odd-sized party; the pair
// cross-link as tube partners so the shared seats are only released once
// both have left.
type PipesRiver struct {
	Facility

	TotalTubes int
	TubesUsed  int

	tubesHeld map[string]int
	partners  map[string]string
}

// NewPipesRiver builds a Pipes River with the given tube count, one tube
// seating two riders.
func NewPipesRiver(totalTubes int, ageLimit float64, adrenaline int, activeHours float64) *PipesRiver {
	return &PipesRiver{
		Facility:   NewFacility("Pipes River", totalTubes*2, ageLimit, adrenaline, activeHours),
		TotalTubes: totalTubes,
		tubesHeld:  make(map[string]int),
		partners:   make(map[string]string),
	}
}

// TryStart repeatedly admits whatever the head of the active queue (express
// first, then regular) allows: an even-sized party alone, or an odd-sized
// party paired with another odd-sized party found further down either
// queue. It stops the moment the head cannot be admitted, rather than
// skipping it to look for something smaller.
func (p *PipesRiver) TryStart(now time.Time, sizeOf SizeOf) []Admission {
	var admissions []Admission

	for {
		active := p.Express
		mirrorToRegularOnly := false
		if active.Len() == 0 {
			active = p.Regular
			mirrorToRegularOnly = true
		}
		if active.Len() == 0 {
			break
		}

		headID, _ := active.Peek()
		size := sizeOf(headID)

		if size%2 == 0 {
			tubesNeeded := size / 2
			if p.TubesUsed+tubesNeeded > p.TotalTubes {
				break
			}
			id, _, _ := active.Pop(now)
			p.admitToService(id)
			p.tubesHeld[id] = tubesNeeded
			p.TubesUsed += tubesNeeded
			admissions = append(admissions, Admission{EntityID: id})
			continue
		}

		partnerIdx, partnerQueue, found := p.findOddPartner(active, mirrorToRegularOnly, sizeOf)
		if !found {
			break
		}

		partnerID := partnerQueue.At(partnerIdx)
		partnerSize := sizeOf(partnerID)
		tubesNeeded := int(math.Ceil(float64(size+partnerSize) / 2.0))
		if p.TubesUsed+tubesNeeded > p.TotalTubes {
			break
		}

		headID2, _, _ := active.Pop(now)
		if partnerQueue == active {
			partnerIdx--
		}
		partnerID2, _ := partnerQueue.RemoveAt(partnerIdx, now)

		p.admitToService(headID2)
		p.admitToService(partnerID2)
		p.tubesHeld[headID2] = tubesNeeded
		p.tubesHeld[partnerID2] = tubesNeeded
		p.partners[headID2] = partnerID2
		p.partners[partnerID2] = headID2
		p.TubesUsed += tubesNeeded

		admissions = append(admissions,
			Admission{EntityID: headID2, PartnerID: partnerID2},
			Admission{EntityID: partnerID2, PartnerID: headID2})
	}

	return admissions
}

func (p *PipesRiver) findOddPartner(active *queue.Queue, mirrorRegularOnly bool, sizeOf SizeOf) (int, *queue.Queue, bool) {
	isOdd := func(id string) bool { return sizeOf(id)%2 == 1 }

	if idx, ok := active.FindIndex(1, isOdd); ok {
		return idx, active, true
	}
	if mirrorRegularOnly {
		return 0, nil, false
	}
	if idx, ok := p.Regular.FindIndex(0, isOdd); ok {
		return idx, p.Regular, true
	}
	return 0, nil, false
}

// Release frees an entity's tubes when its ride ends. A shared entity only
// frees its seats once its partner has already left; an unshared entity
// frees immediately.
func (p *PipesRiver) Release(entityID string) {
	p.releaseFromService(entityID)
	partner, shared := p.partners[entityID]

	if !shared {
		p.TubesUsed -= p.tubesHeld[entityID]
		invariant.Assertf(p.TubesUsed >= 0, "pipes river: tubes in use went negative (%d)", p.TubesUsed)
		delete(p.tubesHeld, entityID)
		return
	}

	if p.InService[partner] {
		return
	}

	p.TubesUsed -= p.tubesHeld[entityID]
	invariant.Assertf(p.TubesUsed >= 0, "pipes river: tubes in use went negative (%d)", p.TubesUsed)
	delete(p.tubesHeld, entityID)
	delete(p.tubesHeld, partner)
	delete(p.partners, entityID)
	delete(p.partners, partner)
}

// PipesRiverServiceDuration samples the ride duration for a newly admitted
// rider, U[20,30] minutes.
func PipesRiverServiceDuration(s *sampler.Sampler) float64 {
	return s.PipesRiverService()
}
