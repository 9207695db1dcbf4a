package invariant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssertfPanicsOnFalseCondition(t *testing.T) {
	assert.Panics(t, func() {
		Assertf(1 == 2, "tube count went negative: %d", -1)
	})
}

func TestAssertfNoopOnTrueCondition(t *testing.T) {
	assert.NotPanics(t, func() {
		Assertf(1 == 1, "unreachable")
	})
}
