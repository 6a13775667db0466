package chainmaps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleAscending(t *testing.T) {
	assert.Equal(t, uint32(5), hashSizes[0])
	for i := 1; i < len(hashSizes); i++ {
		assert.Greater(t, hashSizes[i], hashSizes[i-1])
	}
}

func TestLimitBand(t *testing.T) {
	for _, n := range hashSizes {
		// The band must leave room between shrink and grow limit on every
		// step, otherwise the policy loops could oscillate.
		assert.Less(t, limitShrink(n), limitGrow(n))
	}

	assert.Equal(t, uint32(3), limitGrow(5))
	assert.Equal(t, uint32(390), limitGrow(521))
	assert.Equal(t, uint32(97), limitShrink(521))
}

func TestShrinkBelowNextGrowLimit(t *testing.T) {
	// Hysteresis: every count below the shrink limit of a step fits into
	// the next smaller step without growing right back.
	for i := 1; i < len(hashSizes); i++ {
		assert.Less(t, limitShrink(hashSizes[i]), limitGrow(hashSizes[i-1]))
	}
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 2, Max(1, 2))
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, "b", Max("a", "b"))
}
