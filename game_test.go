package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClockGatesToCadence(t *testing.T) {
	base := time.Now()
	clock := frameClock{last: base}

	_, due := clock.tick(base.Add(10 * time.Millisecond))
	assert.False(t, due, "a step before MinFrameMillis is not due")

	dt, due := clock.tick(base.Add(40 * time.Millisecond))
	assert.True(t, due)
	assert.InDelta(t, 40, dt, 0.01)

	_, due = clock.tick(base.Add(50 * time.Millisecond))
	assert.False(t, due, "the clock advanced on the accepted tick")
}

func TestFrameClockStepsStaySmallAcrossLongStretches(t *testing.T) {
	// The frame loop ticks the clock even while the window is minimized, so
	// a minute away from the window arrives as many frame-sized steps, never
	// as one step spanning the whole stretch.
	base := time.Now()
	clock := frameClock{last: base}

	now := base
	for i := 0; i < 1800; i++ {
		now = now.Add(33 * time.Millisecond)
		dt, due := clock.tick(now)
		assert.True(t, due)
		assert.InDelta(t, 33, dt, 0.01)
	}

	dt, due := clock.tick(now.Add(35 * time.Millisecond))
	assert.True(t, due)
	assert.InDelta(t, 35, dt, 0.01, "the step after restore spans one frame")
}
