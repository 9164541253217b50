package components

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func knightDef() *SpriteDef {
	return &SpriteDef{
		Name:   "knight",
		Src:    image.Rect(128, 68, 128+28, 68+16),
		CanRun: true,
		CanHit: true,
	}
}

func slimeDef() *SpriteDef {
	// no run row, no hit row
	return &SpriteDef{
		Name: "slime",
		Src:  image.Rect(16, 32, 32, 48),
	}
}

func TestFrameAdvanceParity(t *testing.T) {
	// the frame loop counts ticks from 1 and the sprite advances on even
	// tick counts, so after N ticks the column is N/2 mod 4
	for _, ticks := range []uint64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 16} {
		s := NewSpriteComponent(knightDef())
		for tick := uint64(1); tick <= ticks; tick++ {
			s.AdvanceOnEven(tick)
		}
		assert.Equal(t, int(ticks/2%4), s.FrameIndex(), "after %d ticks", ticks)
	}
}

func TestFrameIndexWraps(t *testing.T) {
	s := NewSpriteComponent(knightDef())
	for i := 0; i < 3; i++ {
		s.Advance()
	}
	assert.Equal(t, 3, s.FrameIndex())

	s.Advance()
	assert.Equal(t, 0, s.FrameIndex())
}

func TestFrameRectRows(t *testing.T) {
	def := knightDef()
	w := def.Src.Dx()

	s := NewSpriteComponent(def)
	assert.Equal(t, def.Src, s.FrameRect(), "idle row, column 0")

	s.SetRunning(false)
	assert.Equal(t, def.Src.Add(image.Pt(4*w, 0)), s.FrameRect(), "run row")

	s.SetHit()
	assert.Equal(t, def.Src.Add(image.Pt(8*w, 0)), s.FrameRect(), "hit row")

	s.Advance()
	assert.Equal(t, def.Src.Add(image.Pt(5*w, 0)), s.FrameRect(), "run row, column 1")
}

func TestHitIsOneShot(t *testing.T) {
	s := NewSpriteComponent(knightDef())
	idle := s.FrameRect()

	s.SetHit()
	hit := s.FrameRect()
	assert.NotEqual(t, idle, hit, "first fetch after SetHit uses the hit row")

	assert.Equal(t, idle, s.FrameRect(), "hit is consumed by a single fetch")
	assert.Equal(t, idle, s.FrameRect())
}

func TestCapabilityFlagsGateRows(t *testing.T) {
	s := NewSpriteComponent(slimeDef())
	idle := s.FrameRect()

	s.SetRunning(true)
	assert.Equal(t, idle, s.FrameRect(), "no run row artwork")

	s.SetHit()
	assert.Equal(t, idle, s.FrameRect(), "no hit row artwork")
}

func TestIdleRetainsFacing(t *testing.T) {
	s := NewSpriteComponent(knightDef())

	s.SetRunning(true)
	assert.True(t, s.FacingLeft())

	s.SetIdle()
	assert.True(t, s.FacingLeft(), "facing survives going idle")

	s.SetRunningAhead()
	assert.False(t, s.FacingLeft())
}

func TestDestRectFlipsAndScales(t *testing.T) {
	s := NewSpriteComponent(slimeDef()) // 16x16 source

	dx, dy, w, h := s.DestRect(100, 100, 720)
	assert.Equal(t, 200.0, dx)
	assert.Equal(t, 720-(100.0+16)*2, dy)
	assert.Equal(t, 32.0, w)
	assert.Equal(t, 32.0, h)
}
