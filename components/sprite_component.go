package components

import (
	"image"

	"ebiten-dungeon/config"
)

// SpriteDef is the immutable animation metadata for one catalog entry: the
// idle row's first frame rectangle in the spritesheet plus capability flags
// saying which extra rows the artwork has. Built once at catalog load.
type SpriteDef struct {
	Name   string
	Src    image.Rectangle
	CanRun bool
	CanHit bool
}

// SpriteComponent is the live animation state machine for one actor. The
// frame column advances at half the tick rate and wraps at FramesPerRow;
// a pending hit overrides running, running overrides idle.
type SpriteComponent struct {
	Def *SpriteDef

	frameIndex int
	hit        bool
	running    bool
	facingLeft bool
}

// NewSpriteComponent creates an idle sprite for the given definition
func NewSpriteComponent(def *SpriteDef) *SpriteComponent {
	return &SpriteComponent{Def: def}
}

// SetHit requests the hit row for the next rendered frame. It is a one-shot
// signal: the next FrameRect call consumes it.
func (s *SpriteComponent) SetHit() {
	s.hit = true
}

// SetRunning puts the sprite in the running state facing the given way
func (s *SpriteComponent) SetRunning(facingLeft bool) {
	s.running = true
	s.facingLeft = facingLeft
}

// SetRunningAhead puts the sprite in the running state unmirrored, for
// straight vertical movement
func (s *SpriteComponent) SetRunningAhead() {
	s.SetRunning(false)
}

// SetIdle clears the running state. Facing is retained.
func (s *SpriteComponent) SetIdle() {
	s.running = false
}

// FacingLeft reports whether the sprite draws mirrored
func (s *SpriteComponent) FacingLeft() bool {
	return s.facingLeft
}

// FrameIndex returns the current animation column
func (s *SpriteComponent) FrameIndex() int {
	return s.frameIndex
}

// Advance steps to the next animation column, wrapping at FramesPerRow
func (s *SpriteComponent) Advance() {
	s.frameIndex = (s.frameIndex + 1) % config.FramesPerRow
}

// AdvanceOnEven advances only when tick is even, so the animation plays at
// half the simulation tick rate
func (s *SpriteComponent) AdvanceOnEven(tick uint64) {
	if tick%2 == 0 {
		s.Advance()
	}
}

// FrameRect selects the source rectangle for the current frame. A pending
// hit wins over running and running over idle, each only when the sheet has
// that row. A consumed hit is cleared here, exactly once per request.
func (s *SpriteComponent) FrameRect() image.Rectangle {
	switch {
	case s.Def.CanHit && s.hit:
		s.hit = false
		return s.rowRect(config.HitRowOffset)
	case s.Def.CanRun && s.running:
		return s.rowRect(config.RunRowOffset)
	default:
		return s.rowRect(0)
	}
}

// rowRect shifts the base rectangle to the current column of the given row.
// Source geometry is a construction-time contract; it is not validated here.
func (s *SpriteComponent) rowRect(rowOffset int) image.Rectangle {
	return s.Def.Src.Add(image.Pt((s.frameIndex+rowOffset)*s.Def.Src.Dx(), 0))
}

// DestRect computes the on-screen rectangle for a world anchor: twice the
// source size, with the vertical position flipped to the bottom-up world
// axis.
func (s *SpriteComponent) DestRect(x, y float64, windowHeight int) (dx, dy, w, h float64) {
	srcW := float64(s.Def.Src.Dx())
	srcH := float64(s.Def.Src.Dy())
	dx = x * config.WorldScale
	dy = float64(windowHeight) - (y+srcH)*config.WorldScale
	return dx, dy, srcW * config.WorldScale, srcH * config.WorldScale
}
