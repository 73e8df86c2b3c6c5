package entity

import (
	"math"
	"time"
)

// Body represents the physical body of an entity.
// Position is the top-left corner of the bounding box in pixels.
type Body struct {
	X, Y int
	W, H int
	VY   int

	FacingRight bool
}

// CenterX returns the horizontal centre of the box
func (b *Body) CenterX() int {
	return b.X + b.W/2
}

// CenterY returns the vertical centre of the box
func (b *Body) CenterY() int {
	return b.Y + b.H/2
}

// SetPixelPos moves the body and clears vertical velocity
func (b *Body) SetPixelPos(x, y int) {
	b.X = x
	b.Y = y
	b.VY = 0
}

// Pose selects the sprite family to draw
type Pose int

const (
	PoseIdle Pose = iota
	PoseWalk
	PoseJump
)

// Player represents the player entity
type Player struct {
	Body

	RespawnX int
	RespawnY int

	Stars int

	// Timed double jump
	DoubleJumpExpiresAt time.Duration
	HasDoubleJumped     bool

	// Animation
	Frame   int
	FrameAt time.Duration
	Moving  bool
	Pose    Pose

	CheckpointMessageUntil time.Duration
}

// NewPlayer creates a player at the given pixel position, which is also
// the initial respawn point.
func NewPlayer(x, y, w, h int) *Player {
	return &Player{
		Body: Body{
			X:           x,
			Y:           y,
			W:           w,
			H:           h,
			FacingRight: true,
		},
		RespawnX: x,
		RespawnY: y,
	}
}

// DoubleJumpActive returns true while the power-up window is open
func (p *Player) DoubleJumpActive(now time.Duration) bool {
	return now < p.DoubleJumpExpiresAt
}

// DoubleJumpSecondsRemaining returns whole seconds left on the power-up, rounded
func (p *Player) DoubleJumpSecondsRemaining(now time.Duration) int {
	remaining := p.DoubleJumpExpiresAt - now
	if remaining <= 0 {
		return 0
	}
	return int(math.Round(remaining.Seconds()))
}

// ShowCheckpointMessage returns true while the checkpoint banner should be visible
func (p *Player) ShowCheckpointMessage(now time.Duration) bool {
	return now < p.CheckpointMessageUntil
}

// Respawn returns the player to the last checkpoint.
// Stars and power-up state are kept.
func (p *Player) Respawn() {
	p.SetPixelPos(p.RespawnX, p.RespawnY)
}
