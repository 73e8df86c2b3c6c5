package system

import (
	"time"

	"github.com/younwookim/seekstars/internal/domain/entity"
	"github.com/younwookim/seekstars/internal/infrastructure/config"
)

// PlayerSystem runs the per-frame player update against a stage
type PlayerSystem struct {
	config  *config.GameConfig
	stage   *entity.Stage
	physics *PhysicsSystem
}

// NewPlayerSystem creates a player system bound to a stage
func NewPlayerSystem(cfg *config.GameConfig, stage *entity.Stage) *PlayerSystem {
	return &PlayerSystem{
		config:  cfg,
		stage:   stage,
		physics: NewPhysicsSystem(&cfg.Physics, stage),
	}
}

// Physics returns the underlying collision resolver
func (s *PlayerSystem) Physics() *PhysicsSystem {
	return s.physics
}

// Update advances the player one frame.
// Order: horizontal move, vertical move, checkpoint, star, power-up, animation.
// Tile checks use the centre of the box.
func (s *PlayerSystem) Update(player *entity.Player, in Intents, now time.Duration) Events {
	var ev Events

	s.physics.MoveX(player, s.handleMovement(player, in))
	s.physics.MoveY(player)

	grounded := s.physics.IsGrounded(player)
	if grounded {
		player.HasDoubleJumped = false
	}

	cx, cy := player.CenterX(), player.CenterY()

	if s.stage.IsCheckpoint(cx, cy) {
		player.RespawnX, player.RespawnY = player.X, player.Y
		player.CheckpointMessageUntil = now + s.config.Timers.CheckpointMessage()
		ev.CheckpointReached = true
	}

	if s.stage.TryConsumeStar(cx, cy) {
		player.Stars++
		ev.StarCollected = true
	}

	if s.stage.TryConsumePowerUp(cx, cy, now) {
		player.DoubleJumpExpiresAt = now + s.config.Timers.DoubleJump()
		player.HasDoubleJumped = false
		ev.PowerUpCollected = true
	}

	s.updateAnimation(player, grounded, now)

	ev.Dead = s.IsDead(player)
	ev.Won = s.IsVictory(player)

	return ev
}

// handleMovement turns held directions into a displacement and updates facing
func (s *PlayerSystem) handleMovement(player *entity.Player, in Intents) int {
	dx := 0
	if in.Left {
		dx -= s.config.Physics.MoveSpeed
		player.FacingRight = false
	}
	if in.Right {
		dx += s.config.Physics.MoveSpeed
		player.FacingRight = true
	}
	player.Moving = in.Left || in.Right
	return dx
}

func (s *PlayerSystem) updateAnimation(player *entity.Player, grounded bool, now time.Duration) {
	frames := s.config.Player.WalkFrames
	if frames <= 0 {
		frames = 1
	}
	if now-player.FrameAt > s.config.Timers.AnimationFrame() {
		player.Frame = (player.Frame + 1) % frames
		player.FrameAt = now
	}

	switch {
	case !grounded && player.VY < 0:
		player.Pose = entity.PoseJump
	case player.Moving:
		player.Pose = entity.PoseWalk
	default:
		player.Pose = entity.PoseIdle
	}
}

// Jump starts a jump from the ground, or spends the double jump while the
// power-up window is open. Returns true if the player jumped.
func (s *PlayerSystem) Jump(player *entity.Player, now time.Duration) bool {
	if s.physics.IsGrounded(player) {
		player.VY = s.config.Physics.JumpSpeed
		player.HasDoubleJumped = false
		return true
	}

	if player.DoubleJumpActive(now) && !player.HasDoubleJumped {
		player.VY = s.config.Physics.JumpSpeed
		player.HasDoubleJumped = true
		return true
	}

	return false
}

// IsDead reports whether the player left the stage or touched a hazard
func (s *PlayerSystem) IsDead(player *entity.Player) bool {
	if player.X < 0 || player.X > s.stage.PixelWidth() || player.Y > s.stage.PixelHeight() {
		return true
	}
	return s.stage.IsHazard(player.CenterX(), player.CenterY())
}

// IsVictory reports whether the player's box overlaps the victory tile
func (s *PlayerSystem) IsVictory(player *entity.Player) bool {
	return s.stage.IsVictoryAt(player.X, player.Y, player.W, player.H)
}
