package system

import (
	"github.com/younwookim/seekstars/internal/domain/entity"
	"github.com/younwookim/seekstars/internal/infrastructure/config"
)

// PhysicsSystem resolves player movement against the stage's solid tiles
type PhysicsSystem struct {
	config *config.PhysicsSettings
	stage  *entity.Stage
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsSettings, stage *entity.Stage) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		stage:  stage,
	}
}

// MoveX moves the player horizontally by dx. The step is all or nothing:
// if the destination overlaps a solid tile the player does not move.
// Returns true if the move was blocked.
func (s *PhysicsSystem) MoveX(player *entity.Player, dx int) bool {
	if dx == 0 {
		return false
	}
	if s.isSolidRect(player.X+dx, player.Y, player.W, player.H) {
		return true
	}
	player.X += dx
	return false
}

// MoveY moves the player by its vertical velocity, snapping to the blocking
// tile boundary on contact, then applies gravity unless the player ended the
// step on the ground.
func (s *PhysicsSystem) MoveY(player *entity.Player) {
	if dy := player.VY; dy != 0 {
		if y, hit := s.sweepY(player, player.Y+dy); hit {
			player.Y = y
			player.VY = 0
		} else {
			player.Y += dy
		}
	}

	if s.IsGrounded(player) {
		if player.VY > 0 {
			player.VY = 0
		}
		return
	}

	player.VY += s.config.Gravity
	if s.config.MaxFallSpeed > 0 && player.VY > s.config.MaxFallSpeed {
		player.VY = s.config.MaxFallSpeed
	}
}

// sweepY walks the tile rows the box enters on its way to newY. On the first
// solid row it returns the y that leaves the box flush against it, so fast
// falls never pass through thin floors.
func (s *PhysicsSystem) sweepY(player *entity.Player, newY int) (int, bool) {
	ts := s.stage.TileSize

	if newY > player.Y {
		// Falling: floor boundary
		from := entity.FloorDiv(player.Y+player.H-1, ts) + 1
		to := entity.FloorDiv(newY+player.H-1, ts)
		for row := from; row <= to; row++ {
			if s.isSolidRow(row, player.X, player.W) {
				return row*ts - player.H, true
			}
		}
		return newY, false
	}

	// Rising: ceiling boundary
	from := entity.FloorDiv(player.Y, ts) - 1
	to := entity.FloorDiv(newY, ts)
	for row := from; row >= to; row-- {
		if s.isSolidRow(row, player.X, player.W) {
			return (row + 1) * ts, true
		}
	}
	return newY, false
}

// IsGrounded probes one pixel below the player
func (s *PhysicsSystem) IsGrounded(player *entity.Player) bool {
	return s.isSolidRect(player.X, player.Y+1, player.W, player.H)
}

// OverlapsSolid checks if any tile in the rect is solid
func (s *PhysicsSystem) OverlapsSolid(x, y, w, h int) bool {
	return s.isSolidRect(x, y, w, h)
}

// isSolidRect checks if any tile in the rect is solid
// Iterates all tiles the rectangle overlaps to handle any box size
func (s *PhysicsSystem) isSolidRect(x, y, w, h int) bool {
	tileSize := s.stage.TileSize

	// Calculate tile range that the rect overlaps
	startTX := entity.FloorDiv(x, tileSize)
	endTX := entity.FloorDiv(x+w-1, tileSize)
	startTY := entity.FloorDiv(y, tileSize)
	endTY := entity.FloorDiv(y+h-1, tileSize)

	// Check all tiles in the range
	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			if s.stage.IsSolid(tx, ty) {
				return true
			}
		}
	}

	return false
}

func (s *PhysicsSystem) isSolidRow(ty, x, w int) bool {
	tileSize := s.stage.TileSize
	for tx := entity.FloorDiv(x, tileSize); tx <= entity.FloorDiv(x+w-1, tileSize); tx++ {
		if s.stage.IsSolid(tx, ty) {
			return true
		}
	}
	return false
}
