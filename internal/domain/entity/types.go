package entity

import "time"

// RespawnDelay is how long a consumed power-up tile stays empty.
const RespawnDelay = 5 * time.Second

// TileKind classifies a tile for collision and pickups
type TileKind int

const (
	TileEmpty TileKind = iota
	TileSolid
	TileStar
	TilePowerUp
	TileCheckpoint
	TileVictory
	TileHazard
)

// String returns the string representation of the tile kind
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "Empty"
	case TileSolid:
		return "Solid"
	case TileStar:
		return "Star"
	case TilePowerUp:
		return "PowerUp"
	case TileCheckpoint:
		return "Checkpoint"
	case TileVictory:
		return "Victory"
	case TileHazard:
		return "Hazard"
	default:
		return "Unknown"
	}
}

// Tile represents a single tile in the stage.
// Symbol is the glyph from the level source, kept for sprite variants.
type Tile struct {
	Kind   TileKind
	Symbol rune
}

// TileCoord is a tile index pair
type TileCoord struct {
	X, Y int
}

type pendingRespawn struct {
	at   time.Duration
	tile Tile
}

// Stage represents the current level's mutable tile data
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    []Tile // row-major, len == Width*Height

	SpawnX int
	SpawnY int

	Background   string
	InitialStars int

	victory    TileCoord
	hasVictory bool
	respawns   map[TileCoord]pendingRespawn
}

// NewStage creates a stage from row-major tiles.
// tiles must hold exactly width*height entries.
func NewStage(width, height, tileSize int, tiles []Tile) *Stage {
	s := &Stage{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Tiles:    tiles,
		respawns: make(map[TileCoord]pendingRespawn),
	}
	s.InitialStars = s.TotalCollectibles()
	return s
}

// SetVictoryTile designates the tile that ends the level
func (s *Stage) SetVictoryTile(tx, ty int) {
	s.victory = TileCoord{X: tx, Y: ty}
	s.hasVictory = true
}

// VictoryTile returns the designated victory tile, if any
func (s *Stage) VictoryTile() (tx, ty int, ok bool) {
	return s.victory.X, s.victory.Y, s.hasVictory
}

func (s *Stage) inBounds(tx, ty int) bool {
	return tx >= 0 && tx < s.Width && ty >= 0 && ty < s.Height
}

// GetTile returns the tile at the given tile coordinates.
// Anything outside the grid reads as a solid wall.
func (s *Stage) GetTile(tx, ty int) Tile {
	if !s.inBounds(tx, ty) {
		return Tile{Kind: TileSolid, Symbol: '#'}
	}
	return s.Tiles[ty*s.Width+tx]
}

// Classify returns the kind of the tile at tile coordinates
func (s *Stage) Classify(tx, ty int) TileKind {
	return s.GetTile(tx, ty).Kind
}

// IsSolid reports whether the tile at tile coordinates blocks movement
func (s *Stage) IsSolid(tx, ty int) bool {
	return s.Classify(tx, ty) == TileSolid
}

// TileAtPixel converts pixel coordinates to tile coordinates
func (s *Stage) TileAtPixel(px, py int) (tx, ty int) {
	return FloorDiv(px, s.TileSize), FloorDiv(py, s.TileSize)
}

// kindAtPixel returns the kind under a pixel, or ok=false outside the grid.
// Pickup checks use this so the edges never count as anything.
func (s *Stage) kindAtPixel(px, py int) (TileCoord, TileKind, bool) {
	tx, ty := s.TileAtPixel(px, py)
	if !s.inBounds(tx, ty) {
		return TileCoord{}, TileEmpty, false
	}
	return TileCoord{X: tx, Y: ty}, s.Tiles[ty*s.Width+tx].Kind, true
}

func (s *Stage) set(c TileCoord, t Tile) {
	s.Tiles[c.Y*s.Width+c.X] = t
}

// TryConsumeStar empties the star under the pixel and reports whether one was there
func (s *Stage) TryConsumeStar(px, py int) bool {
	c, kind, ok := s.kindAtPixel(px, py)
	if !ok || kind != TileStar {
		return false
	}
	s.set(c, Tile{Kind: TileEmpty, Symbol: '.'})
	return true
}

// TryConsumePowerUp empties the power-up under the pixel and schedules it
// to come back at now+RespawnDelay.
func (s *Stage) TryConsumePowerUp(px, py int, now time.Duration) bool {
	c, kind, ok := s.kindAtPixel(px, py)
	if !ok || kind != TilePowerUp {
		return false
	}
	s.respawns[c] = pendingRespawn{at: now + RespawnDelay, tile: s.GetTile(c.X, c.Y)}
	s.set(c, Tile{Kind: TileEmpty, Symbol: '.'})
	return true
}

// IsCheckpoint reports whether the pixel lies on a checkpoint tile
func (s *Stage) IsCheckpoint(px, py int) bool {
	_, kind, ok := s.kindAtPixel(px, py)
	return ok && kind == TileCheckpoint
}

// IsHazard reports whether the pixel lies on a hazard tile
func (s *Stage) IsHazard(px, py int) bool {
	_, kind, ok := s.kindAtPixel(px, py)
	return ok && kind == TileHazard
}

// IsVictoryAt reports whether the rect overlaps the victory tile
func (s *Stage) IsVictoryAt(x, y, w, h int) bool {
	if !s.hasVictory {
		return false
	}
	vx := s.victory.X * s.TileSize
	vy := s.victory.Y * s.TileSize
	return RectOverlap(x, y, w, h, vx, vy, s.TileSize, s.TileSize)
}

// Tick restores every power-up whose respawn time has passed
func (s *Stage) Tick(now time.Duration) {
	for c, p := range s.respawns {
		if now >= p.at {
			s.set(c, p.tile)
			delete(s.respawns, c)
		}
	}
}

// PendingRespawn returns the scheduled respawn time for a consumed power-up
func (s *Stage) PendingRespawn(tx, ty int) (time.Duration, bool) {
	p, ok := s.respawns[TileCoord{X: tx, Y: ty}]
	return p.at, ok
}

// TotalCollectibles counts the stars still on the stage
func (s *Stage) TotalCollectibles() int {
	n := 0
	for _, t := range s.Tiles {
		if t.Kind == TileStar {
			n++
		}
	}
	return n
}

// PixelWidth returns the stage width in pixels
func (s *Stage) PixelWidth() int {
	return s.Width * s.TileSize
}

// PixelHeight returns the stage height in pixels
func (s *Stage) PixelHeight() int {
	return s.Height * s.TileSize
}

// FloorDiv divides rounding toward negative infinity
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// RectOverlap reports whether two rects share any area
func RectOverlap(x1, y1, w1, h1, x2, y2, w2, h2 int) bool {
	return !(x1+w1 <= x2 || x1 >= x2+w2 || y1+h1 <= y2 || y1 >= y2+h2)
}
