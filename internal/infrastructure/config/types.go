package config

import "time"

// GameConfig is the root config for game.json
type GameConfig struct {
	Display     DisplayConfig                `json:"display"`
	Physics     PhysicsSettings              `json:"physics"`
	Player      PlayerConfig                 `json:"player"`
	Timers      TimersConfig                 `json:"timers"`
	TileSize    int                          `json:"tileSize"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// PhysicsSettings values are pixels and pixels per frame
type PhysicsSettings struct {
	Gravity      int `json:"gravity"`
	MaxFallSpeed int `json:"maxFallSpeed"`
	MoveSpeed    int `json:"moveSpeed"`
	JumpSpeed    int `json:"jumpSpeed"` // negative is up
}

type PlayerConfig struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	WalkFrames int `json:"walkFrames"`
}

// TimersConfig durations are milliseconds
type TimersConfig struct {
	DoubleJumpMs        int `json:"doubleJumpMs"`
	CheckpointMessageMs int `json:"checkpointMessageMs"`
	AnimationFrameMs    int `json:"animationFrameMs"`
}

// DoubleJump returns the power-up window length
func (t TimersConfig) DoubleJump() time.Duration {
	return time.Duration(t.DoubleJumpMs) * time.Millisecond
}

// CheckpointMessage returns how long the checkpoint banner stays up
func (t TimersConfig) CheckpointMessage() time.Duration {
	return time.Duration(t.CheckpointMessageMs) * time.Millisecond
}

// AnimationFrame returns the walk animation frame length
func (t TimersConfig) AnimationFrame() time.Duration {
	return time.Duration(t.AnimationFrameMs) * time.Millisecond
}

// FrameDuration returns the simulated time advanced per update
func (d DisplayConfig) FrameDuration() time.Duration {
	if d.Framerate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(d.Framerate)
}

// TileMappingConfig maps one level symbol to a tile type.
// Type is one of wall, star, powerup, checkpoint, victory, spawn, hazard, empty.
type TileMappingConfig struct {
	Type string `json:"type"`
}

// Tile type names used in tileMapping
const (
	TypeWall       = "wall"
	TypeStar       = "star"
	TypePowerUp    = "powerup"
	TypeCheckpoint = "checkpoint"
	TypeVictory    = "victory"
	TypeSpawn      = "spawn"
	TypeHazard     = "hazard"
	TypeEmpty      = "empty"
)

// DefaultGameConfig returns the built-in tuning, used when no game.json is given
func DefaultGameConfig() *GameConfig {
	mapping := map[string]TileMappingConfig{
		"#": {Type: TypeWall},
		"*": {Type: TypeStar},
		"D": {Type: TypePowerUp},
		"d": {Type: TypePowerUp},
		"C": {Type: TypeCheckpoint},
		"c": {Type: TypeCheckpoint},
		"V": {Type: TypeVictory},
		"S": {Type: TypeSpawn},
		"^": {Type: TypeHazard},
		".": {Type: TypeEmpty},
	}
	for _, r := range "123456789" {
		mapping[string(r)] = TileMappingConfig{Type: TypeWall}
	}

	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 480,
			Scale:        1,
			Framerate:    60,
			Title:        "Seek the Stars",
		},
		Physics: PhysicsSettings{
			Gravity:      1,
			MaxFallSpeed: 24,
			MoveSpeed:    4,
			JumpSpeed:    -16,
		},
		Player: PlayerConfig{
			Width:      32,
			Height:     32,
			WalkFrames: 3,
		},
		Timers: TimersConfig{
			DoubleJumpMs:        10000,
			CheckpointMessageMs: 1000,
			AnimationFrameMs:    150,
		},
		TileSize:    32,
		TileMapping: mapping,
	}
}
