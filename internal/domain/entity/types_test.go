package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestStage builds a 4x3 stage:
//
//	#*D#
//	.C^V
//	####
func createTestStage() *Stage {
	e := Tile{Kind: TileEmpty, Symbol: '.'}
	w := Tile{Kind: TileSolid, Symbol: '#'}
	tiles := []Tile{
		w, {Kind: TileStar, Symbol: '*'}, {Kind: TilePowerUp, Symbol: 'D'}, w,
		e, {Kind: TileCheckpoint, Symbol: 'C'}, {Kind: TileHazard, Symbol: '^'}, {Kind: TileVictory, Symbol: 'V'},
		w, w, w, w,
	}
	stage := NewStage(4, 3, 16, tiles)
	stage.SetVictoryTile(3, 1)
	return stage
}

func TestStage_Classify(t *testing.T) {
	stage := createTestStage()

	tests := []struct {
		name   string
		tx, ty int
		want   TileKind
	}{
		{"wall", 0, 0, TileSolid},
		{"star", 1, 0, TileStar},
		{"power-up", 2, 0, TilePowerUp},
		{"empty", 0, 1, TileEmpty},
		{"checkpoint", 1, 1, TileCheckpoint},
		{"hazard", 2, 1, TileHazard},
		{"victory", 3, 1, TileVictory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stage.Classify(tt.tx, tt.ty))
		})
	}
}

func TestStage_IsSolid_OutOfBounds(t *testing.T) {
	stage := createTestStage()

	outOfBoundsCases := []struct {
		name   string
		tx, ty int
	}{
		{"negative x", -1, 1},
		{"negative y", 1, -1},
		{"x too large", 4, 1},
		{"y too large", 1, 3},
		{"far away", 1000, -1000},
	}

	for _, tt := range outOfBoundsCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, stage.IsSolid(tt.tx, tt.ty))
			assert.Equal(t, TileSolid, stage.Classify(tt.tx, tt.ty))
		})
	}

	assert.False(t, stage.IsSolid(0, 1), "in-bounds empty tile is not solid")
}

func TestStage_TryConsumeStar(t *testing.T) {
	t.Run("one-shot", func(t *testing.T) {
		stage := createTestStage()
		require.Equal(t, 1, stage.TotalCollectibles())

		assert.True(t, stage.TryConsumeStar(20, 5))
		assert.False(t, stage.TryConsumeStar(20, 5))

		assert.Equal(t, 0, stage.TotalCollectibles())
		assert.Equal(t, TileEmpty, stage.Classify(1, 0))
		assert.Equal(t, 1, stage.InitialStars, "initial total is captured at load")
	})

	t.Run("out of range never mutates", func(t *testing.T) {
		stage := createTestStage()
		assert.False(t, stage.TryConsumeStar(-1, 0))
		assert.False(t, stage.TryConsumeStar(0, 100))
		assert.Equal(t, 1, stage.TotalCollectibles())
	})

	t.Run("other kinds are untouched", func(t *testing.T) {
		stage := createTestStage()
		assert.False(t, stage.TryConsumeStar(40, 5))
		assert.Equal(t, TilePowerUp, stage.Classify(2, 0))
	})
}

func TestStage_PowerUpRespawn(t *testing.T) {
	now := 3 * time.Second

	t.Run("restored at now+delay", func(t *testing.T) {
		stage := createTestStage()
		require.True(t, stage.TryConsumePowerUp(40, 5, now))
		assert.Equal(t, TileEmpty, stage.Classify(2, 0))

		at, pending := stage.PendingRespawn(2, 0)
		require.True(t, pending)
		assert.Equal(t, now+RespawnDelay, at)

		stage.Tick(now + RespawnDelay)

		assert.Equal(t, TilePowerUp, stage.Classify(2, 0))
		assert.Equal(t, 'D', stage.GetTile(2, 0).Symbol)
		_, pending = stage.PendingRespawn(2, 0)
		assert.False(t, pending)
	})

	t.Run("not restored a millisecond early", func(t *testing.T) {
		stage := createTestStage()
		require.True(t, stage.TryConsumePowerUp(40, 5, now))

		stage.Tick(now + RespawnDelay - time.Millisecond)

		assert.Equal(t, TileEmpty, stage.Classify(2, 0))
		_, pending := stage.PendingRespawn(2, 0)
		assert.True(t, pending)
	})

	t.Run("consumed tile cannot be consumed again", func(t *testing.T) {
		stage := createTestStage()
		require.True(t, stage.TryConsumePowerUp(40, 5, now))
		assert.False(t, stage.TryConsumePowerUp(40, 5, now+time.Second))

		at, _ := stage.PendingRespawn(2, 0)
		assert.Equal(t, now+RespawnDelay, at, "timer is not pushed back")
	})
}

func TestStage_ReadOnlyPredicates(t *testing.T) {
	stage := createTestStage()

	for i := 0; i < 3; i++ {
		assert.True(t, stage.IsCheckpoint(20, 20))
	}
	assert.Equal(t, TileCheckpoint, stage.Classify(1, 1))

	assert.True(t, stage.IsHazard(40, 20))
	assert.False(t, stage.IsCheckpoint(-5, 20))
	assert.False(t, stage.IsHazard(40, 200))
}

func TestStage_IsVictoryAt(t *testing.T) {
	stage := createTestStage()

	assert.True(t, stage.IsVictoryAt(48, 16, 16, 16), "exactly on the tile")
	assert.True(t, stage.IsVictoryAt(33, 16, 16, 16), "one pixel of overlap")
	assert.False(t, stage.IsVictoryAt(32, 16, 16, 16), "touching edges only")

	tx, ty, ok := stage.VictoryTile()
	assert.True(t, ok)
	assert.Equal(t, 3, tx)
	assert.Equal(t, 1, ty)

	noVictory := NewStage(1, 1, 16, []Tile{{Kind: TileEmpty}})
	assert.False(t, noVictory.IsVictoryAt(0, 0, 16, 16))
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 32, 0},
		{31, 32, 0},
		{32, 32, 1},
		{-1, 32, -1},
		{-32, 32, -1},
		{-33, 32, -2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FloorDiv(tt.a, tt.b), "%d / %d", tt.a, tt.b)
	}
}

func TestTileKind_String(t *testing.T) {
	assert.Equal(t, "Solid", TileSolid.String())
	assert.Equal(t, "PowerUp", TilePowerUp.String())
	assert.Equal(t, "Unknown", TileKind(99).String())
}
