package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/seekstars/internal/domain/entity"
	"github.com/younwookim/seekstars/internal/infrastructure/config"
)

// Level load errors
var (
	ErrEmptyLevel = errors.New("level has no rows")
	ErrRaggedRows = errors.New("level rows differ in length")
	ErrNoVictory  = errors.New("level has no victory tile")
)

// LoadStage converts a LevelSource into a Stage entity.
// Ragged or empty grids and a missing victory tile are rejected; a missing
// spawn marker falls back to tile (2, height-3).
func LoadStage(src *config.LevelSource, cfg *config.GameConfig) (*entity.Stage, error) {
	if len(src.Rows) == 0 {
		return nil, fmt.Errorf("level %s: %w", src.Name, ErrEmptyLevel)
	}

	grid := make([][]rune, len(src.Rows))
	for y, row := range src.Rows {
		grid[y] = []rune(row)
	}

	width := len(grid[0])
	height := len(grid)
	for y, row := range grid {
		if len(row) != width {
			return nil, fmt.Errorf("level %s: row %d has %d tiles, want %d: %w",
				src.Name, y+1, len(row), width, ErrRaggedRows)
		}
	}

	lookup := buildLookup(cfg.TileMapping)

	tiles := make([]entity.Tile, 0, width*height)
	spawnX, spawnY, hasSpawn := 0, 0, false
	victoryX, victoryY, hasVictory := 0, 0, false

	for y, row := range grid {
		for x, char := range row {
			typ := lookup[char]

			// First marker in reading order wins
			switch typ {
			case config.TypeSpawn:
				if !hasSpawn {
					spawnX, spawnY, hasSpawn = x, y, true
				}
			case config.TypeVictory:
				if !hasVictory {
					victoryX, victoryY, hasVictory = x, y, true
				}
			}

			tiles = append(tiles, entity.Tile{Kind: kindOf(typ), Symbol: char})
		}
	}

	if !hasVictory {
		return nil, fmt.Errorf("level %s: %w", src.Name, ErrNoVictory)
	}

	if !hasSpawn {
		spawnX = 2
		spawnY = height - 3
		if spawnY < 0 {
			spawnY = 0
		}
	}

	stage := entity.NewStage(width, height, cfg.TileSize, tiles)
	stage.SetVictoryTile(victoryX, victoryY)
	stage.SpawnX = spawnX * cfg.TileSize
	stage.SpawnY = spawnY * cfg.TileSize
	stage.Background = src.Background

	return stage, nil
}

func buildLookup(mapping map[string]config.TileMappingConfig) map[rune]string {
	lookup := make(map[rune]string, len(mapping))
	for sym, m := range mapping {
		r := []rune(sym)
		if len(r) != 1 {
			continue
		}
		lookup[r[0]] = m.Type
	}
	return lookup
}

func kindOf(typ string) entity.TileKind {
	switch typ {
	case config.TypeWall:
		return entity.TileSolid
	case config.TypeStar:
		return entity.TileStar
	case config.TypePowerUp:
		return entity.TilePowerUp
	case config.TypeCheckpoint:
		return entity.TileCheckpoint
	case config.TypeVictory:
		return entity.TileVictory
	case config.TypeHazard:
		return entity.TileHazard
	default:
		return entity.TileEmpty
	}
}
