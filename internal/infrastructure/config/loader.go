package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// LevelExt is the file extension of level sources
const LevelExt = ".txt"

// LevelsDir is where a config directory keeps its levels
const LevelsDir = "levels"

// Loader loads game configuration and levels using fs.FS interface
type Loader struct {
	fsys      fs.FS
	basePath  string
	levelsDir string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return NewFSLoader(os.DirFS(basePath), basePath)
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:      fsys,
		basePath:  basePath,
		levelsDir: LevelsDir,
	}
}

// NewLevelsLoader creates a loader whose level files sit directly in dir
func NewLevelsLoader(dir string) *Loader {
	return &Loader{
		fsys:      os.DirFS(dir),
		basePath:  dir,
		levelsDir: ".",
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadGame loads game.json. Fields missing from the file keep their defaults.
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	cfg := DefaultGameConfig()
	mapping := cfg.TileMapping
	cfg.TileMapping = nil
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}
	if cfg.TileMapping == nil {
		cfg.TileMapping = mapping
	}

	return cfg, nil
}

// ListLevels returns level names (file names without extension), sorted
func (l *Loader) ListLevels() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, l.levelsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != LevelExt {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), LevelExt))
	}
	sort.Strings(names)

	return names, nil
}

// LoadLevel loads <name>.txt from the levels directory
func (l *Loader) LoadLevel(name string) (*LevelSource, error) {
	p := path.Join(l.levelsDir, name+LevelExt)
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	return ParseLevel(name, bytes.NewReader(data))
}
