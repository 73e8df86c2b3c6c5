// Package session runs one level: it owns the stage and the player, steps
// the simulation on a fixed clock and reports results to the save store.
package session

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/seekstars/internal/application/state"
	"github.com/younwookim/seekstars/internal/application/system"
	"github.com/younwookim/seekstars/internal/domain/entity"
	"github.com/younwookim/seekstars/internal/infrastructure/config"
	"github.com/younwookim/seekstars/internal/infrastructure/savedata"
)

// Frame is the outcome of one Step
type Frame struct {
	Index  int
	Now    time.Duration
	Events system.Events
	Jumped bool
	State  state.GameState
}

// HUD holds the numbers shown on screen while playing
type HUD struct {
	Stars             int
	TotalStars        int
	DoubleJumpSeconds int
	ElapsedSeconds    int
	Percent           int
	Checkpoint        bool

	// Set once the level is cleared
	CompletionTime float64
	Best           savedata.Record
}

// Session is a single level being played
type Session struct {
	name   string
	source *config.LevelSource
	config *config.GameConfig
	store  savedata.Store
	logger *log.Logger

	stage   *entity.Stage
	player  *entity.Player
	players *system.PlayerSystem

	state     state.GameState
	now       time.Duration
	step      time.Duration
	frames    int
	startedAt time.Duration

	completionTime float64
	best           savedata.Record
}

// New loads the level and places the player on its spawn point.
// store may be nil, in which case results are not persisted.
func New(name string, src *config.LevelSource, cfg *config.GameConfig, store savedata.Store, logger *log.Logger) (*Session, error) {
	s := &Session{
		name:   name,
		source: src,
		config: cfg,
		store:  store,
		logger: logger.With("level", name),
		step:   cfg.Display.FrameDuration(),
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	if store != nil {
		best, err := store.Get(name)
		if err != nil {
			s.logger.Warn("cannot read best record", "error", err)
		}
		s.best = best
	}

	s.logger.Debug("level loaded",
		"width", s.stage.Width,
		"height", s.stage.Height,
		"stars", s.stage.InitialStars,
	)
	return s, nil
}

// load builds a fresh stage and player from the level source
func (s *Session) load() error {
	stage, err := system.LoadStage(s.source, s.config)
	if err != nil {
		return err
	}

	s.stage = stage
	s.player = entity.NewPlayer(stage.SpawnX, stage.SpawnY, s.config.Player.Width, s.config.Player.Height)
	s.players = system.NewPlayerSystem(s.config, stage)
	s.state = state.StatePlaying
	s.startedAt = s.now
	s.completionTime = 0
	return nil
}

// Reload discards all level state and starts the level over
func (s *Session) Reload() {
	// The source already loaded once, so it cannot fail now
	if err := s.load(); err != nil {
		s.logger.Error("reload failed", "error", err)
		return
	}
	s.logger.Debug("level reloaded")
}

// Respawn returns the player to the last checkpoint, keeping stars and timers
func (s *Session) Respawn() {
	s.player.Respawn()
	s.state = state.StatePlaying
}

// Step advances the simulation by one frame.
//
// Restart respawns a dead player and reloads the level otherwise. While the
// player is dead the stage keeps ticking but the player does not move. Once
// the level is cleared only Restart has an effect.
func (s *Session) Step(in system.Intents) Frame {
	s.now += s.step
	s.frames++

	switch {
	case in.Restart && s.state == state.StateDead, in.Respawn && s.state != state.StateStageClear:
		s.Respawn()
	case in.Restart:
		s.Reload()
	}

	f := Frame{Index: s.frames, Now: s.now}

	switch s.state {
	case state.StateStageClear:
		f.State = s.state
		return f
	case state.StateDead:
		s.stage.Tick(s.now)
		f.State = s.state
		return f
	}

	if in.Jump {
		f.Jumped = s.players.Jump(s.player, s.now)
	}

	s.stage.Tick(s.now)
	f.Events = s.players.Update(s.player, in, s.now)

	switch {
	case f.Events.Won:
		s.win()
	case f.Events.Dead:
		s.state = state.StateDead
		s.logger.Debug("player died", "x", s.player.X, "y", s.player.Y)
	}

	if f.Events.CheckpointReached && !f.Events.Won {
		s.logger.Debug("checkpoint", "x", s.player.RespawnX, "y", s.player.RespawnY)
	}

	f.State = s.state
	return f
}

func (s *Session) win() {
	s.state = state.StateStageClear
	s.completionTime = savedata.RoundTime((s.now - s.startedAt).Seconds())

	s.logger.Info("level cleared",
		"time", s.completionTime,
		"stars", s.player.Stars,
		"total", s.stage.InitialStars,
	)

	if s.store == nil {
		return
	}
	best, err := s.store.Update(s.name, s.completionTime, s.player.Stars, s.stage.InitialStars)
	if err != nil {
		s.logger.Error("cannot save result", "error", err)
		return
	}
	s.best = best
}

// HUD returns the values to display for the current frame
func (s *Session) HUD() HUD {
	h := HUD{
		Stars:             s.player.Stars,
		TotalStars:        s.stage.InitialStars,
		DoubleJumpSeconds: s.player.DoubleJumpSecondsRemaining(s.now),
		ElapsedSeconds:    int((s.now - s.startedAt) / time.Second),
		Checkpoint:        s.player.ShowCheckpointMessage(s.now),
		Best:              s.best,
	}
	if h.TotalStars > 0 {
		h.Percent = int(math.Round(float64(h.Stars) / float64(h.TotalStars) * 100))
	}
	if s.state == state.StateStageClear {
		h.CompletionTime = s.completionTime
		h.ElapsedSeconds = int(s.completionTime)
	}
	return h
}

// Camera returns the top-left corner of a viewW x viewH view following the player
func (s *Session) Camera(viewW, viewH int) (x, y int) {
	return system.CameraOffset(
		s.player.CenterX(), s.player.CenterY(),
		s.stage.PixelWidth(), s.stage.PixelHeight(),
		viewW, viewH,
	)
}

// Name returns the level identifier
func (s *Session) Name() string {
	return s.name
}

// Stage returns the live tile grid
func (s *Session) Stage() *entity.Stage {
	return s.stage
}

func (s *Session) Player() *entity.Player {
	return s.player
}

func (s *Session) State() state.GameState {
	return s.state
}

// Now returns simulated time since the session started
func (s *Session) Now() time.Duration {
	return s.now
}

func (s *Session) Frames() int {
	return s.frames
}

// CompletionTime returns the clear time in seconds, or 0 before victory
func (s *Session) CompletionTime() float64 {
	return s.completionTime
}

// Best returns the stored record for this level
func (s *Session) Best() savedata.Record {
	return s.best
}

func (s *Session) Config() *config.GameConfig {
	return s.config
}
