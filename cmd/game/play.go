package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/seekstars/internal/application/game"
	"github.com/younwookim/seekstars/internal/application/scene"
	"github.com/younwookim/seekstars/internal/application/scene/menu"
	"github.com/younwookim/seekstars/internal/application/scene/playing"
	"github.com/younwookim/seekstars/internal/application/system"
	"github.com/younwookim/seekstars/internal/infrastructure/savedata"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level, or open the level menu",
	Long: `Starts the game window. With a level name the level starts at once;
without one the level select menu opens.

Controls:
  Left/Right, A/D   Move
  Space, Up, W      Jump (again in the air with the power-up)
  R                 Respawn when dead, restart otherwise
  M                 Back to the menu
  F5                Save the recording now
  Esc               Quit

Examples:
  seekstars play
  seekstars play 02_caverns
  seekstars play 02_caverns --record run.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	store, err := openStore(flagStore, flagDBPath, a.logger)
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}
	defer store.Close()

	levels, err := a.levels.ListLevels()
	if err != nil {
		return err
	}

	flow := newSceneFlow(a, store, levels, flagRecord)

	var first scene.Scene = flow.menu()
	if len(args) == 1 {
		if first, err = flow.play(args[0]); err != nil {
			return err
		}
	}

	display := a.cfg.Display
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	g := game.New(first, display.ScreenWidth, display.ScreenHeight, a.logger)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// sceneFlow links the menu and playing scenes to each other
type sceneFlow struct {
	app        *app
	store      savedata.Store
	levels     []string
	recordPath string
	input      *system.InputSystem
}

func newSceneFlow(a *app, store savedata.Store, levels []string, recordPath string) *sceneFlow {
	return &sceneFlow{
		app:        a,
		store:      store,
		levels:     levels,
		recordPath: recordPath,
		input:      system.NewInputSystem(system.DefaultKeyBindings()),
	}
}

func (f *sceneFlow) menu() scene.Scene {
	d := f.app.cfg.Display
	return menu.New(f.levels, f.store, f.play, d.ScreenWidth, d.ScreenHeight, f.app.logger)
}

func (f *sceneFlow) play(level string) (scene.Scene, error) {
	sess, err := f.app.newSession(level, f.store)
	if err != nil {
		return nil, err
	}
	d := f.app.cfg.Display
	return playing.New(sess, f.input, d.ScreenWidth, d.ScreenHeight, f.app.logger.With("level", level), playing.Options{
		RecordPath: f.recordPath,
		OnMenu:     f.menu,
	}), nil
}
