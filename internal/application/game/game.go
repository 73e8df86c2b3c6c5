// Package game runs the active scene inside ebiten's loop.
package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/seekstars/internal/application/scene"
)

// Game implements ebiten.Game over a chain of scenes.
// Each Update gives the current scene one fixed frame.
type Game struct {
	current     scene.Scene
	screenW     int
	screenH     int
	logger      *log.Logger
	transitions int
}

// New enters the initial scene and returns a game ready for ebiten.RunGame
func New(initial scene.Scene, screenW, screenH int, logger *log.Logger) *Game {
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		logger:  logger,
	}
	g.current.OnEnter()
	return g
}

// Update runs one frame of the current scene.
// scene.ErrQuit becomes ebiten.Termination after the scene has exited.
func (g *Game) Update() error {
	next, err := g.current.Update()
	switch {
	case errors.Is(err, scene.ErrQuit):
		g.current.OnExit()
		g.logger.Debug("quit requested", "scene", sceneName(g.current))
		return ebiten.Termination
	case err != nil:
		return err
	case next != nil:
		g.switchTo(next)
	}
	return nil
}

func (g *Game) switchTo(next scene.Scene) {
	g.logger.Debug("scene change", "from", sceneName(g.current), "to", sceneName(next))
	g.current.OnExit()
	g.current = next
	g.current.OnEnter()
	g.transitions++
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout keeps the logical resolution fixed; ebiten scales to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Transitions counts scene changes since New
func (g *Game) Transitions() int {
	return g.transitions
}

func sceneName(s scene.Scene) string {
	return fmt.Sprintf("%T", s)
}
