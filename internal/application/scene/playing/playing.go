// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/seekstars/internal/application/replay"
	"github.com/younwookim/seekstars/internal/application/scene"
	"github.com/younwookim/seekstars/internal/application/session"
	"github.com/younwookim/seekstars/internal/application/state"
	"github.com/younwookim/seekstars/internal/application/system"
	"github.com/younwookim/seekstars/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorWall       = color.RGBA{80, 80, 100, 255}
	colorHazard     = color.RGBA{200, 50, 50, 255}
	colorStar       = color.RGBA{255, 215, 0, 255}
	colorPowerUp    = color.RGBA{80, 220, 255, 255}
	colorCheckpoint = color.RGBA{240, 240, 240, 255}
	colorVictory    = color.RGBA{60, 200, 90, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorPlayerAir  = color.RGBA{140, 230, 140, 255}
	colorEye        = color.RGBA{20, 20, 20, 255}
	colorDim        = color.RGBA{0, 0, 0, 0xAA}
	colorHUDBox     = color.RGBA{0, 0, 0, 0x80}
)

// backgrounds tints the sky for known level backgrounds
var backgrounds = map[string]color.RGBA{
	"sky.png":    {110, 170, 230, 255},
	"cave.png":   {30, 25, 40, 255},
	"sunset.png": {200, 120, 90, 255},
}

// Options configures a Playing scene
type Options struct {
	// RecordPath enables intent recording to this file when not empty
	RecordPath string

	// OnMenu builds the scene shown when the player presses M.
	// When nil, M closes the game.
	OnMenu func() scene.Scene
}

// Playing is the main gameplay scene
type Playing struct {
	session *session.Session
	input   *system.InputSystem
	logger  *log.Logger
	opts    Options
	screenW int
	screenH int
	step    float32

	// Checkpoint banner fade
	banner      *gween.Tween
	bannerAlpha uint8

	// Input recording
	recorder *replay.Recorder
}

// New creates a new Playing scene over a loaded session.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(sess *session.Session, input *system.InputSystem, screenW, screenH int, logger *log.Logger, opts Options) *Playing {
	cfg := sess.Config()
	p := &Playing{
		session: sess,
		input:   input,
		logger:  logger,
		opts:    opts,
		screenW: screenW,
		screenH: screenH,
		step:    float32(cfg.Display.FrameDuration().Seconds()),
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(sess.Name(), cfg.Display.Framerate)
		logger.Info("recording enabled", "path", opts.RecordPath)
	}

	return p
}

func (p *Playing) OnEnter() {}

// OnExit flushes any pending recording
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, scene.ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if p.opts.OnMenu == nil {
			return nil, scene.ErrQuit
		}
		return p.opts.OnMenu(), nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	p.advance(p.input.GetInput())
	return nil, nil // nil = stay on this scene
}

// advance runs one simulation frame and updates presentation state
func (p *Playing) advance(in system.Intents) session.Frame {
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	f := p.session.Step(in)

	if f.Events.CheckpointReached {
		// Standing on a checkpoint re-arms the banner every frame
		p.banner = gween.New(255, 0, float32(p.session.Config().Timers.CheckpointMessage().Seconds()), ease.InQuad)
	}
	if p.banner != nil {
		alpha, done := p.banner.Update(p.step)
		p.bannerAlpha = uint8(alpha)
		if done {
			p.banner = nil
			p.bannerAlpha = 0
		}
	}

	if f.Events.Won {
		p.saveRecording()
	}

	return f
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	if err := p.recorder.Save(p.opts.RecordPath); err != nil {
		p.logger.Error("failed to save recording", "error", err)
		return
	}
	p.logger.Info("recording saved", "path", p.opts.RecordPath, "frames", p.recorder.FrameCount())
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	stage := p.session.Stage()

	bg, ok := backgrounds[stage.Background]
	if !ok {
		bg = colorBG
	}
	screen.Fill(bg)

	camX, camY := p.session.Camera(p.screenW, p.screenH)

	p.drawTiles(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)
	p.drawHUD(screen)

	if p.bannerAlpha > 0 && !p.session.State().Finished() {
		p.drawBanner(screen)
	}

	switch p.session.State() {
	case state.StateDead:
		p.drawOverlay(screen, "You fell off the world!", "Press R to respawn or M for menu")
	case state.StateStageClear:
		hud := p.session.HUD()
		p.drawOverlay(screen, "You Win!", fmt.Sprintf(
			"Time: %.2fs | Stars: %d/%d (%d%%)\nBest: %s\nPress R to restart or M for menu",
			hud.CompletionTime, hud.Stars, hud.TotalStars, hud.Percent, formatBest(hud),
		))
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	stage := p.session.Stage()
	ts := stage.TileSize

	startTileX := camX / ts
	startTileY := camY / ts
	endTileX := (camX+p.screenW)/ts + 1
	endTileY := (camY+p.screenH)/ts + 1

	for ty := startTileY; ty <= endTileY && ty < stage.Height; ty++ {
		for tx := startTileX; tx <= endTileX && tx < stage.Width; tx++ {
			kind := stage.Classify(tx, ty)
			if kind == entity.TileEmpty {
				continue
			}

			x := float64(tx*ts - camX)
			y := float64(ty*ts - camY)
			size := float64(ts)

			switch kind {
			case entity.TileSolid:
				ebitenutil.DrawRect(screen, x, y, size, size, colorWall)
			case entity.TileHazard:
				ebitenutil.DrawRect(screen, x, y+size/2, size, size/2, colorHazard)
			case entity.TileStar:
				ebitenutil.DrawRect(screen, x+size/4, y+size/4, size/2, size/2, colorStar)
			case entity.TilePowerUp:
				ebitenutil.DrawCircle(screen, x+size/2, y+size/2, size/3, colorPowerUp)
			case entity.TileCheckpoint:
				ebitenutil.DrawRect(screen, x+size/2-2, y, 4, size, colorCheckpoint)
				ebitenutil.DrawRect(screen, x+size/2+2, y, size/3, size/4, colorVictory)
			case entity.TileVictory:
				ebitenutil.DrawRect(screen, x, y, size, size, colorVictory)
			}
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY int) {
	player := p.session.Player()

	x := float64(player.X - camX)
	y := float64(player.Y - camY)
	w := float64(player.W)
	h := float64(player.H)

	c := colorPlayer
	if player.Pose == entity.PoseJump {
		c = colorPlayerAir
	}

	// Walk cycle bobs the body by one pixel per frame
	bob := 0.0
	if player.Pose == entity.PoseWalk {
		bob = float64(player.Frame % 2)
	}
	ebitenutil.DrawRect(screen, x, y+bob, w, h-bob, c)

	eyeX := x + w*0.65
	if !player.FacingRight {
		eyeX = x + w*0.35 - 4
	}
	ebitenutil.DrawRect(screen, eyeX, y+bob+h*0.25, 4, 4, colorEye)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	hud := p.session.HUD()

	ebitenutil.DrawRect(screen, 4, 4, 150, 52, colorHUDBox)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Stars: %d/%d", hud.Stars, hud.TotalStars), 10, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Double Jump: %ds", hud.DoubleJumpSeconds), 10, 24)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time: %ds", hud.ElapsedSeconds), 10, 40)

	if p.recorder != nil {
		ebitenutil.DebugPrintAt(screen, "REC", p.screenW-30, 8)
	}
}

func (p *Playing) drawBanner(screen *ebiten.Image) {
	a := p.bannerAlpha
	ebitenutil.DrawRect(screen, float64(p.screenW/2-70), 60, 140, 24, color.RGBA{0, 0, 0, a / 2})
	ebitenutil.DrawRect(screen, float64(p.screenW/2-70), 84, 140, 2, color.RGBA{colorStar.R, colorStar.G, colorStar.B, a})
	ebitenutil.DebugPrintAt(screen, "Checkpoint reached!", p.screenW/2-57, 66)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, title, subtitle string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorDim)
	ebitenutil.DebugPrintAt(screen, title, (p.screenW-len(title)*6)/2, p.screenH/2-40)
	ebitenutil.DebugPrintAt(screen, subtitle, 20, p.screenH/2)
}

func formatBest(hud session.HUD) string {
	if !hud.Best.HasTime() {
		return "N/A"
	}
	return fmt.Sprintf("%.2fs, %d/%d stars", *hud.Best.BestTime, hud.Best.BestStars, hud.Best.TotalStars)
}
