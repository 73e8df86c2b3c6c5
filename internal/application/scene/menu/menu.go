// Package menu provides the level-select scene.
package menu

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/seekstars/internal/application/scene"
	"github.com/younwookim/seekstars/internal/infrastructure/savedata"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{5, 5, 5, 255}
	colorPanel    = color.RGBA{255, 255, 255, 0x33}
	colorRow      = color.RGBA{170, 170, 170, 0x44}
	colorOutline  = color.RGBA{255, 220, 0, 255}
	colorStarOn   = color.RGBA{255, 220, 0, 255}
	colorStarOff  = color.RGBA{255, 255, 255, 0x44}
	colorSelected = color.RGBA{255, 68, 68, 0x66}
)

// Layout
const (
	titleY      = 40
	baseY       = 100
	itemSpacing = 44
	itemHeight  = 36
)

// PlayFunc builds the scene that plays a level
type PlayFunc func(level string) (scene.Scene, error)

// Entry is one row of the level list
type Entry struct {
	Level  string
	Record savedata.Record
}

type action int

const (
	actNone action = iota
	actUp
	actDown
	actSelect
	actQuit
)

// Menu is the level-select scene
type Menu struct {
	levels   []string
	entries  []Entry
	selector *Selector
	store    savedata.Store
	play     PlayFunc
	logger   *log.Logger
	screenW  int
	screenH  int

	ticks   int
	message string
}

// New creates the menu over the given level names.
// store may be nil, in which case no records are shown.
func New(levels []string, store savedata.Store, play PlayFunc, screenW, screenH int, logger *log.Logger) *Menu {
	return &Menu{
		levels:   levels,
		selector: NewSelector(len(levels), VisibleRows),
		store:    store,
		play:     play,
		logger:   logger,
		screenW:  screenW,
		screenH:  screenH,
	}
}

// OnEnter reloads best records so results from the last run show up
func (m *Menu) OnEnter() {
	m.entries = LoadEntries(m.levels, m.store, m.logger)
}

func (m *Menu) OnExit() {}

// LoadEntries pairs each level with its stored record
func LoadEntries(levels []string, store savedata.Store, logger *log.Logger) []Entry {
	entries := make([]Entry, len(levels))
	for i, level := range levels {
		entries[i].Level = level
		if store == nil {
			continue
		}
		rec, err := store.Get(level)
		if err != nil {
			logger.Warn("cannot read record", "level", level, "error", err)
			continue
		}
		entries[i].Record = rec
	}
	return entries
}

// Update handles menu navigation (implements scene.Scene)
func (m *Menu) Update() (scene.Scene, error) {
	m.ticks++
	return m.apply(readAction())
}

func readAction() action {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		return actDown
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		return actUp
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return actSelect
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return actQuit
	}
	return actNone
}

func (m *Menu) apply(a action) (scene.Scene, error) {
	switch a {
	case actQuit:
		return nil, scene.ErrQuit
	case actDown:
		m.selector.Next()
	case actUp:
		m.selector.Prev()
	case actSelect:
		if m.selector.Empty() {
			return nil, nil
		}
		level := m.levels[m.selector.Index()]
		next, err := m.play(level)
		if err != nil {
			m.logger.Error("cannot start level", "level", level, "error", err)
			m.message = fmt.Sprintf("Cannot load %s", Title(level))
			return nil, nil
		}
		m.message = ""
		return next, nil
	}
	return nil, nil
}

// Selected returns the highlighted level name, or "" if there are none
func (m *Menu) Selected() string {
	if m.selector.Empty() {
		return ""
	}
	return m.levels[m.selector.Index()]
}

// Draw renders the level list
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	if m.selector.Empty() {
		ebitenutil.DebugPrintAt(screen, "No levels found in levels/", m.screenW/2-80, m.screenH/2)
		return
	}

	ebitenutil.DrawRect(screen, 30, baseY-12, float64(m.screenW-60), float64(m.screenH-baseY-10), colorPanel)
	ebitenutil.DebugPrintAt(screen, "SEEK THE STARS", m.screenW/2-42, titleY)
	ebitenutil.DebugPrintAt(screen, "Select a Level to Begin", m.screenW/2-69, titleY+20)

	start, end := m.selector.Window()
	for i := start; i < end; i++ {
		m.drawEntry(screen, i, baseY+(i-start)*itemSpacing)
	}

	if m.message != "" {
		ebitenutil.DebugPrintAt(screen, m.message, 40, m.screenH-24)
	}
}

func (m *Menu) drawEntry(screen *ebiten.Image, i, y int) {
	x := 50.0
	w := float64(m.screenW - 100)
	h := float64(itemHeight)
	fy := float64(y)

	bg := colorRow
	if i == m.selector.Index() {
		bg = m.pulse()
		drawOutline(screen, x, fy, w, h, colorOutline)
	}
	ebitenutil.DrawRect(screen, x, fy, w, h, bg)

	var rec savedata.Record
	if i < len(m.entries) {
		rec = m.entries[i].Record
	}

	ebitenutil.DebugPrintAt(screen, Title(m.levels[i]), int(x)+12, y+12)
	drawStars(screen, x+180, fy+12, rec.BestStars, rec.TotalStars)

	best := "Best Time: " + FormatTime(rec)
	ebitenutil.DebugPrintAt(screen, best, int(x+w)-len(best)*6-12, y+12)
}

// pulse returns the selection colour, fading in and out over time
func (m *Menu) pulse() color.RGBA {
	p := (math.Sin(float64(m.ticks)/12.0) + 1) / 2
	c := colorSelected
	c.A = uint8(0x66 + p*0x44)
	return c
}

func drawOutline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	const t = 2
	ebitenutil.DrawRect(screen, x-t, y-t, w+2*t, t, c)
	ebitenutil.DrawRect(screen, x-t, y+h, w+2*t, t, c)
	ebitenutil.DrawRect(screen, x-t, y, t, h, c)
	ebitenutil.DrawRect(screen, x+w, y, t, h, c)
}

// drawStars draws one box per star in the level, filled for those collected.
// Levels never played show three empty boxes.
func drawStars(screen *ebiten.Image, x, y float64, count, total int) {
	if total <= 0 {
		total = 3
	}
	for i := 0; i < total; i++ {
		c := colorStarOff
		if i < count {
			c = colorStarOn
		}
		ebitenutil.DrawRect(screen, x+float64(i*14), y, 10, 10, c)
	}
}

// Title turns a level file name like "02_sky_steps" into "02 Sky Steps"
func Title(level string) string {
	words := strings.FieldsFunc(level, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// FormatTime renders a best time as "12.34s", or "N/A" if never completed
func FormatTime(r savedata.Record) string {
	if !r.HasTime() {
		return "N/A"
	}
	return fmt.Sprintf("%.2fs", *r.BestTime)
}
