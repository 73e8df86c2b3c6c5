package menu

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/seekstars/internal/application/scene"
	"github.com/younwookim/seekstars/internal/infrastructure/savedata"
)

// stubScene stands in for the playing scene
type stubScene struct{ level string }

func (s *stubScene) Update() (scene.Scene, error) { return nil, nil }
func (s *stubScene) Draw(*ebiten.Image) {}
func (s *stubScene) OnEnter() {}
func (s *stubScene) OnExit() {}

func createTestMenu(levels []string, store savedata.Store, play PlayFunc) *Menu {
	if play == nil {
		play = func(level string) (scene.Scene, error) {
			return &stubScene{level: level}, nil
		}
	}
	m := New(levels, store, play, 640, 480, log.New(io.Discard))
	m.OnEnter()
	return m
}

func TestMenu_Navigation(t *testing.T) {
	m := createTestMenu([]string{"01_a", "02_b", "03_c"}, nil, nil)

	assert.Equal(t, "01_a", m.Selected())

	_, err := m.apply(actDown)
	require.NoError(t, err)
	assert.Equal(t, "02_b", m.Selected())

	m.apply(actUp)
	m.apply(actUp)
	assert.Equal(t, "03_c", m.Selected(), "wraps to the last level")
}

func TestMenu_SelectPlaysLevel(t *testing.T) {
	m := createTestMenu([]string{"01_a", "02_b"}, nil, nil)
	m.apply(actDown)

	next, err := m.apply(actSelect)

	require.NoError(t, err)
	require.IsType(t, &stubScene{}, next)
	assert.Equal(t, "02_b", next.(*stubScene).level)
}

func TestMenu_SelectFailureStays(t *testing.T) {
	m := createTestMenu([]string{"01_a"}, nil, func(string) (scene.Scene, error) {
		return nil, errors.New("ragged rows")
	})

	next, err := m.apply(actSelect)

	assert.NoError(t, err, "a broken level is not fatal")
	assert.Nil(t, next)
	assert.Equal(t, "Cannot load 01 A", m.message)
}

func TestMenu_Quit(t *testing.T) {
	m := createTestMenu([]string{"01_a"}, nil, nil)

	_, err := m.apply(actQuit)

	assert.ErrorIs(t, err, scene.ErrQuit)
}

func TestMenu_Empty(t *testing.T) {
	m := createTestMenu(nil, nil, nil)

	next, err := m.apply(actSelect)

	assert.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, "", m.Selected())
}

func TestMenu_OnEnterRefreshesRecords(t *testing.T) {
	store := savedata.NewMemoryStore()
	m := createTestMenu([]string{"01_a", "02_b"}, store, nil)
	assert.False(t, m.entries[0].Record.HasTime())

	_, err := store.Update("01_a", 12.5, 2, 3)
	require.NoError(t, err)
	m.OnEnter()

	require.True(t, m.entries[0].Record.HasTime())
	assert.Equal(t, 12.5, *m.entries[0].Record.BestTime)
	assert.Equal(t, "02_b", m.entries[1].Level)
	assert.False(t, m.entries[1].Record.HasTime())
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"01_meadow":    "01 Meadow",
		"03_sky_steps": "03 Sky Steps",
		"boss-fight":   "Boss Fight",
		"plain":        "Plain",
		"__odd__":      "Odd",
	}
	for in, want := range tests {
		assert.Equal(t, want, Title(in), in)
	}
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "N/A", FormatTime(savedata.Record{}))

	best := 42.0
	assert.Equal(t, "42.00s", FormatTime(savedata.Record{BestTime: &best}))
}
