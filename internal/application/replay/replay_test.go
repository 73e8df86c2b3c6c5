package replay

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/seekstars/internal/application/session"
	"github.com/younwookim/seekstars/internal/application/state"
	"github.com/younwookim/seekstars/internal/application/system"
	"github.com/younwookim/seekstars/internal/infrastructure/config"
)

func TestFrameInput_JSONOmitsIdleFields(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, R: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":3,"r":true}`, string(data))
}

func TestFrameInput_Intents(t *testing.T) {
	in := system.Intents{Left: true, Jump: true, Respawn: true}

	fi := NewFrameInput(7, in)

	assert.Equal(t, 7, fi.F)
	assert.Equal(t, in, fi.Intents())
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Level:   "test",
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true},
			{F: 2, RS: true},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Left)
	assert.True(t, input.Right)
	assert.True(t, input.Jump)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Restart)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData("test", 5, system.Intents{}))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())
	assert.Equal(t, "test", replayer.Level())
	assert.Equal(t, 60, replayer.Framerate())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData("test", 3, system.Intents{Right: true}))

	// Advance to end
	replayer.GetInput()
	replayer.GetInput()
	replayer.GetInput()
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	// Reset
	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	// Should be able to read again
	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, input.Right)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder("01_meadow", 60)
	rec.RecordFrame(system.Intents{Right: true})
	rec.RecordFrame(system.Intents{Right: true, Jump: true})
	rec.Stop()
	rec.RecordFrame(system.Intents{Left: true})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount(), "frames after Stop are dropped")

	path := filepath.Join(t.TempDir(), GenerateFilename())
	require.NoError(t, rec.Save(path))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, FormatVersion, loaded.Version)
	assert.Equal(t, "01_meadow", loaded.Level)
	assert.Equal(t, 60, loaded.Framerate)
	assert.Equal(t, rec.Data().Frames, loaded.Frames)
}

func TestRecorder_SkipsIdleFrames(t *testing.T) {
	rec := NewRecorder("lvl", 60)
	rec.RecordFrame(system.Intents{})
	rec.RecordFrame(system.Intents{Jump: true})
	rec.RecordFrame(system.Intents{})
	rec.RecordFrame(system.Intents{})
	rec.RecordFrame(system.Intents{Left: true})

	data := rec.Data()
	assert.Equal(t, 5, data.FrameCount)
	assert.Equal(t, 5, rec.FrameCount())
	assert.Equal(t, []FrameInput{{F: 1, J: true}, {F: 4, L: true}}, data.Frames)

	replayer := NewReplayer(data)
	var got []system.Intents
	for {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}
		got = append(got, in)
	}
	assert.Equal(t, []system.Intents{{}, {Jump: true}, {}, {}, {Left: true}}, got)
}

func TestRecorder_TrailingIdleFramesSaved(t *testing.T) {
	rec := NewRecorder("lvl", 60)
	for i := 0; i < 3; i++ {
		rec.RecordFrame(system.Intents{})
	}

	path := filepath.Join(t.TempDir(), "idle.json")
	require.NoError(t, rec.Save(path), "an all-idle run still has frames")

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.Frames)
	assert.Equal(t, 3, NewReplayer(*loaded).TotalFrames())
}

func TestReplayData_Length(t *testing.T) {
	tests := []struct {
		name string
		data ReplayData
		want int
	}{
		{name: "empty", data: ReplayData{}, want: 0},
		{name: "frame count wins", data: ReplayData{FrameCount: 10, Frames: []FrameInput{{F: 2}}}, want: 10},
		{name: "hand written without count", data: ReplayData{Frames: []FrameInput{{F: 0}, {F: 6}}}, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.data.Length())
		})
	}
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder("x", 60)
	assert.Error(t, rec.Save(filepath.Join(t.TempDir(), "empty.json")))
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadReplay(bad)
	assert.Error(t, err)

	nolevel := filepath.Join(dir, "nolevel.json")
	require.NoError(t, os.WriteFile(nolevel, []byte(`{"version":"1.0","frames":[]}`), 0o644))
	_, err = LoadReplay(nolevel)
	assert.Error(t, err)
}

func createTestSession(t *testing.T) *session.Session {
	t.Helper()
	src := &config.LevelSource{
		Name: "run",
		Rows: []string{
			"..........",
			"..........",
			"..........",
			"..S..*.^.V",
			"##########",
		},
	}
	s, err := session.New("run", src, config.DefaultGameConfig(), nil, log.New(io.Discard))
	require.NoError(t, err)
	return s
}

func TestRun(t *testing.T) {
	rec := NewRecorder("run", 60)
	for i := 0; i < 40; i++ {
		// Jump over the hazard at tile 7
		rec.RecordFrame(system.Intents{Right: true, Jump: i == 28})
	}
	for i := 0; i < 30; i++ {
		rec.RecordFrame(system.Intents{Right: true})
	}

	first := Run(createTestSession(t), NewReplayer(rec.Data()))
	second := Run(createTestSession(t), NewReplayer(rec.Data()))

	assert.Equal(t, first, second, "replays are deterministic")
	assert.Equal(t, "run", first.Level)
	assert.Equal(t, 70, first.Frames)
	assert.Equal(t, state.StateStageClear, first.State)
	assert.Equal(t, 1, first.Stars)
	assert.Equal(t, 1, first.TotalStars)
	assert.Equal(t, 0, first.Deaths)
	assert.Greater(t, first.CompletionTime, 0.0)
}

func TestRun_CountsDeaths(t *testing.T) {
	var frames []FrameInput
	// Walk into the hazard, respawn, walk into it again
	for i := 0; i < 40; i++ {
		frames = append(frames, NewFrameInput(len(frames), system.Intents{Right: true}))
	}
	frames = append(frames, NewFrameInput(len(frames), system.Intents{Restart: true}))
	for i := 0; i < 40; i++ {
		frames = append(frames, NewFrameInput(len(frames), system.Intents{Right: true}))
	}

	res := Run(createTestSession(t), NewReplayer(ReplayData{Level: "run", Frames: frames}))

	assert.Equal(t, 2, res.Deaths)
	assert.Equal(t, state.StateDead, res.State)
	assert.Equal(t, 1, res.Stars, "stars survive a respawn")
}
