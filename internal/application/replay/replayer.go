package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/seekstars/internal/application/system"
)

// Replayer plays recorded intents back one frame at a time
type Replayer struct {
	data   ReplayData
	length int
	frame  int
	next   int // index into data.Frames
}

// NewReplayer creates a replayer positioned on the first frame
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:   data,
		length: data.Length(),
	}
}

// LoadReplay reads a recording written by Recorder.Save
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Level == "" {
		return nil, fmt.Errorf("replay %s names no level", filename)
	}

	return &data, nil
}

// GetInput returns the intents for the current frame and advances.
// Frames missing from the sparse list are idle.
func (r *Replayer) GetInput() (system.Intents, bool) {
	if r.frame >= r.length {
		return system.Intents{}, false
	}

	frames := r.data.Frames
	for r.next < len(frames) && frames[r.next].F < r.frame {
		r.next++
	}

	var in system.Intents
	if r.next < len(frames) && frames[r.next].F == r.frame {
		in = frames[r.next].Intents()
		r.next++
	}
	r.frame++

	return in, true
}

// CurrentFrame returns the index of the next frame to play
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

func (r *Replayer) TotalFrames() int {
	return r.length
}

// Level returns the level the replay was recorded on
func (r *Replayer) Level() string {
	return r.data.Level
}

// Framerate returns the recording frame rate, 0 if unknown
func (r *Replayer) Framerate() int {
	return r.data.Framerate
}

// Reset rewinds to the first frame
func (r *Replayer) Reset() {
	r.frame = 0
	r.next = 0
}

// CreateTestReplayData creates replay data holding the same intents every frame
func CreateTestReplayData(level string, frames int, in system.Intents) ReplayData {
	rec := NewRecorder(level, 60)
	for i := 0; i < frames; i++ {
		rec.RecordFrame(in)
	}
	return rec.Data()
}
