package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/seekstars/internal/application/system"
)

// Recorder captures per-frame intents for later replay
type Recorder struct {
	data    ReplayData
	stopped bool
}

// NewRecorder starts recording a run of level at the given frame rate
func NewRecorder(level string, framerate int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Level:     level,
			Framerate: framerate,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 512),
		},
	}
}

// RecordFrame appends one frame. Idle frames only advance the count.
func (r *Recorder) RecordFrame(in system.Intents) {
	if r.stopped {
		return
	}

	if in != (system.Intents{}) {
		r.data.Frames = append(r.data.Frames, NewFrameInput(r.data.FrameCount, in))
	}
	r.data.FrameCount++
}

// Save writes the recording as indented JSON
func (r *Recorder) Save(filename string) error {
	if r.data.FrameCount == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop ignores any further frames
func (r *Recorder) Stop() {
	r.stopped = true
}

func (r *Recorder) IsRecording() bool {
	return !r.stopped
}

// FrameCount returns the number of recorded frames, idle ones included
func (r *Recorder) FrameCount() int {
	return r.data.FrameCount
}

// Data returns the recorded replay
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename names a recording after the current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
