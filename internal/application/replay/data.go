package replay

import "github.com/younwookim/seekstars/internal/application/system"

// FormatVersion is written into every recording
const FormatVersion = "1.0"

// FrameInput records the intents for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump
	RS bool `json:"rs,omitempty"` // Restart
	RP bool `json:"rp,omitempty"` // Respawn
}

// NewFrameInput captures intents for frame f
func NewFrameInput(f int, in system.Intents) FrameInput {
	return FrameInput{
		F:  f,
		L:  in.Left,
		R:  in.Right,
		J:  in.Jump,
		RS: in.Restart,
		RP: in.Respawn,
	}
}

// Intents converts the recorded frame back into intents
func (fi FrameInput) Intents() system.Intents {
	return system.Intents{
		Left:    fi.L,
		Right:   fi.R,
		Jump:    fi.J,
		Restart: fi.RS,
		Respawn: fi.RP,
	}
}

// ReplayData contains all data needed to replay a level run.
// The simulation is deterministic for a fixed frame rate, so the level
// name and per-frame intents are enough to reproduce it.
//
// Frames is sparse: only frames with at least one intent are stored, in
// frame order. FrameCount is the length of the run including idle frames.
type ReplayData struct {
	Version    string       `json:"version"`
	Level      string       `json:"level"`
	Framerate  int          `json:"framerate"`
	FrameCount int          `json:"frameCount"`
	StartTime  string       `json:"startTime"`
	Frames     []FrameInput `json:"frames"`
}

// Length returns the number of frames in the run. Files without a frame
// count end on their last stored frame.
func (d ReplayData) Length() int {
	if d.FrameCount > 0 {
		return d.FrameCount
	}
	if n := len(d.Frames); n > 0 {
		return d.Frames[n-1].F + 1
	}
	return 0
}
