package system

// Intents is what the player wants to do this frame.
// Left and Right are held state; the rest are edge-triggered.
type Intents struct {
	Left    bool
	Right   bool
	Jump    bool
	Restart bool
	Respawn bool
}

// Events reports what happened to the player during one update
type Events struct {
	CheckpointReached bool
	StarCollected     bool
	PowerUpCollected  bool
	Dead              bool
	Won               bool
}

// Any returns true if any event fired
func (e Events) Any() bool {
	return e.CheckpointReached || e.StarCollected || e.PowerUpCollected || e.Dead || e.Won
}
