// Package state holds the play state of a level session.
package state

// GameState is where a level session stands
type GameState int

const (
	StatePlaying GameState = iota
	StateDead
	StateStageClear
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateDead:
		return "Dead"
	case StateStageClear:
		return "StageClear"
	default:
		return "Unknown"
	}
}

// Finished returns true once the level can no longer be played without a
// respawn or restart
func (s GameState) Finished() bool {
	return s == StateDead || s == StateStageClear
}
