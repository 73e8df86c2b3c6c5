package replay

import (
	"github.com/younwookim/seekstars/internal/application/session"
	"github.com/younwookim/seekstars/internal/application/state"
)

// Result summarises a headless replay
type Result struct {
	Level          string
	Frames         int
	State          state.GameState
	Stars          int
	TotalStars     int
	Deaths         int
	CompletionTime float64
}

// Run feeds every recorded frame into the session and reports where it ended
func Run(s *session.Session, r *Replayer) Result {
	res := Result{Level: s.Name()}

	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		f := s.Step(in)
		res.Frames++
		if f.Events.Dead {
			res.Deaths++
		}
	}

	hud := s.HUD()
	res.State = s.State()
	res.Stars = hud.Stars
	res.TotalStars = hud.TotalStars
	res.CompletionTime = s.CompletionTime()
	return res
}
