package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/younwookim/seekstars/internal/application/replay"
	"github.com/younwookim/seekstars/internal/application/state"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recording without a window",
	Long: `Feeds a recorded input file through the simulation and reports how
the run ended. Records are not updated.

Examples:
  seekstars play 01_meadow --record run.json
  seekstars replay run.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		res, err := runReplay(a, args[0])
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), res)
		return nil
	},
}

// runReplay loads a recording and runs it against its level
func runReplay(a *app, filename string) (replay.Result, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return replay.Result{}, err
	}

	// Same frame duration as the recording session
	if data.Framerate > 0 {
		a.cfg.Display.Framerate = data.Framerate
	}

	sess, err := a.newSession(data.Level, nil)
	if err != nil {
		return replay.Result{}, err
	}

	a.logger.Debug("replaying", "file", filename, "level", data.Level, "frames", data.Length())
	return replay.Run(sess, replay.NewReplayer(*data)), nil
}

func printResult(w io.Writer, res replay.Result) {
	fmt.Fprintf(w, "Level:   %s\n", res.Level)
	fmt.Fprintf(w, "Frames:  %d\n", res.Frames)
	fmt.Fprintf(w, "State:   %s\n", res.State)
	fmt.Fprintf(w, "Stars:   %d/%d\n", res.Stars, res.TotalStars)
	fmt.Fprintf(w, "Deaths:  %d\n", res.Deaths)
	if res.State == state.StateStageClear {
		fmt.Fprintf(w, "Time:    %.2fs\n", res.CompletionTime)
	}
}
