// seekstars is a tile platformer: collect every star, reach the exit.
//
// Usage:
//
//	seekstars                  - Open the level select menu
//	seekstars play [level]     - Play a level directly (menu when omitted)
//	seekstars levels           - List levels with best records
//	seekstars replay <file>    - Re-run a recorded session headlessly
//
// Global flags:
//
//	--config <dir>     - Directory holding game.json and levels/ (default: bundled)
//	--levels <dir>     - Directory of level files, overrides the config levels
//	--store <backend>  - Record store: gdata, sqlite or memory (default: gdata)
//	--db <path>        - SQLite database path for --store sqlite
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfigDir string
	flagLevelsDir string
	flagStore     string
	flagDBPath    string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seekstars",
	Short: "Seek the Stars - a tile platformer",
	Long: `Seek the Stars is a tile platformer. Walk, jump and double jump
through each level, pick up every star and reach the exit.

Examples:
  seekstars
  seekstars play 01_meadow --record run.json
  seekstars levels
  seekstars replay run.json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, nil)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: bundled configs)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Levels directory (default: levels/ of the config)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storeGdata, "Record store: gdata, sqlite or memory")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.seekstars/scores.db", "Path to scores database for --store sqlite")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(replayCmd)
}
