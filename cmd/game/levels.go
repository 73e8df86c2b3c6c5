package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/younwookim/seekstars/internal/application/scene/menu"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels with their best records",
	Long: `Shows every level in the levels directory with the best completion
time and the most stars collected so far.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	starStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runLevels(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	store, err := openStore(flagStore, flagDBPath, a.logger)
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}
	defer store.Close()

	levels, err := a.levels.ListLevels()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderLevels(menu.LoadEntries(levels, store, a.logger)))
	return nil
}

// renderLevels formats the level table
func renderLevels(entries []menu.Entry) string {
	if len(entries) == 0 {
		return "No levels found.\n"
	}

	nameW := len("Level")
	for _, e := range entries {
		if w := len(menu.Title(e.Level)); w > nameW {
			nameW = w
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-*s  %-10s  %s", nameW, "Level", "Best time", "Stars")))
	b.WriteString("\n")

	for _, e := range entries {
		name := nameStyle.Render(fmt.Sprintf("%-*s", nameW, menu.Title(e.Level)))

		best := menu.FormatTime(e.Record)
		timeCell := fmt.Sprintf("%-10s", best)
		if e.Record.HasTime() {
			timeCell = timeStyle.Render(timeCell)
		} else {
			timeCell = dimStyle.Render(timeCell)
		}

		stars := dimStyle.Render("-")
		if e.Record.TotalStars > 0 {
			stars = starStyle.Render(fmt.Sprintf("%d/%d", e.Record.BestStars, e.Record.TotalStars))
		}

		fmt.Fprintf(&b, "  %s  %s  %s\n", name, timeCell, stars)
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Run 'seekstars play <level>' to play a level."))
	b.WriteString("\n")
	return b.String()
}
