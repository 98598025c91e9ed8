package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game modes and campaign levels",
	Run: func(_ *cobra.Command, _ []string) {
		printModes(os.Stdout)
	},
}

func printModes(w io.Writer) {
	modes := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("MODE", "TITLE")
	for _, g := range registry.List() {
		modes.Row(g.ID, g.Title)
	}

	levels := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("LEVEL", "GRID", "PAIRS")
	for i, size := range engine.Levels {
		levels.Row(
			strconv.Itoa(i+1),
			fmt.Sprintf("%dx%d", size.Rows, size.Columns),
			strconv.Itoa(size.Rows*size.Columns/2),
		)
	}

	fmt.Fprintln(w, modes.Render())
	fmt.Fprintln(w, "Campaign levels (the last one repeats):")
	fmt.Fprintln(w, levels.Render())
	fmt.Fprintln(w, "Run 'memory play <mode>' to start, or 'memory play --level N' to jump ahead.")
}
