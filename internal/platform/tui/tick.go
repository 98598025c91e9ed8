// Package tui runs the memory game in a terminal with Bubble Tea, locally
// or over SSH. It maps keys to actions, drives the fixed tick and renders
// the game's screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. RunID ties it to the
// Model that scheduled it, so ticks left over from a finished game are
// dropped.
type TickMsg struct {
	Time  time.Time
	RunID string
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, runID string) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, RunID: runID}
	})
}
