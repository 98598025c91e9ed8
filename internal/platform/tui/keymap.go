package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/core"
)

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

var quitKey = key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit"))

// KeyMapper turns key presses into game actions and menu actions.
type KeyMapper struct {
	game []actionBinding
	menu []menuBinding
}

func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		game: []actionBinding{
			{key.NewBinding(key.WithKeys("w", "up", "k"), key.WithHelp("↑/w", "up")), core.ActionUp},
			{key.NewBinding(key.WithKeys("s", "down", "j"), key.WithHelp("↓/s", "down")), core.ActionDown},
			{key.NewBinding(key.WithKeys("a", "left", "h"), key.WithHelp("←/a", "left")), core.ActionLeft},
			{key.NewBinding(key.WithKeys("d", "right", "l"), key.WithHelp("→/d", "right")), core.ActionRight},
			{key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "flip")), core.ActionFlip},
			{key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new grid")), core.ActionNewGame},
			{key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")), core.ActionPause},
			{key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "menu")), core.ActionBack},
		},
		menu: []menuBinding{
			{key.NewBinding(key.WithKeys("w", "up", "k")), MenuActionUp},
			{key.NewBinding(key.WithKeys("s", "down", "j")), MenuActionDown},
			{key.NewBinding(key.WithKeys("enter", " ")), MenuActionSelect},
			{key.NewBinding(key.WithKeys("b", "esc")), MenuActionBack},
			{key.NewBinding(key.WithKeys("tab")), MenuActionScoreboard},
		},
	}
}

// MapKey returns the game action bound to msg. Quit keys report
// ActionQuit with isQuit set; unbound keys return ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, quitKey) {
		return core.ActionQuit, true
	}
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the action for msg in frame and reports a quit.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// MenuAction is what a key press means on the menu screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, quitKey) {
		return MenuActionQuit
	}
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
