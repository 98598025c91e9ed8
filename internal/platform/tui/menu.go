package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceContinue
	ChoiceNewGame
	ChoiceCustom
	ChoiceSelectLevel
	ChoiceScores
	ChoiceQuit
)

// MenuItem is one line of the main menu.
type MenuItem struct {
	Choice MenuChoice
	Label  string
}

// SaveSummary describes the campaign save shown next to "Continue".
type SaveSummary struct {
	Exists       bool
	Level        int
	MatchedPairs int
	TotalPairs   int
	Score        int
}

// LoadSaveSummary reads the campaign save of a slot. A missing or
// unreadable save reports Exists == false.
func LoadSaveSummary(saves core.KVStore, settings core.SettingsStore, slot string) SaveSummary {
	saveKey, levelKey := memory.SlotKeys(string(memory.ModeCampaign), slot)

	var sum SaveSummary
	if settings != nil {
		sum.Level = settings.GetInt(levelKey, 1)
	}
	if saves == nil {
		return sum
	}
	rec, ok := engine.Load(saves, saveKey)
	if !ok {
		return sum
	}

	matched := 0
	for _, m := range rec.GridCardMatched {
		if m {
			matched++
		}
	}
	sum.Exists = true
	sum.MatchedPairs = matched / 2
	sum.TotalPairs = len(rec.GridCardTypes) / 2
	sum.Score = rec.Score
	return sum
}

var (
	menuTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(1, 0)
	menuSubtitle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginBottom(1)
	menuSelected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHint     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

// MenuModel is the main menu with a level picker submenu. It finishes
// (tea.Quit) as soon as the player picks something; Choice tells what.
type MenuModel struct {
	items   []MenuItem
	summary SaveSummary
	config  core.RuntimeConfig
	keys    *KeyMapper

	cursor        int
	inLevelSelect bool
	levelCursor   int

	choice MenuChoice
	level  int
}

func NewMenuModel(summary SaveSummary, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	if summary.Exists {
		items = append(items, MenuItem{
			Choice: ChoiceContinue,
			Label:  fmt.Sprintf("Continue (level %d, %d/%d pairs)", summary.Level, summary.MatchedPairs, summary.TotalPairs),
		})
	}
	items = append(items,
		MenuItem{Choice: ChoiceNewGame, Label: "New Game"},
		MenuItem{Choice: ChoiceCustom, Label: registry.Title(string(memory.ModeCustom))},
		MenuItem{Choice: ChoiceSelectLevel, Label: "Select Level..."},
		MenuItem{Choice: ChoiceScores, Label: "High Scores"},
		MenuItem{Choice: ChoiceQuit, Label: "Quit"},
	)

	// The picker opens on the saved level.
	levelCursor := core.Clamp(summary.Level-1, 0, engine.LevelCount()-1)

	return MenuModel{
		items:       items,
		summary:     summary,
		config:      cfg,
		keys:        NewKeyMapper(),
		levelCursor: levelCursor,
	}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		action := m.keys.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.updateLevels(action)
		}
		return m.updateMain(action)
	}
	return m, nil
}

func (m MenuModel) finish(choice MenuChoice) (tea.Model, tea.Cmd) {
	m.choice = choice
	return m, tea.Quit
}

func moveCursor(cursor, n int, action MenuAction) int {
	switch action {
	case MenuActionUp:
		return max(cursor-1, 0)
	case MenuActionDown:
		return min(cursor+1, n-1)
	}
	return cursor
}

func (m MenuModel) updateMain(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		return m.finish(ChoiceQuit)
	case MenuActionScoreboard:
		return m.finish(ChoiceScores)
	case MenuActionSelect:
		picked := m.items[m.cursor].Choice
		if picked == ChoiceSelectLevel {
			m.inLevelSelect = true
			return m, nil
		}
		return m.finish(picked)
	}
	m.cursor = moveCursor(m.cursor, len(m.items), action)
	return m, nil
}

func (m MenuModel) updateLevels(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		return m.finish(ChoiceQuit)
	case MenuActionBack:
		m.inLevelSelect = false
		return m, nil
	case MenuActionSelect:
		m.level = m.levelCursor + 1
		return m.finish(ChoiceSelectLevel)
	}
	m.levelCursor = moveCursor(m.levelCursor, engine.LevelCount(), action)
	return m, nil
}

func (m MenuModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}
	var lines []string
	if m.inLevelSelect {
		lines = m.levelLines()
	} else {
		lines = m.mainLines()
	}
	return lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func menuLine(label string, selected bool) string {
	if selected {
		return menuSelected.Render("> " + label)
	}
	return "  " + label
}

func (m MenuModel) mainLines() []string {
	subtitle := "Find the pairs"
	if m.summary.Exists {
		subtitle = fmt.Sprintf("Saved score: %d", m.summary.Score)
	}

	lines := []string{menuTitle.Render("M E M O R Y"), menuSubtitle.Render(subtitle)}
	for i, item := range m.items {
		lines = append(lines, menuLine(item.Label, i == m.cursor))
	}
	return append(lines, menuHint.Render("↑/↓ move · enter select · tab scores · q quit"))
}

func (m MenuModel) levelLines() []string {
	lines := []string{menuTitle.Render("SELECT LEVEL")}

	// Scroll so the cursor stays visible on short terminals.
	visible := max(m.config.ScreenH-7, 5)
	start := max(m.levelCursor-visible+1, 0)
	end := min(start+visible, engine.LevelCount())
	for i := start; i < end; i++ {
		size := engine.Levels[i]
		label := fmt.Sprintf("Level %2d  %dx%d  %2d pairs", i+1, size.Rows, size.Columns, size.Rows*size.Columns/2)
		lines = append(lines, menuLine(label, i == m.levelCursor))
	}
	return append(lines, menuHint.Render("enter start · esc back · q quit"))
}

// Choice is what the player picked, or ChoiceNone while the menu is open.
func (m MenuModel) Choice() MenuChoice { return m.choice }

// Level is the picked level when Choice is ChoiceSelectLevel.
func (m MenuModel) Level() int { return m.level }

// Config is the runtime config with the latest window size applied.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText pads text on the left to centre it in width columns.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Level  int
	Config core.RuntimeConfig
}

// starter is implemented by games that accept one-shot start options.
type starter interface {
	StartAtLevel(level int)
	StartFresh()
}

// CreateGame builds the game for a menu result. It returns an error for
// choices that do not start a game.
func CreateGame(res MenuResult, deps registry.Deps) (registry.Game, error) {
	id := string(memory.ModeCampaign)
	switch res.Choice {
	case ChoiceContinue, ChoiceNewGame, ChoiceSelectLevel:
	case ChoiceCustom:
		id = string(memory.ModeCustom)
	default:
		return nil, fmt.Errorf("menu choice %d does not start a game", res.Choice)
	}

	game, err := registry.Create(id, deps)
	if err != nil {
		return nil, err
	}

	if s, ok := game.(starter); ok {
		switch res.Choice {
		case ChoiceNewGame:
			s.StartFresh()
		case ChoiceSelectLevel:
			s.StartAtLevel(res.Level)
		}
	}
	return game, nil
}
