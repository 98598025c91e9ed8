package memory

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
)

const (
	cardWidth    = 6
	cardHeight   = 3
	cardStepX    = cardWidth + 1
	cardStepY    = cardHeight
	hudHeight    = 2
	footerHeight = 1
	minHUDWidth  = 44
)

// HUD labels.
const (
	scorePrefix = "Score: "
	livesPrefix = "Lives: "
	levelPrefix = "Level: "
	matchPrefix = "Match: "
	turnPrefix  = "Turn: "
	movesPrefix = "Moves: "
)

const (
	backPattern  = "░░░░"
	flipPattern  = " ▒▒ "
	cursorColor  = core.ColorBrightYellow
	matchedColor = core.ColorGreen
	missColor    = core.ColorBrightRed
	hiddenColor  = core.ColorGray
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderHUD draws the counters on the top two lines.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.session.State()

	title := "MEMORY"
	if g.mode == ModeCustom {
		title = "MEMORY (custom)"
	}
	dst.DrawTextColor(0, 0, title, core.ColorBrightCyan)

	level := levelPrefix + strconv.Itoa(st.Level)
	dst.DrawText(len(title)+2, 0, level)

	right := fmt.Sprintf("%s%d  %s%d", scorePrefix, st.Score, livesPrefix, st.Lives)
	livesColor := core.ColorDefault
	if st.Lives <= 0 {
		livesColor = missColor
	}
	dst.DrawTextColor(g.screenW-len([]rune(right)), 0, right, livesColor)

	counters := fmt.Sprintf("%s%d/%d  %s%d  %s%d",
		matchPrefix, st.MatchNumber, st.TotalPairs,
		turnPrefix, st.TurnNumber,
		movesPrefix, st.Moves)
	dst.DrawText(0, 1, counters)

	if g.comboText != "" {
		dst.DrawTextColor(g.screenW-len([]rune(g.comboText)), 1, g.comboText, core.ColorBrightMagenta)
	}
}

// gridOrigin returns the screen point the grid is centred on.
func (g *Game) gridOrigin() (cx, cy int) {
	areaH := g.screenH - hudHeight - footerHeight
	return g.screenW / 2, hudHeight + areaH/2
}

// cardRect returns the screen box of card id.
func (g *Game) cardRect(grid engine.Grid, id int) core.Rect {
	cx, cy := g.gridOrigin()
	px, _ := grid.Position(id, cardStepX)
	_, py := grid.Position(id, cardStepY)
	return core.CenteredAt(cx+int(math.Floor(px)), cy+int(math.Floor(-py)), cardWidth, cardHeight)
}

// renderGrid draws every card.
func (g *Game) renderGrid(dst *core.Screen) {
	grid := g.session.Grid()
	catalog := g.session.Catalog()

	if len(grid.Cards) == 0 {
		dst.DrawTextCentered(g.screenH/2, "No cards to deal", core.ColorGray)
		return
	}

	for _, c := range grid.Cards {
		r := g.cardRect(grid, c.ID)

		border := hiddenColor
		switch {
		case c.State == engine.Matched:
			border = matchedColor
		case g.mismatched[c.ID]:
			border = missColor
		case c.State == engine.Revealed:
			border = core.ColorWhite
		}
		if c.ID == g.cursor && !g.won {
			border = cursorColor
		}
		dst.DrawBox(r, border)

		face := r.Inner()
		switch {
		case c.State == engine.Hidden && c.Flippable:
			dst.DrawTextColor(face.X, face.Y, backPattern, hiddenColor)
		case c.State == engine.Hidden:
			dst.DrawTextColor(face.X, face.Y, flipPattern, core.ColorWhite)
		default:
			symbol, color := "?", core.ColorDefault
			if ct, ok := catalog.Lookup(c.Type); ok {
				symbol, color = ct.Symbol, ct.Color
			}
			dst.DrawTextColor(face.X+(face.W-len([]rune(symbol)))/2, face.Y, symbol, color)
		}
	}
}

// renderFooter draws the control hints on the last line.
func (g *Game) renderFooter(dst *core.Screen) {
	dst.DrawTextColor(0, g.screenH-1, g.Controls(), core.ColorGray)
}

// renderOverlays draws pause and level complete panels.
func (g *Game) renderOverlays(dst *core.Screen) {
	cx, cy := g.gridOrigin()

	if g.paused {
		g.drawOverlay(dst, cx, cy, core.ColorDefault, "PAUSED", "Press P to resume")
		return
	}

	if g.won {
		next := "Press Space for the next grid"
		if g.mode == ModeCampaign {
			next = fmt.Sprintf("Press Space for level %d", g.wonLevel+1)
		}
		g.drawOverlay(dst, cx, cy, matchedColor,
			fmt.Sprintf("LEVEL %d COMPLETE", g.wonLevel),
			fmt.Sprintf("%s%d", scorePrefix, g.wonScore),
			next)
	}
}

// drawOverlay draws a centered text panel.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.CenteredAt(centerX, centerY, boxW, boxH)

	dst.Fill(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawTextColor(x, box.Y+1+i, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Flip | N: New | P: Pause | Q: Quit"
}

func comboLabel(combo int) string {
	return "Combo x" + strconv.Itoa(combo)
}
