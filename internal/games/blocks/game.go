// Package blocks adapts the pure falling-block engine to the platform's
// Game interface: it owns gravity timing, input mapping, and rendering,
// while every rule decision is delegated to internal/tetris.
package blocks

import (
	"fmt"

	"github.com/tuigames/blockfall/internal/config"
	"github.com/tuigames/blockfall/internal/core"
	"github.com/tuigames/blockfall/internal/registry"
	"github.com/tuigames/blockfall/internal/tetris"
)

// Game implements the Blockfall game.
type Game struct {
	cfg  config.BlocksConfig
	rng  *tetris.RandSource
	tick uint64

	// Engine state. The engine is purely functional: the adapter holds the
	// single current State and replaces it wholesale on each transition.
	state tetris.State

	gravityTicker int // Counts ticks until the next gravity step
	tickRate      int

	// Screen dimensions
	screenW int
	screenH int

	// Layout, recomputed on reset
	wellX    int
	wellY    int
	tooSmall bool

	paused bool
}

// Custom config path and difficulty preset, set by the CLI before the
// registry creates the game.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new Blockfall game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadBlocks(configPath)
	if err != nil {
		gameCfg = config.DefaultBlocksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlocksPreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = gameCfg

	g.rng = tetris.NewRandSource(cfg.Seed)
	g.tick = 0
	g.gravityTicker = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false

	g.state = tetris.NewGame(g.cfg.Board.Width, g.cfg.Board.Height)

	g.layout()
}

// layout centers the well and checks the screen is large enough for the
// board plus the side panel.
func (g *Game) layout() {
	requiredW := g.boardPixelWidth() + 2 + sidePanelWidth
	requiredH := g.state.Board.Height + 2 + hudHeight
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.wellX = (g.screenW - requiredW) / 2
	g.wellY = hudHeight
}

// gravityTicks returns how many simulation ticks pass between gravity
// steps at the given level: max(min_interval, base - (level-1)*speedup)
// seconds expressed in ticks.
func (g *Game) gravityTicks(level int) int {
	interval := g.cfg.Speed.BaseInterval - float64(level-1)*g.cfg.Speed.PerLevelSpeedup
	if interval < g.cfg.Speed.MinInterval {
		interval = g.cfg.Speed.MinInterval
	}
	ticks := int(interval*float64(g.tickRate) + 0.5)
	return core.Max(1, ticks)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.state.GameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.state.GameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Player actions first, gravity after, so a last-moment shift can slide
	// a piece under an overhang before the gravity step locks it.
	g.processInput(input)

	g.gravityTicker++
	if g.gravityTicker >= g.gravityTicks(g.state.Level) {
		g.gravityTicker = 0
		g.state = tetris.Tick(g.state, g.rng)
	}

	return core.StepResult{State: g.State()}
}

// processInput maps platform actions onto engine transitions.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionLeft):
		g.state = tetris.Move(g.state, tetris.Left)
	case input.Has(core.ActionRight):
		g.state = tetris.Move(g.state, tetris.Right)
	}

	switch {
	case input.Has(core.ActionRotateCW):
		g.state = tetris.Rotate(g.state, tetris.Clockwise)
	case input.Has(core.ActionRotateCCW):
		g.state = tetris.Rotate(g.state, tetris.CounterClockwise)
	}

	switch {
	case input.Has(core.ActionHardDrop):
		g.state = tetris.HardDrop(g.state)
		g.gravityTicker = 0
	case input.Has(core.ActionSoftDrop):
		g.state = tetris.Move(g.state, tetris.Down)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Level:    g.state.Level,
		Lines:    g.state.Lines,
		GameOver: g.state.GameOver,
		Paused:   g.paused,
	}
}

// --- Rendering ---

const (
	hudHeight      = 2  // Top HUD lines
	sidePanelWidth = 18 // Next/hold/score panel to the right of the well
	cellWidth      = 2  // Each board cell is two runes wide
)

// boardPixelWidth returns the well width in screen columns.
func (g *Game) boardPixelWidth() int {
	return g.state.Board.Width * cellWidth
}

// kindColor maps piece kinds to their conventional colors.
func kindColor(k tetris.PieceKind) core.Color {
	switch k {
	case tetris.KindI:
		return core.ColorCyan
	case tetris.KindJ:
		return core.ColorBlue
	case tetris.KindL:
		return core.ColorOrange
	case tetris.KindO:
		return core.ColorYellow
	case tetris.KindS:
		return core.ColorGreen
	case tetris.KindT:
		return core.ColorMagenta
	case tetris.KindZ:
		return core.ColorRed
	default:
		return core.ColorWhite
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderWell(dst)
	g.renderCells(dst)
	g.renderCurrentPiece(dst)
	g.renderSidePanel(dst)

	switch {
	case g.state.GameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Blockfall | Score: %d  Level: %d  Lines: %d", g.state.Score, g.state.Level, g.state.Lines)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWell draws the board border.
func (g *Game) renderWell(dst *core.Screen) {
	w := g.boardPixelWidth()
	h := g.state.Board.Height
	dst.DrawBox(core.NewRect(g.wellX, g.wellY, w+2, h+2))
}

// renderCells draws the locked board cells.
func (g *Game) renderCells(dst *core.Screen) {
	for pos, kind := range g.state.Board.Cells {
		g.drawCell(dst, pos, kind)
	}
}

// renderCurrentPiece draws the falling piece. Cells above the top edge of
// the well (a freshly spawned piece can briefly poke above row 0) are
// clipped rather than drawn over the border.
func (g *Game) renderCurrentPiece(dst *core.Screen) {
	if g.state.Current == nil {
		return
	}
	for _, pos := range g.state.Current.Cells() {
		if pos.Row < 0 {
			continue
		}
		g.drawCell(dst, pos, g.state.Current.Kind)
	}
}

// drawCell fills one board cell (two runes wide) inside the well.
func (g *Game) drawCell(dst *core.Screen, pos tetris.Position, kind tetris.PieceKind) {
	x := g.wellX + 1 + pos.Col*cellWidth
	y := g.wellY + 1 + pos.Row
	color := kindColor(kind)
	dst.SetCell(x, y, '█', color)
	dst.SetCell(x+1, y, '█', color)
}

// renderSidePanel draws the next-piece preview, the hold box, and the
// score block to the right of the well.
func (g *Game) renderSidePanel(dst *core.Screen) {
	x := g.wellX + g.boardPixelWidth() + 4
	y := g.wellY

	dst.DrawText(x, y, "Next")
	dst.DrawBox(core.NewRect(x, y+1, 12, 6))
	if g.state.Next != nil {
		g.drawPreview(dst, x+2, y+2, g.state.Next.Kind)
	}

	dst.DrawText(x, y+8, "Hold")
	dst.DrawBox(core.NewRect(x, y+9, 12, 6))
	if g.state.Held != nil {
		g.drawPreview(dst, x+2, y+10, *g.state.Held)
	}

	dst.DrawText(x, y+16, fmt.Sprintf("Score %d", g.state.Score))
	dst.DrawText(x, y+17, fmt.Sprintf("Level %d", g.state.Level))
	dst.DrawText(x, y+18, fmt.Sprintf("Lines %d", g.state.Lines))
}

// drawPreview draws a piece at rotation 0 inside a preview box. The shape
// offsets span rows -1..2 and cols -1..2, so the pivot sits one cell in
// from the box's top-left.
func (g *Game) drawPreview(dst *core.Screen, x, y int, kind tetris.PieceKind) {
	color := kindColor(kind)
	for _, off := range tetris.Shape(kind, 0) {
		cx := x + (off.Col+1)*cellWidth
		cy := y + off.Row + 1
		dst.SetCell(cx, cy, '█', color)
		dst.SetCell(cx+1, cy, '█', color)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	g.drawCenteredText(dst, line1, boxY+1)
	g.drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	for i, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}
