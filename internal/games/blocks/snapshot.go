package blocks

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the observable game state for determinism testing and
// replay comparison.
type Snapshot struct {
	Tick       uint64
	Score      int
	Level      int
	Lines      int
	CurrentSet bool // Whether a piece is falling
	CurrentRow int
	CurrentCol int
	CurrentRot int
	Current    string // Kind letter, "" if no piece
	Next       string // Kind letter, "" if no piece
	CellCount  int    // Occupied board cells
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.state.GameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:      g.tick,
		Score:     g.state.Score,
		Level:     g.state.Level,
		Lines:     g.state.Lines,
		CellCount: len(g.state.Board.Cells),
		State:     state,
	}
	if g.state.Current != nil {
		snap.CurrentSet = true
		snap.Current = g.state.Current.Kind.String()
		snap.CurrentRow = g.state.Current.Anchor.Row
		snap.CurrentCol = g.state.Current.Anchor.Col
		snap.CurrentRot = g.state.Current.Rotation
	}
	if g.state.Next != nil {
		snap.Next = g.state.Next.Kind.String()
	}
	return snap
}
