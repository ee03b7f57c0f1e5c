package blocks

import (
	"strings"
	"testing"

	"github.com/tuigames/blockfall/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots.
	g1 := New()
	g1.Reset(testConfig(12345))

	g2 := New()
	g2.Reset(testConfig(12345))

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		switch i {
		case 70:
			input.Set(core.ActionLeft)
		case 80:
			input.Set(core.ActionRotateCW)
		case 90:
			input.Set(core.ActionHardDrop)
		case 200:
			input.Set(core.ActionRight)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\nvs\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestGravitySpawnsFirstPiece(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	// At level 1 gravity fires once per second: 60 ticks at 60 FPS.
	input := core.NewInputFrame()
	for i := 0; i < 59; i++ {
		g.Step(input)
	}
	if g.Snapshot().CurrentSet {
		t.Fatal("piece spawned before the first gravity step")
	}

	g.Step(input)
	snap := g.Snapshot()
	if !snap.CurrentSet {
		t.Fatal("no piece after the first gravity step")
	}
	if snap.Next == "" {
		t.Error("next piece missing after first spawn")
	}
	if snap.CellCount != 0 || snap.Score != 0 {
		t.Errorf("board should be untouched after spawn: %+v", snap)
	}
}

func TestGravityTicksSpeedUpWithLevel(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	tests := []struct {
		level, want int
	}{
		{1, 60},  // 1.0s
		{2, 57},  // 0.95s
		{10, 33}, // 0.55s
		{19, 6},  // floor: 0.1s
		{50, 6},  // still floored
	}

	for _, tc := range tests {
		if got := g.gravityTicks(tc.level); got != tc.want {
			t.Errorf("gravityTicks(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestHardDropThroughAdapter(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	// Run until the first piece spawns.
	input := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		g.Step(input)
	}
	if !g.Snapshot().CurrentSet {
		t.Fatal("expected a falling piece")
	}

	input.Set(core.ActionHardDrop)
	g.Step(input)

	snap := g.Snapshot()
	if snap.CurrentSet {
		t.Error("hard drop should leave no falling piece")
	}
	if snap.CellCount != 4 {
		t.Errorf("board has %d cells after hard drop, want 4", snap.CellCount)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))

	input := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		g.Step(input)
	}
	before := g.Snapshot()

	input.Set(core.ActionPause)
	g.Step(input)
	if !g.paused {
		t.Fatal("pause action ignored")
	}

	// Gravity and input must both be inert while paused.
	input.Clear()
	input.Set(core.ActionLeft)
	for i := 0; i < 120; i++ {
		g.Step(input)
	}
	after := g.Snapshot()
	if after.CurrentRow != before.CurrentRow || after.CurrentCol != before.CurrentCol {
		t.Errorf("piece moved while paused: %+v vs %+v", after, before)
	}

	input.Clear()
	input.Set(core.ActionPause)
	g.Step(input)
	if g.paused {
		t.Error("second pause action should unpause")
	}
}

func TestLateralAndRotateActions(t *testing.T) {
	g := New()
	g.Reset(testConfig(99))

	// Two gravity steps: spawn, then one row down. A piece on its spawn
	// row can still poke above the well and refuse lateral moves, one row
	// lower every kind has room to move and spin.
	input := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		g.Step(input)
	}
	before := g.Snapshot()
	if !before.CurrentSet {
		t.Fatal("expected a falling piece")
	}

	input.Set(core.ActionLeft)
	g.Step(input)
	after := g.Snapshot()
	if after.CurrentCol != before.CurrentCol-1 {
		t.Errorf("left action moved col %d -> %d", before.CurrentCol, after.CurrentCol)
	}

	input.Clear()
	input.Set(core.ActionRight)
	g.Step(input)
	if got := g.Snapshot().CurrentCol; got != before.CurrentCol {
		t.Errorf("right action should undo left: col %d, want %d", got, before.CurrentCol)
	}

	input.Clear()
	input.Set(core.ActionRotateCW)
	g.Step(input)
	if got := g.Snapshot().CurrentRot; got != 1 {
		t.Errorf("rotation index = %d after rotate, want 1", got)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig(11))

	input := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		g.Step(input)
	}

	g.state.GameOver = true
	g.state.Score = 1200

	// Restart only works on the game-over screen.
	input.Clear()
	input.Set(core.ActionRestart)
	g.Step(input)

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("state after restart = %v, want playing", snap.State)
	}
	if snap.Score != 0 || snap.Lines != 0 || snap.CellCount != 0 {
		t.Errorf("restart did not reset the game: %+v", snap)
	}
}

func TestNoInputAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig(23))

	input := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		g.Step(input)
	}
	g.state.GameOver = true
	before := g.Snapshot()

	input.Clear()
	input.Set(core.ActionLeft)
	g.Step(input)
	input.Clear()
	input.Set(core.ActionHardDrop)
	g.Step(input)

	after := g.Snapshot()
	if after.CurrentRow != before.CurrentRow || after.CellCount != before.CellCount {
		t.Errorf("input changed a finished game: %+v vs %+v", after, before)
	}
	if after.State != StateGameOver {
		t.Errorf("state = %v, want game_over", after.State)
	}
}

func TestRenderHasWellAndHUD(t *testing.T) {
	g := New()
	g.Reset(testConfig(5))

	input := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		g.Step(input)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	row0 := screen.Row(0)
	for _, want := range []string{"Blockfall", "Score", "Level", "Lines"} {
		if !strings.Contains(row0, want) {
			t.Errorf("HUD missing %q: %q", want, row0)
		}
	}

	// The well border's top-left corner sits at the computed offset.
	if screen.Get(g.wellX, g.wellY) != '┌' {
		t.Errorf("well border missing at (%d, %d)", g.wellX, g.wellY)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	cfg := testConfig(1)
	cfg.ScreenW = 20
	cfg.ScreenH = 10
	g.Reset(cfg)

	if !g.tooSmall {
		t.Fatal("20x10 screen should be too small for a 10x20 well")
	}

	// Simulation is held while the window is too small.
	input := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		g.Step(input)
	}
	if g.Snapshot().CurrentSet {
		t.Error("piece spawned while window too small")
	}
}
