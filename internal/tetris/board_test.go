package tetris

import "testing"

func TestNewBoardDefaults(t *testing.T) {
	b := NewBoard(0, 0)
	if b.Width != DefaultWidth || b.Height != DefaultHeight {
		t.Errorf("NewBoard(0, 0) = %dx%d, want %dx%d", b.Width, b.Height, DefaultWidth, DefaultHeight)
	}
	if len(b.Cells) != 0 {
		t.Errorf("new board should be empty, has %d cells", len(b.Cells))
	}
}

func TestIsValidPositionEdges(t *testing.T) {
	b := NewBoard(10, 20)

	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"inside", Position{5, 5}, true},
		{"top-left corner", Position{0, 0}, true},
		{"bottom-right corner", Position{19, 9}, true},
		{"row above top", Position{-1, 5}, false},
		{"col left of edge", Position{5, -1}, false},
		{"row below bottom", Position{20, 5}, false},
		{"col right of edge", Position{5, 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.IsValidPosition(tc.pos); got != tc.want {
				t.Errorf("IsValidPosition(%v) = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestIsValidPositionOccupied(t *testing.T) {
	b := NewBoard(10, 20)
	b.Cells[Position{5, 5}] = KindT

	if b.IsValidPosition(Position{5, 5}) {
		t.Error("occupied cell reported valid")
	}
	if !b.IsValidPosition(Position{5, 6}) {
		t.Error("neighbor of occupied cell reported invalid")
	}
}

func TestIsValidPlacementAllCellsMustFit(t *testing.T) {
	b := NewBoard(10, 20)

	// T at (10, 5) sits fully inside an empty board.
	p := Piece{Kind: KindT, Anchor: Position{10, 5}}
	if !b.IsValidPlacement(p) {
		t.Error("placement inside empty board rejected")
	}

	// Blocking a single one of its cells invalidates the whole piece.
	b.Cells[Position{9, 5}] = KindI
	if b.IsValidPlacement(p) {
		t.Error("placement accepted with one cell blocked")
	}

	// A piece poking past the left wall is rejected outright.
	edge := Piece{Kind: KindI, Anchor: Position{0, 0}}
	if b.IsValidPlacement(edge) {
		t.Error("placement accepted with a cell out of bounds")
	}
}

func TestPlaceBakesPieceAndPreservesCells(t *testing.T) {
	b := NewBoard(10, 20)
	b.Cells[Position{19, 0}] = KindZ

	p := Piece{Kind: KindJ, Anchor: Position{10, 5}}
	placed := b.Place(p)

	if len(placed.Cells) != 5 {
		t.Fatalf("placed board has %d cells, want 5", len(placed.Cells))
	}
	for _, cell := range p.Cells() {
		if placed.Cells[cell] != KindJ {
			t.Errorf("cell %v = %v, want J", cell, placed.Cells[cell])
		}
	}
	if placed.Cells[Position{19, 0}] != KindZ {
		t.Error("pre-existing cell lost on place")
	}

	// The original board is untouched.
	if len(b.Cells) != 1 {
		t.Errorf("Place mutated the receiver: %d cells", len(b.Cells))
	}
}

func fillRow(b Board, row int, kind PieceKind) {
	for col := 0; col < b.Width; col++ {
		b.Cells[Position{row, col}] = kind
	}
}

func TestClearFullLinesNoop(t *testing.T) {
	b := NewBoard(10, 20)
	b.Cells[Position{19, 0}] = KindS
	b.Cells[Position{19, 1}] = KindS

	cleared, n := b.ClearFullLines()
	if n != 0 {
		t.Errorf("cleared %d lines on a board with no full rows", n)
	}
	if cleared.Cells[Position{19, 0}] != KindS || cleared.Cells[Position{19, 1}] != KindS {
		t.Error("no-op clear disturbed cells")
	}
	if len(cleared.Cells) != len(b.Cells) {
		t.Error("no-op clear changed cell count")
	}
}

func TestClearFullLinesShiftsSurvivorsDown(t *testing.T) {
	b := NewBoard(10, 20)

	// Full rows at 16 and 18, with two surviving J cells between them.
	fillRow(b, 16, KindI)
	fillRow(b, 18, KindI)
	b.Cells[Position{17, 0}] = KindJ
	b.Cells[Position{17, 1}] = KindJ

	cleared, n := b.ClearFullLines()
	if n != 2 {
		t.Fatalf("cleared %d lines, want 2", n)
	}
	if len(cleared.Cells) != 2 {
		t.Fatalf("surviving board has %d cells, want 2", len(cleared.Cells))
	}

	// Only full rows strictly below a survivor count toward its shift:
	// row 17 has one cleared row beneath it (18), so it lands on 18.
	for col := 0; col <= 1; col++ {
		kind, ok := cleared.Cells[Position{18, col}]
		if !ok || kind != KindJ {
			t.Errorf("survivor expected at (18, %d) with kind J, got %v (present: %v)", col, kind, ok)
		}
	}
}

func TestClearFullLinesBottomRow(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 19, KindO)
	b.Cells[Position{18, 4}] = KindT

	cleared, n := b.ClearFullLines()
	if n != 1 {
		t.Fatalf("cleared %d lines, want 1", n)
	}
	if kind := cleared.Cells[Position{19, 4}]; kind != KindT {
		t.Errorf("survivor should drop to (19, 4), cells: %v", cleared.Cells)
	}
}

func TestClearFullLinesRowsAboveUnaffected(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 10, KindL)
	b.Cells[Position{12, 3}] = KindS // below the cleared row

	cleared, n := b.ClearFullLines()
	if n != 1 {
		t.Fatalf("cleared %d lines, want 1", n)
	}
	// Cells below a cleared row do not move.
	if kind := cleared.Cells[Position{12, 3}]; kind != KindS {
		t.Errorf("cell below cleared row moved, cells: %v", cleared.Cells)
	}
}
