package tetris

import "testing"

func TestPieceCells(t *testing.T) {
	p := Piece{Kind: KindT, Anchor: Position{5, 4}}

	// T at rotation 0: anchor, left, right, above.
	want := [4]Position{{5, 4}, {5, 3}, {5, 5}, {4, 4}}
	if p.Cells() != want {
		t.Errorf("Cells() = %v, want %v", p.Cells(), want)
	}
}

func TestMovedShiftsAnchor(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Position
	}{
		{Left, Position{3, 4}},
		{Right, Position{3, 6}},
		{Down, Position{4, 5}},
	}

	p := Piece{Kind: KindL, Anchor: Position{3, 5}, Rotation: 2}
	for _, tc := range tests {
		moved := p.Moved(tc.dir)
		if moved.Anchor != tc.want {
			t.Errorf("Moved(%v).Anchor = %v, want %v", tc.dir, moved.Anchor, tc.want)
		}
		if moved.Kind != p.Kind || moved.Rotation != p.Rotation {
			t.Errorf("Moved(%v) changed kind or rotation: %+v", tc.dir, moved)
		}
	}

	// The original piece must be untouched.
	if p.Anchor != (Position{3, 5}) {
		t.Errorf("Moved mutated the receiver: %+v", p)
	}
}

func TestMovedInverse(t *testing.T) {
	p := Piece{Kind: KindS, Anchor: Position{7, 2}}
	if back := p.Moved(Left).Moved(Right); back.Anchor != p.Anchor {
		t.Errorf("Left then Right moved the anchor: %v", back.Anchor)
	}
	if back := p.Moved(Right).Moved(Left); back.Anchor != p.Anchor {
		t.Errorf("Right then Left moved the anchor: %v", back.Anchor)
	}
}

func TestRotatedFullCycle(t *testing.T) {
	for _, kind := range Kinds() {
		p := Piece{Kind: kind, Anchor: Position{4, 4}, Rotation: 1}

		cw := p
		ccw := p
		for i := 0; i < 4; i++ {
			cw = cw.Rotated(Clockwise)
			ccw = ccw.Rotated(CounterClockwise)
		}
		if cw != p {
			t.Errorf("%v: four clockwise rotations = %+v, want %+v", kind, cw, p)
		}
		if ccw != p {
			t.Errorf("%v: four counterclockwise rotations = %+v, want %+v", kind, ccw, p)
		}
	}
}

func TestRotatedWrapsIndex(t *testing.T) {
	p := Piece{Kind: KindJ, Anchor: Position{0, 0}, Rotation: 3}
	if got := p.Rotated(Clockwise).Rotation; got != 0 {
		t.Errorf("rotation 3 clockwise = %d, want 0", got)
	}

	p.Rotation = 0
	if got := p.Rotated(CounterClockwise).Rotation; got != 3 {
		t.Errorf("rotation 0 counterclockwise = %d, want 3", got)
	}
}

func TestRotatedKeepsAnchor(t *testing.T) {
	p := Piece{Kind: KindZ, Anchor: Position{9, 3}}
	if got := p.Rotated(Clockwise).Anchor; got != p.Anchor {
		t.Errorf("Rotated moved the anchor to %v", got)
	}
}
