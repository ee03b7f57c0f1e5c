package tetris

// Position is an absolute board cell. Row 0 is the top row and rows grow
// downward. A Position carries no bounds guarantee on its own; validity is
// always judged against a Board.
type Position struct {
	Row, Col int
}

// Direction is a lateral or downward movement request.
type Direction int

const (
	Left Direction = iota
	Right
	Down
)

// String returns a lowercase name for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Spin is a rotation request.
type Spin int

const (
	Clockwise Spin = iota
	CounterClockwise
)

// Moved returns the position one cell over in the given direction.
func (p Position) Moved(d Direction) Position {
	switch d {
	case Left:
		return Position{p.Row, p.Col - 1}
	case Right:
		return Position{p.Row, p.Col + 1}
	case Down:
		return Position{p.Row + 1, p.Col}
	}
	return p
}

// Piece is an immutable falling piece: a kind, the anchor its shape offsets
// are relative to, and a rotation index in 0..3. Moving or rotating a piece
// produces a new value.
type Piece struct {
	Kind     PieceKind
	Anchor   Position
	Rotation int
}

// Cells returns the four absolute cells the piece occupies.
func (p Piece) Cells() [4]Position {
	shape := Shape(p.Kind, p.Rotation)
	var cells [4]Position
	for i, off := range shape {
		cells[i] = Position{p.Anchor.Row + off.Row, p.Anchor.Col + off.Col}
	}
	return cells
}

// Moved returns a copy of the piece shifted one cell in the given
// direction. It never fails; whether the result fits on a board is the
// caller's concern.
func (p Piece) Moved(d Direction) Piece {
	return Piece{Kind: p.Kind, Anchor: p.Anchor.Moved(d), Rotation: p.Rotation}
}

// Rotated returns a copy of the piece turned one step in the given spin
// direction. The anchor is unchanged.
func (p Piece) Rotated(s Spin) Piece {
	step := 1
	if s == CounterClockwise {
		step = -1
	}
	r := (p.Rotation + step) % 4
	if r < 0 {
		r += 4
	}
	return Piece{Kind: p.Kind, Anchor: p.Anchor, Rotation: r}
}
