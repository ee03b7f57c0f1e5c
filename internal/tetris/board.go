package tetris

// Default board dimensions for a standard well.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Board is the play field: a fixed-size grid whose occupied cells are
// tagged with the kind of the piece that locked there. Absence of a key
// means the cell is empty. Boards are treated as immutable values: Place
// and ClearFullLines build a fresh cell map and leave the receiver alone.
type Board struct {
	Width  int
	Height int
	Cells  map[Position]PieceKind
}

// NewBoard returns an empty board. Non-positive dimensions fall back to the
// standard 10x20 well.
func NewBoard(width, height int) Board {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return Board{Width: width, Height: height, Cells: map[Position]PieceKind{}}
}

// IsValidPosition reports whether pos is inside the board and unoccupied.
func (b Board) IsValidPosition(pos Position) bool {
	if pos.Row < 0 || pos.Row >= b.Height || pos.Col < 0 || pos.Col >= b.Width {
		return false
	}
	_, occupied := b.Cells[pos]
	return !occupied
}

// IsValidPlacement reports whether every cell of the piece is a valid
// position. A single bad cell invalidates the whole piece.
func (b Board) IsValidPlacement(p Piece) bool {
	for _, cell := range p.Cells() {
		if !b.IsValidPosition(cell) {
			return false
		}
	}
	return true
}

// Place returns a new board with the piece baked into the grid. The caller
// must have validated the placement; Place itself does no checking.
func (b Board) Place(p Piece) Board {
	cells := make(map[Position]PieceKind, len(b.Cells)+4)
	for pos, kind := range b.Cells {
		cells[pos] = kind
	}
	for _, cell := range p.Cells() {
		cells[cell] = p.Kind
	}
	return Board{Width: b.Width, Height: b.Height, Cells: cells}
}

// ClearFullLines removes every full row and drops the survivors. A row is
// full when all of its columns are occupied. Each surviving cell moves down
// by the number of full rows strictly below it, which reproduces classic
// line-clear behavior. Returns the new board and the number of rows
// cleared; with nothing to clear it returns the receiver unchanged without
// allocating.
func (b Board) ClearFullLines() (Board, int) {
	var full []int
	for row := 0; row < b.Height; row++ {
		complete := true
		for col := 0; col < b.Width; col++ {
			if _, ok := b.Cells[Position{row, col}]; !ok {
				complete = false
				break
			}
		}
		if complete {
			full = append(full, row)
		}
	}

	if len(full) == 0 {
		return b, 0
	}

	isFull := make(map[int]bool, len(full))
	for _, row := range full {
		isFull[row] = true
	}

	cells := make(map[Position]PieceKind, len(b.Cells))
	for pos, kind := range b.Cells {
		if isFull[pos.Row] {
			continue
		}
		shift := 0
		for _, row := range full {
			if row > pos.Row {
				shift++
			}
		}
		cells[Position{pos.Row + shift, pos.Col}] = kind
	}

	return Board{Width: b.Width, Height: b.Height, Cells: cells}, len(full)
}
