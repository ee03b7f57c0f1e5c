// Package tetris implements the rules of a classic falling-block puzzle
// game as a set of immutable values and pure transition functions. It
// contains no external dependencies (especially no Bubble Tea) so the
// rules stay testable and replayable in isolation.
package tetris

// PieceKind identifies one of the seven canonical piece shapes.
type PieceKind int

const (
	KindI PieceKind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	// KindCount is the number of distinct piece kinds.
	KindCount = 7
)

// String returns the conventional one-letter name of the kind.
func (k PieceKind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Kinds returns all seven piece kinds in declaration order.
func Kinds() [KindCount]PieceKind {
	return [KindCount]PieceKind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}

// Offset is a cell position relative to a piece's anchor.
// Row grows downward, Col grows rightward.
type Offset struct {
	Row, Col int
}

// shapeTable holds the four rotation states of every kind as offsets from
// the anchor. The pivots are chosen so in-place rotation looks right for a
// classic (non-SRS) rotation system; there is no wall-kick data because
// rejected rotations are simply discarded. The O entries are identical on
// purpose: a square does not change under rotation.
var shapeTable = [KindCount][4][4]Offset{
	KindI: {
		{{0, 0}, {0, -1}, {0, 1}, {0, 2}},
		{{0, 0}, {-1, 0}, {1, 0}, {2, 0}},
		{{0, 0}, {0, -1}, {0, 1}, {0, 2}},
		{{0, 0}, {-1, 0}, {1, 0}, {2, 0}},
	},
	KindJ: {
		{{0, 0}, {0, -1}, {0, 1}, {-1, 1}},
		{{0, 0}, {-1, 0}, {1, 0}, {1, -1}},
		{{0, 0}, {0, -1}, {0, 1}, {1, -1}},
		{{0, 0}, {-1, 0}, {1, 0}, {-1, 1}},
	},
	KindL: {
		{{0, 0}, {0, -1}, {0, 1}, {-1, -1}},
		{{0, 0}, {-1, 0}, {1, 0}, {-1, -1}},
		{{0, 0}, {0, -1}, {0, 1}, {1, 1}},
		{{0, 0}, {-1, 0}, {1, 0}, {1, 1}},
	},
	KindO: {
		{{0, 0}, {0, 1}, {-1, 0}, {-1, 1}},
		{{0, 0}, {0, 1}, {-1, 0}, {-1, 1}},
		{{0, 0}, {0, 1}, {-1, 0}, {-1, 1}},
		{{0, 0}, {0, 1}, {-1, 0}, {-1, 1}},
	},
	KindS: {
		{{0, 0}, {0, -1}, {-1, 0}, {-1, 1}},
		{{0, 0}, {-1, -1}, {0, -1}, {1, 0}},
		{{0, 0}, {0, -1}, {-1, 0}, {-1, 1}},
		{{0, 0}, {-1, -1}, {0, -1}, {1, 0}},
	},
	KindT: {
		{{0, 0}, {0, -1}, {0, 1}, {-1, 0}},
		{{0, 0}, {-1, 0}, {1, 0}, {0, -1}},
		{{0, 0}, {0, -1}, {0, 1}, {1, 0}},
		{{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
	},
	KindZ: {
		{{0, 0}, {0, 1}, {-1, -1}, {-1, 0}},
		{{0, 0}, {1, 0}, {0, 1}, {-1, 1}},
		{{0, 0}, {0, 1}, {-1, -1}, {-1, 0}},
		{{0, 0}, {1, 0}, {0, 1}, {-1, 1}},
	},
}

// Shape returns the four cell offsets for a kind at the given rotation
// index. The index is normalized mod 4, so any int (including negatives)
// is a valid argument.
func Shape(kind PieceKind, rotation int) [4]Offset {
	r := rotation % 4
	if r < 0 {
		r += 4
	}
	return shapeTable[kind][r]
}
