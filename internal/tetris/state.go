package tetris

import "math/rand"

// PieceSource supplies the kinds of freshly spawned pieces. Injecting it
// keeps the transition functions deterministic: tests script an exact
// sequence, production wraps a seeded RNG.
type PieceSource interface {
	Next() PieceKind
}

// RandSource is the production PieceSource: uniform over the seven kinds,
// driven by a seeded math/rand generator.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource returns a RandSource seeded with the given value.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// Next draws a piece kind uniformly at random.
func (s *RandSource) Next() PieceKind {
	return PieceKind(s.rng.Intn(KindCount))
}

// Int63 exposes the underlying generator, used by callers to derive a
// fresh seed for a restarted game.
func (s *RandSource) Int63() int64 {
	return s.rng.Int63()
}

// State is an immutable snapshot of a whole game. Every transition takes a
// State and returns a new one; once GameOver is set all transitions are
// no-ops, leaving restart to the caller (construct a fresh game).
//
// Held is a placeholder slot: it is carried through every transition but no
// transition reads or rewrites it.
type State struct {
	Board    Board
	Current  *Piece
	Next     *Piece
	Held     *PieceKind
	Score    int
	Level    int
	Lines    int
	GameOver bool
}

// NewGame returns the starting state: an empty board, no pieces, score 0,
// level 1. Non-positive dimensions fall back to 10x20.
func NewGame(width, height int) State {
	return State{
		Board: NewBoard(width, height),
		Level: 1,
	}
}

// SpawnPiece creates a piece of the given kind at its canonical spawn
// anchor on the board: top center for every kind except O, which anchors
// one row lower and one column left because its offset table hangs up and
// right of the anchor.
func SpawnPiece(b Board, kind PieceKind) Piece {
	if kind == KindO {
		return Piece{Kind: kind, Anchor: Position{1, b.Width/2 - 1}}
	}
	return Piece{Kind: kind, Anchor: Position{0, b.Width / 2}}
}

// RandomPiece spawns a piece whose kind is drawn from src.
func RandomPiece(b Board, src PieceSource) Piece {
	return SpawnPiece(b, src.Next())
}

// CheckGameOver reports whether spawning the given kind would collide.
// The probe anchors one row below the top edge, matching where the piece
// will actually sit when it becomes current; O is probed at its own spawn
// anchor so all four of its literal spawn cells are checked.
func CheckGameOver(b Board, kind PieceKind) bool {
	var probe Piece
	if kind == KindO {
		probe = Piece{Kind: kind, Anchor: Position{1, b.Width/2 - 1}}
	} else {
		probe = Piece{Kind: kind, Anchor: Position{1, b.Width / 2}}
	}
	return !b.IsValidPlacement(probe)
}

// Tick advances the game by one gravity frame. With no current piece it
// spawns: on the very first tick both current and next are generated,
// afterwards next is promoted and a fresh next is drawn. With a current
// piece present a tick is exactly a downward move.
func Tick(s State, src PieceSource) State {
	if s.GameOver {
		return s
	}

	if s.Current == nil {
		if s.Next == nil {
			current := RandomPiece(s.Board, src)
			next := RandomPiece(s.Board, src)
			s.Current = &current
			s.Next = &next
			return s
		}
		next := RandomPiece(s.Board, src)
		s.Current = s.Next
		s.Next = &next
		return s
	}

	return Move(s, Down)
}

// Move shifts the current piece one cell in the given direction. A blocked
// LEFT or RIGHT is a pure no-op. A blocked DOWN locks the piece: it is
// baked into the board, full lines are cleared and scored, the level is
// recomputed, the current slot empties for the next spawn, and the next
// piece's spawn is probed for game over.
func Move(s State, d Direction) State {
	if s.GameOver || s.Current == nil {
		return s
	}

	candidate := s.Current.Moved(d)
	if s.Board.IsValidPlacement(candidate) {
		s.Current = &candidate
		return s
	}

	if d != Down {
		return s
	}

	board := s.Board.Place(*s.Current)
	board, cleared := board.ClearFullLines()

	s.Board = board
	s.Score += ScoreFor(cleared, s.Level)
	s.Lines += cleared
	s.Level = LevelFor(s.Lines)
	s.Current = nil
	if s.Next != nil {
		s.GameOver = CheckGameOver(board, s.Next.Kind)
	}
	return s
}

// Rotate turns the current piece if the rotated cells fit. There is no
// kick search: a blocked rotation leaves the piece untouched and never
// triggers a lock.
func Rotate(s State, spin Spin) State {
	if s.GameOver || s.Current == nil {
		return s
	}

	candidate := s.Current.Rotated(spin)
	if s.Board.IsValidPlacement(candidate) {
		s.Current = &candidate
	}
	return s
}

// HardDrop sends the current piece straight down until it locks. It is the
// collapsed form of soft-dropping every frame, and terminates within the
// board height since every non-locking DOWN strictly lowers the piece.
func HardDrop(s State) State {
	if s.Current == nil {
		return s
	}
	for {
		next := Move(s, Down)
		if samePiece(next.Current, s.Current) {
			return next
		}
		s = next
	}
}

func samePiece(a, b *Piece) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
