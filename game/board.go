package game

import (
	"fmt"
	"slices"
)

var (
	initialLight = [...]Square{SquareAt(0, 3), SquareAt(3, 0), SquareAt(6, 0), SquareAt(9, 3)}
	initialDark  = [...]Square{SquareAt(0, 6), SquareAt(3, 9), SquareAt(6, 9), SquareAt(9, 6)}
)

// Board is the mutable state of a game: piece placement, side to move and
// the history of applied moves. It changes only through ApplyMove/Play and
// Undo once play has started.
type Board struct {
	squares [NumSquares]Piece
	turn    Piece
	moves   []Move
	winner  Piece // Cached by Winner(), Empty when unknown or in progress
	decided bool  // Whether winner holds a computed value
}

// NewBoard returns a board in the initial position with Light to move.
func NewBoard() *Board {
	b := NewEmptyBoard(Light)
	for _, sq := range initialLight {
		b.squares[sq] = Light
	}
	for _, sq := range initialDark {
		b.squares[sq] = Dark
	}
	return b
}

// NewEmptyBoard returns a board with no pieces and turn to move, for
// building positions with Put.
func NewEmptyBoard(turn Piece) *Board {
	if !turn.IsQueen() {
		panic(fmt.Sprintf("side to move must be white or black, got %s", turn))
	}
	return &Board{turn: turn}
}

// Copy returns an independent deep copy of b.
func (b *Board) Copy() *Board {
	return &Board{
		squares: b.squares,
		turn:    b.turn,
		moves:   slices.Clone(b.moves),
		winner:  b.winner,
		decided: b.decided,
	}
}

// Turn returns the side to move.
func (b *Board) Turn() Piece {
	return b.turn
}

// NumMoves returns the number of moves applied and not undone.
func (b *Board) NumMoves() int {
	return len(b.moves)
}

// Moves returns a copy of the move history, oldest first.
func (b *Board) Moves() []Move {
	return slices.Clone(b.moves)
}

// LastMove returns the most recent move, if any.
func (b *Board) LastMove() (Move, bool) {
	if len(b.moves) == 0 {
		return NoMove, false
	}
	return b.moves[len(b.moves)-1], true
}

// Get returns the contents of sq; off-board squares read as Spear so that
// they always block.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Spear
	}
	return b.squares[sq]
}

// Put sets sq to p. It is meant for setting up positions before play.
func (b *Board) Put(p Piece, sq Square) {
	if !sq.Valid() {
		panic(fmt.Sprintf("cannot put %s off the board", p))
	}
	b.squares[sq] = p
	b.invalidate()
}

// Queens returns the squares holding side's queens in increasing index order.
func (b *Board) Queens(side Piece) []Square {
	var queens []Square
	for i, p := range b.squares {
		if p == side {
			queens = append(queens, Square(i))
		}
	}
	return queens
}

// IsLegalOrigin reports whether from holds a queen of the side to move.
func (b *Board) IsLegalOrigin(from Square) bool {
	return from.Valid() && b.squares[from] == b.turn
}

// IsUnblockedPath reports whether from-to is a queen line whose squares
// after from, up to and including to, are all empty. asEmpty (or NoSquare)
// is treated as empty whatever it holds.
func (b *Board) IsUnblockedPath(from, to, asEmpty Square) bool {
	if !from.IsQueenLine(to) {
		return false
	}
	dir := from.DirectionTo(to)
	for step := 1; step <= from.distance(to); step++ {
		sq := from.Along(dir, step)
		if sq != asEmpty && b.squares[sq] != Empty {
			return false
		}
	}
	return true
}

// IsLegal reports whether m is a legal move in the current position.
func (b *Board) IsLegal(m Move) bool {
	return b.IsLegalOrigin(m.From) &&
		b.IsUnblockedPath(m.From, m.To, NoSquare) &&
		b.IsUnblockedPath(m.To, m.Spear, m.From)
}

// Play applies m after checking it, returning an error wrapping
// ErrIllegalMove when it is not legal.
func (b *Board) Play(m Move) error {
	if !b.IsLegal(m) {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, b.turn)
	}
	b.apply(m)
	return nil
}

// ApplyMove applies m, which must be legal.
func (b *Board) ApplyMove(m Move) {
	if !b.IsLegal(m) {
		panic(fmt.Sprintf("apply of illegal move %s for %s", m, b.turn))
	}
	b.apply(m)
}

func (b *Board) apply(m Move) {
	b.squares[m.From] = Empty
	b.squares[m.To] = b.turn
	b.squares[m.Spear] = Spear
	b.moves = append(b.moves, m)
	b.turn = b.turn.Opponent()
	b.invalidate()
}

// Undo takes back the last move. The history must not be empty.
func (b *Board) Undo() {
	if len(b.moves) == 0 {
		panic("undo with empty move history")
	}
	m := b.moves[len(b.moves)-1]
	b.moves = b.moves[:len(b.moves)-1]
	b.turn = b.turn.Opponent()
	// Reverse order of apply: the spear may have landed on From.
	b.squares[m.Spear] = Empty
	b.squares[m.To] = Empty
	b.squares[m.From] = b.turn
	b.invalidate()
}

// Winner returns the winning side, or Empty while the side to move can
// still move.
func (b *Board) Winner() Piece {
	if !b.decided {
		b.winner = Empty
		if b.HasNoMove(b.turn) {
			b.winner = b.turn.Opponent()
		}
		b.decided = true
	}
	return b.winner
}

// HasNoMove reports whether none of side's queens has an empty neighbour.
// A queen with one empty neighbour can always step there and throw the
// spear back at its origin.
func (b *Board) HasNoMove(side Piece) bool {
	for i, p := range b.squares {
		if p != side {
			continue
		}
		if b.Mobility(Square(i)) > 0 {
			return false
		}
	}
	return true
}

// Mobility counts the empty squares adjacent to sq in the 8 directions.
func (b *Board) Mobility(sq Square) int {
	n := 0
	for dir := 0; dir < NumDirections; dir++ {
		next := sq.Along(dir, 1)
		if next != NoSquare && b.squares[next] == Empty {
			n++
		}
	}
	return n
}

func (b *Board) invalidate() {
	b.winner = Empty
	b.decided = false
}
