package game

import (
	"fmt"
	"strconv"
)

const (
	Size       = 10 // Squares on a side of the board
	NumSquares = Size * Size
)

// Square is a board coordinate stored as its dense index row*Size+col.
type Square int8

// NoSquare marks a coordinate that is off the board.
const NoSquare Square = -1

// Queen directions, clockwise from north.
const (
	North = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NumDirections
)

var (
	dCol = [NumDirections]int{0, 1, 1, 1, 0, -1, -1, -1}
	dRow = [NumDirections]int{1, 1, 0, -1, -1, -1, 0, 1}
)

// Exists reports whether (col, row) lies on the board.
func Exists(col, row int) bool {
	return col >= 0 && col < Size && row >= 0 && row < Size
}

// SquareAt returns the square at (col, row), or NoSquare when off the board.
func SquareAt(col, row int) Square {
	if !Exists(col, row) {
		return NoSquare
	}
	return Square(row*Size + col)
}

func (s Square) Col() int   { return int(s) % Size }
func (s Square) Row() int   { return int(s) / Size }
func (s Square) Index() int { return int(s) }

// Valid is false for NoSquare and any index outside the board.
func (s Square) Valid() bool {
	return s >= 0 && int(s) < NumSquares
}

// Along returns the square steps squares away in direction dir, or NoSquare.
func (s Square) Along(dir, steps int) Square {
	if !s.Valid() || dir < 0 || dir >= NumDirections {
		return NoSquare
	}
	return SquareAt(s.Col()+dCol[dir]*steps, s.Row()+dRow[dir]*steps)
}

// IsQueenLine reports whether s and t are distinct and share a row, a
// column or a diagonal.
func (s Square) IsQueenLine(t Square) bool {
	if !s.Valid() || !t.Valid() || s == t {
		return false
	}
	dc := t.Col() - s.Col()
	dr := t.Row() - s.Row()
	return dc == 0 || dr == 0 || dc == dr || dc == -dr
}

// DirectionTo returns the direction from s toward t, or -1 when they are
// not on a queen line.
func (s Square) DirectionTo(t Square) int {
	if !s.IsQueenLine(t) {
		return -1
	}
	dc := sign(t.Col() - s.Col())
	dr := sign(t.Row() - s.Row())
	for dir := 0; dir < NumDirections; dir++ {
		if dCol[dir] == dc && dRow[dir] == dr {
			return dir
		}
	}
	return -1
}

// distance is the number of steps from s to t. It is only meaningful when
// s and t share a queen line.
func (s Square) distance(t Square) int {
	return max(abs(t.Col()-s.Col()), abs(t.Row()-s.Row()))
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string(rune('a'+s.Col())) + strconv.Itoa(s.Row()+1)
}

// ParseSquare parses a coordinate such as "a1" or "j10".
func ParseSquare(text string) (Square, error) {
	if len(text) < 2 || len(text) > 3 {
		return NoSquare, fmt.Errorf("bad square %q", text)
	}
	col := int(text[0] - 'a')
	row, err := strconv.Atoi(text[1:])
	if err != nil || text[1] == '0' || text[1] == '+' || text[1] == '-' {
		return NoSquare, fmt.Errorf("bad square %q", text)
	}
	row--
	if !Exists(col, row) {
		return NoSquare, fmt.Errorf("square %q is off the board", text)
	}
	return SquareAt(col, row), nil
}

// MustParseSquare is ParseSquare for fixed literals.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
