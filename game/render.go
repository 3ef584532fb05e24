package game

import (
	"fmt"
	"strings"
)

// String renders the board from row 10 down to row 1, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	for row := Size - 1; row >= 0; row-- {
		for col := 0; col < Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.squares[SquareAt(col, row)].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads text in the format produced by String and returns a
// board with turn to move and an empty history.
func ParseBoard(text string, turn Piece) (*Board, error) {
	lines := strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' })
	rows := make([][]string, 0, Size)
	for _, line := range lines {
		if cells := strings.Fields(line); len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrMalformedBoard, len(rows), Size)
	}
	if !turn.IsQueen() {
		return nil, fmt.Errorf("%w: side to move %s", ErrMalformedBoard, turn)
	}

	b := NewEmptyBoard(turn)
	for i, cells := range rows {
		row := Size - 1 - i
		if len(cells) != Size {
			return nil, fmt.Errorf("%w: row %d has %d squares, want %d", ErrMalformedBoard, row+1, len(cells), Size)
		}
		for col, cell := range cells {
			p, ok := pieceFromSymbol(cell)
			if !ok {
				return nil, fmt.Errorf("%w: unknown symbol %q at %s", ErrMalformedBoard, cell, SquareAt(col, row))
			}
			b.squares[SquareAt(col, row)] = p
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixed literals.
func MustParseBoard(text string, turn Piece) *Board {
	b, err := ParseBoard(text, turn)
	if err != nil {
		panic(err)
	}
	return b
}
