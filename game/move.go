package game

import (
	"fmt"
	"strings"
)

// Move is a queen move From-To followed by a spear thrown from To at Spear.
// Legality is a property of a Board, not of the Move.
type Move struct {
	From  Square
	To    Square
	Spear Square
}

// NoMove is the zero-information move returned alongside errors.
var NoMove = Move{From: NoSquare, To: NoSquare, Spear: NoSquare}

func NewMove(from, to, spear Square) Move {
	return Move{From: from, To: to, Spear: spear}
}

// String returns the canonical form, e.g. "d1-b1(d1)".
func (m Move) String() string {
	return fmt.Sprintf("%s-%s(%s)", m.From, m.To, m.Spear)
}

// ParseMove reads three coordinates separated by whitespace, '-', ',' or
// parentheses. "d1-b1(d1)" and "d1 b1 d1" parse to the same move.
func ParseMove(text string) (Move, error) {
	tokens := strings.FieldsFunc(strings.ToLower(text), isMoveSeparator)
	if len(tokens) != 3 {
		return NoMove, fmt.Errorf("%w: %q has %d coordinates, want 3", ErrMalformedMove, text, len(tokens))
	}
	var squares [3]Square
	for i, token := range tokens {
		sq, err := ParseSquare(token)
		if err != nil {
			return NoMove, fmt.Errorf("%w: %v", ErrMalformedMove, err)
		}
		squares[i] = sq
	}
	return NewMove(squares[0], squares[1], squares[2]), nil
}

// MustParseMove is ParseMove for fixed literals.
func MustParseMove(text string) Move {
	m, err := ParseMove(text)
	if err != nil {
		panic(err)
	}
	return m
}

// IsGrammaticalMove reports whether text parses as a move, legal or not.
func IsGrammaticalMove(text string) bool {
	_, err := ParseMove(text)
	return err == nil
}

func isMoveSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '-', ',', '(', ')':
		return true
	}
	return false
}
