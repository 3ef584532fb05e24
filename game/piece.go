package game

// Piece is the content of a square.
type Piece int8

const (
	Empty Piece = iota
	Light
	Dark
	Spear
)

// Opponent returns the other side for Light and Dark, Empty otherwise.
func (p Piece) Opponent() Piece {
	switch p {
	case Light:
		return Dark
	case Dark:
		return Light
	}
	return Empty
}

// IsQueen reports whether p is one of the two sides' queens.
func (p Piece) IsQueen() bool {
	return p == Light || p == Dark
}

// Symbol is the single character used in board text.
func (p Piece) Symbol() string {
	switch p {
	case Light:
		return "W"
	case Dark:
		return "B"
	case Spear:
		return "S"
	}
	return "-"
}

func (p Piece) String() string {
	switch p {
	case Light:
		return "white"
	case Dark:
		return "black"
	case Spear:
		return "spear"
	}
	return "empty"
}

func pieceFromSymbol(symbol string) (Piece, bool) {
	switch symbol {
	case "W":
		return Light, true
	case "B":
		return Dark, true
	case "S":
		return Spear, true
	case "-":
		return Empty, true
	}
	return Empty, false
}
