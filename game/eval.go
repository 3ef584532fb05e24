package game

// EvaluateOpponentMobility counts the empty squares next to each queen of
// side's opponent and signs the total for side: positive when side is
// Light, negative when side is Dark.
func EvaluateOpponentMobility(b *Board, side Piece) int {
	score := 0
	opponent := side.Opponent()
	for i, p := range b.squares {
		if p == opponent {
			score += b.Mobility(Square(i))
		}
	}
	if side == Light {
		return score
	}
	return -score
}

// EvaluateMobility is the difference between Light's and Dark's one-step
// queen mobility, independent of side.
func EvaluateMobility(b *Board, side Piece) int {
	score := 0
	for i, p := range b.squares {
		switch p {
		case Light:
			score += b.Mobility(Square(i))
		case Dark:
			score -= b.Mobility(Square(i))
		}
	}
	return score
}
