package game

import "iter"

// Reachable yields every square reachable from `from` by an unblocked queen
// move, treating asEmpty (if not NoSquare) as empty. Directions are scanned
// 0..7 and each direction outward until the first blocked square. The
// contents of `from` itself are ignored.
func (b *Board) Reachable(from, asEmpty Square) iter.Seq[Square] {
	return func(yield func(Square) bool) {
		if !from.Valid() {
			return
		}
		for dir := 0; dir < NumDirections; dir++ {
			for step := 1; ; step++ {
				sq := from.Along(dir, step)
				if sq == NoSquare || (sq != asEmpty && b.squares[sq] != Empty) {
					break
				}
				if !yield(sq) {
					return
				}
			}
		}
	}
}

// LegalMoves yields the legal moves of the side to move.
func (b *Board) LegalMoves() iter.Seq[Move] {
	return b.LegalMovesFor(b.turn)
}

// LegalMovesFor yields the moves available to side, whoever is to move:
// queens in increasing square order, then destinations, then spear targets,
// each in Reachable order. The board may be changed by the consumer between
// steps as long as it is restored before the next step.
func (b *Board) LegalMovesFor(side Piece) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for from := Square(0); int(from) < NumSquares; from++ {
			if b.squares[from] != side {
				continue
			}
			for to := range b.Reachable(from, NoSquare) {
				for spear := range b.Reachable(to, from) {
					if !yield(NewMove(from, to, spear)) {
						return
					}
				}
			}
		}
	}
}
