package game

// Evaluate scores a position that has no winner yet from the point of view
// of side, the player the search is choosing a move for. Positive scores
// favour Light, negative scores favour Dark.
type Evaluate func(b *Board, side Piece) int
