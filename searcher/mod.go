package searcher

import (
	"math"

	"amazons/game"
	"amazons/meta"
)

// Search parameters
const DefaultDepth = meta.DEPTH                            // Plies searched when the position is narrow enough
const DefaultBranchingThreshold = meta.BRANCHING_THRESHOLD // Above this many moves the search falls back to a greedy scan

// Scores are signed: positive favours Light, negative favours Dark.
const Infinity = math.MaxInt
const WinningValue = Infinity - 1 // Magnitude of a decided game, whatever its depth

// Searcher chooses a move for the side to move on a board.
type Searcher interface {
	FindMove(b *game.Board) game.Move
}

func winningScore(winner game.Piece) int {
	if winner == game.Light {
		return WinningValue
	}
	return -WinningValue
}
