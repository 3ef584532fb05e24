package player

import (
	"errors"

	"amazons/experiments/metrics"
	"amazons/game"
)

// ErrQuit is returned by a player that gives up the game.
var ErrQuit = errors.New("player quit")

// Player chooses the next move for the side to move. Implementations must
// leave the board as they found it.
type Player interface {
	FindMove(b *game.Board) (game.Move, metrics.SearchMetric, error)
}
