package player

import (
	"amazons/experiments/metrics"
	"amazons/game"
)

// Searcher is a move search that reports its metrics, such as
// *searcher.AlphaBeta.
type Searcher interface {
	Search(b *game.Board) (game.Move, metrics.SearchMetric)
}

type aiPlayer struct {
	searcher Searcher
}

// NewAI returns a player that lets s choose every move.
func NewAI(s Searcher) Player {
	return &aiPlayer{searcher: s}
}

func (p *aiPlayer) FindMove(b *game.Board) (game.Move, metrics.SearchMetric, error) {
	move, metric := p.searcher.Search(b)
	return move, metric, nil
}
