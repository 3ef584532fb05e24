package player

import (
	"fmt"
	"time"

	"amazons/experiments/metrics"
	"amazons/game"

	"golang.org/x/exp/rand"
)

type randomPlayer struct {
	rng *rand.Rand
}

// NewRandom returns a player that picks uniformly among the legal moves.
// Players with the same seed play the same moves.
func NewRandom(seed uint64) Player {
	return &randomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *randomPlayer) FindMove(b *game.Board) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	chosen := game.NoMove
	n := 0
	// Reservoir sampling keeps the enumeration lazy
	for m := range b.LegalMoves() {
		n++
		if p.rng.Intn(n) == 0 {
			chosen = m
		}
	}
	if n == 0 {
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("no legal moves for %s", b.Turn())
	}
	return chosen, metrics.SearchMetric{Branching: n, Duration: time.Since(start)}, nil
}
