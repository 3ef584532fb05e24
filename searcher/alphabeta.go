package searcher

import (
	"fmt"

	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/utils"

	"github.com/rs/zerolog/log"
)

type Option func(ab *AlphaBeta)

// AlphaBeta is a depth-limited minimax searcher with alpha-beta pruning.
// It keeps no state between searches besides its configuration.
type AlphaBeta struct {
	depth     int
	threshold int
	evaluate  game.Evaluate
	metrics   metrics.Collector
}

func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth >= 0 {
			ab.depth = depth
		}
	}
}

func WithBranchingThreshold(threshold int) Option {
	return func(ab *AlphaBeta) {
		if threshold >= 0 {
			ab.threshold = threshold
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		depth:     DefaultDepth,
		threshold: DefaultBranchingThreshold,
		evaluate:  game.EvaluateOpponentMobility,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

// FindMove returns the move chosen for the side to move. The board is not
// modified. There must be at least one legal move.
func (ab *AlphaBeta) FindMove(b *game.Board) game.Move {
	move, _ := ab.Search(b)
	return move
}

// Search is FindMove that also reports the search metrics.
func (ab *AlphaBeta) Search(b *game.Board) (game.Move, metrics.SearchMetric) {
	s := &search{
		board:    b.Copy(),
		side:     b.Turn(),
		evaluate: ab.evaluate,
		metrics:  ab.metrics,
		best:     game.NoMove,
	}
	if s.board.Winner() != game.Empty {
		panic(fmt.Sprintf("search for %s with no legal moves", s.side))
	}

	branching := utils.CountUpTo(s.board.LegalMoves(), ab.threshold+1)
	depth := ab.MaxDepth(branching)

	ab.metrics.Start(depth, branching)
	score := s.findMove(depth, true, -Infinity, Infinity)
	metric := ab.metrics.Complete()
	metric.Score = score

	log.Debug().
		Str("side", s.side.String()).
		Int("depth", depth).
		Int("branching", branching).
		Int("score", score).
		Str("move", s.best.String()).
		Msg("alphabeta-search")
	return s.best, metric
}

// MaxDepth returns the depth to search given the number of moves available
// at the root, counted up to one past the branching threshold.
func (ab *AlphaBeta) MaxDepth(branching int) int {
	if branching > ab.threshold {
		return 0
	}
	return ab.depth
}

// search is the state of one FindMove call: a private board that is
// changed in place and restored after every explored move.
type search struct {
	board    *game.Board
	side     game.Piece // Side the move is chosen for, the evaluator's point of view
	evaluate game.Evaluate
	metrics  metrics.Collector
	best     game.Move // Best root move found so far
}

// findMove returns the value of the position searched depth plies deep,
// recording the best move in s.best iff saveMove. Light maximises and Dark
// minimises; a later move with a value equal to the best so far replaces it.
func (s *search) findMove(depth int, saveMove bool, alpha, beta int) int {
	s.metrics.AddNode()
	if winner := s.board.Winner(); winner != game.Empty {
		return winningScore(winner)
	}
	if depth == 0 {
		return s.scan(saveMove, alpha, beta)
	}

	maximizing := s.board.Turn() == game.Light
	bestSoFar := Infinity
	if maximizing {
		bestSoFar = -Infinity
	}
	for m := range s.board.LegalMoves() {
		response := s.explore(m, func() int {
			return s.findMove(depth-1, false, alpha, beta)
		})
		if maximizing && response >= bestSoFar {
			bestSoFar = response
			alpha = max(alpha, bestSoFar)
		} else if !maximizing && response <= bestSoFar {
			bestSoFar = response
			beta = min(beta, bestSoFar)
		} else {
			continue
		}
		if saveMove {
			s.best = m
		}
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return bestSoFar
}

// scan is the one-ply search at depth 0: every move is applied and its
// resulting position evaluated. Only strictly better values replace the
// best so far.
func (s *search) scan(saveMove bool, alpha, beta int) int {
	maximizing := s.board.Turn() == game.Light
	bestSoFar := Infinity
	if maximizing {
		bestSoFar = -Infinity
	}
	for m := range s.board.LegalMoves() {
		value := s.explore(m, s.leaf)
		if maximizing && value > bestSoFar {
			bestSoFar = value
			alpha = max(alpha, value)
		} else if !maximizing && value < bestSoFar {
			bestSoFar = value
			beta = min(beta, value)
		} else {
			continue
		}
		if saveMove {
			s.best = m
		}
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return bestSoFar
}

// leaf evaluates the current position without searching further.
func (s *search) leaf() int {
	s.metrics.AddLeaf()
	if winner := s.board.Winner(); winner != game.Empty {
		return winningScore(winner)
	}
	return s.evaluate(s.board, s.side)
}

// explore applies m, runs f on the resulting position and takes m back on
// every path out, including pruning breaks and panics.
func (s *search) explore(m game.Move, f func() int) int {
	s.board.ApplyMove(m)
	defer s.board.Undo()
	return f()
}
