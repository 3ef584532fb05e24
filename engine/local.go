package engine

import (
	"fmt"
	"time"

	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/meta"
	"amazons/player"
	"amazons/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

// Observer is called with the authoritative board after every move.
type Observer func(b *game.Board, m game.Move)

// WithBoard starts the game from a copy of b instead of the initial position.
func WithBoard(b *game.Board) Option {
	return func(e *localEngine) {
		if b != nil {
			e.board = b.Copy()
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *localEngine) {
		e.observer = observer
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *localEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

type localEngine struct {
	board    *game.Board
	players  [2]player.Player // Light then Dark
	observer Observer
	maxTurns int
}

// LocalEngine sets up a game between players[0] playing Light and
// players[1] playing Dark.
func LocalEngine(players [2]player.Player, options ...Option) Engine {
	if players[0] == nil || players[1] == nil {
		panic("need two players")
	}

	e := &localEngine{
		board:    game.NewBoard(),
		players:  players,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until a winner is found. A player
// error or an illegal move ends the game without a winner.
func (e *localEngine) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             uuid.NewString(),
		StartingPlayer: e.board.Turn().String(),
		StartTime:      time.Now(),
	}
	logger := log.With().Str("game", gameMetric.ID).Logger()
	logger.Info().Msgf("%s is starting", e.board.Turn())

	var moveMetrics []metrics.MoveMetric
	for turn := 1; e.board.Winner() == game.Empty && turn <= e.maxTurns; turn++ {
		side := e.board.Turn()
		move, searchMetric, err := e.playerFor(side).FindMove(e.board.Copy())
		if err != nil {
			return game.Empty, e.finish(gameMetric, game.Empty, moveMetrics), moveMetrics, fmt.Errorf("%s failed to move: %w", side, err)
		}
		if err := e.board.Play(move); err != nil {
			return game.Empty, e.finish(gameMetric, game.Empty, moveMetrics), moveMetrics, fmt.Errorf("%s played %s: %w", side, move, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       side.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		logger.Debug().
			Int("step", turn).
			Str("player", side.String()).
			Str("move", move.String()).
			Int("depth", searchMetric.Depth).
			Int("branching", searchMetric.Branching).
			Msg("move")

		if e.observer != nil {
			e.observer(e.board, move)
		}
	}

	winner := e.board.Winner()
	if winner != game.Empty {
		logger.Info().Msgf("game ended with winner %s after %d moves", winner, len(moveMetrics))
	} else {
		logger.Warn().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}
	return winner, e.finish(gameMetric, winner, moveMetrics), moveMetrics, nil
}

// sides lists the sides in the order of the players array.
var sides = []game.Piece{game.Light, game.Dark}

func (e *localEngine) playerFor(side game.Piece) player.Player {
	i := utils.FindIndex(sides, side)
	if i < 0 {
		panic(fmt.Sprintf("no player for %s", side))
	}
	return e.players[i]
}

func (e *localEngine) finish(gameMetric metrics.GameMetric, winner game.Piece, moveMetrics []metrics.MoveMetric) metrics.GameMetric {
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner != game.Empty {
		gameMetric.Winner = winner.String()
	}
	return gameMetric
}
