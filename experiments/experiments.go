package experiments

import (
	"context"
	"fmt"

	"amazons/engine"
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/meta"
	"amazons/player"
	"amazons/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	AlphaBeta = "alphabeta"
	Random    = "random"
)

// Evaluations are the static evaluators an AgentConfig can name.
var Evaluations = map[string]game.Evaluate{
	"":                  game.EvaluateOpponentMobility,
	"opponent-mobility": game.EvaluateOpponentMobility,
	"mobility":          game.EvaluateMobility,
}

type gameResult struct {
	winner game.Piece
	game   metrics.GameRecord
	moves  []metrics.MoveRecord
}

// Run plays numGames games for every match up, up to meta.GO_ROUTINES at
// a time, and stores the configs and results under <outDir>/<name>.
// The two configs of a match up swap sides every other game. Run returns
// the directory the records were written to.
func Run(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, numGames int, outDir string) (string, error) {
	log.Info().Msgf("starting %s experiment...", name)

	results := make([]gameResult, len(matchUps)*numGames)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(meta.GO_ROUTINES)
	for mi, matchUp := range matchUps {
		log.Info().Msgf("scheduling matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < numGames; i++ {
			light, dark := matchUp[0], matchUp[1]
			if i%2 == 1 {
				light, dark = dark, light
			}
			slot := mi*numGames + i
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := runGame(light, dark, uint64(slot))
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				results[slot] = result
				log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, result.winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	log.Info().Msgf("completed %s experiment", name)

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for _, result := range results {
		gameRecords = append(gameRecords, result.game)
		moveRecords = append(moveRecords, result.moves...)
	}
	return store(name, outDir, configs, gameRecords, moveRecords)
}

func store(name, outDir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame plays one game and returns its records. salt varies the seed of
// random players between games.
func runGame(light, dark metrics.AgentConfig, salt uint64) (gameResult, error) {
	lightPlayer, err := NewPlayer(light, salt)
	if err != nil {
		return gameResult{}, err
	}
	darkPlayer, err := NewPlayer(dark, salt)
	if err != nil {
		return gameResult{}, err
	}

	e := engine.LocalEngine([2]player.Player{lightPlayer, darkPlayer})
	winner, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return gameResult{}, err
	}

	result := gameResult{
		winner: winner,
		game: metrics.GameRecord{
			Light:      light.ID,
			Dark:       dark.ID,
			GameMetric: gameMetric,
		},
		moves: make([]metrics.MoveRecord, 0, len(moveMetrics)),
	}
	for _, mm := range moveMetrics {
		result.moves = append(result.moves, metrics.MoveRecord{
			Game:       gameMetric.ID,
			MoveMetric: mm,
		})
	}
	return result, nil
}

// NewPlayer builds the player an AgentConfig describes.
func NewPlayer(config metrics.AgentConfig, salt uint64) (player.Player, error) {
	switch config.Kind {
	case AlphaBeta:
		evaluate, ok := Evaluations[config.Evaluation]
		if !ok {
			return nil, fmt.Errorf("unknown evaluation %q", config.Evaluation)
		}
		return player.NewAI(createAlphaBeta(config, evaluate)), nil
	case Random:
		return player.NewRandom(config.Seed + salt), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
}

func createAlphaBeta(config metrics.AgentConfig, evaluate game.Evaluate) *searcher.AlphaBeta {
	options := []searcher.Option{}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.BranchingThreshold > 0 {
		options = append(options, searcher.WithBranchingThreshold(config.BranchingThreshold))
	}
	options = append(options, searcher.WithEvaluationFn(evaluate))

	options = append(options, searcher.WithMetrics())
	return searcher.NewAlphaBeta(options...)
}
