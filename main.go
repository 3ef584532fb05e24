package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"amazons/engine"
	"amazons/experiments"
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/meta"
	"amazons/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode       string
	white      string
	black      string
	depth      int
	threshold  int
	evaluation string
	seed       uint64
	experiment string
	games      int
	out        string
	logLevel   string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.mode, "mode", "play", "play or experiment")
	flag.StringVar(&cfg.white, "white", "human", "White player: human, ai or random")
	flag.StringVar(&cfg.black, "black", "ai", "Black player: human, ai or random")
	flag.IntVar(&cfg.depth, "depth", meta.DEPTH, "Search depth of ai players")
	flag.IntVar(&cfg.threshold, "threshold", meta.BRANCHING_THRESHOLD, "Number of moves above which ai players only look one move ahead")
	flag.StringVar(&cfg.evaluation, "eval", "opponent-mobility", "Static evaluation of ai players: opponent-mobility or mobility")
	flag.Uint64Var(&cfg.seed, "seed", uint64(time.Now().UnixNano()), "Seed of random players")
	flag.StringVar(&cfg.experiment, "experiment", "depth", "Experiment to run: depth or evaluation")
	flag.IntVar(&cfg.games, "games", meta.GAMES, "Games per match up")
	flag.StringVar(&cfg.out, "out", "results", "Directory experiment records are written to")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "Log level")
	flag.Parse()

	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", cfg.logLevel)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	switch cfg.mode {
	case "play":
		err = play(cfg)
	case "experiment":
		err = runExperiment(cfg)
	default:
		err = fmt.Errorf("unknown mode %q", cfg.mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("amazons")
	}
}

func play(cfg config) error {
	white, err := newPlayer(cfg, cfg.white, 0)
	if err != nil {
		return err
	}
	black, err := newPlayer(cfg, cfg.black, 1)
	if err != nil {
		return err
	}

	fmt.Print(game.NewBoard())
	e := engine.LocalEngine([2]player.Player{white, black}, engine.WithObserver(func(b *game.Board, m game.Move) {
		fmt.Printf("* %s\n%s", m, b)
	}))
	winner, _, _, err := e.Run()
	if errors.Is(err, player.ErrQuit) {
		return nil
	}
	if err != nil {
		return err
	}
	if winner != game.Empty {
		fmt.Printf("%s wins.\n", capitalize(winner.String()))
	}
	return nil
}

func newPlayer(cfg config, kind string, salt uint64) (player.Player, error) {
	if kind == "human" {
		return player.NewText(os.Stdin, os.Stdout), nil
	}
	agent := metrics.AgentConfig{
		Kind:               kind,
		Depth:              cfg.depth,
		BranchingThreshold: cfg.threshold,
		Evaluation:         cfg.evaluation,
		Seed:               cfg.seed,
	}
	if kind == "ai" {
		agent.Kind = experiments.AlphaBeta
	}
	return experiments.NewPlayer(agent, salt)
}

func runExperiment(cfg config) error {
	ctx := context.Background()
	var dir string
	var err error
	switch cfg.experiment {
	case "depth":
		dir, err = experiments.RunDepthExperiment(ctx, cfg.games, cfg.out)
	case "evaluation":
		dir, err = experiments.RunEvaluationExperiment(ctx, cfg.games, cfg.out)
	default:
		return fmt.Errorf("unknown experiment %q", cfg.experiment)
	}
	if err != nil {
		return err
	}
	log.Info().Str("dir", dir).Msg("experiment records stored")
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
