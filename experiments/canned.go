package experiments

import (
	"context"

	"amazons/experiments/metrics"
	"amazons/meta"
)

// Baseline is the random player every canned experiment measures against.
var Baseline = metrics.AgentConfig{ID: 0, Kind: Random, Seed: 1}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: AlphaBeta, Depth: 1, BranchingThreshold: meta.BRANCHING_THRESHOLD, Evaluation: "opponent-mobility"},
	{ID: 2, Kind: AlphaBeta, Depth: 2, BranchingThreshold: meta.BRANCHING_THRESHOLD, Evaluation: "opponent-mobility"},
	{ID: 3, Kind: AlphaBeta, Depth: 3, BranchingThreshold: meta.BRANCHING_THRESHOLD, Evaluation: "opponent-mobility"},
}

// RunDepthExperiment pairs searchers of increasing depth against the random
// baseline and against the shallowest searcher.
func RunDepthExperiment(ctx context.Context, numGames int, outDir string) (string, error) {
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{Baseline, config})
	}
	for _, config := range depthConfigs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{depthConfigs[0], config})
	}

	return Run(ctx, "depth", append(depthConfigs, Baseline), matchUps, numGames, outDir)
}

// RunEvaluationExperiment plays the two static evaluators against each
// other at the same depth.
func RunEvaluationExperiment(ctx context.Context, numGames int, outDir string) (string, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: AlphaBeta, Depth: 2, BranchingThreshold: meta.BRANCHING_THRESHOLD, Evaluation: "opponent-mobility"},
		{ID: 2, Kind: AlphaBeta, Depth: 2, BranchingThreshold: meta.BRANCHING_THRESHOLD, Evaluation: "mobility"},
	}
	matchUps := [][2]metrics.AgentConfig{
		{configs[0], configs[1]},
		{Baseline, configs[1]},
	}

	return Run(ctx, "evaluation", append(configs, Baseline), matchUps, numGames, outDir)
}
