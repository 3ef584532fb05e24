package searcher

import (
	"slices"
	"testing"

	"amazons/game"

	"github.com/stretchr/testify/require"
)

// Light wins by walking c5-c7 and sealing a10 with a spear on a9. Every
// other move lets Dark out. The winning move is the last one generated.
const forcedWinBoard = `
	B S S S S S S S S S
	- S S S S S S S S S
	S - S S S S S S S S
	S S - S S S S S S S
	S S - S S S S S S S
	S S W S S S S S S S
	S S S S S S S S S S
	S S S S S S S S S S
	S S S S S S S S S S
	S S S S S S S S S S
`

// As above with c4 open, so the winning move sits in the middle of the list.
const forcedWinWideBoard = `
	B S S S S S S S S S
	- S S S S S S S S S
	S - S S S S S S S S
	S S - S S S S S S S
	S S - S S S S S S S
	S S W S S S S S S S
	S S - S S S S S S S
	S S S S S S S S S S
	S S S S S S S S S S
	S S S S S S S S S S
`

// Dark's mirror image of forcedWinBoard.
const darkForcedWinBoard = `
	S S S S S S S S S S
	S S S S S S S S S S
	S S S S S S S S S S
	S S S S S S S S S S
	S S B S S S S S S S
	S S - S S S S S S S
	S S - S S S S S S S
	S - S S S S S S S S
	- S S S S S S S S S
	W S S S S S S S S S
`

func TestFindMove(t *testing.T) {
	t.Run("finds the forced win at full depth", func(t *testing.T) {
		b := game.MustParseBoard(forcedWinBoard, game.Light)
		ab := NewAlphaBeta()

		require.Equal(t, game.MustParseMove("c5-c7(a9)"), ab.FindMove(b))
	})

	t.Run("winning move is played and seals Dark", func(t *testing.T) {
		b := game.MustParseBoard(forcedWinBoard, game.Light)
		move := NewAlphaBeta().FindMove(b)

		require.NoError(t, b.Play(move))
		require.Equal(t, game.Light, b.Winner())
	})

	t.Run("finds the win for Dark", func(t *testing.T) {
		b := game.MustParseBoard(darkForcedWinBoard, game.Dark)
		move, metric := NewAlphaBeta().Search(b)

		require.Equal(t, game.MustParseMove("c6-c4(a2)"), move)
		require.Equal(t, -WinningValue, metric.Score)
	})

	t.Run("one ply is enough to see a win", func(t *testing.T) {
		b := game.MustParseBoard(forcedWinWideBoard, game.Light)
		ab := NewAlphaBeta(WithDepth(1))

		require.Equal(t, game.MustParseMove("c5-c7(a9)"), ab.FindMove(b))
	})

	t.Run("the board searched is left unchanged", func(t *testing.T) {
		b := game.NewBoard()
		b.ApplyMove(game.MustParseMove("d1-b1(d1)"))
		before := b.String()

		NewAlphaBeta().FindMove(b)
		require.Equal(t, before, b.String())
		require.Equal(t, 1, b.NumMoves())
		require.Equal(t, game.Dark, b.Turn())
	})

	t.Run("wide positions are scanned greedily", func(t *testing.T) {
		b := game.NewBoard()
		ab := NewAlphaBeta(WithMetrics())
		move, metric := ab.Search(b)

		require.True(t, b.IsLegal(move), "%s should be legal", move)
		require.Equal(t, 0, metric.Depth)
		require.Equal(t, DefaultBranchingThreshold+1, metric.Branching, "Counting stops past the threshold")
		require.Equal(t, 2176, metric.Leaves, "Every root move is evaluated once")
		require.Equal(t, 1, metric.Nodes)
	})

	t.Run("a raised threshold keeps the full depth", func(t *testing.T) {
		b := game.MustParseBoard(forcedWinWideBoard, game.Light)
		ab := NewAlphaBeta(WithBranchingThreshold(5), WithDepth(3), WithMetrics())
		_, metric := ab.Search(b)
		require.Equal(t, 0, metric.Depth, "11 moves exceed a threshold of 5")
		require.Equal(t, 6, metric.Branching)

		ab = NewAlphaBeta(WithBranchingThreshold(11), WithDepth(3), WithMetrics())
		move, metric := ab.Search(b)
		require.Equal(t, 3, metric.Depth)
		require.Equal(t, 11, metric.Branching)
		require.Equal(t, game.MustParseMove("c5-c7(a9)"), move)
	})

	t.Run("search metrics", func(t *testing.T) {
		b := game.MustParseBoard(forcedWinBoard, game.Light)
		_, metric := NewAlphaBeta(WithMetrics()).Search(b)

		require.Equal(t, DefaultDepth, metric.Depth)
		require.Equal(t, 6, metric.Branching)
		require.Equal(t, WinningValue, metric.Score)
		require.Greater(t, metric.Nodes, 6)
		require.Equal(t, 0, metric.Leaves, "Every line is decided within five plies")
	})

	t.Run("the evaluation function is used at the leaves", func(t *testing.T) {
		b := game.NewBoard()
		calls := 0
		prefer := game.MustParseMove("j4-j5(j4)")
		evaluate := func(b *game.Board, side game.Piece) int {
			calls++
			require.Equal(t, game.Light, side, "Leaves are scored for the side searching")
			if last, _ := b.LastMove(); last == prefer {
				return 1
			}
			return 0
		}

		move := NewAlphaBeta(WithEvaluationFn(evaluate)).FindMove(b)
		require.Equal(t, prefer, move)
		require.Equal(t, 2176, calls)
	})

	t.Run("later equal moves win in a deeper search", func(t *testing.T) {
		flat := func(*game.Board, game.Piece) int { return 0 }
		ab := NewAlphaBeta(WithEvaluationFn(flat), WithBranchingThreshold(100000), WithDepth(1))

		require.Equal(t, game.MustParseMove("j4-e9(a9)"), ab.FindMove(game.NewBoard()), "Maximiser keeps the last of equal moves")

		dark := game.MustParseBoard(game.NewBoard().String(), game.Dark)
		all := slices.Collect(dark.LegalMoves())
		require.Equal(t, all[len(all)-1], ab.FindMove(dark), "Minimiser keeps the last of equal moves")
	})

	t.Run("the greedy scan keeps the first of equal moves", func(t *testing.T) {
		flat := func(*game.Board, game.Piece) int { return 0 }
		ab := NewAlphaBeta(WithEvaluationFn(flat))

		require.Equal(t, game.MustParseMove("d1-d2(d3)"), ab.FindMove(game.NewBoard()))

		dark := game.MustParseBoard(game.NewBoard().String(), game.Dark)
		all := slices.Collect(dark.LegalMoves())
		require.Equal(t, all[0], ab.FindMove(dark))
	})

	t.Run("no legal moves", func(t *testing.T) {
		b := game.MustParseBoard(forcedWinBoard, game.Light)
		b.ApplyMove(game.MustParseMove("c5-c7(a9)"))

		require.Panics(t, func() { NewAlphaBeta().FindMove(b) })
	})
}

func TestMaxDepth(t *testing.T) {
	ab := NewAlphaBeta()
	require.Equal(t, DefaultDepth, ab.MaxDepth(1))
	require.Equal(t, DefaultDepth, ab.MaxDepth(DefaultBranchingThreshold))
	require.Equal(t, 0, ab.MaxDepth(DefaultBranchingThreshold+1))

	ab = NewAlphaBeta(WithDepth(2), WithDepth(-1))
	require.Equal(t, 2, ab.MaxDepth(1), "Negative depths are ignored")
}
