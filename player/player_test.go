package player

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"amazons/game"
	"amazons/searcher"

	"github.com/stretchr/testify/require"
)

func TestTextPlayer(t *testing.T) {
	t.Run("both move forms are accepted", func(t *testing.T) {
		var out bytes.Buffer
		p := NewText(strings.NewReader("d1-b1(d1)\nd1 b1 d1\n"), &out)
		b := game.NewBoard()

		m, _, err := p.FindMove(b)
		require.NoError(t, err)
		require.Equal(t, game.MustParseMove("d1-b1(d1)"), m)

		m, _, err = p.FindMove(b)
		require.NoError(t, err)
		require.Equal(t, game.MustParseMove("d1-b1(d1)"), m)
		require.Equal(t, "white> white> ", out.String())
	})

	t.Run("bad input is reported and read again", func(t *testing.T) {
		var out bytes.Buffer
		input := strings.Join([]string{
			"",
			"hello",
			"d1-d10(d9)", // Blocked by the Dark queen on d10
			"a7-a6(a7)",  // Not Light's queen
			"  g1-g2(g1)  ",
		}, "\n")
		p := NewText(strings.NewReader(input), &out)

		m, _, err := p.FindMove(game.NewBoard())
		require.NoError(t, err)
		require.Equal(t, game.MustParseMove("g1-g2(g1)"), m)
		require.Equal(t, 3, strings.Count(out.String(), "Invalid move. Please try again.\n"))
	})

	t.Run("dump prints the board", func(t *testing.T) {
		var out bytes.Buffer
		p := NewText(strings.NewReader("dump\nquit\n"), &out)
		b := game.NewBoard()

		_, _, err := p.FindMove(b)
		require.ErrorIs(t, err, ErrQuit)
		require.Contains(t, out.String(), b.String())
	})

	t.Run("end of input quits", func(t *testing.T) {
		p := NewText(strings.NewReader(""), &bytes.Buffer{})
		_, _, err := p.FindMove(game.NewBoard())
		require.True(t, errors.Is(err, ErrQuit))
	})
}

func TestRandomPlayer(t *testing.T) {
	t.Run("moves are legal and leave the board alone", func(t *testing.T) {
		p := NewRandom(1)
		b := game.NewBoard()
		for b.Winner() == game.Empty {
			before := b.String()
			m, metric, err := p.FindMove(b)
			require.NoError(t, err)
			require.Equal(t, before, b.String())
			require.Greater(t, metric.Branching, 0)
			require.NoError(t, b.Play(m))
		}
		require.LessOrEqual(t, b.NumMoves(), 92, "Each move places a spear on one of 92 free squares")
	})

	t.Run("same seed, same moves", func(t *testing.T) {
		p1, p2 := NewRandom(42), NewRandom(42)
		b := game.NewBoard()
		for i := 0; i < 10; i++ {
			m1, _, err := p1.FindMove(b)
			require.NoError(t, err)
			m2, _, err := p2.FindMove(b)
			require.NoError(t, err)
			require.Equal(t, m1, m2)
			b.ApplyMove(m1)
		}
	})

	t.Run("no legal moves", func(t *testing.T) {
		b := game.MustParseBoard(`
			B S S S S S S S S S
			S S S S S S S S S S
			S S S S S S S S S S
			S S S S S S S S S S
			S S S S S S S S S S
			S S S S S S S S S S
			S S S S S S S S S S
			S S S S S S S S S S
			S S S S S S S S - -
			S S S S S S S S - W
		`, game.Dark)
		_, _, err := NewRandom(1).FindMove(b)
		require.Error(t, err)
	})
}

func TestAIPlayer(t *testing.T) {
	b := game.NewBoard()
	p := NewAI(searcher.NewAlphaBeta(searcher.WithMetrics()))

	m, metric, err := p.FindMove(b)
	require.NoError(t, err)
	require.True(t, b.IsLegal(m))
	require.Equal(t, 0, metric.Depth)
	require.Equal(t, 2176, metric.Leaves)
}
