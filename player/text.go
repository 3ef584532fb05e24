package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"amazons/experiments/metrics"
	"amazons/game"
)

type textPlayer struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewText returns a player that reads moves such as "d1-b1(d1)" or
// "d1 b1 d1", one per line, from in. Prompts and errors are written to out.
// Besides moves it understands "dump", which prints the board, and "quit".
func NewText(in io.Reader, out io.Writer) Player {
	return &textPlayer{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *textPlayer) FindMove(b *game.Board) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	for {
		fmt.Fprintf(p.out, "%s> ", b.Turn())
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.NoMove, metrics.SearchMetric{}, ErrQuit
		}

		line := strings.TrimSpace(p.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit":
			return game.NoMove, metrics.SearchMetric{}, ErrQuit
		case "dump":
			fmt.Fprint(p.out, b.String())
			continue
		}

		m, err := game.ParseMove(line)
		if err != nil || !b.IsLegal(m) {
			fmt.Fprintln(p.out, "Invalid move. Please try again.")
			continue
		}
		return m, metrics.SearchMetric{Duration: time.Since(start)}, nil
	}
}
