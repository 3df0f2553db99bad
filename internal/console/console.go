package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"emittr/connect4/internal/game"

	"github.com/muesli/termenv"
)

// Console reads answers from a player and draws the board.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	term *termenv.Output
}

// New returns a Console on in/out. Colors are used only when color is set
// and out is a terminal that supports them.
func New(in io.Reader, out io.Writer, color bool) *Console {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Console{
		in:   bufio.NewReader(in),
		out:  out,
		term: termenv.NewOutput(out, opts...),
	}
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// PromptInt asks until the answer parses as an integer. It returns io.EOF
// once input is exhausted.
func (c *Console) PromptInt(prompt string) (int, error) {
	for {
		c.Printf("%s", prompt)
		line, err := c.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		text := strings.TrimSpace(line)
		if text == "" && errors.Is(err, io.EOF) {
			c.Println()
			return 0, io.EOF
		}
		n, convErr := strconv.Atoi(text)
		if convErr == nil {
			return n, nil
		}
		c.Println("Please enter a number.")
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
	}
}

// PromptChoice asks until the answer is one of choices.
func (c *Console) PromptChoice(prompt string, choices ...int) (int, error) {
	for {
		n, err := c.PromptInt(prompt)
		if err != nil {
			return 0, err
		}
		for _, choice := range choices {
			if n == choice {
				return n, nil
			}
		}
	}
}

// Render prints the grid with 1-indexed column numbers on top. Cells in
// highlight, typically a winning line, are emphasized.
func (c *Console) Render(b *game.Board, highlight []game.Position) {
	width := len(strconv.Itoa(b.Cols()))
	marked := make(map[game.Position]bool, len(highlight))
	for _, p := range highlight {
		marked[p] = true
	}
	last, hasLast := b.LastMove()

	var sb strings.Builder
	sb.WriteString("\n ")
	for col := 0; col < b.Cols(); col++ {
		fmt.Fprintf(&sb, " %*d", width, col+1)
	}
	sb.WriteString("\n")
	for row := 0; row < b.Rows(); row++ {
		sb.WriteString(" ")
		for col := 0; col < b.Cols(); col++ {
			pos := game.Position{Row: row, Col: col}
			sb.WriteString(" ")
			sb.WriteString(strings.Repeat(" ", width-1))
			sb.WriteString(c.cell(b.At(row, col), marked[pos], hasLast && last == pos))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	io.WriteString(c.out, sb.String())
}

func (c *Console) cell(t game.Token, winning, last bool) string {
	style := c.term.String(t.String())
	switch t {
	case game.PlayerA:
		style = style.Foreground(c.term.Color("1"))
	case game.PlayerB:
		style = style.Foreground(c.term.Color("3"))
	default:
		style = style.Faint()
	}
	if last {
		style = style.Bold()
	}
	if winning {
		style = style.Bold().Underline()
	}
	return style.String()
}
