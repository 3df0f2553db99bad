package console

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"emittr/connect4/internal/analytics"
	"emittr/connect4/internal/game"
)

type Mode int

const (
	HumanVsHuman    Mode = 1
	HumanVsComputer Mode = 2
)

func (m Mode) String() string {
	switch m {
	case HumanVsHuman:
		return "human_vs_human"
	case HumanVsComputer:
		return "human_vs_computer"
	default:
		return "unknown"
	}
}

type Config struct {
	Rows int
	Cols int
	// Bot picks the computer's columns; a time seeded bot is used if nil.
	Bot           *game.Bot
	Analytics     analytics.Publisher
	ComputerDelay time.Duration
}

// Runner plays one game on a Console: it asks for the mode, orders the
// turns and reports the outcome.
type Runner struct {
	console *Console
	cfg     Config
}

func NewRunner(c *Console, cfg Config) *Runner {
	if cfg.Rows == 0 {
		cfg.Rows = game.DefaultRows
	}
	if cfg.Cols == 0 {
		cfg.Cols = game.DefaultColumns
	}
	if cfg.Bot == nil {
		cfg.Bot = game.NewBot(nil)
	}
	if cfg.Analytics == nil {
		cfg.Analytics = analytics.Discard{}
	}
	return &Runner{console: c, cfg: cfg}
}

func (r *Runner) Run(ctx context.Context) error {
	board, err := game.NewBoard(r.cfg.Rows, r.cfg.Cols)
	if err != nil {
		return fmt.Errorf("new board %dx%d: %w", r.cfg.Rows, r.cfg.Cols, err)
	}

	r.console.Println("Connect 4 (terminal)")
	r.console.Printf("Drop tokens into columns 1-%d. First to connect %d wins.\n\n", board.Cols(), game.ConnectLength)

	choice, err := r.console.PromptChoice("Choose mode: 1 = Human vs Human, 2 = Human vs Computer: ", 1, 2)
	if err != nil {
		return err
	}
	mode := Mode(choice)
	a, b, err := r.seats(mode)
	if err != nil {
		return err
	}

	m := game.NewMatch(game.MatchConfig{
		Board: board,
		A:     a,
		B:     b,
		Bot:   r.cfg.Bot,
	})
	log.Printf("match %s started mode=%s board=%dx%d", m.ID, mode, board.Rows(), board.Cols())
	r.cfg.Analytics.Publish(ctx, analytics.EventGameStarted, map[string]any{
		"gameId":    m.ID,
		"mode":      mode.String(),
		"rows":      board.Rows(),
		"cols":      board.Cols(),
		"playerA":   a.Name,
		"playerB":   b.Name,
		"startedAt": m.StartedAt,
	})

	r.console.Render(board, nil)
	for !m.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := r.turn(ctx, m)
		if err != nil {
			return err
		}
		r.console.Render(board, res.Line)
	}
	r.publishFinished(ctx, m, mode)
	r.announce(m)
	return nil
}

// seats assigns tokens. X always moves first, so in a computer game the
// human takes X only when they choose to start.
func (r *Runner) seats(mode Mode) (game.Seat, game.Seat, error) {
	if mode == HumanVsHuman {
		return game.Seat{Name: "Player X"}, game.Seat{Name: "Player O"}, nil
	}
	first, err := r.console.PromptChoice("Who goes first? 1 = Human (X), 2 = Computer (O): ", 1, 2)
	if err != nil {
		return game.Seat{}, game.Seat{}, err
	}
	human := game.Seat{Name: "Human"}
	computer := game.Seat{Name: "Computer", Computer: true}
	if first == 1 {
		return human, computer, nil
	}
	return computer, human, nil
}

func (r *Runner) turn(ctx context.Context, m *game.Match) (game.MoveResult, error) {
	seat := m.Current()
	if seat.Computer {
		if d := r.cfg.ComputerDelay; d > 0 {
			select {
			case <-time.After(d):
			case <-ctx.Done():
				return game.MoveResult{}, ctx.Err()
			}
		}
		res, tier, err := m.ComputerMove()
		if err != nil {
			return game.MoveResult{}, err
		}
		r.console.Printf("Computer plays column %d\n", res.Col+1)
		r.publishMove(ctx, m, seat, res, tier)
		return res, nil
	}

	prompt := fmt.Sprintf("Player %s, choose a column (1-%d): ", seat.Token, m.Board.Cols())
	for {
		n, err := r.console.PromptInt(prompt)
		if err != nil {
			return game.MoveResult{}, err
		}
		res, err := m.Play(n - 1)
		if errors.Is(err, game.ErrInvalidMove) {
			r.console.Println("Invalid move. Try a non-full column in range.")
			continue
		}
		if err != nil {
			return game.MoveResult{}, err
		}
		r.publishMove(ctx, m, seat, res, 0)
		return res, nil
	}
}

func (r *Runner) announce(m *game.Match) {
	switch m.Status {
	case game.StatusWon:
		if m.Seat(m.Winner).Computer {
			r.console.Println("Computer wins.")
		} else {
			r.console.Printf("Player %s wins.\n", m.Winner)
		}
	case game.StatusDraw:
		r.console.Println("Draw.")
	}
}

func (r *Runner) publishMove(ctx context.Context, m *game.Match, seat game.Seat, res game.MoveResult, tier game.Tier) {
	payload := map[string]any{
		"gameId":   m.ID,
		"token":    seat.Token.String(),
		"player":   seat.Name,
		"computer": seat.Computer,
		"column":   res.Col,
		"row":      res.Row,
		"move":     m.Moves,
	}
	if seat.Computer {
		payload["tier"] = tier.String()
	}
	r.cfg.Analytics.Publish(ctx, analytics.EventMovePlayed, payload)
}

func (r *Runner) publishFinished(ctx context.Context, m *game.Match, mode Mode) {
	winner, winnerName := "", ""
	computerWon := false
	if m.Status == game.StatusWon {
		seat := m.Seat(m.Winner)
		winner, winnerName, computerWon = m.Winner.String(), seat.Name, seat.Computer
	}
	log.Printf("match %s finished status=%s winner=%q moves=%d", m.ID, m.Status, winnerName, m.Moves)
	r.cfg.Analytics.Publish(ctx, analytics.EventGameFinished, map[string]any{
		"gameId":      m.ID,
		"mode":        mode.String(),
		"status":      string(m.Status),
		"winner":      winner,
		"winnerName":  winnerName,
		"computerWon": computerWon,
		"moves":       m.Moves,
		"duration":    m.EndedAt.Sub(m.StartedAt).Seconds(),
		"startedAt":   m.StartedAt,
		"endedAt":     m.EndedAt,
	})
}
