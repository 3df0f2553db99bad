package game

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

var (
	ErrGameFinished    = errors.New("game already finished")
	ErrNotComputerTurn = errors.New("not the computer's turn")
)

// Seat is one side of a match.
type Seat struct {
	Name     string
	Token    Token
	Computer bool
}

type MatchConfig struct {
	// Board defaults to a standard 6x7 board.
	Board *Board
	// A plays PlayerA and moves first, B plays PlayerB.
	A Seat
	B Seat
	// Bot is required when either seat is a computer.
	Bot      *Bot
	OnFinish func(*Match)
}

// Match drives one game from the first drop to a win or a draw. It is not
// safe for concurrent use.
type Match struct {
	ID        string
	Board     *Board
	Status    Status
	Winner    Token
	Turn      Token
	Moves     int
	StartedAt time.Time
	EndedAt   time.Time

	seats    map[Token]Seat
	bot      *Bot
	onFinish func(*Match)
}

func NewMatch(cfg MatchConfig) *Match {
	board := cfg.Board
	if board == nil {
		board = NewStandardBoard()
	}
	a, b := cfg.A, cfg.B
	a.Token, b.Token = PlayerA, PlayerB
	if a.Name == "" {
		a.Name = PlayerA.String()
	}
	if b.Name == "" {
		b.Name = PlayerB.String()
	}
	bot := cfg.Bot
	if bot == nil && (a.Computer || b.Computer) {
		bot = NewBot(nil)
	}
	return &Match{
		ID:        uuid.NewString(),
		Board:     board,
		Status:    StatusInProgress,
		Turn:      PlayerA,
		StartedAt: time.Now(),
		seats:     map[Token]Seat{PlayerA: a, PlayerB: b},
		bot:       bot,
		onFinish:  cfg.OnFinish,
	}
}

func (m *Match) Seat(t Token) Seat {
	return m.seats[t]
}

// Current returns the seat whose turn it is.
func (m *Match) Current() Seat {
	return m.seats[m.Turn]
}

func (m *Match) IsFinished() bool {
	return m.Status == StatusWon || m.Status == StatusDraw
}

// Play drops the current player's token into col.
func (m *Match) Play(col int) (MoveResult, error) {
	if m.IsFinished() {
		return MoveResult{}, ErrGameFinished
	}
	res, err := m.Board.Drop(col, m.Turn)
	if err != nil {
		return MoveResult{}, err
	}
	m.Moves++
	switch {
	case res.HasWinner():
		m.Status = StatusWon
		m.Winner = res.Winner
		m.finish()
	case res.Draw:
		m.Status = StatusDraw
		m.finish()
	default:
		m.Turn = m.Turn.Opponent()
	}
	return res, nil
}

// ComputerMove lets the bot pick and play a column for the current seat.
func (m *Match) ComputerMove() (MoveResult, Tier, error) {
	if m.IsFinished() {
		return MoveResult{}, 0, ErrGameFinished
	}
	if !m.Current().Computer || m.bot == nil {
		return MoveResult{}, 0, ErrNotComputerTurn
	}
	col, tier := m.bot.Choose(m.Board, m.Turn, m.Turn.Opponent())
	res, err := m.Play(col)
	return res, tier, err
}

func (m *Match) finish() {
	m.EndedAt = time.Now()
	if m.onFinish != nil {
		m.onFinish(m)
	}
}
