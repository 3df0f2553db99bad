package game

import "errors"

const (
	DefaultColumns = 7
	DefaultRows    = 6
	ConnectLength  = 4
)

// Token identifies the owner of a cell.
type Token int8

const (
	Empty   Token = 0
	PlayerA Token = 1
	PlayerB Token = 2
)

func (t Token) String() string {
	switch t {
	case PlayerA:
		return "X"
	case PlayerB:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other player's token. Empty has no opponent.
func (t Token) Opponent() Token {
	switch t {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
)

type Position struct {
	Row int
	Col int
}

type MoveResult struct {
	Row    int
	Col    int
	Winner Token
	Draw   bool
	// Line holds the winning run through (Row, Col) when Winner is set.
	Line []Position
}

func (r MoveResult) HasWinner() bool {
	return r.Winner != Empty
}

// Board is a rows x cols grid. Row 0 is the top of the board, so a column
// is open while its row 0 cell is Empty.
type Board struct {
	rows     int
	cols     int
	cells    []Token
	lastMove *Position
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Token, rows*cols),
	}, nil
}

func NewStandardBoard() *Board {
	b, _ := NewBoard(DefaultRows, DefaultColumns)
	return b
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// Center is the preferred column for positional play.
func (b *Board) Center() int { return b.cols / 2 }

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the token at (row, col), or Empty outside the grid.
func (b *Board) At(row, col int) Token {
	if !b.inBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.cols+col]
}

func (b *Board) set(row, col int, t Token) {
	b.cells[row*b.cols+col] = t
}

// LastMove reports the most recently filled cell.
func (b *Board) LastMove() (Position, bool) {
	if b.lastMove == nil {
		return Position{}, false
	}
	return *b.lastMove, true
}

func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
	b.lastMove = nil
}

func (b *Board) canPlay(col int) bool {
	return b.cells[col] == Empty
}

func (b *Board) ValidMoves() []int {
	moves := make([]int, 0, b.cols)
	for col := 0; col < b.cols; col++ {
		if b.canPlay(col) {
			moves = append(moves, col)
		}
	}
	return moves
}

func (b *Board) IsFull() bool {
	for col := 0; col < b.cols; col++ {
		if b.canPlay(col) {
			return false
		}
	}
	return true
}

// Drop lets token fall into col. A column out of range and a full column
// both yield ErrInvalidMove and leave the board untouched.
func (b *Board) Drop(col int, token Token) (MoveResult, error) {
	if col < 0 || col >= b.cols || token == Empty {
		return MoveResult{}, ErrInvalidMove
	}
	for row := b.rows - 1; row >= 0; row-- {
		if b.At(row, col) == Empty {
			b.set(row, col, token)
			b.lastMove = &Position{Row: row, Col: col}
			return b.evaluate(row, col, token), nil
		}
	}
	return MoveResult{}, ErrInvalidMove
}

func (b *Board) evaluate(row, col int, token Token) MoveResult {
	res := MoveResult{Row: row, Col: col}
	if line := b.winningLine(row, col, token); line != nil {
		res.Winner = token
		res.Line = line
		return res
	}
	res.Draw = b.IsFull()
	return res
}

// directions are the four line orientations: horizontal, vertical,
// diagonal \ and diagonal /. Each is walked both ways.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// CheckWinner reports whether token has ConnectLength in a line through
// (row, col). Only lines through that cell are inspected.
func (b *Board) CheckWinner(row, col int, token Token) bool {
	return b.winningLine(row, col, token) != nil
}

func (b *Board) winningLine(row, col int, token Token) []Position {
	if token == Empty || b.At(row, col) != token {
		return nil
	}
	for _, d := range directions {
		forward := b.run(row, col, d[0], d[1], token)
		backward := b.run(row, col, -d[0], -d[1], token)
		if 1+len(forward)+len(backward) < ConnectLength {
			continue
		}
		line := make([]Position, 0, 1+len(forward)+len(backward))
		for i := len(backward) - 1; i >= 0; i-- {
			line = append(line, backward[i])
		}
		line = append(line, Position{Row: row, Col: col})
		return append(line, forward...)
	}
	return nil
}

// run collects the contiguous token cells stepping away from (row, col).
func (b *Board) run(row, col, dr, dc int, token Token) []Position {
	var cells []Position
	r, c := row+dr, col+dc
	for b.inBounds(r, c) && b.At(r, c) == token {
		cells = append(cells, Position{Row: r, Col: c})
		r += dr
		c += dc
	}
	return cells
}

// Clone returns an independent copy sharing no storage with b.
func (b *Board) Clone() *Board {
	dest := &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: make([]Token, len(b.cells)),
	}
	copy(dest.cells, b.cells)
	if b.lastMove != nil {
		last := *b.lastMove
		dest.lastMove = &last
	}
	return dest
}
