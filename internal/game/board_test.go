package game

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// parseBoard builds a board from rows written top to bottom using X, O and '.'.
func parseBoard(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := NewBoard(len(rows), len(rows[0]))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	for r, line := range rows {
		if len(line) != b.Cols() {
			t.Fatalf("row %d has %d cells, want %d", r, len(line), b.Cols())
		}
		for c, ch := range line {
			switch ch {
			case 'X':
				b.set(r, c, PlayerA)
			case 'O':
				b.set(r, c, PlayerB)
			}
		}
	}
	return b
}

func mustDrop(t *testing.T, b *Board, col int, token Token) MoveResult {
	t.Helper()
	res, err := b.Drop(col, token)
	if err != nil {
		t.Fatalf("Drop(%d, %v): %v", col, token, err)
	}
	return res
}

func TestNewBoardDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 7}, {6, 0}, {-1, 7}, {6, -3}} {
		if _, err := NewBoard(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewBoard(%d, %d) err = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
	b := NewStandardBoard()
	if b.Rows() != 6 || b.Cols() != 7 {
		t.Fatalf("standard board is %dx%d", b.Rows(), b.Cols())
	}
	if b.Center() != 3 {
		t.Fatalf("center = %d, want 3", b.Center())
	}
	if _, ok := b.LastMove(); ok {
		t.Fatal("new board reports a last move")
	}
}

func TestDropGravity(t *testing.T) {
	b := NewStandardBoard()
	for i := 0; i < b.Rows(); i++ {
		token := PlayerA
		if i%2 == 1 {
			token = PlayerB
		}
		res := mustDrop(t, b, 2, token)
		wantRow := b.Rows() - 1 - i
		if res.Row != wantRow || res.Col != 2 {
			t.Fatalf("drop %d landed at (%d,%d), want (%d,2)", i, res.Row, res.Col, wantRow)
		}
		if got := b.At(wantRow, 2); got != token {
			t.Fatalf("cell (%d,2) = %v, want %v", wantRow, got, token)
		}
		if last, ok := b.LastMove(); !ok || last != (Position{Row: wantRow, Col: 2}) {
			t.Fatalf("last move = %v %v", last, ok)
		}
	}
	// The column must have no gaps: every row filled from the bottom up.
	for r := 0; r < b.Rows(); r++ {
		if b.At(r, 2) == Empty {
			t.Fatalf("gap at row %d", r)
		}
	}
}

func TestDropInvalidColumn(t *testing.T) {
	b := NewStandardBoard()
	for _, col := range []int{-1, 7, 8, 100, math.MinInt, math.MaxInt} {
		if _, err := b.Drop(col, PlayerA); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("Drop(%d) err = %v, want ErrInvalidMove", col, err)
		}
	}
	if _, err := b.Drop(3, Empty); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("Drop with Empty token err = %v, want ErrInvalidMove", err)
	}
	if !reflect.DeepEqual(b, NewStandardBoard()) {
		t.Fatal("invalid drops mutated the board")
	}
}

func TestDropFullColumn(t *testing.T) {
	b := NewStandardBoard()
	for i := 0; i < b.Rows(); i++ {
		mustDrop(t, b, 0, Token(1+i%2))
	}
	before := b.Clone()
	_, err := b.Drop(0, PlayerA)
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("Drop on full column err = %v, want ErrInvalidMove", err)
	}
	if !reflect.DeepEqual(b, before) {
		t.Fatal("drop on full column mutated the board")
	}
}

func TestValidMoves(t *testing.T) {
	b := NewStandardBoard()
	if got, want := b.ValidMoves(), []int{0, 1, 2, 3, 4, 5, 6}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ValidMoves() = %v, want %v", got, want)
	}
	for _, col := range []int{1, 5} {
		for i := 0; i < b.Rows(); i++ {
			mustDrop(t, b, col, Token(1+i%2))
		}
	}
	want := []int{0, 2, 3, 4, 6}
	for i := 0; i < 3; i++ {
		if got := b.ValidMoves(); !reflect.DeepEqual(got, want) {
			t.Fatalf("call %d: ValidMoves() = %v, want %v", i, got, want)
		}
	}
	if b.IsFull() {
		t.Fatal("IsFull() = true with open columns")
	}
}

func TestValidMovesFullBoard(t *testing.T) {
	b := parseBoard(t,
		"XO",
		"OX",
	)
	if got := b.ValidMoves(); len(got) != 0 {
		t.Fatalf("ValidMoves() = %v on a full board", got)
	}
	if !b.IsFull() {
		t.Fatal("IsFull() = false on a full board")
	}
}

func TestCheckWinner(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		row, col int
		token    Token
		want     bool
	}{
		{
			name: "horizontal",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"OOO....",
				"XXXX...",
			},
			row: 5, col: 3, token: PlayerA, want: true,
		},
		{
			name: "horizontal through middle",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"...OOO.",
				"..XXXX.",
			},
			row: 5, col: 3, token: PlayerA, want: true,
		},
		{
			name: "vertical",
			rows: []string{
				".......",
				".......",
				"..O....",
				"..O...X",
				"..O...X",
				"..O...X",
			},
			row: 2, col: 2, token: PlayerB, want: true,
		},
		{
			name: "diagonal down right",
			rows: []string{
				".......",
				".......",
				"X......",
				"OX.....",
				"OOX....",
				"OOOX...",
			},
			row: 5, col: 3, token: PlayerA, want: true,
		},
		{
			name: "diagonal down left",
			rows: []string{
				".......",
				".......",
				"...X...",
				"..XO...",
				".XOO...",
				"XOOO...",
			},
			row: 3, col: 2, token: PlayerA, want: true,
		},
		{
			name: "three is not enough",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"OOO....",
				"XXX.X..",
			},
			row: 5, col: 2, token: PlayerA, want: false,
		},
		{
			name: "five in a row",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"OOOO...",
				"XXXXX..",
			},
			row: 5, col: 4, token: PlayerA, want: true,
		},
		{
			name: "line not through cell",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"X......",
				"OOOOX..",
			},
			row: 4, col: 0, token: PlayerA, want: false,
		},
		{
			name: "wrong token",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"OOO....",
				"XXXX...",
			},
			row: 5, col: 3, token: PlayerB, want: false,
		},
		{
			name: "outside grid",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"OOO....",
				"XXXX...",
			},
			row: 6, col: 3, token: PlayerA, want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := parseBoard(t, tt.rows...)
			for i := 0; i < 2; i++ {
				if got := b.CheckWinner(tt.row, tt.col, tt.token); got != tt.want {
					t.Fatalf("call %d: CheckWinner(%d, %d, %v) = %v, want %v", i, tt.row, tt.col, tt.token, got, tt.want)
				}
			}
		})
	}
}

func TestDropReportsWinner(t *testing.T) {
	b := NewStandardBoard()
	for col := 0; col < 3; col++ {
		res := mustDrop(t, b, col, PlayerA)
		if res.HasWinner() || res.Draw {
			t.Fatalf("drop %d: premature result %+v", col, res)
		}
		mustDrop(t, b, col, PlayerB)
	}
	res := mustDrop(t, b, 3, PlayerA)
	if res.Winner != PlayerA {
		t.Fatalf("winner = %v, want X", res.Winner)
	}
	if res.Draw {
		t.Fatal("winning drop reported a draw")
	}
	wantLine := []Position{{5, 0}, {5, 1}, {5, 2}, {5, 3}}
	if !reflect.DeepEqual(res.Line, wantLine) {
		t.Fatalf("line = %v, want %v", res.Line, wantLine)
	}
}

func TestDraw(t *testing.T) {
	// Alternating play that fills the board without ever connecting four.
	sequence := []int{
		0, 2, 1, 6, 5, 3, 4, 4, 2, 0, 4, 1, 3, 3, 1, 4, 3, 2, 6, 5, 0,
		6, 6, 0, 0, 1, 5, 3, 2, 5, 4, 2, 5, 6, 2, 5, 1, 0, 6, 4, 3, 1,
	}
	b := NewStandardBoard()
	token := PlayerA
	for i, col := range sequence {
		res := mustDrop(t, b, col, token)
		if res.HasWinner() {
			t.Fatalf("move %d: unexpected winner %v", i, res.Winner)
		}
		last := i == len(sequence)-1
		if res.Draw != last {
			t.Fatalf("move %d: draw = %v, want %v", i, res.Draw, last)
		}
		token = token.Opponent()
	}
	if len(b.ValidMoves()) != 0 {
		t.Fatalf("board not full: %v", b.ValidMoves())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewStandardBoard()
	mustDrop(t, b, 3, PlayerA)
	mustDrop(t, b, 3, PlayerB)

	c := b.Clone()
	if !reflect.DeepEqual(b, c) {
		t.Fatal("clone differs from original")
	}
	if last, _ := c.LastMove(); last != (Position{Row: 4, Col: 3}) {
		t.Fatalf("clone last move = %v", last)
	}

	mustDrop(t, c, 0, PlayerA)
	if b.At(5, 0) != Empty {
		t.Fatal("mutating the clone changed the original")
	}
	if last, _ := b.LastMove(); last != (Position{Row: 4, Col: 3}) {
		t.Fatalf("original last move changed to %v", last)
	}

	mustDrop(t, b, 6, PlayerB)
	if c.At(5, 6) != Empty {
		t.Fatal("mutating the original changed the clone")
	}
}

func TestReset(t *testing.T) {
	b := NewStandardBoard()
	mustDrop(t, b, 1, PlayerA)
	mustDrop(t, b, 4, PlayerB)
	b.Reset()
	if !reflect.DeepEqual(b, NewStandardBoard()) {
		t.Fatal("reset board differs from a new board")
	}
}

func TestTokenOpponent(t *testing.T) {
	if PlayerA.Opponent() != PlayerB || PlayerB.Opponent() != PlayerA {
		t.Fatal("opponents are not swapped")
	}
	if Empty.Opponent() != Empty {
		t.Fatal("empty has an opponent")
	}
	if PlayerA.String() != "X" || PlayerB.String() != "O" || Empty.String() != "." {
		t.Fatal("unexpected token names")
	}
}
