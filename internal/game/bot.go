package game

import (
	"math"
	"math/rand"
	"time"
)

// jitterScale bounds the tie-break noise added to positional scores. It
// must stay below 1 so columns at different center distances never swap.
const jitterScale = 0.01

// Tier names the rule that produced a bot move.
type Tier int

const (
	TierWin Tier = iota + 1
	TierBlock
	TierPositional
)

func (t Tier) String() string {
	switch t {
	case TierWin:
		return "win"
	case TierBlock:
		return "block"
	case TierPositional:
		return "positional"
	default:
		return "unknown"
	}
}

// Bot tries to win, then block, then favors center columns. It only ever
// looks one ply ahead.
type Bot struct {
	rng *rand.Rand
}

// NewBot uses rng for tie-breaking. A nil rng gets a time seeded source.
func NewBot(rng *rand.Rand) *Bot {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Bot{rng: rng}
}

func (b *Bot) SelectMove(board *Board, self, opponent Token) int {
	col, _ := b.Choose(board, self, opponent)
	return col
}

// Choose returns the selected column and the tier that picked it. board
// is never modified. It panics when board has no valid moves.
func (b *Bot) Choose(board *Board, self, opponent Token) (int, Tier) {
	valid := board.ValidMoves()
	if len(valid) == 0 {
		panic("game: bot asked to move on a full board")
	}

	// 1. Take winning move if available.
	if col, ok := findImmediate(board, valid, self); ok {
		return col, TierWin
	}
	// 2. Block opponent winning move.
	if col, ok := findImmediate(board, valid, opponent); ok {
		return col, TierBlock
	}

	// 3. Prefer center columns. Exact ties go to the higher column.
	center := board.Center()
	best, bestScore := valid[0], math.Inf(-1)
	for _, col := range valid {
		score := -math.Abs(float64(col-center)) + b.rng.Float64()*jitterScale
		if score >= bestScore {
			best, bestScore = col, score
		}
	}
	return best, TierPositional
}

// findImmediate returns the lowest column in valid where token wins at once.
func findImmediate(board *Board, valid []int, token Token) (int, bool) {
	for _, col := range valid {
		tmp := board.Clone()
		if res, err := tmp.Drop(col, token); err == nil && res.Winner == token {
			return col, true
		}
	}
	return -1, false
}
