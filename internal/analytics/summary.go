package analytics

import (
	"log"
	"sync"
	"time"
)

// Summary aggregates finished games. It is safe for concurrent use.
type Summary struct {
	mu            sync.Mutex
	totalGames    int
	draws         int
	computerWins  int
	winsByToken   map[string]int
	gamesByMode   map[string]int
	gamesPerDay   map[string]int
	moveCounts    []float64
	gameDurations []float64
}

func NewSummary() *Summary {
	return &Summary{
		winsByToken: make(map[string]int),
		gamesByMode: make(map[string]int),
		gamesPerDay: make(map[string]int),
	}
}

// Record ingests one event. Events other than game_finished are ignored.
func (s *Summary) Record(e Event) {
	if e.Event != EventGameFinished {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalGames++
	if status, _ := e.Payload["status"].(string); status == "draw" {
		s.draws++
	}
	if winner, ok := e.Payload["winner"].(string); ok && winner != "" {
		s.winsByToken[winner]++
	}
	if computer, _ := e.Payload["computerWon"].(bool); computer {
		s.computerWins++
	}
	if mode, ok := e.Payload["mode"].(string); ok && mode != "" {
		s.gamesByMode[mode]++
	}
	if moves, ok := e.Payload["moves"].(float64); ok {
		s.moveCounts = append(s.moveCounts, moves)
	}
	if duration, ok := e.Payload["duration"].(float64); ok {
		s.gameDurations = append(s.gameDurations, duration)
	}
	if !e.Timestamp.IsZero() {
		s.gamesPerDay[e.Timestamp.Format("2006-01-02")]++
	}
}

type Snapshot struct {
	TotalGames      int
	Draws           int
	ComputerWins    int
	WinsByToken     map[string]int
	GamesByMode     map[string]int
	GamesPerDay     map[string]int
	AverageMoves    float64
	AverageDuration time.Duration
}

func (s *Summary) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		TotalGames:      s.totalGames,
		Draws:           s.draws,
		ComputerWins:    s.computerWins,
		WinsByToken:     copyCounts(s.winsByToken),
		GamesByMode:     copyCounts(s.gamesByMode),
		GamesPerDay:     copyCounts(s.gamesPerDay),
		AverageMoves:    average(s.moveCounts),
		AverageDuration: time.Duration(average(s.gameDurations) * float64(time.Second)),
	}
}

func (s *Summary) Print() {
	snap := s.Snapshot()
	log.Printf("=== ANALYTICS SUMMARY ===")
	log.Printf("Total Games: %d", snap.TotalGames)
	log.Printf("Draws: %d", snap.Draws)
	log.Printf("Computer Wins: %d", snap.ComputerWins)
	log.Printf("Wins By Token: %v", snap.WinsByToken)
	log.Printf("Games By Mode: %v", snap.GamesByMode)
	log.Printf("Games Per Day: %v", snap.GamesPerDay)
	log.Printf("Average Moves: %.1f", snap.AverageMoves)
	log.Printf("Average Game Duration: %s", snap.AverageDuration.Round(time.Millisecond))
	log.Printf("========================")
}

func average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
