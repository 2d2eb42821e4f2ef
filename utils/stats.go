package utils

import (
	"sync"
	"time"
)

// Stats aggregates results across simulation runs. Update is safe to
// call from multiple goroutines.
type Stats struct {
	mu                sync.Mutex
	boardsRun         int
	boardsSettled     int
	totalGenerations  int
	averagePopulation float64
	startTime         time.Time
}

func NewStats() *Stats {
	return &Stats{startTime: time.Now()}
}

// Update records one finished board run: how many generations the board
// was advanced, its final population, and whether it settled into a
// still life or short cycle along the way.
func (s *Stats) Update(generations, population int, settled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.boardsRun++
	if settled {
		s.boardsSettled++
	}
	s.totalGenerations += generations

	// Simple moving average for population
	if s.averagePopulation == 0 {
		s.averagePopulation = float64(population)
	} else {
		s.averagePopulation = (s.averagePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary is a point-in-time view of collected stats.
type Summary struct {
	BoardsRun            int
	BoardsSettled        int
	TotalGenerations     int
	AveragePopulation    float64
	GenerationsPerSecond float64
	Elapsed              time.Duration
}

// Summarize returns the stats collected so far.
func (s *Stats) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		elapsed = time.Since(s.startTime)
		summary = Summary{
			BoardsRun:         s.boardsRun,
			BoardsSettled:     s.boardsSettled,
			TotalGenerations:  s.totalGenerations,
			AveragePopulation: s.averagePopulation,
			Elapsed:           elapsed,
		}
	)
	if elapsed > 0 {
		summary.GenerationsPerSecond = float64(s.totalGenerations) / elapsed.Seconds()
	}
	return summary
}
