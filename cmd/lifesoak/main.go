// Command lifesoak advances many independently seeded random boards
// concurrently and checks the structural board invariants after every
// generation. Each board is owned and advanced by exactly one goroutine;
// only the run statistics are shared.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vortexofdoom/go-life/life"
	"github.com/vortexofdoom/go-life/utils"
)

type options struct {
	boards int
	gens   int
	rows   int
	cols   int
	seed   int64
}

func main() {
	boards := flag.Int("boards", 64, "number of random boards to run")
	gens := flag.Int("gens", 256, "generations to advance each board")
	rows := flag.Int("rows", 32, "board rows")
	cols := flag.Int("cols", 32, "board columns")
	seed := flag.Int64("seed", 0, "base seed for board population (0 = derive from time)")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent workers")
	flag.Parse()

	if *boards < 1 || *gens < 1 || *workers < 1 {
		log.Fatalf("boards, gens and workers must all be positive")
	}
	if *rows < 1 || *cols < 1 {
		log.Fatalf("board dimensions must be positive, got %dx%d", *rows, *cols)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	opts := options{
		boards: *boards,
		gens:   *gens,
		rows:   *rows,
		cols:   *cols,
		seed:   *seed,
	}

	fmt.Printf("lifesoak: %d boards of %dx%d, %d generations each (seed %d)\n",
		opts.boards, opts.rows, opts.cols, opts.gens, opts.seed)

	stats := utils.NewStats()
	if err := soak(opts, *workers, stats); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	printSummary(opts, stats.Summarize())
}

// soak splits the boards across the workers and waits for every run to
// finish. The first invariant violation is returned.
func soak(opts options, workers int, stats *utils.Stats) error {
	var (
		eg              errgroup.Group
		boardsPerWorker = (opts.boards + workers - 1) / workers // Ceiling division
	)

	for i := 0; i < workers; i++ {
		var (
			start = i * boardsPerWorker
			end   = min(start+boardsPerWorker, opts.boards)
		)
		if start >= opts.boards {
			break
		}

		eg.Go(func() error {
			for n := start; n < end; n++ {
				if err := soakBoard(opts, int64(n), stats); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return eg.Wait()
}

// soakBoard runs one seeded random board for the configured number of
// generations, checking after every advance that dimensions are
// preserved, the population stays possible, and an all-dead control
// board of the same size never wakes up. It also tracks whether the
// board settled into a still life or short cycle along the way.
func soakBoard(opts options, n int64, stats *utils.Stats) error {
	var (
		board    = life.RandomFrom(opts.rows, opts.cols, life.NewSource(opts.seed+n))
		control  = life.Dead(opts.rows, opts.cols)
		detector = life.NewStagnationDetector()
		settled  = false
	)
	detector.Observe(board)

	for gen := 0; gen < opts.gens; gen++ {
		board.Advance()
		control.Advance()
		if !settled && detector.Observe(board) {
			settled = true
		}

		if board.Rows() != opts.rows || board.Cols() != opts.cols {
			return errors.Errorf("[soakBoard] board %d: dimensions changed to %dx%d after generation %d",
				n, board.Rows(), board.Cols(), gen+1)
		}
		if pop := board.Population(); pop > opts.rows*opts.cols {
			return errors.Errorf("[soakBoard] board %d: impossible population %d after generation %d",
				n, pop, gen+1)
		}
		if pop := control.Population(); pop != 0 {
			return errors.Errorf("[soakBoard] board %d: all-dead control woke up with %d live cells after generation %d",
				n, pop, gen+1)
		}
	}

	stats.Update(opts.gens, board.Population(), settled)
	return nil
}

func printSummary(opts options, s utils.Summary) {
	density := s.AveragePopulation / float64(opts.rows*opts.cols) * 100

	fmt.Printf("Boards:         %d (%d settled into a still life or cycle)\n", s.BoardsRun, s.BoardsSettled)
	fmt.Printf("Generations:    %d (%.0f gen/sec)\n", s.TotalGenerations, s.GenerationsPerSecond)
	fmt.Printf("Avg population: %.1f cells (%.1f%% of board)\n", s.AveragePopulation, density)
	fmt.Printf("Elapsed:        %.2fs\n", s.Elapsed.Seconds())
	fmt.Println("All invariants held")
}
