package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetra/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	cols := flag.Int("cols", tetris.DefaultCols, "Board column count.")
	rows := flag.Int("rows", tetris.DefaultRows, "Board row count.")
	dropsPerBoard := flag.Int("drops", 40, "Hard drops attempted per board before starting a fresh one.")
	exact := flag.Bool("exact", false, "Use exact column height accounting instead of the approximate summary.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	mode := tetris.HeightApprox
	if *exact {
		mode = tetris.HeightExact
	}

	log.Println("Starting drop stress test...")

	report := &Report{
		Duration:       *duration,
		Cols:           *cols,
		Rows:           *rows,
		DropsPerBoard:  *dropsPerBoard,
		Mode:           mode,
		GCPauseMetrics: *gcPauseMetrics,
		BoardTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			boardStart := time.Now()
			placed := fillBoard(rng, *cols, *rows, *dropsPerBoard, mode)
			boardDuration := time.Since(boardStart)

			report.BoardTime.Samples = append(report.BoardTime.Samples, boardDuration)
			report.TotalBoards++
			report.TotalDrops += int64(*dropsPerBoard)
			report.TotalPlaced += int64(placed)
		}
	}

	report.TotalTime = time.Since(startTime)
	report.BoardTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// fillBoard hard-drops randomly rotated random pieces at random columns
// and reports how many cells ended up occupied. Some drops no-op
// against overlaps; that is part of the workload being measured.
func fillBoard(rng *rand.Rand, cols, rows, drops int, mode tetris.HeightMode) int {
	board := tetris.NewBoard(cols, rows, mode)

	for i := 0; i < drops; i++ {
		kind := tetris.Kinds[rng.Intn(tetris.KindCount)]
		piece := tetris.NewPiece(kind, tetris.Cell{Row: 0, Col: rng.Intn(cols) - 1})
		for r := rng.Intn(tetris.RotationCount); r > 0; r-- {
			piece.RotateClockwise()
		}
		board.Drop(piece)
	}

	return board.CollectStats().OccupiedCells
}
