package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/conway/model"
	"github.com/sheikhrachel/conway/pattern"
	"github.com/sheikhrachel/conway/utils"
)

// buildBoard sets up the initial board, either from a pattern file or by
// random seeding. A pattern larger than the configured grid grows the
// board to fit before it is applied.
func buildBoard(config utils.Config, rng *rand.Rand) (*model.Board, error) {
	if config.PatternFile == "" {
		board := model.NewBoard(config.Rows, config.Cols)
		board.InitializeRandom(rng, config.RandomDensity)
		return board, nil
	}

	spinner := wow.New(os.Stdout, spin.Get(spin.Dots), fmt.Sprintf(" Decoding pattern %s...", config.PatternFile))
	spinner.Start()
	pat, err := pattern.LoadFile(config.PatternFile)
	spinner.Stop()
	if err != nil {
		return nil, errors.Wrapf(err, "[buildBoard] failed to load pattern: %+v", config.PatternFile)
	}

	board := model.NewBoard(max(config.Rows, pat.Rows), max(config.Cols, pat.Cols))
	if err = pat.Apply(board); err != nil {
		return nil, errors.Wrap(err, "[buildBoard] failed to apply pattern")
	}
	return board, nil
}

// restartGame reseeds the board in place after extinction or stagnation
func restartGame(config utils.Config, rng *rand.Rand, board *model.Board) {
	board.Clear()

	if config.PatternFile != "" {
		if pat, err := pattern.LoadFile(config.PatternFile); err == nil {
			if applyErr := pat.Apply(board); applyErr == nil {
				fmt.Printf("✨ Pattern reloaded! Living cells: %d\n", board.AliveCount())
				return
			}
		}
	}

	seedInterestingPatterns(config, rng, board)
	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", board.AliveCount())
}

// seedInterestingPatterns drops a few well-known shapes on the board and
// tops it up with random life
func seedInterestingPatterns(config utils.Config, rng *rand.Rand, board *model.Board) {
	if board.Rows() >= 10 && board.Cols() >= 10 {
		board.AddGlider(5, 5)
		if board.Rows() >= 15 && board.Cols() >= 20 {
			board.AddGlider(5, board.Cols()-8)
		}

		board.AddOscillator(board.Rows()/4, board.Cols()/4)
		if board.Cols() >= 30 {
			board.AddOscillator(3*board.Rows()/4, 3*board.Cols()/4)
		}
	}

	for coord, alive := range board.Cells() {
		if !alive && rng.Float64() >= 1-config.RandomDensity {
			board.Set(coord.Row, coord.Col, true)
		}
	}
}

// hashHistory keeps a rolling window of board state digests so the run
// loop can spot static boards and short cycles. The board itself never
// stores past generations.
type hashHistory struct {
	hashes []string
}

// Update appends the current board digest and trims the window
func (h *hashHistory) Update(board *model.Board) {
	h.hashes = append(h.hashes, board.Hash())

	// Keep only last 5 states to detect cycles
	if len(h.hashes) > 5 {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant checks if the board is stuck in a static state or a short cycle
func (h *hashHistory) IsStagnant(board *model.Board) bool {
	if len(h.hashes) < 3 {
		return false
	}

	currentHash := board.Hash()
	for lookback := 1; lookback <= 3; lookback++ {
		if h.hashes[len(h.hashes)-lookback] == currentHash {
			return true
		}
	}
	return false
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board *model.Board) {
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		board.Rows(), board.Cols(), board.AliveCount())
	if config.PatternFile != "" {
		fmt.Printf("Seeded from pattern: %s\n", config.PatternFile)
	}
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(board *model.Board, history *hashHistory, generation int,
	lastFrameTime time.Time, stats *utils.Stats) (int, float64, string, bool) {

	livingCells := board.AliveCount()
	density := 0.0
	if board.Rows() > 0 && board.Cols() > 0 {
		density = float64(livingCells) / float64(board.Rows()*board.Cols()) * 100
	}

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, frameDuration)

	// Check for stagnation before recording the current state
	isStagnant := history.IsStagnant(board)
	history.Update(board)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(generation, livingCells int, density float64, status string,
	stats *utils.Stats, lastRestartGen int) {

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.AutoRestart && generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// runHeadless advances the board without rendering, showing generation
// progress and reporting the final population
func runHeadless(config utils.Config, board *model.Board) {
	total := config.MaxGenerations
	if total <= 0 {
		total = utils.DefaultConfig().MaxGenerations
	}

	start := time.Now()
	bar := pb.StartNew(total)

	generation := 0
	for ; generation < total; generation++ {
		if board.AliveCount() == 0 {
			break
		}
		board.Advance()
		bar.Increment()
	}
	bar.Finish()

	elapsed := time.Since(start).Seconds()
	fmt.Printf("Ran %d generations in %.2fs (%.1f gen/sec)\n",
		generation, elapsed, float64(generation)/max(elapsed, 1e-9))
	fmt.Printf("Final population: %d\n", board.AliveCount())
}
