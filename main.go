package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/conway/model"
	"github.com/sheikhrachel/conway/utils"
)

func main() {
	config, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}

	rng := rand.New(rand.NewSource(seedValue(config.Seed)))

	board, err := buildBoard(config, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}

	if config.Headless {
		runHeadless(config, board)
		return
	}

	renderer := &model.TerminalRenderer{Out: os.Stdout}
	stats := utils.NewStats()
	displayGameInfo(config, board)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Main game loop
	var (
		history        hashHistory
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		// Update game state
		livingCells, density, status, isStagnant := updateGameState(board, &history, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		// Update stagnation counter
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		// Display current status
		displayGameStatus(generation, livingCells, density, status, stats, lastRestartGen)
		renderer.Display(board)

		// Check for max generations limit
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		// Check restart conditions
		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)

		if shouldRestart && !config.AutoRestart && livingCells == 0 {
			fmt.Println("\n💀 Population extinct")
			break
		}
		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)
			restartGame(config, rng, board)
			history = hashHistory{}
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			board.InjectRandomLife(rng, config.InjectionCount)
		}

		// Calculate next generation
		board.Advance()
		generation++

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
}

// parseFlags processes command-line arguments on top of an optional JSON
// config file: flags that were set explicitly win over file values.
func parseFlags(args []string, output io.Writer) (utils.Config, error) {
	defaults := utils.DefaultConfig()

	flagSet := flag.NewFlagSet("conway", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
conway - An implementation of Conway's Game of Life.

Usage:
  conway [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	var (
		configPath  = flagSet.String("config", "", "Path to a JSON config file.")
		rows        = flagSet.Int("rows", defaults.Rows, "Number of rows in the grid.")
		cols        = flagSet.Int("cols", defaults.Cols, "Number of columns in the grid.")
		density     = flagSet.Float64("density", defaults.RandomDensity, "Probability that a cell starts alive, in [0,1).")
		rate        = flagSet.Duration("rate", defaults.FrameRate, "Delay between refresh cycles.")
		patternFile = flagSet.String("pattern", "", "Pattern file to seed the board (.json or RLE text).")
		maxGen      = flagSet.Int("max-generations", defaults.MaxGenerations, "Stop after this many generations. 0 runs forever.")
		autoRestart = flagSet.Bool("auto-restart", defaults.AutoRestart, "Reseed the board on extinction or stagnation.")
		headless    = flagSet.Bool("headless", defaults.Headless, "Run without rendering and report the final population.")
		seed        = flagSet.Int64("seed", defaults.Seed, "Random seed. 0 derives one from the clock.")
	)

	if err := flagSet.Parse(args); err != nil {
		return defaults, err
	}

	config := defaults
	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			config.Rows = *rows
		case "cols":
			config.Cols = *cols
		case "density":
			config.RandomDensity = *density
		case "rate":
			config.FrameRate = *rate
		case "pattern":
			config.PatternFile = *patternFile
		case "max-generations":
			config.MaxGenerations = *maxGen
		case "auto-restart":
			config.AutoRestart = *autoRestart
		case "headless":
			config.Headless = *headless
		case "seed":
			config.Seed = *seed
		}
	})

	if config.RandomDensity < 0 || config.RandomDensity >= 1 {
		return config, errors.Errorf("[parseFlags] density %v not within [0,1)", config.RandomDensity)
	}
	if config.Rows < 0 || config.Cols < 0 {
		return config, errors.Errorf("[parseFlags] grid dimensions %dx%d must not be negative", config.Rows, config.Cols)
	}

	return config, nil
}

// seedValue derives a clock seed when none was configured
func seedValue(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
