package main

import (
	"fmt"
	"io"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// newEngine builds the engine described by config
func newEngine(config utils.Config) (*model.Engine, error) {
	var opts []model.Option
	if config.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewCellPool()))
	}
	return model.New(config.Width, config.Height, config.Density, opts...)
}

// gameStatus labels the current frame
func gameStatus(population, stagnantCount int) string {
	switch {
	case population == 0:
		return "Extinct"
	case stagnantCount > 0:
		return fmt.Sprintf("Stagnant (%d)", stagnantCount)
	default:
		return "Active"
	}
}

// displayGameStatus writes the status lines shown above the grid
func displayGameStatus(w io.Writer, engine *model.Engine, stats *utils.Stats, status string) {
	population := engine.Population()
	density := float64(population) / float64(engine.Width()*engine.Height()) * 100

	fmt.Fprintf(w, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		engine.Generation(), population, density, status)
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
}

const (
	reasonMaxGenerations = "maximum generations reached"
	reasonExtinction     = "extinction"
	reasonStagnation     = "stagnation detected"
)

// checkStopConditions reports whether the run has ended and why
func checkStopConditions(population, stagnantCount, generation int, config utils.Config) (bool, string) {
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, reasonMaxGenerations
	}
	if population == 0 {
		return true, reasonExtinction
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, reasonStagnation
	}
	return false, ""
}
