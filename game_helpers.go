package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-universe/model"
	"github.com/sheikhrachel/go-gol-universe/rules"
	"github.com/sheikhrachel/go-gol-universe/utils"
)

// initializeUniverse builds the seeded universe and the run statistics
func initializeUniverse(config utils.Config, out io.Writer) (*model.Universe, *utils.Stats, error) {
	u, err := model.NewUniverse(config.Rows, config.Cols, model.WithOutput(out))
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeUniverse] failed to create universe")
	}
	stats := utils.NewStats()
	stats.LiveCells = u.LiveCells()
	return u, stats, nil
}

// buildOperations maps the configured schedule onto rule passes
func buildOperations(config utils.Config) ([]rules.Operation, rules.Schedule, error) {
	mode := rules.Buffered
	if config.InPlace {
		mode = rules.InPlace
	}

	switch config.Schedule {
	case utils.ScheduleConcurrent:
		return rules.FourPass(mode), rules.Concurrent, nil
	case utils.ScheduleOrdered:
		return rules.FourPass(mode), rules.Ordered, nil
	case utils.ScheduleFused:
		return []rules.Operation{rules.Generation{Mode: mode}}, rules.Ordered, nil
	}
	return nil, 0, errors.Wrapf(utils.ErrUnknownSchedule, "[buildOperations] %q", config.Schedule)
}

// displayRunInfo shows the configuration and the initial grid
func displayRunInfo(out io.Writer, au aurora.Aurora, config utils.Config, u *model.Universe) {
	mode := rules.Buffered
	if config.InPlace {
		mode = rules.InPlace
	}
	fmt.Fprintf(out, "%s %dx%d | Schedule: %s | Passes: %s | Workers: %d | Live cells: %d\n",
		au.Cyan("Universe:"), u.Rows(), u.Cols(), config.Schedule, mode, config.Workers, u.LiveCells())
	_, _ = io.WriteString(out, u.Render())
}

// runGenerations applies the schedule once per generation until the
// configured count is reached, the context is cancelled, or the universe
// stagnates. It returns the number of generations completed.
func runGenerations(ctx context.Context, u *model.Universe, config utils.Config, stats *utils.Stats) (int, error) {
	ops, schedule, err := buildOperations(config)
	if err != nil {
		return 0, err
	}

	var history model.History
	history.Update(u.Hash())

	generation := 0
	for generation < config.Generations {
		// a generation always drains; cancellation is only honored between them
		if ctx.Err() != nil {
			break
		}

		start := time.Now()
		if err = rules.Dispatch(u, ops, config.Workers, schedule); err != nil {
			return generation, errors.Wrapf(err, "[runGenerations] generation %d", generation+1)
		}
		generation++

		livingCells := u.LiveCells()
		stats.Update(generation, len(ops), livingCells, time.Since(start))

		hash := u.Hash()
		if config.StopOnStagnation && (livingCells == 0 || history.IsStagnant(hash)) {
			break
		}
		history.Update(hash)
	}

	return generation, nil
}

// displaySummary shows the final statistics
func displaySummary(out io.Writer, au aurora.Aurora, stats *utils.Stats, requested int) {
	status := au.Green("Active")
	switch {
	case stats.LiveCells == 0:
		status = au.Red("Extinct")
	case stats.TotalGenerations < requested:
		status = au.Yellow("Stopped")
	}
	fmt.Fprintf(out, "\n%s %d generations | %d passes | Live: %d | Avg Pop: %.1f | Status: %s | Runtime: %s\n",
		au.Cyan("Finished:"), stats.TotalGenerations, stats.PassesApplied, stats.LiveCells,
		stats.AveragePopulation, status, stats.Runtime().Round(time.Microsecond))
}
