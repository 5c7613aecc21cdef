package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-universe/utils"
)

const defaultConfigFile = "config.json"

// flagOverrides holds command line values; zero values mean "not given"
type flagOverrides struct {
	configFile  string
	rows        int
	cols        int
	workers     int
	schedule    string
	generations int
	inPlace     bool
	color       bool
}

func parseFlags() flagOverrides {
	f := flagOverrides{configFile: defaultConfigFile}

	flaggy.SetName("go-gol-universe")
	flaggy.SetDescription("Runs the Game of Life rule passes against one shared, lock-guarded universe")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&f.configFile, "c", "config", "Path to a JSON config file")
	flaggy.Int(&f.rows, "r", "rows", "Rows in the universe")
	flaggy.Int(&f.cols, "k", "cols", "Columns in the universe")
	flaggy.Int(&f.workers, "w", "workers", "Worker pool size")
	flaggy.String(&f.schedule, "s", "schedule", "Pass schedule [concurrent|ordered|fused]")
	flaggy.Int(&f.generations, "g", "generations", "Number of generations to run")
	flaggy.Bool(&f.inPlace, "p", "in-place", "Update cells in place while a pass iterates")
	flaggy.Bool(&f.color, "", "color", "Colorize headings")
	flaggy.Parse()

	return f
}

// loadConfig reads the config file, falling back to defaults when it is
// missing, and applies the command line overrides on top.
func loadConfig(f flagOverrides) (utils.Config, error) {
	config, err := utils.LoadConfig(f.configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		config = utils.DefaultConfig()
	}

	if f.rows != 0 {
		config.Rows = f.rows
	}
	if f.cols != 0 {
		config.Cols = f.cols
	}
	if f.workers != 0 {
		config.Workers = f.workers
	}
	if f.schedule != "" {
		config.Schedule = f.schedule
	}
	if f.generations != 0 {
		config.Generations = f.generations
	}
	if f.inPlace {
		config.InPlace = true
	}
	if f.color {
		config.Color = true
	}

	return config, config.Validate()
}

func main() {
	config, err := loadConfig(parseFlags())
	if err != nil {
		fail(err)
	}

	au := aurora.NewAurora(config.Color)

	u, stats, err := initializeUniverse(config, os.Stdout)
	if err != nil {
		fail(err)
	}
	displayRunInfo(os.Stdout, au, config, u)

	// Handle Ctrl+C between generations
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err = runGenerations(ctx, u, config, stats); err != nil {
		stop()
		fail(err)
	}
	displaySummary(os.Stdout, au, stats, config.Generations)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
