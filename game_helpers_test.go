package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-universe/model"
	"github.com/sheikhrachel/go-gol-universe/rules"
	"github.com/sheikhrachel/go-gol-universe/utils"
)

func TestBuildOperations(t *testing.T) {
	tests := []struct {
		schedule     string
		inPlace      bool
		wantOps      int
		wantSchedule rules.Schedule
		wantMode     rules.Mode
	}{
		{utils.ScheduleConcurrent, false, 4, rules.Concurrent, rules.Buffered},
		{utils.ScheduleOrdered, true, 4, rules.Ordered, rules.InPlace},
		{utils.ScheduleFused, false, 1, rules.Ordered, rules.Buffered},
	}

	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			config := utils.DefaultConfig()
			config.Schedule = tt.schedule
			config.InPlace = tt.inPlace

			ops, schedule, err := buildOperations(config)
			if err != nil {
				t.Fatal(err)
			}
			if len(ops) != tt.wantOps || schedule != tt.wantSchedule {
				t.Errorf("got %d ops %s, want %d ops %s", len(ops), schedule, tt.wantOps, tt.wantSchedule)
			}
			if tt.wantOps == 4 && ops[1] != rules.Operation(rules.NextGeneration{Mode: tt.wantMode}) {
				t.Errorf("ops[1] = %#v, want NextGeneration in %s mode", ops[1], tt.wantMode)
			}
		})
	}

	config := utils.DefaultConfig()
	config.Schedule = "random"
	if _, _, err := buildOperations(config); !errors.Is(err, utils.ErrUnknownSchedule) {
		t.Errorf("err = %v, want ErrUnknownSchedule", err)
	}
}

func TestInitializeUniverse_TooSmall(t *testing.T) {
	config := utils.DefaultConfig()
	config.Rows = 3
	if _, _, err := initializeUniverse(config, io.Discard); !errors.Is(err, model.ErrDimensionTooSmall) {
		t.Errorf("err = %v, want ErrDimensionTooSmall", err)
	}
}

func TestRunGenerations_OrderedPrintsFourPasses(t *testing.T) {
	var out bytes.Buffer
	config := utils.DefaultConfig()

	u, stats, err := initializeUniverse(config, &out)
	if err != nil {
		t.Fatal(err)
	}
	displayRunInfo(&out, aurora.NewAurora(false), config, u)

	n, err := runGenerations(context.Background(), u, config, stats)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || stats.PassesApplied != 4 {
		t.Errorf("generations = %d, passes = %d; want 1 and 4", n, stats.PassesApplied)
	}

	text := out.String()
	header, body, ok := strings.Cut(text, "\n")
	if !ok || !strings.Contains(header, "5x5") {
		t.Fatalf("unexpected header %q", header)
	}
	snaps, err := model.ParseSnapshots("\n" + body)
	if err != nil {
		t.Fatal(err)
	}
	wantTitles := []string{"", "UnderPopulation", "NextGeneration", "Overcrowd", "Reproduction"}
	if len(snaps) != len(wantTitles) {
		t.Fatalf("got %d snapshots, want %d", len(snaps), len(wantTitles))
	}
	for i, s := range snaps {
		if s.Title != wantTitles[i] {
			t.Errorf("snapshot %d = %q, want %q", i, s.Title, wantTitles[i])
		}
	}
	if !snaps[len(snaps)-1].Grid.Equal(u.Snapshot()) {
		t.Error("last snapshot does not match the universe")
	}
}

func TestRunGenerations_StopsOnStagnation(t *testing.T) {
	config := utils.DefaultConfig()
	config.Schedule = utils.ScheduleFused
	config.Generations = 50

	u, stats, err := initializeUniverse(config, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	// the glider settles into a block against the bottom-right edge
	n, err := runGenerations(context.Background(), u, config, stats)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 || stats.LiveCells != 4 {
		t.Errorf("stopped after %d generations with %d live cells, want 4 and 4", n, stats.LiveCells)
	}

	var out bytes.Buffer
	displaySummary(&out, aurora.NewAurora(false), stats, config.Generations)
	if !strings.Contains(out.String(), "Status: Stopped") {
		t.Errorf("summary = %q", out.String())
	}
}

func TestRunGenerations_CancelledBeforeStart(t *testing.T) {
	config := utils.DefaultConfig()
	config.Generations = 10

	u, stats, err := initializeUniverse(config, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	before := u.Snapshot()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := runGenerations(ctx, u, config, stats)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 || !u.Snapshot().Equal(before) {
		t.Errorf("ran %d generations after cancellation", n)
	}
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	config, err := loadConfig(flagOverrides{
		configFile: "does-not-exist.json",
		rows:       9,
		schedule:   utils.ScheduleFused,
		inPlace:    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if config.Rows != 9 || config.Cols != 5 || config.Schedule != utils.ScheduleFused || !config.InPlace {
		t.Errorf("unexpected config %+v", config)
	}

	if _, err = loadConfig(flagOverrides{configFile: "does-not-exist.json", workers: -1}); !errors.Is(err, utils.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
