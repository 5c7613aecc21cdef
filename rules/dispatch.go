package rules

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-universe/model"
)

// DefaultWorkers is the pool size used for the four rule passes
const DefaultWorkers = 4

// Schedule controls the relative order of passes submitted together
type Schedule int

const (
	// Concurrent lets the pool start passes in any order. Each pass is still
	// atomic, but the final grid depends on which pass took the guard first.
	Concurrent Schedule = iota
	// Ordered runs passes in submission order on the same pool.
	Ordered
)

var ErrInvalidWorkers = errors.New("worker count must be positive")

func (s Schedule) String() string {
	if s == Ordered {
		return "ordered"
	}
	return "concurrent"
}

// Dispatch runs every operation against u on a pool of at most workers
// goroutines and returns once all of them have finished.
func Dispatch(u *model.Universe, ops []Operation, workers int, schedule Schedule) error {
	if workers < 1 {
		return errors.Wrapf(ErrInvalidWorkers, "[Dispatch] workers=%d", workers)
	}

	var eg errgroup.Group
	eg.SetLimit(workers)

	// prev is closed once the previously submitted pass has finished
	prev := make(chan struct{})
	close(prev)

	for _, op := range ops {
		if schedule == Concurrent {
			eg.Go(func() error {
				op.Apply(u)
				return nil
			})
			continue
		}

		wait, done := prev, make(chan struct{})
		prev = done
		eg.Go(func() error {
			defer close(done)
			<-wait
			op.Apply(u)
			return nil
		})
	}

	return eg.Wait()
}
