// Package table runs a dining philosophers simulation.
//
// Philosophers sit in a ring with one fork between every two neighbours. A
// philosopher needs both of its forks to eat. Forks are taken and put down
// inside a single table-wide exclusion region: checking that both forks are
// free and taking them is one indivisible step, so no fork is ever held by two
// philosophers. There is no ordering or waiter token, so a hungry philosopher
// simply retries after a pause and may starve.
package table // import "github.com/nickng/dinephil/table"

import (
	"context"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Table is the coordinator of a simulation.
type Table struct {
	Forks        []*Fork        // Forks in ring order.
	Philosophers []*Philosopher // Philosophers in ring order.
	Time         time.Duration  // Wall-clock duration of Run.

	conf     Config
	mu       sync.Mutex // Exclusion region for all fork state.
	obsMu    sync.Mutex
	observer Observer
	clock    Clock
	logger   *log.Logger
	ran      atomic.Bool
}

// An Option configures a Table.
type Option func(*Table)

// WithClock replaces the wall clock used for every sleep.
func WithClock(c Clock) Option {
	return func(t *Table) { t.clock = c }
}

// WithLogger sets the logger for state changes and diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(t *Table) { t.logger = l }
}

// WithObserver registers an Observer for every Event of the run.
func WithObserver(o Observer) Option {
	return func(t *Table) { t.observer = o }
}

// New creates a table laid out for conf.
func New(conf Config, opts ...Option) (*Table, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	t := &Table{
		conf:   conf,
		clock:  WallClock{},
		logger: log.New(io.Discard, "table: ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(t)
	}
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	t.buildRing(seed)
	return t, nil
}

// Config returns the configuration of the table.
func (t *Table) Config() Config { return t.conf }

// RingIndex returns the indices of the left and right forks of the i-th
// (0-based) philosopher at a table of n.
func RingIndex(i, n int) (left, right int) {
	return (i - 1 + n) % n, i
}

// buildRing creates the forks and seats a philosopher between every two.
func (t *Table) buildRing(seed int64) {
	n := t.conf.Philosophers

	t.logger.Println("Initializing Forks")
	t.Forks = make([]*Fork, n)
	for i := range t.Forks {
		t.Forks[i] = NewFork(i + 1)
	}

	t.logger.Println("Initializing Philosophers")
	t.Philosophers = make([]*Philosopher, n)
	for i := range t.Philosophers {
		left, right := RingIndex(i, n)
		t.Philosophers[i] = newPhilosopher(i+1, t.Forks[left], t.Forks[right], t, seed+int64(i))
	}
}

// Run starts every philosopher in its own goroutine and blocks until all of
// them have returned. The first philosopher error, if any, is returned.
//
// A Table can only be run once.
func (t *Table) Run(ctx context.Context) error {
	if !t.ran.CompareAndSwap(false, true) {
		return ErrAlreadyRun
	}

	startTime := time.Now()
	var done errgroup.Group
	for _, p := range t.Philosophers {
		p := p
		done.Go(func() error { return p.Run(ctx) })
	}
	err := done.Wait()
	t.Time = time.Since(startTime)
	t.logger.Println("Simulation finished in", t.Time)
	return err
}

// Report aggregates the final report of every philosopher. It must only be
// called after Run has returned.
func (t *Table) Report() *Report {
	reports := make([]PhilosopherReport, len(t.Philosophers))
	for i, p := range t.Philosophers {
		reports[i] = PhilosopherReport{
			Priority:     p.priority,
			EatenSeconds: p.secondsEating,
			Attempts:     p.eatAttempts,
			WaitSeconds:  p.secondsWaiting,
			AverageWait:  p.FinalReport(),
			Finished:     p.finished,
		}
	}
	return Aggregate(reports)
}

func (t *Table) emit(e Event) {
	if t.observer == nil {
		return
	}
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	e.At = time.Now()
	t.observer(e)
}
