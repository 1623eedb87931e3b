package table

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"
)

// Philosopher is a diner at the table.
//
// A Philosopher cycles through Thinking, Hungry and Eating until it has eaten
// for the eat target of its table. All fields except the two forks are owned
// by the goroutine running the philosopher and must only be read after Run
// has returned.
type Philosopher struct {
	priority int // Position at the table, also the length of a meal.
	left     *Fork
	right    *Fork
	table    *Table
	rng      *rand.Rand

	state          State
	secondsEating  int   // Total seconds spent eating.
	eatAttempts    int   // Failed attempts to take both forks.
	secondsWaiting int   // Seconds spent hungry after a failed attempt.
	finished       bool  // Reached the eat target.
	err            error // Reason for aborting, if any.
}

func newPhilosopher(priority int, left, right *Fork, t *Table, seed int64) *Philosopher {
	return &Philosopher{
		priority: priority,
		left:     left,
		right:    right,
		table:    t,
		rng:      rand.New(rand.NewSource(seed)),
		state:    Thinking,
	}
}

// Priority returns the (1-based) position of the philosopher.
func (p *Philosopher) Priority() int { return p.priority }

// Left returns the fork on the left of the philosopher.
func (p *Philosopher) Left() *Fork { return p.left }

// Right returns the fork on the right of the philosopher.
func (p *Philosopher) Right() *Fork { return p.right }

// State returns the current state of the philosopher.
func (p *Philosopher) State() State { return p.state }

// EatenSeconds returns the total time spent eating.
func (p *Philosopher) EatenSeconds() int { return p.secondsEating }

// Attempts returns the number of failed attempts to take both forks.
func (p *Philosopher) Attempts() int { return p.eatAttempts }

// WaitSeconds returns the time spent hungry after failed attempts.
func (p *Philosopher) WaitSeconds() int { return p.secondsWaiting }

// Finished returns true if the philosopher reached the eat target.
func (p *Philosopher) Finished() bool { return p.finished }

// Err returns the reason the philosopher stopped early, if any.
func (p *Philosopher) Err() error { return p.err }

func (p *Philosopher) String() string {
	return fmt.Sprintf("Philosopher %d", p.priority)
}

// Run executes the philosopher until it has eaten enough or one of its
// sleeps is interrupted.
func (p *Philosopher) Run(ctx context.Context) error {
	conf := p.table.conf
	for {
		p.setState(Thinking)
		if p.secondsEating >= conf.EatTarget {
			p.finish()
			return nil
		}
		if err := p.sleep(ctx, p.randomSeconds(conf.ThinkMin, conf.ThinkMax)); err != nil {
			return p.abort(err)
		}
		if err := p.dine(ctx); err != nil {
			return p.abort(err)
		}
	}
}

// dine keeps the philosopher hungry until it holds both forks, then eats.
func (p *Philosopher) dine(ctx context.Context) error {
	conf := p.table.conf
	for retry := false; ; retry = true {
		p.setState(Hungry)
		secs := p.randomSeconds(conf.HungryMin, conf.HungryMax)
		if err := p.sleep(ctx, secs); err != nil {
			return err
		}
		if retry {
			p.eatAttempts++
			p.secondsWaiting += secs
		}
		if p.takeForks() {
			break
		}
	}
	return p.eat(ctx)
}

// eat holds both forks for priority seconds. The forks are put down on every
// return path.
func (p *Philosopher) eat(ctx context.Context) error {
	defer p.putForks()
	if err := p.sleep(ctx, p.priority); err != nil {
		return err
	}
	p.secondsEating += p.priority
	return nil
}

// takeForks checks that both forks are free and takes them as one step of
// the table exclusion region. Returns false if either fork is held.
func (p *Philosopher) takeForks() bool {
	t := p.table
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, f := range []*Fork{p.left, p.right} {
		if holder, held := f.HeldBy(); held {
			t.logger.Println(color.RedString("%s failed to take %s because %s is eating.", p, f, holder))
			t.emit(Event{Kind: Blocked, Philosopher: p.priority, Fork: f.ID(), Holder: holder.priority})
			return false
		}
	}
	p.setState(Eating)
	p.left.Take(p)
	p.right.Take(p)
	t.emit(Event{Kind: Took, Philosopher: p.priority, Forks: []int{p.left.ID(), p.right.ID()}})
	return true
}

// putForks releases both forks inside the table exclusion region.
func (p *Philosopher) putForks() {
	t := p.table
	t.mu.Lock()
	defer t.mu.Unlock()

	p.left.Release()
	p.right.Release()
	t.emit(Event{Kind: Released, Philosopher: p.priority, Forks: []int{p.left.ID(), p.right.ID()}})
}

func (p *Philosopher) setState(s State) {
	p.state = s
	p.table.logger.Printf("%s is %s", p, colourState(s))
	p.table.emit(Event{Kind: StateChanged, Philosopher: p.priority, State: s})
}

func (p *Philosopher) finish() {
	p.finished = true
	p.table.logger.Println(color.GreenString("%s has finished!", p))
	p.table.emit(Event{Kind: Finished, Philosopher: p.priority})
}

func (p *Philosopher) abort(err error) error {
	p.err = fmt.Errorf("%s: %w", p, err)
	p.table.logger.Println(color.RedString("%s stopped: %v", p, err))
	p.table.emit(Event{Kind: Aborted, Philosopher: p.priority})
	return p.err
}

func (p *Philosopher) sleep(ctx context.Context, secs int) error {
	return p.table.clock.Sleep(ctx, time.Duration(secs)*p.table.conf.TimeUnit)
}

// randomSeconds returns a uniformly random number in [min,max].
func (p *Philosopher) randomSeconds(min, max int) int {
	return min + p.rng.Intn(max-min+1)
}

// FinalReport returns the average number of seconds spent waiting to eat per
// failed attempt, or 0 if the philosopher was never blocked.
func (p *Philosopher) FinalReport() float64 {
	return averageWait(p.secondsWaiting, p.eatAttempts)
}

func averageWait(waitSeconds, attempts int) float64 {
	if attempts <= 0 {
		return 0
	}
	return float64(waitSeconds) / float64(attempts)
}

func colourState(s State) string {
	switch s {
	case Thinking:
		return color.BlueString(s.String())
	case Hungry:
		return color.YellowString(s.String())
	case Eating:
		return color.GreenString(s.String())
	}
	return s.String()
}
