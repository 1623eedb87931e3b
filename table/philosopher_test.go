package table

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptClock returns immediately and calls step with the 1-based number of
// the sleep and its length in simulated seconds.
type scriptClock struct {
	calls int
	unit  time.Duration
	step  func(call, secs int) error
}

func (c *scriptClock) Sleep(ctx context.Context, d time.Duration) error {
	c.calls++
	if c.step == nil {
		return nil
	}
	return c.step(c.calls, int(d/c.unit))
}

func scriptedTable(t *testing.T, conf Config, clock *scriptClock, events *[]Event) *Table {
	t.Helper()
	clock.unit = conf.TimeUnit
	opts := []Option{WithClock(clock)}
	if events != nil {
		opts = append(opts, WithObserver(func(e Event) { *events = append(*events, e) }))
	}
	tbl, err := New(conf, opts...)
	require.NoError(t, err)
	return tbl
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "THINKING", Thinking.String())
	assert.Equal(t, "HUNGRY", Hungry.String())
	assert.Equal(t, "EATING", Eating.String())
	assert.Equal(t, "UNKNOWN", State(42).String())
}

func TestRandomSecondsInRange(t *testing.T) {
	tbl, err := New(testConfig(3))
	require.NoError(t, err)
	p := tbl.Philosophers[0]
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		secs := p.randomSeconds(1, 3)
		require.GreaterOrEqual(t, secs, 1)
		require.LessOrEqual(t, secs, 3)
		seen[secs] = true
	}
	assert.Len(t, seen, 3)
}

// A philosopher eats priority-sized meals until it reaches the target.
func TestPhilosopherEatsUntilTarget(t *testing.T) {
	conf := testConfig(3)
	clock := &scriptClock{}
	var events []Event
	tbl := scriptedTable(t, conf, clock, &events)
	p := tbl.Philosophers[2] // priority 3

	require.NoError(t, p.Run(context.Background()))
	assert.True(t, p.Finished())
	assert.Equal(t, 21, p.EatenSeconds())
	assert.Equal(t, Thinking, p.State())
	assert.Zero(t, p.Attempts())
	assert.Equal(t, 0.0, p.FinalReport())
	// think, hungry and eat for each of the 7 meals.
	assert.Equal(t, 21, clock.calls)

	var states []State
	for _, e := range events {
		if e.Kind == StateChanged {
			states = append(states, e.State)
		}
	}
	require.Len(t, states, 7*3+1)
	assert.Equal(t, []State{Thinking, Hungry, Eating, Thinking}, states[:4])
	assert.Equal(t, Finished, events[len(events)-1].Kind)
}

// Retries after a blocked attempt count their hungry pause as waiting time.
func TestPhilosopherRetriesWhenBlocked(t *testing.T) {
	conf := testConfig(3)
	conf.EatTarget = 1
	conf.HungryMin, conf.HungryMax = 2, 2

	var tbl *Table
	clock := &scriptClock{}
	var events []Event
	tbl = scriptedTable(t, conf, clock, &events)
	p := tbl.Philosophers[0]
	blocker := tbl.Philosophers[2]
	require.Same(t, tbl.Forks[2], p.Left())
	p.Left().Take(blocker)

	// 1: think, 2: hungry (blocked), 3: hungry retry (blocked),
	// 4: hungry retry (free), 5: eat.
	clock.step = func(call, secs int) error {
		if call == 4 {
			p.Left().Release()
		}
		if call == 5 {
			assert.Equal(t, 1, secs, "meal lasts priority seconds")
		}
		return nil
	}

	require.NoError(t, p.Run(context.Background()))
	assert.Equal(t, 5, clock.calls)
	assert.Equal(t, 2, p.Attempts())
	assert.Equal(t, 4, p.WaitSeconds())
	assert.Equal(t, 2.0, p.FinalReport())
	assert.Equal(t, 1, p.EatenSeconds())

	var blocked []Event
	for _, e := range events {
		if e.Kind == Blocked {
			blocked = append(blocked, e)
		}
	}
	require.Len(t, blocked, 2)
	for _, e := range blocked {
		assert.Equal(t, 1, e.Philosopher)
		assert.Equal(t, 3, e.Fork)
		assert.Equal(t, 3, e.Holder)
	}
}

// The right fork is only reported when the left one is free.
func TestPhilosopherBlockedOnRight(t *testing.T) {
	conf := testConfig(3)
	conf.EatTarget = 1
	var tbl *Table
	clock := &scriptClock{}
	var events []Event
	tbl = scriptedTable(t, conf, clock, &events)
	p := tbl.Philosophers[0]
	p.Right().Take(tbl.Philosophers[1])
	clock.step = func(call, secs int) error {
		if call == 3 {
			p.Right().Release()
		}
		return nil
	}

	require.NoError(t, p.Run(context.Background()))
	assert.Equal(t, 1, p.Attempts())
	require.Equal(t, Blocked, events[2].Kind)
	assert.Equal(t, 1, events[2].Fork)
	assert.Equal(t, 2, events[2].Holder)
}

// An interrupted meal aborts the philosopher without leaving forks held and
// without counting the meal.
func TestPhilosopherAbortWhileEating(t *testing.T) {
	conf := testConfig(4)
	errStop := errors.New("stop")
	clock := &scriptClock{step: func(call, secs int) error {
		if call == 3 {
			return errStop
		}
		return nil
	}}
	var events []Event
	tbl := scriptedTable(t, conf, clock, &events)
	p := tbl.Philosophers[1]

	err := p.Run(context.Background())
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, err, p.Err())
	assert.False(t, p.Finished())
	assert.Zero(t, p.EatenSeconds())
	assert.False(t, p.Left().IsHeld())
	assert.False(t, p.Right().IsHeld())

	kinds := make([]EventKind, 0, len(events))
	for _, e := range events {
		if e.Kind != StateChanged {
			kinds = append(kinds, e.Kind)
		}
	}
	assert.Equal(t, []EventKind{Took, Released, Aborted}, kinds)
}

// An interrupted hungry pause stops the philosopher before it touches any
// fork.
func TestPhilosopherAbortWhileHungry(t *testing.T) {
	conf := testConfig(3)
	clock := &scriptClock{step: func(call, secs int) error {
		if call == 2 {
			return ErrInterrupted
		}
		return nil
	}}
	var events []Event
	tbl := scriptedTable(t, conf, clock, &events)
	p := tbl.Philosophers[0]

	assert.ErrorIs(t, p.Run(context.Background()), ErrInterrupted)
	assert.Equal(t, Hungry, p.State())
	for _, e := range events {
		assert.NotEqual(t, Took, e.Kind)
		assert.NotEqual(t, Released, e.Kind)
	}
}
