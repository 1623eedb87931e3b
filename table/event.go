package table

import "time"

// EventKind identifies what happened at the table.
type EventKind int

const (
	StateChanged EventKind = iota // Philosopher entered a new State.
	Blocked                       // Acquisition failed because Fork was held by Holder.
	Took                          // Philosopher took both of its forks.
	Released                      // Philosopher put both of its forks down.
	Finished                      // Philosopher reached the eat target.
	Aborted                       // Philosopher stopped after an interrupted sleep.
)

// Event is a single observable step of the simulation.
type Event struct {
	Kind        EventKind
	Philosopher int   // Priority of the philosopher.
	State       State // New state (StateChanged only).
	Forks       []int // Forks taken or released (Took, Released).
	Fork        int   // Fork that was held (Blocked only).
	Holder      int   // Priority of the holder (Blocked only).
	At          time.Time
}

// Observer receives every Event of a run. Calls are serialised, and Took and
// Released events are delivered from inside the exclusion region, so their
// order is the order the forks changed hands.
type Observer func(Event)
