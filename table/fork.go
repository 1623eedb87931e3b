package table

import "fmt"

// Fork is a shared resource used by the two philosophers next to it.
//
// Fork does no locking of its own. Every Take and Release happens inside the
// table-wide exclusion region held by the calling Philosopher.
type Fork struct {
	id     int
	holder *Philosopher
}

// NewFork creates a free fork. id is only used in messages.
func NewFork(id int) *Fork {
	return &Fork{id: id}
}

// ID returns the (1-based) number of the fork.
func (f *Fork) ID() int { return f.id }

// Take marks the fork as held by p. The fork must be free.
func (f *Fork) Take(p *Philosopher) {
	f.holder = p
}

// Release marks the fork as free.
func (f *Fork) Release() {
	f.holder = nil
}

// IsHeld returns true if a philosopher is holding the fork.
func (f *Fork) IsHeld() bool {
	return f.holder != nil
}

// HeldBy returns the philosopher holding the fork, if any.
func (f *Fork) HeldBy() (*Philosopher, bool) {
	return f.holder, f.holder != nil
}

func (f *Fork) String() string {
	return fmt.Sprintf("Fork %d", f.id)
}
