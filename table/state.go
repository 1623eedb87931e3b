package table

// State is the state of a Philosopher.
type State int

const (
	// Thinking philosophers will become hungry later.
	Thinking State = iota
	// Hungry philosophers eat once both of their forks are free.
	Hungry
	// Eating philosophers hold both of their forks.
	Eating
)

func (s State) String() string {
	switch s {
	case Thinking:
		return "THINKING"
	case Hungry:
		return "HUNGRY"
	case Eating:
		return "EATING"
	}
	return "UNKNOWN"
}
