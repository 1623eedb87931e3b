package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MinPhilosophers = 3  // Smallest table.
	MaxPhilosophers = 10 // Largest table.
)

// Config holds the parameters of a simulation.
//
// All durations are counted in whole "seconds" of simulated time; TimeUnit is
// the wall-clock length of one simulated second.
type Config struct {
	Philosophers int           `mapstructure:"philosophers"` // Number of philosophers (and forks)
	TimeUnit     time.Duration `mapstructure:"time-unit"`    // Length of one simulated second
	EatTarget    int           `mapstructure:"eat-target"`   // Seconds of eating before a philosopher is done
	ThinkMin     int           `mapstructure:"think-min"`    // Shortest thinking period
	ThinkMax     int           `mapstructure:"think-max"`    // Longest thinking period
	HungryMin    int           `mapstructure:"hungry-min"`   // Shortest pause before reaching for forks
	HungryMax    int           `mapstructure:"hungry-max"`   // Longest pause before reaching for forks
	Seed         int64         `mapstructure:"seed"`         // Random seed, 0 picks one from the clock
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Philosophers: 5,
		TimeUnit:     time.Second,
		EatTarget:    20,
		ThinkMin:     1,
		ThinkMax:     10,
		HungryMin:    1,
		HungryMax:    3,
	}
}

// Validate checks that c describes a table that can be run.
func (c Config) Validate() error {
	if err := ValidateCount(c.Philosophers); err != nil {
		return err
	}
	if c.TimeUnit < 0 {
		return ErrBadTimeUnit
	}
	if c.EatTarget <= 0 {
		return ErrBadEatTarget
	}
	if c.ThinkMin < 0 || c.ThinkMin > c.ThinkMax {
		return fmt.Errorf("think [%d,%d]: %w", c.ThinkMin, c.ThinkMax, ErrBadRange)
	}
	if c.HungryMin < 0 || c.HungryMin > c.HungryMax {
		return fmt.Errorf("hungry [%d,%d]: %w", c.HungryMin, c.HungryMax, ErrBadRange)
	}
	return nil
}

// ValidateCount returns ErrOutOfRange if n is not a valid number of
// philosophers.
func ValidateCount(n int) error {
	if n < MinPhilosophers || n > MaxPhilosophers {
		return fmt.Errorf("%d not in [%d,%d]: %w", n, MinPhilosophers, MaxPhilosophers, ErrOutOfRange)
	}
	return nil
}

// ParseCount reads a number of philosophers typed by the operator.
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidInput)
	}
	if err := ValidateCount(n); err != nil {
		return 0, err
	}
	return n, nil
}
