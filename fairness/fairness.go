// Package fairness runs a fairness analysis on a finished simulation.
//
// The table policy does not prevent starvation: a freed fork goes to whichever
// hungry philosopher retries first. The analysis estimates who lost out.
//   - Philosopher never blocked --> fair
//   - Failed attempts above factor x table mean --> likely starved
//   - Average wait above the table average --> waited longer than most
//   - Did not reach the eat target --> starved (or interrupted)
package fairness // import "github.com/nickng/dinephil/fairness"

import (
	"log"

	"github.com/fatih/color"
	"github.com/nickng/dinephil/table"
)

// DefaultFactor is the multiple of the mean failed attempts above which a
// philosopher is likely starved.
const DefaultFactor = 2.0

// Analysis is the result of a fairness check.
type Analysis struct {
	Starved []int // Priorities of likely starved philosophers.
	Total   int   // Number of philosophers checked.

	factor float64
	logger *log.Logger
}

// NewAnalysis creates a new analysis.
func NewAnalysis(factor float64, logger *log.Logger) *Analysis {
	if factor <= 0 {
		factor = DefaultFactor
	}
	return &Analysis{factor: factor, logger: logger}
}

// Visit checks a single philosopher against the table averages.
func (fa *Analysis) Visit(pr table.PhilosopherReport, meanAttempts, meanWait float64) {
	fa.Total++
	fa.logger.Printf("Philosopher %d: %d failed attempts, %.2fs average wait", pr.Priority, pr.Attempts, pr.AverageWait)
	if !pr.Finished {
		fa.logger.Println(color.RedString("❌ did not finish after eating %ds", pr.EatenSeconds))
		fa.Starved = append(fa.Starved, pr.Priority)
		return
	}
	if pr.Attempts == 0 {
		fa.logger.Println(color.GreenString("✓ never blocked"))
		return
	}
	if float64(pr.Attempts) > fa.factor*meanAttempts {
		fa.logger.Println(color.RedString("❌ likely starved (%.1fx mean attempts)", float64(pr.Attempts)/meanAttempts))
		fa.Starved = append(fa.Starved, pr.Priority)
		return
	}
	if pr.AverageWait > meanWait {
		fa.logger.Println(color.YellowString("Warning: waits longer than the table average"))
		return
	}
	fa.logger.Println(color.GreenString("✓ blocked, within table average"))
}

// Fair returns true if no philosopher is likely starved.
func (fa *Analysis) Fair() bool {
	return len(fa.Starved) == 0
}

// Check for fairness on a finished run.
func Check(report *table.Report, factor float64, logger *log.Logger) *Analysis {
	fa := NewAnalysis(factor, logger)
	meanAttempts := report.MeanAttempts()
	for _, pr := range report.Philosophers {
		fa.Visit(pr, meanAttempts, report.AverageWait)
	}
	if fa.Fair() {
		fa.logger.Println(color.GreenString("Result: %d/%d likely starved", len(fa.Starved), fa.Total))
	} else {
		fa.logger.Println(color.RedString("Result: %d/%d likely starved %v", len(fa.Starved), fa.Total, fa.Starved))
	}
	return fa
}
