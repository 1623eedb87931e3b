package table

import (
	"bytes"
	"fmt"
	"io"
)

// PhilosopherReport is the timing summary of one philosopher.
type PhilosopherReport struct {
	Priority     int
	EatenSeconds int
	Attempts     int     // Failed attempts to take both forks.
	WaitSeconds  int     // Seconds hungry after failed attempts.
	AverageWait  float64 // WaitSeconds / Attempts, 0 without attempts.
	Finished     bool
}

// Report is the summary of a whole table.
type Report struct {
	Philosophers []PhilosopherReport
	AverageWait  float64 // Unweighted mean of every AverageWait.
}

// Aggregate computes the table-wide average of reports.
func Aggregate(reports []PhilosopherReport) *Report {
	r := &Report{Philosophers: reports}
	if len(reports) == 0 {
		return r
	}
	var sum float64
	for _, pr := range reports {
		sum += pr.AverageWait
	}
	r.AverageWait = sum / float64(len(reports))
	return r
}

// MeanAttempts returns the average number of failed attempts per philosopher.
func (r *Report) MeanAttempts() float64 {
	if len(r.Philosophers) == 0 {
		return 0
	}
	total := 0
	for _, pr := range r.Philosophers {
		total += pr.Attempts
	}
	return float64(total) / float64(len(r.Philosophers))
}

// WriteTo implements io.WriterTo.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, pr := range r.Philosophers {
		fmt.Fprintf(&buf, "--- Philosopher %d Report ---\n", pr.Priority)
		if !pr.Finished {
			fmt.Fprintf(&buf, "Did not finish (ate %ds)\n", pr.EatenSeconds)
		}
		fmt.Fprintf(&buf, "Average time waiting to eat: %.2fs\n", pr.AverageWait)
	}
	fmt.Fprintln(&buf, "--- Global Report ---")
	fmt.Fprintf(&buf, "Average time waiting to eat: %.2fs\n", r.AverageWait)
	return buf.WriteTo(w)
}
