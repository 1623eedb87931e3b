package table

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageWait(t *testing.T) {
	assert.Equal(t, 0.0, averageWait(0, 0))
	assert.Equal(t, 0.0, averageWait(5, 0))
	assert.Equal(t, 2.0, averageWait(6, 3))
	assert.InDelta(t, 1.5, averageWait(3, 2), 1e-9)
}

func TestFinalReport(t *testing.T) {
	p := &Philosopher{priority: 1}
	assert.Equal(t, 0.0, p.FinalReport())

	p.eatAttempts, p.secondsWaiting = 3, 6
	assert.Equal(t, 2.0, p.FinalReport())
}

// The global average is not weighted by the number of attempts.
func TestAggregateUnweighted(t *testing.T) {
	r := Aggregate([]PhilosopherReport{
		{Priority: 1, Attempts: 1, WaitSeconds: 3, AverageWait: 3},
		{Priority: 2, Attempts: 9, WaitSeconds: 9, AverageWait: 1},
		{Priority: 3},
	})
	assert.InDelta(t, 4.0/3.0, r.AverageWait, 1e-9)
	assert.InDelta(t, 10.0/3.0, r.MeanAttempts(), 1e-9)

	empty := Aggregate(nil)
	assert.Equal(t, 0.0, empty.AverageWait)
	assert.Equal(t, 0.0, empty.MeanAttempts())
}

func TestReportWriteTo(t *testing.T) {
	r := Aggregate([]PhilosopherReport{
		{Priority: 1, EatenSeconds: 20, AverageWait: 2, Finished: true},
		{Priority: 2, EatenSeconds: 4, AverageWait: 1},
	})
	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	assert.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	out := buf.String()
	assert.Contains(t, out, "--- Philosopher 1 Report ---\nAverage time waiting to eat: 2.00s\n")
	assert.Contains(t, out, "Did not finish (ate 4s)")
	assert.Contains(t, out, "--- Global Report ---\nAverage time waiting to eat: 1.50s\n")
}
