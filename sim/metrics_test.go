package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Averages_NoCompletedJobs_ReturnError(t *testing.T) {
	m := NewMetrics()

	_, err := m.AverageWait()
	assert.ErrorIs(t, err, ErrNoCompletedJobs)
	_, err = m.AverageTurnaround()
	assert.ErrorIs(t, err, ErrNoCompletedJobs)
	_, err = m.AverageResponse()
	assert.ErrorIs(t, err, ErrNoCompletedJobs)
}

func TestMetrics_Record_FoldsEachJobOnce(t *testing.T) {
	// GIVEN three completed jobs
	m := NewMetrics()
	m.Record(0, 5, 0)
	m.Record(3, 6, 3)
	m.Record(6, 10, 1)

	// THEN sums and averages reflect exactly those jobs
	assert.Equal(t, 3, m.CompletedJobs)
	wait, err := m.AverageWait()
	require.NoError(t, err)
	assert.InDelta(t, 3.0, wait, 1e-9)
	turnaround, err := m.AverageTurnaround()
	require.NoError(t, err)
	assert.InDelta(t, 7.0, turnaround, 1e-9)
	response, err := m.AverageResponse()
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, response, 1e-9)
}

func TestMetrics_Print(t *testing.T) {
	var buf bytes.Buffer
	m := NewMetrics()
	m.Print(&buf)
	assert.Contains(t, buf.String(), "Completed Jobs           : 0")
	assert.NotContains(t, buf.String(), "Average")

	buf.Reset()
	m.Record(1, 4, 2)
	m.Record(2, 5, 1)
	m.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "Average waiting time     : 1.50")
	assert.Contains(t, out, "Average turnaround time  : 4.50")
	assert.Contains(t, out, "Average response time    : 1.50")
}
