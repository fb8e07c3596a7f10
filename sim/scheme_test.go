package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheme_AllNamesCaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		want Scheme
	}{
		{"fcfs", FCFS},
		{"SJF", SJF},
		{"psjf", PSJF},
		{"Pri", PRI},
		{" ppri ", PPRI},
		{"rr", RR},
	}
	for _, tc := range tests {
		got, err := ParseScheme(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
		assert.True(t, IsValidScheme(tc.name))
	}
}

func TestParseScheme_Unknown_ReturnsError(t *testing.T) {
	_, err := ParseScheme("lottery")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lottery")
	assert.False(t, IsValidScheme(""))
}

func TestValidSchemeNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"fcfs", "ppri", "pri", "psjf", "rr", "sjf"}, ValidSchemeNames())
}

func TestScheme_Preemptive(t *testing.T) {
	for _, s := range []Scheme{FCFS, SJF, PRI, RR} {
		assert.False(t, s.Preemptive(), s.String())
	}
	assert.True(t, PSJF.Preemptive())
	assert.True(t, PPRI.Preemptive())
}

func TestScheme_String_Unknown(t *testing.T) {
	assert.Equal(t, "scheme(42)", Scheme(42).String())
}

func TestScheme_Compare(t *testing.T) {
	early := &Job{Number: 1, ArrivalTime: 1, RunTime: 9, RemainingTime: 2, Priority: 3}
	late := &Job{Number: 2, ArrivalTime: 5, RunTime: 4, RemainingTime: 4, Priority: 1}
	samePriLate := &Job{Number: 3, ArrivalTime: 7, RunTime: 1, RemainingTime: 1, Priority: 3}

	tests := []struct {
		scheme Scheme
		a, b   *Job
		sign   int
	}{
		{FCFS, early, late, -1},
		{FCFS, late, early, 1},
		{SJF, early, late, 1},         // run 9 vs 4
		{PSJF, early, late, -1},       // remaining 2 vs 4
		{PRI, early, late, 1},         // priority 3 vs 1
		{PPRI, late, early, -1},       // priority 1 vs 3
		{PRI, early, samePriLate, -1}, // tie on priority, earlier arrival first
		{PPRI, samePriLate, early, 1},
		{FCFS, early, early, 0},
		{RR, early, late, 1},
		{RR, late, early, 1},
	}
	for _, tc := range tests {
		got := tc.scheme.Compare(tc.a, tc.b)
		switch {
		case tc.sign < 0:
			assert.Negative(t, got, "%s(%d,%d)", tc.scheme, tc.a.Number, tc.b.Number)
		case tc.sign > 0:
			assert.Positive(t, got, "%s(%d,%d)", tc.scheme, tc.a.Number, tc.b.Number)
		default:
			assert.Zero(t, got, "%s(%d,%d)", tc.scheme, tc.a.Number, tc.b.Number)
		}
	}
}

func TestScheme_MoreVulnerable_TiesGoToLaterArrival(t *testing.T) {
	a := &Job{ArrivalTime: 1, RemainingTime: 5, Priority: 2}
	b := &Job{ArrivalTime: 3, RemainingTime: 5, Priority: 2}

	assert.True(t, PSJF.moreVulnerable(b, a))
	assert.False(t, PSJF.moreVulnerable(a, b))
	assert.True(t, PPRI.moreVulnerable(b, a))
	assert.False(t, FCFS.moreVulnerable(b, a))
}
