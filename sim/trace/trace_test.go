package trace

import (
	"testing"
)

func TestSimulationTrace_RecordArrival_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN an arrival record is recorded
	st.RecordArrival(ArrivalRecord{
		JobNumber: 7,
		Clock:     12,
		RunTime:   5,
		Core:      1,
		Scheduled: true,
	})

	// THEN the trace contains one arrival record with correct data
	if len(st.Arrivals) != 1 {
		t.Fatalf("expected 1 arrival, got %d", len(st.Arrivals))
	}
	if st.Arrivals[0].JobNumber != 7 {
		t.Errorf("expected job 7, got %d", st.Arrivals[0].JobNumber)
	}
	if !st.Arrivals[0].Scheduled || st.Arrivals[0].Core != 1 {
		t.Errorf("expected scheduled on core 1, got %+v", st.Arrivals[0])
	}
}

func TestSimulationTrace_RecordCompletionAndQuantum_PreserveOrder(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN completions and quantum expiries are recorded
	st.RecordCompletion(CompletionRecord{JobNumber: 1, Clock: 5})
	st.RecordCompletion(CompletionRecord{JobNumber: 2, Clock: 9})
	st.RecordQuantum(QuantumRecord{Core: 0, Clock: 3, Expired: 4, HadJob: true})

	// THEN records are kept in call order per kind
	if len(st.Completions) != 2 {
		t.Fatalf("expected 2 completions, got %d", len(st.Completions))
	}
	if st.Completions[0].JobNumber != 1 || st.Completions[1].JobNumber != 2 {
		t.Errorf("completion order: got %d, %d", st.Completions[0].JobNumber, st.Completions[1].JobNumber)
	}
	if len(st.Quanta) != 1 || st.Quanta[0].Expired != 4 {
		t.Errorf("unexpected quanta: %+v", st.Quanta)
	}
}

func TestIsValidTraceLevel(t *testing.T) {
	tests := []struct {
		level string
		want  bool
	}{
		{"", true},
		{"none", true},
		{"decisions", true},
		{"verbose", false},
		{"NONE", false},
	}
	for _, tc := range tests {
		if got := IsValidTraceLevel(tc.level); got != tc.want {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tc.level, got, tc.want)
		}
	}
}
