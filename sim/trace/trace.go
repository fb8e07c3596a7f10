package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone keeps no decision trace beyond what the caller needs.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every arrival, completion and quantum decision.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects decision records during a simulation, in call order.
type SimulationTrace struct {
	Config      TraceConfig
	Arrivals    []ArrivalRecord
	Completions []CompletionRecord
	Quanta      []QuantumRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Arrivals:    make([]ArrivalRecord, 0),
		Completions: make([]CompletionRecord, 0),
		Quanta:      make([]QuantumRecord, 0),
	}
}

// RecordArrival appends an arrival decision record.
func (st *SimulationTrace) RecordArrival(record ArrivalRecord) {
	st.Arrivals = append(st.Arrivals, record)
}

// RecordCompletion appends a completion decision record.
func (st *SimulationTrace) RecordCompletion(record CompletionRecord) {
	st.Completions = append(st.Completions, record)
}

// RecordQuantum appends a quantum expiry decision record.
func (st *SimulationTrace) RecordQuantum(record QuantumRecord) {
	st.Quanta = append(st.Quanta, record)
}
