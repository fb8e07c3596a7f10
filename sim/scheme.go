package sim

import (
	"fmt"
	"sort"
	"strings"
)

// Comparator orders jobs in a WaitQueue.
// Compare returns a negative value when a should run before b, zero when they
// rank equally, and a positive value when a should run after b.
type Comparator interface {
	Compare(a, b *Job) int
}

// Scheme identifies a scheduling discipline. It is fixed for an Engine's lifetime.
type Scheme int

const (
	FCFS Scheme = iota // first come first served
	SJF                // shortest job first
	PSJF               // preemptive shortest job first (by remaining time)
	PRI                // priority, then arrival
	PPRI               // preemptive priority
	RR                 // round robin
)

var schemeNames = map[Scheme]string{
	FCFS: "fcfs",
	SJF:  "sjf",
	PSJF: "psjf",
	PRI:  "pri",
	PPRI: "ppri",
	RR:   "rr",
}

// ParseScheme returns the Scheme for a case-insensitive name such as "fcfs" or "PPRI".
func ParseScheme(name string) (Scheme, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for s, n := range schemeNames {
		if n == lower {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown scheme %q (valid: %s)", name, strings.Join(ValidSchemeNames(), ", "))
}

// IsValidScheme reports whether name parses to a Scheme.
func IsValidScheme(name string) bool {
	_, err := ParseScheme(name)
	return err == nil
}

// ValidSchemeNames returns the recognized scheme names in sorted order.
func ValidSchemeNames() []string {
	names := make([]string, 0, len(schemeNames))
	for _, n := range schemeNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (s Scheme) String() string {
	if n, ok := schemeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("scheme(%d)", int(s))
}

// Preemptive reports whether an arrival may evict a running job.
func (s Scheme) Preemptive() bool {
	return s == PSJF || s == PPRI
}

// Compare implements Comparator for the scheme's queue order.
// RR never reports "before", so every insertion lands at the tail.
func (s Scheme) Compare(a, b *Job) int {
	switch s {
	case FCFS:
		return cmpInt64(a.ArrivalTime, b.ArrivalTime)
	case SJF:
		return cmpInt64(a.RunTime, b.RunTime)
	case PSJF:
		return cmpInt64(a.RemainingTime, b.RemainingTime)
	case PRI, PPRI:
		if a.Priority != b.Priority {
			return cmpInt64(int64(a.Priority), int64(b.Priority))
		}
		return cmpInt64(a.ArrivalTime, b.ArrivalTime)
	case RR:
		return 1
	default:
		panic(fmt.Sprintf("unhandled scheme %d", int(s)))
	}
}

// moreVulnerable reports whether running job a is a better eviction victim than b.
// PSJF evicts the job with the most remaining time; PPRI the numerically highest
// priority. Ties go to the later arrival. Callers scan cores in ascending order, so
// a full tie keeps the lower core index.
func (s Scheme) moreVulnerable(a, b *Job) bool {
	switch s {
	case PSJF:
		if a.RemainingTime != b.RemainingTime {
			return a.RemainingTime > b.RemainingTime
		}
	case PPRI:
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
	default:
		return false
	}
	return a.ArrivalTime > b.ArrivalTime
}

// preempts reports whether arriving job j should evict victim at time.
// Under PPRI an equal priority wins only when the victim was placed at this
// same instant.
func (s Scheme) preempts(j, victim *Job, time int64) bool {
	switch s {
	case PSJF:
		return j.RunTime < victim.RemainingTime
	case PPRI:
		if j.Priority != victim.Priority {
			return j.Priority < victim.Priority
		}
		return victim.LastScheduled == time
	default:
		return false
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
