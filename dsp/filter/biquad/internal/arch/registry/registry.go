package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// UnderflowThreshold is FLT_MIN, the smallest positive normal float32.
const UnderflowThreshold = 1.175494351e-38

// Coefficients are the recurrence and mix coefficients of one unit.
type Coefficients struct {
	A0, A1, A2 float64
	B1, B2     float64
	C0, D0     float64
}

// State is a unit delay line, most recent sample first.
type State struct {
	XZ1, XZ2 float64
	YZ1, YZ2 float64
}

// FlushUnderflow returns 0 for outputs in the open interval
// (-UnderflowThreshold, UnderflowThreshold) and y otherwise.
func FlushUnderflow(y float64) float64 {
	if y > 0 && y < UnderflowThreshold {
		return 0
	}

	if y < 0 && y > -UnderflowThreshold {
		return 0
	}

	return y
}

// ProcessBlockFn filters buf in place, writing mixed output, and returns
// the delay line after the last sample.
type ProcessBlockFn func(c Coefficients, s State, buf []float64) State

// OpEntry is one registered biquad kernel implementation.
type OpEntry struct {
	Name         string
	SIMDLevel    cpu.SIMDLevel
	Priority     int
	ProcessBlock ProcessBlockFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default biquad kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupName returns the entry registered under name, or nil.
func (r *OpRegistry) LookupName(name string) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}

	return nil
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries in priority order.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
