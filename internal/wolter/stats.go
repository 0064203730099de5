package wolter

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// RayLog is one traced ray kept for diagnostics.
type RayLog struct {
	ID      int
	Origin  Vector3
	Dir     Vector3
	State   State
	Bounces int
	Point   Vector3 // terminal point
}

// Stats accumulates trace outcomes. It is owned by the caller and safe for concurrent use.
type Stats struct {
	mu       sync.Mutex
	states   map[State]int
	shells   map[int]int // first paraboloid shell of detected rays
	bounces  map[int]int
	total    int
	detected int
	keepLogs bool
	logs     []RayLog
}

// NewStats returns an empty accumulator; keepLogs retains every ray (memory grows with the batch).
func NewStats(keepLogs bool) *Stats {
	return &Stats{
		states:   make(map[State]int),
		shells:   make(map[int]int),
		bounces:  make(map[int]int),
		keepLogs: keepLogs,
	}
}

// Record adds one finished trace.
func (s *Stats) Record(r Ray, tr Trace) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	s.states[tr.State]++
	n := tr.Bounces()
	s.bounces[n]++
	if detected(tr) {
		s.detected++
		if i, ok := tr.FirstShell(KindParaboloid); ok {
			s.shells[i]++
		}
	}
	if s.keepLogs {
		s.logs = append(s.logs, RayLog{
			ID:      r.ID,
			Origin:  r.Origin,
			Dir:     r.Direction,
			State:   tr.State,
			Bounces: n,
			Point:   tr.Terminal().Point,
		})
	}
}

// Total is the number of recorded traces.
func (s *Stats) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Count returns how many traces ended in state st.
func (s *Stats) Count(st State) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[st]
}

// Detected is the number of traces focused onto the detector.
func (s *Stats) Detected() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detected
}

// ShellCount returns how many detected rays entered through shell i.
func (s *Stats) ShellCount(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shells[i]
}

// Logs returns a copy of the kept ray logs.
func (s *Stats) Logs() []RayLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RayLog(nil), s.logs...)
}

// Report writes per-state, per-bounce and per-shell counts.
func (s *Stats) Report(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(w, "Rays traced: %d, detected: %d\n", s.total, s.detected); err != nil {
		return err
	}
	for st := ReflectedAtShell; st <= StepLimitExceeded; st++ {
		if n := s.states[st]; n > 0 {
			fmt.Fprintf(w, "  %-18s %d\n", st, n)
		}
	}
	keys := make([]int, 0, len(s.bounces))
	for k := range s.bounces {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  bounces=%d: %d\n", k, s.bounces[k])
	}
	keys = keys[:0]
	for k := range s.shells {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  shell #%02d -> sensor: %d\n", k, s.shells[k])
	}
	return nil
}
