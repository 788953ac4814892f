package core

import (
	"sort"
	"time"
)

// FixedStep helps run simulation updates at a steady steps-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(sps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(sps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(sps int) {
	if sps <= 0 {
		sps = 60
	}
	f.step = time.Second / time.Duration(sps)
}

// Steps reports how many simulation steps are due since the previous call.
func (f *FixedStep) Steps() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	return n
}

// Stopwatch accumulates elapsed time into named buckets.
type Stopwatch struct {
	buckets map[string]time.Duration
	starts  map[string]time.Time
	now     func() time.Time
}

// NewStopwatch returns an empty Stopwatch.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{
		buckets: make(map[string]time.Duration),
		starts:  make(map[string]time.Time),
		now:     time.Now,
	}
}

// Start begins timing bucket b.
func (s *Stopwatch) Start(b string) {
	s.starts[b] = s.now()
	if _, ok := s.buckets[b]; !ok {
		s.buckets[b] = 0
	}
}

// Stop adds the time since Start to bucket b and returns the lap duration.
func (s *Stopwatch) Stop(b string) time.Duration {
	start, ok := s.starts[b]
	if !ok {
		return 0
	}
	lap := s.now().Sub(start)
	s.buckets[b] += lap
	delete(s.starts, b)
	return lap
}

// Elapsed returns the total recorded for bucket b.
func (s *Stopwatch) Elapsed(b string) time.Duration { return s.buckets[b] }

// Buckets returns the bucket names in order.
func (s *Stopwatch) Buckets() []string {
	names := make([]string, 0, len(s.buckets))
	for k := range s.buckets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
