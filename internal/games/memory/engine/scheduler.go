package engine

import "time"

// Scheduler runs delayed callbacks against a manual clock. Nothing runs
// until Advance is called, which makes timing fully deterministic.
// It is not safe for concurrent use.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks []task
}

type task struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run d after the current clock.
// Callbacks due at the same time run in scheduling order.
func (s *Scheduler) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	s.tasks = append(s.tasks, task{at: s.now + d, seq: s.seq, fn: fn})
}

// Advance moves the clock forward by dt, running every callback that
// becomes due. Callbacks scheduled by a running callback are measured
// from that callback's due time and run in the same call if they fall
// within dt. Returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	target := s.now + dt
	ran := 0
	for {
		i := s.nextDue(target)
		if i < 0 {
			break
		}
		t := s.tasks[i]
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		s.now = t.at
		t.fn()
		ran++
	}
	if target > s.now {
		s.now = target
	}
	return ran
}

// nextDue returns the index of the earliest task due by target, or -1.
func (s *Scheduler) nextDue(target time.Duration) int {
	best := -1
	for i, t := range s.tasks {
		if t.at > target {
			continue
		}
		if best < 0 || t.at < s.tasks[best].at || (t.at == s.tasks[best].at && t.seq < s.tasks[best].seq) {
			best = i
		}
	}
	return best
}

// Pending returns the number of scheduled callbacks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// NextDue returns the delay until the next callback, if any.
func (s *Scheduler) NextDue() (time.Duration, bool) {
	if len(s.tasks) == 0 {
		return 0, false
	}
	next := s.tasks[0].at
	for _, t := range s.tasks[1:] {
		if t.at < next {
			next = t.at
		}
	}
	return next - s.now, true
}
