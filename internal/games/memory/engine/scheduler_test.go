package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var got []string

	s.After(300*time.Millisecond, func() { got = append(got, "c") })
	s.After(100*time.Millisecond, func() { got = append(got, "a") })
	s.After(100*time.Millisecond, func() { got = append(got, "b") })

	assert.Equal(t, 3, s.Pending())
	next, ok := s.NextDue()
	assert.True(t, ok)
	assert.Equal(t, 100*time.Millisecond, next)

	assert.Equal(t, 0, s.Advance(50*time.Millisecond))
	assert.Equal(t, 2, s.Advance(50*time.Millisecond))
	assert.Equal(t, []string{"a", "b"}, got)

	s.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, 1100*time.Millisecond, s.Now())

	_, ok = s.NextDue()
	assert.False(t, ok)
}

func TestSchedulerNested(t *testing.T) {
	s := NewScheduler()
	var at []time.Duration

	s.After(100*time.Millisecond, func() {
		at = append(at, s.Now())
		s.After(100*time.Millisecond, func() { at = append(at, s.Now()) })
	})

	// Both fit in one advance; the nested one is timed from its parent.
	assert.Equal(t, 2, s.Advance(250*time.Millisecond))
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, at)
	assert.Equal(t, 250*time.Millisecond, s.Now())
}

func TestSchedulerZeroDelay(t *testing.T) {
	s := NewScheduler()
	ran := false
	s.After(-time.Second, func() { ran = true })

	assert.False(t, ran, "nothing runs before Advance")
	s.Advance(0)
	assert.True(t, ran)
}
