package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// firstRand never swaps, so a dealt grid keeps pool order:
// pairs of catalog[0], catalog[1], ... left to right.
type firstRand struct{}

func (firstRand) IntRange(a, _ int) int { return a }

var testCatalog = Catalog{
	{Type: 0, Name: "star", Symbol: "*"},
	{Type: 1, Name: "heart", Symbol: "♥"},
	{Type: 2, Name: "spade", Symbol: "♠"},
	{Type: 3, Name: "club", Symbol: "♣"},
}

type failingStore struct{}

var errStoreDown = errors.New("store down")

func (failingStore) Get(string) (string, bool, error) { return "", false, errStoreDown }
func (failingStore) Set(string, string) error         { return errStoreDown }
func (failingStore) Delete(string) error              { return errStoreDown }

type recorder struct {
	events []Event
}

func (r *recorder) handle(e Event) { r.events = append(r.events, e) }

func count[T Event](r *recorder) int {
	n := 0
	for _, e := range r.events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func last[T Event](r *recorder) (T, bool) {
	var zero T
	for i := len(r.events) - 1; i >= 0; i-- {
		if e, ok := r.events[i].(T); ok {
			return e, true
		}
	}
	return zero, false
}

func newTestSession(t *testing.T, store *storage.MemoryStore) *Session {
	t.Helper()
	return NewSession(Options{
		Catalog:  testCatalog,
		Rand:     firstRand{},
		Saves:    store,
		Settings: store,
		Timing:   config.DefaultMemoryConfig().Timing,
		Rules:    config.DefaultMemoryConfig().Rules,
	})
}

// flip requests and completes a flip without an animator.
func flip(t *testing.T, s *Session, id int) {
	t.Helper()
	require.NoError(t, s.RequestFlip(id))
	require.NoError(t, s.CompleteFlip(id))
}

// turn flips two cards and runs the comparison.
func turn(t *testing.T, s *Session, a, b int) {
	t.Helper()
	flip(t, s, a)
	flip(t, s, b)
	s.Advance(s.timing.CompareDelay)
}
