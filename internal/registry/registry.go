// Package registry maps mode ids such as "memory" to the factories that
// build them. Game packages register from init, so the CLI, menu and SSH
// server only need a blank import to offer a mode.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// ErrUnknownMode is returned by Create for ids nothing registered.
var ErrUnknownMode = errors.New("registry: unknown mode")

// Game is one playable mode. It is pure simulation: the platform maps
// keys to actions, calls Step at a fixed rate and shows what Render drew.
type Game interface {
	ID() string // stable id used for save keys and the score table
	Title() string

	// Reset starts the game for the given screen and seed, restoring a
	// save when the mode has one.
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	// Render draws into a cleared screen.
	Render(dst *core.Screen)
	State() core.GameState
}

// Resizer is implemented by games that re-layout on a terminal resize
// instead of restarting.
type Resizer interface {
	Resize(width, height int)
}

// Deps is what a factory gets to build a game. Every field may be zero;
// games then use in-memory stores, a discarding logger and the default
// card config.
type Deps struct {
	Saves    core.KVStore
	Settings core.SettingsStore
	Logger   *log.Logger
	Config   config.MemoryConfig

	// Slot separates the saves of different players, such as SSH users.
	// Empty is the local player.
	Slot string
}

type GameInfo struct {
	ID    string
	Title string
}

type Factory func(Deps) Game

type mode struct {
	title   string
	factory Factory
}

var (
	mu    sync.RWMutex
	modes = map[string]mode{}
)

// Register adds a mode. Registering the same id twice panics, since it
// can only come from two packages claiming one id.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := modes[id]; dup {
		panic(fmt.Sprintf("registry: mode %q registered twice", id))
	}
	modes[id] = mode{title: title, factory: f}
}

func lookup(id string) (mode, bool) {
	mu.RLock()
	defer mu.RUnlock()
	m, ok := modes[id]
	return m, ok
}

// List returns every registered mode sorted by id.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(modes))
	for id, m := range modes {
		out = append(out, GameInfo{ID: id, Title: m.title})
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new instance of mode id.
func Create(id string, deps Deps) (Game, error) {
	m, ok := lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}
	return m.factory(deps), nil
}

// Title is the display name of id, or id itself when it is unknown.
func Title(id string) string {
	if m, ok := lookup(id); ok {
		return m.title
	}
	return id
}

func Exists(id string) bool {
	_, ok := lookup(id)
	return ok
}
