package engine

// Event is a notification emitted by a Session.
// Only types in this package implement it.
type Event interface {
	sessionEvent()
}

// ScoreChanged carries the new score. Counter events below follow the same shape.
type ScoreChanged struct{ Score int }

type MovesChanged struct{ Moves int }

type LivesChanged struct{ Lives int }

type LevelChanged struct{ Level int }

type MatchNumberChanged struct{ MatchNumber int }

type TurnNumberChanged struct{ TurnNumber int }

// ComboChanged is only emitted for streaks longer than one.
type ComboChanged struct{ Combo int }

// GameWon is emitted after the win delay once every pair is matched.
// Level is the level that was completed.
type GameWon struct {
	Level int
	Score int
}

// GridDealt follows generation or restore. Matched cards of a restored
// grid are already face up.
type GridDealt struct {
	Rows     int
	Columns  int
	Restored bool
}

// FlipRequested asks the presenter to animate a flip and then call
// Session.CompleteFlip.
type FlipRequested struct{ CardID int }

type CardsMatched struct {
	A, B  int
	Combo int
}

type CardsMismatched struct{ A, B int }

// CloseRequested asks the presenter to animate a card closing and then
// call Session.CompleteClose.
type CloseRequested struct{ CardID int }

type CardClosed struct{ CardID int }

func (ScoreChanged) sessionEvent()       {}
func (MovesChanged) sessionEvent()       {}
func (LivesChanged) sessionEvent()       {}
func (LevelChanged) sessionEvent()       {}
func (MatchNumberChanged) sessionEvent() {}
func (TurnNumberChanged) sessionEvent()  {}
func (ComboChanged) sessionEvent()       {}
func (GameWon) sessionEvent()            {}
func (GridDealt) sessionEvent()          {}
func (FlipRequested) sessionEvent()      {}
func (CardsMatched) sessionEvent()       {}
func (CardsMismatched) sessionEvent()    {}
func (CloseRequested) sessionEvent()     {}
func (CardClosed) sessionEvent()         {}

type subscriber struct {
	id int
	fn func(Event)
}

// observers calls subscribers synchronously in registration order.
type observers struct {
	nextID int
	subs   []subscriber
}

func (o *observers) add(fn func(Event)) func() {
	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

func (o *observers) emit(e Event) {
	// Subscribers may unsubscribe while being notified.
	subs := o.subs
	for _, s := range subs {
		s.fn(e)
	}
}
