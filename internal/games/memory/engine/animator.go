package engine

import "time"

// Animator is the standard presenter for a Session: it answers
// FlipRequested and CloseRequested by completing the animation after a
// fixed duration on the session clock.
type Animator struct {
	session       *Session
	flipDuration  time.Duration
	closeDuration time.Duration
	stop          func()
}

// NewAnimator subscribes an animator to s.
func NewAnimator(s *Session, flip, close time.Duration) *Animator {
	a := &Animator{
		session:       s,
		flipDuration:  flip,
		closeDuration: close,
	}
	a.stop = s.Subscribe(a.handle)
	return a
}

func (a *Animator) handle(e Event) {
	switch e := e.(type) {
	case FlipRequested:
		id := e.CardID
		a.session.After(a.flipDuration, func() {
			a.session.CompleteFlip(id) //nolint:errcheck
		})
	case CloseRequested:
		id := e.CardID
		a.session.After(a.closeDuration, func() {
			a.session.CompleteClose(id) //nolint:errcheck
		})
	}
}

// Stop unsubscribes the animator. Animations already scheduled still finish.
func (a *Animator) Stop() {
	a.stop()
}
