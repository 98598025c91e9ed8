package engine

// RequestFlip starts flipping card id. The presenter animates it (see
// FlipRequested) and reports back through CompleteFlip.
func (s *Session) RequestFlip(id int) error {
	if s.winPending {
		return ErrLevelComplete
	}
	c, ok := s.grid.Card(id)
	if !ok {
		return ErrUnknownCard
	}
	if c.State != Hidden || !c.Flippable {
		return ErrNotFlippable
	}

	c.Flippable = false
	s.emit(FlipRequested{CardID: id})
	return nil
}

// CompleteFlip reveals card id once its flip animation is done. The second
// revealed card schedules a comparison after the compare delay; the pending
// pair is cleared immediately so further flips start a new pair.
func (s *Session) CompleteFlip(id int) error {
	c, ok := s.grid.Card(id)
	if !ok {
		return ErrUnknownCard
	}
	if c.State != Hidden || c.Flippable {
		return ErrNotFlipping
	}

	c.State = Revealed
	s.pending = append(s.pending, id)
	if len(s.pending) >= 2 {
		a, b := s.pending[0], s.pending[1]
		s.pending = s.pending[:0]
		s.After(s.timing.CompareDelay, func() { s.compare(a, b) })
	}
	return nil
}

// CompleteClose hides card id once its close animation is done and makes
// it flippable again.
func (s *Session) CompleteClose(id int) error {
	c, ok := s.grid.Card(id)
	if !ok {
		return ErrUnknownCard
	}
	if c.State != Revealed {
		return ErrNotClosing
	}

	c.State = Hidden
	c.Flippable = true
	s.emit(CardClosed{CardID: id})
	return nil
}

// compare resolves one turn. Every call counts as a move.
func (s *Session) compare(a, b int) {
	s.state.Moves++
	s.state.TurnNumber++
	s.emit(MovesChanged{Moves: s.state.Moves})
	s.emit(TurnNumberChanged{TurnNumber: s.state.TurnNumber})

	ca, _ := s.grid.Card(a)
	cb, _ := s.grid.Card(b)
	if ca.Type == cb.Type {
		s.match(ca, cb)
	} else {
		s.mismatch(ca, cb)
	}

	if s.state.MatchedPairs < s.state.TotalPairs {
		s.Save() //nolint:errcheck
	}
}

func (s *Session) match(a, b *Card) {
	s.state.Combo++
	s.state.Score += s.rules.MatchPoints * s.state.Combo
	s.state.MatchNumber++
	s.state.MatchedPairs++

	s.emit(ScoreChanged{Score: s.state.Score})
	s.emit(MatchNumberChanged{MatchNumber: s.state.MatchNumber})
	if s.state.Combo > 1 {
		s.emit(ComboChanged{Combo: s.state.Combo})
	}

	a.State, a.Flippable = Matched, false
	b.State, b.Flippable = Matched, false
	s.emit(CardsMatched{A: a.ID, B: b.ID, Combo: s.state.Combo})

	if s.state.MatchedPairs >= s.state.TotalPairs && !s.winPending {
		s.win()
	}
}

func (s *Session) mismatch(a, b *Card) {
	s.state.Combo = 0
	s.state.Score = max(0, s.state.Score-s.rules.MismatchPenalty)
	s.state.Lives--

	s.emit(ScoreChanged{Score: s.state.Score})
	s.emit(LivesChanged{Lives: s.state.Lives})
	s.emit(CardsMismatched{A: a.ID, B: b.ID})

	ida, idb := a.ID, b.ID
	closeBoth := func() {
		s.emit(CloseRequested{CardID: ida})
		s.emit(CloseRequested{CardID: idb})
	}
	if s.timing.SettleDelay <= 0 {
		closeBoth()
		return
	}
	s.After(s.timing.SettleDelay, closeBoth)
}

// win clears the save, advances and persists the level, resets the turn
// counters and announces GameWon after the win delay. Score and lives
// carry over.
func (s *Session) win() {
	s.winPending = true
	s.ClearSave() //nolint:errcheck

	completed := s.state.Level
	s.logger.Info("level complete", "level", completed, "score", s.state.Score, "combo", s.state.Combo)

	s.state.Level++
	s.persistLevel()
	s.rows, s.columns = s.gridSize(s.state.Level)

	s.state.Moves = 0
	s.state.TurnNumber = 1
	s.state.Combo = 0
	s.state.MatchNumber = 0
	s.Broadcast()

	score := s.state.Score
	s.After(s.timing.WinDelay, func() {
		s.emit(GameWon{Level: completed, Score: score})
	})
}
