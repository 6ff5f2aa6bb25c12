// Package session tracks a practice session's bankroll across hands: an
// append-only history of played hands plus running statistics.
package session

import (
	"time"

	"github.com/lox/pokercoach/internal/game"
)

// HandRecord is one completed hand as it entered the history.
type HandRecord struct {
	Number     int
	State      game.GameState
	Action     game.Action
	Outcome    game.Outcome
	StackDelta float64
	StackAfter float64
	PlayedAt   time.Time
}

// Stats summarizes a session so far.
type Stats struct {
	HandsPlayed   int
	StartingStack float64
	CurrentStack  float64
	ProfitLoss    float64
	Wins          int
	Losses        int
	Folds         int
	WinRate       float64 // wins over all hands played, folds included
	BiggestWin    float64
	BiggestLoss   float64
}

// Session carries the hero's stack between scenarios. History is append-only:
// Reset starts a new bankroll but never rewrites what was played.
type Session struct {
	startingStack float64
	currentStack  float64
	handCount     int
	history       []HandRecord
}

const DefaultStartingStack = 100

func New(startingStack float64) *Session {
	if startingStack <= 0 {
		startingStack = DefaultStartingStack
	}
	return &Session{
		startingStack: startingStack,
		currentStack:  startingStack,
	}
}

// Stack returns the current bankroll.
func (s *Session) Stack() float64 { return s.currentStack }

// HandNumber returns the 1-based number the next hand will get.
func (s *Session) HandNumber() int { return s.handCount + 1 }

// RecordHand applies a resolved hand to the bankroll and appends it to the
// history. A delta that would take the stack below zero clamps it to zero
// and records the hand as a bust.
func (s *Session) RecordHand(state game.GameState, action game.Action, res game.Result) HandRecord {
	outcome := res.Outcome
	after := s.currentStack + res.StackDelta
	if after < 0 {
		after = 0
		outcome = game.OutcomeBust
	}

	s.handCount++
	s.currentStack = after

	record := HandRecord{
		Number:     s.handCount,
		State:      state,
		Action:     action,
		Outcome:    outcome,
		StackDelta: res.StackDelta,
		StackAfter: after,
		PlayedAt:   time.Now(),
	}
	s.history = append(s.history, record)
	return record
}

// Reset starts a fresh session: new bankroll, hand counter back to zero,
// history cleared. This is the only mutation besides RecordHand.
func (s *Session) Reset(startingStack float64) {
	if startingStack <= 0 {
		startingStack = DefaultStartingStack
	}
	s.startingStack = startingStack
	s.currentStack = startingStack
	s.handCount = 0
	s.history = nil
}

// History returns a copy of the hands played, oldest first.
func (s *Session) History() []HandRecord {
	out := make([]HandRecord, len(s.history))
	copy(out, s.history)
	return out
}

// Recent returns up to n most recent hands, oldest first.
func (s *Session) Recent(n int) []HandRecord {
	if n <= 0 || len(s.history) == 0 {
		return nil
	}
	if n > len(s.history) {
		n = len(s.history)
	}
	out := make([]HandRecord, n)
	copy(out, s.history[len(s.history)-n:])
	return out
}

// Stats computes session statistics. Calling it has no side effects.
func (s *Session) Stats() Stats {
	st := Stats{
		HandsPlayed:   s.handCount,
		StartingStack: s.startingStack,
		CurrentStack:  s.currentStack,
		ProfitLoss:    s.currentStack - s.startingStack,
	}

	for _, h := range s.history {
		switch h.Outcome {
		case game.OutcomeWin:
			st.Wins++
		case game.OutcomeLoss, game.OutcomeBust:
			st.Losses++
		case game.OutcomeFold:
			st.Folds++
		}
		if h.StackDelta > st.BiggestWin {
			st.BiggestWin = h.StackDelta
		}
		if h.StackDelta < st.BiggestLoss {
			st.BiggestLoss = h.StackDelta
		}
	}

	if st.HandsPlayed > 0 {
		st.WinRate = float64(st.Wins) / float64(st.HandsPlayed)
	}
	return st
}
