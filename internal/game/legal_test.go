package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercoach/internal/deck"
)

func stateFacingBet() GameState {
	cards := deck.MustParseCards("KhQc")
	return GameState{
		Position:  BTN,
		Street:    Preflop,
		HoleCards: [2]deck.Card{cards[0], cards[1]},
		Pot:       12.5,
		Stack:     100,
		BetToCall: 5.0,
		Opponents: 2,
	}
}

func stateUnopened() GameState {
	s := stateFacingBet()
	s.BetToCall = 0
	return s
}

func TestLegalActions(t *testing.T) {
	t.Run("no bet to call", func(t *testing.T) {
		legal, err := LegalActions(stateUnopened())
		require.NoError(t, err)
		assert.ElementsMatch(t, []ActionType{Check, Bet}, legal)
	})

	t.Run("facing a bet", func(t *testing.T) {
		legal, err := LegalActions(stateFacingBet())
		require.NoError(t, err)
		assert.ElementsMatch(t, []ActionType{Fold, Call, Raise}, legal)
	})
}

func TestPotOdds(t *testing.T) {
	t.Run("zero when nothing to call", func(t *testing.T) {
		odds, err := PotOdds(stateUnopened())
		require.NoError(t, err)
		assert.Zero(t, odds)
	})

	t.Run("fraction of resulting pot", func(t *testing.T) {
		odds, err := PotOdds(stateFacingBet())
		require.NoError(t, err)
		assert.InDelta(t, 5.0/17.5, odds, 1e-9)
		assert.Greater(t, odds, 0.0)
		assert.Less(t, odds, 1.0)
	})

	t.Run("required equity equals pot odds", func(t *testing.T) {
		odds, err := PotOdds(stateFacingBet())
		require.NoError(t, err)
		eq, err := RequiredEquity(stateFacingBet())
		require.NoError(t, err)
		assert.Equal(t, odds, eq)
	})
}

func TestDegenerateStates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameState)
	}{
		{"negative pot", func(s *GameState) { s.Pot = -1 }},
		{"bet exceeds stack", func(s *GameState) { s.BetToCall = 101 }},
		{"no opponents", func(s *GameState) { s.Opponents = 0 }},
		{"wrong board count", func(s *GameState) { s.Street = Flop }},
		{"duplicate card", func(s *GameState) {
			s.Street = Flop
			s.Board = deck.MustParseCards("KhTs2d")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateFacingBet()
			tt.mutate(&s)

			_, err := LegalActions(s)
			require.Error(t, err)

			var degenerate *DegenerateStateError
			assert.True(t, errors.As(err, &degenerate))

			_, err = PotOdds(s)
			assert.Error(t, err)
		})
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input   string
		want    Action
		wantErr bool
	}{
		{input: "fold", want: Action{Type: Fold}},
		{input: "check", want: Action{Type: Check}},
		{input: "CALL", want: Action{Type: Call}},
		{input: "bet 10", want: Action{Type: Bet, Amount: 10}},
		{input: "raise 25.5", want: Action{Type: Raise, Amount: 25.5}},
		{input: "bet", wantErr: true},
		{input: "raise x", wantErr: true},
		{input: "shove", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
