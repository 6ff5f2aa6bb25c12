package advisor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercoach/internal/deck"
	"github.com/lox/pokercoach/internal/game"
)

func snapshotFor(t *testing.T, cards string, betToCall float64) Snapshot {
	t.Helper()
	hole := deck.MustParseCards(cards)
	snap, err := NewSnapshot(game.GameState{
		Position:  game.BTN,
		Street:    game.Preflop,
		HoleCards: [2]deck.Card{hole[0], hole[1]},
		Pot:       10,
		Stack:     100,
		BetToCall: betToCall,
		Opponents: 2,
	})
	require.NoError(t, err)
	return snap
}

func TestRulesAdvisor(t *testing.T) {
	tests := []struct {
		name      string
		cards     string
		betToCall float64
		expected  game.ActionType
	}{
		{"premium raises a bet", "AhAs", 5, game.Raise},
		{"premium bets unopened", "AhAs", 0, game.Bet},
		{"strong calls", "AhQd", 5, game.Call},
		{"trash folds to a bet", "2h9c", 5, game.Fold},
		{"trash checks for free", "2h9c", 0, game.Check},
	}

	a := NewRulesAdvisor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := a.Advise(context.Background(), snapshotFor(t, tt.cards, tt.betToCall))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rec.Action.Type)
			assert.NotEmpty(t, rec.Rationale)
			assert.Greater(t, rec.Confidence, 0.0)
		})
	}
}

func TestRulesAdvisorRaiseIsLegal(t *testing.T) {
	snap := snapshotFor(t, "KdKs", 5)
	rec, err := NewRulesAdvisor().Advise(context.Background(), snap)
	require.NoError(t, err)

	require.Equal(t, game.Raise, rec.Action.Type)
	assert.Greater(t, rec.Action.Amount, snap.State.BetToCall)
	assert.LessOrEqual(t, rec.Action.Amount, snap.State.Stack)
}

func TestMathAdvisorPotOddsThresholds(t *testing.T) {
	a := NewMathAdvisor()

	// 2 into 10: pot odds 1/6, cheap.
	cheap, err := a.Advise(context.Background(), snapshotFor(t, "2h9c", 2))
	require.NoError(t, err)
	assert.Equal(t, game.Call, cheap.Action.Type)

	// 15 into 10: pot odds 0.6, expensive.
	dear, err := a.Advise(context.Background(), snapshotFor(t, "2h9c", 15))
	require.NoError(t, err)
	assert.Equal(t, game.Fold, dear.Action.Type)
}

func TestMathAdvisorMidRangeUsesHandStrength(t *testing.T) {
	a := NewMathAdvisor()

	// 6 into 10: pot odds 0.375, between the thresholds.
	strong, err := a.Advise(context.Background(), snapshotFor(t, "AhAs", 6))
	require.NoError(t, err)
	assert.Equal(t, game.Call, strong.Action.Type)

	weak, err := a.Advise(context.Background(), snapshotFor(t, "2h9c", 6))
	require.NoError(t, err)
	assert.Equal(t, game.Fold, weak.Action.Type)
}

func TestPositionAdvisorAttacksLateShorthanded(t *testing.T) {
	rec, err := NewPositionAdvisor().Advise(context.Background(), snapshotFor(t, "7h8h", 0))
	require.NoError(t, err)
	assert.Equal(t, game.Bet, rec.Action.Type)
}

func TestPositionAdvisorFoldsEarlyMultiway(t *testing.T) {
	hole := deck.MustParseCards("7h8h")
	snap, err := NewSnapshot(game.GameState{
		Position:  game.UTG,
		Street:    game.Preflop,
		HoleCards: [2]deck.Card{hole[0], hole[1]},
		Pot:       10,
		Stack:     100,
		BetToCall: 5,
		Opponents: 4,
	})
	require.NoError(t, err)

	rec, err := NewPositionAdvisor().Advise(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, game.Fold, rec.Action.Type)
}

func TestParseModelReply(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		action     game.Action
		confidence float64
		wantErr    bool
	}{
		{
			name:       "simple",
			reply:      "CALL | 0.8 | price is right",
			action:     game.Action{Type: game.Call},
			confidence: 0.8,
		},
		{
			name:       "bet with amount",
			reply:      "BET 10 | 0.7 | take initiative",
			action:     game.Action{Type: game.Bet, Amount: 10},
			confidence: 0.7,
		},
		{
			name:       "percentage confidence normalized",
			reply:      "FOLD | 85 | too expensive",
			action:     game.Action{Type: game.Fold},
			confidence: 0.85,
		},
		{
			name:       "surrounding chatter",
			reply:      "Let me think.\nRAISE 20 | 0.9 | dominate the pot\nGood luck!",
			action:     game.Action{Type: game.Raise, Amount: 20},
			confidence: 0.9,
		},
		{
			name:    "no parseable line",
			reply:   "You should probably call here.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := parseModelReply(tt.reply)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.action, rec.Action)
			assert.InDelta(t, tt.confidence, rec.Confidence, 1e-9)
			assert.NotEmpty(t, rec.Rationale)
		})
	}
}
