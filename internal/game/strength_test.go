package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercoach/internal/deck"
	"github.com/lox/pokercoach/internal/randutil"
)

func mustBoard(t *testing.T, s string) []deck.Card {
	t.Helper()
	cards, err := deck.ParseCards(s)
	require.NoError(t, err)
	return cards
}

func TestWinProbabilityBounds(t *testing.T) {
	states := []GameState{
		stateFacingBet(),
		stateUnopened(),
	}

	flopped := stateFacingBet()
	flopped.Street = Flop
	flopped.Board = mustBoard(t, "2c7d9s")
	states = append(states, flopped)

	for _, s := range states {
		for _, a := range []Action{{Type: Call}, {Type: Check}, {Type: Bet, Amount: 10}} {
			p := WinProbability(s, a, randutil.New(7))
			assert.GreaterOrEqual(t, p, 0.02)
			assert.LessOrEqual(t, p, 0.98)
		}
	}
}

func TestWinProbabilityMonotoneInOpponents(t *testing.T) {
	prev := 1.0
	for opponents := 1; opponents <= 5; opponents++ {
		s := stateFacingBet()
		s.Opponents = opponents

		p := WinProbability(s, Action{Type: Call}, randutil.New(7))
		assert.LessOrEqual(t, p, prev, "opponents=%d", opponents)
		prev = p
	}
}

func TestWinProbabilityAggressionBonus(t *testing.T) {
	s := stateUnopened()

	check := WinProbability(s, Action{Type: Check}, randutil.New(7))
	bet := WinProbability(s, Action{Type: Bet, Amount: 10}, randutil.New(7))
	assert.Greater(t, bet, check)
}

func TestPostflopStrengthFavorsTheNuts(t *testing.T) {
	top := GameState{
		Position:  BTN,
		Street:    River,
		HoleCards: [2]deck.Card{deck.MustParseCards("As")[0], deck.MustParseCards("Ad")[0]},
		Board:     mustBoard(t, "AhAc7d2s9c"),
		Pot:       10, Stack: 100, Opponents: 1,
	}
	bottom := top
	bottom.HoleCards = [2]deck.Card{deck.MustParseCards("3s")[0], deck.MustParseCards("4d")[0]}

	strong := postflopStrength(top, randutil.New(11))
	weak := postflopStrength(bottom, randutil.New(11))

	assert.Greater(t, strong, 0.95, "quad aces should beat nearly every sample")
	assert.Greater(t, strong, weak)
}

func TestCategorizeHoleCards(t *testing.T) {
	tests := []struct {
		cards    string
		expected HoleCardCategory
	}{
		{"AhAs", CategoryPremium},
		{"JdJc", CategoryPremium},
		{"AhKs", CategoryPremium},
		{"ThTc", CategoryStrong},
		{"AhQd", CategoryStrong},
		{"9h9d", CategoryMedium},
		{"KhQh", CategoryMedium},
		{"5h5d", CategoryWeak},
		{"8h7h", CategoryWeak},
		{"KhQc", CategoryTrash},
		{"2h9c", CategoryTrash},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			cards := deck.MustParseCards(tt.cards)
			assert.Equal(t, tt.expected, CategorizeHoleCards(cards[0], cards[1]))
		})
	}
}
