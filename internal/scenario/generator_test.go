package scenario

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercoach/internal/deck"
	"github.com/lox/pokercoach/internal/game"
	"github.com/lox/pokercoach/internal/randutil"
)

func testGenerator(seed int64) *Generator {
	return NewGenerator(randutil.New(seed), log.New(io.Discard))
}

func TestGenerateValidStates(t *testing.T) {
	g := testGenerator(1)

	for i := 0; i < 50; i++ {
		s, err := g.Generate(Constraints{})
		require.NoError(t, err)
		require.NoError(t, s.Validate())

		seen := map[deck.Card]bool{}
		for _, c := range append(s.HoleCards[:], s.Board...) {
			assert.False(t, seen[c], "duplicate card %s", c)
			seen[c] = true
		}
		assert.Equal(t, s.Street.BoardCards(), len(s.Board))
		assert.GreaterOrEqual(t, s.Opponents, 1)
		assert.LessOrEqual(t, s.Opponents, 4)
		assert.LessOrEqual(t, s.BetToCall, s.Stack)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := testGenerator(42).Generate(Constraints{})
	require.NoError(t, err)
	b, err := testGenerator(42).Generate(Constraints{})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateFixedConstraints(t *testing.T) {
	pos := game.BTN
	street := game.Turn
	g := testGenerator(3)

	s, err := g.Generate(Constraints{Position: &pos, Street: &street, Stack: 250})
	require.NoError(t, err)

	assert.Equal(t, game.BTN, s.Position)
	assert.Equal(t, game.Turn, s.Street)
	assert.Len(t, s.Board, 4)
	assert.Equal(t, 250.0, s.Stack)
}

func TestGenerateForcedHoleCards(t *testing.T) {
	g := testGenerator(4)
	cards := deck.MustParseCards("AhKd")

	s, err := g.Generate(Constraints{HoleCards: cards})
	require.NoError(t, err)

	assert.Equal(t, [2]deck.Card{cards[0], cards[1]}, s.HoleCards)
	for _, c := range s.Board {
		assert.NotContains(t, cards, c)
	}
}

func TestGenerateArchetypes(t *testing.T) {
	tests := []struct {
		archetype string
		satisfies func(a, b deck.Card) bool
	}{
		{"premium_pair", func(a, b deck.Card) bool { return a.Rank == b.Rank && a.Rank >= deck.Jack }},
		{"pocket_pair", func(a, b deck.Card) bool { return a.Rank == b.Rank }},
		{"drawing_hand", func(a, b deck.Card) bool { return a.Suit == b.Suit && a.Rank != b.Rank }},
	}

	for _, tt := range tests {
		t.Run(tt.archetype, func(t *testing.T) {
			g := testGenerator(5)
			satisfied := 0
			for i := 0; i < 30; i++ {
				s, err := g.Generate(Constraints{Archetype: tt.archetype})
				require.NoError(t, err)
				if s.Degraded {
					continue
				}
				assert.True(t, tt.satisfies(s.HoleCards[0], s.HoleCards[1]),
					"cards %s do not match %s", deck.FormatCards(s.HoleCards[:]), tt.archetype)
				satisfied++
			}
			// premium_pair frequently exhausts the sampling bound; the
			// others should nearly always land.
			assert.Greater(t, satisfied, 0)
		})
	}
}

func TestGenerateUnknownArchetype(t *testing.T) {
	_, err := testGenerator(6).Generate(Constraints{Archetype: "monster"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown archetype")
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			s, err := testGenerator(7).Preset(name)
			require.NoError(t, err)
			require.NoError(t, s.Validate())
		})
	}
}

func TestPresetCards(t *testing.T) {
	s, err := testGenerator(8).Preset("premium_pair")
	require.NoError(t, err)

	assert.Equal(t, game.BTN, s.Position)
	assert.Equal(t, "A♥ A♠", deck.FormatCards(s.HoleCards[:]))
	assert.Equal(t, 15.0, s.Pot)
	assert.Equal(t, 10.0, s.BetToCall)
}

func TestPresetUnknown(t *testing.T) {
	_, err := testGenerator(9).Preset("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}
