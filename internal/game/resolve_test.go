package game

import (
	"errors"
	"io"
	rand "math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercoach/internal/randutil"
)

// fixedSource pins every random draw, letting tests force win or loss.
type fixedSource struct{ v uint64 }

func (s fixedSource) Uint64() uint64 { return s.v }

func forcedWinRand() *rand.Rand  { return rand.New(fixedSource{0}) }
func forcedLossRand() *rand.Rand { return rand.New(fixedSource{^uint64(0)}) }

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestResolveIllegalAction(t *testing.T) {
	tests := []struct {
		name   string
		state  GameState
		action Action
	}{
		{"check facing a bet", stateFacingBet(), Action{Type: Check}},
		{"bet facing a bet", stateFacingBet(), Action{Type: Bet, Amount: 10}},
		{"call with nothing to call", stateUnopened(), Action{Type: Call}},
		{"raise with nothing to call", stateUnopened(), Action{Type: Raise, Amount: 10}},
		{"fold with nothing to call", stateUnopened(), Action{Type: Fold}},
		{"bet with zero amount", stateUnopened(), Action{Type: Bet}},
		{"raise below the bet", stateFacingBet(), Action{Type: Raise, Amount: 4}},
	}

	r := NewResolver(randutil.New(1), testLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(tt.state, tt.action)
			require.Error(t, err)

			var illegal *IllegalActionError
			assert.True(t, errors.As(err, &illegal))
		})
	}
}

func TestResolveFold(t *testing.T) {
	r := NewResolver(randutil.New(1), testLogger())

	result, err := r.Resolve(stateFacingBet(), Action{Type: Fold})
	require.NoError(t, err)
	assert.Equal(t, OutcomeFold, result.Outcome)
	assert.Zero(t, result.StackDelta)
}

// A forced-win call wins exactly the existing pot.
func TestResolveCallForcedWin(t *testing.T) {
	r := NewResolver(forcedWinRand(), testLogger())

	state := stateFacingBet() // BTN, KhQc, pot 12.5, bet 5, 2 opponents
	odds, err := PotOdds(state)
	require.NoError(t, err)
	assert.InDelta(t, 0.286, odds, 0.001)

	result, err := r.Resolve(state, Action{Type: Call})
	require.NoError(t, err)
	assert.Equal(t, OutcomeWin, result.Outcome)
	assert.InDelta(t, 12.5, result.StackDelta, 1e-9)
}

func TestResolveCallForcedLoss(t *testing.T) {
	r := NewResolver(forcedLossRand(), testLogger())

	result, err := r.Resolve(stateFacingBet(), Action{Type: Call})
	require.NoError(t, err)
	assert.Equal(t, OutcomeLoss, result.Outcome)
	assert.InDelta(t, -5.0, result.StackDelta, 1e-9)
}

func TestResolveRaiseForcedWinMatchesRaise(t *testing.T) {
	r := NewResolver(forcedWinRand(), testLogger())

	result, err := r.Resolve(stateFacingBet(), Action{Type: Raise, Amount: 15})
	require.NoError(t, err)
	assert.Equal(t, OutcomeWin, result.Outcome)
	// Pot plus the amount opponents matched.
	assert.InDelta(t, 12.5+15, result.StackDelta, 1e-9)
}

func TestResolveCheckForcedLossCostsNothing(t *testing.T) {
	r := NewResolver(forcedLossRand(), testLogger())

	result, err := r.Resolve(stateUnopened(), Action{Type: Check})
	require.NoError(t, err)
	assert.Equal(t, OutcomeLoss, result.Outcome)
	assert.Zero(t, result.StackDelta)
}

func TestResolveBustClampsToStack(t *testing.T) {
	r := NewResolver(forcedLossRand(), testLogger())

	state := stateUnopened()
	state.Stack = 10

	result, err := r.Resolve(state, Action{Type: Bet, Amount: 25})
	require.NoError(t, err)
	assert.Equal(t, OutcomeBust, result.Outcome)
	assert.InDelta(t, -10, result.StackDelta, 1e-9)
}

func TestResolveDeterministic(t *testing.T) {
	state := stateFacingBet()
	state.Street = Flop
	state.Board = mustBoard(t, "2c7d9s")

	r1 := NewResolver(randutil.New(99), testLogger())
	r2 := NewResolver(randutil.New(99), testLogger())

	a, err := r1.Resolve(state, Action{Type: Call})
	require.NoError(t, err)
	b, err := r2.Resolve(state, Action{Type: Call})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
