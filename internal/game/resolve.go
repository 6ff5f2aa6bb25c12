package game

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
)

// Result is the resolver's terminal view of a hand. The input GameState is
// never mutated; session bookkeeping happens downstream.
type Result struct {
	Outcome        Outcome
	StackDelta     float64
	WinProbability float64
	Committed      float64
}

// Resolver applies a chosen action to a state and simulates the outcome.
type Resolver struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewResolver creates a resolver using the provided random source.
func NewResolver(rng *rand.Rand, logger *log.Logger) *Resolver {
	return &Resolver{rng: rng, logger: logger.WithPrefix("resolver")}
}

// Resolve validates the action against the state's legal set, simulates a
// win/loss/fold outcome, and computes the stack delta. Validation failures
// leave no partial effects.
func (r *Resolver) Resolve(s GameState, a Action) (Result, error) {
	legal, err := LegalActions(s)
	if err != nil {
		return Result{}, err
	}
	if !actionLegal(s, a, legal) {
		return Result{}, &IllegalActionError{Action: a, Legal: legal}
	}

	// Folding surrenders only what is already in the pot; nothing more is
	// committed at this decision point.
	if a.Type == Fold {
		r.logger.Debug("hand folded", "position", s.Position, "pot", s.Pot)
		return Result{Outcome: OutcomeFold, StackDelta: 0}, nil
	}

	committed := committedAmount(s, a)
	winProb := WinProbability(s, a, r.rng)

	result := Result{WinProbability: winProb, Committed: committed}
	if r.rng.Float64() < winProb {
		result.Outcome = OutcomeWin
		result.StackDelta = s.Pot + matchedAmount(a)
	} else {
		result.Outcome = OutcomeLoss
		result.StackDelta = -committed
	}

	// The stack can never go negative: clamp and mark the hand a bust.
	if s.Stack+result.StackDelta < 0 {
		result.StackDelta = -s.Stack
		result.Outcome = OutcomeBust
	}

	r.logger.Debug("hand resolved",
		"action", a,
		"outcome", result.Outcome,
		"winProb", winProb,
		"delta", result.StackDelta)

	return result, nil
}

// committedAmount is what the action puts at risk: the call price for a
// call, the full amount for a bet or raise, nothing for a check.
func committedAmount(s GameState, a Action) float64 {
	switch a.Type {
	case Call:
		return s.BetToCall
	case Bet, Raise:
		return a.Amount
	default:
		return 0
	}
}

// matchedAmount models the extra chips opponents put in to pay off a
// winning bet or raise, proportional to its size. Calls and checks win
// only the existing pot.
func matchedAmount(a Action) float64 {
	if a.Type == Bet || a.Type == Raise {
		return a.Amount
	}
	return 0
}
