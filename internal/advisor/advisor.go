// Package advisor defines the advisor interface and the built-in advisors
// that recommend an action for a decision point. Advisors are independent:
// each sees the same snapshot and returns a recommendation with a confidence,
// and the consensus package merges them.
package advisor

import (
	"context"
	"fmt"

	"github.com/lox/pokercoach/internal/game"
)

// Recommendation is a single advisor's opinion on a decision point.
type Recommendation struct {
	Source     string
	Action     game.Action
	Rationale  string
	Confidence float64 // 0..1
}

func (r Recommendation) String() string {
	return fmt.Sprintf("%s: %s (%.0f%%) %s", r.Source, r.Action, r.Confidence*100, r.Rationale)
}

// Snapshot is the read-only view of a decision point handed to advisors.
// The derived pot math is precomputed so every advisor reasons from the
// same numbers.
type Snapshot struct {
	State          game.GameState
	Legal          []game.ActionType
	PotOdds        float64
	RequiredEquity float64
}

// NewSnapshot derives the legal actions and pot math for s.
func NewSnapshot(s game.GameState) (Snapshot, error) {
	legal, err := game.LegalActions(s)
	if err != nil {
		return Snapshot{}, err
	}
	potOdds, err := game.PotOdds(s)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		State:          s,
		Legal:          legal,
		PotOdds:        potOdds,
		RequiredEquity: potOdds,
	}, nil
}

// FacingBet reports whether the hero must put in chips to continue.
func (s Snapshot) FacingBet() bool {
	return s.State.BetToCall > 0
}

// Advisor produces a recommendation for a decision point. Implementations
// must honor ctx cancellation; slow advisors are cut off by the pool.
type Advisor interface {
	Name() string
	Advise(ctx context.Context, snap Snapshot) (Recommendation, error)
}
