package advisor

import (
	"context"
	"fmt"

	"github.com/lox/pokercoach/internal/game"
)

// MathAdvisor reasons purely from pot odds: a cheap call is almost always
// worth taking, an expensive one almost never is, and in between it leans on
// hand strength as a tiebreaker.
type MathAdvisor struct{}

func NewMathAdvisor() *MathAdvisor { return &MathAdvisor{} }

func (a *MathAdvisor) Name() string { return "math" }

const (
	cheapPotOdds     = 0.25
	expensivePotOdds = 0.5
)

func (a *MathAdvisor) Advise(_ context.Context, snap Snapshot) (Recommendation, error) {
	rec := Recommendation{Source: a.Name()}
	s := snap.State

	if !snap.FacingBet() {
		category := game.CategorizeHoleCards(s.HoleCards[0], s.HoleCards[1])
		if category == game.CategoryPremium || category == game.CategoryStrong {
			rec.Action = game.Action{Type: game.Bet, Amount: betSize(s)}
			rec.Rationale = "no price to pay and a hand worth building a pot with"
			rec.Confidence = 0.7
		} else {
			rec.Action = game.Action{Type: game.Check}
			rec.Rationale = "free card available, no reason to decline it"
			rec.Confidence = 0.65
		}
		return rec, nil
	}

	switch {
	case snap.PotOdds < cheapPotOdds:
		rec.Action = game.Action{Type: game.Call}
		rec.Rationale = fmt.Sprintf("pot odds %.1f%% make this call cheap relative to the pot", snap.PotOdds*100)
		rec.Confidence = 0.8

	case snap.PotOdds > expensivePotOdds:
		rec.Action = game.Action{Type: game.Fold}
		rec.Rationale = fmt.Sprintf("pot odds %.1f%% demand more equity than most hands have", snap.PotOdds*100)
		rec.Confidence = 0.75

	default:
		category := game.CategorizeHoleCards(s.HoleCards[0], s.HoleCards[1])
		if category == game.CategoryPremium || category == game.CategoryStrong {
			rec.Action = game.Action{Type: game.Call}
			rec.Rationale = fmt.Sprintf("pot odds %.1f%% are fair and the hand clears the bar", snap.PotOdds*100)
			rec.Confidence = 0.6
		} else {
			rec.Action = game.Action{Type: game.Fold}
			rec.Rationale = fmt.Sprintf("pot odds %.1f%% are fair but the hand is below the bar", snap.PotOdds*100)
			rec.Confidence = 0.55
		}
	}

	return rec, nil
}
