package advisor

import (
	"context"
	"fmt"
	"math"

	"github.com/lox/pokercoach/internal/game"
)

// RulesAdvisor plays a tight-aggressive chart keyed on hole card category:
// raise premiums, continue with strength, fold the rest when it costs chips.
type RulesAdvisor struct{}

func NewRulesAdvisor() *RulesAdvisor { return &RulesAdvisor{} }

func (a *RulesAdvisor) Name() string { return "rules" }

func (a *RulesAdvisor) Advise(_ context.Context, snap Snapshot) (Recommendation, error) {
	s := snap.State
	category := game.CategorizeHoleCards(s.HoleCards[0], s.HoleCards[1])

	rec := Recommendation{Source: a.Name()}

	switch category {
	case game.CategoryPremium:
		if snap.FacingBet() {
			rec.Action = game.Action{Type: game.Raise, Amount: raiseTo(s)}
			rec.Rationale = fmt.Sprintf("%s is a premium holding, raise for value", category)
		} else {
			rec.Action = game.Action{Type: game.Bet, Amount: betSize(s)}
			rec.Rationale = fmt.Sprintf("%s is a premium holding, bet for value", category)
		}
		rec.Confidence = 0.9

	case game.CategoryStrong:
		if snap.FacingBet() {
			rec.Action = game.Action{Type: game.Call}
			rec.Rationale = fmt.Sprintf("%s hand plays well as a call", category)
		} else {
			rec.Action = game.Action{Type: game.Bet, Amount: betSize(s)}
			rec.Rationale = fmt.Sprintf("%s hand, take the initiative", category)
		}
		rec.Confidence = 0.75

	case game.CategoryMedium:
		if snap.FacingBet() {
			if snap.PotOdds < 0.3 {
				rec.Action = game.Action{Type: game.Call}
				rec.Rationale = "medium strength but the price is right"
				rec.Confidence = 0.6
			} else {
				rec.Action = game.Action{Type: game.Fold}
				rec.Rationale = "medium strength cannot pay this much"
				rec.Confidence = 0.65
			}
		} else {
			rec.Action = game.Action{Type: game.Check}
			rec.Rationale = "medium strength, keep the pot small"
			rec.Confidence = 0.6
		}

	default: // Weak, Trash
		if snap.FacingBet() {
			rec.Action = game.Action{Type: game.Fold}
			rec.Rationale = fmt.Sprintf("%s hand, let it go", category)
			rec.Confidence = 0.8
		} else {
			rec.Action = game.Action{Type: game.Check}
			rec.Rationale = fmt.Sprintf("%s hand, see a free card", category)
			rec.Confidence = 0.7
		}
	}

	return rec, nil
}

// raiseTo sizes a raise to roughly three times the bet faced, capped at the
// hero's stack.
func raiseTo(s game.GameState) float64 {
	amount := math.Round(s.BetToCall * 3)
	if amount <= s.BetToCall {
		amount = s.BetToCall + 1
	}
	if amount > s.Stack {
		amount = s.Stack
	}
	return amount
}

// betSize opens for about two thirds of the pot, capped at the stack.
func betSize(s game.GameState) float64 {
	amount := math.Round(s.Pot * 2 / 3)
	if amount < 1 {
		amount = 1
	}
	if amount > s.Stack {
		amount = s.Stack
	}
	return amount
}
