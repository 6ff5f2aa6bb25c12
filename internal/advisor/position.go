package advisor

import (
	"context"
	"fmt"

	"github.com/lox/pokercoach/internal/game"
)

// PositionAdvisor weighs seat and field size: late position against few
// opponents rewards aggression, early position against a full table rewards
// caution.
type PositionAdvisor struct{}

func NewPositionAdvisor() *PositionAdvisor { return &PositionAdvisor{} }

func (a *PositionAdvisor) Name() string { return "position" }

func (a *PositionAdvisor) Advise(_ context.Context, snap Snapshot) (Recommendation, error) {
	rec := Recommendation{Source: a.Name()}
	s := snap.State

	late := s.Position.IsLate()
	shorthanded := s.Opponents <= 2

	switch {
	case late && shorthanded && !snap.FacingBet():
		rec.Action = game.Action{Type: game.Bet, Amount: betSize(s)}
		rec.Rationale = fmt.Sprintf("%s against %d opponent(s) is a spot to attack", s.Position, s.Opponents)
		rec.Confidence = 0.7

	case late && snap.FacingBet() && snap.PotOdds < 0.35:
		rec.Action = game.Action{Type: game.Call}
		rec.Rationale = fmt.Sprintf("%s lets you realize equity cheaply behind the field", s.Position)
		rec.Confidence = 0.6

	case !late && s.Opponents >= 3 && snap.FacingBet():
		rec.Action = game.Action{Type: game.Fold}
		rec.Rationale = fmt.Sprintf("%s into %d opponents is no place for thin continues", s.Position, s.Opponents)
		rec.Confidence = 0.65

	case snap.FacingBet():
		rec.Action = game.Action{Type: game.Call}
		rec.Rationale = "position is neutral here, continue at a fair price"
		rec.Confidence = 0.5

	default:
		rec.Action = game.Action{Type: game.Check}
		rec.Rationale = "position is neutral here, take the free card"
		rec.Confidence = 0.5
	}

	return rec, nil
}
