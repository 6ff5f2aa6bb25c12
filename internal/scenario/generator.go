// Package scenario generates randomized but coherent decision points: a
// position, a street, hole cards, a board sized to the street, and pot math
// that could plausibly have arisen in a real hand.
package scenario

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pokercoach/internal/deck"
	"github.com/lox/pokercoach/internal/game"
)

// maxArchetypeTries bounds rejection sampling for archetype constraints.
// All candidate pairs come out of the same deck, so a scenario can never
// contain a duplicate card regardless of how many pairs were rejected.
const maxArchetypeTries = 10

// Constraints narrows what Generate may produce. Nil/zero fields are
// randomized.
type Constraints struct {
	Position  *game.Position
	Street    *game.Street
	Archetype string // "", "random", "premium_pair", "pocket_pair", "drawing_hand", "marginal_hand"
	HoleCards []deck.Card
	Stack     float64
}

// Generator produces game states from an injected RNG, so a fixed seed
// replays the same scenarios.
type Generator struct {
	rng    *rand.Rand
	logger *log.Logger
}

func NewGenerator(rng *rand.Rand, logger *log.Logger) *Generator {
	return &Generator{
		rng:    rng,
		logger: logger.WithPrefix("scenario"),
	}
}

// Generate builds a random decision point honoring c. If an archetype
// constraint cannot be satisfied within the sampling bound, the last
// candidate is used and the state is flagged Degraded.
func (g *Generator) Generate(c Constraints) (game.GameState, error) {
	d := deck.New(g.rng)

	var s game.GameState

	if c.Position != nil {
		s.Position = *c.Position
	} else {
		s.Position = game.Positions[g.rng.IntN(len(game.Positions))]
	}

	if c.Street != nil {
		s.Street = *c.Street
	} else {
		s.Street = g.randomStreet()
	}

	hole, degraded, err := g.dealHoleCards(d, c)
	if err != nil {
		return game.GameState{}, err
	}
	s.HoleCards = hole
	s.Degraded = degraded

	if n := s.Street.BoardCards(); n > 0 {
		board, err := d.Draw(n)
		if err != nil {
			return game.GameState{}, fmt.Errorf("dealing board: %w", err)
		}
		s.Board = board
	}

	s.Stack = c.Stack
	if s.Stack <= 0 {
		s.Stack = 100
	}

	s.Pot = g.randomPot(s.Position, s.Street)
	s.Opponents = g.randomOpponents(s.Position)
	s.BetToCall = g.randomBet(s.Pot, s.Stack)

	if err := s.Validate(); err != nil {
		return game.GameState{}, fmt.Errorf("generated state: %w", err)
	}

	g.logger.Debug("generated scenario",
		"position", s.Position,
		"street", s.Street,
		"cards", deck.FormatCards(s.HoleCards[:]),
		"pot", s.Pot,
		"bet", s.BetToCall,
		"opponents", s.Opponents,
		"degraded", s.Degraded)

	return s, nil
}

func (g *Generator) dealHoleCards(d *deck.Deck, c Constraints) ([2]deck.Card, bool, error) {
	if len(c.HoleCards) > 0 {
		if len(c.HoleCards) != 2 {
			return [2]deck.Card{}, false, fmt.Errorf("expected 2 hole cards, got %d", len(c.HoleCards))
		}
		if err := d.Take(c.HoleCards...); err != nil {
			return [2]deck.Card{}, false, fmt.Errorf("taking hole cards: %w", err)
		}
		return [2]deck.Card{c.HoleCards[0], c.HoleCards[1]}, false, nil
	}

	match, err := archetypeMatcher(c.Archetype)
	if err != nil {
		return [2]deck.Card{}, false, err
	}

	var last [2]deck.Card
	for try := 0; try < maxArchetypeTries; try++ {
		cards, err := d.Draw(2)
		if err != nil {
			return [2]deck.Card{}, false, fmt.Errorf("dealing hole cards: %w", err)
		}
		last = [2]deck.Card{cards[0], cards[1]}
		if match(last[0], last[1]) {
			return last, false, nil
		}
	}

	g.logger.Debug("archetype constraint not satisfied, using last draw",
		"archetype", c.Archetype,
		"cards", deck.FormatCards(last[:]))
	return last, true, nil
}

func archetypeMatcher(name string) (func(a, b deck.Card) bool, error) {
	switch name {
	case "", "random":
		return func(a, b deck.Card) bool { return true }, nil
	case "premium_pair":
		return func(a, b deck.Card) bool {
			return a.Rank == b.Rank && a.Rank >= deck.Jack
		}, nil
	case "pocket_pair":
		return func(a, b deck.Card) bool { return a.Rank == b.Rank }, nil
	case "drawing_hand":
		return func(a, b deck.Card) bool {
			if a.Rank == b.Rank || a.Suit != b.Suit {
				return false
			}
			gap := int(a.Rank) - int(b.Rank)
			if gap < 0 {
				gap = -gap
			}
			return gap <= 2
		}, nil
	case "marginal_hand":
		return func(a, b deck.Card) bool {
			switch game.CategorizeHoleCards(a, b) {
			case game.CategoryMedium, game.CategoryWeak:
				return true
			}
			return false
		}, nil
	}
	return nil, fmt.Errorf("unknown archetype %q", name)
}

// randomStreet is preflop-weighted: most interesting decisions in a short
// coaching session are opening decisions.
func (g *Generator) randomStreet() game.Street {
	switch r := g.rng.Float64(); {
	case r < 0.60:
		return game.Preflop
	case r < 0.75:
		return game.Flop
	case r < 0.90:
		return game.Turn
	default:
		return game.River
	}
}

// randomPot scales with how much action precedes the decision: later streets
// and later positions have seen more chips go in.
func (g *Generator) randomPot(p game.Position, st game.Street) float64 {
	pot := 5 + g.rng.Float64()*20
	pot *= 1 + 0.5*float64(st)
	if p.IsLate() || p == game.SB || p == game.BB {
		pot *= 1 + 0.2*g.rng.Float64()
	}
	return roundHalf(pot)
}

// randomOpponents reflects players still to act: early position faces a
// fuller table, late position a thinner one.
func (g *Generator) randomOpponents(p game.Position) int {
	if p.IsLate() {
		return 1 + g.rng.IntN(3)
	}
	return 1 + g.rng.IntN(4)
}

// randomBet is zero roughly half the time (unopened pot); otherwise a
// fraction of the pot, capped by the hero's stack.
func (g *Generator) randomBet(pot, stack float64) float64 {
	if g.rng.Float64() < 0.5 {
		return 0
	}
	bet := pot * (0.3 + 0.5*g.rng.Float64())
	bet = roundHalf(bet)
	if bet > stack {
		bet = stack
	}
	if bet < 0.5 {
		bet = 0.5
	}
	return bet
}

func roundHalf(x float64) float64 {
	return math.Round(x*2) / 2
}
