package scenario

import (
	"fmt"
	"sort"

	"github.com/lox/pokercoach/internal/deck"
	"github.com/lox/pokercoach/internal/game"
)

// Preset is a hand-authored scenario with fixed cards and pot math, used for
// practicing a specific kind of decision on demand.
type Preset struct {
	Description string
	Position    game.Position
	Street      game.Street
	HoleCards   string
	Pot         float64
	BetToCall   float64
	Opponents   int
}

var presets = map[string]Preset{
	"premium_pair": {
		Description: "Aces on the button facing a raise",
		Position:    game.BTN,
		Street:      game.Preflop,
		HoleCards:   "AhAs",
		Pot:         15,
		BetToCall:   10,
		Opponents:   2,
	},
	"tough_decision": {
		Description: "Big ace out of position against a squeeze",
		Position:    game.BB,
		Street:      game.Preflop,
		HoleCards:   "AhQd",
		Pot:         20,
		BetToCall:   15,
		Opponents:   3,
	},
	"bluff_spot": {
		Description: "Suited connectors in the cutoff, checked to you",
		Position:    game.CO,
		Street:      game.Flop,
		HoleCards:   "7h8h",
		Pot:         12,
		BetToCall:   0,
		Opponents:   2,
	},
	"pocket_pair": {
		Description: "Middle pair in a multiway pot",
		Position:    game.MP,
		Street:      game.Preflop,
		HoleCards:   "9h9d",
		Pot:         8,
		BetToCall:   4,
		Opponents:   4,
	},
	"drawing_hand": {
		Description: "Suited one-gapper on the flop facing a bet",
		Position:    game.CO,
		Street:      game.Flop,
		HoleCards:   "Th9h",
		Pot:         10,
		BetToCall:   5,
		Opponents:   2,
	},
}

// PresetNames returns the available preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset builds the named preset scenario. Board cards, where the preset's
// street needs them, still come from the generator's RNG.
func (g *Generator) Preset(name string) (game.GameState, error) {
	p, ok := presets[name]
	if !ok {
		return game.GameState{}, fmt.Errorf("unknown preset %q (available: %v)", name, PresetNames())
	}

	hole := deck.MustParseCards(p.HoleCards)
	d := deck.New(g.rng)
	if err := d.Take(hole...); err != nil {
		return game.GameState{}, fmt.Errorf("taking preset cards: %w", err)
	}

	s := game.GameState{
		Position:  p.Position,
		Street:    p.Street,
		HoleCards: [2]deck.Card{hole[0], hole[1]},
		Pot:       p.Pot,
		Stack:     100,
		BetToCall: p.BetToCall,
		Opponents: p.Opponents,
	}

	if n := p.Street.BoardCards(); n > 0 {
		board, err := d.Draw(n)
		if err != nil {
			return game.GameState{}, fmt.Errorf("dealing board: %w", err)
		}
		s.Board = board
	}

	if err := s.Validate(); err != nil {
		return game.GameState{}, fmt.Errorf("preset state: %w", err)
	}
	return s, nil
}
