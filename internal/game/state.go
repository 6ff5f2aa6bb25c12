// Package game models a single No-Limit Hold'em decision point: the state
// the hero faces, the actions the rules allow, and a simulated resolution
// of the action they choose.
package game

import (
	"fmt"
	"strings"

	"github.com/lox/pokercoach/internal/deck"
)

// Position represents the hero's seat at a 6-max table
type Position int

const (
	UTG Position = iota
	MP
	CO
	BTN
	SB
	BB
)

// Positions lists all 6-max positions in action order.
var Positions = []Position{UTG, MP, CO, BTN, SB, BB}

// String returns the string representation of a position
func (p Position) String() string {
	switch p {
	case UTG:
		return "UTG"
	case MP:
		return "MP"
	case CO:
		return "CO"
	case BTN:
		return "BTN"
	case SB:
		return "SB"
	case BB:
		return "BB"
	default:
		return "Unknown"
	}
}

// IsLate returns true for the seats that act last post-flop.
func (p Position) IsLate() bool {
	return p == CO || p == BTN
}

// ParsePosition converts a string like "btn" to a Position.
func ParsePosition(s string) (Position, error) {
	for _, p := range Positions {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

// Street represents the stage of the hand being modeled. It is fixed for
// the life of a GameState; there is no street advancement here.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// String returns the string representation of a street
func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// BoardCards returns how many board cards the street requires.
func (s Street) BoardCards() int {
	switch s {
	case Flop:
		return 3
	case Turn:
		return 4
	case River:
		return 5
	default:
		return 0
	}
}

// ParseStreet converts a string like "flop" to a Street.
func ParseStreet(s string) (Street, error) {
	switch strings.ToLower(s) {
	case "preflop", "pre-flop":
		return Preflop, nil
	case "flop":
		return Flop, nil
	case "turn":
		return Turn, nil
	case "river":
		return River, nil
	default:
		return 0, fmt.Errorf("unknown street %q", s)
	}
}

// GameState is the hero's view of a single decision point. It is created
// once per hand by the scenario generator and read-only afterwards; the
// resolver derives results from it without mutating it.
type GameState struct {
	Position  Position
	Street    Street
	HoleCards [2]deck.Card
	Board     []deck.Card
	Pot       float64
	Stack     float64
	BetToCall float64
	Opponents int

	// Degraded marks a scenario whose archetype constraint could not be
	// satisfied within the rejection-sampling bound. The state is still
	// legally valid.
	Degraded bool
}

// Validate checks the invariants that generated states always satisfy but
// hand-constructed states may not.
func (s GameState) Validate() error {
	if s.Pot < 0 {
		return &DegenerateStateError{Reason: fmt.Sprintf("pot size %.2f is negative", s.Pot)}
	}
	if s.Stack < 0 {
		return &DegenerateStateError{Reason: fmt.Sprintf("stack size %.2f is negative", s.Stack)}
	}
	if s.BetToCall < 0 {
		return &DegenerateStateError{Reason: fmt.Sprintf("bet to call %.2f is negative", s.BetToCall)}
	}
	if s.BetToCall > s.Stack {
		return &DegenerateStateError{Reason: fmt.Sprintf("bet to call %.2f exceeds stack %.2f", s.BetToCall, s.Stack)}
	}
	if s.Opponents < 1 {
		return &DegenerateStateError{Reason: fmt.Sprintf("opponent count %d below 1", s.Opponents)}
	}
	if got, want := len(s.Board), s.Street.BoardCards(); got != want {
		return &DegenerateStateError{Reason: fmt.Sprintf("%s requires %d board cards, got %d", s.Street, want, got)}
	}

	seen := map[deck.Card]bool{
		s.HoleCards[0]: true,
	}
	if seen[s.HoleCards[1]] {
		return &DegenerateStateError{Reason: fmt.Sprintf("duplicate hole card %s", s.HoleCards[1])}
	}
	seen[s.HoleCards[1]] = true
	for _, c := range s.Board {
		if seen[c] {
			return &DegenerateStateError{Reason: fmt.Sprintf("card %s appears more than once", c)}
		}
		seen[c] = true
	}

	return nil
}

// Outcome classifies how a resolved hand ended for the hero.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLoss
	OutcomeFold
	// OutcomeBust is a loss that would have taken the stack below zero;
	// the stack is clamped to zero instead.
	OutcomeBust
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomeFold:
		return "fold"
	case OutcomeBust:
		return "bust"
	default:
		return "unknown"
	}
}
