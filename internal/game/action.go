package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ActionType represents the kind of action the hero can take
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Bet
	Raise
)

// String returns the string representation of an action type
func (a ActionType) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// Action is a chosen action. Amount is only meaningful for Bet and Raise:
// for Bet it is the new bet size, for Raise the total target the hero
// raises to (not an increment).
type Action struct {
	Type   ActionType
	Amount float64
}

// String returns the string representation of an action
func (a Action) String() string {
	if a.Type == Bet || a.Type == Raise {
		return fmt.Sprintf("%s %.1f", a.Type, a.Amount)
	}
	return a.Type.String()
}

// ParseAction parses user input like "fold", "bet 10" or "raise 25".
func ParseAction(input string) (Action, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("empty action")
	}

	switch fields[0] {
	case "fold":
		return Action{Type: Fold}, nil
	case "check":
		return Action{Type: Check}, nil
	case "call":
		return Action{Type: Call}, nil
	case "bet", "raise":
		typ := Bet
		if fields[0] == "raise" {
			typ = Raise
		}
		if len(fields) < 2 {
			return Action{}, fmt.Errorf("%s requires an amount", fields[0])
		}
		amount, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Action{}, fmt.Errorf("invalid %s amount %q", fields[0], fields[1])
		}
		return Action{Type: typ, Amount: amount}, nil
	default:
		return Action{}, fmt.Errorf("unknown action %q", fields[0])
	}
}
