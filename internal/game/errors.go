package game

import (
	"fmt"
	"strings"
)

// DegenerateStateError reports a GameState that violates the construction
// invariants. Generated states never trip it; hand-built states supplied
// through the custom-scenario path can.
type DegenerateStateError struct {
	Reason string
}

func (e *DegenerateStateError) Error() string {
	return fmt.Sprintf("degenerate game state: %s", e.Reason)
}

// IllegalActionError reports an action outside the state's legal action
// set. The hand is untouched; the caller may retry with a legal action.
type IllegalActionError struct {
	Action Action
	Legal  []ActionType
}

func (e *IllegalActionError) Error() string {
	names := make([]string, len(e.Legal))
	for i, a := range e.Legal {
		names[i] = a.String()
	}
	return fmt.Sprintf("illegal action %s: legal actions are %s", e.Action, strings.Join(names, ", "))
}
