package game

// LegalActions returns the set of action types valid for the state.
//
// The rule table: with nothing to call the hero may check or bet; facing a
// bet they may fold, call or raise. Folding with nothing to call is a
// no-op and excluded.
func LegalActions(s GameState) ([]ActionType, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if s.BetToCall == 0 {
		return []ActionType{Check, Bet}, nil
	}
	return []ActionType{Fold, Call, Raise}, nil
}

// PotOdds returns bet_to_call / (pot + bet_to_call), the fraction of the
// resulting pot the hero pays to continue. Zero when there is no bet.
func PotOdds(s GameState) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s.BetToCall == 0 {
		return 0, nil
	}
	return s.BetToCall / (s.Pot + s.BetToCall), nil
}

// RequiredEquity returns the break-even equity threshold for continuing,
// which for a single decision point is the pot odds.
func RequiredEquity(s GameState) (float64, error) {
	return PotOdds(s)
}

// actionLegal reports whether the action's type is in the legal set and
// its amount is coherent.
func actionLegal(s GameState, a Action, legal []ActionType) bool {
	found := false
	for _, t := range legal {
		if t == a.Type {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	switch a.Type {
	case Bet:
		return a.Amount > 0
	case Raise:
		// A raise is a total target and must exceed the bet it raises.
		return a.Amount > s.BetToCall
	default:
		return true
	}
}
