package game

import "github.com/lox/pokercoach/internal/deck"

// HoleCardCategory represents the pre-flop strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
)

// CategorizeHoleCards provides a simple preflop hand categorization.
// Categories: Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77-99, suited
// broadway), Weak (small pairs, suited connectors), Trash (everything else).
func CategorizeHoleCards(card1, card2 deck.Card) HoleCardCategory {
	small, big := card1.Rank, card2.Rank
	if small > big {
		small, big = big, small
	}
	suited := card1.Suit == card2.Suit
	isPair := small == big

	if isPair && small >= deck.Jack {
		return CategoryPremium
	}
	if big == deck.Ace && small == deck.King {
		return CategoryPremium
	}

	if isPair && small == deck.Ten {
		return CategoryStrong
	}
	if big == deck.Ace && (small == deck.Queen || small == deck.Jack) {
		return CategoryStrong
	}

	if isPair && small >= deck.Seven {
		return CategoryMedium
	}
	if suited && small >= deck.Ten {
		return CategoryMedium
	}

	if isPair {
		return CategoryWeak
	}
	if suited && int(big)-int(small) <= 2 {
		return CategoryWeak
	}

	return CategoryTrash
}

// preflopStrength maps a category to the win-probability proxy used by the
// outcome simulator before any board cards exist.
func preflopStrength(card1, card2 deck.Card) float64 {
	switch CategorizeHoleCards(card1, card2) {
	case CategoryPremium:
		return 0.85
	case CategoryStrong:
		return 0.75
	case CategoryMedium:
		return 0.65
	case CategoryWeak:
		return 0.52
	default:
		return 0.40
	}
}
