package game

import (
	"math"
	rand "math/rand/v2"

	poker "github.com/paulhankin/poker"

	"github.com/lox/pokercoach/internal/deck"
)

// strengthSamples bounds the opponent-hand sampling used for the post-flop
// strength proxy. This is a coarse estimate against random holdings, not a
// range-aware equity calculation.
const strengthSamples = 200

// toEval converts a card to the evaluator's representation (aces low = 1).
func toEval(c deck.Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}

	r := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	}

	card, _ := poker.MakeCard(s, r)
	return card
}

// evalHand scores a 5, 6 or 7 card hand. Higher is stronger.
func evalHand(cards []poker.Card) int16 {
	switch len(cards) {
	case 5:
		var a5 [5]poker.Card
		copy(a5[:], cards)
		return poker.Eval5(&a5)
	case 6:
		// Best five of six: drop each card in turn.
		best := int16(math.MinInt16)
		var a5 [5]poker.Card
		for drop := 0; drop < 6; drop++ {
			i := 0
			for j, c := range cards {
				if j == drop {
					continue
				}
				a5[i] = c
				i++
			}
			if score := poker.Eval5(&a5); score > best {
				best = score
			}
		}
		return best
	case 7:
		var a7 [7]poker.Card
		copy(a7[:], cards)
		return poker.Eval7(&a7)
	default:
		return 0
	}
}

// postflopStrength estimates the chance the hero's made hand beats one
// opponent holding two random cards from the remaining deck.
func postflopStrength(s GameState, rng *rand.Rand) float64 {
	known := map[deck.Card]bool{
		s.HoleCards[0]: true,
		s.HoleCards[1]: true,
	}
	board := make([]poker.Card, 0, 5)
	for _, c := range s.Board {
		known[c] = true
		board = append(board, toEval(c))
	}

	remaining := make([]poker.Card, 0, 52)
	for suit := deck.Spades; suit <= deck.Clubs; suit++ {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			c := deck.NewCard(rank, suit)
			if !known[c] {
				remaining = append(remaining, toEval(c))
			}
		}
	}

	hero := evalHand(append([]poker.Card{toEval(s.HoleCards[0]), toEval(s.HoleCards[1])}, board...))

	var score float64
	villain := make([]poker.Card, 0, 7)
	for i := 0; i < strengthSamples; i++ {
		a := rng.IntN(len(remaining))
		b := rng.IntN(len(remaining) - 1)
		if b >= a {
			b++
		}

		villain = villain[:0]
		villain = append(villain, remaining[a], remaining[b])
		villain = append(villain, board...)

		switch v := evalHand(villain); {
		case hero > v:
			score += 1
		case hero == v:
			score += 0.5
		}
	}

	return score / strengthSamples
}

// WinProbability computes the probability the outcome simulator uses to
// decide win versus loss. It blends the hand-strength proxy with position,
// the action's aggression, and a monotone penalty per extra opponent.
func WinProbability(s GameState, a Action, rng *rand.Rand) float64 {
	var strength float64
	if s.Street == Preflop {
		strength = preflopStrength(s.HoleCards[0], s.HoleCards[1])
	} else {
		strength = postflopStrength(s, rng)
	}

	// Every additional live opponent compounds the chance of being beaten.
	p := math.Pow(strength, float64(s.Opponents))

	if s.Position.IsLate() {
		p += 0.05
	}
	if a.Type == Bet || a.Type == Raise {
		// Aggression buys fold equity the proxy can't see.
		p += 0.05
	}

	return math.Min(0.98, math.Max(0.02, p))
}
