package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// InsufficientCardsError is returned when a draw asks for more cards than
// the deck has left. It indicates a misconfigured scenario build, not a
// recoverable condition.
type InsufficientCardsError struct {
	Requested int
	Remaining int
}

func (e *InsufficientCardsError) Error() string {
	return fmt.Sprintf("insufficient cards in deck: requested %d, %d remaining", e.Requested, e.Remaining)
}

// Deck is a shuffled 52-card deck consumed without replacement. One Deck
// instance backs one scenario build, which is what guarantees hole and
// board cards never overlap.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a new shuffled deck using the provided random source.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}

	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}

	d.shuffle()
	return d
}

// shuffle randomizes the deck order using Fisher-Yates
func (d *Deck) shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns n cards from the front of the deck.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, &InsufficientCardsError{Requested: n, Remaining: len(d.cards)}
	}

	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards, nil
}

// Take removes the named cards from the deck, wherever they sit. It is used
// when a scenario forces specific hole cards and the rest of the build must
// still deal from the remainder.
func (d *Deck) Take(cards ...Card) error {
	for _, want := range cards {
		found := false
		for i, c := range d.cards {
			if c == want {
				d.cards = append(d.cards[:i], d.cards[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("card %s is not in the deck", want)
		}
	}
	return nil
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
