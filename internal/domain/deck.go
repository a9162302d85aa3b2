package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// NewDeck builds count standard 52-card decks pooled together, in suit/rank
// order. Card ids are issued by a counter local to this call, so decks built
// by separate calls never interfere with each other.
func NewDeck(count int) []Card {
	if count < 1 {
		count = 1
	}
	next := 0
	deck := make([]Card, 0, count*52)
	for copyIdx := 0; copyIdx < count; copyIdx++ {
		for _, s := range Suits {
			for _, r := range Ranks {
				deck = append(deck, Card{
					ID:   fmt.Sprintf("%s-%s-%d", r, s, next),
					Suit: s,
					Rank: r,
				})
				next++
			}
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck. A nil rng falls back
// to a time-seeded source; tests pass a seeded rng for reproducible deals.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// RemoveCard removes the card with the given id from a hand. The second
// return reports whether the card was found.
func RemoveCard(hand []Card, cardID string) ([]Card, Card, bool) {
	for i, c := range hand {
		if c.ID == cardID {
			out := make([]Card, 0, len(hand)-1)
			out = append(out, hand[:i]...)
			out = append(out, hand[i+1:]...)
			return out, c, true
		}
	}
	return hand, Card{}, false
}

// FindCard returns the card with the given id from a hand, if present.
func FindCard(hand []Card, cardID string) (Card, bool) {
	for _, c := range hand {
		if c.ID == cardID {
			return c, true
		}
	}
	return Card{}, false
}
