package crazyeights

import (
	"math/rand"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/domain"
)

const (
	// HandSize is the number of cards dealt to each player.
	HandSize = 5
	// penaltyDraw is the number of cards a played 2 forces on the next player.
	penaltyDraw = 2
)

// deckCount pools two decks once a fifth player sits down.
func deckCount(players int) int {
	if players >= 5 {
		return 2
	}
	return 1
}

// topDiscard returns the face-up card on the discard pile.
func topDiscard(pile []domain.Card) (domain.Card, bool) {
	if len(pile) == 0 {
		return domain.Card{}, false
	}
	return pile[len(pile)-1], true
}

// IsPlayable reports whether a card may be played against the active suit
// and the top discard. Eights are always playable.
func IsPlayable(card domain.Card, activeSuit domain.Suit, top domain.Card) bool {
	if card.Rank == domain.RankEight {
		return true
	}
	return card.Suit == activeSuit || card.Rank == top.Rank
}

// LegalPlays computes every card the player may currently play.
func LegalPlays(state domain.RoomState, playerID string) []domain.Card {
	top, ok := topDiscard(state.DiscardPile)
	if !ok {
		return nil
	}
	var out []domain.Card
	for _, c := range state.Hands[playerID] {
		if IsPlayable(c, state.ActiveSuit, top) {
			out = append(out, c)
		}
	}
	return out
}

// replenishDrawPile reshuffles the discard pile under its top card into a
// fresh draw pile when the draw pile is empty and more than one card sits
// in discard. Returns the updated piles.
func replenishDrawPile(draw, discard []domain.Card, rng *rand.Rand) ([]domain.Card, []domain.Card) {
	if len(draw) > 0 || len(discard) <= 1 {
		return draw, discard
	}
	top := discard[len(discard)-1]
	draw = domain.ShuffleDeck(discard[:len(discard)-1], rng)
	return draw, []domain.Card{top}
}

// drawFromPile pops up to n cards off the draw pile into the hand,
// replenishing from discard as needed. Returns the updated hand and piles
// plus the number of cards actually drawn.
func drawFromPile(hand, draw, discard []domain.Card, n int, rng *rand.Rand) ([]domain.Card, []domain.Card, []domain.Card, int) {
	drawn := 0
	for i := 0; i < n; i++ {
		draw, discard = replenishDrawPile(draw, discard, rng)
		if len(draw) == 0 {
			break
		}
		hand = append(hand, draw[len(draw)-1])
		draw = draw[:len(draw)-1]
		drawn++
	}
	return hand, draw, discard, drawn
}
