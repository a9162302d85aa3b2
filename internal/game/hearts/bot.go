package hearts

import (
	"github.com/Fantomex10/foxysgamehub-sub000/internal/domain"
)

// BotAction decides the bot's next move: lead low, follow low, and when
// forced off-suit dump the queen of spades first, then the highest heart,
// then the highest card.
func BotAction(state domain.RoomState, bot domain.Player) *domain.Action {
	if state.Phase != domain.PhasePlaying || state.CurrentTurn != bot.ID {
		return nil
	}

	legal := LegalMoves(state, bot.ID)
	if len(legal) == 0 {
		return nil
	}

	play := func(c domain.Card) *domain.Action {
		return &domain.Action{Type: domain.ActionPlayCard, PlayerID: bot.ID, CardID: c.ID}
	}

	if len(state.Trick) == 0 {
		return play(lowest(legal))
	}

	leadSuit := state.Trick[0].Card.Suit
	if legal[0].Suit == leadSuit {
		// Following suit; shed the cheapest card of the lead.
		return play(lowest(legal))
	}

	// Forced off-suit.
	for _, c := range legal {
		if isQueenOfSpades(c) {
			return play(c)
		}
	}
	if heart := highestOfSuit(legal, domain.SuitHearts); heart != nil {
		return play(*heart)
	}
	return play(highest(legal))
}

func lowest(cards []domain.Card) domain.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if domain.RankValue(c.Rank) < domain.RankValue(best.Rank) {
			best = c
		}
	}
	return best
}

func highest(cards []domain.Card) domain.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if domain.RankValue(c.Rank) > domain.RankValue(best.Rank) {
			best = c
		}
	}
	return best
}

func highestOfSuit(cards []domain.Card, suit domain.Suit) *domain.Card {
	var best *domain.Card
	for i, c := range cards {
		if c.Suit != suit {
			continue
		}
		if best == nil || domain.RankValue(c.Rank) > domain.RankValue(best.Rank) {
			best = &cards[i]
		}
	}
	return best
}
