package crazyeights

import (
	"github.com/Fantomex10/foxysgamehub-sub000/internal/domain"
)

// BotAction decides the bot's next move: draw when stuck, otherwise prefer
// a two for the penalty, then a suit match, then a rank match, and only
// then spend a wild eight declaring the suit the bot holds most of.
func BotAction(state domain.RoomState, bot domain.Player) *domain.Action {
	if state.Phase != domain.PhasePlaying || state.CurrentTurn != bot.ID {
		return nil
	}

	legal := LegalPlays(state, bot.ID)
	if len(legal) == 0 {
		return &domain.Action{Type: domain.ActionDrawCard, PlayerID: bot.ID}
	}

	play := func(c domain.Card, declared domain.Suit) *domain.Action {
		return &domain.Action{
			Type:         domain.ActionPlayCard,
			PlayerID:     bot.ID,
			CardID:       c.ID,
			DeclaredSuit: declared,
		}
	}

	for _, c := range legal {
		if c.Rank == domain.RankTwo {
			return play(c, "")
		}
	}
	for _, c := range legal {
		if c.Rank != domain.RankEight && c.Suit == state.ActiveSuit {
			return play(c, "")
		}
	}
	top, _ := topDiscard(state.DiscardPile)
	for _, c := range legal {
		if c.Rank != domain.RankEight && c.Rank == top.Rank {
			return play(c, "")
		}
	}
	for _, c := range legal {
		if c.Rank == domain.RankEight {
			return play(c, mostHeldSuit(state.Hands[bot.ID], c.ID))
		}
	}
	return play(legal[0], "")
}

// mostHeldSuit picks the suit the hand holds most of, ignoring the wild
// about to be played. Ties break in fixed suit order.
func mostHeldSuit(hand []domain.Card, excludeID string) domain.Suit {
	counts := make(map[domain.Suit]int, len(domain.Suits))
	for _, c := range hand {
		if c.ID == excludeID {
			continue
		}
		counts[c.Suit]++
	}
	best := domain.Suits[0]
	for _, s := range domain.Suits {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best
}
