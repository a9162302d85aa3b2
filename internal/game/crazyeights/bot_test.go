package crazyeights

import (
	"testing"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/domain"
)

func botState(hand []domain.Card, top domain.Card, activeSuit domain.Suit) domain.RoomState {
	return domain.RoomState{
		Phase: domain.PhasePlaying,
		Players: []domain.Player{
			{ID: "bot-1", Name: "Bot 1", IsBot: true},
			{ID: "p2", Name: "Ben"},
		},
		Hands:       map[string][]domain.Card{"bot-1": hand},
		DiscardPile: []domain.Card{top},
		ActiveSuit:  activeSuit,
		CurrentTurn: "bot-1",
	}
}

func TestBotAction_NotItsTurn(t *testing.T) {
	state := botState([]domain.Card{card("a", domain.SuitClubs, domain.RankFive)},
		card("top", domain.SuitClubs, domain.RankNine), domain.SuitClubs)
	state.CurrentTurn = "p2"

	if got := BotAction(state, state.Players[0]); got != nil {
		t.Fatalf("BotAction = %v, want nil off turn", got)
	}
}

func TestBotAction_DrawsWhenStuck(t *testing.T) {
	state := botState([]domain.Card{card("a", domain.SuitHearts, domain.RankFive)},
		card("top", domain.SuitClubs, domain.RankNine), domain.SuitClubs)

	got := BotAction(state, state.Players[0])
	if got == nil || got.Type != domain.ActionDrawCard {
		t.Fatalf("BotAction = %v, want DRAW_CARD", got)
	}
	if got.PlayerID != "bot-1" {
		t.Fatalf("PlayerID = %s, want bot-1", got.PlayerID)
	}
}

func TestBotAction_PrefersPenaltyTwo(t *testing.T) {
	state := botState([]domain.Card{
		card("five", domain.SuitClubs, domain.RankFive),
		card("two", domain.SuitClubs, domain.RankTwo),
	}, card("top", domain.SuitClubs, domain.RankNine), domain.SuitClubs)

	got := BotAction(state, state.Players[0])
	if got == nil || got.CardID != "two" {
		t.Fatalf("BotAction = %v, want the two", got)
	}
}

func TestBotAction_SuitMatchBeforeRankMatch(t *testing.T) {
	state := botState([]domain.Card{
		card("ranked", domain.SuitHearts, domain.RankNine),
		card("suited", domain.SuitClubs, domain.RankFive),
	}, card("top", domain.SuitClubs, domain.RankNine), domain.SuitClubs)

	got := BotAction(state, state.Players[0])
	if got == nil || got.CardID != "suited" {
		t.Fatalf("BotAction = %v, want the suit match", got)
	}
}

func TestBotAction_SavesEightForLast(t *testing.T) {
	state := botState([]domain.Card{
		card("w8", domain.SuitSpades, domain.RankEight),
		card("ranked", domain.SuitHearts, domain.RankNine),
	}, card("top", domain.SuitClubs, domain.RankNine), domain.SuitClubs)

	got := BotAction(state, state.Players[0])
	if got == nil || got.CardID != "ranked" {
		t.Fatalf("BotAction = %v, want the rank match over the wild", got)
	}
}

func TestBotAction_EightDeclaresMostHeldSuit(t *testing.T) {
	state := botState([]domain.Card{
		card("w8", domain.SuitSpades, domain.RankEight),
		card("h1", domain.SuitHearts, domain.RankFour),
		card("h2", domain.SuitHearts, domain.RankSix),
		card("d1", domain.SuitDiamonds, domain.RankFour),
	}, card("top", domain.SuitClubs, domain.RankNine), domain.SuitClubs)

	got := BotAction(state, state.Players[0])
	if got == nil || got.CardID != "w8" {
		t.Fatalf("BotAction = %v, want the wild eight", got)
	}
	if got.DeclaredSuit != domain.SuitHearts {
		t.Fatalf("DeclaredSuit = %s, want hearts", got.DeclaredSuit)
	}
}
