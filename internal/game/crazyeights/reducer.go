package crazyeights

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/domain"
	"github.com/Fantomex10/foxysgamehub-sub000/internal/engine"
)

const (
	// GameID is the registry key for the shedding game.
	GameID = "crazy8s"

	minSeats = 2
	maxSeats = 8
)

// game holds the per-descriptor dependencies for the reducer.
type game struct {
	rng *rand.Rand
}

// NewDescriptor builds the Crazy Eights engine descriptor. A nil rng falls
// back to a time-seeded source.
func NewDescriptor(rng *rand.Rand) engine.Descriptor {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &game{rng: rng}

	cfg := engine.RoomConfig{
		GameID:          GameID,
		GameName:        "Crazy Eights",
		MinSeats:        minSeats,
		MaxSeats:        maxSeats,
		AdjustableSeats: true,
		DefaultSettings: domain.RoomSettings{
			MaxPlayers: 4,
			Visibility: domain.VisibilityPublic,
		},
		Rand: rng,
	}
	handlers := engine.LobbyHandlers(cfg)
	handlers[domain.ActionStartGame] = g.startGame
	handlers[domain.ActionPlayCard] = g.playCard
	handlers[domain.ActionDrawCard] = g.drawCard

	return engine.Descriptor{
		ID:   GameID,
		Name: "Crazy Eights",
		Metadata: engine.Metadata{
			Description:     "Shed your hand first. Eights are wild.",
			MinPlayers:      minSeats,
			MaxPlayers:      maxSeats,
			AdjustableSeats: true,
		},
		NewInitialState: engine.NewIdleState,
		Reduce: func(state domain.RoomState, action domain.Action) domain.RoomState {
			return engine.Reduce(handlers, state, action)
		},
		BotAction:     BotAction,
		BotThinkDelay: 900 * time.Millisecond,
	}
}

func (g *game) startGame(state domain.RoomState, action domain.Action) domain.RoomState {
	if state.Phase != domain.PhaseRoomLobby {
		return state
	}
	if msg := engine.ReadyCheck(state, minSeats, state.Settings.MaxPlayers); msg != "" {
		work := state.Clone()
		work.Banner = msg
		return work
	}

	work := state.Clone()
	deck := domain.ShuffleDeck(domain.NewDeck(deckCount(len(work.Players))), g.rng)

	work.Hands = make(map[string][]domain.Card, len(work.Players))
	for _, p := range work.Players {
		n := len(deck)
		work.Hands[p.ID] = append([]domain.Card(nil), deck[n-HandSize:]...)
		deck = deck[:n-HandSize]
	}

	// Flip the starter card; its suit opens play.
	starter := deck[len(deck)-1]
	deck = deck[:len(deck)-1]
	work.DiscardPile = []domain.Card{starter}
	work.DrawPile = deck
	work.ActiveSuit = starter.Suit

	leader := work.Players[0]
	work.CurrentTurn = leader.ID
	work.Phase = domain.PhasePlaying
	work.GameOver = false
	work.Players = domain.ResetStatuses(work.Players)
	work.Spectators = domain.ResetStatuses(work.Spectators)
	work.History = domain.PushHistory(work.History, fmt.Sprintf("New round. Starter card is the %s.", starter.Label()), 0)
	work.Banner = fmt.Sprintf("Game on! %s leads.", leader.Name)
	return work
}

func (g *game) playCard(state domain.RoomState, action domain.Action) domain.RoomState {
	return engine.ResolvePlay(state, action, engine.PlayHooks{
		Validate:     g.validatePlay,
		Narrate:      narratePlay,
		Apply:        g.applyPlay,
		RoundDone:    roundDone,
		ResolveRound: resolveRound,
	})
}

func (g *game) validatePlay(p *engine.Play) string {
	if p.Card.Rank == domain.RankEight {
		if !domain.IsValidSuit(p.Action.DeclaredSuit) {
			return "Choose a suit for your 8."
		}
		return ""
	}
	top, _ := topDiscard(p.State.DiscardPile)
	if !IsPlayable(p.Card, p.State.ActiveSuit, top) {
		return "Invalid card. Match suit or rank."
	}
	return ""
}

func narratePlay(p *engine.Play) string {
	if p.Card.Rank == domain.RankEight {
		return fmt.Sprintf("%s plays the %s and calls %s.", p.Actor.Name, p.Card.Label(), p.Action.DeclaredSuit)
	}
	return fmt.Sprintf("%s plays the %s.", p.Actor.Name, p.Card.Label())
}

func (g *game) applyPlay(p *engine.Play) {
	s := p.State
	s.DiscardPile = append(s.DiscardPile, p.Card)

	if p.Card.Rank == domain.RankEight {
		s.ActiveSuit = p.Action.DeclaredSuit
	} else {
		s.ActiveSuit = p.Card.Suit
	}

	if len(p.Hand()) == 0 {
		// Round ends the instant a hand empties; no penalty resolution.
		p.RoundOver = true
		return
	}

	if p.Card.Rank == domain.RankTwo {
		victimID := p.NextTurn
		victim, _ := s.PlayerByID(victimID)
		hand, draw, discard, drawn := drawFromPile(s.Hands[victimID], s.DrawPile, s.DiscardPile, penaltyDraw, g.rng)
		s.Hands[victimID] = hand
		s.DrawPile = draw
		s.DiscardPile = discard
		if drawn > 0 {
			s.History = domain.PushHistory(s.History, fmt.Sprintf("%s draws %d.", victim.Name, drawn), 0)
		}
	}

	p.Banner = fmt.Sprintf("%s's turn.", nameOf(s, p.NextTurn))
}

func roundDone(p *engine.Play) bool {
	return len(p.Hand()) == 0
}

func resolveRound(p *engine.Play) {
	p.Finished = true
	p.State.GameOver = true
	p.Banner = fmt.Sprintf("%s wins!", p.Actor.Name)
	p.State.History = domain.PushHistory(p.State.History, fmt.Sprintf("%s sheds the last card and wins the round.", p.Actor.Name), 0)
}

func (g *game) drawCard(state domain.RoomState, action domain.Action) domain.RoomState {
	actorID := action.Actor(state)
	if state.Phase != domain.PhasePlaying || state.CurrentTurn != actorID {
		return state
	}
	actor, ok := state.PlayerByID(actorID)
	if !ok {
		return state
	}

	work := state.Clone()
	work.DrawPile, work.DiscardPile = replenishDrawPile(work.DrawPile, work.DiscardPile, g.rng)
	if len(work.DrawPile) == 0 {
		work.Banner = "The draw pile is empty."
		return work
	}

	card := work.DrawPile[len(work.DrawPile)-1]
	work.DrawPile = work.DrawPile[:len(work.DrawPile)-1]
	work.Hands[actorID] = append(work.Hands[actorID], card)
	work.History = domain.PushHistory(work.History, fmt.Sprintf("%s draws a card.", actor.Name), 0)
	work.CurrentTurn = state.NextSeatedAfter(actorID)
	work.Banner = fmt.Sprintf("%s's turn.", nameOf(&work, work.CurrentTurn))
	return work
}

func nameOf(s *domain.RoomState, id string) string {
	if p, ok := s.PlayerByID(id); ok {
		return p.Name
	}
	return id
}
