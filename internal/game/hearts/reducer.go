package hearts

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/domain"
	"github.com/Fantomex10/foxysgamehub-sub000/internal/engine"
)

// GameID is the registry key for the trick-taking game.
const GameID = "hearts"

type game struct {
	rng *rand.Rand
}

// NewDescriptor builds the Hearts engine descriptor. A nil rng falls back
// to a time-seeded source.
func NewDescriptor(rng *rand.Rand) engine.Descriptor {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &game{rng: rng}

	cfg := engine.RoomConfig{
		GameID:          GameID,
		GameName:        "Hearts",
		MinSeats:        Seats,
		MaxSeats:        Seats,
		AdjustableSeats: false,
		DefaultSettings: domain.RoomSettings{
			MaxPlayers: Seats,
			Visibility: domain.VisibilityPublic,
		},
		Rand: rng,
	}
	handlers := engine.LobbyHandlers(cfg)
	handlers[domain.ActionStartGame] = g.startGame
	handlers[domain.ActionPlayCard] = g.playCard

	return engine.Descriptor{
		ID:   GameID,
		Name: "Hearts",
		Metadata: engine.Metadata{
			Description:     "Avoid hearts and the queen of spades. First to 100 loses.",
			MinPlayers:      Seats,
			MaxPlayers:      Seats,
			AdjustableSeats: false,
		},
		NewInitialState: engine.NewIdleState,
		Reduce: func(state domain.RoomState, action domain.Action) domain.RoomState {
			return engine.Reduce(handlers, state, action)
		},
		BotAction:     BotAction,
		BotThinkDelay: 1200 * time.Millisecond,
	}
}

// startGame deals a round from the lobby, or the next round from a finished
// one. Cumulative scores survive between rounds and reset on a fresh game.
func (g *game) startGame(state domain.RoomState, action domain.Action) domain.RoomState {
	if state.Phase != domain.PhaseRoomLobby && state.Phase != domain.PhaseFinished {
		return state
	}
	if msg := engine.ReadyCheck(state, Seats, Seats); msg != "" {
		work := state.Clone()
		work.Banner = msg
		return work
	}

	work := state.Clone()
	deck := domain.ShuffleDeck(domain.NewDeck(1), g.rng)

	work.Hands = make(map[string][]domain.Card, Seats)
	work.TrickCaptures = make(map[string][]domain.Card, Seats)
	work.RoundScores = make(map[string]int, Seats)
	for i, p := range work.Players {
		work.Hands[p.ID] = append([]domain.Card(nil), deck[i*HandSize:(i+1)*HandSize]...)
		work.TrickCaptures[p.ID] = nil
		work.RoundScores[p.ID] = 0
	}

	if work.Scores == nil || state.Phase == domain.PhaseRoomLobby || work.GameOver {
		work.Scores = make(map[string]int, Seats)
		for _, p := range work.Players {
			work.Scores[p.ID] = 0
		}
	}

	work.Trick = nil
	work.TricksPlayed = 0
	work.HeartsBroken = false
	work.GameOver = false
	work.Phase = domain.PhasePlaying

	// The two of clubs opens every round.
	leader := work.Players[0]
	for _, p := range work.Players {
		for _, c := range work.Hands[p.ID] {
			if isTwoOfClubs(c) {
				leader = p
			}
		}
	}
	work.CurrentTurn = leader.ID
	work.Players = domain.ResetStatuses(work.Players)
	work.Spectators = domain.ResetStatuses(work.Spectators)
	work.History = domain.PushHistory(work.History, "A new round is dealt.", 0)
	work.Banner = fmt.Sprintf("%s leads the two of clubs.", leader.Name)
	return work
}

func (g *game) playCard(state domain.RoomState, action domain.Action) domain.RoomState {
	return engine.ResolvePlay(state, action, engine.PlayHooks{
		Validate:     validatePlay,
		Apply:        applyPlay,
		TrickDone:    trickDone,
		ResolveTrick: resolveTrick,
		RoundDone:    roundDone,
		ResolveRound: resolveRound,
	})
}

func validatePlay(p *engine.Play) string {
	s := p.State
	for _, c := range LegalMoves(*s, p.Actor.ID) {
		if c.ID == p.Card.ID {
			return ""
		}
	}

	switch {
	case len(s.Trick) == 0 && s.TricksPlayed == 0:
		return "You must lead the two of clubs."
	case len(s.Trick) == 0:
		return "Hearts haven't been broken yet."
	case s.TricksPlayed == 0 && CardPoints(p.Card) > 0:
		return "No penalty cards on the first trick."
	default:
		return "You must follow the lead suit."
	}
}

func applyPlay(p *engine.Play) {
	s := p.State
	s.Trick = append(s.Trick, domain.TrickPlay{PlayerID: p.Actor.ID, Card: p.Card})
	if p.Card.Suit == domain.SuitHearts && !s.HeartsBroken {
		s.HeartsBroken = true
		s.History = domain.PushHistory(s.History, "Hearts are broken!", 0)
	}
	p.Banner = fmt.Sprintf("%s's turn.", nameOf(s, p.NextTurn))
}

func trickDone(p *engine.Play) bool {
	return len(p.State.Trick) == len(p.State.Players)
}

func resolveTrick(p *engine.Play) {
	s := p.State
	winnerID := s.Trick[TrickWinner(s.Trick)].PlayerID
	points := TrickPoints(s.Trick)

	for _, play := range s.Trick {
		s.TrickCaptures[winnerID] = append(s.TrickCaptures[winnerID], play.Card)
	}
	s.RoundScores[winnerID] += points
	s.Trick = nil
	s.TricksPlayed++

	winner := nameOf(s, winnerID)
	if points > 0 {
		s.History = domain.PushHistory(s.History, fmt.Sprintf("%s takes the trick (+%d).", winner, points), 0)
	} else {
		s.History = domain.PushHistory(s.History, fmt.Sprintf("%s takes the trick.", winner), 0)
	}
	p.NextTurn = winnerID
	p.Banner = fmt.Sprintf("%s leads.", winner)
}

func roundDone(p *engine.Play) bool {
	for _, pl := range p.State.Players {
		if len(p.State.Hands[pl.ID]) > 0 {
			return false
		}
	}
	return true
}

func resolveRound(p *engine.Play) {
	s := p.State
	p.Finished = true

	shooter := ""
	for id, pts := range s.RoundScores {
		if pts == RoundPoints {
			shooter = id
		}
	}

	if shooter != "" {
		for _, pl := range s.Players {
			if pl.ID != shooter {
				s.Scores[pl.ID] += RoundPoints
			}
		}
		s.History = domain.PushHistory(s.History, fmt.Sprintf("%s shot the moon!", nameOf(s, shooter)), 0)
	} else {
		for id, pts := range s.RoundScores {
			s.Scores[id] += pts
		}
	}

	if !gameOver(s) {
		p.Banner = "Round over. Ready up for the next deal."
		s.History = domain.PushHistory(s.History, "The round is over.", 0)
		return
	}

	s.GameOver = true
	winners, low := lowestScorers(s)
	p.Banner = fmt.Sprintf("%s wins with %d points!", strings.Join(winners, " and "), low)
	s.History = domain.PushHistory(s.History, p.Banner, 0)
}

func gameOver(s *domain.RoomState) bool {
	for _, total := range s.Scores {
		if total >= GameOverScore {
			return true
		}
	}
	return false
}

// lowestScorers returns the names of the player(s) holding the lowest
// cumulative score, in seat order, with that score.
func lowestScorers(s *domain.RoomState) ([]string, int) {
	low := -1
	for _, total := range s.Scores {
		if low < 0 || total < low {
			low = total
		}
	}
	var names []string
	for _, pl := range s.Players {
		if s.Scores[pl.ID] == low {
			names = append(names, pl.Name)
		}
	}
	return names, low
}

func nameOf(s *domain.RoomState, id string) string {
	if p, ok := s.PlayerByID(id); ok {
		return p.Name
	}
	return id
}
