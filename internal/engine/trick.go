package engine

import (
	"fmt"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/domain"
)

// Play carries the working state threaded through one PLAY_CARD resolution.
// Hooks mutate State (a private clone) and the turn/banner fields; Finalize
// commits them.
type Play struct {
	State  *domain.RoomState
	Action domain.Action
	Actor  domain.Player
	Card   domain.Card

	// NextTurn is the turn pointer to commit. Defaults to the next seated
	// player after the actor.
	NextTurn string
	// Banner is the status message to commit.
	Banner string
	// RoundOver short-circuits trick resolution and triggers ResolveRound.
	RoundOver bool
	// Finished marks the whole round/game done; Finalize moves the phase
	// to finished.
	Finished bool
}

// Hand returns the actor's current hand on the working state.
func (p *Play) Hand() []domain.Card {
	return p.State.Hands[p.Actor.ID]
}

// PlayHooks supplies the game-specific stages of the shared pipeline. Every
// hook is optional; nil hooks fall back to the default behavior noted per
// stage.
type PlayHooks struct {
	// Guard vetoes the whole action. Default: phase must be playing and
	// the actor must hold the turn.
	Guard func(p *Play) bool
	// Validate returns a banner message to veto the play, leaving the card
	// in hand, or "" to accept. Default: accept.
	Validate func(p *Play) string
	// Narrate returns the history line for the play. Default:
	// "<name> plays <card>."
	Narrate func(p *Play) string
	// Apply updates piles/suit/flags and may set RoundOver or NextTurn.
	Apply func(p *Play)
	// TrickDone reports whether the trick is complete after this play.
	// Default: never.
	TrickDone func(p *Play) bool
	// ResolveTrick settles a completed trick (winner, points, captures).
	ResolveTrick func(p *Play)
	// RoundDone reports whether the round is complete. Default: never.
	RoundDone func(p *Play) bool
	// ResolveRound settles scoring and game-over detection.
	ResolveRound func(p *Play)
	// Finalize commits turn/banner/phase. Default: write NextTurn and
	// Banner, and move to finished when Finished is set.
	Finalize func(p *Play)
}

// ResolvePlay runs the shared play-a-card pipeline: guard, hand presence,
// validate, remove from hand, narrate, apply effects, trick completion,
// round completion, finalize. Any veto returns the prior state unchanged
// apart from an explanatory banner.
func ResolvePlay(state domain.RoomState, action domain.Action, hooks PlayHooks) domain.RoomState {
	actorID := action.Actor(state)
	actor, ok := state.PlayerByID(actorID)
	if !ok {
		return state
	}

	work := state.Clone()
	p := &Play{
		State:  &work,
		Action: action,
		Actor:  actor,
	}

	guard := hooks.Guard
	if guard == nil {
		guard = defaultGuard
	}
	if !guard(p) {
		return state
	}

	// The named card must be in the actor's hand; anything else is a
	// no-op so card conservation cannot be violated.
	card, held := domain.FindCard(work.Hands[actorID], action.CardID)
	if !held {
		return state
	}
	p.Card = card
	p.NextTurn = state.NextSeatedAfter(actorID)

	if hooks.Validate != nil {
		if msg := hooks.Validate(p); msg != "" {
			vetoed := state.Clone()
			vetoed.Banner = msg
			return vetoed
		}
	}

	hand, _, _ := domain.RemoveCard(work.Hands[actorID], action.CardID)
	work.Hands[actorID] = hand

	narrate := hooks.Narrate
	if narrate == nil {
		narrate = defaultNarrate
	}
	work.History = domain.PushHistory(work.History, narrate(p), 0)

	if hooks.Apply != nil {
		hooks.Apply(p)
	}

	if !p.RoundOver && hooks.TrickDone != nil && hooks.TrickDone(p) {
		if hooks.ResolveTrick != nil {
			hooks.ResolveTrick(p)
		}
	}

	if hooks.RoundDone != nil && hooks.RoundDone(p) {
		p.RoundOver = true
		if hooks.ResolveRound != nil {
			hooks.ResolveRound(p)
		}
	}

	finalize := hooks.Finalize
	if finalize == nil {
		finalize = defaultFinalize
	}
	finalize(p)

	return work
}

func defaultGuard(p *Play) bool {
	return p.State.Phase == domain.PhasePlaying && p.State.CurrentTurn == p.Actor.ID
}

func defaultNarrate(p *Play) string {
	return fmt.Sprintf("%s plays %s.", p.Actor.Name, p.Card.Label())
}

func defaultFinalize(p *Play) {
	if p.Banner != "" {
		p.State.Banner = p.Banner
	}
	if p.Finished {
		p.State.Phase = domain.PhaseFinished
		return
	}
	p.State.CurrentTurn = p.NextTurn
}
