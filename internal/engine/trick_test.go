package engine

import (
	"testing"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/domain"
)

func playingState() domain.RoomState {
	return domain.RoomState{
		Phase: domain.PhasePlaying,
		Players: []domain.Player{
			{ID: "p1", Name: "Ann"},
			{ID: "p2", Name: "Ben"},
		},
		Hands: map[string][]domain.Card{
			"p1": {{ID: "c1", Suit: domain.SuitHearts, Rank: domain.RankFive}},
			"p2": {{ID: "c2", Suit: domain.SuitClubs, Rank: domain.RankNine}},
		},
		CurrentTurn: "p1",
	}
}

func TestResolvePlay_DefaultFlow(t *testing.T) {
	state := playingState()
	action := domain.Action{Type: domain.ActionPlayCard, PlayerID: "p1", CardID: "c1"}

	var applied *Play
	out := ResolvePlay(state, action, PlayHooks{
		Apply: func(p *Play) {
			applied = p
			p.State.DiscardPile = append(p.State.DiscardPile, p.Card)
		},
	})

	if applied == nil {
		t.Fatal("Expected Apply to run")
	}
	if len(out.Hands["p1"]) != 0 {
		t.Fatalf("Hand = %v, want the card removed", out.Hands["p1"])
	}
	if len(out.DiscardPile) != 1 || out.DiscardPile[0].ID != "c1" {
		t.Fatalf("Discard = %v, want [c1]", out.DiscardPile)
	}
	if out.CurrentTurn != "p2" {
		t.Fatalf("CurrentTurn = %s, want p2", out.CurrentTurn)
	}
	if len(out.History) != 1 || out.History[0] != "Ann plays 5 of hearts." {
		t.Fatalf("History = %v", out.History)
	}
	if len(state.Hands["p1"]) != 1 {
		t.Fatal("Expected the input state untouched")
	}
}

func TestResolvePlay_GuardVetoIsNoOp(t *testing.T) {
	state := playingState()
	state.CurrentTurn = "p2"
	action := domain.Action{Type: domain.ActionPlayCard, PlayerID: "p1", CardID: "c1"}

	out := ResolvePlay(state, action, PlayHooks{})

	if len(out.Hands["p1"]) != 1 || out.Banner != "" {
		t.Fatalf("Expected untouched state, got hand %v banner %q", out.Hands["p1"], out.Banner)
	}
}

func TestResolvePlay_MissingCardIsNoOp(t *testing.T) {
	state := playingState()
	action := domain.Action{Type: domain.ActionPlayCard, PlayerID: "p1", CardID: "stolen"}

	out := ResolvePlay(state, action, PlayHooks{})

	if len(out.Hands["p1"]) != 1 {
		t.Fatalf("Hand = %v, want untouched", out.Hands["p1"])
	}
}

func TestResolvePlay_ValidateVetoKeepsCardAndSetsBanner(t *testing.T) {
	state := playingState()
	action := domain.Action{Type: domain.ActionPlayCard, PlayerID: "p1", CardID: "c1"}

	out := ResolvePlay(state, action, PlayHooks{
		Validate: func(p *Play) string { return "Not that card." },
	})

	if len(out.Hands["p1"]) != 1 {
		t.Fatalf("Hand = %v, want the card kept", out.Hands["p1"])
	}
	if out.Banner != "Not that card." {
		t.Fatalf("Banner = %q, want the veto message", out.Banner)
	}
	if out.CurrentTurn != "p1" {
		t.Fatalf("CurrentTurn = %s, want unchanged", out.CurrentTurn)
	}
}

func TestResolvePlay_TrickResolutionRedirectsTurn(t *testing.T) {
	state := playingState()
	action := domain.Action{Type: domain.ActionPlayCard, PlayerID: "p1", CardID: "c1"}

	out := ResolvePlay(state, action, PlayHooks{
		TrickDone: func(p *Play) bool { return true },
		ResolveTrick: func(p *Play) {
			p.NextTurn = "p1"
		},
	})

	if out.CurrentTurn != "p1" {
		t.Fatalf("CurrentTurn = %s, want the trick winner p1", out.CurrentTurn)
	}
}

func TestResolvePlay_RoundOverSkipsTrickAndFinishes(t *testing.T) {
	state := playingState()
	action := domain.Action{Type: domain.ActionPlayCard, PlayerID: "p1", CardID: "c1"}

	trickResolved := false
	out := ResolvePlay(state, action, PlayHooks{
		Apply:        func(p *Play) { p.RoundOver = true },
		TrickDone:    func(p *Play) bool { return true },
		ResolveTrick: func(p *Play) { trickResolved = true },
		RoundDone:    func(p *Play) bool { return p.RoundOver },
		ResolveRound: func(p *Play) {
			p.Finished = true
			p.Banner = "Ann wins!"
		},
	})

	if trickResolved {
		t.Fatal("Expected trick resolution to be skipped once the round is over")
	}
	if out.Phase != domain.PhaseFinished {
		t.Fatalf("Phase = %s, want finished", out.Phase)
	}
	if out.Banner != "Ann wins!" {
		t.Fatalf("Banner = %q", out.Banner)
	}
}

func TestResolvePlay_UnknownActorIsNoOp(t *testing.T) {
	state := playingState()
	action := domain.Action{Type: domain.ActionPlayCard, PlayerID: "ghost", CardID: "c1"}

	out := ResolvePlay(state, action, PlayHooks{})

	if len(out.Hands["p1"]) != 1 {
		t.Fatal("Expected state untouched for an unknown actor")
	}
}
