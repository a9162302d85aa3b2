package hearts

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/domain"
	"github.com/Fantomex10/foxysgamehub-sub000/internal/engine"
)

var seatIDs = []string{"p1", "p2", "p3", "p4"}

func testDescriptor(t *testing.T) engine.Descriptor {
	t.Helper()
	return NewDescriptor(rand.New(rand.NewSource(1)))
}

func startedGame(t *testing.T, d engine.Descriptor) domain.RoomState {
	t.Helper()
	state := d.NewInitialState(engine.IdentityOptions{UserID: "p1", UserName: "p1"})
	state = d.Reduce(state, domain.Action{Type: domain.ActionCreateRoom})
	for _, id := range seatIDs[1:] {
		state = d.Reduce(state, domain.Action{Type: domain.ActionJoinRoom, PlayerID: id, Name: id})
	}
	for _, id := range seatIDs {
		state = d.Reduce(state, domain.Action{
			Type:     domain.ActionSetPlayerStatus,
			PlayerID: id,
			Status:   domain.StatusReady,
		})
	}
	state = d.Reduce(state, domain.Action{Type: domain.ActionStartGame, PlayerID: "p1"})
	if state.Phase != domain.PhasePlaying {
		t.Fatalf("Expected playing phase, got %s (banner %q)", state.Phase, state.Banner)
	}
	return state
}

// fourSeatState hand-crafts a playing state for deterministic trick tests.
func fourSeatState(hands map[string][]domain.Card, turn string) domain.RoomState {
	players := make([]domain.Player, len(seatIDs))
	for i, id := range seatIDs {
		players[i] = domain.Player{ID: id, Name: strings.ToUpper(id)}
	}
	state := domain.RoomState{
		Phase:         domain.PhasePlaying,
		RoomID:        "ROOM01",
		HostID:        "p1",
		Settings:      domain.RoomSettings{MaxPlayers: Seats},
		Players:       players,
		Hands:         hands,
		TrickCaptures: make(map[string][]domain.Card, Seats),
		Scores:        make(map[string]int, Seats),
		RoundScores:   make(map[string]int, Seats),
		CurrentTurn:   turn,
	}
	for _, id := range seatIDs {
		if state.Hands[id] == nil {
			state.Hands[id] = []domain.Card{}
		}
		state.Scores[id] = 0
		state.RoundScores[id] = 0
	}
	return state
}

func play(d engine.Descriptor, state domain.RoomState, playerID, cardID string) domain.RoomState {
	return d.Reduce(state, domain.Action{Type: domain.ActionPlayCard, PlayerID: playerID, CardID: cardID})
}

func TestStartGame_DealsThirteenEach(t *testing.T) {
	d := testDescriptor(t)
	state := startedGame(t, d)

	for _, p := range state.Players {
		if got := len(state.Hands[p.ID]); got != HandSize {
			t.Fatalf("Hand of %s = %d cards, want %d", p.ID, got, HandSize)
		}
	}
	if len(state.DrawPile) != 0 || len(state.DiscardPile) != 0 {
		t.Fatal("Hearts keeps no draw or discard pile")
	}

	// The two of clubs holder leads.
	leads := false
	for _, c := range state.Hands[state.CurrentTurn] {
		if isTwoOfClubs(c) {
			leads = true
		}
	}
	if !leads {
		t.Fatalf("Leader %s does not hold the two of clubs", state.CurrentTurn)
	}
	if !strings.Contains(state.Banner, "leads the two of clubs") {
		t.Fatalf("Banner = %q", state.Banner)
	}
}

func TestStartGame_RequiresFourSeats(t *testing.T) {
	d := testDescriptor(t)
	state := d.NewInitialState(engine.IdentityOptions{UserID: "p1", UserName: "p1"})
	state = d.Reduce(state, domain.Action{Type: domain.ActionCreateRoom})
	state = d.Reduce(state, domain.Action{
		Type:     domain.ActionSetPlayerStatus,
		PlayerID: "p1",
		Status:   domain.StatusReady,
	})

	out := d.Reduce(state, domain.Action{Type: domain.ActionStartGame, PlayerID: "p1"})

	if out.Phase != domain.PhaseRoomLobby {
		t.Fatalf("Phase = %s, want roomLobby", out.Phase)
	}
	if !strings.Contains(out.Banner, "Need at least 4") {
		t.Fatalf("Banner = %q", out.Banner)
	}
}

func TestPlayCard_FirstLeadMustBeTwoOfClubs(t *testing.T) {
	d := testDescriptor(t)
	state := fourSeatState(map[string][]domain.Card{
		"p1": {card("2c", domain.SuitClubs, domain.RankTwo), card("5d", domain.SuitDiamonds, domain.RankFive)},
	}, "p1")

	out := play(d, state, "p1", "5d")
	if out.Banner != "You must lead the two of clubs." {
		t.Fatalf("Banner = %q", out.Banner)
	}
	if len(out.Hands["p1"]) != 2 {
		t.Fatal("Expected the card kept")
	}

	out = play(d, state, "p1", "2c")
	if len(out.Trick) != 1 || out.Trick[0].Card.ID != "2c" {
		t.Fatalf("Trick = %v, want the two of clubs led", out.Trick)
	}
	if out.CurrentTurn != "p2" {
		t.Fatalf("CurrentTurn = %s, want p2", out.CurrentTurn)
	}
}

func TestPlayCard_MustFollowSuit(t *testing.T) {
	d := testDescriptor(t)
	state := fourSeatState(map[string][]domain.Card{
		"p2": {card("kc", domain.SuitClubs, domain.RankKing), card("5d", domain.SuitDiamonds, domain.RankFive)},
	}, "p2")
	state.TricksPlayed = 2
	state.Trick = []domain.TrickPlay{{PlayerID: "p1", Card: card("3c", domain.SuitClubs, domain.RankThree)}}

	out := play(d, state, "p2", "5d")

	if out.Banner != "You must follow the lead suit." {
		t.Fatalf("Banner = %q", out.Banner)
	}
	if len(out.Trick) != 1 {
		t.Fatal("Expected the trick unchanged")
	}
}

func TestPlayCard_HeartsLeadBeforeBrokenVetoed(t *testing.T) {
	d := testDescriptor(t)
	state := fourSeatState(map[string][]domain.Card{
		"p1": {card("5h", domain.SuitHearts, domain.RankFive), card("5d", domain.SuitDiamonds, domain.RankFive)},
	}, "p1")
	state.TricksPlayed = 2

	out := play(d, state, "p1", "5h")

	if out.Banner != "Hearts haven't been broken yet." {
		t.Fatalf("Banner = %q", out.Banner)
	}
}

func TestPlayCard_BreakingHeartsIsRecorded(t *testing.T) {
	d := testDescriptor(t)
	state := fourSeatState(map[string][]domain.Card{
		"p2": {card("5h", domain.SuitHearts, domain.RankFive), card("extra", domain.SuitHearts, domain.RankNine)},
	}, "p2")
	state.TricksPlayed = 2
	state.Trick = []domain.TrickPlay{{PlayerID: "p1", Card: card("3c", domain.SuitClubs, domain.RankThree)}}

	out := play(d, state, "p2", "5h")

	if !out.HeartsBroken {
		t.Fatal("Expected hearts broken")
	}
	found := false
	for _, entry := range out.History {
		if entry == "Hearts are broken!" {
			found = true
		}
	}
	if !found {
		t.Fatalf("History = %v, want the break recorded", out.History)
	}
}

func TestPlayCard_CompletedTrickGoesToWinner(t *testing.T) {
	d := testDescriptor(t)
	state := fourSeatState(map[string][]domain.Card{
		"p4": {card("qh", domain.SuitHearts, domain.RankQueen), card("extra", domain.SuitDiamonds, domain.RankFour)},
	}, "p4")
	state.TricksPlayed = 2
	state.HeartsBroken = true
	state.Trick = []domain.TrickPlay{
		{PlayerID: "p1", Card: card("3c", domain.SuitClubs, domain.RankThree)},
		{PlayerID: "p2", Card: card("kc", domain.SuitClubs, domain.RankKing)},
		{PlayerID: "p3", Card: card("9c", domain.SuitClubs, domain.RankNine)},
	}
	state.Hands["p1"] = []domain.Card{card("a1", domain.SuitDiamonds, domain.RankAce)}
	state.Hands["p2"] = []domain.Card{card("a2", domain.SuitDiamonds, domain.RankKing)}
	state.Hands["p3"] = []domain.Card{card("a3", domain.SuitDiamonds, domain.RankQueen)}

	out := play(d, state, "p4", "qh")

	if len(out.Trick) != 0 {
		t.Fatalf("Trick = %v, want cleared", out.Trick)
	}
	if out.TricksPlayed != 3 {
		t.Fatalf("TricksPlayed = %d, want 3", out.TricksPlayed)
	}
	if out.CurrentTurn != "p2" {
		t.Fatalf("CurrentTurn = %s, want the winner p2", out.CurrentTurn)
	}
	if got := out.RoundScores["p2"]; got != 1 {
		t.Fatalf("RoundScores[p2] = %d, want the heart point", got)
	}
	if got := len(out.TrickCaptures["p2"]); got != 4 {
		t.Fatalf("Captures = %d cards, want 4", got)
	}
}

func TestPlayCard_RoundEndTransfersRoundScores(t *testing.T) {
	d := testDescriptor(t)
	state := fourSeatState(map[string][]domain.Card{
		"p4": {card("qh", domain.SuitHearts, domain.RankQueen)},
	}, "p4")
	state.TricksPlayed = 12
	state.HeartsBroken = true
	state.Trick = []domain.TrickPlay{
		{PlayerID: "p1", Card: card("3h", domain.SuitHearts, domain.RankThree)},
		{PlayerID: "p2", Card: card("kh", domain.SuitHearts, domain.RankKing)},
		{PlayerID: "p3", Card: card("9h", domain.SuitHearts, domain.RankNine)},
	}
	state.RoundScores["p2"] = 10

	out := play(d, state, "p4", "qh")

	if out.Phase != domain.PhaseFinished {
		t.Fatalf("Phase = %s, want finished", out.Phase)
	}
	// p2 wins the final 4-heart trick on the king.
	if got := out.Scores["p2"]; got != 14 {
		t.Fatalf("Scores[p2] = %d, want 14", got)
	}
	if out.GameOver {
		t.Fatal("Expected the game to continue below 100")
	}
	if out.Banner != "Round over. Ready up for the next deal." {
		t.Fatalf("Banner = %q", out.Banner)
	}
}

func TestPlayCard_ShootingTheMoonChargesOpponents(t *testing.T) {
	d := testDescriptor(t)
	state := fourSeatState(map[string][]domain.Card{
		"p4": {card("qs", domain.SuitSpades, domain.RankQueen)},
	}, "p4")
	state.TricksPlayed = 12
	state.HeartsBroken = true
	state.Trick = []domain.TrickPlay{
		{PlayerID: "p1", Card: card("3s", domain.SuitSpades, domain.RankThree)},
		{PlayerID: "p2", Card: card("4s", domain.SuitSpades, domain.RankFour)},
		{PlayerID: "p3", Card: card("5s", domain.SuitSpades, domain.RankFive)},
	}
	// p4 already took every heart this round.
	state.RoundScores["p4"] = 13

	out := play(d, state, "p4", "qs")

	if got := out.Scores["p4"]; got != 0 {
		t.Fatalf("Scores[p4] = %d, want 0 for the shooter", got)
	}
	for _, id := range []string{"p1", "p2", "p3"} {
		if got := out.Scores[id]; got != RoundPoints {
			t.Fatalf("Scores[%s] = %d, want %d", id, got, RoundPoints)
		}
	}
	found := false
	for _, entry := range out.History {
		if strings.Contains(entry, "shot the moon") {
			found = true
		}
	}
	if !found {
		t.Fatalf("History = %v, want the moon recorded", out.History)
	}
}

func TestPlayCard_GameOverNamesLowestScorer(t *testing.T) {
	d := testDescriptor(t)
	state := fourSeatState(map[string][]domain.Card{
		"p4": {card("qs", domain.SuitSpades, domain.RankQueen)},
	}, "p4")
	state.TricksPlayed = 12
	state.HeartsBroken = true
	state.Trick = []domain.TrickPlay{
		{PlayerID: "p1", Card: card("3s", domain.SuitSpades, domain.RankThree)},
		{PlayerID: "p2", Card: card("ks", domain.SuitSpades, domain.RankKing)},
		{PlayerID: "p3", Card: card("5s", domain.SuitSpades, domain.RankFive)},
	}
	// p2 wins the trick and its 13-point queen: 85 + 4 + 13 crosses 100.
	state.Scores = map[string]int{"p1": 90, "p2": 85, "p3": 40, "p4": 60}
	state.RoundScores = map[string]int{"p1": 5, "p2": 4, "p3": 2, "p4": 2}

	out := play(d, state, "p4", "qs")

	if !out.GameOver {
		t.Fatalf("Expected game over, scores %v", out.Scores)
	}
	if out.Phase != domain.PhaseFinished {
		t.Fatalf("Phase = %s, want finished", out.Phase)
	}
	if out.Banner != "P3 wins with 42 points!" {
		t.Fatalf("Banner = %q", out.Banner)
	}
}

func TestStartGame_ReplayFromFinishedKeepsScores(t *testing.T) {
	d := testDescriptor(t)
	state := startedGame(t, d)
	state.Phase = domain.PhaseFinished
	state.Scores = map[string]int{"p1": 20, "p2": 5, "p3": 0, "p4": 1}
	for _, id := range seatIDs {
		state.Players = domain.SetStatus(state.Players, id, domain.StatusReady)
	}

	out := d.Reduce(state, domain.Action{Type: domain.ActionStartGame, PlayerID: "p1"})

	if out.Phase != domain.PhasePlaying {
		t.Fatalf("Phase = %s (banner %q), want playing", out.Phase, out.Banner)
	}
	if out.Scores["p1"] != 20 {
		t.Fatalf("Scores[p1] = %d, want carried over", out.Scores["p1"])
	}
	for _, id := range seatIDs {
		if out.RoundScores[id] != 0 {
			t.Fatalf("RoundScores[%s] = %d, want reset", id, out.RoundScores[id])
		}
	}
}

func TestStartGame_FreshGameAfterGameOverResetsScores(t *testing.T) {
	d := testDescriptor(t)
	state := startedGame(t, d)
	state.Phase = domain.PhaseFinished
	state.GameOver = true
	state.Scores = map[string]int{"p1": 104, "p2": 50, "p3": 30, "p4": 20}
	for _, id := range seatIDs {
		state.Players = domain.SetStatus(state.Players, id, domain.StatusReady)
	}

	out := d.Reduce(state, domain.Action{Type: domain.ActionStartGame, PlayerID: "p1"})

	for _, id := range seatIDs {
		if out.Scores[id] != 0 {
			t.Fatalf("Scores[%s] = %d, want a fresh slate", id, out.Scores[id])
		}
	}
}

func TestLeaveRoom_MidTrickBotFinishesTheTrick(t *testing.T) {
	d := testDescriptor(t)
	state := fourSeatState(map[string][]domain.Card{
		"p1": {card("d9", domain.SuitDiamonds, domain.RankNine)},
		"p2": {card("d8", domain.SuitDiamonds, domain.RankEight)},
		"p3": {card("c7", domain.SuitClubs, domain.RankSeven), card("h2", domain.SuitHearts, domain.RankTwo)},
		"p4": {card("ck", domain.SuitClubs, domain.RankKing)},
	}, "p3")
	state.TricksPlayed = 3
	state.HeartsBroken = true
	state.Trick = []domain.TrickPlay{
		{PlayerID: "p1", Card: card("c5", domain.SuitClubs, domain.RankFive)},
		{PlayerID: "p2", Card: card("h9", domain.SuitHearts, domain.RankNine)},
	}

	out := d.Reduce(state, domain.Action{Type: domain.ActionLeaveRoom, PlayerID: "p3"})

	p3, ok := out.PlayerByID("p3")
	if !ok || !p3.IsBot {
		t.Fatalf("p3 = %+v, want still seated as a bot", p3)
	}
	if len(out.Trick) != 2 {
		t.Fatalf("Trick = %d plays after the leave, want 2", len(out.Trick))
	}
	if len(out.Hands["p3"]) != 2 {
		t.Fatalf("Hand of p3 = %d cards, want kept intact", len(out.Hands["p3"]))
	}
	if out.CurrentTurn != "p3" {
		t.Fatalf("CurrentTurn = %s, want p3", out.CurrentTurn)
	}

	// The inherited seat follows suit and the trick resolves normally.
	out = play(d, out, "p3", "c7")
	out = play(d, out, "p4", "ck")

	if out.Trick != nil {
		t.Fatalf("Trick = %v, want resolved", out.Trick)
	}
	if got := out.RoundScores["p4"]; got != 1 {
		t.Fatalf("RoundScores[p4] = %d, want the heart's 1 point", got)
	}
	if out.CurrentTurn != "p4" {
		t.Fatalf("CurrentTurn = %s, want the trick winner p4", out.CurrentTurn)
	}
}

func TestRoundPointsConservation(t *testing.T) {
	deck := domain.NewDeck(1)
	total := 0
	for _, c := range deck {
		total += CardPoints(c)
	}
	if total != RoundPoints {
		t.Fatalf("Deck penalty total = %d, want %d", total, RoundPoints)
	}
}
