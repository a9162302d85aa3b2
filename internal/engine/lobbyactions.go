package engine

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/domain"
)

// RoomConfig parameterizes the shared room state machine for one game.
type RoomConfig struct {
	GameID          string
	GameName        string
	MinSeats        int
	MaxSeats        int
	AdjustableSeats bool
	DefaultSettings domain.RoomSettings
	// Rand drives room-code generation; nil falls back to a time-seeded
	// source inside the id helpers.
	Rand *rand.Rand
}

// ActionMap assembles a reducer from one handler per action type.
type ActionMap map[domain.ActionType]Reducer

// Reduce dispatches an action through the map. Unknown action types are
// fail-closed no-ops returning the prior state unchanged.
func Reduce(handlers ActionMap, state domain.RoomState, action domain.Action) domain.RoomState {
	h, ok := handlers[action.Type]
	if !ok {
		return state
	}
	return h(state, action)
}

// NewIdleState builds a fresh idle session, defaulting identity fields.
func NewIdleState(opts IdentityOptions) domain.RoomState {
	userID := opts.UserID
	if userID == "" {
		userID = domain.NewUserID()
	}
	return domain.RoomState{
		UserID:   userID,
		UserName: opts.UserName,
		Phase:    domain.PhaseIdle,
	}
}

// LobbyHandlers returns the room state machine handlers shared by every
// game: everything except START_GAME and the in-play card actions.
func LobbyHandlers(cfg RoomConfig) ActionMap {
	return ActionMap{
		domain.ActionSetName:         setNameHandler,
		domain.ActionCreateRoom:      createRoomHandler(cfg),
		domain.ActionJoinRoom:        joinRoomHandler,
		domain.ActionLeaveRoom:       leaveRoomHandler,
		domain.ActionToggleReady:     toggleReadyHandler,
		domain.ActionSetPlayerStatus: setStatusHandler,
		domain.ActionSetSeatLayout:   seatLayoutHandler,
		domain.ActionAutoReadyBots:   autoReadyBotsHandler,
		domain.ActionAddBot:          addBotHandler,
		domain.ActionRemoveBot:       removeBotHandler,
		domain.ActionReturnToLobby:   returnToLobbyHandler,
		domain.ActionResetSession:    resetSessionHandler,
	}
}

func setNameHandler(state domain.RoomState, action domain.Action) domain.RoomState {
	name := strings.TrimSpace(action.Name)
	if name == "" {
		return state
	}
	work := state.Clone()
	actorID := action.Actor(state)
	if actorID == work.UserID {
		work.UserName = name
	}
	for i, p := range work.Players {
		if p.ID == actorID {
			work.Players[i].Name = name
		}
	}
	for i, p := range work.Spectators {
		if p.ID == actorID {
			work.Spectators[i].Name = name
		}
	}
	return work
}

func createRoomHandler(cfg RoomConfig) Reducer {
	return func(state domain.RoomState, action domain.Action) domain.RoomState {
		if state.Phase != domain.PhaseIdle || strings.TrimSpace(state.UserName) == "" {
			return state
		}

		settings := domain.MergeSettings(cfg.DefaultSettings, action.Settings)
		if !cfg.AdjustableSeats {
			settings.MaxPlayers = cfg.MaxSeats
		}
		if settings.MaxPlayers < cfg.MinSeats {
			settings.MaxPlayers = cfg.MinSeats
		}
		if settings.MaxPlayers > cfg.MaxSeats {
			settings.MaxPlayers = cfg.MaxSeats
		}

		roomID := action.RoomID
		if roomID == "" {
			roomID = domain.NewRoomCode(cfg.Rand)
		}
		roomName := settings.RoomName
		if roomName == "" {
			roomName = fmt.Sprintf("%s's room", state.UserName)
			settings.RoomName = roomName
		}

		work := state.Clone()
		work.Phase = domain.PhaseRoomLobby
		work.RoomID = roomID
		work.RoomName = roomName
		work.HostID = state.UserID
		work.Settings = settings
		work.Hands = make(map[string][]domain.Card)

		host := domain.Player{ID: state.UserID, Name: state.UserName, IsHost: true}
		work.Players = []domain.Player{host.WithStatus(domain.StatusNotReady)}

		bots := settings.InitialBots
		if max := settings.MaxPlayers - 1; bots > max {
			bots = max
		}
		for i := 1; i <= bots; i++ {
			bot := domain.Player{ID: domain.BotID(i), Name: domain.BotName(i), IsBot: true}
			work.Players = append(work.Players, bot.WithStatus(domain.StatusNotReady))
		}

		work.Spectators = nil
		work.Banner = fmt.Sprintf("Room %s created. Waiting for players...", roomID)
		work.History = domain.PushHistory(nil, fmt.Sprintf("%s opened the room.", state.UserName), 0)
		return work
	}
}

func joinRoomHandler(state domain.RoomState, action domain.Action) domain.RoomState {
	if state.Phase == domain.PhaseIdle || action.PlayerID == "" {
		return state
	}
	if _, known := state.PlayerByID(action.PlayerID); known {
		return state
	}

	name := strings.TrimSpace(action.Name)
	if name == "" {
		name = "Guest"
	}
	joiner := domain.Player{ID: action.PlayerID, Name: name}.WithStatus(domain.StatusNotReady)

	work := state.Clone()
	if work.Phase == domain.PhaseRoomLobby && len(work.Players) < work.Settings.MaxPlayers {
		work.Players = append(work.Players, joiner)
		work.History = domain.PushHistory(work.History, fmt.Sprintf("%s took a seat.", name), 0)
	} else {
		joiner.IsSpectator = true
		work.Spectators = append(work.Spectators, joiner)
		work.History = domain.PushHistory(work.History, fmt.Sprintf("%s is watching from the bench.", name), 0)
	}
	return work
}

func leaveRoomHandler(state domain.RoomState, action domain.Action) domain.RoomState {
	if state.Phase == domain.PhaseIdle {
		return state
	}
	leaverID := action.Actor(state)
	leaver, known := state.PlayerByID(leaverID)
	if !known {
		return state
	}

	// A seated mid-round leaver would take their cards, their trick plays
	// and possibly the turn with them. A bot inherits the seat and the hand
	// instead so the round stays coherent.
	if state.Phase == domain.PhasePlaying && state.SeatIndex(leaverID) >= 0 {
		work := state.Clone()
		idx := work.SeatIndex(leaverID)
		work.Players[idx].IsBot = true
		work.Players[idx].IsHost = false
		if work.HostID == leaverID {
			promoted := promoteHost(&work)
			work.History = domain.PushHistory(work.History, fmt.Sprintf("%s is the new host.", promoted), 0)
		}
		work.History = domain.PushHistory(work.History, fmt.Sprintf("%s left. A bot plays their hand.", leaver.Name), 0)
		return work
	}

	work := state.Clone()
	work.Players = removeByID(work.Players, leaverID)
	work.Spectators = removeByID(work.Spectators, leaverID)
	delete(work.Hands, leaverID)

	if len(work.Players) == 0 && len(work.Spectators) == 0 {
		return NewIdleState(IdentityOptions{UserID: state.UserID, UserName: state.UserName})
	}

	if work.HostID == leaverID {
		promoted := promoteHost(&work)
		work.History = domain.PushHistory(work.History, fmt.Sprintf("%s is the new host.", promoted), 0)
	}
	if work.CurrentTurn == leaverID {
		work.CurrentTurn = work.NextSeatedAfter(leaverID)
	}
	work.History = domain.PushHistory(work.History, fmt.Sprintf("%s left the room.", leaver.Name), 0)
	return work
}

// promoteHost hands the room to the first seated player, preferring humans.
func promoteHost(s *domain.RoomState) string {
	idx := -1
	for i, p := range s.Players {
		if !p.IsBot {
			idx = i
			break
		}
	}
	if idx < 0 && len(s.Players) > 0 {
		idx = 0
	}
	if idx < 0 {
		// Only spectators remain; seat the first one as host.
		p := s.Spectators[0]
		s.Spectators = s.Spectators[1:]
		p.IsSpectator = false
		p.IsHost = true
		s.Players = []domain.Player{p}
		s.HostID = p.ID
		return p.Name
	}
	s.Players[idx].IsHost = true
	s.HostID = s.Players[idx].ID
	return s.Players[idx].Name
}

func toggleReadyHandler(state domain.RoomState, action domain.Action) domain.RoomState {
	actorID := action.Actor(state)
	actor, ok := state.PlayerByID(actorID)
	if !ok {
		return state
	}
	work := state.Clone()
	next := domain.NextStatus(actor.Status)
	work.Players = domain.SetStatus(work.Players, actorID, next)
	work.Spectators = domain.SetStatus(work.Spectators, actorID, next)
	return work
}

func setStatusHandler(state domain.RoomState, action domain.Action) domain.RoomState {
	switch action.Status {
	case domain.StatusNotReady, domain.StatusReady, domain.StatusNeedsTime:
	default:
		return state
	}
	actorID := action.Actor(state)
	if _, ok := state.PlayerByID(actorID); !ok {
		return state
	}
	work := state.Clone()
	work.Players = domain.SetStatus(work.Players, actorID, action.Status)
	work.Spectators = domain.SetStatus(work.Spectators, actorID, action.Status)
	return work
}

func seatLayoutHandler(state domain.RoomState, action domain.Action) domain.RoomState {
	if state.Phase != domain.PhaseRoomLobby {
		return state
	}
	work := state.Clone()
	layout := domain.SeatLayout{
		SeatOrder:  action.SeatOrder,
		BenchOrder: action.BenchOrder,
		Kicked:     action.Kicked,
	}
	seated, benched := domain.ApplySeatLayout(work.Players, work.Spectators, work.HostID, work.Settings.MaxPlayers, layout)

	// A re-seat always demands fresh readiness.
	work.Players = domain.ResetStatuses(seated)
	work.Spectators = domain.ResetStatuses(benched)

	for _, id := range action.Kicked {
		if id == work.HostID {
			continue
		}
		delete(work.Hands, id)
	}
	work.History = domain.PushHistory(work.History, "Seats were rearranged.", 0)
	return work
}

func autoReadyBotsHandler(state domain.RoomState, action domain.Action) domain.RoomState {
	if state.Phase != domain.PhaseRoomLobby {
		return state
	}
	work := state.Clone()
	for i, p := range work.Players {
		if p.IsBot {
			work.Players[i] = p.WithStatus(domain.StatusReady)
		}
	}
	return work
}

func addBotHandler(state domain.RoomState, action domain.Action) domain.RoomState {
	if state.Phase != domain.PhaseRoomLobby || !state.IsHost(action.Actor(state)) {
		return state
	}
	if len(state.Players) >= state.Settings.MaxPlayers {
		work := state.Clone()
		work.Banner = "All seats are taken. Remove a player before adding a bot."
		return work
	}
	n := nextBotNumber(state)
	bot := domain.Player{ID: domain.BotID(n), Name: domain.BotName(n), IsBot: true}
	work := state.Clone()
	work.Players = append(work.Players, bot.WithStatus(domain.StatusNotReady))
	work.History = domain.PushHistory(work.History, fmt.Sprintf("%s joined.", bot.Name), 0)
	return work
}

func removeBotHandler(state domain.RoomState, action domain.Action) domain.RoomState {
	if state.Phase != domain.PhaseRoomLobby || !state.IsHost(action.Actor(state)) {
		return state
	}
	work := state.Clone()
	if idx := lastBotIndex(work.Players); idx >= 0 {
		name := work.Players[idx].Name
		delete(work.Hands, work.Players[idx].ID)
		work.Players = append(work.Players[:idx], work.Players[idx+1:]...)
		work.History = domain.PushHistory(work.History, fmt.Sprintf("%s left.", name), 0)
		return work
	}
	if idx := lastBotIndex(work.Spectators); idx >= 0 {
		name := work.Spectators[idx].Name
		delete(work.Hands, work.Spectators[idx].ID)
		work.Spectators = append(work.Spectators[:idx], work.Spectators[idx+1:]...)
		work.History = domain.PushHistory(work.History, fmt.Sprintf("%s left.", name), 0)
		return work
	}
	return state
}

func returnToLobbyHandler(state domain.RoomState, action domain.Action) domain.RoomState {
	if state.Phase != domain.PhasePlaying && state.Phase != domain.PhaseFinished {
		return state
	}
	work := state.Clone()
	work.Phase = domain.PhaseRoomLobby
	work.Hands = make(map[string][]domain.Card)
	work.DrawPile = nil
	work.DiscardPile = nil
	work.CurrentTurn = ""
	work.ActiveSuit = ""
	work.HeartsBroken = false
	work.Trick = nil
	work.TrickCaptures = nil
	work.Scores = nil
	work.RoundScores = nil
	work.TricksPlayed = 0
	work.GameOver = false
	work.History = nil
	work.Players = domain.ResetStatuses(work.Players)
	work.Spectators = domain.ResetStatuses(work.Spectators)
	work.Banner = "Back in the lobby. Ready up for the next game."
	return work
}

func resetSessionHandler(state domain.RoomState, action domain.Action) domain.RoomState {
	return NewIdleState(IdentityOptions{UserID: state.UserID, UserName: state.UserName})
}

// ReadyCheck validates seat count and readiness ahead of START_GAME,
// returning a banner message describing the shortfall or "" when the game
// may begin.
func ReadyCheck(state domain.RoomState, min, max int) string {
	if len(state.Players) < min {
		return fmt.Sprintf("Need at least %d players to begin.", min)
	}
	if len(state.Players) > max {
		return fmt.Sprintf("Too many players seated; this game takes at most %d.", max)
	}
	if !domain.AllReady(state.Players) {
		return "Waiting for everyone to be ready."
	}
	return ""
}

func removeByID(players []domain.Player, id string) []domain.Player {
	out := players[:0]
	for _, p := range players {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func lastBotIndex(players []domain.Player) int {
	for i := len(players) - 1; i >= 0; i-- {
		if players[i].IsBot {
			return i
		}
	}
	return -1
}

func nextBotNumber(state domain.RoomState) int {
	max := 0
	scan := func(players []domain.Player) {
		for _, p := range players {
			if !p.IsBot {
				continue
			}
			if n, err := strconv.Atoi(strings.TrimPrefix(p.ID, "bot-")); err == nil && n > max {
				max = n
			}
		}
	}
	scan(state.Players)
	scan(state.Spectators)
	return max + 1
}
