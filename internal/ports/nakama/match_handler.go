package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/app/roomtoken"
	"github.com/Fantomex10/foxysgamehub-sub000/internal/config"
	"github.com/Fantomex10/foxysgamehub-sub000/internal/domain"
	"github.com/Fantomex10/foxysgamehub-sub000/internal/engine"
	"github.com/Fantomex10/foxysgamehub-sub000/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const tickRate = 1 // ticks per second

// MatchState holds the authoritative runtime state for one room match.
// The room itself is owned by the game reducer; this layer only dispatches
// actions and relays snapshots.
type MatchState struct {
	Game      engine.Descriptor           `json:"-"`
	Room      domain.RoomState            `json:"room"`
	Presences map[string]runtime.Presence `json:"-"`

	Tick             int64 `json:"tick"`
	BotMinDelay      int   `json:"bot_min_delay"`       // Min seconds a bot waits beyond its think time
	BotMaxDelay      int   `json:"bot_max_delay"`       // Max seconds a bot waits beyond its think time
	BotAutoFillDelay int   `json:"bot_auto_fill_delay"` // Seconds a lone human waits before bots fill the lobby
	BotWaitUntil     int64 `json:"bot_wait_until"`      // Tick when the current bot should act
	LastSoloTick     int64 `json:"last_solo_tick"`      // Tick when a single human started waiting

	rng *rand.Rand
}

// HumanCount returns the number of connected human participants.
func (ms *MatchState) HumanCount() int {
	return len(ms.Presences)
}

type matchHandler struct {
	registry *engine.Registry
	profiles ports.ProfilePort
	tokens   *roomtoken.Service
}

func newMatchHandler(registry *engine.Registry, profiles ports.ProfilePort, tokens *roomtoken.Service) *matchHandler {
	return &matchHandler{registry: registry, profiles: profiles, tokens: tokens}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	if err := config.LoadHubConfig("data/hub_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load hub config: %v", err)
	}

	gameID, _ := params["game"].(string)
	desc, ok := mh.registry.Get(gameID)
	if !ok {
		ids := mh.registry.IDs()
		if len(ids) == 0 {
			logger.Error("MatchInit: No games registered.")
			return nil, 0, ""
		}
		desc, _ = mh.registry.Get(ids[0])
		logger.Warn("MatchInit: Unknown game %q, falling back to %q.", gameID, desc.ID)
	}

	minDelay, maxDelay := config.BotDelayBounds()
	state := &MatchState{
		Game:             desc,
		Room:             desc.NewInitialState(engine.IdentityOptions{}),
		Presences:        make(map[string]runtime.Presence),
		BotMinDelay:      minDelay,
		BotMaxDelay:      maxDelay,
		BotAutoFillDelay: config.BotAutoFillDelay(),
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// Environment overrides take precedence over the config file.
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if v, ok := env["cardhub_bot_min_delay_sec"]; ok {
			if i, err := strconv.Atoi(v); err == nil && i > 0 {
				state.BotMinDelay = i
			}
		}
		if v, ok := env["cardhub_bot_max_delay_sec"]; ok {
			if i, err := strconv.Atoi(v); err == nil && i >= state.BotMinDelay {
				state.BotMaxDelay = i
			}
		}
		if v, ok := env["cardhub_bot_auto_fill_delay_sec"]; ok {
			if i, err := strconv.Atoi(v); err == nil && i > 0 {
				state.BotAutoFillDelay = i
			}
		}
	}

	label, err := marshalLabel(&state.Room, desc.ID)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}
	return state, tickRate, label
}

// MatchJoinAttempt gates entry to full or password-protected rooms.
func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	room := &matchState.Room
	if room.Phase == domain.PhaseIdle {
		// First joiner becomes the host.
		return state, true, ""
	}

	if password := room.Settings.Password; password != "" {
		if metadata["password"] == password {
			return state, true, ""
		}
		if mh.tokens != nil {
			userID, roomID, err := mh.tokens.Verify(metadata["token"])
			if err == nil && userID == presence.GetUserId() && roomID == room.RoomID {
				return state, true, ""
			}
		}
		return state, false, "This room is private"
	}

	return state, true, ""
}

// MatchJoin seats or benches joining presences through the room reducer.
func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p
		name := mh.displayName(ctx, logger, p)

		if matchState.Room.Phase == domain.PhaseIdle {
			matchState.Room = matchState.Game.NewInitialState(engine.IdentityOptions{
				UserID:   p.GetUserId(),
				UserName: name,
			})
			mh.dispatch(matchState, domain.Action{Type: domain.ActionCreateRoom})
			logger.Info("MatchJoin: %s opened a %s room.", p.GetUserId(), matchState.Game.ID)
			continue
		}

		mh.dispatch(matchState, domain.Action{
			Type:     domain.ActionJoinRoom,
			PlayerID: p.GetUserId(),
			Name:     name,
		})
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshots(matchState, dispatcher, logger)
	return matchState
}

// displayName loads the stored profile name, falling back to the username.
func (mh *matchHandler) displayName(ctx context.Context, logger runtime.Logger, p runtime.Presence) string {
	if mh.profiles != nil {
		profile, err := mh.profiles.LoadProfile(ctx, p.GetUserId())
		if err != nil {
			logger.Warn("displayName: Could not load profile for %s: %v", p.GetUserId(), err)
		} else if profile.DisplayName != "" {
			return profile.DisplayName
		}
	}
	if p.GetUsername() != "" {
		return p.GetUsername()
	}
	return p.GetUserId()
}

// MatchLeave removes departing presences from the room.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		mh.dispatch(matchState, domain.Action{
			Type:     domain.ActionLeaveRoom,
			PlayerID: p.GetUserId(),
		})
	}

	if matchState.HumanCount() == 0 {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshots(matchState, dispatcher, logger)
	return matchState
}

// MatchLoop dispatches client actions and drives bot turns.
func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}
	matchState.Tick = tick

	acted := false
	for _, msg := range messages {
		if msg.GetOpCode() != OpAction {
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
			continue
		}

		var action domain.Action
		if err := json.Unmarshal(msg.GetData(), &action); err != nil {
			logger.Warn("MatchLoop: Bad action payload from %s: %v", msg.GetUserId(), err)
			mh.sendError(matchState, dispatcher, logger, msg.GetUserId(), 400, "malformed action")
			continue
		}

		// The sender is the actor, no matter what the payload claims.
		action.PlayerID = msg.GetUserId()
		mh.dispatch(matchState, action)
		acted = true
	}

	if mh.processBots(matchState, logger) {
		acted = true
	}

	if acted {
		mh.updateLabel(matchState, dispatcher, logger)
		mh.broadcastSnapshots(matchState, dispatcher, logger)
	}
	return matchState
}

// dispatch feeds one action through the game reducer.
func (mh *matchHandler) dispatch(ms *MatchState, action domain.Action) {
	ms.Room = ms.Game.Reduce(ms.Room, action)
}

// processBots fills lonely lobbies and plays bot turns. Returns true when
// any action was dispatched.
func (mh *matchHandler) processBots(ms *MatchState, logger runtime.Logger) bool {
	acted := false
	room := &ms.Room

	if room.Phase == domain.PhaseRoomLobby {
		// Auto-fill the lobby when a single human has waited long enough.
		if ms.HumanCount() == 1 && len(room.Players) < room.Settings.MaxPlayers {
			if ms.LastSoloTick == 0 {
				ms.LastSoloTick = ms.Tick
			}
			if ms.Tick-ms.LastSoloTick >= int64(ms.BotAutoFillDelay)*tickRate {
				for len(ms.Room.Players) < ms.Room.Settings.MaxPlayers {
					before := len(ms.Room.Players)
					mh.dispatch(ms, domain.Action{Type: domain.ActionAddBot, PlayerID: ms.Room.HostID})
					if len(ms.Room.Players) == before {
						break
					}
					acted = true
				}
				if acted {
					logger.Info("processBots: Auto-filled lobby to %d seats.", len(ms.Room.Players))
				}
				ms.LastSoloTick = 0
			}
		} else {
			ms.LastSoloTick = 0
		}

		// Bots ready up on their own.
		for _, p := range ms.Room.Players {
			if p.IsBot && !p.IsReady {
				mh.dispatch(ms, domain.Action{Type: domain.ActionAutoReadyBots, PlayerID: ms.Room.HostID})
				acted = true
				break
			}
		}
		return acted
	}

	if room.Phase != domain.PhasePlaying {
		ms.BotWaitUntil = 0
		return acted
	}

	current, ok := room.PlayerByID(room.CurrentTurn)
	if !ok || !current.IsBot {
		ms.BotWaitUntil = 0
		return acted
	}

	if ms.BotWaitUntil == 0 {
		think := int64(ms.Game.BotThinkDelay.Seconds()*tickRate + 0.5)
		window := int64(ms.rng.Intn(ms.BotMaxDelay-ms.BotMinDelay+1) + ms.BotMinDelay)
		ms.BotWaitUntil = ms.Tick + think + window*tickRate
		return acted
	}
	if ms.Tick < ms.BotWaitUntil {
		return acted
	}
	ms.BotWaitUntil = 0

	action := ms.Game.BotAction(ms.Room, current)
	if action == nil {
		return acted
	}
	mh.dispatch(ms, *action)
	return true
}

// snapshot is the per-recipient view of the room. Hidden hands are replaced
// by their sizes, the draw pile by its depth and the discard pile by its
// top card, so no client learns which buried cards a reshuffle recycles.
type snapshot struct {
	Room         domain.RoomState `json:"room"`
	HandCounts   map[string]int   `json:"handCounts"`
	DrawCount    int              `json:"drawCount"`
	DiscardCount int              `json:"discardCount"`
}

// snapshotFor redacts the room for one recipient.
func snapshotFor(room domain.RoomState, userID string) snapshot {
	out := room.Clone()
	counts := make(map[string]int, len(out.Hands))
	for id, hand := range out.Hands {
		counts[id] = len(hand)
		if id != userID {
			delete(out.Hands, id)
		}
	}
	drawCount := len(out.DrawPile)
	out.DrawPile = nil
	discardCount := len(out.DiscardPile)
	if discardCount > 1 {
		out.DiscardPile = out.DiscardPile[discardCount-1:]
	}
	return snapshot{Room: out, HandCounts: counts, DrawCount: drawCount, DiscardCount: discardCount}
}

func (mh *matchHandler) broadcastSnapshots(ms *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	for userID, presence := range ms.Presences {
		payload, err := json.Marshal(snapshotFor(ms.Room, userID))
		if err != nil {
			logger.Error("broadcastSnapshots: Failed to marshal snapshot: %v", err)
			return
		}
		dispatcher.BroadcastMessage(OpState, payload, []runtime.Presence{presence}, nil, true)
	}
}

// sendError sends an error event to a specific user.
func (mh *matchHandler) sendError(ms *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	payload, err := json.Marshal(map[string]interface{}{"code": code, "message": message})
	if err != nil {
		logger.Error("sendError: Failed to marshal error: %v", err)
		return
	}
	presence, ok := ms.Presences[userID]
	if !ok {
		logger.Warn("sendError: Presence not found for %s", userID)
		return
	}
	dispatcher.BroadcastMessage(OpError, payload, []runtime.Presence{presence}, nil, true)
}

func marshalLabel(room *domain.RoomState, gameID string) (string, error) {
	label, err := json.Marshal(domain.ComputeLabel(room, gameID))
	if err != nil {
		return "", err
	}
	return string(label), nil
}

func (mh *matchHandler) updateLabel(ms *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := marshalLabel(&ms.Room, ms.Game.ID)
	if err != nil {
		logger.Error("updateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("updateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
