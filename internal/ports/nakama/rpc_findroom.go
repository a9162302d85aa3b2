package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/engine"

	"github.com/heroiclabs/nakama-common/runtime"
)

// FindRoomRequest selects which game to look for.
type FindRoomRequest struct {
	Game string `json:"game"`
}

// FindRoomResponse is the payload returned to clients when requesting a joinable room.
type FindRoomResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// rpcFindRoom searches for an open lobby of the requested game and creates
// one when none exists.
func rpcFindRoom(registry *engine.Registry) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

		var req FindRoomRequest
		if payload != "" {
			if err := json.Unmarshal([]byte(payload), &req); err != nil {
				return "", runtime.NewError("malformed payload", 3)
			}
		}

		desc, ok := registry.Get(req.Game)
		if !ok {
			return "", runtime.NewError(fmt.Sprintf("unknown game %q", req.Game), 3)
		}

		// Find any open lobby of this game with a free seat.
		query := fmt.Sprintf("+label.open:T +label.game:%s +label.phase:roomLobby", desc.ID)

		limit := 10
		authoritative := true
		minSize := 1
		maxSize := desc.Metadata.MaxPlayers - 1

		matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
		if err != nil {
			logger.Error("rpcFindRoom [User:%s]: Failed to list matches: %v", userID, err)
			return "", err
		}

		if len(matches) > 0 {
			resp := FindRoomResponse{MatchID: matches[0].MatchId, IsNew: false}
			b, _ := json.Marshal(resp)
			return string(b), nil
		}

		// Create a new room; host assignment happens in MatchJoin.
		matchID, err := nk.MatchCreate(ctx, MatchNameCardHub, map[string]interface{}{"game": desc.ID})
		if err != nil {
			logger.Error("rpcFindRoom [User:%s]: Failed to create match: %v", userID, err)
			return "", err
		}

		logger.Info("rpcFindRoom [User:%s]: Created new %s room %s", userID, desc.ID, matchID)
		resp := FindRoomResponse{MatchID: matchID, IsNew: true}
		b, _ := json.Marshal(resp)
		return string(b), nil
	}
}
