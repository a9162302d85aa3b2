package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/app/roomtoken"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RoomTokenRequest names the room the caller wants a join token for.
type RoomTokenRequest struct {
	RoomID string `json:"room_id"`
}

// RoomTokenResponse carries the signed join token.
type RoomTokenResponse struct {
	Token string `json:"token"`
}

// rpcRoomToken issues a signed token that lets the bearer into a
// password-protected room without the password. The host shares it
// out of band.
func rpcRoomToken(tokens *roomtoken.Service) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			return "", runtime.NewError("no user session", 16) // UNAUTHENTICATED
		}

		var req RoomTokenRequest
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
		}
		if req.RoomID == "" {
			return "", runtime.NewError("room_id required", 3)
		}

		token, err := tokens.Issue(userID, req.RoomID)
		if err != nil {
			logger.Error("rpcRoomToken [User:%s]: Failed to issue token: %v", userID, err)
			return "", runtime.NewError("Internal error", 13) // INTERNAL
		}

		resBytes, _ := json.Marshal(RoomTokenResponse{Token: token})
		return string(resBytes), nil
	}
}
