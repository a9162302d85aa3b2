package nakama

import (
	"context"
	"database/sql"
	"time"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/app/roomtoken"
	"github.com/Fantomex10/foxysgamehub-sub000/internal/config"
	"github.com/Fantomex10/foxysgamehub-sub000/internal/engine"
	"github.com/Fantomex10/foxysgamehub-sub000/internal/game/crazyeights"
	"github.com/Fantomex10/foxysgamehub-sub000/internal/game/hearts"

	"github.com/heroiclabs/nakama-common/runtime"
)

const roomTokenIssuer = "cardhub"

// InitModule wires RPCs, hooks and match handlers for the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	registry := engine.NewRegistry()
	if err := registry.Register(crazyeights.NewDescriptor); err != nil {
		return err
	}
	if err := registry.Register(hearts.NewDescriptor); err != nil {
		return err
	}

	secret := "dev-secret"
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if v := env["cardhub_room_token_secret"]; v != "" {
			secret = v
		} else {
			logger.Warn("InitModule: cardhub_room_token_secret missing from env, using dev default.")
		}
	}
	tokens := roomtoken.NewService(secret, roomTokenIssuer, time.Duration(config.RoomTokenTTL())*time.Second)

	if err := initializer.RegisterRpc(RpcFindRoom, rpcFindRoom(registry)); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcRoomToken, rpcRoomToken(tokens)); err != nil {
		return err
	}
	if err := initializer.RegisterAfterAuthenticateDevice(AfterAuthenticateDevice); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameCardHub, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
		return newMatchHandler(registry, NewNakamaProfileAdapter(nk), tokens), nil
	}); err != nil {
		return err
	}

	logger.Info("Card hub module loaded with games: %v", registry.IDs())
	return nil
}
