package nakama

const (
	// RpcFindRoom is the Nakama RPC id clients call to find or create an
	// open room for a given game.
	RpcFindRoom = "find_room"

	// RpcRoomToken is the Nakama RPC id clients call to exchange a room
	// password for a signed join token.
	RpcRoomToken = "room_token"

	// MatchNameCardHub is the authoritative match handler name registered
	// with Nakama.
	MatchNameCardHub = "cardhub_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server: a JSON-encoded room/game action.
	OpAction int64 = 1

	// Server -> Client
	OpState int64 = 101 // personalized room snapshot
	OpError int64 = 102 // request-level failure
)
