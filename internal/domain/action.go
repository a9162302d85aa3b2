package domain

// ActionType discriminates the closed set of room/game actions.
type ActionType string

const (
	ActionSetName         ActionType = "SET_NAME"
	ActionCreateRoom      ActionType = "CREATE_ROOM"
	ActionJoinRoom        ActionType = "JOIN_ROOM"
	ActionLeaveRoom       ActionType = "LEAVE_ROOM"
	ActionToggleReady     ActionType = "TOGGLE_READY"
	ActionSetPlayerStatus ActionType = "SET_PLAYER_STATUS"
	ActionSetSeatLayout   ActionType = "SET_SEAT_LAYOUT"
	ActionAutoReadyBots   ActionType = "AUTO_READY_BOTS"
	ActionAddBot          ActionType = "ADD_BOT"
	ActionRemoveBot       ActionType = "REMOVE_BOT"
	ActionStartGame       ActionType = "START_GAME"
	ActionPlayCard        ActionType = "PLAY_CARD"
	ActionDrawCard        ActionType = "DRAW_CARD"
	ActionReturnToLobby   ActionType = "RETURN_TO_LOBBY"
	ActionResetSession    ActionType = "RESET_SESSION"
)

// Action is a single intent fed into a game reducer. Fields beyond Type are
// payload, populated per action kind; unset fields are ignored.
type Action struct {
	Type ActionType `json:"type"`

	// PlayerID identifies the acting participant. Empty means the local user.
	PlayerID string `json:"playerId,omitempty"`

	Name     string        `json:"name,omitempty"`     // SET_NAME, JOIN_ROOM
	RoomID   string        `json:"roomId,omitempty"`   // CREATE_ROOM code override
	Settings *RoomSettings `json:"settings,omitempty"` // CREATE_ROOM overrides
	Status   PlayerStatus  `json:"status,omitempty"`   // SET_PLAYER_STATUS

	CardID       string `json:"cardId,omitempty"`       // PLAY_CARD
	DeclaredSuit Suit   `json:"declaredSuit,omitempty"` // PLAY_CARD with a wild

	SeatOrder  []string `json:"seatOrder,omitempty"`  // SET_SEAT_LAYOUT
	BenchOrder []string `json:"benchOrder,omitempty"` // SET_SEAT_LAYOUT
	Kicked     []string `json:"kicked,omitempty"`     // SET_SEAT_LAYOUT
}

// Actor resolves the acting player id, defaulting to the local user.
func (a Action) Actor(s RoomState) string {
	if a.PlayerID != "" {
		return a.PlayerID
	}
	return s.UserID
}
