package domain

// Phase represents the lifecycle stage of a room.
type Phase string

const (
	// PhaseIdle is the pre-room state holding only local identity.
	PhaseIdle Phase = "idle"
	// PhaseRoomLobby is the seat/ready stage before play begins.
	PhaseRoomLobby Phase = "roomLobby"
	// PhasePlaying is the active game state where cards are played.
	PhasePlaying Phase = "playing"
	// PhaseFinished is the state after a round concludes.
	PhaseFinished Phase = "finished"
)

// Visibility controls whether a room is advertised publicly.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// RoomSettings is the configuration captured at room creation.
type RoomSettings struct {
	MaxPlayers  int            `json:"maxPlayers"`
	InitialBots int            `json:"initialBots"`
	RoomName    string         `json:"roomName"`
	Rules       map[string]any `json:"rules,omitempty"`
	Visibility  Visibility     `json:"visibility"`
	Password    string         `json:"password,omitempty"`
}

// MergeSettings overlays caller-supplied overrides on a game's defaults.
// Rules maps are merged shallowly; zero-value overrides keep the default.
func MergeSettings(defaults RoomSettings, override *RoomSettings) RoomSettings {
	out := defaults
	if out.Rules != nil {
		rules := make(map[string]any, len(out.Rules))
		for k, v := range out.Rules {
			rules[k] = v
		}
		out.Rules = rules
	}
	if override == nil {
		return out
	}
	if override.MaxPlayers > 0 {
		out.MaxPlayers = override.MaxPlayers
	}
	if override.InitialBots > 0 {
		out.InitialBots = override.InitialBots
	}
	if override.RoomName != "" {
		out.RoomName = override.RoomName
	}
	if override.Visibility != "" {
		out.Visibility = override.Visibility
	}
	if override.Password != "" {
		out.Password = override.Password
	}
	for k, v := range override.Rules {
		if out.Rules == nil {
			out.Rules = make(map[string]any)
		}
		out.Rules[k] = v
	}
	return out
}

// TrickPlay records one card contributed to the trick in play.
type TrickPlay struct {
	PlayerID string `json:"playerId"`
	Card     Card   `json:"card"`
}

// RoomState is the full aggregate for one room. It is owned by the game
// reducer: callers treat returned values as read-only snapshots.
type RoomState struct {
	// Local participant identity, preserved across RESET_SESSION.
	UserID   string `json:"userId"`
	UserName string `json:"userName"`

	RoomID   string       `json:"roomId"`
	RoomName string       `json:"roomName"`
	HostID   string       `json:"hostId"`
	Settings RoomSettings `json:"settings"`

	Phase      Phase    `json:"phase"`
	Players    []Player `json:"players"`
	Spectators []Player `json:"spectators"`

	Hands       map[string][]Card `json:"hands"`
	DrawPile    []Card            `json:"drawPile,omitempty"`
	DiscardPile []Card            `json:"discardPile,omitempty"`

	CurrentTurn string   `json:"currentTurn"`
	Banner      string   `json:"banner"`
	History     []string `json:"history"`

	// Shedding-game fields.
	ActiveSuit Suit `json:"activeSuit,omitempty"`

	// Trick-game fields.
	HeartsBroken  bool              `json:"heartsBroken,omitempty"`
	Trick         []TrickPlay       `json:"trick,omitempty"`
	TrickCaptures map[string][]Card `json:"trickCaptures,omitempty"`
	Scores        map[string]int    `json:"scores,omitempty"`
	RoundScores   map[string]int    `json:"roundScores,omitempty"`
	TricksPlayed  int               `json:"tricksPlayed,omitempty"`
	GameOver      bool              `json:"gameOver,omitempty"`
}

// Clone returns a deep copy of the state so handlers can mutate freely
// without aliasing the caller's snapshot.
func (s RoomState) Clone() RoomState {
	out := s
	out.Players = append([]Player(nil), s.Players...)
	out.Spectators = append([]Player(nil), s.Spectators...)
	out.DrawPile = append([]Card(nil), s.DrawPile...)
	out.DiscardPile = append([]Card(nil), s.DiscardPile...)
	out.History = append([]string(nil), s.History...)
	out.Trick = append([]TrickPlay(nil), s.Trick...)
	if s.Hands != nil {
		out.Hands = make(map[string][]Card, len(s.Hands))
		for id, hand := range s.Hands {
			out.Hands[id] = append([]Card(nil), hand...)
		}
	}
	if s.TrickCaptures != nil {
		out.TrickCaptures = make(map[string][]Card, len(s.TrickCaptures))
		for id, cards := range s.TrickCaptures {
			out.TrickCaptures[id] = append([]Card(nil), cards...)
		}
	}
	if s.Scores != nil {
		out.Scores = make(map[string]int, len(s.Scores))
		for id, v := range s.Scores {
			out.Scores[id] = v
		}
	}
	if s.RoundScores != nil {
		out.RoundScores = make(map[string]int, len(s.RoundScores))
		for id, v := range s.RoundScores {
			out.RoundScores[id] = v
		}
	}
	if s.Settings.Rules != nil {
		out.Settings.Rules = make(map[string]any, len(s.Settings.Rules))
		for k, v := range s.Settings.Rules {
			out.Settings.Rules[k] = v
		}
	}
	return out
}

// PlayerByID looks up a participant by id across seats and bench.
func (s RoomState) PlayerByID(id string) (Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	for _, p := range s.Spectators {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// SeatIndex returns the seat position of a player id, or -1 when benched
// or unknown.
func (s RoomState) SeatIndex(id string) int {
	for i, p := range s.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// NextSeatedAfter returns the id of the player seated after the given id,
// cycling through seats in stable order. Falls back to the first seat when
// the id is unknown.
func (s RoomState) NextSeatedAfter(id string) string {
	if len(s.Players) == 0 {
		return ""
	}
	idx := s.SeatIndex(id)
	if idx < 0 {
		return s.Players[0].ID
	}
	return s.Players[(idx+1)%len(s.Players)].ID
}

// IsHost reports whether the given id owns the room.
func (s RoomState) IsHost(id string) bool {
	return s.HostID != "" && s.HostID == id
}
