package domain

// LabelPayload produces the values needed for match label advertisement.
type LabelPayload struct {
	Open  bool   `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// ComputeLabel derives the advertised label from room state. A room is open
// while its lobby has free seats and it is not password-gated.
func ComputeLabel(s *RoomState, gameID string) LabelPayload {
	open := s.Phase == PhaseRoomLobby &&
		len(s.Players) < s.Settings.MaxPlayers &&
		s.Settings.Password == "" &&
		s.Settings.Visibility != VisibilityPrivate
	return LabelPayload{Open: open, Game: gameID, Phase: string(s.Phase)}
}
