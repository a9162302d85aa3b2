package domain

// PlayerStatus is a seat-readiness marker cycled by TOGGLE_READY.
type PlayerStatus string

const (
	StatusNotReady  PlayerStatus = "notReady"
	StatusReady     PlayerStatus = "ready"
	StatusNeedsTime PlayerStatus = "needsTime"
)

// statusRing is the fixed 3-element cycle for TOGGLE_READY.
var statusRing = []PlayerStatus{StatusNotReady, StatusReady, StatusNeedsTime}

// NextStatus returns the status following s on the ring. Unknown statuses
// reset to notReady.
func NextStatus(s PlayerStatus) PlayerStatus {
	for i, st := range statusRing {
		if st == s {
			return statusRing[(i+1)%len(statusRing)]
		}
	}
	return StatusNotReady
}

// Player holds the lobby-visible state for a participant. IsReady is derived
// from Status and never set independently.
type Player struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	IsHost      bool         `json:"isHost"`
	IsBot       bool         `json:"isBot"`
	IsReady     bool         `json:"isReady"`
	Status      PlayerStatus `json:"status"`
	IsSpectator bool         `json:"isSpectator"`
}

// WithStatus returns a copy of p with the given status and the derived
// IsReady flag.
func (p Player) WithStatus(s PlayerStatus) Player {
	p.Status = s
	p.IsReady = s == StatusReady
	return p
}

// SetStatus applies a status to the player with the given id across both
// lists, returning updated copies.
func SetStatus(players []Player, id string, s PlayerStatus) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		if p.ID == id {
			p = p.WithStatus(s)
		}
		out[i] = p
	}
	return out
}

// ResetStatuses returns players with every status forced back to notReady.
func ResetStatuses(players []Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = p.WithStatus(StatusNotReady)
	}
	return out
}

// AllReady reports whether every listed player has status ready.
func AllReady(players []Player) bool {
	for _, p := range players {
		if !p.IsReady {
			return false
		}
	}
	return len(players) > 0
}
