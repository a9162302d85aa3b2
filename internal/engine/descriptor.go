package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/domain"
)

// Metadata describes a game for lobby advertisement and seat validation.
type Metadata struct {
	Description     string
	MinPlayers      int
	MaxPlayers      int
	AdjustableSeats bool
}

// IdentityOptions carries the optional local identity for a fresh session.
type IdentityOptions struct {
	UserID   string
	UserName string
}

// Reducer is a game transition function: full prior state in, full next
// state out. Invalid actions return the prior state unchanged.
type Reducer func(state domain.RoomState, action domain.Action) domain.RoomState

// BotPolicy maps current state plus a bot identity to its next action, or
// nil when the bot cannot or should not act.
type BotPolicy func(state domain.RoomState, bot domain.Player) *domain.Action

// Descriptor is the frozen plugin shape a game registers with the hub.
type Descriptor struct {
	ID              string
	Name            string
	Metadata        Metadata
	NewInitialState func(opts IdentityOptions) domain.RoomState
	Reduce          Reducer
	BotAction       BotPolicy
	BotThinkDelay   time.Duration
}

// Factory builds a descriptor carrying its own randomness source. A nil
// rng means the game seeds one from the clock. Reducers capture the rng,
// so a descriptor must never be shared across concurrently running rooms.
type Factory func(rng *rand.Rand) Descriptor

// Registry maps game ids to descriptor factories, validated at
// registration time.
type Registry struct {
	games map[string]Factory
}

// NewRegistry returns an empty game registry.
func NewRegistry() *Registry {
	return &Registry{games: make(map[string]Factory)}
}

// Register validates a factory's descriptor and stores the factory. Every
// descriptor field is required; a duplicate id is rejected.
func (r *Registry) Register(f Factory) error {
	if f == nil {
		return fmt.Errorf("register game: nil factory")
	}
	d := f(nil)
	switch {
	case d.ID == "":
		return fmt.Errorf("register game: missing id")
	case d.Name == "":
		return fmt.Errorf("register game %q: missing name", d.ID)
	case d.NewInitialState == nil:
		return fmt.Errorf("register game %q: missing initial state factory", d.ID)
	case d.Reduce == nil:
		return fmt.Errorf("register game %q: missing reducer", d.ID)
	case d.BotAction == nil:
		return fmt.Errorf("register game %q: missing bot policy", d.ID)
	case d.BotThinkDelay <= 0:
		return fmt.Errorf("register game %q: missing bot think delay", d.ID)
	case d.Metadata.MinPlayers < 1 || d.Metadata.MaxPlayers < d.Metadata.MinPlayers:
		return fmt.Errorf("register game %q: invalid player bounds %d..%d", d.ID, d.Metadata.MinPlayers, d.Metadata.MaxPlayers)
	}
	if _, exists := r.games[d.ID]; exists {
		return fmt.Errorf("register game %q: already registered", d.ID)
	}
	r.games[d.ID] = f
	return nil
}

// Get builds a fresh descriptor for id. Every call yields a descriptor
// with its own randomness source, so each room can run its reducer without
// coordinating with any other room.
func (r *Registry) Get(id string) (Descriptor, bool) {
	f, ok := r.games[id]
	if !ok {
		return Descriptor{}, false
	}
	return f(nil), true
}

// IDs returns every registered game id in stable order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.games))
	for id := range r.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
