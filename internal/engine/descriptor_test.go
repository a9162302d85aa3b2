package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/domain"
)

func validDescriptor(id string) Descriptor {
	return Descriptor{
		ID:   id,
		Name: "Test Game",
		Metadata: Metadata{
			MinPlayers: 2,
			MaxPlayers: 4,
		},
		NewInitialState: NewIdleState,
		Reduce: func(state domain.RoomState, action domain.Action) domain.RoomState {
			return state
		},
		BotAction: func(state domain.RoomState, bot domain.Player) *domain.Action {
			return nil
		},
		BotThinkDelay: time.Second,
	}
}

func validFactory(id string) Factory {
	return func(rng *rand.Rand) Descriptor {
		return validDescriptor(id)
	}
}

func TestRegistryRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Descriptor)
	}{
		{name: "MissingID", mutate: func(d *Descriptor) { d.ID = "" }},
		{name: "MissingName", mutate: func(d *Descriptor) { d.Name = "" }},
		{name: "MissingInitialState", mutate: func(d *Descriptor) { d.NewInitialState = nil }},
		{name: "MissingReducer", mutate: func(d *Descriptor) { d.Reduce = nil }},
		{name: "MissingBotPolicy", mutate: func(d *Descriptor) { d.BotAction = nil }},
		{name: "MissingThinkDelay", mutate: func(d *Descriptor) { d.BotThinkDelay = 0 }},
		{name: "ZeroMinPlayers", mutate: func(d *Descriptor) { d.Metadata.MinPlayers = 0 }},
		{name: "MaxBelowMin", mutate: func(d *Descriptor) { d.Metadata.MaxPlayers = 1 }},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			f := func(rng *rand.Rand) Descriptor {
				d := validDescriptor("game")
				test.mutate(&d)
				return d
			}
			if err := NewRegistry().Register(f); err == nil {
				t.Fatal("Expected registration to fail")
			}
		})
	}
}

func TestRegistryRegister_RejectsNilFactory(t *testing.T) {
	if err := NewRegistry().Register(nil); err == nil {
		t.Fatal("Expected nil factory registration to fail")
	}
}

func TestRegistryRegister_RejectsDuplicateID(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(validFactory("game")); err != nil {
		t.Fatalf("First registration failed: %v", err)
	}
	if err := r.Register(validFactory("game")); err == nil {
		t.Fatal("Expected duplicate registration to fail")
	}
}

func TestRegistryGetAndIDs(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"zeta", "alpha", "mid"} {
		if err := r.Register(validFactory(id)); err != nil {
			t.Fatalf("Register(%s) failed: %v", id, err)
		}
	}

	if _, ok := r.Get("alpha"); !ok {
		t.Fatal("Expected alpha to be registered")
	}
	if _, ok := r.Get("missing"); ok {
		t.Fatal("Expected missing id to report absent")
	}

	ids := r.IDs()
	want := []string{"alpha", "mid", "zeta"}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("IDs() = %v, want %v", ids, want)
		}
	}
}
