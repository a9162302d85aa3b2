package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/ports"
)

const (
	defaultCardBack   = "classic"
	defaultTableTheme = "green"
	avatarCount       = 12
)

// Service handles post-auth onboarding for new users.
type Service struct {
	profiles ports.ProfilePort
	rng      *rand.Rand
}

// NewService constructs an onboarding service.
// profiles must be non-nil; rng may be nil to use a time-seeded default.
func NewService(profiles ports.ProfilePort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		profiles: profiles,
		rng:      rng,
	}
}

// OnboardNewUser seeds the profile for a newly created account with a
// generated display name and default cosmetics.
// Returns the stored profile.
func (s *Service) OnboardNewUser(ctx context.Context, userID string) (ports.Profile, error) {
	if s.profiles == nil {
		return ports.Profile{}, fmt.Errorf("onboarding service not configured")
	}

	profile := ports.Profile{
		DisplayName: s.generateFriendlyName(),
		CardBack:    defaultCardBack,
		TableTheme:  defaultTableTheme,
		AvatarIndex: s.rng.Intn(avatarCount),
	}

	if err := s.profiles.SaveProfile(ctx, userID, profile); err != nil {
		return ports.Profile{}, fmt.Errorf("failed to seed profile: %w", err)
	}

	return profile, nil
}

func (s *Service) generateFriendlyName() string {
	adjectives := []string{"Happy", "Shiny", "Brave", "Clever", "Swift", "Calm", "Mighty", "Witty", "Sly", "Wild"}
	nouns := []string{"Panda", "Tiger", "Eagle", "Dolphin", "Wolf", "Otter", "Falcon", "Bear", "Fox", "Lion"}

	adj := adjectives[s.rng.Intn(len(adjectives))]
	noun := nouns[s.rng.Intn(len(nouns))]
	num := s.rng.Intn(9000) + 1000

	return fmt.Sprintf("%s%s%d", adj, noun, num)
}
