package onboarding

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/ports"
)

type fakeProfilePort struct {
	saveErr error
	saved   []savedProfile
}

type savedProfile struct {
	userID  string
	profile ports.Profile
}

func (f *fakeProfilePort) LoadProfile(ctx context.Context, userID string) (ports.Profile, error) {
	return ports.Profile{}, nil
}

func (f *fakeProfilePort) SaveProfile(ctx context.Context, userID string, profile ports.Profile) error {
	f.saved = append(f.saved, savedProfile{userID: userID, profile: profile})
	return f.saveErr
}

func TestOnboardNewUser_SeedsProfile(t *testing.T) {
	profiles := &fakeProfilePort{}
	service := NewService(profiles, rand.New(rand.NewSource(1)))

	profile, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}

	if len(profiles.saved) != 1 {
		t.Fatalf("Expected 1 profile save, got %d", len(profiles.saved))
	}
	if profiles.saved[0].userID != "user-1" {
		t.Fatalf("Expected profile saved for user-1, got %s", profiles.saved[0].userID)
	}
	if profile.DisplayName == "" {
		t.Fatal("Expected a generated display name")
	}
	if profile.CardBack != defaultCardBack {
		t.Fatalf("Expected card back %q, got %q", defaultCardBack, profile.CardBack)
	}
	if profile.TableTheme != defaultTableTheme {
		t.Fatalf("Expected table theme %q, got %q", defaultTableTheme, profile.TableTheme)
	}
	if profile.AvatarIndex < 0 || profile.AvatarIndex >= avatarCount {
		t.Fatalf("Avatar index %d out of range", profile.AvatarIndex)
	}
}

func TestOnboardNewUser_SaveFailureReturnsError(t *testing.T) {
	profiles := &fakeProfilePort{saveErr: errors.New("storage failed")}
	service := NewService(profiles, rand.New(rand.NewSource(1)))

	if _, err := service.OnboardNewUser(context.Background(), "user-1"); err == nil {
		t.Fatal("Expected error when profile save fails")
	}
}

func TestOnboardNewUser_NamesAreDeterministicPerSeed(t *testing.T) {
	a := NewService(&fakeProfilePort{}, rand.New(rand.NewSource(7)))
	b := NewService(&fakeProfilePort{}, rand.New(rand.NewSource(7)))

	profileA, err := a.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	profileB, err := b.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}

	if profileA.DisplayName != profileB.DisplayName {
		t.Fatalf("Expected matching names for equal seeds, got %q and %q", profileA.DisplayName, profileB.DisplayName)
	}
}
