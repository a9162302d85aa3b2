package ports

import "context"

// Profile holds the display identity and cosmetic preferences stored for a
// user. Gameplay correctness never depends on it.
type Profile struct {
	DisplayName string
	CardBack    string
	TableTheme  string
	AvatarIndex int
}

// ProfilePort defines the interface to the remote identity/profile store.
type ProfilePort interface {
	// LoadProfile fetches the stored profile for the given user.
	LoadProfile(ctx context.Context, userID string) (Profile, error)

	// SaveProfile persists display name and cosmetic preferences.
	SaveProfile(ctx context.Context, userID string, profile Profile) error
}
