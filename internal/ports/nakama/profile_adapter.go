package nakama

import (
	"context"
	"encoding/json"

	"github.com/Fantomex10/foxysgamehub-sub000/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// NakamaProfileAdapter implements ports.ProfilePort on Nakama accounts.
// Display name lives on the account record; cosmetic preferences live in
// the account metadata blob.
type NakamaProfileAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaProfileAdapter creates a new profile adapter.
func NewNakamaProfileAdapter(nk runtime.NakamaModule) *NakamaProfileAdapter {
	return &NakamaProfileAdapter{nk: nk}
}

type profileMetadata struct {
	CardBack    string `json:"card_back,omitempty"`
	TableTheme  string `json:"table_theme,omitempty"`
	AvatarIndex int    `json:"avatar_index,omitempty"`
}

// LoadProfile fetches display name and cosmetics from the Nakama account.
func (a *NakamaProfileAdapter) LoadProfile(ctx context.Context, userID string) (ports.Profile, error) {
	acc, err := a.nk.AccountGetId(ctx, userID)
	if err != nil {
		return ports.Profile{}, err
	}

	profile := ports.Profile{DisplayName: acc.User.DisplayName}
	if acc.User.Metadata != "" {
		var meta profileMetadata
		// Metadata written by other features is ignored, not an error.
		if err := json.Unmarshal([]byte(acc.User.Metadata), &meta); err == nil {
			profile.CardBack = meta.CardBack
			profile.TableTheme = meta.TableTheme
			profile.AvatarIndex = meta.AvatarIndex
		}
	}
	return profile, nil
}

// SaveProfile persists display name and cosmetics back to the account.
func (a *NakamaProfileAdapter) SaveProfile(ctx context.Context, userID string, profile ports.Profile) error {
	metadata := map[string]interface{}{
		"card_back":    profile.CardBack,
		"table_theme":  profile.TableTheme,
		"avatar_index": profile.AvatarIndex,
	}
	return a.nk.AccountUpdateId(ctx, userID, "", metadata, profile.DisplayName, "", "", "", "")
}

var _ ports.ProfilePort = (*NakamaProfileAdapter)(nil)
