package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// HubConfig tunes the card hub outside of per-room settings.
type HubConfig struct {
	// BotMinDelaySeconds/BotMaxDelaySeconds bound how long a bot waits
	// before acting, on top of each game's own think delay.
	BotMinDelaySeconds int `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds int `json:"bot_max_delay_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds a lone human
	// waits in a lobby before bots are added.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	// HistoryLimit overrides the room history cap.
	HistoryLimit int `json:"history_limit"`
	// RoomTokenTTLSeconds bounds the lifetime of private-room join tokens.
	RoomTokenTTLSeconds int `json:"room_token_ttl_seconds"`
}

var (
	cfg      *HubConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadHubConfig loads the hub configuration from the given path.
func LoadHubConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read hub config: %w", err)
			return
		}

		var c HubConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal hub config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetHubConfig returns the global hub configuration.
func GetHubConfig() *HubConfig {
	return cfg
}

// BotDelayBounds returns the configured bot delay window with safe defaults.
func BotDelayBounds() (min, max int) {
	min, max = 1, 3
	if cfg == nil {
		return min, max
	}
	if cfg.BotMinDelaySeconds > 0 {
		min = cfg.BotMinDelaySeconds
	}
	if cfg.BotMaxDelaySeconds >= min {
		max = cfg.BotMaxDelaySeconds
	} else {
		max = min
	}
	return min, max
}

// BotAutoFillDelay returns the lobby auto-fill delay in seconds.
func BotAutoFillDelay() int {
	if cfg == nil || cfg.BotAutoFillDelaySeconds <= 0 {
		return 5
	}
	return cfg.BotAutoFillDelaySeconds
}

// RoomTokenTTL returns the private-room join token lifetime in seconds.
func RoomTokenTTL() int {
	if cfg == nil || cfg.RoomTokenTTLSeconds <= 0 {
		return 3600
	}
	return cfg.RoomTokenTTLSeconds
}
