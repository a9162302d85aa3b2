package domain

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// roomCodeAlphabet avoids easily-confused glyphs (0/O, 1/I/L).
const roomCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// NewUserID returns a fresh identity for a local participant.
func NewUserID() string {
	return uuid.NewString()
}

// NewRoomCode generates a 6-character joinable room code. A nil rng falls
// back to a time-seeded source.
func NewRoomCode(rng *rand.Rand) string {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	code := make([]byte, 6)
	for i := range code {
		code[i] = roomCodeAlphabet[rng.Intn(len(roomCodeAlphabet))]
	}
	return string(code)
}

// BotID returns the id for the nth sequentially-numbered bot seat.
func BotID(n int) string {
	return fmt.Sprintf("bot-%d", n)
}

// BotName returns the display name paired with BotID(n).
func BotName(n int) string {
	return fmt.Sprintf("Bot %d", n)
}
