package roomtoken

import (
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// Service issues and verifies signed join tokens for private rooms, so a
// password is exchanged once over an RPC instead of riding along on every
// match join.
type Service struct {
	secret string
	issuer string
	ttl    time.Duration
}

// NewService constructs a token service. secret and issuer are required;
// ttl bounds token lifetime.
func NewService(secret, issuer string, ttl time.Duration) *Service {
	return &Service{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
	}
}

// Issue signs a join token binding a user to a room.
func (s *Service) Issue(userID, roomID string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("room token service is nil")
	}
	if userID == "" {
		return "", fmt.Errorf("user is required")
	}
	if roomID == "" {
		return "", fmt.Errorf("room is required")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("room token config is incomplete")
	}

	claims := jwt.MapClaims{
		"iss":  s.issuer,
		"sub":  userID,
		"room": roomID,
		"exp":  time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Verify parses a join token and returns the user and room it was issued
// for. Expired or tampered tokens fail.
func (s *Service) Verify(tokenString string) (userID, roomID string, err error) {
	if s == nil {
		return "", "", fmt.Errorf("room token service is nil")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return "", "", fmt.Errorf("invalid room token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("invalid room token claims")
	}
	if iss, _ := claims["iss"].(string); iss != s.issuer {
		return "", "", fmt.Errorf("room token issuer mismatch")
	}

	userID, _ = claims["sub"].(string)
	roomID, _ = claims["room"].(string)
	if userID == "" || roomID == "" {
		return "", "", fmt.Errorf("room token missing subject or room")
	}
	return userID, roomID, nil
}
