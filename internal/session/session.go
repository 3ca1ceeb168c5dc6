// Package session signs the resolved Mini App identity into a browser
// cookie so the screens see a stable user across requests — including the
// development mock used outside Telegram, which would otherwise change on
// every reload.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akozyrev/draft-miniapp/internal/telegram"
)

// CookieName is the session cookie carrying the signed identity.
const CookieName = "draft_session"

var ErrInvalidToken = errors.New("session: invalid or expired token")

// Claims is the identity payload stored in the session token.
type Claims struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	Mock      bool   `json:"mock,omitempty"`
	jwt.RegisteredClaims
}

// User reconstructs the identity carried by the claims.
func (c *Claims) User() telegram.User {
	return telegram.User{
		ID:        c.UserID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Username:  c.Username,
	}
}

// Manager issues and validates session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a manager signing with the given secret; ttl is how
// long issued sessions stay valid.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs the identity into a token. mock marks development identities
// so the page can try to upgrade them with real init data.
func (m *Manager) Issue(user telegram.User, mock bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Mock:      mock,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("session: sign token: %w", err)
	}
	return token, nil
}

// Parse validates a token and returns its claims.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
