// Package telegram wraps the Mini App host bridge: the identity carried in
// the WebApp init data and the chrome controls (back button, haptics,
// ready/close). Everything degrades to a no-op when the host is absent so
// the screens stay usable during development in a plain browser.
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// User is the identity object the Telegram host injects into the Mini App.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// DisplayName joins first and last name the way the lobby shows players.
func (u User) DisplayName() string {
	if u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.FirstName
}

// MockUser fabricates a development identity for running outside the
// Telegram host. Not meant for production.
func MockUser() User {
	return User{
		ID:        1 + rand.Int63n(999_999),
		FirstName: "Test User",
	}
}

var (
	ErrNoHash       = errors.New("telegram: init data has no hash")
	ErrNoUser       = errors.New("telegram: init data has no user")
	ErrBadSignature = errors.New("telegram: init data signature mismatch")
	ErrStale        = errors.New("telegram: init data is stale")
)

// MaxInitDataAge bounds how old accepted init data may be.
const MaxInitDataAge = 24 * time.Hour

// VerifyInitData checks a WebApp init data string against the bot token and
// returns the embedded user. The scheme is the documented one: the secret is
// HMAC-SHA256 of the bot token keyed with "WebAppData", and the hash covers
// the sorted key=value lines of every field except hash itself.
func VerifyInitData(initData, botToken string, now time.Time) (*User, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("telegram: parse init data: %w", err)
	}
	gotHash := values.Get("hash")
	if gotHash == "" {
		return nil, ErrNoHash
	}
	values.Del("hash")

	if !hmac.Equal([]byte(SignInitData(values, botToken)), []byte(gotHash)) {
		return nil, ErrBadSignature
	}

	if authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64); err == nil {
		if now.Sub(time.Unix(authDate, 0)) > MaxInitDataAge {
			return nil, ErrStale
		}
	}

	var user User
	if raw := values.Get("user"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return nil, fmt.Errorf("telegram: parse user: %w", err)
		}
	}
	if user.ID == 0 {
		return nil, ErrNoUser
	}
	return &user, nil
}

// SignInitData computes the hex hash Telegram would attach to the given
// fields. Exported for test fixtures.
func SignInitData(values url.Values, botToken string) string {
	lines := make([]string, 0, len(values))
	for k := range values {
		lines = append(lines, k+"="+values.Get(k))
	}
	sort.Strings(lines)

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(mac.Sum(nil))
}
