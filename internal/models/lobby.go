package models

import "strings"

// CodeLength is the fixed length of a shareable lobby code.
const CodeLength = 6

// Lobby is a single game session. The code is the public lookup key; the
// organizer is fixed for the lobby's lifetime.
type Lobby struct {
	ID          int64  `json:"id"`
	Code        string `json:"lobby_code"`
	OrganizerID int64  `json:"organizer_id"`
}

// LobbyState is the full aggregate returned by join_lobby and
// get_lobby_by_code. It is adopted wholesale on each successful fetch and
// never mutated in place.
type LobbyState struct {
	Lobby   Lobby    `json:"lobby"`
	Players []Player `json:"players"`
	Teams   []Team   `json:"teams"`
}

// NormalizeCode trims and upper-cases a user-entered lobby code. Codes are
// case-insensitive on entry but always displayed and sent upper-case.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
