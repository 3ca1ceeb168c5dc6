package models

// PlayerStatus is the lifecycle field the draft service keeps on every player.
// Exactly one status holds at a time and it is the sole source of role
// information below the organizer.
type PlayerStatus string

const (
	StatusInactive  PlayerStatus = "inactive"
	StatusLeader    PlayerStatus = "leader"
	StatusPlayer    PlayerStatus = "player"
	StatusOutOfTeam PlayerStatus = "out_of_team"
)

// Player represents a registered player as the draft service returns it.
// JSON tags mirror the service's wire contract exactly.
type Player struct {
	ID      int64        `json:"id"`
	Name    string       `json:"player_name"`
	TeamID  *int64       `json:"player_team_id,omitempty"`
	LobbyID *int64       `json:"lobby_id,omitempty"`
	Status  PlayerStatus `json:"status"`
}

// OnTeam reports whether the player carries a reference to the given team.
func (p Player) OnTeam(teamID int64) bool {
	return p.TeamID != nil && *p.TeamID == teamID
}
