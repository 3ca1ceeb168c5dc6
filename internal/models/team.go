package models

// Team groups players under a designated leader within one lobby. A team's
// roster is not stored here; it is derived by filtering the player list for
// matching team references.
type Team struct {
	ID       int64  `json:"id"`
	LobbyID  int64  `json:"lobby_id"`
	Name     string `json:"team_name"`
	LeaderID int64  `json:"team_leader_id"`
}
