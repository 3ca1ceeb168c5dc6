// Package lobbyview derives everything the lobby screen shows from a raw
// lobby aggregate: the current user's role, per-team rosters and the pool of
// players not yet placed on a team. All derivations are pure functions; the
// screen replaces its view wholesale on each successful fetch.
package lobbyview

import (
	"github.com/akozyrev/draft-miniapp/internal/models"
)

// Role is the displayed role of the current user within a lobby.
type Role string

const (
	RoleOrganizer Role = "Организатор"
	RoleCaptain   Role = "Капитан"
	RolePlayer    Role = "Игрок"
)

// ResolveRole derives the user's role with fixed precedence
// organizer > leader > default. An organizer who also heads a team is still
// shown as organizer, and a user missing from the player list is a plain
// player.
func ResolveRole(lobby models.Lobby, players []models.Player, userID int64) Role {
	if lobby.OrganizerID == userID {
		return RoleOrganizer
	}
	for _, p := range players {
		if p.ID == userID && p.Status == models.StatusLeader {
			return RoleCaptain
		}
	}
	return RolePlayer
}

// TeamRoster is one team card: the leader rendered apart from the rank and
// file, plus the total count of players referencing the team.
type TeamRoster struct {
	Team    models.Team
	Leader  *models.Player
	Members []models.Player
	Size    int
}

// Partition splits the player list into per-team rosters and the unassigned
// pool. A player with status out_of_team always lands in the pool, even with
// a stale team reference; inactive players appear nowhere.
func Partition(players []models.Player, teams []models.Team) ([]TeamRoster, []models.Player) {
	rosters := make([]TeamRoster, 0, len(teams))
	for _, t := range teams {
		roster := TeamRoster{Team: t}
		for i, p := range players {
			if !p.OnTeam(t.ID) || p.Status == models.StatusOutOfTeam || p.Status == models.StatusInactive {
				continue
			}
			roster.Size++
			switch {
			case p.ID == t.LeaderID:
				roster.Leader = &players[i]
			case p.Status == models.StatusPlayer:
				roster.Members = append(roster.Members, p)
			}
		}
		rosters = append(rosters, roster)
	}

	var pool []models.Player
	for _, p := range players {
		if p.Status == models.StatusOutOfTeam {
			pool = append(pool, p)
		}
	}
	return rosters, pool
}

// View is the immutable per-render projection of a lobby aggregate for one
// user.
type View struct {
	Lobby      models.Lobby
	Role       Role
	Rosters    []TeamRoster
	Unassigned []models.Player
}

// Build assembles the view for one user from a fetched aggregate.
func Build(state *models.LobbyState, userID int64) View {
	rosters, pool := Partition(state.Players, state.Teams)
	return View{
		Lobby:      state.Lobby,
		Role:       ResolveRole(state.Lobby, state.Players, userID),
		Rosters:    rosters,
		Unassigned: pool,
	}
}

// Organizer reports whether the view belongs to the lobby's organizer, who
// alone sees the management controls.
func (v View) Organizer() bool {
	return v.Role == RoleOrganizer
}
