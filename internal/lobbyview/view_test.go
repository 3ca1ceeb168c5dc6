package lobbyview

import (
	"testing"

	"github.com/akozyrev/draft-miniapp/internal/models"
)

func teamRef(id int64) *int64 { return &id }

func TestResolveRole(t *testing.T) {
	lobby := models.Lobby{ID: 7, Code: "ABC123", OrganizerID: 42}

	tests := []struct {
		name    string
		players []models.Player
		userID  int64
		want    Role
	}{
		{
			name:    "organizer",
			players: []models.Player{{ID: 42, Status: models.StatusOutOfTeam}},
			userID:  42,
			want:    RoleOrganizer,
		},
		{
			// Organizer precedence holds even when the status says otherwise.
			name:    "organizer with plain player status",
			players: []models.Player{{ID: 42, Status: models.StatusPlayer}},
			userID:  42,
			want:    RoleOrganizer,
		},
		{
			name:    "organizer heading a team stays organizer",
			players: []models.Player{{ID: 42, Status: models.StatusLeader}},
			userID:  42,
			want:    RoleOrganizer,
		},
		{
			name:    "leader",
			players: []models.Player{{ID: 99, Status: models.StatusLeader}},
			userID:  99,
			want:    RoleCaptain,
		},
		{
			name:    "plain player",
			players: []models.Player{{ID: 5, Status: models.StatusPlayer}},
			userID:  5,
			want:    RolePlayer,
		},
		{
			name:    "user not in player list yet",
			players: []models.Player{{ID: 99, Status: models.StatusLeader}},
			userID:  5,
			want:    RolePlayer,
		},
		{
			name:   "empty player list",
			userID: 5,
			want:   RolePlayer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveRole(lobby, tt.players, tt.userID); got != tt.want {
				t.Errorf("ResolveRole() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	teams := []models.Team{
		{ID: 3, LobbyID: 7, Name: "Alpha", LeaderID: 99},
		{ID: 4, LobbyID: 7, Name: "Beta", LeaderID: 100},
	}
	players := []models.Player{
		{ID: 99, Name: "Cap A", TeamID: teamRef(3), Status: models.StatusLeader},
		{ID: 1, Name: "A1", TeamID: teamRef(3), Status: models.StatusPlayer},
		{ID: 2, Name: "A2", TeamID: teamRef(3), Status: models.StatusPlayer},
		{ID: 100, Name: "Cap B", TeamID: teamRef(4), Status: models.StatusLeader},
		{ID: 5, Name: "Free", Status: models.StatusOutOfTeam},
		{ID: 6, Name: "Ghost", Status: models.StatusInactive},
	}

	rosters, pool := Partition(players, teams)

	if len(rosters) != 2 {
		t.Fatalf("expected 2 rosters, got %d", len(rosters))
	}

	alpha := rosters[0]
	if alpha.Leader == nil || alpha.Leader.ID != 99 {
		t.Errorf("alpha leader: expected player 99, got %+v", alpha.Leader)
	}
	if len(alpha.Members) != 2 {
		t.Errorf("alpha members: expected 2, got %d", len(alpha.Members))
	}
	if alpha.Size != 3 {
		t.Errorf("alpha size: expected 3, got %d", alpha.Size)
	}

	beta := rosters[1]
	if beta.Leader == nil || beta.Leader.ID != 100 {
		t.Errorf("beta leader: expected player 100, got %+v", beta.Leader)
	}
	if len(beta.Members) != 0 {
		t.Errorf("beta members: expected none, got %d", len(beta.Members))
	}

	if len(pool) != 1 || pool[0].ID != 5 {
		t.Fatalf("pool: expected exactly player 5, got %+v", pool)
	}
}

// Each assigned player appears in exactly one roster and never in the pool.
func TestPartition_AssignedPlayersAppearOnce(t *testing.T) {
	teams := []models.Team{
		{ID: 3, LeaderID: 99},
		{ID: 4, LeaderID: 100},
	}
	players := []models.Player{
		{ID: 99, TeamID: teamRef(3), Status: models.StatusLeader},
		{ID: 1, TeamID: teamRef(3), Status: models.StatusPlayer},
		{ID: 100, TeamID: teamRef(4), Status: models.StatusLeader},
		{ID: 2, TeamID: teamRef(4), Status: models.StatusPlayer},
	}

	rosters, pool := Partition(players, teams)

	if len(pool) != 0 {
		t.Fatalf("pool: expected empty, got %+v", pool)
	}

	seen := make(map[int64]int)
	for _, r := range rosters {
		if r.Leader != nil {
			seen[r.Leader.ID]++
		}
		for _, m := range r.Members {
			seen[m.ID]++
		}
	}
	for _, p := range players {
		if seen[p.ID] != 1 {
			t.Errorf("player %d: expected exactly one roster appearance, got %d", p.ID, seen[p.ID])
		}
	}
}

// A stale team reference does not pull an out_of_team player into a card.
func TestPartition_OutOfTeamIgnoresTeamReference(t *testing.T) {
	teams := []models.Team{{ID: 3, LeaderID: 99}}
	players := []models.Player{
		{ID: 99, TeamID: teamRef(3), Status: models.StatusLeader},
		{ID: 5, TeamID: teamRef(3), Status: models.StatusOutOfTeam},
	}

	rosters, pool := Partition(players, teams)

	if rosters[0].Size != 1 {
		t.Errorf("roster size: expected 1, got %d", rosters[0].Size)
	}
	if len(pool) != 1 || pool[0].ID != 5 {
		t.Errorf("pool: expected exactly player 5, got %+v", pool)
	}
}

func TestBuild(t *testing.T) {
	state := &models.LobbyState{
		Lobby: models.Lobby{ID: 7, Code: "ABC123", OrganizerID: 42},
		Players: []models.Player{
			{ID: 42, Name: "Org", Status: models.StatusOutOfTeam},
			{ID: 99, Name: "Cap", TeamID: teamRef(3), Status: models.StatusLeader},
		},
		Teams: []models.Team{{ID: 3, LobbyID: 7, Name: "Alpha", LeaderID: 99}},
	}

	view := Build(state, 42)

	if view.Role != RoleOrganizer {
		t.Errorf("role: expected organizer, got %q", view.Role)
	}
	if !view.Organizer() {
		t.Error("Organizer() should be true for the organizer's view")
	}
	if len(view.Rosters) != 1 || view.Rosters[0].Leader == nil {
		t.Fatalf("rosters: expected one team with a leader, got %+v", view.Rosters)
	}
	if len(view.Unassigned) != 1 || view.Unassigned[0].ID != 42 {
		t.Errorf("unassigned: expected the organizer, got %+v", view.Unassigned)
	}

	captain := Build(state, 99)
	if captain.Role != RoleCaptain {
		t.Errorf("role: expected captain, got %q", captain.Role)
	}
	if captain.Organizer() {
		t.Error("Organizer() should be false for a captain")
	}
}
