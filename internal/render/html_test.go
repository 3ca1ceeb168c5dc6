package render

import (
	"strings"
	"testing"

	"github.com/akozyrev/draft-miniapp/internal/lobbyview"
	"github.com/akozyrev/draft-miniapp/internal/models"
)

func TestTeamCards(t *testing.T) {
	leader := models.Player{ID: 99, Name: "Cap <A>", Status: models.StatusLeader}
	rosters := []lobbyview.TeamRoster{
		{
			Team:    models.Team{ID: 3, Name: "Alpha"},
			Leader:  &leader,
			Members: []models.Player{{ID: 1, Name: "A1", Status: models.StatusPlayer}},
			Size:    2,
		},
	}

	html := TeamCards(rosters)

	if !strings.Contains(html, "Команды") {
		t.Error("missing section header")
	}
	if !strings.Contains(html, "Cap &lt;A&gt;") {
		t.Error("leader name not escaped")
	}
	if !strings.Contains(html, "👑") {
		t.Error("leader not set apart from the rank and file")
	}
	if !strings.Contains(html, "2 игроков") {
		t.Error("missing roster size")
	}
}

func TestTeamCards_Empty(t *testing.T) {
	if got := TeamCards(nil); got != "" {
		t.Errorf("expected no markup for zero teams, got %q", got)
	}
}

func TestUnassignedPool(t *testing.T) {
	players := []models.Player{
		{ID: 5, Name: "Free", Status: models.StatusOutOfTeam},
		{ID: 6, Name: "Loose", Status: models.StatusOutOfTeam},
	}

	html := UnassignedPool(players, false)
	if !strings.Contains(html, "Игроки без команды (2)") {
		t.Error("missing pool header with count")
	}
	if strings.Contains(html, "Удалить") {
		t.Error("remove control shown to a non-organizer")
	}

	if got := UnassignedPool(players, true); !strings.Contains(got, "Удалить") {
		t.Error("organizer should see the remove control")
	}
}

func TestLobbyBody(t *testing.T) {
	view := lobbyview.View{
		Lobby: models.Lobby{ID: 7, Code: "ABC123", OrganizerID: 42},
		Role:  lobbyview.RoleOrganizer,
	}

	html := LobbyBody(view)

	for _, want := range []string{
		"Роль: Организатор",
		"ABC123",
		"/lobby/ABC123/qr.png",
		"/lobby/ABC123/refresh",
		"Обновить",
		"Создать команду",
		"Начать драфт",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("lobby body missing %q", want)
		}
	}
}

func TestLobbyBody_PlayerSeesNoControls(t *testing.T) {
	view := lobbyview.View{
		Lobby: models.Lobby{ID: 7, Code: "ABC123", OrganizerID: 42},
		Role:  lobbyview.RolePlayer,
	}

	html := LobbyBody(view)
	if strings.Contains(html, "Управление") {
		t.Error("management card shown to a plain player")
	}
}

func TestErrorCard(t *testing.T) {
	html := ErrorCard("Не удалось загрузить лобби")
	if !strings.Contains(html, "Не удалось загрузить лобби") {
		t.Error("missing message")
	}
	if !strings.Contains(html, "Вернуться на главную") {
		t.Error("missing way back home")
	}
}
