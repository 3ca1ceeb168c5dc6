// Package render builds the HTML fragments the lobby screen swaps in via
// HTMX. Fragments carry user data, so every name goes through EscapeString.
package render

import (
	htmlpkg "html"
	"strconv"
	"strings"

	"github.com/akozyrev/draft-miniapp/internal/lobbyview"
	"github.com/akozyrev/draft-miniapp/internal/models"
)

// ErrorText generates the inline error line used on the home screen forms.
func ErrorText(message string) string {
	var b strings.Builder
	b.WriteString(`<p class="error-text">`)
	b.WriteString(htmlpkg.EscapeString(message))
	b.WriteString(`</p>`)
	return b.String()
}

// ErrorCard generates the full-screen error state with a way back home.
func ErrorCard(message string) string {
	var b strings.Builder
	b.WriteString(`<div class="card error-card"><h2>Ошибка</h2><p>`)
	b.WriteString(htmlpkg.EscapeString(message))
	b.WriteString(`</p><a href="/" class="btn btn-primary">Вернуться на главную</a></div>`)
	return b.String()
}

// TeamCards generates the team section: one card per team with the leader
// set apart from the rank and file.
func TeamCards(rosters []lobbyview.TeamRoster) string {
	if len(rosters) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<h2>Команды</h2>`)
	for _, r := range rosters {
		b.WriteString(`<div class="card team-card"><div class="team-header"><h3>`)
		b.WriteString(htmlpkg.EscapeString(r.Team.Name))
		b.WriteString(`</h3><span class="team-count">`)
		b.WriteString(strconv.Itoa(r.Size))
		b.WriteString(` игроков</span></div>`)

		if r.Leader != nil {
			b.WriteString(`<div class="team-leader">👑 <span>`)
			b.WriteString(htmlpkg.EscapeString(r.Leader.Name))
			b.WriteString(`</span></div>`)
		}

		for _, m := range r.Members {
			b.WriteString(`<div class="team-member">• <span>`)
			b.WriteString(htmlpkg.EscapeString(m.Name))
			b.WriteString(`</span></div>`)
		}
		b.WriteString(`</div>`)
	}
	return b.String()
}

// UnassignedPool generates the list of players not yet placed on any team.
// The organizer additionally sees the (not yet wired) remove control.
func UnassignedPool(players []models.Player, organizer bool) string {
	if len(players) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<h2>Игроки без команды (`)
	b.WriteString(strconv.Itoa(len(players)))
	b.WriteString(`)</h2><div class="card">`)
	for _, p := range players {
		b.WriteString(`<div class="pool-player"><span>`)
		b.WriteString(htmlpkg.EscapeString(p.Name))
		b.WriteString(`</span>`)
		if organizer {
			b.WriteString(`<button class="btn-link" disabled>Удалить</button>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// OrganizerControls generates the management card. Team creation and draft
// start have no backing operation yet, so the buttons render disabled.
func OrganizerControls() string {
	return `<div class="card"><h2>Управление</h2>` +
		`<button class="btn btn-primary" disabled>Создать команду</button>` +
		`<button class="btn btn-success" disabled>Начать драфт</button></div>`
}

// LobbyBody composes the whole lobby fragment: role header, shareable code,
// team cards, unassigned pool, organizer controls and the refresh button.
// The refresh endpoint returns this same fragment for the HTMX swap.
func LobbyBody(view lobbyview.View) string {
	code := htmlpkg.EscapeString(view.Lobby.Code)

	var b strings.Builder
	b.WriteString(`<div id="lobby-body"><div class="card lobby-header"><div><h1>Лобби</h1><p class="role">Роль: `)
	b.WriteString(string(view.Role))
	b.WriteString(`</p></div><div class="lobby-code"><span class="code">`)
	b.WriteString(code)
	b.WriteString(`</span><img src="/lobby/`)
	b.WriteString(code)
	b.WriteString(`/qr.png" alt="QR" class="qr" width="96" height="96"></div></div>`)

	b.WriteString(TeamCards(view.Rosters))
	b.WriteString(UnassignedPool(view.Unassigned, view.Organizer()))
	if view.Organizer() {
		b.WriteString(OrganizerControls())
	}

	b.WriteString(`<button class="btn btn-secondary" hx-get="/lobby/`)
	b.WriteString(code)
	b.WriteString(`/refresh" hx-target="#lobby-body" hx-swap="outerHTML" hx-indicator=".loading">🔄 Обновить</button></div>`)
	return b.String()
}
