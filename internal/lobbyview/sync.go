package lobbyview

import (
	"context"
	"slices"

	"github.com/akozyrev/draft-miniapp/internal/models"
)

// Service is the slice of the draft service the lobby screen entry needs.
type Service interface {
	LobbyByCode(ctx context.Context, code string) (*models.LobbyState, error)
	JoinLobby(ctx context.Context, code string, playerID int64) (*models.LobbyState, error)
}

// Syncer owns the join-or-rejoin decision made on every lobby screen entry.
//
// join_lobby is not safely repeatable from this side: issuing it for a user
// who is already a member risks redundant membership churn. Entry therefore
// fetches the aggregate without side effects first and only joins when the
// user is absent from the player list. Two near-simultaneous first joins can
// still both succeed server-side; the service is the source of truth for
// that race.
type Syncer struct {
	api Service
}

// NewSyncer creates a Syncer backed by the given service.
func NewSyncer(api Service) *Syncer {
	return &Syncer{api: api}
}

// Enter returns the aggregate to display and whether a join was issued. On
// any failure no partial state is returned; the caller keeps whatever it was
// showing before.
func (s *Syncer) Enter(ctx context.Context, code string, userID int64) (*models.LobbyState, bool, error) {
	state, err := s.api.LobbyByCode(ctx, code)
	if err != nil {
		return nil, false, err
	}
	if hasPlayer(state.Players, userID) {
		return state, false, nil
	}

	joined, err := s.api.JoinLobby(ctx, code, userID)
	if err != nil {
		return nil, false, err
	}
	return joined, true, nil
}

func hasPlayer(players []models.Player, id int64) bool {
	return slices.ContainsFunc(players, func(p models.Player) bool { return p.ID == id })
}
