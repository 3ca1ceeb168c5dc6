package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/akozyrev/draft-miniapp/internal/models"
)

// DefaultBaseURL is the deployed draft service endpoint, used when no
// BACKEND_URL override is configured.
const DefaultBaseURL = "http://h4o0k0w0wco44ksgggcwgk8c.194.147.95.202.sslip.io"

// ErrNoLobbyCode is returned when create_lobby answers without a lobby code.
// A lobby the user cannot share is a data-integrity failure, not something
// to navigate to.
var ErrNoLobbyCode = errors.New("backend: lobby created without a code")

var callsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "draft_backend_calls_total",
	Help: "Draft service calls by operation and outcome.",
}, []string{"op", "outcome"})

// APIError is a non-2xx response from the draft service. Callers that treat
// a rejection as benign (add_player for an existing id) log and discard it.
type APIError struct {
	Op     string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s: status %d: %s", e.Op, e.Status, e.Body)
}

// Client is a stateless typed client for the draft service. Every method is
// a single request/response; the client adds no retries, caching or
// deduplication on top of what the service provides.
type Client struct {
	base string
	http *http.Client
}

// New creates a client for the given base URL, falling back to the deployed
// endpoint when the URL is empty.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: http.DefaultClient,
	}
}

// AddPlayer registers a player by display name and external id. Re-adding an
// existing id is rejected by the service; callers tolerate that rejection as
// a normal outcome.
func (c *Client) AddPlayer(ctx context.Context, name string, id int64) (*models.Player, error) {
	var p models.Player
	err := c.call(ctx, http.MethodPost, "/add_player", url.Values{
		"player_name": {name},
		"player_id":   {formatID(id)},
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateLobby creates a lobby organized by the given player.
func (c *Client) CreateLobby(ctx context.Context, playerID int64) (*models.Lobby, error) {
	var l models.Lobby
	err := c.call(ctx, http.MethodPost, "/create_lobby", url.Values{
		"player_id": {formatID(playerID)},
	}, &l)
	if err != nil {
		return nil, err
	}
	if l.Code == "" {
		return nil, ErrNoLobbyCode
	}
	return &l, nil
}

// JoinLobby registers the player as a member of the lobby and returns the
// full aggregate. Joining is not idempotent from this side; use LobbyByCode
// first when membership is uncertain.
func (c *Client) JoinLobby(ctx context.Context, code string, playerID int64) (*models.LobbyState, error) {
	var state models.LobbyState
	err := c.call(ctx, http.MethodPost, "/join_lobby", url.Values{
		"lobby_code": {code},
		"player_id":  {formatID(playerID)},
	}, &state)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// LobbyByCode fetches the lobby aggregate without joining it.
func (c *Client) LobbyByCode(ctx context.Context, code string) (*models.LobbyState, error) {
	var state models.LobbyState
	err := c.call(ctx, http.MethodGet, "/get_lobby_by_code", url.Values{
		"lobby_code": {code},
	}, &state)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// CreateTeam creates a team in the lobby headed by the given leader.
func (c *Client) CreateTeam(ctx context.Context, lobbyID int64, name string, leaderID int64) (*models.Team, error) {
	var t models.Team
	err := c.call(ctx, http.MethodPost, "/create_team", url.Values{
		"lobby_id":       {formatID(lobbyID)},
		"team_name":      {name},
		"team_leader_id": {formatID(leaderID)},
	}, &t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// AddPlayerToTeam assigns the player to the team and returns the updated
// player record.
func (c *Client) AddPlayerToTeam(ctx context.Context, teamID, playerID int64) (*models.Player, error) {
	var p models.Player
	err := c.call(ctx, http.MethodPost, "/add_player_to_team", url.Values{
		"team_id":   {formatID(teamID)},
		"player_id": {formatID(playerID)},
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// LobbyPlayers fetches just the player list of a lobby, for partial refreshes.
func (c *Client) LobbyPlayers(ctx context.Context, lobbyID int64) ([]models.Player, error) {
	var players []models.Player
	err := c.call(ctx, http.MethodGet, "/get_lobby_players", url.Values{
		"lobby_id": {formatID(lobbyID)},
	}, &players)
	if err != nil {
		return nil, err
	}
	return players, nil
}

// LobbyTeams fetches just the team list of a lobby, for partial refreshes.
func (c *Client) LobbyTeams(ctx context.Context, lobbyID int64) ([]models.Team, error) {
	var teams []models.Team
	err := c.call(ctx, http.MethodGet, "/get_lobby_teams", url.Values{
		"lobby_id": {formatID(lobbyID)},
	}, &teams)
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// call issues one request with the parameters in the query string, the way
// the service expects them, and decodes the JSON response into out.
func (c *Client) call(ctx context.Context, method, path string, params url.Values, out any) error {
	op := strings.TrimPrefix(path, "/")

	u := c.base + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("backend: %s: build request: %w", op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		callsTotal.WithLabelValues(op, "error").Inc()
		return fmt.Errorf("backend: %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		callsTotal.WithLabelValues(op, "rejected").Inc()
		return &APIError{Op: op, Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			callsTotal.WithLabelValues(op, "error").Inc()
			return fmt.Errorf("backend: %s: decode response: %w", op, err)
		}
	}

	callsTotal.WithLabelValues(op, "ok").Inc()
	slog.Debug("backend call", "op", op, "status", resp.StatusCode)
	return nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
