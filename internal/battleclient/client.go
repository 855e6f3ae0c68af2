package battleclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/NathanielCarballo/RogueMon/internal/battle"
	"github.com/NathanielCarballo/RogueMon/internal/constants"
	"github.com/NathanielCarballo/RogueMon/internal/dedupe"
)

const defaultTimeout = 10 * time.Second

// Client talks to the battle service. All methods return plain errors;
// turning a failure into user-visible narration is the caller's job.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// StartBattle creates a new battle for the selected starter.
func (c *Client) StartBattle(ctx context.Context, playerKey string) (*battle.StateResponse, error) {
	var out battle.StateResponse
	err := c.postJSON(ctx, constants.RouteBattleStart, battle.StartRequest{Player: playerKey}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitTurn resolves one turn for the given move.
func (c *Client) SubmitTurn(ctx context.Context, battleID, move string) (*battle.StateResponse, error) {
	var out battle.StateResponse
	err := c.postJSON(ctx, constants.RouteBattleTurn, battle.TurnRequest{BattleID: battleID, Move: move}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AttemptCapture tries to catch the defeated enemy.
func (c *Client) AttemptCapture(ctx context.Context, battleID string) (*battle.CaptureResponse, error) {
	var out battle.CaptureResponse
	err := c.postJSON(ctx, constants.RouteBattleCapture, battle.CaptureRequest{BattleID: battleID}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListStarters fetches the selectable starters. Concurrent calls collapse
// into a single request via the shared singleflight group. The endpoint
// has been served both as a wrapped object and a bare array; both decode.
func (c *Client) ListStarters(ctx context.Context) ([]battle.Starter, error) {
	v, err, _ := dedupe.StartersGroup.Do(c.baseURL, func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+constants.RouteAPIPrefix+constants.RouteStarters, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("list starters: %w", err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("list starters: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("list starters: unexpected status %d", resp.StatusCode)
		}
		var wrapped battle.StartersResponse
		if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Starters != nil {
			return wrapped.Starters, nil
		}
		var bare []battle.Starter
		if err := json.Unmarshal(body, &bare); err != nil {
			return nil, fmt.Errorf("list starters: malformed response: %w", err)
		}
		return bare, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]battle.Starter), nil
}

func (c *Client) postJSON(ctx context.Context, route string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", route, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+constants.RouteAPIPrefix+route, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", route, err)
	}
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", route, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", route, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s: unexpected status %d: %s", route, resp.StatusCode, serviceError(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", route, err)
	}
	return nil
}

// serviceError extracts the error/message field from an error payload so
// logs carry something more useful than raw JSON.
func serviceError(body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, k := range []string{constants.JSONKeyError, constants.JSONKeyMessage} {
			if s, ok := payload[k].(string); ok && s != "" {
				return s
			}
		}
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 140 {
		s = s[:140]
	}
	return s
}
