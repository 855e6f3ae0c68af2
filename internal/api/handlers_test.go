package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NathanielCarballo/RogueMon/internal/battle"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func post(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) battle.StateResponse {
	t.Helper()
	var out battle.StateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestStartBattle(t *testing.T) {
	router := Router(NewBattleHandlerWithSeed(1))
	w := post(t, router, "/api/battle/start", battle.StartRequest{Player: "bulbasaur"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeState(t, w)
	if resp.BattleID == "" {
		t.Fatalf("expected battle id")
	}
	if resp.Status != battle.StatusOngoing {
		t.Fatalf("fresh battle must be ongoing, got %s", resp.Status)
	}
	if resp.Player.Name != "Bulbasaur" || resp.Player.PokedexID != 1 {
		t.Fatalf("unexpected player: %+v", resp.Player)
	}
	if len(resp.MessageLog) != 1 {
		t.Fatalf("expected an encounter line, got %v", resp.MessageLog)
	}
}

func TestStartBattleRejectsUnknownStarter(t *testing.T) {
	router := Router(NewBattleHandlerWithSeed(1))
	if w := post(t, router, "/api/battle/start", battle.StartRequest{Player: "mewtwo"}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSubmitTurnFlow(t *testing.T) {
	router := Router(NewBattleHandlerWithSeed(1))
	start := decodeState(t, post(t, router, "/api/battle/start", battle.StartRequest{Player: "bulbasaur"}))

	w := post(t, router, "/api/battle/turn", battle.TurnRequest{BattleID: start.BattleID, Move: "tackle"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeState(t, w)
	if len(resp.TurnLog) == 0 {
		t.Fatalf("expected a turn delta log")
	}
	if resp.Enemy.CurrentHP >= resp.Enemy.MaxHP && resp.Player.CurrentHP >= resp.Player.MaxHP {
		t.Fatalf("expected some damage after a tackle turn: %+v %+v", resp.Player, resp.Enemy)
	}
}

func TestSubmitTurnUnknownBattle(t *testing.T) {
	router := Router(NewBattleHandlerWithSeed(1))
	if w := post(t, router, "/api/battle/turn", battle.TurnRequest{BattleID: "nope", Move: "tackle"}); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCaptureOnlyAfterWin(t *testing.T) {
	router := Router(NewBattleHandlerWithSeed(1))
	start := decodeState(t, post(t, router, "/api/battle/start", battle.StartRequest{Player: "bulbasaur"}))

	if w := post(t, router, "/api/battle/capture", battle.CaptureRequest{BattleID: start.BattleID}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 before a win, got %d", w.Code)
	}
}

func TestCaptureAfterWinResolvesOnce(t *testing.T) {
	h := NewBattleHandlerWithSeed(1)
	router := Router(h)
	start := decodeState(t, post(t, router, "/api/battle/start", battle.StartRequest{Player: "bulbasaur"}))

	// Force a win instead of grinding turns.
	h.mu.Lock()
	h.battles[start.BattleID].Enemy.ApplyDamage(999)
	h.mu.Unlock()

	w := post(t, router, "/api/battle/capture", battle.CaptureRequest{BattleID: start.BattleID})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp battle.CaptureResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message == "" {
		t.Fatalf("expected capture narration")
	}
	if resp.Success && (resp.Captured == nil || resp.Captured.CurrentHP != resp.Captured.MaxHP) {
		t.Fatalf("captured mon must be healed: %+v", resp.Captured)
	}

	if w := post(t, router, "/api/battle/capture", battle.CaptureRequest{BattleID: start.BattleID}); w.Code != http.StatusConflict {
		t.Fatalf("second capture attempt must 409, got %d", w.Code)
	}
}

func TestListStarters(t *testing.T) {
	router := Router(NewBattleHandlerWithSeed(1))
	req := httptest.NewRequest(http.MethodGet, "/api/starters", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp battle.StartersResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Starters) != 3 {
		t.Fatalf("expected 3 starters, got %d", len(resp.Starters))
	}
	if resp.Starters[0].Sprite != "/assets/sprites/front/1.gif" {
		t.Fatalf("unexpected sprite path: %s", resp.Starters[0].Sprite)
	}
}
