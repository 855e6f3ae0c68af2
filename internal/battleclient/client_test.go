package battleclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NathanielCarballo/RogueMon/internal/battle"
)

func TestStartBattle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/battle/start" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"battle_id": "b-1",
			"player": {"name": "Bulbasaur", "max_hp": 45, "current_hp": 45, "pokedex_id": 1},
			"enemy": {"name": "Squirtle", "max_hp": 44, "current_hp": 44},
			"status": "ongoing",
			"message_log": ["A wild Squirtle appeared!"]
		}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).StartBattle(context.Background(), "bulbasaur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.BattleID != "b-1" || resp.Status != battle.StatusOngoing {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.MessageLog) != 1 {
		t.Fatalf("expected one start message, got %v", resp.MessageLog)
	}
}

func TestSubmitTurnCoercesScalarTurnLog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"player": {"current_hp": 40},
			"enemy": {"current_hp": 30},
			"status": "ongoing",
			"turn_log": "You used Tackle!"
		}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).SubmitTurn(context.Background(), "b-1", "tackle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.TurnLog) != 1 || resp.TurnLog[0] != "You used Tackle!" {
		t.Fatalf("scalar turn_log not coerced: %v", resp.TurnLog)
	}
}

func TestSubmitTurnTolerateNullTurnLog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"player": {"current_hp": 40}, "enemy": {"current_hp": 30}, "status": "ongoing", "turn_log": null}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).SubmitTurn(context.Background(), "b-1", "tackle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.TurnLog) != 0 {
		t.Fatalf("expected empty turn log, got %v", resp.TurnLog)
	}
}

func TestNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Battle not found"}`))
	}))
	defer srv.Close()

	if _, err := New(srv.URL).SubmitTurn(context.Background(), "nope", "tackle"); err == nil {
		t.Fatalf("expected error on 404")
	}
}

func TestListStartersWrappedAndBare(t *testing.T) {
	wrapped := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"starters": [{"key": "bulbasaur", "name": "Bulbasaur", "pokedex_id": 1, "sprite": "/assets/sprites/front/1.gif"}]}`))
	}))
	defer wrapped.Close()
	bare := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"key": "charmander", "name": "Charmander", "pokedex_id": 4}]`))
	}))
	defer bare.Close()

	got, err := New(wrapped.URL).ListStarters(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Key != "bulbasaur" {
		t.Fatalf("unexpected wrapped result: %+v", got)
	}

	got, err = New(bare.URL).ListStarters(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Key != "charmander" {
		t.Fatalf("unexpected bare result: %+v", got)
	}
}

func TestAttemptCapture(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "message": "Gotcha! Squirtle was caught!", "captured": {"key": "squirtle", "name": "Squirtle", "pokedex_id": 7}}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).AttemptCapture(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success || resp.Captured == nil || resp.Captured.Key != "squirtle" {
		t.Fatalf("unexpected capture response: %+v", resp)
	}
}
