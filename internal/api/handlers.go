package api

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/NathanielCarballo/RogueMon/internal/battle"
	"github.com/NathanielCarballo/RogueMon/internal/constants"
	"github.com/NathanielCarballo/RogueMon/internal/engine"
	"github.com/NathanielCarballo/RogueMon/internal/logging"
	"github.com/NathanielCarballo/RogueMon/internal/sprites"

	"github.com/gin-gonic/gin"
)

// BattleHandler serves the four battle-service endpoints the client
// consumes. Battles live in memory only; this server exists for local
// development and testing.
type BattleHandler struct {
	mu      sync.Mutex
	battles map[string]*engine.Battle
	rng     *rand.Rand
}

func NewBattleHandler() *BattleHandler {
	return &BattleHandler{
		battles: make(map[string]*engine.Battle),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewBattleHandlerWithSeed builds a handler with a deterministic RNG.
func NewBattleHandlerWithSeed(seed int64) *BattleHandler {
	h := NewBattleHandler()
	h.rng = rand.New(rand.NewSource(seed))
	return h
}

// StartBattle creates a new battle against a randomly chosen enemy and
// returns its initial state.
func (h *BattleHandler) StartBattle(c *gin.Context) {
	var req battle.StartRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Player == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	playerSpecies, ok := engine.SpeciesByKey(req.Player)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownStarter})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	enemyKey := engine.StarterKeys()[h.rng.Intn(len(engine.StarterKeys()))]
	enemySpecies, _ := engine.SpeciesByKey(enemyKey)
	b := engine.NewBattle(
		engine.NewPokemon(req.Player, playerSpecies),
		engine.NewPokemon(enemyKey, enemySpecies),
		rand.New(rand.NewSource(h.rng.Int63())),
	)
	b.Log = append(b.Log, "A wild "+b.Enemy.Name+" appeared!")

	id := newBattleID(h.rng)
	h.battles[id] = b

	logging.Info("battle created", logging.Fields{
		constants.LogFieldBattleID: id,
		constants.LogFieldPlayer:   req.Player,
		constants.LogFieldEnemy:    enemyKey,
	})
	c.JSON(http.StatusOK, stateResponse(id, b, b.Log))
}

// SubmitTurn resolves one turn: the player's move against a randomly
// chosen enemy move, returning the new state plus this turn's delta log.
func (h *BattleHandler) SubmitTurn(c *gin.Context) {
	var req battle.TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BattleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if _, ok := engine.MoveByKey(req.Move); !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownMove})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	b, ok := h.battles[req.BattleID]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	if b.Resolving {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrTurnInProgress})
		return
	}
	// A decided battle just returns its final state, no new delta.
	if b.Result() != battle.StatusOngoing {
		c.JSON(http.StatusOK, stateResponse(req.BattleID, b, nil))
		return
	}

	b.Resolving = true
	defer func() { b.Resolving = false }()

	turnLog := b.TakeTurn(req.Move, b.PickEnemyMove())
	c.JSON(http.StatusOK, stateResponse(req.BattleID, b, turnLog))
}

// AttemptCapture rolls one capture attempt after a win.
func (h *BattleHandler) AttemptCapture(c *gin.Context) {
	var req battle.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BattleID == "" {
		c.JSON(http.StatusNotFound, gin.H{"success": false, constants.JSONKeyMessage: constants.ErrBattleNotFound})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	b, ok := h.battles[req.BattleID]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, constants.JSONKeyMessage: constants.ErrBattleNotFound})
		return
	}
	if b.Result() != battle.StatusWin {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, constants.JSONKeyMessage: constants.ErrCaptureWinOnly})
		return
	}
	if b.CaptureResolved {
		c.JSON(http.StatusConflict, gin.H{"success": false, constants.JSONKeyMessage: constants.ErrCaptureResolved})
		return
	}
	b.CaptureResolved = true

	if !b.AttemptCapture() {
		c.JSON(http.StatusOK, battle.CaptureResponse{Success: false, Message: constants.CaptureBrokeFree})
		return
	}
	species, _ := engine.SpeciesByKey(b.Enemy.Key)
	c.JSON(http.StatusOK, battle.CaptureResponse{
		Success: true,
		Message: "Gotcha! " + b.Enemy.Name + " was caught!",
		Captured: &battle.CapturedMon{
			Key:       b.Enemy.Key,
			Name:      b.Enemy.Name,
			PokedexID: species.PokedexID,
			Level:     b.Enemy.Level,
			MaxHP:     b.Enemy.MaxHP,
			CurrentHP: b.Enemy.MaxHP, // heal on capture
			Moves:     append([]string(nil), b.Enemy.Moves...),
		},
	})
}

// ListStarters returns the selectable starters with local sprite paths.
func (h *BattleHandler) ListStarters(c *gin.Context) {
	starters := make([]battle.Starter, 0, len(engine.StarterKeys()))
	for _, key := range engine.StarterKeys() {
		s, _ := engine.SpeciesByKey(key)
		starters = append(starters, battle.Starter{
			Key:       key,
			Name:      s.Name,
			PokedexID: s.PokedexID,
			Sprite:    sprites.Path("/assets", sprites.FacingFront, s.PokedexID),
		})
	}
	c.JSON(http.StatusOK, battle.StartersResponse{Starters: starters})
}

// Health is a basic liveness probe for local development.
func (h *BattleHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
}

func stateResponse(id string, b *engine.Battle, turnLog []string) battle.StateResponse {
	return battle.StateResponse{
		BattleID:   id,
		Player:     combatantState(b.Player),
		Enemy:      combatantState(b.Enemy),
		Status:     b.Result(),
		MessageLog: battle.LineList(b.Log),
		TurnLog:    battle.LineList(turnLog),
	}
}

func combatantState(p *engine.Pokemon) battle.CombatantState {
	species, _ := engine.SpeciesByKey(p.Key)
	return battle.CombatantState{
		Name:           p.Name,
		MaxHP:          p.MaxHP,
		CurrentHP:      p.CurrentHP,
		AttackModifier: p.AttackModifier,
		PokedexID:      species.PokedexID,
		Key:            p.Key,
	}
}

const idCharset = "abcdef0123456789"
const idLength = 12

func newBattleID(rng *rand.Rand) string {
	b := make([]byte, idLength)
	for i := range b {
		b[i] = idCharset[rng.Intn(len(idCharset))]
	}
	return string(b)
}
