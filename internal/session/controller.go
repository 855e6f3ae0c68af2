package session

import (
	"fmt"

	"github.com/NathanielCarballo/RogueMon/internal/battle"
	"github.com/NathanielCarballo/RogueMon/internal/constants"
	"github.com/NathanielCarballo/RogueMon/internal/keys"
	"github.com/NathanielCarballo/RogueMon/internal/logging"
	"github.com/NathanielCarballo/RogueMon/internal/narration"
)

// State tracks where the battle session is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateStarting
	StateOngoing
	StateTurnInFlight
	StateWon
	StateLost
	StateCaptureInFlight
	StateCaptured
	StateReleased
	StateSkipped
)

// RosterStore receives captured mons. Implementations persist them in the
// session-scoped roster (and optionally a longer-lived archive).
type RosterStore interface {
	Append(battle.CapturedMon) error
	List() ([]battle.CapturedMon, error)
}

// Controller owns one battle session: identity, combatant state, the
// input lock and the narration pipeline. It is single-threaded by design;
// the UI event loop runs network calls elsewhere and feeds results back
// through the Apply* methods. Each operation is therefore a Begin/Apply
// pair: Begin guards and takes the lock, Apply merges the outcome and
// always releases the lock, success or failure.
type Controller struct {
	coord  *narration.Coordinator
	ledger *narration.Ledger
	roster RosterStore

	state    State
	battleID string
	player   battle.Combatant
	enemy    battle.Combatant
	status   battle.Status
	turn     int

	inFlight     bool
	captureOffer bool
	startFailed  bool
}

func NewController(roster RosterStore) *Controller {
	ledger := &narration.Ledger{}
	return &Controller{
		coord:  narration.NewCoordinator(ledger),
		ledger: ledger,
		roster: roster,
		status: battle.StatusOngoing,
	}
}

// Locked reports whether user actions other than advancing the current
// message are blocked: true whenever a request is outstanding or lines
// are still queued.
func (c *Controller) Locked() bool {
	return c.inFlight || !c.coord.Empty()
}

// AdvanceAllowed reports whether the player may fast-forward or dismiss
// the current message. Advancing stays available while lines drain but
// never while a network call is outstanding.
func (c *Controller) AdvanceAllowed() bool {
	return !c.inFlight
}

// CaptureOfferAvailable reports whether the post-win capture affordance
// should be shown: only after the faint and prompt lines have been fully
// displayed.
func (c *Controller) CaptureOfferAvailable() bool {
	return c.captureOffer && !c.inFlight && c.coord.Empty()
}

// BeginStart resets all session-scoped state and takes the lock for a
// battle-start request. Returns false if a request is already in flight.
func (c *Controller) BeginStart() bool {
	if c.inFlight {
		return false
	}
	c.resetSession()
	c.inFlight = true
	c.state = StateStarting
	return true
}

// ApplyStart merges the outcome of the start request. On failure the
// session stays unset (no battle id) and a single synthetic line is
// queued; the retry control re-invokes BeginStart.
func (c *Controller) ApplyStart(resp *battle.StateResponse, err error) {
	defer func() { c.inFlight = false }()
	if err != nil {
		logging.Error("battle start failed", err, nil)
		c.state = StateIdle
		c.startFailed = true
		c.coord.BeginTurn(0)
		c.coord.Enqueue([]string{constants.MsgStartFailed})
		return
	}
	c.startFailed = false
	c.battleID = resp.BattleID
	c.player = combatantFromState(resp.Player)
	c.enemy = combatantFromState(resp.Enemy)
	c.status = resp.Status
	c.turn = 0
	c.coord.BeginTurn(0)
	c.coord.Enqueue(resp.MessageLog)
	// A start response normally reports an ongoing battle. If it arrives
	// already decided (rejoining a finished battle), apply the outcome the
	// same way the turn path does — except that no capture offer is ever
	// derived from a start response.
	switch resp.Status {
	case battle.StatusWin:
		c.state = StateWon
		c.coord.StagePostTurn([]string{fmt.Sprintf(constants.FaintedFmt, c.enemy.Name)})
	case battle.StatusLose:
		c.state = StateLost
		c.coord.StagePostTurn([]string{fmt.Sprintf(constants.FaintedFmt, c.player.Name)})
	default:
		c.state = StateOngoing
	}
	logging.Info("battle started", logging.Fields{
		constants.LogFieldBattleID: c.battleID,
		constants.LogFieldPlayer:   c.player.Name,
		constants.LogFieldEnemy:    c.enemy.Name,
	})
}

// AcceptMove guards a move submission and takes the lock. A move is
// rejected unless the battle is ongoing, nothing is in flight, the queue
// has fully drained and a battle id exists.
func (c *Controller) AcceptMove() bool {
	if c.status != battle.StatusOngoing || c.Locked() || c.battleID == "" {
		return false
	}
	c.inFlight = true
	c.state = StateTurnInFlight
	return true
}

// ApplyTurn merges a turn-resolution outcome. The lock is released
// unconditionally; a transport failure queues one history-worthy error
// line and leaves the battle ongoing for the player to retry by pressing
// a move again.
func (c *Controller) ApplyTurn(resp *battle.StateResponse, err error) {
	defer func() { c.inFlight = false }()
	if err != nil {
		logging.Error("turn submission failed", err, logging.Fields{constants.LogFieldBattleID: c.battleID})
		c.state = StateOngoing
		c.coord.Enqueue([]string{constants.MsgTurnFailed})
		return
	}
	c.turn++
	c.coord.BeginTurn(c.turn)
	c.applyHP(resp)
	c.status = resp.Status
	c.coord.Enqueue(resp.TurnLog)
	switch resp.Status {
	case battle.StatusWin:
		c.state = StateWon
		c.captureOffer = true
		c.coord.StagePostTurn([]string{
			fmt.Sprintf(constants.FaintedFmt, c.enemy.Name),
			fmt.Sprintf(constants.CapturePromptFmt, c.enemy.Name),
		})
	case battle.StatusLose:
		c.state = StateLost
		c.coord.StagePostTurn([]string{fmt.Sprintf(constants.FaintedFmt, c.player.Name)})
	default:
		c.state = StateOngoing
	}
}

// BeginCapture guards a capture attempt and takes the lock. Valid only
// while the capture offer is pending and fully revealed.
func (c *Controller) BeginCapture() bool {
	if !c.CaptureOfferAvailable() {
		return false
	}
	c.inFlight = true
	c.state = StateCaptureInFlight
	return true
}

// ApplyCapture merges a capture outcome. The offer is consumed no matter
// what happened, and the result narration never reaches the history.
func (c *Controller) ApplyCapture(resp *battle.CaptureResponse, err error) {
	defer func() { c.inFlight = false }()
	c.captureOffer = false
	if err != nil {
		logging.Error("capture attempt failed", err, logging.Fields{constants.LogFieldBattleID: c.battleID})
		c.state = StateReleased
		c.coord.EnqueueSuppressed([]string{constants.MsgCaptureFailed})
		return
	}
	msg := resp.Message
	if msg == "" {
		msg = constants.CaptureBrokeFree
	}
	c.coord.EnqueueSuppressed([]string{msg})
	if resp.Success && resp.Captured != nil {
		c.state = StateCaptured
		if c.roster != nil {
			if rerr := c.roster.Append(*resp.Captured); rerr != nil {
				logging.Error("failed to record captured mon", rerr, logging.Fields{constants.LogFieldKey: resp.Captured.Key})
			}
		}
		return
	}
	c.state = StateReleased
}

// SkipCapture declines the pending offer without contacting the service.
func (c *Controller) SkipCapture() bool {
	if !c.CaptureOfferAvailable() {
		return false
	}
	c.captureOffer = false
	c.state = StateSkipped
	c.coord.EnqueueSuppressed([]string{constants.MsgSkipCapture})
	return true
}

// NextBattleAllowed reports whether a fresh battle may begin: the current
// one is decided, nothing is draining or in flight, and any capture offer
// has been resolved.
func (c *Controller) NextBattleAllowed() bool {
	if c.Locked() || c.captureOffer {
		return false
	}
	return c.status != battle.StatusOngoing && c.battleID != ""
}

// BeginNextBattle resets session state and takes the lock for a new start
// request, exactly as BeginStart.
func (c *Controller) BeginNextBattle() bool {
	if !c.NextBattleAllowed() {
		return false
	}
	return c.BeginStart()
}

func (c *Controller) resetSession() {
	c.battleID = ""
	c.player = battle.Combatant{}
	c.enemy = battle.Combatant{}
	c.status = battle.StatusOngoing
	c.turn = 0
	c.captureOffer = false
	c.startFailed = false
	c.ledger.Reset()
	c.coord.Reset()
	c.state = StateIdle
}

func (c *Controller) applyHP(resp *battle.StateResponse) {
	c.player.CurrentHP = resp.Player.CurrentHP
	c.enemy.CurrentHP = resp.Enemy.CurrentHP
	if resp.Player.MaxHP > 0 {
		c.player.MaxHP = resp.Player.MaxHP
	}
	if resp.Enemy.MaxHP > 0 {
		c.enemy.MaxHP = resp.Enemy.MaxHP
	}
}

func combatantFromState(s battle.CombatantState) battle.Combatant {
	key := s.Key
	if key == "" {
		key = keys.StarterKey(s.Name)
	}
	id := s.PokedexID
	if id == 0 {
		// Static fallback for the three known starters; a miss leaves 0,
		// which the sprite resolver turns into the placeholder.
		id = battle.DexForKey(key)
	}
	return battle.Combatant{
		Key:       key,
		Name:      s.Name,
		MaxHP:     s.MaxHP,
		CurrentHP: s.CurrentHP,
		PokedexID: id,
	}
}

// Accessors used by the battle screen.

func (c *Controller) State() State { return c.state }

func (c *Controller) BattleID() string { return c.battleID }

func (c *Controller) Player() battle.Combatant { return c.player }

func (c *Controller) Enemy() battle.Combatant { return c.enemy }

func (c *Controller) Status() battle.Status { return c.status }

func (c *Controller) Turn() int { return c.turn }

func (c *Controller) StartFailed() bool { return c.startFailed }

func (c *Controller) Queue() *narration.Coordinator { return c.coord }

func (c *Controller) History() []narration.TurnGroup { return c.ledger.Groups() }
