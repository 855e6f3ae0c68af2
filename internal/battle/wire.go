package battle

import "encoding/json"

// LineList is a sequence of narration lines that tolerates sloppy wire
// shapes: a bare string becomes a single-element list, null or any
// non-string payload becomes an empty list. Turn logs have been observed
// in both forms.
type LineList []string

func (l *LineList) UnmarshalJSON(b []byte) error {
	var many []string
	if err := json.Unmarshal(b, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		if one == "" {
			*l = nil
			return nil
		}
		*l = LineList{one}
		return nil
	}
	*l = nil
	return nil
}

// CombatantState mirrors the per-combatant object in service responses.
type CombatantState struct {
	Name           string  `json:"name"`
	MaxHP          int     `json:"max_hp"`
	CurrentHP      int     `json:"current_hp"`
	AttackModifier float64 `json:"attack_modifier,omitempty"`
	PokedexID      int     `json:"pokedex_id,omitempty"`
	Key            string  `json:"key,omitempty"`
}

// StateResponse is the shared shape of start and turn responses:
// authoritative combatant state, outcome status, the battle-wide message
// log and the per-turn delta log.
type StateResponse struct {
	BattleID   string         `json:"battle_id,omitempty"`
	Player     CombatantState `json:"player"`
	Enemy      CombatantState `json:"enemy"`
	Status     Status         `json:"status"`
	MessageLog LineList       `json:"message_log,omitempty"`
	TurnLog    LineList       `json:"turn_log,omitempty"`
}

// CaptureResponse is the outcome of a post-win capture attempt.
type CaptureResponse struct {
	Success  bool         `json:"success"`
	Message  string       `json:"message,omitempty"`
	Captured *CapturedMon `json:"captured,omitempty"`
}

// StartersResponse wraps the starter listing.
type StartersResponse struct {
	Starters []Starter `json:"starters"`
}

// Request bodies consumed by the battle service.
type StartRequest struct {
	Player string `json:"player"`
}

type TurnRequest struct {
	BattleID string `json:"battle_id"`
	Move     string `json:"move"`
}

type CaptureRequest struct {
	BattleID string `json:"battle_id"`
}
