package storage

import (
	"encoding/json"
	"fmt"

	"github.com/NathanielCarballo/RogueMon/internal/battle"
	"github.com/NathanielCarballo/RogueMon/internal/constants"
)

// Roster stores captured mons as a serialized sequence in the session
// scope and mirrors each capture into the persistent archive so the
// collection survives restarts.
type Roster struct {
	session KV
	archive KV // may be nil when running without a database
}

func NewRoster(session, archive KV) *Roster {
	return &Roster{session: session, archive: archive}
}

func (r *Roster) Append(mon battle.CapturedMon) error {
	mons, err := r.List()
	if err != nil {
		return err
	}
	mons = append(mons, mon)
	if err := saveMons(r.session, constants.StoreKeyRoster, mons); err != nil {
		return err
	}
	if r.archive != nil {
		archived, err := loadMons(r.archive, constants.StoreKeyRosterArchive)
		if err != nil {
			return err
		}
		archived = append(archived, mon)
		return saveMons(r.archive, constants.StoreKeyRosterArchive, archived)
	}
	return nil
}

func (r *Roster) List() ([]battle.CapturedMon, error) {
	return loadMons(r.session, constants.StoreKeyRoster)
}

// Archive returns every mon ever captured, across sessions.
func (r *Roster) Archive() ([]battle.CapturedMon, error) {
	if r.archive == nil {
		return nil, nil
	}
	return loadMons(r.archive, constants.StoreKeyRosterArchive)
}

func loadMons(kv KV, key string) ([]battle.CapturedMon, error) {
	raw, ok, err := kv.Get(key)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var mons []battle.CapturedMon
	if err := json.Unmarshal([]byte(raw), &mons); err != nil {
		// A corrupt roster should not brick the screen; start fresh.
		return nil, nil
	}
	return mons, nil
}

func saveMons(kv KV, key string, mons []battle.CapturedMon) error {
	b, err := json.Marshal(mons)
	if err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	return kv.Set(key, string(b))
}
