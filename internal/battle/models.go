package battle

// Status is the authoritative battle outcome reported by the service.
type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWin     Status = "win"
	StatusLose    Status = "lose"
)

// Combatant is the client-side view of one side of a battle: just enough
// state to render an HP bar and a sprite.
type Combatant struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	MaxHP     int    `json:"max_hp"`
	CurrentHP int    `json:"current_hp"`
	PokedexID int    `json:"pokedex_id"`
}

// CapturedMon is an entry in the player's roster. The service heals a
// captured mon to full HP before handing it over.
type CapturedMon struct {
	Key       string   `json:"key"`
	Name      string   `json:"name"`
	PokedexID int      `json:"pokedex_id"`
	Level     int      `json:"level"`
	MaxHP     int      `json:"max_hp"`
	CurrentHP int      `json:"current_hp"`
	Moves     []string `json:"moves"`
}

// Starter is one selectable starter as listed by the service.
type Starter struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	PokedexID int    `json:"pokedex_id"`
	Sprite    string `json:"sprite"`
}

// starterDex maps the three known starter keys to their pokedex ids. It is
// the static fallback consulted when a service response omits the id; a
// miss yields 0, which resolves to the placeholder sprite, never an error.
var starterDex = map[string]int{
	"bulbasaur":  1,
	"charmander": 4,
	"squirtle":   7,
}

// DexForKey returns the pokedex id for a starter key, or 0 when unknown.
func DexForKey(key string) int {
	return starterDex[key]
}
