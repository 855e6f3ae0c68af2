package engine

// Pokemon is a battle-time snapshot: only the stats the MVP combat
// formula needs.
type Pokemon struct {
	Key            string
	Name           string
	Type           string
	Level          int
	MaxHP          int
	CurrentHP      int
	Attack         int
	Defense        int
	Speed          int
	Moves          []string
	AttackModifier float64 // Growl lowers this
}

// Species holds the static base stats for one starter.
type Species struct {
	Name      string
	Type      string
	Level     int
	MaxHP     int
	Attack    int
	Defense   int
	Speed     int
	Moves     []string
	PokedexID int
}

// starterSpecies is the MVP starter pool (Gen 1 subset).
var starterSpecies = map[string]Species{
	"bulbasaur":  {Name: "Bulbasaur", Type: "Grass/Poison", Level: 5, MaxHP: 45, Attack: 49, Defense: 49, Speed: 45, Moves: []string{"tackle", "growl"}, PokedexID: 1},
	"charmander": {Name: "Charmander", Type: "Fire", Level: 5, MaxHP: 39, Attack: 52, Defense: 43, Speed: 65, Moves: []string{"tackle", "growl"}, PokedexID: 4},
	"squirtle":   {Name: "Squirtle", Type: "Water", Level: 5, MaxHP: 44, Attack: 48, Defense: 65, Speed: 43, Moves: []string{"tackle", "growl"}, PokedexID: 7},
}

// SpeciesByKey returns the base stats for a starter key.
func SpeciesByKey(key string) (Species, bool) {
	s, ok := starterSpecies[key]
	return s, ok
}

// StarterKeys lists the selectable starters in a stable order.
func StarterKeys() []string {
	return []string{"bulbasaur", "charmander", "squirtle"}
}

// NewPokemon builds a fresh combatant from base stats.
func NewPokemon(key string, s Species) *Pokemon {
	return &Pokemon{
		Key:            key,
		Name:           s.Name,
		Type:           s.Type,
		Level:          s.Level,
		MaxHP:          s.MaxHP,
		CurrentHP:      s.MaxHP,
		Attack:         s.Attack,
		Defense:        s.Defense,
		Speed:          s.Speed,
		Moves:          append([]string(nil), s.Moves...),
		AttackModifier: 1.0,
	}
}

// ApplyDamage reduces HP, not below zero.
func (p *Pokemon) ApplyDamage(damage int) {
	p.CurrentHP -= damage
	if p.CurrentHP < 0 {
		p.CurrentHP = 0
	}
}

// ApplyGrowl lowers the attack modifier.
func (p *Pokemon) ApplyGrowl() {
	p.AttackModifier *= 0.75
}

func (p *Pokemon) IsFainted() bool {
	return p.CurrentHP <= 0
}
