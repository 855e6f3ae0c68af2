package sprites

import (
	"fmt"
	"path"

	"github.com/NathanielCarballo/RogueMon/internal/battle"
)

// Sprite assets are addressed by pokedex id under two directories split
// by orientation. Anything unresolvable falls back to a fixed
// placeholder, never an error.
const (
	FrontDir    = "sprites/front"
	BackDir     = "sprites/back"
	Placeholder = "sprites/placeholder.gif"
)

type Facing int

const (
	FacingFront Facing = iota
	FacingBack
)

// Path builds the asset path for a pokedex id. Ids at or below zero
// resolve to the placeholder.
func Path(root string, facing Facing, pokedexID int) string {
	if pokedexID <= 0 {
		return path.Join(root, Placeholder)
	}
	dir := FrontDir
	if facing == FacingBack {
		dir = BackDir
	}
	return path.Join(root, dir, fmt.Sprintf("%d.gif", pokedexID))
}

// Resolve is Path with the static starter fallback applied first: a
// missing id is looked up by starter key before giving up on the
// placeholder.
func Resolve(root string, facing Facing, pokedexID int, key string) string {
	if pokedexID <= 0 {
		pokedexID = battle.DexForKey(key)
	}
	return Path(root, facing, pokedexID)
}
