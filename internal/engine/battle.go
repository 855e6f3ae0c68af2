package engine

import (
	"fmt"
	"math/rand"

	"github.com/NathanielCarballo/RogueMon/internal/battle"
)

// Battle encapsulates a single player-versus-enemy session on the server
// side. The RNG is injected so tests resolve deterministically.
type Battle struct {
	Player *Pokemon
	Enemy  *Pokemon
	Log    []string

	Resolving       bool // guards against double-turn resolution
	CaptureResolved bool // exactly one capture attempt per won battle

	rng *rand.Rand
}

func NewBattle(player, enemy *Pokemon, rng *rand.Rand) *Battle {
	return &Battle{Player: player, Enemy: enemy, rng: rng}
}

// CalculateDamage is the simplified physical formula: no typing, no
// crits, no STAB. Status moves deal nothing.
func (b *Battle) CalculateDamage(attacker, defender *Pokemon, move Move) int {
	if move.Power == 0 {
		return 0
	}
	attackStat := float64(attacker.Attack) * attacker.AttackModifier
	defenseStat := float64(defender.Defense)
	if defenseStat < 1 {
		defenseStat = 1
	}
	base := ((2*float64(attacker.Level)/5*2)*float64(move.Power)*(attackStat/defenseStat))/50 + 2
	return int(base)
}

// TakeTurn resolves one turn: order by speed with the player winning
// ties, accuracy roll per actor, damage or Growl debuff applied, and the
// narration appended to the battle log. It returns this turn's delta log
// with consecutive duplicates collapsed.
func (b *Battle) TakeTurn(playerMoveKey, enemyMoveKey string) []string {
	playerMove, ok := MoveByKey(playerMoveKey)
	if !ok {
		return nil
	}
	enemyMove, ok := MoveByKey(enemyMoveKey)
	if !ok {
		return nil
	}

	before := len(b.Log)

	first, second := b.Player, b.Enemy
	firstMove, secondMove := playerMove, enemyMove
	if b.Enemy.Speed > b.Player.Speed {
		first, second = b.Enemy, b.Player
		firstMove, secondMove = enemyMove, playerMove
	}

	for _, step := range []struct {
		actor, target *Pokemon
		move          Move
	}{
		{first, second, firstMove},
		{second, first, secondMove},
	} {
		if step.actor.IsFainted() || step.target.IsFainted() {
			continue
		}
		if b.rng.Intn(100)+1 > step.move.Accuracy {
			b.Log = append(b.Log, fmt.Sprintf("%s's %s missed!", step.actor.Name, step.move.Name))
			continue
		}
		switch {
		case step.move.Category == CategoryPhysical:
			damage := b.CalculateDamage(step.actor, step.target, step.move)
			step.target.ApplyDamage(damage)
			b.Log = append(b.Log, fmt.Sprintf("%s used %s! %s took %d damage.", step.actor.Name, step.move.Name, step.target.Name, damage))
		case step.move.Category == CategoryStatus && step.move.Name == "Growl":
			step.target.ApplyGrowl()
			b.Log = append(b.Log, fmt.Sprintf("%s used Growl! %s's attack fell.", step.actor.Name, step.target.Name))
		}
	}

	return collapseRuns(b.Log[before:])
}

// PickEnemyMove chooses the enemy's move at random.
func (b *Battle) PickEnemyMove() string {
	return b.Enemy.Moves[b.rng.Intn(len(b.Enemy.Moves))]
}

// Result reports win when the enemy fainted, lose when the player did.
func (b *Battle) Result() battle.Status {
	switch {
	case b.Enemy.IsFainted():
		return battle.StatusWin
	case b.Player.IsFainted():
		return battle.StatusLose
	default:
		return battle.StatusOngoing
	}
}

func collapseRuns(lines []string) []string {
	var out []string
	for _, line := range lines {
		if n := len(out); n > 0 && out[n-1] == line {
			continue
		}
		out = append(out, line)
	}
	return out
}
