package engine

// CaptureChance computes the MVP capture odds: 35% base plus up to 55%
// for missing HP, clamped to 95%.
func CaptureChance(currentHP, maxHP int) int {
	if maxHP < 1 {
		maxHP = 1
	}
	if currentHP < 0 {
		currentHP = 0
	}
	missing := 1.0 - float64(currentHP)/float64(maxHP)
	if missing < 0 {
		missing = 0
	}
	if missing > 1 {
		missing = 1
	}
	chance := 35 + int(missing*55)
	if chance > 95 {
		chance = 95
	}
	return chance
}

// AttemptCapture rolls against the capture odds for the enemy.
func (b *Battle) AttemptCapture() bool {
	chance := CaptureChance(b.Enemy.CurrentHP, b.Enemy.MaxHP)
	return b.rng.Intn(100)+1 <= chance
}
