package tui

// Typewriter reveals the queue head one rune per tick. Each line gets a
// fresh sequence number; scheduled ticks carry the number they were
// issued for, so ticks belonging to a replaced line are simply dropped
// instead of leaking into the new reveal.
type Typewriter struct {
	runes   []rune
	shown   int
	seq     int
	settled bool
}

// SetLine swaps the presented line, restarting the reveal. Returns true
// when the value actually changed; an unchanged head keeps its progress.
func (t *Typewriter) SetLine(line string) bool {
	if string(t.runes) == line {
		return false
	}
	t.runes = []rune(line)
	t.shown = 0
	t.seq++
	// An empty line has nothing to reveal.
	t.settled = len(t.runes) == 0
	return true
}

// Clear resets to the empty idle state.
func (t *Typewriter) Clear() {
	t.runes = nil
	t.shown = 0
	t.seq++
	t.settled = true
}

// Seq identifies the line currently being revealed.
func (t *Typewriter) Seq() int { return t.seq }

// Tick reveals the next rune, ignoring ticks issued for a previous line.
// Returns true while more ticks are needed.
func (t *Typewriter) Tick(seq int) bool {
	if seq != t.seq || t.settled {
		return false
	}
	t.shown++
	if t.shown >= len(t.runes) {
		t.shown = len(t.runes)
		t.settled = true
		return false
	}
	return true
}

// Reveal completes the line instantly.
func (t *Typewriter) Reveal() {
	t.shown = len(t.runes)
	t.settled = true
}

// Settled reports whether the full line is visible.
func (t *Typewriter) Settled() bool { return t.settled }

// View returns the currently visible prefix. An empty line still yields
// a non-collapsing placeholder so the message box keeps its height.
func (t *Typewriter) View() string {
	if len(t.runes) == 0 {
		return " "
	}
	return string(t.runes[:t.shown])
}
