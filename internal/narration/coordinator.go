package narration

// Coordinator owns the FIFO of lines not yet shown to the player and the
// rules for what happens when the queue drains: normally the turn's lines
// flush into the Ledger; while suppressed (faint/capture/skip narration)
// drained lines are discarded instead. The drain phase is a tagged state,
// not two loose flags, so transitions stay exhaustive:
//
//	normal{staged}     — lines commit on drain; staged post-turn lines
//	                     (faint notice, capture prompt) wait for the drain
//	                     to finish before entering the queue suppressed.
//	suppressed{staged} — drained lines bypass the ledger entirely.
type Coordinator struct {
	ledger *Ledger

	queue []string
	accum []string // lines shown this drain, pending commit
	turn  int

	phase phase
	last  string // most recently displayed line, for echo stripping
}

type phaseKind int

const (
	phaseNormal phaseKind = iota
	phaseSuppressed
)

type phase struct {
	kind   phaseKind
	staged []string
}

func NewCoordinator(ledger *Ledger) *Coordinator {
	return &Coordinator{ledger: ledger}
}

// BeginTurn sets the turn number the next committed drain records under.
func (c *Coordinator) BeginTurn(turn int) { c.turn = turn }

// Turn returns the active turn number.
func (c *Coordinator) Turn() int { return c.turn }

// Enqueue appends a batch to the tail. Consecutive duplicates within the
// batch collapse, and a leading line that echoes the last line already
// queued (or, with an empty queue, the last line already displayed) is
// stripped — service responses sometimes repeat the previous line.
func (c *Coordinator) Enqueue(lines []string) {
	tail := c.last
	if n := len(c.queue); n > 0 {
		tail = c.queue[n-1]
	}
	for _, line := range lines {
		if line == tail {
			tail = line
			continue
		}
		c.queue = append(c.queue, line)
		tail = line
	}
}

// EnqueueSuppressed appends lines that must never reach the ledger,
// entering the suppressed phase if not already in it.
func (c *Coordinator) EnqueueSuppressed(lines []string) {
	if len(lines) == 0 {
		return
	}
	c.phase.kind = phaseSuppressed
	c.queue = append(c.queue, lines...)
}

// StagePostTurn buffers ephemeral post-turn lines (faint notice, capture
// prompt). They enter the queue suppressed once the current drain
// finishes; if nothing is draining they enter immediately.
func (c *Coordinator) StagePostTurn(lines []string) {
	if len(lines) == 0 {
		return
	}
	if len(c.queue) == 0 {
		c.finishNormalDrain()
		c.phase = phase{kind: phaseSuppressed}
		c.queue = append(c.queue, lines...)
		return
	}
	c.phase.staged = append(c.phase.staged, lines...)
}

// Head returns the line currently owed to the presenter.
func (c *Coordinator) Head() (string, bool) {
	if len(c.queue) == 0 {
		return "", false
	}
	return c.queue[0], true
}

func (c *Coordinator) Len() int { return len(c.queue) }

func (c *Coordinator) Empty() bool { return len(c.queue) == 0 }

func (c *Coordinator) Suppressed() bool { return c.phase.kind == phaseSuppressed }

// Advance removes the head once the player has dismissed it. Draining the
// queue empty triggers end-of-drain handling for the active phase.
func (c *Coordinator) Advance() {
	if len(c.queue) == 0 {
		return
	}
	head := c.queue[0]
	c.queue = c.queue[1:]
	c.last = head
	if c.phase.kind == phaseNormal {
		c.accum = append(c.accum, head)
	}
	if len(c.queue) > 0 {
		return
	}

	switch c.phase.kind {
	case phaseNormal:
		c.finishNormalDrain()
		if staged := c.phase.staged; len(staged) > 0 {
			c.phase = phase{kind: phaseSuppressed}
			c.queue = append(c.queue, staged...)
		}
	case phaseSuppressed:
		// Ephemeral lines: the player saw them, the ledger never will.
		if staged := c.phase.staged; len(staged) > 0 {
			c.phase = phase{kind: phaseSuppressed}
			c.queue = append(c.queue, staged...)
		} else {
			c.phase = phase{kind: phaseNormal}
		}
	}
}

func (c *Coordinator) finishNormalDrain() {
	if len(c.accum) > 0 {
		c.ledger.Commit(c.turn, c.accum)
		c.accum = nil
	}
}

// Reset clears all queued, accumulated and staged lines for a new battle.
func (c *Coordinator) Reset() {
	c.queue = nil
	c.accum = nil
	c.turn = 0
	c.phase = phase{}
	c.last = ""
}
