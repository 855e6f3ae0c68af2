package narration

// TurnGroup bundles every line produced by one resolved action. Turn 0 is
// reserved for battle-start messages.
type TurnGroup struct {
	Turn  int      `json:"turn"`
	Lines []string `json:"lines"`
}

// Ledger is the append-only record of lines the player has fully seen,
// grouped by turn. Existing groups are never mutated except to merge new
// lines into the most recent group when it shares the turn number.
type Ledger struct {
	groups []TurnGroup
}

// Commit records lines under the given turn. Lines are deduplicated by
// value within the group, preserving first-seen order. If the last group
// already carries this turn number the lines merge into it; otherwise a
// new group is appended.
//
// Known limitation, kept deliberately: dedupe is exact string equality,
// so two distinct events that narrate identically collapse into one line.
func (l *Ledger) Commit(turn int, lines []string) {
	if len(lines) == 0 {
		return
	}
	if n := len(l.groups); n > 0 && l.groups[n-1].Turn == turn {
		g := &l.groups[n-1]
		g.Lines = mergeUnique(g.Lines, lines)
		return
	}
	l.groups = append(l.groups, TurnGroup{Turn: turn, Lines: mergeUnique(nil, lines)})
}

// NextTurn is the turn number the next player action should record under:
// one past the last recorded turn, or 1 when the history is empty.
func (l *Ledger) NextTurn() int {
	if len(l.groups) == 0 {
		return 1
	}
	return l.groups[len(l.groups)-1].Turn + 1
}

// Groups returns a copy of the recorded history.
func (l *Ledger) Groups() []TurnGroup {
	out := make([]TurnGroup, len(l.groups))
	copy(out, l.groups)
	return out
}

func (l *Ledger) Len() int { return len(l.groups) }

// Reset clears the ledger for a new battle.
func (l *Ledger) Reset() { l.groups = nil }

func mergeUnique(dst, src []string) []string {
	seen := make(map[string]struct{}, len(dst)+len(src))
	for _, s := range dst {
		seen[s] = struct{}{}
	}
	for _, s := range src {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		dst = append(dst, s)
	}
	return dst
}
