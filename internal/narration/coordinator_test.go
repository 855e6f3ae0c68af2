package narration

import (
	"reflect"
	"testing"
)

func drain(c *Coordinator) []string {
	var shown []string
	for {
		head, ok := c.Head()
		if !ok {
			return shown
		}
		shown = append(shown, head)
		c.Advance()
	}
}

func TestCoordinatorDrainCommitsToLedger(t *testing.T) {
	l := &Ledger{}
	c := NewCoordinator(l)
	c.BeginTurn(1)
	c.Enqueue([]string{"You used Tackle!", "It's not very effective..."})

	shown := drain(c)
	want := []string{"You used Tackle!", "It's not very effective..."}
	if !reflect.DeepEqual(shown, want) {
		t.Fatalf("expected %v shown, got %v", want, shown)
	}
	groups := l.Groups()
	if len(groups) != 1 || groups[0].Turn != 1 {
		t.Fatalf("expected one group for turn 1, got %+v", groups)
	}
	if !reflect.DeepEqual(groups[0].Lines, want) {
		t.Fatalf("expected %v in history, got %v", want, groups[0].Lines)
	}
}

func TestCoordinatorStripsEchoAgainstQueueTail(t *testing.T) {
	l := &Ledger{}
	c := NewCoordinator(l)
	c.Enqueue([]string{"a", "b"})
	c.Enqueue([]string{"b", "c"})
	if c.Len() != 3 {
		t.Fatalf("expected echo stripped, queue len %d", c.Len())
	}
}

func TestCoordinatorStripsEchoAgainstLastShown(t *testing.T) {
	l := &Ledger{}
	c := NewCoordinator(l)
	c.BeginTurn(1)
	c.Enqueue([]string{"a"})
	drain(c)

	c.BeginTurn(2)
	c.Enqueue([]string{"a", "b"})
	if got := drain(c); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("expected echoed line stripped, shown %v", got)
	}
}

func TestCoordinatorCollapsesConsecutiveDuplicates(t *testing.T) {
	c := NewCoordinator(&Ledger{})
	c.Enqueue([]string{"hit", "hit", "miss", "hit"})
	if c.Len() != 3 {
		t.Fatalf("expected 3 queued, got %d", c.Len())
	}
}

func TestCoordinatorSuppressedLinesBypassHistory(t *testing.T) {
	l := &Ledger{}
	c := NewCoordinator(l)
	c.BeginTurn(1)
	c.Enqueue([]string{"You used Tackle!"})
	c.StagePostTurn([]string{"Squirtle fainted!", "Do you want to try to catch Squirtle?"})

	shown := drain(c)
	want := []string{"You used Tackle!", "Squirtle fainted!", "Do you want to try to catch Squirtle?"}
	if !reflect.DeepEqual(shown, want) {
		t.Fatalf("expected %v shown, got %v", want, shown)
	}
	groups := l.Groups()
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if !reflect.DeepEqual(groups[0].Lines, []string{"You used Tackle!"}) {
		t.Fatalf("suppressed lines leaked into history: %v", groups[0].Lines)
	}
	if c.Suppressed() {
		t.Fatalf("suppression should clear after staged lines drain")
	}
}

func TestCoordinatorStagePostTurnOnEmptyQueue(t *testing.T) {
	l := &Ledger{}
	c := NewCoordinator(l)
	c.StagePostTurn([]string{"Charmander fainted!"})
	if head, ok := c.Head(); !ok || head != "Charmander fainted!" {
		t.Fatalf("staged line should enter the queue immediately, head=%q ok=%v", head, ok)
	}
	if !c.Suppressed() {
		t.Fatalf("expected suppressed phase")
	}
	drain(c)
	if l.Len() != 0 {
		t.Fatalf("faint narration must not reach history")
	}
}

func TestCoordinatorEnqueueSuppressed(t *testing.T) {
	l := &Ledger{}
	c := NewCoordinator(l)
	c.EnqueueSuppressed([]string{"Oh no! The RogueMon broke free!"})
	drain(c)
	if l.Len() != 0 {
		t.Fatalf("capture narration must not reach history")
	}
	if c.Suppressed() {
		t.Fatalf("suppression should clear once drained")
	}
}

func TestCoordinatorAdvanceOnEmptyIsNoop(t *testing.T) {
	l := &Ledger{}
	c := NewCoordinator(l)
	c.Advance()
	if !c.Empty() || l.Len() != 0 {
		t.Fatalf("advance on empty queue must have no observable effect")
	}
}

func TestCoordinatorReset(t *testing.T) {
	c := NewCoordinator(&Ledger{})
	c.BeginTurn(3)
	c.Enqueue([]string{"a"})
	c.StagePostTurn([]string{"b"})
	c.Reset()
	if !c.Empty() || c.Suppressed() || c.Turn() != 0 {
		t.Fatalf("reset must clear queue, phase and turn")
	}
}
