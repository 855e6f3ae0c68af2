package tui

import "testing"

func TestTypewriterRevealsPerTick(t *testing.T) {
	var tw Typewriter
	if !tw.SetLine("abc") {
		t.Fatalf("expected change")
	}
	if tw.Settled() {
		t.Fatalf("fresh line must not be settled")
	}
	seq := tw.Seq()
	if !tw.Tick(seq) {
		t.Fatalf("expected more ticks after first rune")
	}
	if got := tw.View(); got != "a" {
		t.Fatalf("expected %q, got %q", "a", got)
	}
	tw.Tick(seq)
	if tw.Tick(seq) {
		t.Fatalf("expected reveal to finish on the last rune")
	}
	if !tw.Settled() || tw.View() != "abc" {
		t.Fatalf("expected settled full line, got %q", tw.View())
	}
}

func TestTypewriterDropsStaleTicks(t *testing.T) {
	var tw Typewriter
	tw.SetLine("first line")
	stale := tw.Seq()
	tw.SetLine("second")
	if tw.Tick(stale) {
		t.Fatalf("stale tick must be ignored")
	}
	if got := tw.View(); got != "" {
		t.Fatalf("stale tick leaked a rune: %q", got)
	}
}

func TestTypewriterRevealCompletesInstantly(t *testing.T) {
	var tw Typewriter
	tw.SetLine("some long battle narration")
	tw.Tick(tw.Seq())
	tw.Reveal()
	if !tw.Settled() || tw.View() != "some long battle narration" {
		t.Fatalf("expected instant completion, got %q", tw.View())
	}
}

func TestTypewriterEmptyLinePlaceholder(t *testing.T) {
	var tw Typewriter
	tw.SetLine("")
	if !tw.Settled() {
		t.Fatalf("empty line settles immediately")
	}
	if tw.View() != " " {
		t.Fatalf("empty line must render a non-collapsing placeholder")
	}
	tw.Clear()
	if tw.View() != " " {
		t.Fatalf("idle state must render a placeholder")
	}
}

func TestTypewriterUnchangedLineKeepsProgress(t *testing.T) {
	var tw Typewriter
	tw.SetLine("abc")
	tw.Tick(tw.Seq())
	if tw.SetLine("abc") {
		t.Fatalf("unchanged line must not restart")
	}
	if tw.View() != "a" {
		t.Fatalf("progress lost: %q", tw.View())
	}
}

func TestTypewriterRuneSafety(t *testing.T) {
	var tw Typewriter
	tw.SetLine("héllo")
	seq := tw.Seq()
	tw.Tick(seq)
	tw.Tick(seq)
	if got := tw.View(); got != "hé" {
		t.Fatalf("expected rune-wise reveal, got %q", got)
	}
}
