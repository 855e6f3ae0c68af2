package keys

import "testing"

func TestStarterKey(t *testing.T) {
	cases := map[string]string{
		"Bulbasaur":   "bulbasaur",
		"  Squirtle ": "squirtle",
		"Mr Mime":     "mr_mime",
	}
	for in, want := range cases {
		if got := StarterKey(in); got != want {
			t.Fatalf("StarterKey(%q) = %q, want %q", in, got, want)
		}
	}
}
