package model

import "testing"

func TestHistory_IsStagnant(t *testing.T) {
	var h History
	if h.IsStagnant("a") {
		t.Fatal("empty history cannot be stagnant")
	}

	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		h.Update(s)
	}
	if h.Len() != historySize {
		t.Errorf("Len() = %d, want %d", h.Len(), historySize)
	}

	tests := map[string]bool{
		"f": true,  // still life
		"e": true,  // period 2
		"d": true,  // period 3
		"c": false, // too old
		"a": false, // dropped
		"z": false,
	}
	for hash, want := range tests {
		if got := h.IsStagnant(hash); got != want {
			t.Errorf("IsStagnant(%q) = %v, want %v", hash, got, want)
		}
	}
}
