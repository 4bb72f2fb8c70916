package utils

import (
	"testing"
)

func TestNewID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != 16 {
			t.Fatalf("NewID() length = %d, want 16", len(id))
		}
		for _, c := range id {
			if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
				t.Fatalf("NewID() = %q, want lowercase hex", id)
			}
		}
		if seen[id] {
			t.Fatalf("NewID() repeated %q", id)
		}
		seen[id] = true
	}
}

func TestNewShortCode(t *testing.T) {
	for _, n := range []int{3, 4, 8} {
		if got := NewShortCode(n); len(got) != n {
			t.Errorf("NewShortCode(%d) length = %d", n, len(got))
		}
	}
	// oversized n is clamped, not a panic
	if got := NewShortCode(100); len(got) != 32 {
		t.Errorf("NewShortCode(100) length = %d, want 32", len(got))
	}
}
