package tags

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Breakfast", "breakfast"},
		{"Quick Dinner", "quick-dinner"},
		{"  padded  ", "padded"},
		{"Two  Spaces", "two--spaces"},
	}
	for _, tc := range tests {
		if got := slugify(tc.in); got != tc.want {
			t.Errorf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
