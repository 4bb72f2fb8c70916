package ingredients

import (
	"testing"
)

func TestParseSeeds(t *testing.T) {
	raw := []byte(`[
		{"name": "flour", "measurement_unit": "g"},
		{"name": "", "measurement_unit": "g"},
		{"name": "milk", "measurement_unit": ""},
		{"name": "egg", "measurement_unit": "pc"}
	]`)

	seeds, err := ParseSeeds(raw)
	if err != nil {
		t.Fatalf("ParseSeeds: %v", err)
	}
	if len(seeds) != 2 {
		t.Fatalf("got %d seeds, want 2: %v", len(seeds), seeds)
	}
	if seeds[0].Name != "flour" || seeds[0].MeasurementUnit != "g" {
		t.Errorf("seeds[0] = %+v", seeds[0])
	}
	if seeds[1].Name != "egg" || seeds[1].MeasurementUnit != "pc" {
		t.Errorf("seeds[1] = %+v", seeds[1])
	}
}

func TestParseSeedsBadJSON(t *testing.T) {
	if _, err := ParseSeeds([]byte(`{"not": "a list"}`)); err == nil {
		t.Error("ParseSeeds accepted an object where a list is required")
	}
	if _, err := ParseSeeds([]byte(`[`)); err == nil {
		t.Error("ParseSeeds accepted truncated JSON")
	}
}

func TestEscapeRegex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"milk", "milk"},
		{"a.b", `a\.b`},
		{"sugar (brown)", `sugar \(brown\)`},
		{`back\slash`, `back\\slash`},
		{"^$.*+?()[]{}|", `\^\$\.\*\+\?\(\)\[\]\{\}\|`},
	}
	for _, tc := range tests {
		if got := escapeRegex(tc.in); got != tc.want {
			t.Errorf("escapeRegex(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
