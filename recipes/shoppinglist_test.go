package recipes

import (
	"strings"
	"testing"
	"time"
)

func TestFormatShoppingList(t *testing.T) {
	items := []ShoppingItem{
		{Name: "flour", MeasurementUnit: "g", Amount: 500},
		{Name: "milk", MeasurementUnit: "ml", Amount: 250},
	}
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	got := FormatShoppingList(items, now)

	want := "== Your shopping list ==\n\n" +
		"flour                (g)          500\n" +
		"milk                 (ml)         250\n" +
		"\nGenerated: 15-03-2024 09:30\n"
	if got != want {
		t.Errorf("FormatShoppingList:\n got %q\nwant %q", got, want)
	}
}

func TestFormatShoppingListEmpty(t *testing.T) {
	got := FormatShoppingList(nil, time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC))
	if !strings.HasPrefix(got, "== Your shopping list ==\n\n") {
		t.Errorf("missing header: %q", got)
	}
	if !strings.HasSuffix(got, "Generated: 02-01-2024 03:04\n") {
		t.Errorf("missing timestamp: %q", got)
	}
}
