package utils

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParsePageParams(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/api/recipes/", 1, DefaultPageSize},
		{"explicit", "/api/recipes/?page=3&limit=10", 3, 10},
		{"zero page falls back", "/api/recipes/?page=0", 1, DefaultPageSize},
		{"negative limit falls back", "/api/recipes/?limit=-5", 1, DefaultPageSize},
		{"garbage falls back", "/api/recipes/?page=abc&limit=xyz", 1, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			p := ParsePageParams(r)
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit {
				t.Errorf("ParsePageParams() = %+v, want page=%d limit=%d", p, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestPageParamsSkip(t *testing.T) {
	p := PageParams{Page: 3, Limit: 6}
	if got := p.Skip(); got != 12 {
		t.Errorf("Skip() = %d, want 12", got)
	}
}

func TestNewPageEnvelope(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/api/recipes/?page=2&limit=2", nil)
	p := PageParams{Page: 2, Limit: 2}

	env := NewPageEnvelope(r, p, 5, []int{3, 4})
	if env.Count != 5 {
		t.Errorf("Count = %d, want 5", env.Count)
	}
	if env.Next == nil || !strings.Contains(*env.Next, "page=3") {
		t.Errorf("Next = %v, want link to page 3", env.Next)
	}
	if env.Previous == nil || !strings.Contains(*env.Previous, "page=1") {
		t.Errorf("Previous = %v, want link to page 1", env.Previous)
	}
	if env.Next != nil && !strings.HasPrefix(*env.Next, "http://example.com/") {
		t.Errorf("Next = %q, want absolute URL", *env.Next)
	}
}

func TestNewPageEnvelopeEdges(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/api/users/", nil)

	first := NewPageEnvelope(r, PageParams{Page: 1, Limit: 6}, 6, nil)
	if first.Next != nil || first.Previous != nil {
		t.Errorf("single page should have no links, got next=%v previous=%v", first.Next, first.Previous)
	}

	last := NewPageEnvelope(r, PageParams{Page: 2, Limit: 6}, 7, nil)
	if last.Next != nil {
		t.Errorf("last page should have no next, got %v", last.Next)
	}
	if last.Previous == nil {
		t.Error("last page should have a previous link")
	}
}
