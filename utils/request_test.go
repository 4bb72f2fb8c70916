package utils

import (
	"net/http/httptest"
	"testing"
)

func TestRequestBaseURL(t *testing.T) {
	tests := []struct {
		name      string
		host      string
		forwarded string
		want      string
	}{
		{"plain http", "example.com", "", "http://example.com"},
		{"behind tls gateway", "example.com", "https", "https://example.com"},
		{"host with port", "localhost:8000", "", "http://localhost:8000"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/recipes/", nil)
			r.Host = tc.host
			if tc.forwarded != "" {
				r.Header.Set("X-Forwarded-Proto", tc.forwarded)
			}
			if got := RequestBaseURL(r); got != tc.want {
				t.Errorf("RequestBaseURL() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMediaURL(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/recipes/", nil)
	r.Host = "example.com"

	if got := MediaURL(r, "/media/recipes/a1.jpg"); got != "http://example.com/media/recipes/a1.jpg" {
		t.Errorf("MediaURL() = %q", got)
	}
	if got := MediaURL(r, ""); got != "" {
		t.Errorf("MediaURL(\"\") = %q, want empty", got)
	}
}
