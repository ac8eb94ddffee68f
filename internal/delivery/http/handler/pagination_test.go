package handler

import (
	"net/url"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "page=2&limit=20", 2, 20},
		{"zero page falls back", "page=0", 1, 10},
		{"negative page falls back", "page=-3", 1, 10},
		{"zero limit falls back", "limit=0", 1, 10},
		{"limit clamped", "limit=500", 1, 100},
		{"garbage ignored", "page=abc&limit=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			page, limit := ParsePagination(values)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("ParsePagination(%q) = (%d, %d), want (%d, %d)",
					tt.query, page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}
