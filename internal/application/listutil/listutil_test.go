package listutil

import (
	"net/url"
	"testing"
)

// TestParseFilterParams verifies only recognised filter keys are kept.
func TestParseFilterParams(t *testing.T) {
	q := url.Values{"q": {"Concert"}, "venue_id": {"3"}, "bogus": {"x"}}
	fp := ParseFilterParams(q, []string{"venue_id", "from", "to"})
	if fp.Search != "Concert" {
		t.Errorf("expected search %q, got %q", "Concert", fp.Search)
	}
	if fp.Filters["venue_id"] != "3" {
		t.Errorf("expected venue_id filter 3, got %q", fp.Filters["venue_id"])
	}
	if _, ok := fp.Filters["bogus"]; ok {
		t.Error("unrecognised filter key was kept")
	}
}

// TestIntFilter verifies numeric parsing with fallback to zero.
func TestIntFilter(t *testing.T) {
	fp := FilterParams{Filters: map[string]string{"venue_id": "3", "bad": "abc", "neg": "-2"}}
	if got := fp.IntFilter("venue_id"); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := fp.IntFilter("bad"); got != 0 {
		t.Errorf("expected 0 for malformed value, got %d", got)
	}
	if got := fp.IntFilter("neg"); got != 0 {
		t.Errorf("expected 0 for negative value, got %d", got)
	}
	if got := fp.IntFilter("missing"); got != 0 {
		t.Errorf("expected 0 for missing key, got %d", got)
	}
}

// TestDateRange verifies both bounds are required.
func TestDateRange(t *testing.T) {
	fp := FilterParams{Filters: map[string]string{"from": "2025-06-01", "to": "2025-06-30"}}
	from, to := fp.DateRange("from", "to")
	if from != "2025-06-01" || to != "2025-06-30" {
		t.Errorf("expected full range, got %q..%q", from, to)
	}

	fp = FilterParams{Filters: map[string]string{"from": "2025-06-01"}}
	from, to = fp.DateRange("from", "to")
	if from != "" || to != "" {
		t.Errorf("expected blank range for missing bound, got %q..%q", from, to)
	}
}
