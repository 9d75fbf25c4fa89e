package listutil

import (
	"net/url"
	"strconv"
)

// FilterParams carries search and filter parameters parsed from a request.
type FilterParams struct {
	Search  string            // free-text search query
	Filters map[string]string // exact-match filters (e.g. venue_id=3)
}

// ParseFilterParams extracts search and named filters from URL query values.
// PRE: filterKeys lists the allowed filter parameter names
// POST: returns FilterParams with only recognised keys
func ParseFilterParams(q url.Values, filterKeys []string) FilterParams {
	fp := FilterParams{
		Search:  q.Get("q"),
		Filters: make(map[string]string),
	}
	for _, key := range filterKeys {
		if v := q.Get(key); v != "" {
			fp.Filters[key] = v
		}
	}
	return fp
}

// IntFilter returns the named filter parsed as a positive integer, or 0 when
// absent or malformed.
func (fp FilterParams) IntFilter(key string) int64 {
	n, err := strconv.ParseInt(fp.Filters[key], 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// DateRange returns the from/to filter pair, blanking both when either bound
// is missing. Half-open ranges are not supported by the search.
func (fp FilterParams) DateRange(fromKey, toKey string) (string, string) {
	from, to := fp.Filters[fromKey], fp.Filters[toKey]
	if from == "" || to == "" {
		return "", ""
	}
	return from, to
}
