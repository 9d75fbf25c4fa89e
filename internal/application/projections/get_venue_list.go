package projections

import (
	"context"

	"eventease/internal/domain/venue"
)

// GetVenueListQuery carries query parameters.
type GetVenueListQuery struct {
	Search string // name substring, empty for all
}

// GetVenueListResult carries the query result.
type GetVenueListResult struct {
	Venues []venue.Venue
}

// GetVenueListDeps holds dependencies for GetVenueList.
type GetVenueListDeps struct {
	VenueStore VenueStore
}

// QueryGetVenueList retrieves venues matching the search text.
// POST: Returns venues ordered by name
func QueryGetVenueList(ctx context.Context, query GetVenueListQuery, deps GetVenueListDeps) (GetVenueListResult, error) {
	venues, err := deps.VenueStore.List(ctx, query.Search)
	if err != nil {
		return GetVenueListResult{}, err
	}
	return GetVenueListResult{Venues: venues}, nil
}
