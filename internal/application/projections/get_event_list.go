package projections

import (
	"context"

	"eventease/internal/domain/event"
)

// GetEventListQuery carries query parameters.
type GetEventListQuery struct {
	Search string // name substring, empty for all
}

// GetEventListResult carries the query result.
type GetEventListResult struct {
	Events []event.Event
}

// GetEventListDeps holds dependencies for GetEventList.
type GetEventListDeps struct {
	EventStore EventStore
}

// QueryGetEventList retrieves events matching the search text.
// POST: Returns events ordered by date then start time
func QueryGetEventList(ctx context.Context, query GetEventListQuery, deps GetEventListDeps) (GetEventListResult, error) {
	events, err := deps.EventStore.List(ctx, query.Search)
	if err != nil {
		return GetEventListResult{}, err
	}
	return GetEventListResult{Events: events}, nil
}
