package projections

import (
	"context"
	"strconv"

	bookingStore "eventease/internal/adapters/storage/booking"
)

// GetBookingListQuery carries query parameters.
type GetBookingListQuery struct {
	Search string // event name substring; a purely numeric value also matches a booking ID
}

// GetBookingListResult carries the query result.
type GetBookingListResult struct {
	Bookings []bookingStore.Detail
}

// GetBookingListDeps holds dependencies for GetBookingList.
type GetBookingListDeps struct {
	BookingStore BookingStore
}

// QueryGetBookingList retrieves bookings joined with their event and venue.
// POST: Returns bookings matching the search by event name or exact booking ID
func QueryGetBookingList(ctx context.Context, query GetBookingListQuery, deps GetBookingListDeps) (GetBookingListResult, error) {
	filter := bookingStore.ListFilter{Text: query.Search}
	if id, err := strconv.ParseInt(query.Search, 10, 64); err == nil {
		filter.BookingID = id
	}

	bookings, err := deps.BookingStore.List(ctx, filter)
	if err != nil {
		return GetBookingListResult{}, err
	}
	return GetBookingListResult{Bookings: bookings}, nil
}
