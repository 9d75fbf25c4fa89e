package projections

import (
	"context"
	"strconv"

	bookingStore "eventease/internal/adapters/storage/booking"
)

// SearchBookingsQuery carries the advanced search parameters. All fields are
// optional and combine with AND; the date range applies to the event date and
// takes effect only when both bounds are present.
type SearchBookingsQuery struct {
	Text     string // event type substring; a purely numeric value also matches a booking ID
	VenueID  int64  // 0 for any venue
	DateFrom string // inclusive lower bound, YYYY-MM-DD
	DateTo   string // inclusive upper bound, YYYY-MM-DD
}

// SearchBookingsResult carries the query result.
type SearchBookingsResult struct {
	Bookings []bookingStore.Detail
}

// SearchBookingsDeps holds dependencies for SearchBookings.
type SearchBookingsDeps struct {
	BookingStore BookingStore
}

// QuerySearchBookings runs the advanced booking search.
// POST: Returns bookings satisfying every provided criterion
func QuerySearchBookings(ctx context.Context, query SearchBookingsQuery, deps SearchBookingsDeps) (SearchBookingsResult, error) {
	filter := bookingStore.SearchFilter{
		Text:     query.Text,
		VenueID:  query.VenueID,
		DateFrom: query.DateFrom,
		DateTo:   query.DateTo,
	}
	if id, err := strconv.ParseInt(query.Text, 10, 64); err == nil {
		filter.BookingID = id
	}

	bookings, err := deps.BookingStore.Search(ctx, filter)
	if err != nil {
		return SearchBookingsResult{}, err
	}
	return SearchBookingsResult{Bookings: bookings}, nil
}
