package projections

import (
	"context"

	bookingStore "eventease/internal/adapters/storage/booking"
	domainEvent "eventease/internal/domain/event"
	domainVenue "eventease/internal/domain/venue"
)

// EventStore interface for event queries.
type EventStore interface {
	List(ctx context.Context, search string) ([]domainEvent.Event, error)
}

// VenueStore interface for venue queries.
type VenueStore interface {
	List(ctx context.Context, search string) ([]domainVenue.Venue, error)
}

// BookingStore interface for booking queries.
type BookingStore interface {
	GetDetail(ctx context.Context, id int64) (bookingStore.Detail, error)
	List(ctx context.Context, filter bookingStore.ListFilter) ([]bookingStore.Detail, error)
	Search(ctx context.Context, filter bookingStore.SearchFilter) ([]bookingStore.Detail, error)
}
