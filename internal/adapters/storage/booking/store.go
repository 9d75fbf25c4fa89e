package booking

import (
	"context"

	domainBooking "eventease/internal/domain/booking"
	domainEvent "eventease/internal/domain/event"
	domainVenue "eventease/internal/domain/venue"
)

// Detail is a booking with its event and venue eagerly loaded, for list and
// detail views.
type Detail struct {
	Booking domainBooking.Booking
	Event   domainEvent.Event
	Venue   domainVenue.Venue
}

// ListFilter narrows the booking list. Text matches an event-name substring;
// BookingID matches exactly and is 0 when the search text was not numeric.
type ListFilter struct {
	Text      string
	BookingID int64
}

// SearchFilter narrows the advanced search. Text matches an event-type
// substring (or BookingID exactly); VenueID filters by venue when positive;
// DateFrom/DateTo bound the event date inclusively and only apply when both
// are set.
type SearchFilter struct {
	Text      string
	BookingID int64
	VenueID   int64
	DateFrom  string
	DateTo    string
}

// VenueBooking is the slice of booking state the validity checks need: which
// other events hold the venue, on which date, over which time range.
type VenueBooking struct {
	BookingID int64
	EventID   int64
	BookedOn  string
	StartTime string
	EndTime   string
}

// Store persists Booking state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domainBooking.Booking, error)
	GetDetail(ctx context.Context, id int64) (Detail, error)
	Insert(ctx context.Context, value domainBooking.Booking) (int64, error)
	Update(ctx context.Context, value domainBooking.Booking) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ListFilter) ([]Detail, error)
	Search(ctx context.Context, filter SearchFilter) ([]Detail, error)
	DuplicateExists(ctx context.Context, eventID, venueID, excludeBookingID int64) (bool, error)
	ListForVenue(ctx context.Context, venueID int64) ([]VenueBooking, error)
	ExistsForEvent(ctx context.Context, eventID int64) (bool, error)
	ExistsForVenue(ctx context.Context, venueID int64) (bool, error)
}
