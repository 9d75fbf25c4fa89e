package booking

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrMissingEvent    = errors.New("an event must be selected")
	ErrMissingVenue    = errors.New("a venue must be selected")
	ErrVenueNotFound   = errors.New("selected venue not found")
	ErrInvalidBookedOn = errors.New("booking date must be in YYYY-MM-DD format")
)

// Booking reserves a venue for an event, optionally on a specific date.
// Whether a booking is valid is not stored; it depends on the other bookings
// that exist for the same venue at the time of evaluation.
type Booking struct {
	ID       int64
	EventID  int64
	VenueID  int64
	BookedOn string // YYYY-MM-DD, empty when no date was chosen
}

// Validate checks if the Booking has valid data.
// PRE: Booking struct is populated
// POST: Returns nil if valid, error otherwise
func (b *Booking) Validate() error {
	if b.EventID <= 0 {
		return ErrMissingEvent
	}
	if b.VenueID <= 0 {
		return ErrMissingVenue
	}
	if b.BookedOn != "" {
		if _, err := time.Parse("2006-01-02", b.BookedOn); err != nil {
			return ErrInvalidBookedOn
		}
	}
	return nil
}

// Violation is a named reason a proposed booking cannot be committed.
type Violation string

const (
	// ViolationEventNotFound means the referenced event does not exist.
	ViolationEventNotFound Violation = "event_not_found"
	// ViolationDuplicateBooking means the (event, venue) pair is already booked.
	ViolationDuplicateBooking Violation = "duplicate_event_venue"
	// ViolationVenueTimeOverlap means another event occupies the venue during
	// an overlapping time range on the same date.
	ViolationVenueTimeOverlap Violation = "venue_time_overlap"
)

var violationMessages = map[Violation]string{
	ViolationEventNotFound:    "Selected event not found.",
	ViolationDuplicateBooking: "This event has already been booked at the selected venue.",
	ViolationVenueTimeOverlap: "The venue is already booked for another event that overlaps in time.",
}

// Message returns the user-facing text for the violation.
func (v Violation) Message() string {
	if msg, ok := violationMessages[v]; ok {
		return msg
	}
	return string(v)
}

// TimesOverlap reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) overlap. Ranges that merely touch do not overlap.
// Times are zero-padded HH:MM strings, so lexicographic order is time order.
// PRE: all four values are HH:MM strings
// POST: Returns aStart < bEnd && aEnd > bStart
func TimesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}
