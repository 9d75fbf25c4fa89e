package orchestrators

import (
	"context"
	"errors"

	"eventease/internal/adapters/storage"
	bookingStore "eventease/internal/adapters/storage/booking"
	"eventease/internal/domain/booking"
	"eventease/internal/domain/event"
	"eventease/internal/monitoring"
)

// EventReader resolves events by ID.
type EventReader interface {
	GetByID(ctx context.Context, id int64) (event.Event, error)
}

// BookingConflictReader exposes the booking state the validity checks consult.
type BookingConflictReader interface {
	DuplicateExists(ctx context.Context, eventID, venueID, excludeBookingID int64) (bool, error)
	ListForVenue(ctx context.Context, venueID int64) ([]bookingStore.VenueBooking, error)
}

// ValidateBookingInput carries the proposed booking.
type ValidateBookingInput struct {
	BookingID int64 // 0 for creates; the booking's own ID on edits, to skip self-comparison
	EventID   int64
	VenueID   int64
	BookedOn  string
}

// ValidateBookingDeps holds dependencies for ValidateBooking.
type ValidateBookingDeps struct {
	EventStore   EventReader
	BookingStore BookingConflictReader
}

// ExecuteValidateBooking decides whether a proposed booking may be committed
// given the bookings that currently exist. It reads but never writes; the
// caller owns the commit. The checks run independently and their violations
// accumulate rather than short-circuit:
//
//  1. the referenced event must exist;
//  2. no other booking may pair the same event with the same venue;
//  3. no other booking at the venue, on the same date, may reference an
//     event whose [start, end) time range overlaps the proposed event's.
//
// PRE: input carries positive EventID and VenueID
// POST: Returns the violations in check order; empty means committable.
// Validating the same input against an unchanged store yields the same list.
func ExecuteValidateBooking(ctx context.Context, input ValidateBookingInput, deps ValidateBookingDeps) ([]booking.Violation, error) {
	var violations []booking.Violation

	proposed, err := deps.EventStore.GetByID(ctx, input.EventID)
	eventFound := err == nil
	if errors.Is(err, storage.ErrNotFound) {
		violations = append(violations, booking.ViolationEventNotFound)
	} else if err != nil {
		return nil, err
	}

	duplicate, err := deps.BookingStore.DuplicateExists(ctx, input.EventID, input.VenueID, input.BookingID)
	if err != nil {
		return nil, err
	}
	if duplicate {
		violations = append(violations, booking.ViolationDuplicateBooking)
	}

	// The overlap check needs the proposed event's time range, so it is
	// skipped when the event could not be resolved.
	if eventFound {
		others, err := deps.BookingStore.ListForVenue(ctx, input.VenueID)
		if err != nil {
			return nil, err
		}
		for _, other := range others {
			if other.BookingID == input.BookingID || other.EventID == input.EventID {
				continue
			}
			if other.BookedOn != input.BookedOn {
				continue
			}
			if booking.TimesOverlap(other.StartTime, other.EndTime, proposed.StartTime, proposed.EndTime) {
				violations = append(violations, booking.ViolationVenueTimeOverlap)
				break
			}
		}
	}

	for _, v := range violations {
		monitoring.RecordBookingViolation(string(v))
	}
	return violations, nil
}
