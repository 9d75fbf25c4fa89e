package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventease/internal/adapters/storage"
	bookingDomain "eventease/internal/domain/booking"
)

// BookingWriter persists bookings and exposes the reads the save path needs.
type BookingWriter interface {
	BookingConflictReader
	GetByID(ctx context.Context, id int64) (bookingDomain.Booking, error)
	Insert(ctx context.Context, b bookingDomain.Booking) (int64, error)
	Update(ctx context.Context, b bookingDomain.Booking) error
}

// CreateBookingInput contains the data needed to create a booking.
type CreateBookingInput struct {
	EventID  int64
	VenueID  int64
	BookedOn string
}

// EditBookingInput contains the data needed to edit an existing booking.
type EditBookingInput struct {
	BookingID int64
	EventID   int64
	VenueID   int64
	BookedOn  string
}

// SaveBookingDeps holds dependencies for the booking save orchestrators.
type SaveBookingDeps struct {
	EventStore   EventReader
	BookingStore BookingWriter
}

// ExecuteCreateBooking validates a proposed booking and commits it when no
// violation stands. A non-empty violation list is a normal outcome, not an
// error; nothing is written in that case.
// POST: On success the returned booking carries its assigned ID
func ExecuteCreateBooking(ctx context.Context, input CreateBookingInput, deps SaveBookingDeps) (bookingDomain.Booking, []bookingDomain.Violation, error) {
	b := bookingDomain.Booking{
		EventID:  input.EventID,
		VenueID:  input.VenueID,
		BookedOn: input.BookedOn,
	}
	if err := b.Validate(); err != nil {
		return bookingDomain.Booking{}, nil, &ValidationError{Err: err}
	}

	violations, err := ExecuteValidateBooking(ctx, ValidateBookingInput{
		EventID:  input.EventID,
		VenueID:  input.VenueID,
		BookedOn: input.BookedOn,
	}, ValidateBookingDeps{EventStore: deps.EventStore, BookingStore: deps.BookingStore})
	if err != nil {
		return bookingDomain.Booking{}, nil, err
	}
	if len(violations) > 0 {
		return b, violations, nil
	}

	id, err := deps.BookingStore.Insert(ctx, b)
	if errors.Is(err, storage.ErrConflict) {
		// A concurrent writer won the race on the same event/venue pair
		// after our check passed. Surface it the same way the check would.
		return b, []bookingDomain.Violation{bookingDomain.ViolationDuplicateBooking}, nil
	}
	if errors.Is(err, storage.ErrInvalidRef) {
		// The validator proves the event exists; a venue that does not is
		// caught by the foreign key at write time.
		return bookingDomain.Booking{}, nil, &ValidationError{Err: bookingDomain.ErrVenueNotFound}
	}
	if err != nil {
		return bookingDomain.Booking{}, nil, fmt.Errorf("inserting booking: %w", err)
	}

	b.ID = id
	slog.Info("booking_created", "booking_id", id, "event_id", b.EventID, "venue_id", b.VenueID, "booked_on", b.BookedOn)
	return b, nil, nil
}

// ExecuteEditBooking revalidates and updates an existing booking. The
// booking's own row is excluded from the duplicate and overlap comparisons,
// so resaving a booking unchanged always passes.
// PRE: input.BookingID refers to an existing booking
func ExecuteEditBooking(ctx context.Context, input EditBookingInput, deps SaveBookingDeps) (bookingDomain.Booking, []bookingDomain.Violation, error) {
	if input.BookingID <= 0 {
		return bookingDomain.Booking{}, nil, errors.New("booking ID is required")
	}

	existing, err := deps.BookingStore.GetByID(ctx, input.BookingID)
	if err != nil {
		return bookingDomain.Booking{}, nil, err
	}

	b := bookingDomain.Booking{
		ID:       existing.ID,
		EventID:  input.EventID,
		VenueID:  input.VenueID,
		BookedOn: input.BookedOn,
	}
	if err := b.Validate(); err != nil {
		return bookingDomain.Booking{}, nil, &ValidationError{Err: err}
	}

	violations, err := ExecuteValidateBooking(ctx, ValidateBookingInput{
		BookingID: b.ID,
		EventID:   input.EventID,
		VenueID:   input.VenueID,
		BookedOn:  input.BookedOn,
	}, ValidateBookingDeps{EventStore: deps.EventStore, BookingStore: deps.BookingStore})
	if err != nil {
		return bookingDomain.Booking{}, nil, err
	}
	if len(violations) > 0 {
		return b, violations, nil
	}

	err = deps.BookingStore.Update(ctx, b)
	if errors.Is(err, storage.ErrConflict) {
		return b, []bookingDomain.Violation{bookingDomain.ViolationDuplicateBooking}, nil
	}
	if errors.Is(err, storage.ErrInvalidRef) {
		return bookingDomain.Booking{}, nil, &ValidationError{Err: bookingDomain.ErrVenueNotFound}
	}
	if err != nil {
		return bookingDomain.Booking{}, nil, fmt.Errorf("updating booking %d: %w", b.ID, err)
	}

	slog.Info("booking_updated", "booking_id", b.ID, "event_id", b.EventID, "venue_id", b.VenueID)
	return b, nil, nil
}
