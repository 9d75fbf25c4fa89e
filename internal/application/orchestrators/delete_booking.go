package orchestrators

import (
	"context"
	"log/slog"

	bookingDomain "eventease/internal/domain/booking"
)

// BookingRemover exposes the reads and the delete the removal path needs.
type BookingRemover interface {
	GetByID(ctx context.Context, id int64) (bookingDomain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// DeleteBookingDeps holds dependencies for DeleteBooking.
type DeleteBookingDeps struct {
	BookingStore BookingRemover
}

// ExecuteDeleteBooking removes a booking. Bookings are leaf records, so no
// dependent-record guard applies.
// PRE: id refers to an existing booking
// POST: The booking row is gone
func ExecuteDeleteBooking(ctx context.Context, id int64, deps DeleteBookingDeps) error {
	b, err := deps.BookingStore.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := deps.BookingStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("booking_deleted", "booking_id", id, "event_id", b.EventID, "venue_id", b.VenueID)
	return nil
}
