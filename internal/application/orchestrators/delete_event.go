package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"eventease/internal/adapters/blob"
	"eventease/internal/domain/event"
)

// EventRemover exposes the reads and the delete the removal path needs.
type EventRemover interface {
	GetByID(ctx context.Context, id int64) (event.Event, error)
	Delete(ctx context.Context, id int64) error
}

// BookingExistenceReader answers whether bookings reference an entity.
type BookingExistenceReader interface {
	ExistsForEvent(ctx context.Context, eventID int64) (bool, error)
	ExistsForVenue(ctx context.Context, venueID int64) (bool, error)
}

// DeleteEventDeps holds dependencies for DeleteEvent.
type DeleteEventDeps struct {
	EventStore   EventRemover
	BookingStore BookingExistenceReader
	BlobStore    blob.Store
}

// ExecuteDeleteEvent removes an event and its stored image. Events with
// dependent bookings are protected; the guard refuses with ErrDeleteConflict
// and leaves the event, its image, and the bookings untouched.
// POST: On success the event row is gone and its blob removal was attempted
func ExecuteDeleteEvent(ctx context.Context, id int64, deps DeleteEventDeps) error {
	e, err := deps.EventStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	referenced, err := deps.BookingStore.ExistsForEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("checking bookings for event %d: %w", id, err)
	}
	if referenced {
		return fmt.Errorf("deleting event %d: %w", id, ErrDeleteConflict)
	}

	deleteImage(ctx, deps.BlobStore, blob.EventContainer, e.ImageURL)

	if err := deps.EventStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting event %d: %w", id, err)
	}

	slog.Info("event_deleted", "event_id", id, "name", e.Name)
	return nil
}
