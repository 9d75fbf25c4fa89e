package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"eventease/internal/adapters/blob"
	"eventease/internal/domain/venue"
)

// VenueRemover exposes the reads and the delete the removal path needs.
type VenueRemover interface {
	GetByID(ctx context.Context, id int64) (venue.Venue, error)
	Delete(ctx context.Context, id int64) error
}

// DeleteVenueDeps holds dependencies for DeleteVenue.
type DeleteVenueDeps struct {
	VenueStore   VenueRemover
	BookingStore BookingExistenceReader
	BlobStore    blob.Store
}

// ExecuteDeleteVenue removes a venue and its stored image, refusing with
// ErrDeleteConflict while bookings still reference the venue.
// POST: On success the venue row is gone and its blob removal was attempted
func ExecuteDeleteVenue(ctx context.Context, id int64, deps DeleteVenueDeps) error {
	v, err := deps.VenueStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	referenced, err := deps.BookingStore.ExistsForVenue(ctx, id)
	if err != nil {
		return fmt.Errorf("checking bookings for venue %d: %w", id, err)
	}
	if referenced {
		return fmt.Errorf("deleting venue %d: %w", id, ErrDeleteConflict)
	}

	deleteImage(ctx, deps.BlobStore, blob.VenueContainer, v.ImageURL)

	if err := deps.VenueStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting venue %d: %w", id, err)
	}

	slog.Info("venue_deleted", "venue_id", id, "name", v.Name)
	return nil
}
