package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventease/internal/adapters/blob"
	"eventease/internal/domain/venue"
)

// VenueReader resolves venues by ID.
type VenueReader interface {
	GetByID(ctx context.Context, id int64) (venue.Venue, error)
}

// VenueWriter persists venues.
type VenueWriter interface {
	VenueReader
	Insert(ctx context.Context, v venue.Venue) (int64, error)
	Update(ctx context.Context, v venue.Venue) error
}

// SaveVenueInput contains the data needed to create or edit a venue.
type SaveVenueInput struct {
	VenueID  int64 // 0 for creates
	Name     string
	Location string
	Capacity int
	Image    *ImagePayload // nil when no new image was uploaded
}

// SaveVenueDeps holds dependencies for the venue save orchestrators.
type SaveVenueDeps struct {
	VenueStore   VenueWriter
	BlobStore    blob.Store
	GenerateName func() string
}

// ExecuteCreateVenue validates and persists a new venue, uploading its image
// first when one was provided.
func ExecuteCreateVenue(ctx context.Context, input SaveVenueInput, deps SaveVenueDeps) (venue.Venue, error) {
	v := venue.Venue{
		Name:     input.Name,
		Location: input.Location,
		Capacity: input.Capacity,
	}
	if err := v.Validate(); err != nil {
		return venue.Venue{}, &ValidationError{Err: err}
	}

	if input.Image != nil {
		url, err := uploadImage(ctx, deps.BlobStore, deps.GenerateName, blob.VenueContainer, input.Image)
		if err != nil {
			return venue.Venue{}, err
		}
		v.ImageURL = url
	}

	id, err := deps.VenueStore.Insert(ctx, v)
	if err != nil {
		return venue.Venue{}, fmt.Errorf("inserting venue: %w", err)
	}

	v.ID = id
	slog.Info("venue_created", "venue_id", id, "name", v.Name)
	return v, nil
}

// ExecuteEditVenue validates and updates an existing venue, swapping the
// stored image only when a new one was uploaded.
// PRE: input.VenueID refers to an existing venue
func ExecuteEditVenue(ctx context.Context, input SaveVenueInput, deps SaveVenueDeps) (venue.Venue, error) {
	if input.VenueID <= 0 {
		return venue.Venue{}, errors.New("venue ID is required")
	}

	existing, err := deps.VenueStore.GetByID(ctx, input.VenueID)
	if err != nil {
		return venue.Venue{}, err
	}

	v := venue.Venue{
		ID:       existing.ID,
		Name:     input.Name,
		Location: input.Location,
		Capacity: input.Capacity,
		ImageURL: existing.ImageURL,
	}
	if err := v.Validate(); err != nil {
		return venue.Venue{}, &ValidationError{Err: err}
	}

	if input.Image != nil {
		url, err := uploadImage(ctx, deps.BlobStore, deps.GenerateName, blob.VenueContainer, input.Image)
		if err != nil {
			return venue.Venue{}, err
		}
		deleteImage(ctx, deps.BlobStore, blob.VenueContainer, existing.ImageURL)
		v.ImageURL = url
	}

	if err := deps.VenueStore.Update(ctx, v); err != nil {
		return venue.Venue{}, fmt.Errorf("updating venue %d: %w", v.ID, err)
	}

	slog.Info("venue_updated", "venue_id", v.ID, "name", v.Name)
	return v, nil
}
