package orchestrators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"eventease/internal/domain/venue"
)

func TestCreateVenue_WithImage(t *testing.T) {
	venues := newMockVenueStore()
	blobs := &mockBlobStore{}
	deps := SaveVenueDeps{VenueStore: venues, BlobStore: blobs, GenerateName: fixedName}

	v, err := ExecuteCreateVenue(context.Background(), SaveVenueInput{
		Name:     "Main Hall",
		Location: "12 Harbour St",
		Capacity: 300,
		Image:    &ImagePayload{Filename: "hall.png", ContentType: "image/png", Body: strings.NewReader("png-bytes")},
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ImageURL != "https://blob.test/venueimages/img-0001.png" {
		t.Errorf("unexpected image URL %q", v.ImageURL)
	}
	if v.ID == 0 {
		t.Error("expected an assigned venue ID")
	}
}

func TestCreateVenue_InvalidInput(t *testing.T) {
	venues := newMockVenueStore()
	deps := SaveVenueDeps{VenueStore: venues, BlobStore: &mockBlobStore{}, GenerateName: fixedName}

	_, err := ExecuteCreateVenue(context.Background(), SaveVenueInput{
		Name:     "Main Hall",
		Location: "12 Harbour St",
		Capacity: -1,
	}, deps)
	if !errors.Is(err, venue.ErrNegativeCapacity) {
		t.Errorf("expected ErrNegativeCapacity, got %v", err)
	}
	if len(venues.venues) != 0 {
		t.Error("invalid venue was persisted")
	}
}

func TestEditVenue_KeepsImageWithoutNewUpload(t *testing.T) {
	venues := newMockVenueStore()
	venues.seed(venue.Venue{ID: 2, Name: "Main Hall", Location: "12 Harbour St", Capacity: 300,
		ImageURL: "https://blob.test/venueimages/old.png"})
	blobs := &mockBlobStore{}
	deps := SaveVenueDeps{VenueStore: venues, BlobStore: blobs, GenerateName: fixedName}

	v, err := ExecuteEditVenue(context.Background(), SaveVenueInput{
		VenueID:  2,
		Name:     "Main Hall",
		Location: "14 Harbour St",
		Capacity: 320,
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ImageURL != "https://blob.test/venueimages/old.png" {
		t.Errorf("image URL changed without a new upload: %q", v.ImageURL)
	}
	if got := venues.venues[2].Location; got != "14 Harbour St" {
		t.Errorf("location not updated: %q", got)
	}
	if len(blobs.deletes) != 0 {
		t.Errorf("unexpected blob deletes: %v", blobs.deletes)
	}
}

func TestEditVenue_ReplacesImage(t *testing.T) {
	venues := newMockVenueStore()
	venues.seed(venue.Venue{ID: 2, Name: "Main Hall", Location: "12 Harbour St", Capacity: 300,
		ImageURL: "https://blob.test/venueimages/old.png"})
	blobs := &mockBlobStore{}
	deps := SaveVenueDeps{VenueStore: venues, BlobStore: blobs, GenerateName: fixedName}

	v, err := ExecuteEditVenue(context.Background(), SaveVenueInput{
		VenueID:  2,
		Name:     "Main Hall",
		Location: "12 Harbour St",
		Capacity: 300,
		Image:    &ImagePayload{Filename: "hall.JPG", ContentType: "image/jpeg", Body: strings.NewReader("jpg-bytes")},
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ImageURL != "https://blob.test/venueimages/img-0001.jpg" {
		t.Errorf("unexpected image URL %q", v.ImageURL)
	}
	if len(blobs.deletes) != 1 || blobs.deletes[0] != "https://blob.test/venueimages/old.png" {
		t.Errorf("expected old blob deleted, got %v", blobs.deletes)
	}
}
