package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventease/internal/adapters/blob"
	"eventease/internal/domain/event"
)

// EventWriter persists events.
type EventWriter interface {
	EventReader
	Insert(ctx context.Context, e event.Event) (int64, error)
	Update(ctx context.Context, e event.Event) error
}

// SaveEventInput contains the data needed to create or edit an event.
type SaveEventInput struct {
	EventID     int64 // 0 for creates
	Name        string
	Description string
	Type        string
	Date        string
	StartTime   string
	EndTime     string
	Image       *ImagePayload // nil when no new image was uploaded
}

// SaveEventDeps holds dependencies for the event save orchestrators.
type SaveEventDeps struct {
	EventStore   EventWriter
	BlobStore    blob.Store
	GenerateName func() string // generates blob names for uploaded images
}

// ExecuteCreateEvent validates and persists a new event, uploading its image
// first when one was provided.
// POST: On success the returned event carries its assigned ID and image URL
func ExecuteCreateEvent(ctx context.Context, input SaveEventInput, deps SaveEventDeps) (event.Event, error) {
	e := event.Event{
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
	}
	if err := e.Validate(); err != nil {
		return event.Event{}, &ValidationError{Err: err}
	}

	if input.Image != nil {
		url, err := uploadImage(ctx, deps.BlobStore, deps.GenerateName, blob.EventContainer, input.Image)
		if err != nil {
			return event.Event{}, err
		}
		e.ImageURL = url
	}

	id, err := deps.EventStore.Insert(ctx, e)
	if err != nil {
		return event.Event{}, fmt.Errorf("inserting event: %w", err)
	}

	e.ID = id
	slog.Info("event_created", "event_id", id, "name", e.Name, "date", e.Date)
	return e, nil
}

// ExecuteEditEvent validates and updates an existing event. A newly uploaded
// image replaces the stored one, deleting the old blob; with no new image the
// persisted image URL is retained untouched.
// PRE: input.EventID refers to an existing event
func ExecuteEditEvent(ctx context.Context, input SaveEventInput, deps SaveEventDeps) (event.Event, error) {
	if input.EventID <= 0 {
		return event.Event{}, errors.New("event ID is required")
	}

	existing, err := deps.EventStore.GetByID(ctx, input.EventID)
	if err != nil {
		return event.Event{}, err
	}

	e := event.Event{
		ID:          existing.ID,
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		ImageURL:    existing.ImageURL,
	}
	if err := e.Validate(); err != nil {
		return event.Event{}, &ValidationError{Err: err}
	}

	if input.Image != nil {
		url, err := uploadImage(ctx, deps.BlobStore, deps.GenerateName, blob.EventContainer, input.Image)
		if err != nil {
			return event.Event{}, err
		}
		deleteImage(ctx, deps.BlobStore, blob.EventContainer, existing.ImageURL)
		e.ImageURL = url
	}

	if err := deps.EventStore.Update(ctx, e); err != nil {
		return event.Event{}, fmt.Errorf("updating event %d: %w", e.ID, err)
	}

	slog.Info("event_updated", "event_id", e.ID, "name", e.Name)
	return e, nil
}
