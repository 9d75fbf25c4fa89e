package orchestrators

import (
	"context"
	"fmt"
	"io"

	"eventease/internal/adapters/storage"
	bookingStore "eventease/internal/adapters/storage/booking"
	"eventease/internal/domain/booking"
	"eventease/internal/domain/event"
	"eventease/internal/domain/venue"
)

// mockEventStore is a map-backed event store for orchestrator tests.
type mockEventStore struct {
	events    map[int64]event.Event
	nextID    int64
	insertErr error
	updateErr error
}

func newMockEventStore() *mockEventStore {
	return &mockEventStore{events: make(map[int64]event.Event)}
}

func (m *mockEventStore) GetByID(_ context.Context, id int64) (event.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return event.Event{}, fmt.Errorf("event %d: %w", id, storage.ErrNotFound)
	}
	return e, nil
}

func (m *mockEventStore) Insert(_ context.Context, e event.Event) (int64, error) {
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	m.nextID++
	e.ID = m.nextID
	m.events[e.ID] = e
	return e.ID, nil
}

func (m *mockEventStore) Update(_ context.Context, e event.Event) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.events[e.ID]; !ok {
		return fmt.Errorf("event %d: %w", e.ID, storage.ErrNotFound)
	}
	m.events[e.ID] = e
	return nil
}

func (m *mockEventStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.events[id]; !ok {
		return fmt.Errorf("event %d: %w", id, storage.ErrNotFound)
	}
	delete(m.events, id)
	return nil
}

// seed stores an event under its own ID and returns it.
func (m *mockEventStore) seed(e event.Event) event.Event {
	if e.ID > m.nextID {
		m.nextID = e.ID
	}
	m.events[e.ID] = e
	return e
}

// mockVenueStore is a map-backed venue store for orchestrator tests.
type mockVenueStore struct {
	venues    map[int64]venue.Venue
	nextID    int64
	updateErr error
}

func newMockVenueStore() *mockVenueStore {
	return &mockVenueStore{venues: make(map[int64]venue.Venue)}
}

func (m *mockVenueStore) GetByID(_ context.Context, id int64) (venue.Venue, error) {
	v, ok := m.venues[id]
	if !ok {
		return venue.Venue{}, fmt.Errorf("venue %d: %w", id, storage.ErrNotFound)
	}
	return v, nil
}

func (m *mockVenueStore) Insert(_ context.Context, v venue.Venue) (int64, error) {
	m.nextID++
	v.ID = m.nextID
	m.venues[v.ID] = v
	return v.ID, nil
}

func (m *mockVenueStore) Update(_ context.Context, v venue.Venue) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.venues[v.ID]; !ok {
		return fmt.Errorf("venue %d: %w", v.ID, storage.ErrNotFound)
	}
	m.venues[v.ID] = v
	return nil
}

func (m *mockVenueStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.venues[id]; !ok {
		return fmt.Errorf("venue %d: %w", id, storage.ErrNotFound)
	}
	delete(m.venues, id)
	return nil
}

func (m *mockVenueStore) seed(v venue.Venue) venue.Venue {
	if v.ID > m.nextID {
		m.nextID = v.ID
	}
	m.venues[v.ID] = v
	return v
}

// mockBookingStore is a map-backed booking store. It resolves event time
// ranges through the paired event store, mirroring the SQL join.
type mockBookingStore struct {
	bookings  map[int64]booking.Booking
	eventsRef *mockEventStore
	nextID    int64
	insertErr error
	updateErr error
}

func newMockBookingStore(events *mockEventStore) *mockBookingStore {
	return &mockBookingStore{bookings: make(map[int64]booking.Booking), eventsRef: events}
}

func (m *mockBookingStore) GetByID(_ context.Context, id int64) (booking.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return booking.Booking{}, fmt.Errorf("booking %d: %w", id, storage.ErrNotFound)
	}
	return b, nil
}

func (m *mockBookingStore) Insert(_ context.Context, b booking.Booking) (int64, error) {
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	m.nextID++
	b.ID = m.nextID
	m.bookings[b.ID] = b
	return b.ID, nil
}

func (m *mockBookingStore) Update(_ context.Context, b booking.Booking) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.bookings[b.ID]; !ok {
		return fmt.Errorf("booking %d: %w", b.ID, storage.ErrNotFound)
	}
	m.bookings[b.ID] = b
	return nil
}

func (m *mockBookingStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.bookings[id]; !ok {
		return fmt.Errorf("booking %d: %w", id, storage.ErrNotFound)
	}
	delete(m.bookings, id)
	return nil
}

func (m *mockBookingStore) DuplicateExists(_ context.Context, eventID, venueID, excludeBookingID int64) (bool, error) {
	for _, b := range m.bookings {
		if b.EventID == eventID && b.VenueID == venueID && b.ID != excludeBookingID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockBookingStore) ListForVenue(_ context.Context, venueID int64) ([]bookingStore.VenueBooking, error) {
	var out []bookingStore.VenueBooking
	for _, b := range m.bookings {
		if b.VenueID != venueID {
			continue
		}
		e := m.eventsRef.events[b.EventID]
		out = append(out, bookingStore.VenueBooking{
			BookingID: b.ID,
			EventID:   b.EventID,
			BookedOn:  b.BookedOn,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		})
	}
	return out, nil
}

func (m *mockBookingStore) ExistsForEvent(_ context.Context, eventID int64) (bool, error) {
	for _, b := range m.bookings {
		if b.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockBookingStore) ExistsForVenue(_ context.Context, venueID int64) (bool, error) {
	for _, b := range m.bookings {
		if b.VenueID == venueID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockBookingStore) seed(b booking.Booking) booking.Booking {
	if b.ID > m.nextID {
		m.nextID = b.ID
	}
	m.bookings[b.ID] = b
	return b
}

// mockBlobStore records uploads and deletes without touching any backend.
type mockBlobStore struct {
	uploads   []string // container/name
	deletes   []string // blob URLs passed to Delete
	uploadErr error
	deleteErr error
}

func (m *mockBlobStore) EnsureContainer(_ context.Context, _ string) error { return nil }

func (m *mockBlobStore) Upload(_ context.Context, container, name, _ string, body io.Reader) (string, error) {
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	m.uploads = append(m.uploads, container+"/"+name)
	return "https://blob.test/" + container + "/" + name, nil
}

func (m *mockBlobStore) Delete(_ context.Context, _ string, blobURL string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletes = append(m.deletes, blobURL)
	return nil
}

func fixedName() string { return "img-0001" }
