package booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"eventease/internal/adapters/storage"
	domainBooking "eventease/internal/domain/booking"
)

// newTestStore opens an in-memory database with the full schema and seeds
// two events and two venues.
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}

	seed := []string{
		"INSERT INTO event (name, description, event_type, event_date, start_time, end_time) VALUES ('Jazz Evening', 'Live jazz.', 'Concert', '2025-01-10', '10:00', '11:00')",
		"INSERT INTO event (name, description, event_type, event_date, start_time, end_time) VALUES ('Craft Fair', 'Stalls.', 'Market', '2025-02-20', '10:30', '11:30')",
		"INSERT INTO venue (name, location, capacity) VALUES ('Town Hall', '12 Queen Street', 250)",
		"INSERT INTO venue (name, location, capacity) VALUES ('River Pavilion', '3 Bank Road', 80)",
	}
	for _, q := range seed {
		if _, err := db.Exec(q); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	return NewSQLiteStore(db)
}

// TestInsertAndGetDetail tests that an inserted booking comes back with its
// event and venue eagerly loaded.
func TestInsertAndGetDetail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Insert(ctx, domainBooking.Booking{EventID: 1, VenueID: 1, BookedOn: "2025-01-10"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a generated booking ID")
	}

	detail, err := store.GetDetail(ctx, id)
	if err != nil {
		t.Fatalf("GetDetail failed: %v", err)
	}
	if detail.Event.Name != "Jazz Evening" {
		t.Errorf("expected event loaded, got %q", detail.Event.Name)
	}
	if detail.Venue.Name != "Town Hall" {
		t.Errorf("expected venue loaded, got %q", detail.Venue.Name)
	}
	if detail.Booking.BookedOn != "2025-01-10" {
		t.Errorf("expected booked_on retained, got %q", detail.Booking.BookedOn)
	}
}

// TestInsert_DuplicatePairConflict tests that the unique index surfaces as
// storage.ErrConflict.
func TestInsert_DuplicatePairConflict(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Insert(ctx, domainBooking.Booking{EventID: 1, VenueID: 1}); err != nil {
		t.Fatalf("first Insert failed: %v", err)
	}
	_, err := store.Insert(ctx, domainBooking.Booking{EventID: 1, VenueID: 1})
	if !errors.Is(err, storage.ErrConflict) {
		t.Errorf("expected storage.ErrConflict, got %v", err)
	}
}

// TestInsert_MissingVenueRef tests that a booking referencing a nonexistent
// venue surfaces as storage.ErrInvalidRef via the foreign key.
func TestInsert_MissingVenueRef(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, domainBooking.Booking{EventID: 1, VenueID: 99})
	if !errors.Is(err, storage.ErrInvalidRef) {
		t.Errorf("expected storage.ErrInvalidRef, got %v", err)
	}
}

// TestUpdate_VanishedRow tests that updating a deleted booking reports
// storage.ErrNotFound.
func TestUpdate_VanishedRow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Update(ctx, domainBooking.Booking{ID: 99, EventID: 1, VenueID: 1})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected storage.ErrNotFound, got %v", err)
	}
}

// TestDuplicateExists_ExcludesSelf tests the self-exclusion used when
// editing a booking.
func TestDuplicateExists_ExcludesSelf(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Insert(ctx, domainBooking.Booking{EventID: 1, VenueID: 2})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	dup, err := store.DuplicateExists(ctx, 1, 2, 0)
	if err != nil {
		t.Fatalf("DuplicateExists failed: %v", err)
	}
	if !dup {
		t.Error("expected duplicate to be reported for a new booking")
	}

	dup, err = store.DuplicateExists(ctx, 1, 2, id)
	if err != nil {
		t.Fatalf("DuplicateExists failed: %v", err)
	}
	if dup {
		t.Error("expected no duplicate when the existing row is the one being edited")
	}
}

// TestListForVenue tests the join feeding the overlap check.
func TestListForVenue(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Insert(ctx, domainBooking.Booking{EventID: 1, VenueID: 1, BookedOn: "2025-01-10"}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if _, err := store.Insert(ctx, domainBooking.Booking{EventID: 2, VenueID: 2}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.ListForVenue(ctx, 1)
	if err != nil {
		t.Fatalf("ListForVenue failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 booking at venue 1, got %d", len(got))
	}
	vb := got[0]
	if vb.EventID != 1 || vb.StartTime != "10:00" || vb.EndTime != "11:00" || vb.BookedOn != "2025-01-10" {
		t.Errorf("unexpected venue booking row: %+v", vb)
	}
}

// TestList_TextAndIDSearch tests the list filter matching event name or
// exact booking ID.
func TestList_TextAndIDSearch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id1, _ := store.Insert(ctx, domainBooking.Booking{EventID: 1, VenueID: 1})
	id2, _ := store.Insert(ctx, domainBooking.Booking{EventID: 2, VenueID: 2})

	byName, err := store.List(ctx, ListFilter{Text: "jazz"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byName) != 1 || byName[0].Booking.ID != id1 {
		t.Errorf("expected only the jazz booking, got %d rows", len(byName))
	}

	byID, err := store.List(ctx, ListFilter{Text: "2", BookingID: id2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byID) != 1 || byID[0].Booking.ID != id2 {
		t.Errorf("expected only booking %d, got %d rows", id2, len(byID))
	}

	all, err := store.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 rows without a filter, got %d", len(all))
	}
}

// TestSearch_Filters tests the advanced search criteria.
func TestSearch_Filters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Insert(ctx, domainBooking.Booking{EventID: 1, VenueID: 1}) // Concert on 2025-01-10
	store.Insert(ctx, domainBooking.Booking{EventID: 2, VenueID: 2}) // Market on 2025-02-20

	byType, err := store.Search(ctx, SearchFilter{Text: "concert"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(byType) != 1 || byType[0].Event.Type != "Concert" {
		t.Errorf("expected 1 concert booking, got %d rows", len(byType))
	}

	byVenue, err := store.Search(ctx, SearchFilter{VenueID: 2})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(byVenue) != 1 || byVenue[0].Venue.ID != 2 {
		t.Errorf("expected 1 booking at venue 2, got %d rows", len(byVenue))
	}

	byDate, err := store.Search(ctx, SearchFilter{DateFrom: "2025-01-01", DateTo: "2025-01-31"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(byDate) != 1 || byDate[0].Event.Date != "2025-01-10" {
		t.Errorf("expected 1 booking in January, got %d rows", len(byDate))
	}

	// A single bound is ignored, per the range-filter contract.
	halfRange, err := store.Search(ctx, SearchFilter{DateFrom: "2025-01-01"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(halfRange) != 2 {
		t.Errorf("expected 2 rows when only one bound is set, got %d", len(halfRange))
	}
}

// TestExistencePredicates tests the deletion-guard queries.
func TestExistencePredicates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Insert(ctx, domainBooking.Booking{EventID: 1, VenueID: 2})

	forEvent, err := store.ExistsForEvent(ctx, 1)
	if err != nil {
		t.Fatalf("ExistsForEvent failed: %v", err)
	}
	if !forEvent {
		t.Error("expected ExistsForEvent to be true for event 1")
	}

	forVenue, err := store.ExistsForVenue(ctx, 1)
	if err != nil {
		t.Fatalf("ExistsForVenue failed: %v", err)
	}
	if forVenue {
		t.Error("expected ExistsForVenue to be false for venue 1")
	}
}
