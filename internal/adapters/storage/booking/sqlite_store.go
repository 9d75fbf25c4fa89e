package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventease/internal/adapters/storage"
	domainBooking "eventease/internal/domain/booking"
)

const detailColumns = `b.id, b.event_id, b.venue_id, b.booked_on,
	e.id, e.name, e.description, e.event_type, e.event_date, e.start_time, e.end_time, e.image_url,
	v.id, v.name, v.location, v.capacity, v.image_url`

const detailJoin = ` FROM booking b
	JOIN event e ON e.id = b.event_id
	JOIN venue v ON v.id = b.venue_id`

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new BookingStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Booking by its ID.
// PRE: id is positive
// POST: Returns the entity, or storage.ErrNotFound if no row matches
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domainBooking.Booking, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, event_id, venue_id, booked_on FROM booking WHERE id = ?", id)
	var entity domainBooking.Booking
	err := row.Scan(&entity.ID, &entity.EventID, &entity.VenueID, &entity.BookedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return domainBooking.Booking{}, fmt.Errorf("booking %d: %w", id, storage.ErrNotFound)
	}
	return entity, err
}

// GetDetail retrieves a Booking with its event and venue eagerly loaded.
// PRE: id is positive
// POST: Returns the detail row, or storage.ErrNotFound if no row matches
func (s *SQLiteStore) GetDetail(ctx context.Context, id int64) (Detail, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+detailColumns+detailJoin+" WHERE b.id = ?", id)
	detail, err := scanDetail(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Detail{}, fmt.Errorf("booking %d: %w", id, storage.ErrNotFound)
	}
	return detail, err
}

// Insert persists a new Booking and returns its assigned ID.
// PRE: entity has been validated
// POST: Row is inserted, or storage.ErrConflict if the (event, venue) pair
// is already booked
func (s *SQLiteStore) Insert(ctx context.Context, entity domainBooking.Booking) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO booking (event_id, venue_id, booked_on) VALUES (?, ?, ?)",
		entity.EventID, entity.VenueID, entity.BookedOn,
	)
	if err != nil {
		return 0, mapConstraintError(err, entity)
	}
	return res.LastInsertId()
}

// Update overwrites an existing Booking.
// PRE: entity has been validated and carries the target ID
// POST: Row is updated; storage.ErrNotFound if it was deleted concurrently,
// storage.ErrConflict if the new (event, venue) pair is already booked
func (s *SQLiteStore) Update(ctx context.Context, entity domainBooking.Booking) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE booking SET event_id=?, venue_id=?, booked_on=? WHERE id=?",
		entity.EventID, entity.VenueID, entity.BookedOn, entity.ID,
	)
	if err != nil {
		return mapConstraintError(err, entity)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("booking %d: %w", entity.ID, storage.ErrNotFound)
	}
	return nil
}

// Delete removes a Booking from the database.
// PRE: id is positive
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM booking WHERE id = ?", id)
	return err
}

// List retrieves Bookings with event and venue loaded, optionally filtered
// by event-name substring or exact booking ID.
// PRE: filter.BookingID is 0 when the search text is not numeric
// POST: Returns matching rows ordered by booking ID
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]Detail, error) {
	query := "SELECT " + detailColumns + detailJoin
	var args []any
	if filter.Text != "" {
		query += " WHERE (e.name LIKE '%' || ? || '%' OR b.id = ?)"
		args = append(args, filter.Text, filter.BookingID)
	}
	query += " ORDER BY b.id"
	return s.queryDetails(ctx, query, args...)
}

// Search retrieves Bookings for the advanced search view.
// PRE: filter.BookingID is 0 when the search text is not numeric
// POST: Returns rows matching every supplied criterion, ordered by booking ID
func (s *SQLiteStore) Search(ctx context.Context, filter SearchFilter) ([]Detail, error) {
	var conds []string
	var args []any
	if filter.Text != "" {
		conds = append(conds, "(e.event_type LIKE '%' || ? || '%' OR b.id = ?)")
		args = append(args, filter.Text, filter.BookingID)
	}
	if filter.VenueID > 0 {
		conds = append(conds, "b.venue_id = ?")
		args = append(args, filter.VenueID)
	}
	// The date range filters on the event date and only applies when both
	// bounds are present.
	if filter.DateFrom != "" && filter.DateTo != "" {
		conds = append(conds, "e.event_date >= ? AND e.event_date <= ?")
		args = append(args, filter.DateFrom, filter.DateTo)
	}

	query := "SELECT " + detailColumns + detailJoin
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY b.id"
	return s.queryDetails(ctx, query, args...)
}

// DuplicateExists reports whether another booking already pairs the event
// with the venue. excludeBookingID skips the booking being edited; pass 0
// for creates.
// PRE: eventID and venueID are positive
// POST: Returns true if a conflicting row exists
func (s *SQLiteStore) DuplicateExists(ctx context.Context, eventID, venueID, excludeBookingID int64) (bool, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM booking WHERE event_id = ? AND venue_id = ? AND id != ?)",
		eventID, venueID, excludeBookingID,
	)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

// ListForVenue retrieves every booking at the venue joined with its event's
// time range, for the overlap check.
// PRE: venueID is positive
// POST: Returns one row per booking at the venue
func (s *SQLiteStore) ListForVenue(ctx context.Context, venueID int64) ([]VenueBooking, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT b.id, b.event_id, b.booked_on, e.start_time, e.end_time
		FROM booking b JOIN event e ON e.id = b.event_id
		WHERE b.venue_id = ?`,
		venueID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []VenueBooking
	for rows.Next() {
		var vb VenueBooking
		if err := rows.Scan(&vb.BookingID, &vb.EventID, &vb.BookedOn, &vb.StartTime, &vb.EndTime); err != nil {
			return nil, err
		}
		results = append(results, vb)
	}
	return results, rows.Err()
}

// ExistsForEvent reports whether any booking references the event.
// PRE: eventID is positive
// POST: Returns true if at least one dependent booking exists
func (s *SQLiteStore) ExistsForEvent(ctx context.Context, eventID int64) (bool, error) {
	row := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM booking WHERE event_id = ?)", eventID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

// ExistsForVenue reports whether any booking references the venue.
// PRE: venueID is positive
// POST: Returns true if at least one dependent booking exists
func (s *SQLiteStore) ExistsForVenue(ctx context.Context, venueID int64) (bool, error) {
	row := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM booking WHERE venue_id = ?)", venueID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

func (s *SQLiteStore) queryDetails(ctx context.Context, query string, args ...any) ([]Detail, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Detail
	for rows.Next() {
		detail, err := scanDetail(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, detail)
	}
	return results, rows.Err()
}

func scanDetail(scan func(dest ...any) error) (Detail, error) {
	var d Detail
	err := scan(
		&d.Booking.ID, &d.Booking.EventID, &d.Booking.VenueID, &d.Booking.BookedOn,
		&d.Event.ID, &d.Event.Name, &d.Event.Description, &d.Event.Type,
		&d.Event.Date, &d.Event.StartTime, &d.Event.EndTime, &d.Event.ImageURL,
		&d.Venue.ID, &d.Venue.Name, &d.Venue.Location, &d.Venue.Capacity, &d.Venue.ImageURL,
	)
	return d, err
}

// mapConstraintError translates the driver's constraint failures into the
// shared sentinels. The driver exposes them only as error text.
func mapConstraintError(err error, entity domainBooking.Booking) error {
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("booking for event %d at venue %d: %w", entity.EventID, entity.VenueID, storage.ErrConflict)
	}
	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return fmt.Errorf("booking for event %d at venue %d: %w", entity.EventID, entity.VenueID, storage.ErrInvalidRef)
	}
	return err
}
