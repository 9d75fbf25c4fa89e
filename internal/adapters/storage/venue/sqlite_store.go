package venue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventease/internal/adapters/storage"
	domain "eventease/internal/domain/venue"
)

const venueColumns = "id, name, location, capacity, image_url"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new VenueStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Venue by its ID.
// PRE: id is positive
// POST: Returns the entity, or storage.ErrNotFound if no row matches
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Venue, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+venueColumns+" FROM venue WHERE id = ?", id)
	entity, err := scanVenue(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Venue{}, fmt.Errorf("venue %d: %w", id, storage.ErrNotFound)
	}
	return entity, err
}

// Insert persists a new Venue and returns its assigned ID.
// PRE: entity has been validated
// POST: Row is inserted, generated ID returned
func (s *SQLiteStore) Insert(ctx context.Context, entity domain.Venue) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO venue (name, location, capacity, image_url) VALUES (?, ?, ?, ?)",
		entity.Name, entity.Location, entity.Capacity, entity.ImageURL,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites an existing Venue.
// PRE: entity has been validated and carries the target ID
// POST: Row is updated, or storage.ErrNotFound if it was deleted concurrently
func (s *SQLiteStore) Update(ctx context.Context, entity domain.Venue) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE venue SET name=?, location=?, capacity=?, image_url=? WHERE id=?",
		entity.Name, entity.Location, entity.Capacity, entity.ImageURL, entity.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("venue %d: %w", entity.ID, storage.ErrNotFound)
	}
	return nil
}

// Delete removes a Venue from the database.
// PRE: id is positive
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM venue WHERE id = ?", id)
	return err
}

// List retrieves Venues, optionally filtered by a case-insensitive name
// substring.
// PRE: none
// POST: Returns matching entities ordered by name
func (s *SQLiteStore) List(ctx context.Context, search string) ([]domain.Venue, error) {
	query := "SELECT " + venueColumns + " FROM venue"
	var args []any
	if search != "" {
		query += " WHERE name LIKE '%' || ? || '%'"
		args = append(args, search)
	}
	query += " ORDER BY name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Venue
	for rows.Next() {
		entity, err := scanVenue(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanVenue(scan func(dest ...any) error) (domain.Venue, error) {
	var entity domain.Venue
	err := scan(&entity.ID, &entity.Name, &entity.Location, &entity.Capacity, &entity.ImageURL)
	return entity, err
}
