package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventease/internal/adapters/storage"
	domain "eventease/internal/domain/event"
)

const eventColumns = "id, name, description, event_type, event_date, start_time, end_time, image_url"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new EventStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves an Event by its ID.
// PRE: id is positive
// POST: Returns the entity, or storage.ErrNotFound if no row matches
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Event, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM event WHERE id = ?", id)
	entity, err := scanEvent(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Event{}, fmt.Errorf("event %d: %w", id, storage.ErrNotFound)
	}
	return entity, err
}

// Insert persists a new Event and returns its assigned ID.
// PRE: entity has been validated
// POST: Row is inserted, generated ID returned
func (s *SQLiteStore) Insert(ctx context.Context, entity domain.Event) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO event (name, description, event_type, event_date, start_time, end_time, image_url) VALUES (?, ?, ?, ?, ?, ?, ?)",
		entity.Name, entity.Description, entity.Type, entity.Date, entity.StartTime, entity.EndTime, entity.ImageURL,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites an existing Event.
// PRE: entity has been validated and carries the target ID
// POST: Row is updated, or storage.ErrNotFound if it was deleted concurrently
func (s *SQLiteStore) Update(ctx context.Context, entity domain.Event) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE event SET name=?, description=?, event_type=?, event_date=?, start_time=?, end_time=?, image_url=? WHERE id=?",
		entity.Name, entity.Description, entity.Type, entity.Date, entity.StartTime, entity.EndTime, entity.ImageURL, entity.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("event %d: %w", entity.ID, storage.ErrNotFound)
	}
	return nil
}

// Delete removes an Event from the database.
// PRE: id is positive
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM event WHERE id = ?", id)
	return err
}

// List retrieves Events, optionally filtered by a case-insensitive name
// substring. SQLite LIKE is case-insensitive for ASCII.
// PRE: none
// POST: Returns matching entities ordered by date and start time
func (s *SQLiteStore) List(ctx context.Context, search string) ([]domain.Event, error) {
	query := "SELECT " + eventColumns + " FROM event"
	var args []any
	if search != "" {
		query += " WHERE name LIKE '%' || ? || '%'"
		args = append(args, search)
	}
	query += " ORDER BY event_date, start_time"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Event
	for rows.Next() {
		entity, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanEvent(scan func(dest ...any) error) (domain.Event, error) {
	var entity domain.Event
	err := scan(&entity.ID, &entity.Name, &entity.Description, &entity.Type,
		&entity.Date, &entity.StartTime, &entity.EndTime, &entity.ImageURL)
	return entity, err
}
