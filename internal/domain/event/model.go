package event

import (
	"errors"
	"strings"
	"time"
)

// Field length limits enforced on create and edit.
const (
	MaxNameLen        = 30
	MaxDescriptionLen = 1000
	MaxTypeLen        = 100
	MaxImageURLLen    = 500
)

// Domain errors
var (
	ErrEmptyName          = errors.New("event name cannot be empty")
	ErrNameTooLong        = errors.New("event name cannot exceed 30 characters")
	ErrEmptyDescription   = errors.New("description cannot be empty")
	ErrDescriptionTooLong = errors.New("description cannot exceed 1000 characters")
	ErrEmptyType          = errors.New("event type cannot be empty")
	ErrTypeTooLong        = errors.New("event type cannot exceed 100 characters")
	ErrInvalidDate        = errors.New("event date must be in YYYY-MM-DD format")
	ErrInvalidTime        = errors.New("start and end times must be in HH:MM format")
	ErrTimeIncrement      = errors.New("start and end times must be in 15-minute intervals")
	ErrImageURLTooLong    = errors.New("image URL cannot exceed 500 characters")
)

// Event is a scheduled happening that can be booked into venues.
// StartTime and EndTime are times of day in zero-padded HH:MM form, which
// compares correctly as strings.
type Event struct {
	ID          int64
	Name        string
	Description string
	Type        string
	Date        string // YYYY-MM-DD
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	ImageURL    string
}

// Validate checks if the Event has valid data.
// PRE: Event struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Event) Validate() error {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLen {
		return ErrNameTooLong
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if len(e.Description) > MaxDescriptionLen {
		return ErrDescriptionTooLong
	}
	if strings.TrimSpace(e.Type) == "" {
		return ErrEmptyType
	}
	if len(e.Type) > MaxTypeLen {
		return ErrTypeTooLong
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return ErrInvalidDate
	}
	for _, t := range []string{e.StartTime, e.EndTime} {
		parsed, err := time.Parse("15:04", t)
		if err != nil {
			return ErrInvalidTime
		}
		if parsed.Minute()%15 != 0 {
			return ErrTimeIncrement
		}
	}
	if len(e.ImageURL) > MaxImageURLLen {
		return ErrImageURLTooLong
	}
	return nil
}

// DurationHours returns the event length in hours.
// PRE: StartTime and EndTime are in HH:MM format
// POST: Returns duration as float64 hours, or error if times can't be parsed
func (e *Event) DurationHours() (float64, error) {
	start, err := time.Parse("15:04", e.StartTime)
	if err != nil {
		return 0, ErrInvalidTime
	}
	end, err := time.Parse("15:04", e.EndTime)
	if err != nil {
		return 0, ErrInvalidTime
	}
	dur := end.Sub(start)
	if dur <= 0 {
		dur += 24 * time.Hour
	}
	return dur.Hours(), nil
}
