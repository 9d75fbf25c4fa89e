package venue

import (
	"errors"
	"strings"
)

// Field length limits enforced on create and edit.
const (
	MaxNameLen     = 30
	MaxLocationLen = 40
	MaxImageURLLen = 500
)

// Domain errors
var (
	ErrEmptyName        = errors.New("venue name cannot be empty")
	ErrNameTooLong      = errors.New("venue name cannot exceed 30 characters")
	ErrEmptyLocation    = errors.New("location cannot be empty")
	ErrLocationTooLong  = errors.New("location cannot exceed 40 characters")
	ErrNegativeCapacity = errors.New("capacity cannot be negative")
	ErrImageURLTooLong  = errors.New("image URL cannot exceed 500 characters")
)

// Venue is a location that hosts booked events.
type Venue struct {
	ID       int64
	Name     string
	Location string
	Capacity int
	ImageURL string
}

// Validate checks if the Venue has valid data.
// PRE: Venue struct is populated
// POST: Returns nil if valid, error otherwise
func (v *Venue) Validate() error {
	name := strings.TrimSpace(v.Name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLen {
		return ErrNameTooLong
	}
	if strings.TrimSpace(v.Location) == "" {
		return ErrEmptyLocation
	}
	if len(v.Location) > MaxLocationLen {
		return ErrLocationTooLong
	}
	if v.Capacity < 0 {
		return ErrNegativeCapacity
	}
	if len(v.ImageURL) > MaxImageURLLen {
		return ErrImageURLTooLong
	}
	return nil
}
