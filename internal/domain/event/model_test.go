package event

import (
	"errors"
	"strings"
	"testing"
)

func validEvent() Event {
	return Event{
		Name:        "Jazz Evening",
		Description: "An evening of live jazz with three local bands.",
		Type:        "Concert",
		Date:        "2025-01-10",
		StartTime:   "19:00",
		EndTime:     "22:30",
	}
}

// TestValidate_Valid tests that a fully populated event passes validation.
func TestValidate_Valid(t *testing.T) {
	e := validEvent()
	if err := e.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestValidate_EmptyName tests that a blank name is rejected.
func TestValidate_EmptyName(t *testing.T) {
	e := validEvent()
	e.Name = "   "
	if err := e.Validate(); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

// TestValidate_NameTooLong tests the 30-character name limit.
func TestValidate_NameTooLong(t *testing.T) {
	e := validEvent()
	e.Name = strings.Repeat("x", 31)
	if err := e.Validate(); !errors.Is(err, ErrNameTooLong) {
		t.Errorf("expected ErrNameTooLong, got %v", err)
	}
}

// TestValidate_DescriptionTooLong tests the 1000-character description limit.
func TestValidate_DescriptionTooLong(t *testing.T) {
	e := validEvent()
	e.Description = strings.Repeat("x", 1001)
	if err := e.Validate(); !errors.Is(err, ErrDescriptionTooLong) {
		t.Errorf("expected ErrDescriptionTooLong, got %v", err)
	}
}

// TestValidate_EmptyType tests that a blank event type is rejected.
func TestValidate_EmptyType(t *testing.T) {
	e := validEvent()
	e.Type = ""
	if err := e.Validate(); !errors.Is(err, ErrEmptyType) {
		t.Errorf("expected ErrEmptyType, got %v", err)
	}
}

// TestValidate_BadDate tests that a malformed date is rejected.
func TestValidate_BadDate(t *testing.T) {
	e := validEvent()
	e.Date = "10/01/2025"
	if err := e.Validate(); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

// TestValidate_BadTime tests that a malformed start time is rejected.
func TestValidate_BadTime(t *testing.T) {
	e := validEvent()
	e.StartTime = "7pm"
	if err := e.Validate(); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime, got %v", err)
	}
}

// TestValidate_TimeIncrement tests that times must sit on 15-minute boundaries.
func TestValidate_TimeIncrement(t *testing.T) {
	cases := []struct {
		start, end string
		ok         bool
	}{
		{"19:00", "22:30", true},
		{"19:15", "22:45", true},
		{"19:10", "22:30", false},
		{"19:00", "22:31", false},
	}
	for _, tc := range cases {
		e := validEvent()
		e.StartTime = tc.start
		e.EndTime = tc.end
		err := e.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s-%s: unexpected error: %v", tc.start, tc.end, err)
		}
		if !tc.ok && !errors.Is(err, ErrTimeIncrement) {
			t.Errorf("%s-%s: expected ErrTimeIncrement, got %v", tc.start, tc.end, err)
		}
	}
}

// TestValidate_ImageURLTooLong tests the 500-character image URL limit.
func TestValidate_ImageURLTooLong(t *testing.T) {
	e := validEvent()
	e.ImageURL = "https://example.com/" + strings.Repeat("x", 500)
	if err := e.Validate(); !errors.Is(err, ErrImageURLTooLong) {
		t.Errorf("expected ErrImageURLTooLong, got %v", err)
	}
}

// TestDurationHours tests duration arithmetic including overnight events.
func TestDurationHours(t *testing.T) {
	e := validEvent()
	got, err := e.DurationHours()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3.5 {
		t.Errorf("expected 3.5 hours, got %v", got)
	}

	e.StartTime = "23:00"
	e.EndTime = "01:00"
	got, err = e.DurationHours()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2.0 {
		t.Errorf("expected 2.0 hours for overnight event, got %v", got)
	}
}
