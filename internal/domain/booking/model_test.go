package booking

import (
	"errors"
	"testing"
)

// TestValidate_Valid tests that a populated booking passes validation.
func TestValidate_Valid(t *testing.T) {
	b := Booking{EventID: 5, VenueID: 2, BookedOn: "2025-01-10"}
	if err := b.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestValidate_NoDate tests that the booking date is optional.
func TestValidate_NoDate(t *testing.T) {
	b := Booking{EventID: 5, VenueID: 2}
	if err := b.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestValidate_MissingEvent tests that a zero event reference is rejected.
func TestValidate_MissingEvent(t *testing.T) {
	b := Booking{VenueID: 2}
	if err := b.Validate(); !errors.Is(err, ErrMissingEvent) {
		t.Errorf("expected ErrMissingEvent, got %v", err)
	}
}

// TestValidate_MissingVenue tests that a zero venue reference is rejected.
func TestValidate_MissingVenue(t *testing.T) {
	b := Booking{EventID: 5}
	if err := b.Validate(); !errors.Is(err, ErrMissingVenue) {
		t.Errorf("expected ErrMissingVenue, got %v", err)
	}
}

// TestValidate_BadDate tests that a malformed booking date is rejected.
func TestValidate_BadDate(t *testing.T) {
	b := Booking{EventID: 5, VenueID: 2, BookedOn: "Jan 10"}
	if err := b.Validate(); !errors.Is(err, ErrInvalidBookedOn) {
		t.Errorf("expected ErrInvalidBookedOn, got %v", err)
	}
}

// TestTimesOverlap tests half-open interval overlap semantics.
func TestTimesOverlap(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"contained", "10:00", "11:00", "10:15", "10:45", true},
		{"partial", "10:00", "11:00", "10:30", "11:30", true},
		{"identical", "10:00", "11:00", "10:00", "11:00", true},
		{"touching end to start", "10:00", "11:00", "11:00", "12:00", false},
		{"touching start to end", "11:00", "12:00", "10:00", "11:00", false},
		{"disjoint", "10:00", "11:00", "13:00", "14:00", false},
	}
	for _, tc := range cases {
		if got := TimesOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Errorf("%s: TimesOverlap(%s,%s,%s,%s) = %v, want %v",
				tc.name, tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
		}
	}
}

// TestViolationMessage tests that each violation maps to its user-facing text.
func TestViolationMessage(t *testing.T) {
	cases := map[Violation]string{
		ViolationEventNotFound:    "Selected event not found.",
		ViolationDuplicateBooking: "This event has already been booked at the selected venue.",
		ViolationVenueTimeOverlap: "The venue is already booked for another event that overlaps in time.",
	}
	for v, want := range cases {
		if got := v.Message(); got != want {
			t.Errorf("%s: expected %q, got %q", v, want, got)
		}
	}
	if got := Violation("unknown_reason").Message(); got != "unknown_reason" {
		t.Errorf("unknown violation should echo its name, got %q", got)
	}
}
