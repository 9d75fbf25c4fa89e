package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"eventease/internal/adapters/email"
	"eventease/internal/application/listutil"
	"eventease/internal/application/orchestrators"
	"eventease/internal/application/projections"
	"eventease/internal/domain/booking"
)

// bookingSaveInput is the JSON body for booking create and update.
type bookingSaveInput struct {
	EventID  int64
	VenueID  int64
	BookedOn string
}

func bookingInputFromForm(r *http.Request) bookingSaveInput {
	eventID, _ := strconv.ParseInt(r.FormValue("EventID"), 10, 64)
	venueID, _ := strconv.ParseInt(r.FormValue("VenueID"), 10, 64)
	return bookingSaveInput{
		EventID:  eventID,
		VenueID:  venueID,
		BookedOn: r.FormValue("BookedOn"),
	}
}

func saveBookingDeps() orchestrators.SaveBookingDeps {
	return orchestrators.SaveBookingDeps{
		EventStore:   stores.EventStore,
		BookingStore: stores.BookingStore,
	}
}

// bookingFormData loads the event and venue dropdown options alongside the
// data already bound to the form.
func bookingFormData(ctx context.Context, extra map[string]any) (map[string]any, error) {
	events, err := stores.EventStore.List(ctx, "")
	if err != nil {
		return nil, err
	}
	venues, err := stores.VenueStore.List(ctx, "")
	if err != nil {
		return nil, err
	}
	data := map[string]any{"Events": events, "Venues": venues}
	for k, v := range extra {
		data[k] = v
	}
	return data, nil
}

// sendBookingNotification emails the configured address about a committed
// booking. Runs in the background; delivery failures are logged by the sender.
func sendBookingNotification(b booking.Booking, action string) {
	if emailSender == nil || emailNotifyAddress == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		emailSender.Send(ctx, email.SendRequest{
			To:      []string{emailNotifyAddress},
			From:    emailFromAddress,
			Subject: fmt.Sprintf("Booking %d %s", b.ID, action),
			HTML: fmt.Sprintf("<p>Booking <strong>%d</strong> was %s: event %d at venue %d on %s.</p>",
				b.ID, action, b.EventID, b.VenueID, b.BookedOn),
		})
	}()
}

// handleBookingList serves the booking list with event and venue details.
// The search matches event names, or a booking ID when numeric.
func handleBookingList(w http.ResponseWriter, r *http.Request) {
	fp := listutil.ParseFilterParams(r.URL.Query(), nil)

	result, err := projections.QueryGetBookingList(r.Context(), projections.GetBookingListQuery{Search: fp.Search},
		projections.GetBookingListDeps{BookingStore: stores.BookingStore})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "booking_list.html", map[string]any{
			"Bookings": result.Bookings,
			"Search":   fp.Search,
		})
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handleBookingNew serves the blank booking form with dropdown options.
func handleBookingNew(w http.ResponseWriter, r *http.Request) {
	data, err := bookingFormData(r.Context(), map[string]any{
		"Booking": booking.Booking{},
		"Action":  "/bookings",
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "booking_form.html", data)
}

// handleBookingCreate validates and creates a booking. Violations re-display
// the form for browsers and return 422 for the JSON API.
func handleBookingCreate(w http.ResponseWriter, r *http.Request) {
	var in bookingSaveInput
	if isJSONBody(r) {
		if err := strictDecode(r, &in); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		in = bookingInputFromForm(r)
	}

	created, violations, err := orchestrators.ExecuteCreateBooking(r.Context(), orchestrators.CreateBookingInput{
		EventID:  in.EventID,
		VenueID:  in.VenueID,
		BookedOn: in.BookedOn,
	}, saveBookingDeps())
	var verr *orchestrators.ValidationError
	if errors.As(err, &verr) {
		respondBookingRejection(w, r, in, 0, "/bookings", []string{verr.Error()}, http.StatusBadRequest)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	if len(violations) > 0 {
		respondBookingViolations(w, r, in, 0, "/bookings", violations)
		return
	}

	sendBookingNotification(created, "created")

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/bookings", http.StatusSeeOther)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// respondBookingViolations reports check failures: form redisplay for
// browsers, 422 with machine-readable reasons for the JSON API.
func respondBookingViolations(w http.ResponseWriter, r *http.Request, in bookingSaveInput, id int64, action string, violations []booking.Violation) {
	if isHTMLRequest(r) {
		respondBookingRejection(w, r, in, id, action, violationMessages(violations), 0)
		return
	}
	respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"violations": violations,
		"messages":   violationMessages(violations),
	})
}

// respondBookingRejection re-renders the booking form with the given error
// messages, or emits them as JSON with the given status.
func respondBookingRejection(w http.ResponseWriter, r *http.Request, in bookingSaveInput, id int64, action string, msgs []string, jsonStatus int) {
	if isHTMLRequest(r) {
		data, err := bookingFormData(r.Context(), map[string]any{
			"Booking": booking.Booking{ID: id, EventID: in.EventID, VenueID: in.VenueID, BookedOn: in.BookedOn},
			"Action":  action,
			"Errors":  msgs,
		})
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "booking_form.html", data)
		return
	}
	respondJSON(w, jsonStatus, map[string]any{"errors": msgs})
}

// handleBookingDetail serves a single booking with its event and venue.
func handleBookingDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	detail, err := stores.BookingStore.GetDetail(r.Context(), id)
	if err != nil {
		storeError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "booking_detail.html", map[string]any{"Detail": detail})
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// handleBookingEditForm serves the pre-filled booking edit form.
func handleBookingEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	b, err := stores.BookingStore.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, err)
		return
	}

	data, err := bookingFormData(r.Context(), map[string]any{
		"Booking": b,
		"Action":  "/bookings/" + r.PathValue("id"),
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "booking_form.html", data)
}

// handleBookingUpdate revalidates and updates a booking. The booking's own
// row never counts against it.
func handleBookingUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	var in bookingSaveInput
	if isJSONBody(r) {
		if err := strictDecode(r, &in); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		in = bookingInputFromForm(r)
	}

	action := "/bookings/" + r.PathValue("id")
	updated, violations, err := orchestrators.ExecuteEditBooking(r.Context(), orchestrators.EditBookingInput{
		BookingID: id,
		EventID:   in.EventID,
		VenueID:   in.VenueID,
		BookedOn:  in.BookedOn,
	}, saveBookingDeps())
	var verr *orchestrators.ValidationError
	if errors.As(err, &verr) {
		respondBookingRejection(w, r, in, id, action, []string{verr.Error()}, http.StatusBadRequest)
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}
	if len(violations) > 0 {
		respondBookingViolations(w, r, in, id, action, violations)
		return
	}

	sendBookingNotification(updated, "updated")

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/bookings", http.StatusSeeOther)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// handleBookingDelete removes a booking.
func handleBookingDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	err = orchestrators.ExecuteDeleteBooking(r.Context(), id, orchestrators.DeleteBookingDeps{
		BookingStore: stores.BookingStore,
	})
	if err != nil {
		storeError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/bookings", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleBookingSearch runs the advanced search across bookings. Criteria:
// free text (event type, or booking ID when numeric), venue, and an event
// date range that applies only when both bounds are given.
func handleBookingSearch(w http.ResponseWriter, r *http.Request) {
	fp := listutil.ParseFilterParams(r.URL.Query(), []string{"venue_id", "from", "to"})
	from, to := fp.DateRange("from", "to")

	query := projections.SearchBookingsQuery{
		Text:     fp.Search,
		VenueID:  fp.IntFilter("venue_id"),
		DateFrom: from,
		DateTo:   to,
	}
	result, err := projections.QuerySearchBookings(r.Context(), query,
		projections.SearchBookingsDeps{BookingStore: stores.BookingStore})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		venues, err := stores.VenueStore.List(r.Context(), "")
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "booking_search.html", map[string]any{
			"Bookings": result.Bookings,
			"Venues":   venues,
			"Search":   fp.Search,
			"VenueID":  query.VenueID,
			"DateFrom": from,
			"DateTo":   to,
		})
		return
	}
	respondJSON(w, http.StatusOK, result)
}
