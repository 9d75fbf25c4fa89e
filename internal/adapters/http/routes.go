package web

import "net/http"

// registerRoutes wires every application route onto the mux. Routes use
// method-qualified patterns; path IDs are read with r.PathValue.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handleHome)
	mux.HandleFunc("GET /healthz", handleHealthz)

	// Events
	mux.HandleFunc("GET /events", handleEventList)
	mux.HandleFunc("POST /events", handleEventCreate)
	mux.HandleFunc("GET /events/new", handleEventNew)
	mux.HandleFunc("GET /events/{id}", handleEventDetail)
	mux.HandleFunc("GET /events/{id}/edit", handleEventEditForm)
	mux.HandleFunc("POST /events/{id}", handleEventUpdate)
	mux.HandleFunc("POST /events/{id}/delete", handleEventDelete)

	// Venues
	mux.HandleFunc("GET /venues", handleVenueList)
	mux.HandleFunc("POST /venues", handleVenueCreate)
	mux.HandleFunc("GET /venues/new", handleVenueNew)
	mux.HandleFunc("GET /venues/{id}", handleVenueDetail)
	mux.HandleFunc("GET /venues/{id}/edit", handleVenueEditForm)
	mux.HandleFunc("POST /venues/{id}", handleVenueUpdate)
	mux.HandleFunc("POST /venues/{id}/delete", handleVenueDelete)

	// Bookings
	mux.HandleFunc("GET /bookings", handleBookingList)
	mux.HandleFunc("POST /bookings", handleBookingCreate)
	mux.HandleFunc("GET /bookings/new", handleBookingNew)
	mux.HandleFunc("GET /bookings/search", handleBookingSearch)
	mux.HandleFunc("GET /bookings/{id}", handleBookingDetail)
	mux.HandleFunc("GET /bookings/{id}/edit", handleBookingEditForm)
	mux.HandleFunc("POST /bookings/{id}", handleBookingUpdate)
	mux.HandleFunc("POST /bookings/{id}/delete", handleBookingDelete)
}
