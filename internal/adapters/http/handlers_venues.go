package web

import (
	"errors"
	"net/http"
	"strconv"

	"eventease/internal/application/listutil"
	"eventease/internal/application/orchestrators"
	"eventease/internal/application/projections"
	"eventease/internal/domain/venue"
)

// venueSaveInput is the JSON body for venue create and update.
type venueSaveInput struct {
	Name     string
	Location string
	Capacity int
}

func venueInputFromForm(r *http.Request) venueSaveInput {
	capacity, _ := strconv.Atoi(r.FormValue("Capacity"))
	return venueSaveInput{
		Name:     r.FormValue("Name"),
		Location: r.FormValue("Location"),
		Capacity: capacity,
	}
}

func saveVenueDeps() orchestrators.SaveVenueDeps {
	return orchestrators.SaveVenueDeps{
		VenueStore:   stores.VenueStore,
		BlobStore:    blobStore,
		GenerateName: generateBlobName,
	}
}

// handleVenueList serves the venue list, filtered by a name search.
func handleVenueList(w http.ResponseWriter, r *http.Request) {
	fp := listutil.ParseFilterParams(r.URL.Query(), nil)

	result, err := projections.QueryGetVenueList(r.Context(), projections.GetVenueListQuery{Search: fp.Search},
		projections.GetVenueListDeps{VenueStore: stores.VenueStore})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "venue_list.html", map[string]any{
			"Venues": result.Venues,
			"Search": fp.Search,
		})
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handleVenueNew serves the blank venue form.
func handleVenueNew(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "venue_form.html", map[string]any{
		"Venue":  venue.Venue{},
		"Action": "/venues",
	})
}

// handleVenueCreate creates a venue from a JSON body or a (multipart) form.
func handleVenueCreate(w http.ResponseWriter, r *http.Request) {
	var in venueSaveInput
	input := orchestrators.SaveVenueInput{}

	if isJSONBody(r) {
		if err := strictDecode(r, &in); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	} else {
		if err := parseSaveForm(r); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		in = venueInputFromForm(r)
		image, closer, err := imageFromForm(r)
		if err != nil {
			http.Error(w, "Invalid image upload", http.StatusBadRequest)
			return
		}
		if closer != nil {
			defer closer.Close()
		}
		input.Image = image
	}

	input.Name = in.Name
	input.Location = in.Location
	input.Capacity = in.Capacity

	created, err := orchestrators.ExecuteCreateVenue(r.Context(), input, saveVenueDeps())
	var verr *orchestrators.ValidationError
	if errors.As(err, &verr) {
		if isHTMLRequest(r) {
			renderTemplate(w, r, "venue_form.html", map[string]any{
				"Venue":  venue.Venue{Name: in.Name, Location: in.Location, Capacity: in.Capacity},
				"Action": "/venues",
				"Errors": []string{verr.Error()},
			})
			return
		}
		respondJSON(w, http.StatusBadRequest, map[string]any{"error": verr.Error()})
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/venues", http.StatusSeeOther)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// handleVenueDetail serves a single venue.
func handleVenueDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid venue id", http.StatusBadRequest)
		return
	}

	v, err := stores.VenueStore.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "venue_detail.html", map[string]any{"Venue": v})
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// handleVenueEditForm serves the pre-filled edit form.
func handleVenueEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid venue id", http.StatusBadRequest)
		return
	}

	v, err := stores.VenueStore.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, err)
		return
	}

	renderTemplate(w, r, "venue_form.html", map[string]any{
		"Venue":  v,
		"Action": "/venues/" + r.PathValue("id"),
	})
}

// handleVenueUpdate updates a venue from a JSON body or a (multipart) form.
func handleVenueUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid venue id", http.StatusBadRequest)
		return
	}

	var in venueSaveInput
	input := orchestrators.SaveVenueInput{VenueID: id}

	if isJSONBody(r) {
		if err := strictDecode(r, &in); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	} else {
		if err := parseSaveForm(r); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		in = venueInputFromForm(r)
		image, closer, err := imageFromForm(r)
		if err != nil {
			http.Error(w, "Invalid image upload", http.StatusBadRequest)
			return
		}
		if closer != nil {
			defer closer.Close()
		}
		input.Image = image
	}

	input.Name = in.Name
	input.Location = in.Location
	input.Capacity = in.Capacity

	updated, err := orchestrators.ExecuteEditVenue(r.Context(), input, saveVenueDeps())
	var verr *orchestrators.ValidationError
	if errors.As(err, &verr) {
		if isHTMLRequest(r) {
			renderTemplate(w, r, "venue_form.html", map[string]any{
				"Venue":  venue.Venue{ID: id, Name: in.Name, Location: in.Location, Capacity: in.Capacity},
				"Action": "/venues/" + r.PathValue("id"),
				"Errors": []string{verr.Error()},
			})
			return
		}
		respondJSON(w, http.StatusBadRequest, map[string]any{"error": verr.Error()})
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/venues", http.StatusSeeOther)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// handleVenueDelete deletes a venue unless bookings still reference it.
func handleVenueDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid venue id", http.StatusBadRequest)
		return
	}

	err = orchestrators.ExecuteDeleteVenue(r.Context(), id, orchestrators.DeleteVenueDeps{
		VenueStore:   stores.VenueStore,
		BookingStore: stores.BookingStore,
		BlobStore:    blobStore,
	})
	if errors.Is(err, orchestrators.ErrDeleteConflict) {
		msg := "Cannot delete this venue; there are existing records in booking."
		if isHTMLRequest(r) {
			http.Error(w, msg, http.StatusConflict)
			return
		}
		respondJSON(w, http.StatusConflict, map[string]any{"error": msg})
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/venues", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
