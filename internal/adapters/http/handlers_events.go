package web

import (
	"errors"
	"net/http"

	"eventease/internal/application/listutil"
	"eventease/internal/application/orchestrators"
	"eventease/internal/application/projections"
	"eventease/internal/domain/event"
)

// eventSaveInput is the JSON body for event create and update.
type eventSaveInput struct {
	Name        string
	Description string
	Type        string
	Date        string
	StartTime   string
	EndTime     string
}

// eventInputFromForm reads the posted form fields.
func eventInputFromForm(r *http.Request) eventSaveInput {
	return eventSaveInput{
		Name:        r.FormValue("Name"),
		Description: r.FormValue("Description"),
		Type:        r.FormValue("Type"),
		Date:        r.FormValue("Date"),
		StartTime:   r.FormValue("StartTime"),
		EndTime:     r.FormValue("EndTime"),
	}
}

func saveEventDeps() orchestrators.SaveEventDeps {
	return orchestrators.SaveEventDeps{
		EventStore:   stores.EventStore,
		BlobStore:    blobStore,
		GenerateName: generateBlobName,
	}
}

// handleEventList serves the event list, filtered by a name search.
func handleEventList(w http.ResponseWriter, r *http.Request) {
	fp := listutil.ParseFilterParams(r.URL.Query(), nil)

	result, err := projections.QueryGetEventList(r.Context(), projections.GetEventListQuery{Search: fp.Search},
		projections.GetEventListDeps{EventStore: stores.EventStore})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "event_list.html", map[string]any{
			"Events": result.Events,
			"Search": fp.Search,
		})
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handleEventNew serves the blank event form.
func handleEventNew(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "event_form.html", map[string]any{
		"Event":  event.Event{},
		"Action": "/events",
	})
}

// handleEventCreate creates an event from a JSON body or a (multipart) form.
func handleEventCreate(w http.ResponseWriter, r *http.Request) {
	var in eventSaveInput
	input := orchestrators.SaveEventInput{}

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
		in = eventInputFromForm(r)
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
	input.Description = in.Description
	input.Type = in.Type
	input.Date = in.Date
	input.StartTime = in.StartTime
	input.EndTime = in.EndTime

	created, err := orchestrators.ExecuteCreateEvent(r.Context(), input, saveEventDeps())
	var verr *orchestrators.ValidationError
	if errors.As(err, &verr) {
		if isHTMLRequest(r) {
			renderTemplate(w, r, "event_form.html", map[string]any{
				"Event":  event.Event{Name: in.Name, Description: in.Description, Type: in.Type, Date: in.Date, StartTime: in.StartTime, EndTime: in.EndTime},
				"Action": "/events",
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
		http.Redirect(w, r, "/events", http.StatusSeeOther)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// handleEventDetail serves a single event.
func handleEventDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid event id", http.StatusBadRequest)
		return
	}

	e, err := stores.EventStore.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "event_detail.html", map[string]any{"Event": e})
		return
	}
	respondJSON(w, http.StatusOK, e)
}

// handleEventEditForm serves the pre-filled edit form.
func handleEventEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid event id", http.StatusBadRequest)
		return
	}

	e, err := stores.EventStore.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, err)
		return
	}

	renderTemplate(w, r, "event_form.html", map[string]any{
		"Event":  e,
		"Action": "/events/" + r.PathValue("id"),
	})
}

// handleEventUpdate updates an event from a JSON body or a (multipart) form.
func handleEventUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid event id", http.StatusBadRequest)
		return
	}

	var in eventSaveInput
	input := orchestrators.SaveEventInput{EventID: id}

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
		in = eventInputFromForm(r)
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
	input.Description = in.Description
	input.Type = in.Type
	input.Date = in.Date
	input.StartTime = in.StartTime
	input.EndTime = in.EndTime

	updated, err := orchestrators.ExecuteEditEvent(r.Context(), input, saveEventDeps())
	var verr *orchestrators.ValidationError
	if errors.As(err, &verr) {
		if isHTMLRequest(r) {
			renderTemplate(w, r, "event_form.html", map[string]any{
				"Event":  event.Event{ID: id, Name: in.Name, Description: in.Description, Type: in.Type, Date: in.Date, StartTime: in.StartTime, EndTime: in.EndTime},
				"Action": "/events/" + r.PathValue("id"),
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
		http.Redirect(w, r, "/events", http.StatusSeeOther)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// handleEventDelete deletes an event unless bookings still reference it.
func handleEventDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid event id", http.StatusBadRequest)
		return
	}

	err = orchestrators.ExecuteDeleteEvent(r.Context(), id, orchestrators.DeleteEventDeps{
		EventStore:   stores.EventStore,
		BookingStore: stores.BookingStore,
		BlobStore:    blobStore,
	})
	if errors.Is(err, orchestrators.ErrDeleteConflict) {
		msg := "Cannot delete this event; there are existing records in booking."
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
		http.Redirect(w, r, "/events", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
