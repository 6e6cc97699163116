package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cobia-app/cobia-api/internal/api/shared"
	"github.com/cobia-app/cobia-api/internal/domain"
	"github.com/cobia-app/cobia-api/internal/query"
	"github.com/cobia-app/cobia-api/internal/store"
)

// eventsResponse is the body for a successful GET /api/events/.
type eventsResponse struct {
	Ack   bool             `json:"ack"`
	Type  string           `json:"type"`
	Count int              `json:"count"`
	Data  []map[string]any `json:"data"`
}

// createEventResponse is the body for a successful POST /api/events/.
type createEventResponse struct {
	Ack   bool   `json:"ack"`
	Count int    `json:"count"`
	URI   string `json:"uri"`
}

// EventHandler handles event HTTP requests.
type EventHandler struct {
	events store.EventStore
	logger *slog.Logger
}

// NewEventHandler creates a new EventHandler.
// If logger is nil, a default logger will be used.
func NewEventHandler(events store.EventStore, logger *slog.Logger) *EventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventHandler{
		events: events,
		logger: logger.With(slog.String("component", "event_handler")),
	}
}

// ListEvents handles GET /api/events/ requests. The stages run in strict
// order and a failed stage short-circuits to the error path:
//
//  1. safety check on the raw query parameters
//  2. allow-listed filter build
//  3. fixed sort criteria, paging and projection
//  4. fetch
//  5. respond
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	if err := query.CheckSafety(params); err != nil {
		HandleAPIError(w, r, err, "Unsafe query.")
		return
	}

	spec := query.EventSpec(query.Build(params))

	docs, err := h.events.Find(r.Context(), spec)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if len(docs) == 0 {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, eventsResponse{
		Ack:   true,
		Type:  "events",
		Count: len(docs),
		Data:  docs,
	})
}

// CreateEvent handles POST /api/events/ requests. The body must be a
// non-empty JSON object with a parseable dateTime; the stored document is
// the body plus the parsed timestamp and the request's Origin header.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := shared.DecodeJSON(r, &body); err != nil {
		HandleAPIError(w, r,
			domain.NewValidationError("body", "is not a valid JSON object", domain.ErrEmptyBody), "")
		return
	}

	event, err := domain.NewEvent(body, r.Header.Get("Origin"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.events.Insert(r.Context(), event)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// The store accepted the write but reports nothing inserted. Not
	// expected under correct operation.
	if !result.Created {
		logFromRequest(r, h.logger).Error("event insert acknowledged but nothing created")
		shared.RespondWithStatus(w, http.StatusInternalServerError)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, createEventResponse{
		Ack:   true,
		Count: result.InsertedCount,
		URI:   fmt.Sprintf("/events/%s", result.ID),
	})
}
