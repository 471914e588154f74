package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gatherly/api/internal/middleware"
	"github.com/gatherly/api/internal/model"
	"github.com/gatherly/api/internal/service"
)

// EventHandler handles event and invoice endpoints
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// CreateEvent handles POST /v1/events - admin only
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	event, err := h.eventService.CreateEvent(r.Context(), caller(r), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, event, map[string]string{
		"self": "/v1/events/" + event.ID,
	})
}

// ListEvents handles GET /v1/events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.ListEvents(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, events, len(events), map[string]string{
		"self": "/v1/events",
	})
}

// GetEvent handles GET /v1/events/{eventId}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")

	event, err := h.eventService.GetEvent(r.Context(), eventID)
	if err != nil {
		h.handleEventError(w, err, eventID)
		return
	}

	WriteData(w, http.StatusOK, event, map[string]string{
		"self": "/v1/events/" + eventID,
	})
}

// UpdateEvent handles PATCH /v1/events/{eventId} - admin only
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")

	var req model.UpdateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	event, err := h.eventService.UpdateEvent(r.Context(), caller(r), eventID, &req)
	if err != nil {
		h.handleEventError(w, err, eventID)
		return
	}

	WriteData(w, http.StatusOK, event, map[string]string{
		"self": "/v1/events/" + eventID,
	})
}

// DeleteEvent handles DELETE /v1/events/{eventId} - admin only.
// Attending and invoice records for the event are removed with it.
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")

	title, err := h.eventService.DeleteEvent(r.Context(), caller(r), eventID)
	if err != nil {
		h.handleEventError(w, err, eventID)
		return
	}

	WriteMessage(w, http.StatusOK, fmt.Sprintf("Event '%s' deleted", title))
}

// ListEventInvoices handles GET /v1/events/{eventId}/invoices
func (h *EventHandler) ListEventInvoices(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")

	invoices, err := h.eventService.ListEventInvoices(r.Context(), eventID)
	if err != nil {
		h.handleEventError(w, err, eventID)
		return
	}

	WriteCollection(w, http.StatusOK, invoices, len(invoices), map[string]string{
		"event": "/v1/events/" + eventID,
	})
}

// ListMyInvoices handles GET /v1/auth/me/invoices
func (h *EventHandler) ListMyInvoices(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	invoices, err := h.eventService.ListUserInvoices(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, invoices, len(invoices), map[string]string{
		"self": "/v1/auth/me/invoices",
	})
}

// GetInvoice handles GET /v1/invoices/{invoiceId}
func (h *EventHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceID := r.PathValue("invoiceId")

	invoice, err := h.eventService.GetInvoice(r.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			WriteError(w, notFound("Invoice", invoiceID))
			return
		}
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, invoice, map[string]string{
		"self": "/v1/invoices/" + invoiceID,
	})
}

func (h *EventHandler) handleEventError(w http.ResponseWriter, err error, eventID string) {
	if errors.Is(err, service.ErrEventNotFound) {
		WriteError(w, notFound("Event", eventID))
		return
	}
	WriteError(w, MapServiceError(err))
}
