package handler

import (
	"errors"
	"net/http"

	"github.com/gatherly/api/internal/middleware"
	"github.com/gatherly/api/internal/model"
	"github.com/gatherly/api/internal/service"
)

// AttendingHandler handles attending (ticket reservation) endpoints
type AttendingHandler struct {
	attendingService *service.AttendingService
}

// NewAttendingHandler creates a new attending handler
func NewAttendingHandler(attendingService *service.AttendingService) *AttendingHandler {
	return &AttendingHandler{
		attendingService: attendingService,
	}
}

// CreateAttending handles POST /v1/events/{eventId}/attending.
// The attendee is always the authenticated caller, and the invoice is
// issued in the same transaction as the attending record.
func (h *AttendingHandler) CreateAttending(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	eventID := r.PathValue("eventId")

	var req model.CreateAttendingRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	attending, err := h.attendingService.Create(r.Context(), userID, eventID, &req)
	if err != nil {
		h.handleAttendingError(w, err, eventID, "")
		return
	}

	WriteData(w, http.StatusCreated, attending, map[string]string{
		"event": "/v1/events/" + eventID,
	})
}

// ListAttending handles GET /v1/events/{eventId}/attending
func (h *AttendingHandler) ListAttending(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")

	attendings, err := h.attendingService.List(r.Context(), eventID)
	if err != nil {
		h.handleAttendingError(w, err, eventID, "")
		return
	}

	WriteCollection(w, http.StatusOK, attendings, len(attendings), map[string]string{
		"event": "/v1/events/" + eventID,
	})
}

// GetAttending handles GET /v1/events/{eventId}/attending/{attendingId}
func (h *AttendingHandler) GetAttending(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	attendingID := r.PathValue("attendingId")

	attending, err := h.attendingService.Get(r.Context(), eventID, attendingID)
	if err != nil {
		h.handleAttendingError(w, err, eventID, attendingID)
		return
	}

	WriteData(w, http.StatusOK, attending, map[string]string{
		"event": "/v1/events/" + eventID,
	})
}

// UpdateAttending handles PATCH /v1/events/{eventId}/attending/{attendingId}
func (h *AttendingHandler) UpdateAttending(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	attendingID := r.PathValue("attendingId")

	var req model.UpdateAttendingRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	attending, err := h.attendingService.Update(r.Context(), eventID, attendingID, &req)
	if err != nil {
		h.handleAttendingError(w, err, eventID, attendingID)
		return
	}

	WriteData(w, http.StatusOK, attending, map[string]string{
		"event": "/v1/events/" + eventID,
	})
}

// DeleteAttending handles DELETE /v1/events/{eventId}/attending/{attendingId}
func (h *AttendingHandler) DeleteAttending(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	attendingID := r.PathValue("attendingId")

	confirmation, err := h.attendingService.Delete(r.Context(), eventID, attendingID)
	if err != nil {
		h.handleAttendingError(w, err, eventID, attendingID)
		return
	}

	WriteMessage(w, http.StatusOK, confirmation)
}

func (h *AttendingHandler) handleAttendingError(w http.ResponseWriter, err error, eventID, attendingID string) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		WriteError(w, notFound("Event", eventID))
	case errors.Is(err, service.ErrAttendingNotFound):
		WriteError(w, notFound("Attending", attendingID))
	default:
		WriteError(w, MapServiceError(err))
	}
}
