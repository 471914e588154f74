package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/api/internal/model"
)

func TestCreateAttending_IssuesInvoice(t *testing.T) {
	t.Parallel()

	_, handler, userRepo, eventRepo := newEventFixture(t)
	admin := seedUser(t, userRepo, "Admin", "admin@gatherly.app", true)
	tom := seedUser(t, userRepo, "Tom", "tom@email.com", false)

	event := &model.Event{Title: "Summer Picnic", Date: "15/08/2026", TicketPrice: 15.0, UserID: admin.ID}
	require.NoError(t, eventRepo.Create(t.Context(), event))

	tickets := 3
	req := makeJSONRequest(t, http.MethodPost, "/v1/events/"+event.ID+"/attending", model.CreateAttendingRequest{
		SeatNumber:   "A1",
		TotalTickets: &tickets,
	})
	req.SetPathValue("eventId", event.ID)
	rr := httptest.NewRecorder()

	handler.CreateAttending(rr, authenticate(req, tom))

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp DataResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "A1", data["seat_number"])
	assert.Equal(t, float64(3), data["total_tickets"])

	// Attendee is always the caller
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "tom@email.com", user["email"])
}

func TestCreateAttending_MissingEvent_ReturnsNotFoundNamingID(t *testing.T) {
	t.Parallel()

	_, handler, userRepo, _ := newEventFixture(t)
	tom := seedUser(t, userRepo, "Tom", "tom@email.com", false)

	req := makeJSONRequest(t, http.MethodPost, "/v1/events/event:ghost/attending", model.CreateAttendingRequest{
		SeatNumber: "A1",
	})
	req.SetPathValue("eventId", "event:ghost")
	rr := httptest.NewRecorder()

	handler.CreateAttending(rr, authenticate(req, tom))

	require.Equal(t, http.StatusNotFound, rr.Code)

	problem := decodeProblem(t, rr.Body)
	assert.Equal(t, "Event with id 'event:ghost' not found", problem.Detail)
}

func TestCreateAttending_ZeroTickets_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	_, handler, userRepo, eventRepo := newEventFixture(t)
	admin := seedUser(t, userRepo, "Admin", "admin@gatherly.app", true)
	tom := seedUser(t, userRepo, "Tom", "tom@email.com", false)

	event := &model.Event{Title: "Summer Picnic", Date: "15/08/2026", UserID: admin.ID}
	require.NoError(t, eventRepo.Create(t.Context(), event))

	zero := 0
	req := makeJSONRequest(t, http.MethodPost, "/v1/events/"+event.ID+"/attending", model.CreateAttendingRequest{
		SeatNumber:   "A1",
		TotalTickets: &zero,
	})
	req.SetPathValue("eventId", event.ID)
	rr := httptest.NewRecorder()

	handler.CreateAttending(rr, authenticate(req, tom))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestUpdateAttending_Missing_ReturnsNotFoundNamingID(t *testing.T) {
	t.Parallel()

	_, handler, userRepo, eventRepo := newEventFixture(t)
	admin := seedUser(t, userRepo, "Admin", "admin@gatherly.app", true)
	tom := seedUser(t, userRepo, "Tom", "tom@email.com", false)

	event := &model.Event{Title: "Summer Picnic", Date: "15/08/2026", UserID: admin.ID}
	require.NoError(t, eventRepo.Create(t.Context(), event))

	seat := "B2"
	req := makeJSONRequest(t, http.MethodPatch, "/v1/events/"+event.ID+"/attending/attending:ghost", model.UpdateAttendingRequest{
		SeatNumber: &seat,
	})
	req.SetPathValue("eventId", event.ID)
	req.SetPathValue("attendingId", "attending:ghost")
	rr := httptest.NewRecorder()

	handler.UpdateAttending(rr, authenticate(req, tom))

	require.Equal(t, http.StatusNotFound, rr.Code)

	problem := decodeProblem(t, rr.Body)
	assert.Equal(t, "Attending with id 'attending:ghost' not found", problem.Detail)
}

func TestDeleteAttending_ReturnsConfirmationNamingEvent(t *testing.T) {
	t.Parallel()

	_, handler, userRepo, eventRepo := newEventFixture(t)
	admin := seedUser(t, userRepo, "Admin", "admin@gatherly.app", true)
	tom := seedUser(t, userRepo, "Tom", "tom@email.com", false)

	event := &model.Event{Title: "Summer Picnic", Date: "15/08/2026", TicketPrice: 15.0, UserID: admin.ID}
	require.NoError(t, eventRepo.Create(t.Context(), event))

	createReq := makeJSONRequest(t, http.MethodPost, "/v1/events/"+event.ID+"/attending", model.CreateAttendingRequest{
		SeatNumber: "A1",
	})
	createReq.SetPathValue("eventId", event.ID)
	createRR := httptest.NewRecorder()
	handler.CreateAttending(createRR, authenticate(createReq, tom))
	require.Equal(t, http.StatusCreated, createRR.Code)

	var created DataResponse
	require.NoError(t, json.Unmarshal(createRR.Body.Bytes(), &created))
	attendingID := created.Data.(map[string]interface{})["id"].(string)

	req := httptest.NewRequest(http.MethodDelete, "/v1/events/"+event.ID+"/attending/"+attendingID, nil)
	req.SetPathValue("eventId", event.ID)
	req.SetPathValue("attendingId", attendingID)
	rr := httptest.NewRecorder()

	handler.DeleteAttending(rr, authenticate(req, tom))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Attending event 'Summer Picnic' deleted", resp.Message)
}
