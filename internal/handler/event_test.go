package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/api/internal/model"
	"github.com/gatherly/api/internal/service"
)

func newEventFixture(t *testing.T) (*EventHandler, *AttendingHandler, *memUserRepo, *memEventRepo) {
	t.Helper()

	userRepo := newMemUserRepo()
	eventRepo := newMemEventRepo()
	invoiceRepo := newMemInvoiceRepo()
	attendingRepo := newMemAttendingRepo(invoiceRepo)

	events := service.NewEventService(eventRepo, attendingRepo, invoiceRepo, userRepo)
	attending := service.NewAttendingService(eventRepo, attendingRepo, invoiceRepo, userRepo)

	return NewEventHandler(events), NewAttendingHandler(attending), userRepo, eventRepo
}

func seedUser(t *testing.T, repo *memUserRepo, name, email string, isAdmin bool) *model.User {
	t.Helper()
	user := &model.User{Name: name, Username: name, Email: email, IsAdmin: isAdmin}
	require.NoError(t, repo.Create(t.Context(), user))
	return user
}

func TestCreateEvent_Admin_ReturnsCreated(t *testing.T) {
	t.Parallel()

	handler, _, userRepo, _ := newEventFixture(t)
	admin := seedUser(t, userRepo, "Admin", "admin@gatherly.app", true)

	price := 15.0
	req := makeJSONRequest(t, http.MethodPost, "/v1/events", model.CreateEventRequest{
		Title:       "Summer Picnic",
		Description: "Bring your own basket",
		Date:        "15/08/2026",
		TicketPrice: &price,
	})
	rr := httptest.NewRecorder()

	handler.CreateEvent(rr, authenticate(req, admin))

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp DataResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Summer Picnic", data["title"])
	assert.Equal(t, 15.0, data["ticket_price"])
	assert.Equal(t, admin.ID, data["event_admin_id"])

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "admin@gatherly.app", user["email"])
	assert.NotContains(t, user, "password_hash")
}

func TestCreateEvent_NonAdmin_ReturnsForbidden(t *testing.T) {
	t.Parallel()

	handler, _, userRepo, eventRepo := newEventFixture(t)
	tom := seedUser(t, userRepo, "Tom", "tom@email.com", false)

	req := makeJSONRequest(t, http.MethodPost, "/v1/events", model.CreateEventRequest{
		Title: "Board Games Night",
		Date:  "20/09/2026",
	})
	rr := httptest.NewRecorder()

	handler.CreateEvent(rr, authenticate(req, tom))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Empty(t, eventRepo.events)
}

func TestCreateEvent_InvalidBody_ReturnsBadRequest(t *testing.T) {
	t.Parallel()

	handler, _, userRepo, _ := newEventFixture(t)
	admin := seedUser(t, userRepo, "Admin", "admin@gatherly.app", true)

	req := httptest.NewRequest(http.MethodPost, "/v1/events", nil)
	rr := httptest.NewRecorder()

	handler.CreateEvent(rr, authenticate(req, admin))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateEvent_InvalidFields_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	handler, _, userRepo, _ := newEventFixture(t)
	admin := seedUser(t, userRepo, "Admin", "admin@gatherly.app", true)

	req := makeJSONRequest(t, http.MethodPost, "/v1/events", model.CreateEventRequest{
		Title: "x",
		Date:  "2026-08-15",
	})
	rr := httptest.NewRecorder()

	handler.CreateEvent(rr, authenticate(req, admin))

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	problem := decodeProblem(t, rr.Body)
	assert.Len(t, problem.Errors, 2)
}

func TestGetEvent_Missing_ReturnsNotFoundNamingID(t *testing.T) {
	t.Parallel()

	handler, _, _, _ := newEventFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/events/event:nope", nil)
	req.SetPathValue("eventId", "event:nope")
	rr := httptest.NewRecorder()

	handler.GetEvent(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)

	problem := decodeProblem(t, rr.Body)
	assert.Equal(t, "Event with id 'event:nope' not found", problem.Detail)
}

func TestDeleteEvent_Admin_ReturnsConfirmation(t *testing.T) {
	t.Parallel()

	handler, _, userRepo, eventRepo := newEventFixture(t)
	admin := seedUser(t, userRepo, "Admin", "admin@gatherly.app", true)

	event := &model.Event{Title: "Summer Picnic", Date: "15/08/2026", UserID: admin.ID}
	require.NoError(t, eventRepo.Create(t.Context(), event))

	req := httptest.NewRequest(http.MethodDelete, "/v1/events/"+event.ID, nil)
	req.SetPathValue("eventId", event.ID)
	rr := httptest.NewRecorder()

	handler.DeleteEvent(rr, authenticate(req, admin))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Event 'Summer Picnic' deleted", resp.Message)
	assert.Empty(t, eventRepo.events)
}

func TestListEvents_ReturnsCollection(t *testing.T) {
	t.Parallel()

	handler, _, userRepo, eventRepo := newEventFixture(t)
	admin := seedUser(t, userRepo, "Admin", "admin@gatherly.app", true)

	require.NoError(t, eventRepo.Create(t.Context(), &model.Event{Title: "Summer Picnic", Date: "15/08/2026", UserID: admin.ID}))
	require.NoError(t, eventRepo.Create(t.Context(), &model.Event{Title: "Board Games Night", Date: "20/09/2026", UserID: admin.ID}))

	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	rr := httptest.NewRecorder()

	handler.ListEvents(rr, authenticate(req, admin))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp CollectionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestListMyInvoices_ReturnsOnlyCallersInvoices(t *testing.T) {
	t.Parallel()

	userRepo := newMemUserRepo()
	eventRepo := newMemEventRepo()
	invoiceRepo := newMemInvoiceRepo()
	attendingRepo := newMemAttendingRepo(invoiceRepo)
	handler := NewEventHandler(service.NewEventService(eventRepo, attendingRepo, invoiceRepo, userRepo))

	tom := seedUser(t, userRepo, "Tom", "tom@gatherly.app", false)
	other := seedUser(t, userRepo, "Other", "other@gatherly.app", false)

	invoiceRepo.add(&model.Invoice{TotalCost: 30.0, EventID: "event:1", UserID: tom.ID})
	invoiceRepo.add(&model.Invoice{TotalCost: 12.5, EventID: "event:2", UserID: tom.ID})
	invoiceRepo.add(&model.Invoice{TotalCost: 99.0, EventID: "event:1", UserID: other.ID})

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me/invoices", nil)
	rr := httptest.NewRecorder()

	handler.ListMyInvoices(rr, authenticate(req, tom))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp CollectionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestGetInvoice_Missing_ReturnsNotFoundWithID(t *testing.T) {
	t.Parallel()

	handler, _, _, _ := newEventFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/invoices/invoice:nope", nil)
	req.SetPathValue("invoiceId", "invoice:nope")
	rr := httptest.NewRecorder()

	handler.GetInvoice(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	problem := decodeProblem(t, rr.Body)
	assert.Equal(t, "Invoice with id 'invoice:nope' not found", problem.Detail)
}

func TestGetInvoice_ReturnsInvoice(t *testing.T) {
	t.Parallel()

	userRepo := newMemUserRepo()
	eventRepo := newMemEventRepo()
	invoiceRepo := newMemInvoiceRepo()
	attendingRepo := newMemAttendingRepo(invoiceRepo)
	handler := NewEventHandler(service.NewEventService(eventRepo, attendingRepo, invoiceRepo, userRepo))

	invoice := &model.Invoice{TotalCost: 42.0, EventID: "event:1", UserID: "user:tom"}
	invoiceRepo.add(invoice)

	req := httptest.NewRequest(http.MethodGet, "/v1/invoices/"+invoice.ID, nil)
	req.SetPathValue("invoiceId", invoice.ID)
	rr := httptest.NewRecorder()

	handler.GetInvoice(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp DataResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, 42.0, data["total_cost"])
}
