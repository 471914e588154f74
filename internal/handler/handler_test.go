package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gatherly/api/internal/middleware"
	"github.com/gatherly/api/internal/model"
	"github.com/gatherly/api/pkg/jwt"
)

// ============================================================================
// In-memory repositories
// ============================================================================

type memUserRepo struct {
	users  map[string]*model.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*model.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("user: email already exists")
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("user:%d", r.nextID)
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.users[id], nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*model.User, error) {
	result := make(map[string]*model.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			result[id] = u
		}
	}
	return result, nil
}

type memEventRepo struct {
	events map[string]*model.Event
	nextID int
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: make(map[string]*model.Event)}
}

func (r *memEventRepo) Create(ctx context.Context, event *model.Event) error {
	r.nextID++
	event.ID = fmt.Sprintf("event:%d", r.nextID)
	r.events[event.ID] = event
	return nil
}

func (r *memEventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	return r.events[id], nil
}

func (r *memEventRepo) List(ctx context.Context) ([]*model.Event, error) {
	result := make([]*model.Event, 0, len(r.events))
	for _, e := range r.events {
		result = append(result, e)
	}
	return result, nil
}

func (r *memEventRepo) Update(ctx context.Context, event *model.Event) error {
	r.events[event.ID] = event
	return nil
}

func (r *memEventRepo) Delete(ctx context.Context, id string) error {
	delete(r.events, id)
	return nil
}

func (r *memEventRepo) SumTickets(ctx context.Context, eventID string) (int, error) {
	return 0, nil
}

type memAttendingRepo struct {
	attendings map[string]*model.Attending
	invoices   *memInvoiceRepo
	nextID     int
}

func newMemAttendingRepo(invoices *memInvoiceRepo) *memAttendingRepo {
	return &memAttendingRepo{
		attendings: make(map[string]*model.Attending),
		invoices:   invoices,
	}
}

func (r *memAttendingRepo) Create(ctx context.Context, attending *model.Attending, totalCost float64) error {
	r.nextID++
	attending.ID = fmt.Sprintf("attending:%d", r.nextID)
	attending.Date = time.Now()
	r.attendings[attending.ID] = attending
	r.invoices.add(&model.Invoice{
		TotalCost: totalCost,
		EventID:   attending.EventID,
		UserID:    attending.UserID,
	})
	return nil
}

func (r *memAttendingRepo) GetByID(ctx context.Context, eventID, id string) (*model.Attending, error) {
	a, ok := r.attendings[id]
	if !ok || a.EventID != eventID {
		return nil, nil
	}
	return a, nil
}

func (r *memAttendingRepo) ListByEvent(ctx context.Context, eventID string) ([]*model.Attending, error) {
	var result []*model.Attending
	for _, a := range r.attendings {
		if a.EventID == eventID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *memAttendingRepo) Update(ctx context.Context, attending *model.Attending) error {
	r.attendings[attending.ID] = attending
	return nil
}

func (r *memAttendingRepo) Delete(ctx context.Context, id string) error {
	delete(r.attendings, id)
	return nil
}

type memInvoiceRepo struct {
	invoices map[string]*model.Invoice
	nextID   int
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{invoices: make(map[string]*model.Invoice)}
}

func (r *memInvoiceRepo) add(invoice *model.Invoice) {
	r.nextID++
	invoice.ID = fmt.Sprintf("invoice:%d", r.nextID)
	invoice.Date = time.Now()
	r.invoices[invoice.ID] = invoice
}

func (r *memInvoiceRepo) GetByID(ctx context.Context, id string) (*model.Invoice, error) {
	return r.invoices[id], nil
}

func (r *memInvoiceRepo) ListByEvent(ctx context.Context, eventID string) ([]*model.Invoice, error) {
	var result []*model.Invoice
	for _, inv := range r.invoices {
		if inv.EventID == eventID {
			result = append(result, inv)
		}
	}
	return result, nil
}

func (r *memInvoiceRepo) ListByUser(ctx context.Context, userID string) ([]*model.Invoice, error) {
	var result []*model.Invoice
	for _, inv := range r.invoices {
		if inv.UserID == userID {
			result = append(result, inv)
		}
	}
	return result, nil
}

// ============================================================================
// Request helpers
// ============================================================================

func makeJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// authenticate attaches claims for the given user to the request context,
// the same way the auth middleware does for a valid bearer token.
func authenticate(req *http.Request, user *model.User) *http.Request {
	claims := &jwt.Claims{
		UserID:  user.ID,
		Email:   user.Email,
		Name:    user.Name,
		IsAdmin: user.IsAdmin,
	}
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, user.ID)
	ctx = context.WithValue(ctx, middleware.UserEmailKey, user.Email)
	ctx = context.WithValue(ctx, middleware.ClaimsKey, claims)
	return req.WithContext(ctx)
}

func decodeProblem(t *testing.T, body *bytes.Buffer) *model.ProblemDetails {
	t.Helper()
	var problem model.ProblemDetails
	if err := json.Unmarshal(body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to parse error response: %v", err)
	}
	return &problem
}
