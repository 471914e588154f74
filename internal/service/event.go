package service

import (
	"context"

	"github.com/gatherly/api/internal/model"
)

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id string) error
	SumTickets(ctx context.Context, eventID string) (int, error)
}

// AttendingRepository defines the interface for attending storage
type AttendingRepository interface {
	Create(ctx context.Context, attending *model.Attending, totalCost float64) error
	GetByID(ctx context.Context, eventID, id string) (*model.Attending, error)
	ListByEvent(ctx context.Context, eventID string) ([]*model.Attending, error)
	Update(ctx context.Context, attending *model.Attending) error
	Delete(ctx context.Context, id string) error
}

// InvoiceRepository defines the interface for invoice storage
type InvoiceRepository interface {
	GetByID(ctx context.Context, id string) (*model.Invoice, error)
	ListByEvent(ctx context.Context, eventID string) ([]*model.Invoice, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Invoice, error)
}

// EventService handles event management. Creating, updating, and
// deleting events requires an admin caller.
type EventService struct {
	eventRepo     EventRepository
	attendingRepo AttendingRepository
	invoiceRepo   InvoiceRepository
	userRepo      UserRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo EventRepository, attendingRepo AttendingRepository, invoiceRepo InvoiceRepository, userRepo UserRepository) *EventService {
	return &EventService{
		eventRepo:     eventRepo,
		attendingRepo: attendingRepo,
		invoiceRepo:   invoiceRepo,
		userRepo:      userRepo,
	}
}

// CreateEvent creates an event owned by the calling admin
func (s *EventService) CreateEvent(ctx context.Context, caller *model.User, req *model.CreateEventRequest) (*model.EventView, error) {
	if !caller.IsAdmin {
		return nil, ErrNotAdmin
	}

	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		TicketPrice: req.Price(),
		UserID:      caller.ID,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return s.buildEventView(ctx, event)
}

// GetEvent retrieves an event with its attendings and invoices
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*model.EventView, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return s.buildEventView(ctx, event)
}

// ListEvents retrieves all events
func (s *EventService) ListEvents(ctx context.Context) ([]*model.EventView, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*model.EventView, 0, len(events))
	for _, event := range events {
		view, err := s.buildEventView(ctx, event)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// UpdateEvent applies a partial update to an event. Nil fields are left
// unchanged; an explicit 0 ticket_price is applied.
func (s *EventService) UpdateEvent(ctx context.Context, caller *model.User, eventID string, req *model.UpdateEventRequest) (*model.EventView, error) {
	if !caller.IsAdmin {
		return nil, ErrNotAdmin
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.TicketPrice != nil {
		event.TicketPrice = *req.TicketPrice
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return s.buildEventView(ctx, event)
}

// DeleteEvent deletes an event and all its attending records and
// invoices. Returns the deleted event's title.
func (s *EventService) DeleteEvent(ctx context.Context, caller *model.User, eventID string) (string, error) {
	if !caller.IsAdmin {
		return "", ErrNotAdmin
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return "", err
	}
	if event == nil {
		return "", ErrEventNotFound
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return "", err
	}
	return event.Title, nil
}

// TotalTickets returns the total number of tickets reserved for an event
func (s *EventService) TotalTickets(ctx context.Context, eventID string) (int, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if event == nil {
		return 0, ErrEventNotFound
	}
	return s.eventRepo.SumTickets(ctx, eventID)
}

// ListEventInvoices retrieves the invoices issued for an event
func (s *EventService) ListEventInvoices(ctx context.Context, eventID string) ([]*model.InvoiceView, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	invoices, err := s.invoiceRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	views := make([]*model.InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		views = append(views, inv.ToView())
	}
	return views, nil
}

// ListUserInvoices retrieves the invoices issued to a user
func (s *EventService) ListUserInvoices(ctx context.Context, userID string) ([]*model.InvoiceView, error) {
	invoices, err := s.invoiceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*model.InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		views = append(views, inv.ToView())
	}
	return views, nil
}

// GetInvoice retrieves a single invoice
func (s *EventService) GetInvoice(ctx context.Context, invoiceID string) (*model.InvoiceView, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	return invoice.ToView(), nil
}

// buildEventView assembles the transport representation of an event:
// owner as {name, email}, attending summaries, and invoice totals.
func (s *EventService) buildEventView(ctx context.Context, event *model.Event) (*model.EventView, error) {
	attendings, err := s.attendingRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	ids := []string{event.UserID}
	for _, a := range attendings {
		ids = append(ids, a.UserID)
	}
	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	view := &model.EventView{
		ID:           event.ID,
		Title:        event.Title,
		Description:  event.Description,
		Date:         event.Date,
		TicketPrice:  event.TicketPrice,
		EventAdminID: event.UserID,
		Attending:    make([]model.AttendingSummary, 0, len(attendings)),
		Invoices:     make([]model.InvoiceSummary, 0, len(invoices)),
	}
	if user, ok := users[event.UserID]; ok {
		view.User = user.ToSummary()
	}
	for _, a := range attendings {
		summary := model.AttendingSummary{
			EventID:      a.EventID,
			SeatNumber:   a.SeatNumber,
			TotalTickets: a.TotalTickets,
		}
		if user, ok := users[a.UserID]; ok {
			summary.User = user.ToSummary()
		}
		view.Attending = append(view.Attending, summary)
	}
	for _, inv := range invoices {
		view.Invoices = append(view.Invoices, model.InvoiceSummary{TotalCost: inv.TotalCost})
	}
	return view, nil
}
