package service

import (
	"context"
	"fmt"

	"github.com/gatherly/api/internal/model"
)

// AttendingService handles ticket reservations. The attending user is
// always the authenticated caller; an invoice for total_tickets times
// the event's ticket price is issued with each reservation.
type AttendingService struct {
	eventRepo     EventRepository
	attendingRepo AttendingRepository
	invoiceRepo   InvoiceRepository
	userRepo      UserRepository
}

// NewAttendingService creates a new attending service
func NewAttendingService(eventRepo EventRepository, attendingRepo AttendingRepository, invoiceRepo InvoiceRepository, userRepo UserRepository) *AttendingService {
	return &AttendingService{
		eventRepo:     eventRepo,
		attendingRepo: attendingRepo,
		invoiceRepo:   invoiceRepo,
		userRepo:      userRepo,
	}
}

// Create records the caller attending an event and issues the invoice
func (s *AttendingService) Create(ctx context.Context, userID, eventID string, req *model.CreateAttendingRequest) (*model.AttendingView, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	attending := &model.Attending{
		SeatNumber:   req.SeatNumber,
		TotalTickets: req.Tickets(),
		EventID:      eventID,
		UserID:       userID,
	}
	totalCost := float64(attending.TotalTickets) * event.TicketPrice

	if err := s.attendingRepo.Create(ctx, attending, totalCost); err != nil {
		return nil, err
	}
	return s.buildView(ctx, attending)
}

// Get retrieves one attending record scoped to an event
func (s *AttendingService) Get(ctx context.Context, eventID, attendingID string) (*model.AttendingView, error) {
	attending, err := s.lookup(ctx, eventID, attendingID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, attending)
}

// List retrieves all attending records for an event
func (s *AttendingService) List(ctx context.Context, eventID string) ([]*model.AttendingView, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	attendings, err := s.attendingRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	views := make([]*model.AttendingView, 0, len(attendings))
	for _, a := range attendings {
		view, err := s.buildView(ctx, a)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Update applies a partial update to an attending record. Nil fields
// are left unchanged; an explicit total_tickets of 0 never reaches here
// because validation rejects it.
func (s *AttendingService) Update(ctx context.Context, eventID, attendingID string, req *model.UpdateAttendingRequest) (*model.AttendingView, error) {
	attending, err := s.lookup(ctx, eventID, attendingID)
	if err != nil {
		return nil, err
	}

	if req.SeatNumber != nil {
		attending.SeatNumber = *req.SeatNumber
	}
	if req.TotalTickets != nil {
		attending.TotalTickets = *req.TotalTickets
	}

	if err := s.attendingRepo.Update(ctx, attending); err != nil {
		return nil, err
	}
	return s.buildView(ctx, attending)
}

// Delete removes an attending record and returns a confirmation message
// naming the event
func (s *AttendingService) Delete(ctx context.Context, eventID, attendingID string) (string, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return "", err
	}
	if event == nil {
		return "", ErrEventNotFound
	}

	attending, err := s.attendingRepo.GetByID(ctx, eventID, attendingID)
	if err != nil {
		return "", err
	}
	if attending == nil {
		return "", ErrAttendingNotFound
	}

	if err := s.attendingRepo.Delete(ctx, attendingID); err != nil {
		return "", err
	}
	return fmt.Sprintf("Attending event '%s' deleted", event.Title), nil
}

func (s *AttendingService) lookup(ctx context.Context, eventID, attendingID string) (*model.Attending, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	attending, err := s.attendingRepo.GetByID(ctx, eventID, attendingID)
	if err != nil {
		return nil, err
	}
	if attending == nil {
		return nil, ErrAttendingNotFound
	}
	return attending, nil
}

func (s *AttendingService) buildView(ctx context.Context, attending *model.Attending) (*model.AttendingView, error) {
	user, err := s.userRepo.GetByID(ctx, attending.UserID)
	if err != nil {
		return nil, err
	}

	view := &model.AttendingView{
		ID:           attending.ID,
		SeatNumber:   attending.SeatNumber,
		TotalTickets: attending.TotalTickets,
		Date:         attending.Date,
		EventID:      attending.EventID,
		AttendingID:  attending.UserID,
	}
	if user != nil {
		view.User = user.ToSummary()
	}
	return view, nil
}
