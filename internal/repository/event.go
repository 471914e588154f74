package repository

import (
	"context"
	"errors"

	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/model"
)

// EventRepository handles event data access
type EventRepository struct {
	db database.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `
		CREATE event CONTENT {
			title: $title,
			description: $description,
			date: $date,
			ticket_price: $ticket_price,
			user: type::record($user)
		}
	`

	vars := map[string]interface{}{
		"title":        event.Title,
		"description":  event.Description,
		"date":         event.Date,
		"ticket_price": event.TicketPrice,
		"user":         event.UserID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	records := unwrapRecords(result)
	if len(records) == 0 {
		return errors.New("no result returned")
	}
	event.ID = getRecordID(records[0], "id")
	return nil
}

// GetByID retrieves an event by ID. Returns nil if the event does not exist.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := unwrapRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return parseEvent(data), nil
}

// List retrieves all events
func (r *EventRepository) List(ctx context.Context) ([]*model.Event, error) {
	query := `SELECT * FROM event`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	records := unwrapRecords(result)
	events := make([]*model.Event, 0, len(records))
	for _, data := range records {
		events = append(events, parseEvent(data))
	}
	return events, nil
}

// Update persists the mutable fields of an event
func (r *EventRepository) Update(ctx context.Context, event *model.Event) error {
	query := `
		UPDATE type::record($id) SET
			title = $title,
			description = $description,
			date = $date,
			ticket_price = $ticket_price
	`

	vars := map[string]interface{}{
		"id":           event.ID,
		"title":        event.Title,
		"description":  event.Description,
		"date":         event.Date,
		"ticket_price": event.TicketPrice,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete deletes an event together with its attending records and
// invoices in a single transaction
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE attending WHERE event = type::record($id)`, map[string]interface{}{"id": id})
	batch.Add(`DELETE invoice WHERE event = type::record($id)`, map[string]interface{}{"id": id})
	batch.Add(`DELETE type::record($id)`, map[string]interface{}{"id": id})
	return batch.Execute(ctx, r.db)
}

// SumTickets returns the total number of tickets reserved for an event
func (r *EventRepository) SumTickets(ctx context.Context, eventID string) (int, error) {
	query := `SELECT math::sum(total_tickets) AS count FROM attending WHERE event = type::record($event) GROUP ALL`
	vars := map[string]interface{}{"event": eventID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

func parseEvent(data map[string]interface{}) *model.Event {
	return &model.Event{
		ID:          getRecordID(data, "id"),
		Title:       getString(data, "title"),
		Description: getString(data, "description"),
		Date:        getString(data, "date"),
		TicketPrice: getFloat(data, "ticket_price"),
		UserID:      getRecordID(data, "user"),
	}
}
