package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/model"
)

// AttendingRepository handles attending data access
type AttendingRepository struct {
	db database.Database
}

// NewAttendingRepository creates a new attending repository
func NewAttendingRepository(db database.Database) *AttendingRepository {
	return &AttendingRepository{db: db}
}

// Create creates an attending record and its invoice in a single
// transaction. The invoice charge is totalCost, already computed by the
// caller from the event's ticket price.
//
// The attending id is assigned here rather than by the database. The
// batch discards per-statement output, and a read-back keyed on
// (event, user, latest date) can tie when the same user reserves twice
// in one clock tick.
func (r *AttendingRepository) Create(ctx context.Context, attending *model.Attending, totalCost float64) error {
	newID := strings.ReplaceAll(uuid.NewString(), "-", "")

	batch := database.NewAtomicBatch()
	batch.Add(`
		CREATE type::thing('attending', $attending_id) CONTENT {
			seat_number: $seat_number,
			total_tickets: $total_tickets,
			date: time::now(),
			event: type::record($event),
			user: type::record($user)
		}
	`, map[string]interface{}{
		"attending_id":  newID,
		"seat_number":   attending.SeatNumber,
		"total_tickets": attending.TotalTickets,
		"event":         attending.EventID,
		"user":          attending.UserID,
	})
	batch.Add(`
		CREATE invoice CONTENT {
			total_cost: $total_cost,
			date: time::now(),
			event: type::record($event),
			user: type::record($user)
		}
	`, map[string]interface{}{
		"total_cost": totalCost,
		"event":      attending.EventID,
		"user":       attending.UserID,
	})

	if err := batch.Execute(ctx, r.db); err != nil {
		return err
	}

	created, err := r.GetByID(ctx, attending.EventID, "attending:"+newID)
	if err != nil {
		return err
	}
	if created != nil {
		attending.ID = created.ID
		attending.Date = created.Date
	}
	return nil
}

// GetByID retrieves an attending record scoped to an event. Returns nil
// if the record does not exist or belongs to a different event.
func (r *AttendingRepository) GetByID(ctx context.Context, eventID, id string) (*model.Attending, error) {
	query := `SELECT * FROM type::record($id) WHERE event = type::record($event)`
	vars := map[string]interface{}{
		"id":    id,
		"event": eventID,
	}

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
	return parseAttending(data), nil
}

// ListByEvent retrieves all attending records for an event
func (r *AttendingRepository) ListByEvent(ctx context.Context, eventID string) ([]*model.Attending, error) {
	query := `SELECT * FROM attending WHERE event = type::record($event) ORDER BY date ASC`
	vars := map[string]interface{}{"event": eventID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := unwrapRecords(result)
	attendings := make([]*model.Attending, 0, len(records))
	for _, data := range records {
		attendings = append(attendings, parseAttending(data))
	}
	return attendings, nil
}

// Update persists the mutable fields of an attending record
func (r *AttendingRepository) Update(ctx context.Context, attending *model.Attending) error {
	query := `
		UPDATE type::record($id) SET
			seat_number = $seat_number,
			total_tickets = $total_tickets
	`

	vars := map[string]interface{}{
		"id":            attending.ID,
		"seat_number":   attending.SeatNumber,
		"total_tickets": attending.TotalTickets,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete removes an attending record
func (r *AttendingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}
	return r.db.Execute(ctx, query, vars)
}

func parseAttending(data map[string]interface{}) *model.Attending {
	return &model.Attending{
		ID:           getRecordID(data, "id"),
		SeatNumber:   getString(data, "seat_number"),
		TotalTickets: getInt(data, "total_tickets"),
		Date:         getTime(data, "date"),
		EventID:      getRecordID(data, "event"),
		UserID:       getRecordID(data, "user"),
	}
}
