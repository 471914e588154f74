package repository

import (
	"context"
	"errors"

	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/model"
)

// InvoiceRepository handles invoice data access.
// Invoices are written by the attending flow (see AttendingRepository.Create);
// this repository only reads them.
type InvoiceRepository struct {
	db database.Database
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db database.Database) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// GetByID retrieves an invoice by ID. Returns nil if it does not exist.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*model.Invoice, error) {
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
	return parseInvoice(data), nil
}

// ListByEvent retrieves all invoices issued for an event
func (r *InvoiceRepository) ListByEvent(ctx context.Context, eventID string) ([]*model.Invoice, error) {
	query := `SELECT * FROM invoice WHERE event = type::record($event) ORDER BY date ASC`
	vars := map[string]interface{}{"event": eventID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := unwrapRecords(result)
	invoices := make([]*model.Invoice, 0, len(records))
	for _, data := range records {
		invoices = append(invoices, parseInvoice(data))
	}
	return invoices, nil
}

// ListByUser retrieves all invoices issued to a user
func (r *InvoiceRepository) ListByUser(ctx context.Context, userID string) ([]*model.Invoice, error) {
	query := `SELECT * FROM invoice WHERE user = type::record($user) ORDER BY date ASC`
	vars := map[string]interface{}{"user": userID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := unwrapRecords(result)
	invoices := make([]*model.Invoice, 0, len(records))
	for _, data := range records {
		invoices = append(invoices, parseInvoice(data))
	}
	return invoices, nil
}

func parseInvoice(data map[string]interface{}) *model.Invoice {
	return &model.Invoice{
		ID:        getRecordID(data, "id"),
		TotalCost: getFloat(data, "total_cost"),
		Date:      getTime(data, "date"),
		EventID:   getRecordID(data, "event"),
		UserID:    getRecordID(data, "user"),
	}
}
