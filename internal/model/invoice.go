package model

import "time"

// Invoice represents the charge issued when a user attends an event.
// Invoices are created by the attending flow, never directly by clients.
type Invoice struct {
	ID        string    `json:"id"`
	TotalCost float64   `json:"total_cost"`
	Date      time.Time `json:"date"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
}

// InvoiceView is the transport representation of an invoice
type InvoiceView struct {
	ID        string    `json:"id"`
	TotalCost float64   `json:"total_cost"`
	Date      time.Time `json:"date"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
}

// InvoiceSummary restricts an invoice nested under its event to the
// total cost only
type InvoiceSummary struct {
	TotalCost float64 `json:"total_cost"`
}

// ToView converts an Invoice to its transport representation
func (i *Invoice) ToView() *InvoiceView {
	return &InvoiceView{
		ID:        i.ID,
		TotalCost: i.TotalCost,
		Date:      i.Date,
		EventID:   i.EventID,
		UserID:    i.UserID,
	}
}
