package model

import "time"

// Attending represents a user's ticket reservation for an event.
// The attending user is always the authenticated caller; it is never
// taken from the request body.
type Attending struct {
	ID           string    `json:"id"`
	SeatNumber   string    `json:"seat_number"`
	TotalTickets int       `json:"total_tickets"`
	Date         time.Time `json:"date"`
	EventID      string    `json:"event_id"`
	UserID       string    `json:"user_id"`
}

// MaxSeatNumberLength bounds seat labels
const MaxSeatNumberLength = 20

// CreateAttendingRequest represents a request to attend an event
type CreateAttendingRequest struct {
	SeatNumber   string `json:"seat_number"`
	TotalTickets *int   `json:"total_tickets,omitempty"` // defaults to 1
}

// Validate checks if the create request is valid
func (r *CreateAttendingRequest) Validate() []FieldError {
	var errors []FieldError

	if r.SeatNumber == "" {
		errors = append(errors, FieldError{Field: "seat_number", Message: "seat_number is required"})
	} else if len(r.SeatNumber) > MaxSeatNumberLength {
		errors = append(errors, FieldError{Field: "seat_number", Message: "seat_number must be 20 characters or less"})
	}
	if r.TotalTickets != nil && *r.TotalTickets < 1 {
		errors = append(errors, FieldError{Field: "total_tickets", Message: "total_tickets must be at least 1"})
	}

	return errors
}

// Tickets returns the requested ticket count, defaulting to 1
func (r *CreateAttendingRequest) Tickets() int {
	if r.TotalTickets == nil {
		return 1
	}
	return *r.TotalTickets
}

// UpdateAttendingRequest represents a partial update of an attending
// record. Nil fields are left unchanged, so an explicit 0 is rejected
// by validation rather than silently ignored.
type UpdateAttendingRequest struct {
	SeatNumber   *string `json:"seat_number,omitempty"`
	TotalTickets *int    `json:"total_tickets,omitempty"`
}

// Validate checks if the update request is valid
func (r *UpdateAttendingRequest) Validate() []FieldError {
	var errors []FieldError

	if r.SeatNumber != nil {
		if *r.SeatNumber == "" {
			errors = append(errors, FieldError{Field: "seat_number", Message: "seat_number cannot be empty"})
		} else if len(*r.SeatNumber) > MaxSeatNumberLength {
			errors = append(errors, FieldError{Field: "seat_number", Message: "seat_number must be 20 characters or less"})
		}
	}
	if r.TotalTickets != nil && *r.TotalTickets < 1 {
		errors = append(errors, FieldError{Field: "total_tickets", Message: "total_tickets must be at least 1"})
	}

	return errors
}

// AttendingView is the transport representation of an attending record.
// attending_id names the attending user; the nested user summary adds
// their name and email.
type AttendingView struct {
	ID           string      `json:"id"`
	SeatNumber   string      `json:"seat_number"`
	TotalTickets int         `json:"total_tickets"`
	Date         time.Time   `json:"date"`
	EventID      string      `json:"event_id"`
	AttendingID  string      `json:"attending_id"`
	User         UserSummary `json:"user"`
}

// AttendingSummary restricts an attending record nested under its event
// to the event reference, seat, ticket count, and attendee summary
type AttendingSummary struct {
	EventID      string      `json:"event_id"`
	SeatNumber   string      `json:"seat_number"`
	TotalTickets int         `json:"total_tickets"`
	User         UserSummary `json:"user"`
}
