package model

import "regexp"

// Event represents a scheduled event users can attend
type Event struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // dd/mm/yyyy or dd-mm-yyyy
	TicketPrice float64 `json:"ticket_price"`
	UserID      string  `json:"user_id"` // owning admin
}

// Constraints
const (
	MinEventTitleLength       = 3
	MaxEventTitleLength       = 50
	MaxEventDescriptionLength = 400
)

var (
	// alphanumSpaceRe restricts titles and descriptions to
	// alphanumerics and spaces.
	alphanumSpaceRe = regexp.MustCompile(`^[a-zA-Z0-9 ]*$`)

	// eventDateRe matches dd/mm/yyyy or dd-mm-yyyy with day 01-31 and
	// month 01-12. Pattern-only: "31/02/2024" passes even though it is
	// not a real date.
	eventDateRe = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])[/\-](0[1-9]|1[012])[/\-]\d{4}$`)
)

// ValidEventDate reports whether s matches the accepted date pattern
func ValidEventDate(s string) bool {
	return eventDateRe.MatchString(s)
}

// CreateEventRequest represents a request to create an event
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	TicketPrice *float64 `json:"ticket_price,omitempty"` // defaults to 0.0
}

// Validate checks if the create request is valid
func (r *CreateEventRequest) Validate() []FieldError {
	var errors []FieldError

	errors = append(errors, validateEventTitle(r.Title)...)
	errors = append(errors, validateEventDescription(r.Description)...)
	if r.Date == "" {
		errors = append(errors, FieldError{Field: "date", Message: "date is required"})
	} else if !ValidEventDate(r.Date) {
		errors = append(errors, FieldError{Field: "date", Message: "date must be in dd/mm/yyyy or dd-mm-yyyy format"})
	}
	if r.TicketPrice != nil && *r.TicketPrice < 0 {
		errors = append(errors, FieldError{Field: "ticket_price", Message: "ticket_price must be 0 or greater"})
	}

	return errors
}

// Price returns the requested ticket price, defaulting to 0.0
func (r *CreateEventRequest) Price() float64 {
	if r.TicketPrice == nil {
		return 0.0
	}
	return *r.TicketPrice
}

// UpdateEventRequest represents a partial update of an event.
// Nil fields are left unchanged, so an explicit 0 ticket_price is
// distinguishable from an omitted one.
type UpdateEventRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Date        *string  `json:"date,omitempty"`
	TicketPrice *float64 `json:"ticket_price,omitempty"`
}

// Validate checks if the update request is valid
func (r *UpdateEventRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Title != nil {
		errors = append(errors, validateEventTitle(*r.Title)...)
	}
	if r.Description != nil {
		errors = append(errors, validateEventDescription(*r.Description)...)
	}
	if r.Date != nil && !ValidEventDate(*r.Date) {
		errors = append(errors, FieldError{Field: "date", Message: "date must be in dd/mm/yyyy or dd-mm-yyyy format"})
	}
	if r.TicketPrice != nil && *r.TicketPrice < 0 {
		errors = append(errors, FieldError{Field: "ticket_price", Message: "ticket_price must be 0 or greater"})
	}

	return errors
}

func validateEventTitle(title string) []FieldError {
	var errors []FieldError
	if len(title) < MinEventTitleLength || len(title) > MaxEventTitleLength {
		errors = append(errors, FieldError{Field: "title", Message: "title must be between 3 and 50 characters"})
	}
	if !alphanumSpaceRe.MatchString(title) {
		errors = append(errors, FieldError{Field: "title", Message: "title may only contain letters, numbers, and spaces"})
	}
	return errors
}

func validateEventDescription(desc string) []FieldError {
	var errors []FieldError
	if len(desc) > MaxEventDescriptionLength {
		errors = append(errors, FieldError{Field: "description", Message: "description must be 400 characters or less"})
	}
	if !alphanumSpaceRe.MatchString(desc) {
		errors = append(errors, FieldError{Field: "description", Message: "description may only contain letters, numbers, and spaces"})
	}
	return errors
}

// EventView is the transport representation of an event. The owning
// user is restricted to {name, email}; attendings and invoices are
// nested as summaries.
type EventView struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Date         string             `json:"date"`
	TicketPrice  float64            `json:"ticket_price"`
	EventAdminID string             `json:"event_admin_id"`
	User         UserSummary        `json:"user"`
	Attending    []AttendingSummary `json:"attending"`
	Invoices     []InvoiceSummary   `json:"invoices"`
}
