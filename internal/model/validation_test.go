package model

import (
	"strings"
	"testing"
)

// ============================================================================
// CreateEventRequest Tests
// ============================================================================

func TestCreateEventRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	price := 25.0
	req := &CreateEventRequest{
		Title:       "Summer Picnic",
		Description: "An afternoon in the park",
		Date:        "15/08/2026",
		TicketPrice: &price,
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateEventRequest_Validate_FreeEvent(t *testing.T) {
	t.Parallel()

	price := 0.0
	req := &CreateEventRequest{
		Title:       "Community Meetup",
		Description: "Open to all",
		Date:        "01/12/2023",
		TicketPrice: &price,
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected ticket_price 0 to be accepted, got %v", errors)
	}
}

func TestCreateEventRequest_Validate_DefaultPrice(t *testing.T) {
	t.Parallel()

	req := &CreateEventRequest{
		Title: "Board Games Night",
		Date:  "10/10/2026",
	}

	if errors := req.Validate(); len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
	if req.Price() != 0.0 {
		t.Errorf("Price() = %v, want 0.0", req.Price())
	}
}

func TestCreateEventRequest_Validate_NegativePrice(t *testing.T) {
	t.Parallel()

	price := -5.0
	req := &CreateEventRequest{
		Title:       "Summer Picnic",
		Date:        "15/08/2026",
		TicketPrice: &price,
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "ticket_price" {
		t.Errorf("expected ticket_price error, got %v", errors)
	}
}

func TestCreateEventRequest_Validate_TitleLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		valid bool
	}{
		{"too short", "ab", false},
		{"one char", "a", false},
		{"minimum length", "abc", true},
		{"maximum length", strings.Repeat("a", MaxEventTitleLength), true},
		{"over maximum", strings.Repeat("a", MaxEventTitleLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := &CreateEventRequest{Title: tt.title, Date: "01/01/2026"}
			errors := req.Validate()
			if tt.valid && len(errors) > 0 {
				t.Errorf("expected title %q to be valid, got %v", tt.title, errors)
			}
			if !tt.valid && len(errors) == 0 {
				t.Errorf("expected title %q to be rejected", tt.title)
			}
		})
	}
}

func TestCreateEventRequest_Validate_TitlePunctuation(t *testing.T) {
	t.Parallel()

	req := &CreateEventRequest{Title: "Party!!!", Date: "01/01/2026"}
	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "title" {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected title with punctuation to be rejected, got %v", errors)
	}
}

func TestCreateEventRequest_Validate_DescriptionTooLong(t *testing.T) {
	t.Parallel()

	req := &CreateEventRequest{
		Title:       "Summer Picnic",
		Description: strings.Repeat("a", MaxEventDescriptionLength+1),
		Date:        "01/01/2026",
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "description" {
		t.Errorf("expected description error, got %v", errors)
	}
}

func TestCreateEventRequest_Validate_DatePatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date  string
		valid bool
	}{
		{"29/02/2024", true},
		{"01/12/2023", true},
		{"15-08-2026", true},
		// Pattern-only validation: not a real calendar date but the
		// pattern accepts it.
		{"31/02/2024", true},
		{"32/01/2024", false},
		{"01/13/2024", false},
		{"00/01/2024", false},
		{"1-1-24", false},
		{"2024/01/01", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			t.Parallel()
			req := &CreateEventRequest{Title: "Summer Picnic", Date: tt.date}
			errors := req.Validate()
			hasDateError := false
			for _, e := range errors {
				if e.Field == "date" {
					hasDateError = true
				}
			}
			if tt.valid && hasDateError {
				t.Errorf("expected date %q to be accepted, got %v", tt.date, errors)
			}
			if !tt.valid && !hasDateError {
				t.Errorf("expected date %q to be rejected", tt.date)
			}
		})
	}
}

func TestCreateEventRequest_Validate_ReportsAllFields(t *testing.T) {
	t.Parallel()

	price := -1.0
	req := &CreateEventRequest{
		Title:       "x",
		Date:        "bad",
		TicketPrice: &price,
	}

	errors := req.Validate()
	fields := make(map[string]bool)
	for _, e := range errors {
		fields[e.Field] = true
	}
	for _, want := range []string{"title", "date", "ticket_price"} {
		if !fields[want] {
			t.Errorf("expected error for field %s, got %v", want, errors)
		}
	}
}

// ============================================================================
// UpdateEventRequest Tests
// ============================================================================

func TestUpdateEventRequest_Validate_Empty(t *testing.T) {
	t.Parallel()

	req := &UpdateEventRequest{}
	if errors := req.Validate(); len(errors) > 0 {
		t.Errorf("expected empty update to be valid, got %v", errors)
	}
}

func TestUpdateEventRequest_Validate_ExplicitZeroPrice(t *testing.T) {
	t.Parallel()

	price := 0.0
	req := &UpdateEventRequest{TicketPrice: &price}
	if errors := req.Validate(); len(errors) > 0 {
		t.Errorf("expected ticket_price 0 to be accepted, got %v", errors)
	}
}

func TestUpdateEventRequest_Validate_BadTitle(t *testing.T) {
	t.Parallel()

	title := "x"
	req := &UpdateEventRequest{Title: &title}
	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "title" {
		t.Errorf("expected title error, got %v", errors)
	}
}

// ============================================================================
// CreateAttendingRequest / UpdateAttendingRequest Tests
// ============================================================================

func TestCreateAttendingRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	tickets := 3
	req := &CreateAttendingRequest{SeatNumber: "A12", TotalTickets: &tickets}
	if errors := req.Validate(); len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateAttendingRequest_Validate_DefaultTickets(t *testing.T) {
	t.Parallel()

	req := &CreateAttendingRequest{SeatNumber: "A12"}
	if errors := req.Validate(); len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
	if req.Tickets() != 1 {
		t.Errorf("Tickets() = %d, want 1", req.Tickets())
	}
}

func TestCreateAttendingRequest_Validate_MissingSeat(t *testing.T) {
	t.Parallel()

	req := &CreateAttendingRequest{}
	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "seat_number" {
		t.Errorf("expected seat_number error, got %v", errors)
	}
}

func TestCreateAttendingRequest_Validate_ZeroTickets(t *testing.T) {
	t.Parallel()

	tickets := 0
	req := &CreateAttendingRequest{SeatNumber: "A12", TotalTickets: &tickets}
	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "total_tickets" {
		t.Errorf("expected total_tickets error, got %v", errors)
	}
}

func TestUpdateAttendingRequest_Validate_OmittedTicketsValid(t *testing.T) {
	t.Parallel()

	seat := "B4"
	req := &UpdateAttendingRequest{SeatNumber: &seat}
	if errors := req.Validate(); len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

// An explicit 0 is rejected rather than silently reverting to the
// stored value.
func TestUpdateAttendingRequest_Validate_ExplicitZeroTickets(t *testing.T) {
	t.Parallel()

	tickets := 0
	req := &UpdateAttendingRequest{TotalTickets: &tickets}
	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "total_tickets" {
		t.Errorf("expected total_tickets error, got %v", errors)
	}
}

// ============================================================================
// RegisterRequest / LoginRequest Tests
// ============================================================================

func TestRegisterRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &RegisterRequest{
		Name:     "Tom Jones",
		Username: "tomjones",
		Email:    "tom@email.com",
		Password: "password123",
	}
	if errors := req.Validate(); len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestRegisterRequest_Validate_BadEmail(t *testing.T) {
	t.Parallel()

	req := &RegisterRequest{
		Name:     "Tom Jones",
		Email:    "not-an-email",
		Password: "password123",
	}
	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "email" {
		t.Errorf("expected email error, got %v", errors)
	}
}

func TestRegisterRequest_Validate_ShortPassword(t *testing.T) {
	t.Parallel()

	req := &RegisterRequest{
		Name:     "Tom Jones",
		Email:    "tom@email.com",
		Password: "short",
	}
	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "password" {
		t.Errorf("expected password error, got %v", errors)
	}
}

func TestRegisterRequest_Validate_AllMissing(t *testing.T) {
	t.Parallel()

	req := &RegisterRequest{}
	errors := req.Validate()
	if len(errors) != 3 {
		t.Errorf("expected 3 errors, got %v", errors)
	}
}

func TestLoginRequest_Validate_MissingPassword(t *testing.T) {
	t.Parallel()

	req := &LoginRequest{Email: "tom@email.com"}
	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "password" {
		t.Errorf("expected password error, got %v", errors)
	}
}

// ============================================================================
// Post / Comment Request Tests
// ============================================================================

func TestCreatePostRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreatePostRequest{Title: "First post", Content: "Hello"}
	if errors := req.Validate(); len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreatePostRequest_Validate_MissingTitle(t *testing.T) {
	t.Parallel()

	req := &CreatePostRequest{Content: "Hello"}
	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "title" {
		t.Errorf("expected title error, got %v", errors)
	}
}

func TestUpdatePostRequest_Validate_EmptyTitle(t *testing.T) {
	t.Parallel()

	title := ""
	req := &UpdatePostRequest{Title: &title}
	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "title" {
		t.Errorf("expected title error, got %v", errors)
	}
}

func TestCreateCommentRequest_Validate_MissingContent(t *testing.T) {
	t.Parallel()

	req := &CreateCommentRequest{}
	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "content" {
		t.Errorf("expected content error, got %v", errors)
	}
}

func TestCreateCommentRequest_Validate_ContentTooLong(t *testing.T) {
	t.Parallel()

	req := &CreateCommentRequest{Content: strings.Repeat("a", MaxCommentContentLength+1)}
	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "content" {
		t.Errorf("expected content length error, got %v", errors)
	}

	req = &CreateCommentRequest{Content: strings.Repeat("a", MaxCommentContentLength)}
	if errors := req.Validate(); len(errors) != 0 {
		t.Errorf("expected no errors at the limit, got %v", errors)
	}
}

func TestUpdateCommentRequest_Validate_ContentTooLong(t *testing.T) {
	t.Parallel()

	content := strings.Repeat("a", MaxCommentContentLength+1)
	req := &UpdateCommentRequest{Content: &content}
	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "content" {
		t.Errorf("expected content length error, got %v", errors)
	}
}
