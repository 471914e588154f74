// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while
// allowing customization via option functions. Factories insert through
// the repositories and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	user := f.CreateUser(t)
//	post := f.CreatePost(t, user)
//	event := f.CreateEvent(t, admin)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/model"
	"github.com/gatherly/api/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	db         database.Database
	users      *repository.UserRepository
	posts      *repository.PostRepository
	comments   *repository.CommentRepository
	likes      *repository.LikeRepository
	events     *repository.EventRepository
	attendings *repository.AttendingRepository
	invoices   *repository.InvoiceRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		db:         db,
		users:      repository.NewUserRepository(db),
		posts:      repository.NewPostRepository(db),
		comments:   repository.NewCommentRepository(db),
		likes:      repository.NewLikeRepository(db),
		events:     repository.NewEventRepository(db),
		attendings: repository.NewAttendingRepository(db),
		invoices:   repository.NewInvoiceRepository(db),
	}
}

// randomID generates a random hex suffix for unique test data
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel
	return c
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Name     string
	Username string
	Email    string
	Password string
	IsAdmin  bool
}

// CreateUser creates a user with optional customizations
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	id := randomID()
	o := &UserOpts{
		Name:     fmt.Sprintf("Test User %s", id),
		Username: fmt.Sprintf("user_%s", id),
		Email:    fmt.Sprintf("user_%s@test.local", id),
		Password: "testpass123",
	}
	for _, fn := range opts {
		fn(o)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}

	user := &model.User{
		Name:     o.Name,
		Username: o.Username,
		Email:    o.Email,
		Hash:     string(hash),
		IsAdmin:  o.IsAdmin,
	}
	if err := f.users.Create(ctx(), user); err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}
	return user
}

// CreateAdmin creates an admin user
func (f *Factory) CreateAdmin(t *testing.T) *model.User {
	return f.CreateUser(t, func(o *UserOpts) {
		o.IsAdmin = true
	})
}

// ============================================================================
// Post Fixtures
// ============================================================================

// PostOpts customizes post creation
type PostOpts struct {
	Title    string
	Content  string
	Location string
	ImageURL string
}

// CreatePost creates a post owned by the given user
func (f *Factory) CreatePost(t *testing.T, author *model.User, opts ...func(*PostOpts)) *model.Post {
	t.Helper()

	o := &PostOpts{
		Title:   fmt.Sprintf("Post %s", randomID()),
		Content: "Some thoughts worth sharing.",
	}
	for _, fn := range opts {
		fn(o)
	}

	post := &model.Post{
		Title:    o.Title,
		Content:  o.Content,
		Location: o.Location,
		ImageURL: o.ImageURL,
		UserID:   author.ID,
	}
	if err := f.posts.Create(ctx(), post); err != nil {
		t.Fatalf("fixtures: failed to create post: %v", err)
	}
	return post
}

// CreateComment creates a comment on the given post
func (f *Factory) CreateComment(t *testing.T, author *model.User, post *model.Post, content string) *model.Comment {
	t.Helper()

	if content == "" {
		content = "Nice one."
	}
	comment := &model.Comment{
		Content: content,
		UserID:  author.ID,
		PostID:  post.ID,
	}
	if err := f.comments.Create(ctx(), comment); err != nil {
		t.Fatalf("fixtures: failed to create comment: %v", err)
	}
	return comment
}

// CreateLike likes the given post as the given user
func (f *Factory) CreateLike(t *testing.T, user *model.User, post *model.Post) *model.Like {
	t.Helper()

	like := &model.Like{
		UserID: user.ID,
		PostID: post.ID,
	}
	if err := f.likes.Create(ctx(), like); err != nil {
		t.Fatalf("fixtures: failed to create like: %v", err)
	}
	return like
}

// ============================================================================
// Event Fixtures
// ============================================================================

// EventOpts customizes event creation
type EventOpts struct {
	Title       string
	Description string
	Date        string
	TicketPrice float64
}

// CreateEvent creates an event owned by the given admin
func (f *Factory) CreateEvent(t *testing.T, owner *model.User, opts ...func(*EventOpts)) *model.Event {
	t.Helper()

	o := &EventOpts{
		Title:       fmt.Sprintf("Event %s", randomID()[:6]),
		Description: "A gathering worth attending.",
		Date:        "15/08/2026",
		TicketPrice: 25.0,
	}
	for _, fn := range opts {
		fn(o)
	}

	event := &model.Event{
		Title:       o.Title,
		Description: o.Description,
		Date:        o.Date,
		TicketPrice: o.TicketPrice,
		UserID:      owner.ID,
	}
	if err := f.events.Create(ctx(), event); err != nil {
		t.Fatalf("fixtures: failed to create event: %v", err)
	}
	return event
}

// AttendingOpts customizes attending creation
type AttendingOpts struct {
	SeatNumber   string
	TotalTickets int
}

// CreateAttending reserves tickets for the given user, writing the
// attending record and its invoice in one transaction.
func (f *Factory) CreateAttending(t *testing.T, user *model.User, event *model.Event, opts ...func(*AttendingOpts)) *model.Attending {
	t.Helper()

	o := &AttendingOpts{
		SeatNumber:   "A1",
		TotalTickets: 1,
	}
	for _, fn := range opts {
		fn(o)
	}

	attending := &model.Attending{
		SeatNumber:   o.SeatNumber,
		TotalTickets: o.TotalTickets,
		EventID:      event.ID,
		UserID:       user.ID,
	}
	totalCost := event.TicketPrice * float64(o.TotalTickets)
	if err := f.attendings.Create(ctx(), attending, totalCost); err != nil {
		t.Fatalf("fixtures: failed to create attending: %v", err)
	}
	return attending
}

// InvoicesForEvent returns all invoices recorded for the event
func (f *Factory) InvoicesForEvent(t *testing.T, event *model.Event) []*model.Invoice {
	t.Helper()

	invoices, err := f.invoices.ListByEvent(ctx(), event.ID)
	if err != nil {
		t.Fatalf("fixtures: failed to list invoices: %v", err)
	}
	return invoices
}
