package service

import (
	"context"
	"fmt"

	"github.com/gatherly/api/internal/model"
)

// SeederService loads a small fixture data set for development and
// testing: two users (one admin), two posts with comments and likes,
// and two events with attendings and their invoices.
type SeederService struct {
	auth      *AuthService
	posts     *PostService
	events    *EventService
	attending *AttendingService
	userRepo  UserRepository
}

// NewSeederService creates a new seeder service
func NewSeederService(auth *AuthService, posts *PostService, events *EventService, attending *AttendingService, userRepo UserRepository) *SeederService {
	return &SeederService{
		auth:      auth,
		posts:     posts,
		events:    events,
		attending: attending,
		userRepo:  userRepo,
	}
}

// SeedResult summarizes what the seeder created
type SeedResult struct {
	Users      int `json:"users"`
	Posts      int `json:"posts"`
	Comments   int `json:"comments"`
	Likes      int `json:"likes"`
	Events     int `json:"events"`
	Attendings int `json:"attendings"`
}

// Seed loads the fixture data set. It assumes empty tables; re-running
// against seeded data fails on the unique email index.
func (s *SeederService) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}

	// Users: one admin, one regular
	admin, err := s.seedUser(ctx, "Admin User", "admin", "admin@gatherly.app", "password123", true)
	if err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}
	tom, err := s.seedUser(ctx, "Tom Jones", "tomjones", "tom@email.com", "password123", false)
	if err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}
	result.Users = 2

	// Posts
	post1, err := s.posts.CreatePost(ctx, admin.ID, &model.CreatePostRequest{
		Title:   "Welcome to Gatherly",
		Content: "Introduce yourself and find events near you",
	})
	if err != nil {
		return nil, fmt.Errorf("seed posts: %w", err)
	}
	post2, err := s.posts.CreatePost(ctx, tom.ID, &model.CreatePostRequest{
		Title:   "Looking for a board games group",
		Content: "Anyone meeting up this weekend",
	})
	if err != nil {
		return nil, fmt.Errorf("seed posts: %w", err)
	}
	result.Posts = 2

	// Comments
	comments := []struct {
		userID string
		postID string
		text   string
	}{
		{tom.ID, post1.ID, "Happy to be here"},
		{admin.ID, post2.ID, "There is a group at the community hall"},
		{tom.ID, post2.ID, "Saturday afternoon works for me"},
	}
	for _, c := range comments {
		if _, err := s.posts.CreateComment(ctx, c.userID, c.postID, &model.CreateCommentRequest{Content: c.text}); err != nil {
			return nil, fmt.Errorf("seed comments: %w", err)
		}
	}
	result.Comments = len(comments)

	// Likes
	if _, err := s.posts.LikePost(ctx, tom.ID, post1.ID); err != nil {
		return nil, fmt.Errorf("seed likes: %w", err)
	}
	if _, err := s.posts.LikePost(ctx, admin.ID, post2.ID); err != nil {
		return nil, fmt.Errorf("seed likes: %w", err)
	}
	result.Likes = 2

	// Events
	price1 := 15.0
	event1, err := s.events.CreateEvent(ctx, admin, &model.CreateEventRequest{
		Title:       "Summer Picnic",
		Description: "An afternoon in the park with food and games",
		Date:        "15/08/2026",
		TicketPrice: &price1,
	})
	if err != nil {
		return nil, fmt.Errorf("seed events: %w", err)
	}
	event2, err := s.events.CreateEvent(ctx, admin, &model.CreateEventRequest{
		Title:       "Board Games Night",
		Description: "Casual games evening at the community hall",
		Date:        "20/09/2026",
	})
	if err != nil {
		return nil, fmt.Errorf("seed events: %w", err)
	}
	result.Events = 2

	// Attendings (each issues its invoice)
	tickets := 2
	if _, err := s.attending.Create(ctx, tom.ID, event1.ID, &model.CreateAttendingRequest{
		SeatNumber:   "A1",
		TotalTickets: &tickets,
	}); err != nil {
		return nil, fmt.Errorf("seed attendings: %w", err)
	}
	if _, err := s.attending.Create(ctx, tom.ID, event2.ID, &model.CreateAttendingRequest{
		SeatNumber: "B3",
	}); err != nil {
		return nil, fmt.Errorf("seed attendings: %w", err)
	}
	result.Attendings = 2

	return result, nil
}

func (s *SeederService) seedUser(ctx context.Context, name, username, email, password string, isAdmin bool) (*model.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Username: username,
		Email:    email,
		Hash:     hash,
		IsAdmin:  isAdmin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
