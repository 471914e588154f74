package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gatherly/api/internal/model"
)

// In-memory repository mocks shared by the service tests.

type mockUserRepo struct {
	users      map[string]*model.User
	emailIndex map[string]*model.User
	nextID     int
	createErr  error
	getErr     error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:      make(map[string]*model.User),
		emailIndex: make(map[string]*model.User),
	}
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	user.ID = fmt.Sprintf("user:%d", m.nextID)
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	m.emailIndex[user.Email] = user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.users[id], nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.emailIndex[email], nil
}

func (m *mockUserRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := make(map[string]*model.User)
	for _, id := range ids {
		if user, ok := m.users[id]; ok {
			result[id] = user
		}
	}
	return result, nil
}

type mockPostRepo struct {
	posts     map[string]*model.Post
	nextID    int
	deleteErr error
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[string]*model.Post)}
}

func (m *mockPostRepo) Create(ctx context.Context, post *model.Post) error {
	m.nextID++
	post.ID = fmt.Sprintf("post:%d", m.nextID)
	post.Date = time.Now()
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, id string) (*model.Post, error) {
	return m.posts[id], nil
}

func (m *mockPostRepo) List(ctx context.Context) ([]*model.Post, error) {
	result := make([]*model.Post, 0, len(m.posts))
	for _, p := range m.posts {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockPostRepo) Update(ctx context.Context, post *model.Post) error {
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.posts, id)
	return nil
}

type mockCommentRepo struct {
	comments map[string]*model.Comment
	nextID   int
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[string]*model.Comment)}
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	m.nextID++
	comment.ID = fmt.Sprintf("comment:%d", m.nextID)
	comment.Date = time.Now()
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	return m.comments[id], nil
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	var result []*model.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockCommentRepo) Update(ctx context.Context, comment *model.Comment) error {
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockCommentRepo) Delete(ctx context.Context, id string) error {
	delete(m.comments, id)
	return nil
}

type mockLikeRepo struct {
	likes  map[string]*model.Like
	nextID int
}

func newMockLikeRepo() *mockLikeRepo {
	return &mockLikeRepo{likes: make(map[string]*model.Like)}
}

func (m *mockLikeRepo) Create(ctx context.Context, like *model.Like) error {
	m.nextID++
	like.ID = fmt.Sprintf("like:%d", m.nextID)
	m.likes[like.ID] = like
	return nil
}

func (m *mockLikeRepo) GetByUserAndPost(ctx context.Context, userID, postID string) (*model.Like, error) {
	for _, l := range m.likes {
		if l.UserID == userID && l.PostID == postID {
			return l, nil
		}
	}
	return nil, nil
}

func (m *mockLikeRepo) ListByPost(ctx context.Context, postID string) ([]*model.Like, error) {
	var result []*model.Like
	for _, l := range m.likes {
		if l.PostID == postID {
			result = append(result, l)
		}
	}
	return result, nil
}

func (m *mockLikeRepo) Delete(ctx context.Context, id string) error {
	delete(m.likes, id)
	return nil
}

type mockEventRepo struct {
	events    map[string]*model.Event
	nextID    int
	deleteErr error
	sumErr    error
	tickets   map[string]int
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{
		events:  make(map[string]*model.Event),
		tickets: make(map[string]int),
	}
}

func (m *mockEventRepo) Create(ctx context.Context, event *model.Event) error {
	m.nextID++
	event.ID = fmt.Sprintf("event:%d", m.nextID)
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	return m.events[id], nil
}

func (m *mockEventRepo) List(ctx context.Context) ([]*model.Event, error) {
	result := make([]*model.Event, 0, len(m.events))
	for _, e := range m.events {
		result = append(result, e)
	}
	return result, nil
}

func (m *mockEventRepo) Update(ctx context.Context, event *model.Event) error {
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.events, id)
	return nil
}

func (m *mockEventRepo) SumTickets(ctx context.Context, eventID string) (int, error) {
	if m.sumErr != nil {
		return 0, m.sumErr
	}
	return m.tickets[eventID], nil
}

type mockAttendingRepo struct {
	attendings map[string]*model.Attending
	invoices   *mockInvoiceRepo
	nextID     int
}

func newMockAttendingRepo(invoices *mockInvoiceRepo) *mockAttendingRepo {
	return &mockAttendingRepo{
		attendings: make(map[string]*model.Attending),
		invoices:   invoices,
	}
}

func (m *mockAttendingRepo) Create(ctx context.Context, attending *model.Attending, totalCost float64) error {
	m.nextID++
	attending.ID = fmt.Sprintf("attending:%d", m.nextID)
	attending.Date = time.Now()
	m.attendings[attending.ID] = attending
	if m.invoices != nil {
		m.invoices.add(&model.Invoice{
			TotalCost: totalCost,
			EventID:   attending.EventID,
			UserID:    attending.UserID,
		})
	}
	return nil
}

func (m *mockAttendingRepo) GetByID(ctx context.Context, eventID, id string) (*model.Attending, error) {
	a, ok := m.attendings[id]
	if !ok || a.EventID != eventID {
		return nil, nil
	}
	return a, nil
}

func (m *mockAttendingRepo) ListByEvent(ctx context.Context, eventID string) ([]*model.Attending, error) {
	var result []*model.Attending
	for _, a := range m.attendings {
		if a.EventID == eventID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAttendingRepo) Update(ctx context.Context, attending *model.Attending) error {
	m.attendings[attending.ID] = attending
	return nil
}

func (m *mockAttendingRepo) Delete(ctx context.Context, id string) error {
	delete(m.attendings, id)
	return nil
}

type mockInvoiceRepo struct {
	invoices map[string]*model.Invoice
	nextID   int
}

func newMockInvoiceRepo() *mockInvoiceRepo {
	return &mockInvoiceRepo{invoices: make(map[string]*model.Invoice)}
}

func (m *mockInvoiceRepo) add(invoice *model.Invoice) {
	m.nextID++
	invoice.ID = fmt.Sprintf("invoice:%d", m.nextID)
	invoice.Date = time.Now()
	m.invoices[invoice.ID] = invoice
}

func (m *mockInvoiceRepo) GetByID(ctx context.Context, id string) (*model.Invoice, error) {
	return m.invoices[id], nil
}

func (m *mockInvoiceRepo) ListByEvent(ctx context.Context, eventID string) ([]*model.Invoice, error) {
	var result []*model.Invoice
	for _, inv := range m.invoices {
		if inv.EventID == eventID {
			result = append(result, inv)
		}
	}
	return result, nil
}

func (m *mockInvoiceRepo) ListByUser(ctx context.Context, userID string) ([]*model.Invoice, error) {
	var result []*model.Invoice
	for _, inv := range m.invoices {
		if inv.UserID == userID {
			result = append(result, inv)
		}
	}
	return result, nil
}
