package repository

import (
	"context"
	"errors"

	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/model"
)

// PostRepository handles post data access
type PostRepository struct {
	db database.Database
}

// NewPostRepository creates a new post repository
func NewPostRepository(db database.Database) *PostRepository {
	return &PostRepository{db: db}
}

// Create creates a new post
func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		CREATE post CONTENT {
			title: $title,
			content: $content,
			date: time::now(),
			location: $location,
			image_url: $image_url,
			user: type::record($user)
		}
	`

	vars := map[string]interface{}{
		"title":     post.Title,
		"content":   post.Content,
		"location":  post.Location,
		"image_url": post.ImageURL,
		"user":      post.UserID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	records := unwrapRecords(result)
	if len(records) == 0 {
		return errors.New("no result returned")
	}
	created := parsePost(records[0])
	post.ID = created.ID
	post.Date = created.Date
	return nil
}

// GetByID retrieves a post by ID. Returns nil if the post does not exist.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
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
	return parsePost(data), nil
}

// List retrieves all posts, newest first
func (r *PostRepository) List(ctx context.Context) ([]*model.Post, error) {
	query := `SELECT * FROM post ORDER BY date DESC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	records := unwrapRecords(result)
	posts := make([]*model.Post, 0, len(records))
	for _, data := range records {
		posts = append(posts, parsePost(data))
	}
	return posts, nil
}

// Update persists the mutable fields of a post
func (r *PostRepository) Update(ctx context.Context, post *model.Post) error {
	query := `
		UPDATE type::record($id) SET
			title = $title,
			content = $content,
			location = $location,
			image_url = $image_url
	`

	vars := map[string]interface{}{
		"id":        post.ID,
		"title":     post.Title,
		"content":   post.Content,
		"location":  post.Location,
		"image_url": post.ImageURL,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete deletes a post together with its comments and likes in a
// single transaction
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE comment WHERE post = type::record($id)`, map[string]interface{}{"id": id})
	batch.Add(`DELETE like WHERE post = type::record($id)`, map[string]interface{}{"id": id})
	batch.Add(`DELETE type::record($id)`, map[string]interface{}{"id": id})
	return batch.Execute(ctx, r.db)
}

func parsePost(data map[string]interface{}) *model.Post {
	return &model.Post{
		ID:       getRecordID(data, "id"),
		Title:    getString(data, "title"),
		Content:  getString(data, "content"),
		Date:     getTime(data, "date"),
		Location: getString(data, "location"),
		ImageURL: getString(data, "image_url"),
		UserID:   getRecordID(data, "user"),
	}
}
