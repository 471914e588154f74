package repository

import (
	"context"
	"errors"

	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/model"
)

// CommentRepository handles comment data access
type CommentRepository struct {
	db database.Database
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db database.Database) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
		CREATE comment CONTENT {
			content: $content,
			date: time::now(),
			user: type::record($user),
			post: type::record($post)
		}
	`

	vars := map[string]interface{}{
		"content": comment.Content,
		"user":    comment.UserID,
		"post":    comment.PostID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	records := unwrapRecords(result)
	if len(records) == 0 {
		return errors.New("no result returned")
	}
	created := parseComment(records[0])
	comment.ID = created.ID
	comment.Date = created.Date
	return nil
}

// GetByID retrieves a comment by ID. Returns nil if it does not exist.
func (r *CommentRepository) GetByID(ctx context.Context, id string) (*model.Comment, error) {
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
	return parseComment(data), nil
}

// ListByPost retrieves all comments on a post, oldest first
func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	query := `SELECT * FROM comment WHERE post = type::record($post) ORDER BY date ASC`
	vars := map[string]interface{}{"post": postID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := unwrapRecords(result)
	comments := make([]*model.Comment, 0, len(records))
	for _, data := range records {
		comments = append(comments, parseComment(data))
	}
	return comments, nil
}

// Update persists the content of a comment
func (r *CommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	query := `UPDATE type::record($id) SET content = $content`
	vars := map[string]interface{}{
		"id":      comment.ID,
		"content": comment.Content,
	}
	return r.db.Execute(ctx, query, vars)
}

// Delete deletes a comment
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}
	return r.db.Execute(ctx, query, vars)
}

func parseComment(data map[string]interface{}) *model.Comment {
	return &model.Comment{
		ID:      getRecordID(data, "id"),
		Content: getString(data, "content"),
		Date:    getTime(data, "date"),
		UserID:  getRecordID(data, "user"),
		PostID:  getRecordID(data, "post"),
	}
}
