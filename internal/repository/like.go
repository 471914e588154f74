package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/model"
)

// LikeRepository handles like data access
type LikeRepository struct {
	db database.Database
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db database.Database) *LikeRepository {
	return &LikeRepository{db: db}
}

// Create records a like. The unique index on (user, post) rejects a
// second like of the same post by the same user with ErrDuplicate.
func (r *LikeRepository) Create(ctx context.Context, like *model.Like) error {
	query := `
		CREATE like CONTENT {
			user: type::record($user),
			post: type::record($post)
		}
	`

	vars := map[string]interface{}{
		"user": like.UserID,
		"post": like.PostID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: post already liked", database.ErrDuplicate)
		}
		return err
	}

	records := unwrapRecords(result)
	if len(records) == 0 {
		return errors.New("no result returned")
	}
	like.ID = getRecordID(records[0], "id")
	return nil
}

// GetByUserAndPost retrieves a user's like on a post. Returns nil if
// the user has not liked the post.
func (r *LikeRepository) GetByUserAndPost(ctx context.Context, userID, postID string) (*model.Like, error) {
	query := `SELECT * FROM like WHERE user = type::record($user) AND post = type::record($post) LIMIT 1`
	vars := map[string]interface{}{
		"user": userID,
		"post": postID,
	}

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
	return parseLike(data), nil
}

// ListByPost retrieves all likes on a post
func (r *LikeRepository) ListByPost(ctx context.Context, postID string) ([]*model.Like, error) {
	query := `SELECT * FROM like WHERE post = type::record($post)`
	vars := map[string]interface{}{"post": postID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := unwrapRecords(result)
	likes := make([]*model.Like, 0, len(records))
	for _, data := range records {
		likes = append(likes, parseLike(data))
	}
	return likes, nil
}

// Delete removes a like
func (r *LikeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}
	return r.db.Execute(ctx, query, vars)
}

func parseLike(data map[string]interface{}) *model.Like {
	return &model.Like{
		ID:     getRecordID(data, "id"),
		UserID: getRecordID(data, "user"),
		PostID: getRecordID(data, "post"),
	}
}
