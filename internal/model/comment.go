package model

import "time"

// Comment represents a comment on a post
type Comment struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
	UserID  string    `json:"user_id"`
	PostID  string    `json:"post_id"`
}

// MaxCommentContentLength bounds comment bodies
const MaxCommentContentLength = 400

// CreateCommentRequest represents a request to comment on a post
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// Validate checks if the create request is valid
func (r *CreateCommentRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Content == "" {
		errors = append(errors, FieldError{Field: "content", Message: "content is required"})
	} else if len(r.Content) > MaxCommentContentLength {
		errors = append(errors, FieldError{Field: "content", Message: "content must be 400 characters or less"})
	}

	return errors
}

// UpdateCommentRequest represents a partial update of a comment
type UpdateCommentRequest struct {
	Content *string `json:"content,omitempty"`
}

// Validate checks if the update request is valid
func (r *UpdateCommentRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Content != nil {
		if *r.Content == "" {
			errors = append(errors, FieldError{Field: "content", Message: "content cannot be empty"})
		} else if len(*r.Content) > MaxCommentContentLength {
			errors = append(errors, FieldError{Field: "content", Message: "content must be 400 characters or less"})
		}
	}

	return errors
}

// CommentView is the transport representation of a comment nested under
// its post. The post back-reference is omitted; the author is {id, name}.
type CommentView struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
	User    UserRef   `json:"user"`
}
