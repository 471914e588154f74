package model

import "time"

// Post represents a post on the community board
type Post struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Location string    `json:"location,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`
	UserID   string    `json:"user_id"`
}

// Constraints
const (
	MaxPostTitleLength   = 100
	MaxPostContentLength = 2000
)

// CreatePostRequest represents a request to create a post
type CreatePostRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Location *string `json:"location,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

// Validate checks if the create request is valid
func (r *CreatePostRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Title == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > MaxPostTitleLength {
		errors = append(errors, FieldError{Field: "title", Message: "title must be 100 characters or less"})
	}
	if len(r.Content) > MaxPostContentLength {
		errors = append(errors, FieldError{Field: "content", Message: "content must be 2000 characters or less"})
	}

	return errors
}

// UpdatePostRequest represents a partial update of a post.
// Nil fields are left unchanged; the owning user is immutable.
type UpdatePostRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Location *string `json:"location,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

// Validate checks if the update request is valid
func (r *UpdatePostRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Title != nil {
		if *r.Title == "" {
			errors = append(errors, FieldError{Field: "title", Message: "title cannot be empty"})
		} else if len(*r.Title) > MaxPostTitleLength {
			errors = append(errors, FieldError{Field: "title", Message: "title must be 100 characters or less"})
		}
	}
	if r.Content != nil && len(*r.Content) > MaxPostContentLength {
		errors = append(errors, FieldError{Field: "content", Message: "content must be 2000 characters or less"})
	}

	return errors
}

// PostView is the transport representation of a post. The author is
// restricted to {id, name} and nested comments omit the post back-reference.
type PostView struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Content  string        `json:"content"`
	Date     time.Time     `json:"date"`
	Location string        `json:"location,omitempty"`
	ImageURL string        `json:"image_url,omitempty"`
	User     UserRef       `json:"user"`
	Comments []CommentView `json:"comments"`
	Likes    []LikeView    `json:"likes"`
}
