package model

// Like represents a user liking a post.
// A (user, post) pair is unique; liking twice is a conflict.
type Like struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	PostID string `json:"post_id"`
}

// LikeView is the transport representation of a like nested under its post
type LikeView struct {
	ID   string  `json:"id"`
	User UserRef `json:"user"`
}
