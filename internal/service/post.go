package service

import (
	"context"

	"github.com/gatherly/api/internal/model"
)

// PostRepository defines the interface for post storage
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	List(ctx context.Context) ([]*model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines the interface for comment storage
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id string) (*model.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*model.Comment, error)
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id string) error
}

// LikeRepository defines the interface for like storage
type LikeRepository interface {
	Create(ctx context.Context, like *model.Like) error
	GetByUserAndPost(ctx context.Context, userID, postID string) (*model.Like, error)
	ListByPost(ctx context.Context, postID string) ([]*model.Like, error)
	Delete(ctx context.Context, id string) error
}

// PostService handles posts and their comments and likes
type PostService struct {
	postRepo    PostRepository
	commentRepo CommentRepository
	likeRepo    LikeRepository
	userRepo    UserRepository
}

// NewPostService creates a new post service
func NewPostService(postRepo PostRepository, commentRepo CommentRepository, likeRepo LikeRepository, userRepo UserRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
	}
}

// CreatePost creates a post authored by the caller
func (s *PostService) CreatePost(ctx context.Context, userID string, req *model.CreatePostRequest) (*model.PostView, error) {
	post := &model.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  userID,
	}
	if req.Location != nil {
		post.Location = *req.Location
	}
	if req.ImageURL != nil {
		post.ImageURL = *req.ImageURL
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.buildPostView(ctx, post)
}

// GetPost retrieves a post with its comments and likes
func (s *PostService) GetPost(ctx context.Context, postID string) (*model.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return s.buildPostView(ctx, post)
}

// ListPosts retrieves all posts with their comments and likes
func (s *PostService) ListPosts(ctx context.Context) ([]*model.PostView, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*model.PostView, 0, len(posts))
	for _, post := range posts {
		view, err := s.buildPostView(ctx, post)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// UpdatePost applies a partial update to a post. Only the author or an
// admin may update it; nil fields are left unchanged.
func (s *PostService) UpdatePost(ctx context.Context, caller *model.User, postID string, req *model.UpdatePostRequest) (*model.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.UserID != caller.ID && !caller.IsAdmin {
		return nil, ErrNotOwner
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Location != nil {
		post.Location = *req.Location
	}
	if req.ImageURL != nil {
		post.ImageURL = *req.ImageURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.buildPostView(ctx, post)
}

// DeletePost deletes a post and its comments and likes. Only the author
// or an admin may delete it. Returns the deleted post's title.
func (s *PostService) DeletePost(ctx context.Context, caller *model.User, postID string) (string, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return "", err
	}
	if post == nil {
		return "", ErrPostNotFound
	}
	if post.UserID != caller.ID && !caller.IsAdmin {
		return "", ErrNotOwner
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return "", err
	}
	return post.Title, nil
}

// CreateComment adds a comment to a post, authored by the caller
func (s *PostService) CreateComment(ctx context.Context, userID, postID string, req *model.CreateCommentRequest) (*model.CommentView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		Content: req.Content,
		UserID:  userID,
		PostID:  postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.buildCommentView(ctx, comment)
}

// UpdateComment applies a partial update to a comment. Only the author
// or an admin may update it.
func (s *PostService) UpdateComment(ctx context.Context, caller *model.User, commentID string, req *model.UpdateCommentRequest) (*model.CommentView, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.UserID != caller.ID && !caller.IsAdmin {
		return nil, ErrNotOwner
	}

	if req.Content != nil {
		comment.Content = *req.Content
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return s.buildCommentView(ctx, comment)
}

// DeleteComment deletes a comment. Only the author or an admin may
// delete it.
func (s *PostService) DeleteComment(ctx context.Context, caller *model.User, commentID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != caller.ID && !caller.IsAdmin {
		return ErrNotOwner
	}

	return s.commentRepo.Delete(ctx, commentID)
}

// LikePost records the caller liking a post. Liking a post twice is a
// conflict.
func (s *PostService) LikePost(ctx context.Context, userID, postID string) (*model.LikeView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	existing, err := s.likeRepo.GetByUserAndPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyLiked
	}

	like := &model.Like{UserID: userID, PostID: postID}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := &model.LikeView{ID: like.ID}
	if user != nil {
		view.User = user.ToRef()
	}
	return view, nil
}

// UnlikePost removes the caller's like from a post. When likeID is
// non-empty it must name the caller's own like on that post.
func (s *PostService) UnlikePost(ctx context.Context, userID, postID, likeID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	like, err := s.likeRepo.GetByUserAndPost(ctx, userID, postID)
	if err != nil {
		return err
	}
	if like == nil {
		return ErrLikeNotFound
	}
	if likeID != "" && like.ID != likeID {
		return ErrLikeNotFound
	}

	return s.likeRepo.Delete(ctx, like.ID)
}

// buildPostView assembles the transport representation of a post:
// author as {id, name}, comments without the post back-reference, and
// likes with their user refs.
func (s *PostService) buildPostView(ctx context.Context, post *model.Post) (*model.PostView, error) {
	comments, err := s.commentRepo.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	likes, err := s.likeRepo.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	ids := []string{post.UserID}
	for _, c := range comments {
		ids = append(ids, c.UserID)
	}
	for _, l := range likes {
		ids = append(ids, l.UserID)
	}
	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	view := &model.PostView{
		ID:       post.ID,
		Title:    post.Title,
		Content:  post.Content,
		Date:     post.Date,
		Location: post.Location,
		ImageURL: post.ImageURL,
		Comments: make([]model.CommentView, 0, len(comments)),
		Likes:    make([]model.LikeView, 0, len(likes)),
	}
	if user, ok := users[post.UserID]; ok {
		view.User = user.ToRef()
	}
	for _, c := range comments {
		cv := model.CommentView{
			ID:      c.ID,
			Content: c.Content,
			Date:    c.Date,
		}
		if user, ok := users[c.UserID]; ok {
			cv.User = user.ToRef()
		}
		view.Comments = append(view.Comments, cv)
	}
	for _, l := range likes {
		lv := model.LikeView{ID: l.ID}
		if user, ok := users[l.UserID]; ok {
			lv.User = user.ToRef()
		}
		view.Likes = append(view.Likes, lv)
	}
	return view, nil
}

func (s *PostService) buildCommentView(ctx context.Context, comment *model.Comment) (*model.CommentView, error) {
	user, err := s.userRepo.GetByID(ctx, comment.UserID)
	if err != nil {
		return nil, err
	}

	view := &model.CommentView{
		ID:      comment.ID,
		Content: comment.Content,
		Date:    comment.Date,
	}
	if user != nil {
		view.User = user.ToRef()
	}
	return view, nil
}
