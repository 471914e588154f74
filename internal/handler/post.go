package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gatherly/api/internal/middleware"
	"github.com/gatherly/api/internal/model"
	"github.com/gatherly/api/internal/service"
)

// PostHandler handles post, comment and like endpoints
type PostHandler struct {
	postService *service.PostService
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost handles POST /v1/posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req model.CreatePostRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	post, err := h.postService.CreatePost(r.Context(), userID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, post, map[string]string{
		"self": "/v1/posts/" + post.ID,
	})
}

// ListPosts handles GET /v1/posts
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListPosts(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, posts, len(posts), map[string]string{
		"self": "/v1/posts",
	})
}

// GetPost handles GET /v1/posts/{postId}
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")

	post, err := h.postService.GetPost(r.Context(), postID)
	if err != nil {
		h.handlePostError(w, err, postID)
		return
	}

	WriteData(w, http.StatusOK, post, map[string]string{
		"self": "/v1/posts/" + postID,
	})
}

// UpdatePost handles PATCH /v1/posts/{postId}
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")

	var req model.UpdatePostRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), caller(r), postID, &req)
	if err != nil {
		h.handlePostError(w, err, postID)
		return
	}

	WriteData(w, http.StatusOK, post, map[string]string{
		"self": "/v1/posts/" + postID,
	})
}

// DeletePost handles DELETE /v1/posts/{postId}
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")

	title, err := h.postService.DeletePost(r.Context(), caller(r), postID)
	if err != nil {
		h.handlePostError(w, err, postID)
		return
	}

	WriteMessage(w, http.StatusOK, fmt.Sprintf("Post '%s' deleted", title))
}

// CreateComment handles POST /v1/posts/{postId}/comments
func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID := r.PathValue("postId")

	var req model.CreateCommentRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	comment, err := h.postService.CreateComment(r.Context(), userID, postID, &req)
	if err != nil {
		h.handlePostError(w, err, postID)
		return
	}

	WriteData(w, http.StatusCreated, comment, map[string]string{
		"post": "/v1/posts/" + postID,
	})
}

// UpdateComment handles PATCH /v1/posts/{postId}/comments/{commentId}
func (h *PostHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")
	commentID := r.PathValue("commentId")

	var req model.UpdateCommentRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	comment, err := h.postService.UpdateComment(r.Context(), caller(r), commentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			WriteError(w, notFound("Comment", commentID))
		default:
			h.handlePostError(w, err, postID)
		}
		return
	}

	WriteData(w, http.StatusOK, comment, map[string]string{
		"post": "/v1/posts/" + postID,
	})
}

// DeleteComment handles DELETE /v1/posts/{postId}/comments/{commentId}
func (h *PostHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")
	commentID := r.PathValue("commentId")

	if err := h.postService.DeleteComment(r.Context(), caller(r), commentID); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			WriteError(w, notFound("Comment", commentID))
		default:
			h.handlePostError(w, err, postID)
		}
		return
	}

	WriteMessage(w, http.StatusOK, "Comment deleted")
}

// LikePost handles POST /v1/posts/{postId}/likes
func (h *PostHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID := r.PathValue("postId")

	like, err := h.postService.LikePost(r.Context(), userID, postID)
	if err != nil {
		h.handlePostError(w, err, postID)
		return
	}

	WriteData(w, http.StatusCreated, like, map[string]string{
		"post": "/v1/posts/" + postID,
	})
}

// UnlikePost handles DELETE /v1/posts/{postId}/likes/{likeId}
func (h *PostHandler) UnlikePost(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID := r.PathValue("postId")
	likeID := r.PathValue("likeId")

	if err := h.postService.UnlikePost(r.Context(), userID, postID, likeID); err != nil {
		switch {
		case errors.Is(err, service.ErrLikeNotFound):
			WriteError(w, notFound("Like", likeID))
		default:
			h.handlePostError(w, err, postID)
		}
		return
	}

	WriteMessage(w, http.StatusOK, "Like removed")
}

func (h *PostHandler) handlePostError(w http.ResponseWriter, err error, postID string) {
	if errors.Is(err, service.ErrPostNotFound) {
		WriteError(w, notFound("Post", postID))
		return
	}
	WriteError(w, MapServiceError(err))
}
