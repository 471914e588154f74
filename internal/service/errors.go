package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// ===== Authorization Errors =====
var (
	ErrNotAdmin = errors.New("admin privileges required")
	ErrNotOwner = errors.New("not the owner of this resource")
)

// ===== Post Errors =====
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrLikeNotFound    = errors.New("like not found")
	ErrAlreadyLiked    = errors.New("post already liked")
)

// ===== Event Errors =====
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrAttendingNotFound = errors.New("attending record not found")
	ErrInvoiceNotFound   = errors.New("invoice not found")
)
