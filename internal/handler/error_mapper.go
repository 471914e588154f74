package handler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gatherly/api/internal/model"
	"github.com/gatherly/api/internal/service"
)

// notFound builds a ProblemDetails naming the missing record, e.g.
// "Event with id 'event:xyz' not found".
func notFound(resource, id string) *model.ProblemDetails {
	return model.NewNotFoundError(fmt.Sprintf("%s with id '%s'", resource, id))
}

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API. Not-found errors are
// handled in the individual handlers because their details name the record
// id from the request path.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError("invalid email or password")

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotAdmin):
		return model.NewForbiddenError("admin privileges required")
	case errors.Is(err, service.ErrNotOwner):
		return model.NewForbiddenError("you do not own this resource")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return model.NewConflictError("email already registered")
	case errors.Is(err, service.ErrAlreadyLiked):
		return model.NewConflictError("post already liked")

	// ===== Default → 500 =====
	default:
		slog.Error("unhandled service error", "error", err)
		return model.NewInternalError("")
	}
}
