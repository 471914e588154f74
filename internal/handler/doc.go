// Package handler provides HTTP request handlers for the Gatherly API.
//
// The handler package contains all HTTP endpoint implementations organized by
// domain. Each handler struct encapsulates the service it needs to serve
// requests for a specific feature area (authentication, posts, events,
// attending).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service it depends on
//   - Methods handle specific HTTP endpoints registered on the ServeMux
//   - Request bodies are decoded and validated before the service is called
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses, with
//     not-found responses naming the missing record id
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WriteCollection: List of resources with a count
//   - WriteMessage: Confirmation message, used by delete endpoints
//   - WriteError: RFC 9457 Problem Details error response
//
// # Authentication
//
// Most handlers require authentication via JWT tokens. The auth middleware
// extracts the user ID and makes it available via middleware.GetUserID(ctx);
// ownership and admin checks read the full claims via caller(r).
package handler
