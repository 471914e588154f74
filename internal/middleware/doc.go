// Package middleware provides HTTP middleware for the Gatherly API.
//
// The middleware package contains reusable middleware components for
// authentication, observability, and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - Auth: JWT bearer token validation and claims extraction
//   - RequestID: Unique request ID generation and propagation
//   - Logger: Structured request logging via slog
//   - Recovery: Panic recovery with a JSON 500 response
//   - CORS: Cross-origin request handling
//   - Metrics: Prometheus request counters and latency histograms
//
// # Authentication
//
// The auth middleware validates JWT tokens and extracts user information:
//
//	protected := middleware.Chain(mux, middleware.Auth(tokens))
//
// After authentication, handlers can access user info:
//
//	userID := middleware.GetUserID(r.Context())
//	claims := middleware.GetClaims(r.Context())
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns authenticated user ID
//   - GetUserEmail(ctx): Returns authenticated user email
//   - GetClaims(ctx): Returns the full JWT claims
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
