// Package service implements the business logic of the Gatherly API.
//
// Services sit between handlers and repositories. Handlers decode and
// validate request payloads; services enforce the business rules:
// admin-only event management, caller-derived attendee identity,
// like uniqueness, ownership checks on posts and comments, and the
// invoice issued with every attending record.
//
// Service methods return the sentinel errors declared in errors.go;
// handlers map them to RFC 9457 problem responses. Repository access
// goes through the narrow interfaces each service declares, which the
// tests satisfy with in-memory mocks.
package service
